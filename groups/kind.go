// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Kind is the visual and behavioral variant of a group container.
type Kind int32

const (
	// Plain groups are a simple bordered box without a heading.
	Plain Kind = iota

	// BoxGroup groups are a bordered box with the group name as heading.
	BoxGroup

	// TabGroup groups have one page per tab name, of which
	// only the selected one is visible.
	TabGroup

	// FoldoutGroup groups can be collapsed and expanded by the user.
	FoldoutGroup

	// HorizontalGroup groups lay their members out side by side.
	HorizontalGroup

	// InlineGroup groups are an unstyled container.
	InlineGroup

	kindN
)

var kindTagNames = [kindN]string{"group", "box", "tab", "foldout", "horizontal", "inline"}

var kindNames = [kindN]string{"Group", "BoxGroup", "TabGroup", "FoldoutGroup", "HorizontalGroup", "InlineGroup"}

// KindValues returns all group kinds.
func KindValues() []Kind {
	ks := make([]Kind, kindN)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// IsValid returns whether the kind is one of the defined kinds.
func (k Kind) IsValid() bool {
	return k >= 0 && k < kindN
}

// String returns the name of the kind used in persisted state keys,
// like "TabGroup".
func (k Kind) String() string {
	if !k.IsValid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// TagName returns the name of the kind used in struct tags, like "tab".
func (k Kind) TagName() string {
	if !k.IsValid() {
		return k.String()
	}
	return kindTagNames[k]
}

// minSuggestSimilarity is the minimum similarity for a kind
// name to be suggested for a misspelled one.
const minSuggestSimilarity = 0.5

// ParseKind returns the kind with the given tag name (like "tab") or
// state name (like "TabGroup"), case-insensitively. An unknown name
// results in a [ConfigurationError], suggesting the closest tag name.
func ParseKind(name string) (Kind, error) {
	nm := strings.ToLower(strings.TrimSpace(name))
	for i := Kind(0); i < kindN; i++ {
		if nm == kindTagNames[i] || nm == strings.ToLower(kindNames[i]) {
			return i, nil
		}
	}
	reason := fmt.Sprintf("unknown group kind %q", name)
	if s := suggestKind(nm); s != "" {
		reason += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return Plain, &ConfigurationError{Reason: reason}
}

func suggestKind(name string) string {
	if name == "" {
		return ""
	}
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, tn := range kindTagNames {
		if sim := strutil.Similarity(name, tn, lev); sim > bestSim {
			best, bestSim = tn, sim
		}
	}
	if bestSim < minSuggestSimilarity {
		return ""
	}
	return best
}
