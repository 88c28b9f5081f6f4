// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"fmt"
	"reflect"
	"strings"
)

// Declaration is the group a member declares it belongs to.
// Declarations are read from struct tags of the form
//
//	group:"<kind>:<path>"
//
// where kind is one of group, box, tab, foldout, horizontal or inline, and
// path is a / separated list of group names from outermost to innermost.
// Tab groups also need the tab page of the member:
//
//	Speed float32 `group:"tab:Settings" tab:"Movement"`
type Declaration struct {

	// Kind is the kind of the innermost group.
	Kind Kind

	// Path is the group names from outermost to innermost.
	Path []string

	// TabName is the tab page of a [TabGroup] the member belongs to.
	TabName string
}

// NewDeclaration returns a validated declaration for the given kind,
// / separated path, and tab name.
func NewDeclaration(kind Kind, path, tabName string) (*Declaration, error) {
	segs, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	d := &Declaration{Kind: kind, Path: segs, TabName: tabName}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseTag returns the declaration in the given struct tag,
// or nil if there is no group tag.
func ParseTag(tag reflect.StructTag) (*Declaration, error) {
	gt, ok := tag.Lookup("group")
	if !ok {
		return nil, nil
	}
	kname, path, ok := strings.Cut(gt, ":")
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("malformed group tag %q: want <kind>:<path>", gt)}
	}
	kind, err := ParseKind(kname)
	if err != nil {
		return nil, err
	}
	return NewDeclaration(kind, path, strings.TrimSpace(tag.Get("tab")))
}

// SplitPath splits the given / separated group path into its segments.
// An empty path has no segments. Empty segments are a [ConfigurationError].
func SplitPath(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = strings.TrimSpace(s)
		if segs[i] == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("malformed group path %q: empty group name", path)}
		}
	}
	return segs, nil
}

// Validate returns a [ConfigurationError] if the declaration is not valid.
func (d *Declaration) Validate() error {
	if !d.Kind.IsValid() {
		return &ConfigurationError{Reason: fmt.Sprintf("unknown group kind %v", d.Kind)}
	}
	for _, s := range d.Path {
		if strings.TrimSpace(s) == "" || strings.Contains(s, "/") {
			return &ConfigurationError{Reason: fmt.Sprintf("malformed group path %q", d.PathString())}
		}
	}
	if len(d.Path) == 0 {
		return nil
	}
	if d.Kind == TabGroup && d.TabName == "" {
		return &ConfigurationError{Reason: fmt.Sprintf("tab group %q needs a tab name", d.PathString())}
	}
	if d.Kind != TabGroup && d.TabName != "" {
		return &ConfigurationError{Reason: fmt.Sprintf("tab name %q given for %v %q", d.TabName, d.Kind, d.PathString())}
	}
	return nil
}

// PathString returns the path joined with /.
func (d *Declaration) PathString() string {
	return strings.Join(d.Path, "/")
}

func (d *Declaration) String() string {
	s := d.Kind.TagName() + ":" + d.PathString()
	if d.TabName != "" {
		s += "#" + d.TabName
	}
	return s
}
