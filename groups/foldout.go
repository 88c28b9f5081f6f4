// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/state"
	"cogentcore.org/inspector/widget"
)

// FoldoutBuilder builds [FoldoutGroup] groups. Whether the foldout is
// open is restored from the store, and written back whenever the user
// opens or closes it.
type FoldoutBuilder struct {
	*Context

	// Foldout is the root element.
	Foldout *widget.Widget
}

func (fb *FoldoutBuilder) CreateRootElement(label string) *widget.Widget {
	key := fb.StateKey()
	fb.Foldout = widget.New(widget.Foldout, labels.Name(label)).SetText(label).AddClass("inspector-group__foldout")
	fb.Foldout.Open = state.Bool(fb.Store, key, false)
	fb.Foldout.OnToggle(func(open bool) {
		state.SetBool(fb.Store, key, open)
	})
	return fb.Foldout
}

func (fb *FoldoutBuilder) GroupElement(subKey string) *widget.Widget {
	return fb.Foldout
}
