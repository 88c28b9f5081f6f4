// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/widget"
)

// HorizontalBuilder builds [HorizontalGroup] groups. After layout, and
// again whenever the measured size of the group changes, the labels of
// its direct children are shrunk so that they share the label column.
type HorizontalBuilder struct {
	*Context

	// Root is the root element.
	Root *widget.Widget
}

func (hb *HorizontalBuilder) CreateRootElement(label string) *widget.Widget {
	hb.Root = widget.New(widget.Frame, labels.Name(label)).AddClass("inspector-group__horizontal")
	hb.Root.OnGeometryChanged(func(g widget.Geometry) {
		hb.Root.Schedule(hb.adjustLabels)
	})
	hb.Root.Schedule(hb.adjustLabels)
	return hb.Root
}

func (hb *HorizontalBuilder) GroupElement(subKey string) *widget.Widget {
	return hb.Root
}

func (hb *HorizontalBuilder) adjustLabels() error {
	if hb.Root.IsDestroyed() {
		return widget.ErrDestroyed
	}
	n := hb.Root.NumChildren()
	if n <= 1 {
		return nil
	}
	inspector := hb.Root.Root()
	for _, kid := range hb.Root.Children {
		kid.Schedule(func() error {
			return hb.adjustLabel(kid, inspector, n)
		})
	}
	return nil
}

func (hb *HorizontalBuilder) adjustLabel(field, inspector *widget.Widget, n int) error {
	if field.IsDestroyed() || inspector.IsDestroyed() {
		return widget.ErrDestroyed
	}
	if !field.HasChildren() {
		return nil
	}
	if field.FindFirst(func(k *widget.Widget) bool { return k.Kind == widget.Foldout }) != nil {
		return nil
	}
	field.RemoveClass(widget.ClassAligned)
	if lbl := field.FindFirst(widget.HasClassFunc(widget.ClassLabel)); lbl != nil {
		lbl.Style.Width = hb.Settings.LabelWidth(inspector.Geometry.Width, n)
	}
	return nil
}
