// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/widget"
)

// PlainBuilder builds [Plain] groups.
type PlainBuilder struct {
	root *widget.Widget
}

func (pb *PlainBuilder) CreateRootElement(label string) *widget.Widget {
	pb.root = widget.New(widget.Box, labels.Name(label)).AddClass("inspector-group__box")
	return pb.root
}

func (pb *PlainBuilder) GroupElement(subKey string) *widget.Widget {
	return pb.root
}

// BoxBuilder builds [BoxGroup] groups.
type BoxBuilder struct {
	root *widget.Widget
}

func (bb *BoxBuilder) CreateRootElement(label string) *widget.Widget {
	bb.root = widget.New(widget.HelpBox, labels.Name(label)).SetText(label).AddClass("inspector-group__help-box")
	return bb.root
}

func (bb *BoxBuilder) GroupElement(subKey string) *widget.Widget {
	return bb.root
}

// InlineBuilder builds [InlineGroup] groups.
type InlineBuilder struct {
	root *widget.Widget
}

func (ib *InlineBuilder) CreateRootElement(label string) *widget.Widget {
	ib.root = widget.New(widget.Frame, labels.Name(label))
	return ib.root
}

func (ib *InlineBuilder) GroupElement(subKey string) *widget.Widget {
	return ib.root
}
