// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/base/ordmap"
	"cogentcore.org/inspector/state"
	"cogentcore.org/inspector/widget"
)

// TabBuilder builds [TabGroup] groups: a strip of tab buttons above a
// page root holding one page per tab name. Pages are made the first time
// a tab name is referenced, so tabs are in first-seen order. The selected
// tab index is restored from the store, and written back whenever the
// user selects a tab.
type TabBuilder struct {
	*Context

	// Root is the root element.
	Root *widget.Widget

	// Strip holds the tab buttons.
	Strip *widget.Widget

	// PageRoot holds the pages.
	PageRoot *widget.Widget

	pages    *ordmap.Map[string, *widget.Widget]
	selected int
}

// NewTabBuilder returns a new tab builder for the given context.
func NewTabBuilder(ctx *Context) *TabBuilder {
	return &TabBuilder{Context: ctx, pages: ordmap.New[string, *widget.Widget]()}
}

func (tb *TabBuilder) CreateRootElement(label string) *widget.Widget {
	tb.selected = state.Int(tb.Store, tb.StateKey(), 0)
	tb.Root = widget.New(widget.HelpBox, labels.Name(label)).AddClass("inspector-group__tab-group")
	tb.Strip = tb.Root.NewChild(widget.TabStrip, "tabs")
	tb.PageRoot = tb.Root.NewChild(widget.Frame, "page-root")
	return tb.Root
}

// GroupElement returns the page for the given tab name,
// making it and its tab button if it does not exist yet.
func (tb *TabBuilder) GroupElement(tabName string) *widget.Widget {
	if page, ok := tb.pages.ValueByKeyTry(tabName); ok {
		return page
	}
	page := tb.PageRoot.NewChild(widget.Frame, labels.Name(tabName)).AddClass("tab-page")
	idx := tb.pages.Len()
	tb.pages.Add(tabName, page)
	tb.Strip.NewChild(widget.Button, labels.Name(tabName)).SetText(tabName).OnClick(func(w *widget.Widget) {
		tb.Select(idx)
	})
	tb.update()
	return page
}

// TabNames returns the tab names in display order.
func (tb *TabBuilder) TabNames() []string {
	return tb.pages.Keys()
}

// Page returns the page for the given tab name, or nil.
func (tb *TabBuilder) Page(tabName string) *widget.Widget {
	page, _ := tb.pages.ValueByKeyTry(tabName)
	return page
}

// Selected returns the index of the visible tab, or -1 if there are
// no tabs. A restored index beyond the current tabs shows the first tab.
func (tb *TabBuilder) Selected() int {
	n := tb.pages.Len()
	if n == 0 {
		return -1
	}
	if tb.selected < 0 || tb.selected >= n {
		return 0
	}
	return tb.selected
}

// Select selects the tab at the given index, persisting it.
// It returns false if the index is out of range.
func (tb *TabBuilder) Select(idx int) bool {
	if idx < 0 || idx >= tb.pages.Len() {
		return false
	}
	if idx != tb.selected {
		tb.selected = idx
		state.SetInt(tb.Store, tb.StateKey(), idx)
	}
	tb.update()
	return true
}

// update shows the selected page and hides the others.
func (tb *TabBuilder) update() {
	sel := tb.Selected()
	for i, kv := range tb.pages.Order {
		kv.Value.SetHidden(i != sel)
		if btn := tb.Strip.Child(i); btn != nil {
			if i == sel {
				btn.AddClass("selected")
			} else {
				btn.RemoveClass("selected")
			}
		}
	}
}
