// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop
	// processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on this widget and all of its
// descendants in depth-first order. If the function returns [Break]
// for a widget, its descendants are skipped.
func (w *Widget) WalkDown(fun func(k *Widget) bool) {
	if !fun(w) {
		return
	}
	for _, kid := range w.Children {
		kid.WalkDown(fun)
	}
}

// WalkUp calls the given function on this widget and each of its
// ancestors, stopping when the function returns [Break].
func (w *Widget) WalkUp(fun func(k *Widget) bool) {
	for k := w; k != nil; k = k.Parent {
		if !fun(k) {
			return
		}
	}
}

// FindFirst returns the first descendant (or this widget)
// for which the given function returns true, or nil.
func (w *Widget) FindFirst(fun func(k *Widget) bool) *Widget {
	var found *Widget
	w.WalkDown(func(k *Widget) bool {
		if found != nil {
			return Break
		}
		if fun(k) {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// FindAll returns all descendants (including this widget) for which
// the given function returns true, in depth-first order.
func (w *Widget) FindAll(fun func(k *Widget) bool) []*Widget {
	var all []*Widget
	w.WalkDown(func(k *Widget) bool {
		if fun(k) {
			all = append(all, k)
		}
		return Continue
	})
	return all
}

// HasClassFunc returns a function for [Widget.FindFirst]
// and [Widget.FindAll] matching the given style class.
func HasClassFunc(class string) func(k *Widget) bool {
	return func(k *Widget) bool { return k.HasClass(class) }
}
