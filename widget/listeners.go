// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

// Listeners is a list of functions notified with a value of type T.
// It is the single notification channel used by widgets and field
// editors; composition wires child listeners to parents explicitly.
type Listeners[T any] []func(v T)

// Add adds the given listener.
func (ls *Listeners[T]) Add(fun func(v T)) {
	*ls = append(*ls, fun)
}

// Send calls all of the listeners in the order they were added.
// Listeners added during a send are not called for that send.
func (ls Listeners[T]) Send(v T) {
	for _, fun := range ls {
		fun(v)
	}
}

// Len returns the number of listeners.
func (ls Listeners[T]) Len() int {
	return len(ls)
}
