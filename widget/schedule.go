// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"log/slog"

	"cogentcore.org/inspector/base/errors"
)

// ErrDestroyed is returned by scheduled callbacks that find
// the widget they operate on already torn down.
var ErrDestroyed = errors.New("widget: destroyed")

// maxSettleRounds bounds the number of passes in [Settle] so that
// callbacks rescheduling themselves cannot loop forever.
const maxSettleRounds = 64

// Schedule adds a callback that is run by the next [Settle] of the tree
// this widget is attached to, after layout. Callbacks of widgets that
// are destroyed before then are dropped.
func (w *Widget) Schedule(fun func() error) *Widget {
	if w.destroyed {
		return w
	}
	w.scheduled = append(w.scheduled, fun)
	return w
}

// HasScheduled returns whether the widget has callbacks pending.
func (w *Widget) HasScheduled() bool {
	return len(w.scheduled) > 0
}

// Settle runs the scheduled callbacks of all live widgets in the tree
// under root, in tree order, repeating until no callbacks remain.
// Callbacks scheduled while settling run in a later pass. A callback
// returning [ErrDestroyed] is ignored; other errors are logged.
// Settle returns the number of callbacks that were run.
func Settle(root *Widget) int {
	n := 0
	for round := 0; round < maxSettleRounds; round++ {
		var pending []func() error
		root.WalkDown(func(k *Widget) bool {
			if k.destroyed {
				return Break
			}
			pending = append(pending, k.scheduled...)
			k.scheduled = nil
			return Continue
		})
		if len(pending) == 0 {
			return n
		}
		for _, fun := range pending {
			n++
			err := fun()
			if err == nil || errors.Is(err, ErrDestroyed) {
				continue
			}
			slog.Error("widget.Settle: scheduled callback failed", "root", root.Path(), "err", err)
		}
	}
	slog.Error("widget.Settle: callbacks did not settle", "root", root.Path(), "rounds", maxSettleRounds)
	return n
}
