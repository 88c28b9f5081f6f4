// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of the tree under root to the given
// writer, one widget per line. Hidden widgets and the contents of closed
// foldouts are included and marked. If decorate is non-nil, it is called
// with each widget and its line text, and its result is written instead.
func Fprint(wr io.Writer, root *Widget, decorate func(w *Widget, line string) string) error {
	var err error
	depth := map[*Widget]int{}
	root.WalkDown(func(k *Widget) bool {
		if err != nil {
			return Break
		}
		d := 0
		if k != root && k.Parent != nil {
			d = depth[k.Parent] + 1
		}
		depth[k] = d
		line := strings.Repeat("  ", d) + describe(k)
		if decorate != nil {
			line = decorate(k, line)
		}
		_, err = fmt.Fprintln(wr, line)
		return Continue
	})
	return err
}

func describe(w *Widget) string {
	var b strings.Builder
	b.WriteString(w.Kind.String())
	b.WriteString(" ")
	b.WriteString(w.Name)
	if w.Text != "" {
		fmt.Fprintf(&b, " %q", w.Text)
	}
	if w.Kind == Foldout {
		if w.Open {
			b.WriteString(" [open]")
		} else {
			b.WriteString(" [closed]")
		}
	}
	if w.hidden {
		b.WriteString(" [hidden]")
	}
	if w.disabled {
		b.WriteString(" [disabled]")
	}
	if w.Style.Width > 0 {
		fmt.Fprintf(&b, " width=%g", w.Style.Width)
	}
	return b.String()
}
