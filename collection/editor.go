// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/fields"
	"cogentcore.org/inspector/widget"
)

// State is the state of an [Editor].
type State int32

const (
	// Idle editors show the entries of the collection.
	Idle State = iota

	// Inserting editors also show a staged row for a new entry.
	Inserting
)

func (s State) String() string {
	if s == Inserting {
		return "Inserting"
	}
	return "Idle"
}

// Add button texts.
const (
	AddText     = "+ Add"
	DoneText    = "Done"
	InvalidText = "(Invalid key)"
)

// Editor edits an associative collection through an [Adapter]. It is a
// foldout containing one locked row per entry (or an empty placeholder),
// an input form holding the staged row while inserting, and an add button
// that begins an insert and then commits it. Only one operation is
// pending at a time: while inserting, requests to close other rows are
// ignored.
type Editor struct {
	*widget.Widget

	// Adapter gives access to the collection.
	Adapter Adapter

	// Factory makes the key and value fields.
	Factory *fields.Factory

	// Contents holds the locked rows.
	Contents *widget.Widget

	// InputForm holds the staged row or the empty placeholder.
	InputForm *widget.Widget

	// AddButton begins an insert, and commits it while inserting.
	AddButton *widget.Widget

	state       State
	rows        []*Row
	staged      *Row
	placeholder *widget.Widget
	listeners   widget.Listeners[any]
}

// NewEditor returns a new editor with the given label for the collection
// of the given adapter, using the given factory for its fields.
func NewEditor(f *fields.Factory, a Adapter, label string) (*Editor, error) {
	ed := &Editor{Widget: widget.New(widget.Foldout, labels.Name(label)), Adapter: a, Factory: f}
	ed.SetText(label).AddClass("inspector-collection")
	ed.Contents = ed.NewChild(widget.Frame, "contents")
	ed.InputForm = ed.NewChild(widget.Frame, "input-form")
	ed.AddButton = ed.NewChild(widget.Button, "add").SetText(AddText)
	ed.AddButton.OnClick(func(w *widget.Widget) {
		if ed.state == Idle {
			errors.Log(ed.BeginInsert())
			return
		}
		ed.EndInsert()
	})
	if err := ed.Rebuild(); err != nil {
		return nil, err
	}
	return ed, nil
}

// Register registers the editor as the constructor
// for map values in the given factory.
func Register(f *fields.Factory) {
	f.AddKind(reflect.Map, func(f *fields.Factory, value any, typ reflect.Type, label string) (fields.Value, error) {
		a, err := NewAdapter(value, typ)
		if err != nil {
			return nil, err
		}
		return NewEditor(f, a, label)
	})
}

// AsWidget implements [fields.Value].
func (ed *Editor) AsWidget() *widget.Widget {
	return ed.Widget
}

// Value implements [fields.Value], returning the collection.
func (ed *Editor) Value() any {
	return ed.Adapter.Collection()
}

// OnChange implements [fields.Value]. Listeners are called with the
// collection whenever an entry is added, removed or changed.
func (ed *Editor) OnChange(fun func(v any)) {
	ed.listeners.Add(fun)
}

// State returns the current state.
func (ed *Editor) State() State {
	return ed.state
}

// Rows returns the locked rows, one per entry.
func (ed *Editor) Rows() []*Row {
	return ed.rows
}

// Staged returns the staged row while inserting, or nil.
func (ed *Editor) Staged() *Row {
	return ed.staged
}

// Placeholder returns the placeholder shown for an empty collection, or nil.
func (ed *Editor) Placeholder() *widget.Widget {
	return ed.placeholder
}

// IsEmpty returns whether the editor shows the empty placeholder.
func (ed *Editor) IsEmpty() bool {
	return ed.placeholder != nil
}

func (ed *Editor) sendChange() {
	ed.listeners.Send(ed.Adapter.Collection())
}

// Rebuild replaces all rows with one locked row per current entry of the
// collection, in its iteration order, or the empty placeholder if it has
// none. A staged insert is discarded.
func (ed *Editor) Rebuild() error {
	ed.state = Idle
	ed.staged = nil
	ed.placeholder = nil
	ed.rows = nil
	ed.Contents.DeleteChildren()
	ed.InputForm.DeleteChildren()

	entries := ed.Adapter.Entries()
	if len(entries) == 0 {
		ed.placeholder = ed.InputForm.NewChild(widget.HelpBox, "empty").SetText(ed.Adapter.TypeName() + " is empty.")
	}
	for i, e := range entries {
		r, err := ed.Adapter.MakeRow(ed.Factory, e, fmt.Sprintf("Element %d", i))
		if err != nil {
			return err
		}
		r.Lock().OnClose(func(r *Row) {
			ed.RequestRemove(r)
		})
		r.OnChange(func(e Entry) {
			ed.sendChange()
		})
		ed.Contents.AddChild(r.Widget)
		ed.rows = append(ed.rows, r)
	}
	ed.AddButton.SetText(AddText).SetEnabled(true)
	return nil
}

// BeginInsert shows a staged row with a default entry. The entry is
// validated on every edit, enabling the add button only when its key
// is new. It does nothing while already inserting.
func (ed *Editor) BeginInsert() error {
	if ed.state == Inserting {
		return nil
	}
	r, err := ed.Adapter.MakeRow(ed.Factory, ed.Adapter.CreateDefaultEntry(), "New Value")
	if err != nil {
		return err
	}
	if ed.placeholder != nil {
		ed.placeholder.Delete()
		ed.placeholder = nil
	}
	r.OnChange(func(e Entry) {
		ed.validate()
	})
	r.OnClose(func(r *Row) {
		ed.CancelInsert()
	})
	ed.InputForm.AddChild(r.Widget)
	ed.staged = r
	ed.state = Inserting
	ed.validate()
	return nil
}

// validate updates the add button for the staged entry.
func (ed *Editor) validate() bool {
	valid := !ed.Adapter.CheckEntry(ed.staged.Entry)
	if valid {
		ed.AddButton.SetText(DoneText)
	} else {
		ed.AddButton.SetText(InvalidText)
	}
	ed.AddButton.SetEnabled(valid)
	return valid
}

// EndInsert commits the staged entry, notifies change listeners and
// rebuilds. It returns false without committing if not inserting, or if
// the staged key is empty or already present.
func (ed *Editor) EndInsert() bool {
	if ed.state != Inserting {
		return false
	}
	if !ed.validate() {
		return false
	}
	if err := ed.Adapter.CommitEntry(ed.staged.Entry); err != nil {
		slog.Error("collection: commit failed", "entry", ed.staged.Entry, "err", err)
		return false
	}
	ed.sendChange()
	errors.Log(ed.Rebuild())
	return true
}

// CancelInsert discards the staged row without changing the collection.
func (ed *Editor) CancelInsert() {
	if ed.state != Inserting {
		return
	}
	errors.Log(ed.Rebuild())
}

// RequestRemove removes the entry of the given locked row, notifies
// change listeners and rebuilds. It returns false and does nothing while
// inserting, for unlocked rows, and if the entry was not present.
func (ed *Editor) RequestRemove(r *Row) bool {
	if ed.state == Inserting || !r.IsLocked() {
		return false
	}
	if !ed.Adapter.RemoveEntry(r.Entry) {
		return false
	}
	ed.sendChange()
	errors.Log(ed.Rebuild())
	return true
}

// Clear removes all entries, notifies change listeners and rebuilds.
// It does nothing while inserting.
func (ed *Editor) Clear() bool {
	if ed.state == Inserting {
		return false
	}
	ed.Adapter.ClearEntries()
	ed.sendChange()
	errors.Log(ed.Rebuild())
	return true
}
