// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"fmt"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/fields"
	"cogentcore.org/inspector/widget"
)

// Row shows one entry of a collection: a key field, a value field
// (for collections with values), and a close button. A row is either
// unlocked, when it shows the staged entry of an insert and nothing is
// written to the collection, or locked, when it shows a live entry:
// then the key is read-only and value edits are written through.
type Row struct {
	*widget.Widget

	// Entry is the entry currently shown by the row.
	Entry Entry

	// KeyField is the editor of the key.
	KeyField fields.Value

	// ValueField is the editor of the value, or nil for sets.
	ValueField fields.Value

	// CloseButton requests the row to be closed.
	CloseButton *widget.Widget

	adapter        Adapter
	locked         bool
	listeners      widget.Listeners[Entry]
	closeListeners widget.Listeners[*Row]
}

// NewRow returns a new unlocked row for the given entry of the collection
// of the given adapter, with the given label. If withValue is false,
// only the key is shown.
func NewRow(f *fields.Factory, a Adapter, e Entry, label string, withValue bool) (*Row, error) {
	r := &Row{Widget: widget.New(widget.Frame, labels.Name(label)), Entry: e, adapter: a}
	r.SetText(label).AddClass("inspector-collection__row")
	kf, err := f.New(e.Key, a.KeyType(), "Key")
	if err != nil {
		return nil, fmt.Errorf("collection.NewRow: %q: %w", label, err)
	}
	r.KeyField = kf
	r.AddChild(kf.AsWidget())
	kf.OnChange(func(v any) {
		r.Entry = r.Entry.WithKey(v)
		r.listeners.Send(r.Entry)
	})
	if withValue {
		vf, err := f.New(e.Value, a.ValueType(), "Value")
		if err != nil {
			return nil, fmt.Errorf("collection.NewRow: %q: %w", label, err)
		}
		r.ValueField = vf
		r.AddChild(vf.AsWidget())
		vf.OnChange(func(v any) {
			r.Entry = r.Entry.WithValue(v)
			if r.locked {
				errors.Log(r.adapter.SetEntryValue(r.Entry.Key, v))
			}
			r.listeners.Send(r.Entry)
		})
	}
	r.CloseButton = r.NewChild(widget.Button, "close").SetText("×").AddClass("inspector-collection__close")
	r.CloseButton.OnClick(func(w *widget.Widget) {
		r.closeListeners.Send(r)
	})
	return r, nil
}

// Lock binds the row to the live entry it shows: the key becomes
// read-only and value edits are written to the collection.
func (r *Row) Lock() *Row {
	r.locked = true
	r.KeyField.AsWidget().SetEnabled(false)
	return r
}

// IsLocked returns whether [Row.Lock] has been called.
func (r *Row) IsLocked() bool {
	return r.locked
}

// OnChange adds a listener called with the new entry
// whenever the user edits the key or value.
func (r *Row) OnChange(fun func(e Entry)) *Row {
	r.listeners.Add(fun)
	return r
}

// OnClose adds a listener called when the user clicks the close button.
func (r *Row) OnClose(fun func(r *Row)) *Row {
	r.closeListeners.Add(fun)
	return r
}
