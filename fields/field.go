// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/widget"
)

// ErrReadOnly is returned when editing a disabled field.
var ErrReadOnly = errors.New("fields: read-only")

// Field is an editor for a single scalar value: a label
// followed by a text editor showing the value.
type Field struct {
	*widget.Widget

	// Type is the declared type of the value.
	Type reflect.Type

	// LabelWidget is the label part of the field.
	LabelWidget *widget.Widget

	// Editor is the part of the field showing the value.
	Editor *widget.Widget

	value     reflect.Value
	listeners widget.Listeners[any]
}

// NewField returns a new scalar field for the given value
// of the given type, with the given label.
func NewField(value any, typ reflect.Type, label string) (*Field, error) {
	rv, err := reflectx.Coerce(value, typ)
	if err != nil {
		return nil, fmt.Errorf("fields.NewField: %q: %w", label, err)
	}
	fd := &Field{Widget: widget.New(widget.Frame, labels.Name(label)), Type: typ, value: rv}
	fd.AddClass("inspector-field", widget.ClassAligned)
	fd.LabelWidget = fd.NewChild(widget.Label, "label").SetText(label).AddClass(widget.ClassLabel)
	fd.Editor = fd.NewChild(widget.Field, "editor")
	fd.update()
	return fd, nil
}

func (fd *Field) update() {
	fd.Editor.SetText(reflectx.ToString(fd.Value()))
}

// AsWidget implements [Value].
func (fd *Field) AsWidget() *widget.Widget {
	return fd.Widget
}

// Value implements [Value].
func (fd *Field) Value() any {
	if !fd.value.IsValid() {
		return nil
	}
	return fd.value.Interface()
}

// Label returns the label text of the field.
func (fd *Field) Label() string {
	return fd.LabelWidget.Text
}

// OnChange implements [Value].
func (fd *Field) OnChange(fun func(v any)) {
	fd.listeners.Add(fun)
}

// SetValue simulates the user entering the given value, which is
// converted to the type of the field (text is parsed). Change
// listeners are notified. Disabled fields return [ErrReadOnly].
func (fd *Field) SetValue(v any) error {
	if fd.IsDestroyed() || !fd.IsEnabled() {
		return ErrReadOnly
	}
	if err := fd.Set(v); err != nil {
		return err
	}
	fd.listeners.Send(fd.Value())
	return nil
}

// Set sets the value of the field without notifying listeners.
func (fd *Field) Set(v any) error {
	rv, err := reflectx.Coerce(v, fd.Type)
	if err != nil {
		return fmt.Errorf("fields.Field.Set: %q: %w", fd.Label(), err)
	}
	fd.value = rv
	fd.update()
	return nil
}
