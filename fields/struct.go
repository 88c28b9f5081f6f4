// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/widget"
)

// StructField is an editor for a struct value, shown as a foldout
// containing one editor per exported field. Struct values are edited
// on a copy and reported as new values; pointers to structs are edited
// in place.
type StructField struct {
	*widget.Widget

	// Type is the declared type of the value.
	Type reflect.Type

	// Fields are the editors of the struct fields, in declaration order.
	Fields []Value

	// Names are the Go names of the struct fields edited by [StructField.Fields].
	Names []string

	ptr       reflect.Value
	isPointer bool
	listeners widget.Listeners[any]
}

// NewStructField returns a new struct field for the given value of the
// given struct or pointer-to-struct type, with the given label. Fields
// with a `display:"-"` tag are skipped.
func NewStructField(f *Factory, value any, typ reflect.Type, label string) (*StructField, error) {
	sf := &StructField{Widget: widget.New(widget.Foldout, labels.Name(label)), Type: typ}
	sf.SetText(label).AddClass("inspector-struct-field")
	sf.isPointer = typ.Kind() == reflect.Pointer
	rv := reflect.ValueOf(value)
	switch {
	case sf.isPointer && rv.IsValid() && !rv.IsNil():
		sf.ptr = rv
	case sf.isPointer:
		sf.ptr = reflectx.DefaultValue(typ)
	default:
		sf.ptr = reflect.New(typ)
		if rv.IsValid() {
			sf.ptr.Elem().Set(rv)
		}
	}
	st := sf.ptr.Elem()
	for i := 0; i < st.NumField(); i++ {
		sft := st.Type().Field(i)
		if !sft.IsExported() || sft.Tag.Get("display") == "-" {
			continue
		}
		flabel := sft.Tag.Get("label")
		if flabel == "" {
			flabel = labels.Friendly(sft.Name)
		}
		fv, err := f.New(st.Field(i).Interface(), sft.Type, flabel)
		if err != nil {
			return nil, fmt.Errorf("fields.NewStructField: %q: %w", label, err)
		}
		fidx, fname := i, sft.Name
		fv.OnChange(func(v any) {
			if err := sf.setField(fidx, v); err != nil {
				slog.Error("fields: setting struct field failed", "field", fname, "err", err)
				return
			}
			sf.listeners.Send(sf.Value())
		})
		sf.AddChild(fv.AsWidget())
		sf.Fields = append(sf.Fields, fv)
		sf.Names = append(sf.Names, sft.Name)
	}
	return sf, nil
}

func (sf *StructField) setField(i int, v any) error {
	fv := sf.ptr.Elem().Field(i)
	nv, err := reflectx.Coerce(v, fv.Type())
	if err != nil {
		return err
	}
	fv.Set(nv)
	return nil
}

// AsWidget implements [Value].
func (sf *StructField) AsWidget() *widget.Widget {
	return sf.Widget
}

// Value implements [Value].
func (sf *StructField) Value() any {
	if sf.isPointer {
		return sf.ptr.Interface()
	}
	return sf.ptr.Elem().Interface()
}

// OnChange implements [Value].
func (sf *StructField) OnChange(fun func(v any)) {
	sf.listeners.Add(fun)
}

// Field returns the editor of the struct field with the given Go name, or nil.
func (sf *StructField) Field(name string) Value {
	for i, nm := range sf.Names {
		if nm == name {
			return sf.Fields[i]
		}
	}
	return nil
}
