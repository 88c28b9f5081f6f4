// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fields provides the generic field widget factory, which makes
// editors for values whose types are only known at runtime.
package fields

import (
	"fmt"
	"reflect"
	"time"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/widget"
)

// Value is an editor for one value, made by a [Factory].
type Value interface {

	// AsWidget returns the root widget of the editor.
	AsWidget() *widget.Widget

	// Value returns the current value of the editor.
	Value() any

	// OnChange adds a listener called with the new value
	// whenever the user changes it.
	OnChange(fun func(v any))
}

// Constructor makes a [Value] for the given current value, of the given
// declared type, with the given label. The factory is passed so that
// constructors of composite values can make editors for their parts.
type Constructor func(f *Factory, value any, typ reflect.Type, label string) (Value, error)

// ErrUnsupportedType is returned by [Factory.New] when no constructor
// is registered for a type.
var ErrUnsupportedType = errors.New("fields: unsupported type")

// Factory makes editors for values, dispatching first on the exact
// declared type and then on its kind. Only registered types and kinds
// are supported.
type Factory struct {

	// Types are the constructors for specific types.
	Types map[reflect.Type]Constructor

	// Kinds are the constructors for kinds of types. Pointers to
	// structs are looked up as [reflect.Struct].
	Kinds map[reflect.Kind]Constructor
}

// NewFactory returns a new factory with the builtin constructors:
// scalar fields for strings, booleans, numbers, interfaces and
// [time.Duration], and nested forms for structs.
func NewFactory() *Factory {
	f := &Factory{
		Types: map[reflect.Type]Constructor{},
		Kinds: map[reflect.Kind]Constructor{},
	}
	scalar := func(f *Factory, value any, typ reflect.Type, label string) (Value, error) {
		return NewField(value, typ, label)
	}
	for _, k := range []reflect.Kind{
		reflect.String, reflect.Bool, reflect.Interface,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
	} {
		f.AddKind(k, scalar)
	}
	AddType[time.Duration](f, scalar)
	f.AddKind(reflect.Struct, func(f *Factory, value any, typ reflect.Type, label string) (Value, error) {
		return NewStructField(f, value, typ, label)
	})
	return f
}

// AddType registers the given constructor for the given type.
func (f *Factory) AddType(typ reflect.Type, ctor Constructor) {
	f.Types[typ] = ctor
}

// AddType registers the given constructor for type T.
func AddType[T any](f *Factory, ctor Constructor) {
	f.AddType(reflect.TypeFor[T](), ctor)
}

// AddKind registers the given constructor for the given kind.
func (f *Factory) AddKind(kind reflect.Kind, ctor Constructor) {
	f.Kinds[kind] = ctor
}

// Constructor returns the constructor for the given type, or nil.
func (f *Factory) Constructor(typ reflect.Type) Constructor {
	if ctor, ok := f.Types[typ]; ok {
		return ctor
	}
	kind := typ.Kind()
	if kind == reflect.Pointer && typ.Elem().Kind() == reflect.Struct {
		kind = reflect.Struct
	}
	return f.Kinds[kind]
}

// New makes an editor for the given current value of the given declared
// type. If typ is nil, the dynamic type of the value is used. If the value
// is nil, a default instance of the type is edited.
func (f *Factory) New(value any, typ reflect.Type, label string) (Value, error) {
	if typ == nil {
		typ = reflect.TypeOf(value)
	}
	if typ == nil {
		return nil, fmt.Errorf("fields.Factory.New: %q: %w: no type for nil value", label, ErrUnsupportedType)
	}
	ctor := f.Constructor(typ)
	if ctor == nil {
		return nil, fmt.Errorf("fields.Factory.New: %q: %w: %v", label, ErrUnsupportedType, typ)
	}
	if value == nil && typ.Kind() != reflect.Interface {
		value = reflectx.DefaultValue(typ).Interface()
	}
	return ctor(f, value, typ, label)
}
