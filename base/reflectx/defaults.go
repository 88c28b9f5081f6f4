// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"

	"github.com/jinzhu/copier"
)

// prototypes holds registered default instances, keyed by type.
var prototypes = map[reflect.Type]any{}

// AddDefault registers the given value as the default instance of its type.
// [DefaultValue] returns a deep copy of it, so the prototype itself is never
// handed out.
func AddDefault[T any](proto T) {
	prototypes[reflect.TypeFor[T]()] = proto
}

// DefaultValue returns a new default instance of the given type:
// a deep copy of a registered prototype if there is one, a freshly
// allocated element for pointer types, an empty map or slice for
// map and slice types, and the zero value otherwise.
func DefaultValue(typ reflect.Type) reflect.Value {
	if typ == nil {
		return reflect.Value{}
	}
	if proto, ok := prototypes[typ]; ok {
		nv := reflect.New(typ)
		if err := copier.CopyWithOption(nv.Interface(), proto, copier.Option{DeepCopy: true}); err == nil {
			return nv.Elem()
		}
	}
	switch typ.Kind() {
	case reflect.Pointer:
		pv := reflect.New(typ.Elem())
		pv.Elem().Set(DefaultValue(typ.Elem()))
		return pv
	case reflect.Map:
		return reflect.MakeMap(typ)
	case reflect.Slice:
		return reflect.MakeSlice(typ, 0, 0)
	}
	return reflect.New(typ).Elem()
}

// Default is the generic form of [DefaultValue].
func Default[T any]() T {
	return DefaultValue(reflect.TypeFor[T]()).Interface().(T)
}
