// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import "reflect"

// MapKeyType returns the key type of the given map,
// which may be behind pointers.
func MapKeyType(mp any) reflect.Type {
	return NonPointerType(reflect.TypeOf(mp)).Key()
}

// MapValueType returns the value type of the given map,
// which may be behind pointers.
func MapValueType(mp any) reflect.Type {
	return NonPointerType(reflect.TypeOf(mp)).Elem()
}

// IsMapType returns whether the given type is a map,
// possibly behind pointers.
func IsMapType(typ reflect.Type) bool {
	return typ != nil && NonPointerType(typ).Kind() == reflect.Map
}

// IsSetType returns whether the given type is a map used as a
// set: a map whose values are struct{}. Maps with bool values are
// ordinary maps unless they opt in; see [CanBeSet].
func IsSetType(typ reflect.Type) bool {
	if !IsMapType(typ) {
		return false
	}
	return isEmptyStruct(NonPointerType(typ).Elem())
}

// CanBeSet returns whether the given type is a map that can be
// edited as a set: a map whose values are struct{} or bool.
func CanBeSet(typ reflect.Type) bool {
	if !IsMapType(typ) {
		return false
	}
	et := NonPointerType(typ).Elem()
	return et.Kind() == reflect.Bool || isEmptyStruct(et)
}

func isEmptyStruct(typ reflect.Type) bool {
	return typ.Kind() == reflect.Struct && typ.NumField() == 0
}
