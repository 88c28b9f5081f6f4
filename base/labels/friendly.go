// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cogentcore.org/inspector/base/reflectx"
)

var titler = cases.Title(language.English)

// Friendly returns a user-friendly label for the given Go identifier,
// splitting it into words and title casing them (eg: "MaxHealth" and
// "max_health" both become "Max Health").
func Friendly(name string) string {
	name = strings.TrimPrefix(name, "_")
	if name == "" {
		return ""
	}
	return titler.String(strcase.ToDelimited(name, ' '))
}

// Name returns a widget name for the given label, in kebab-case.
func Name(label string) string {
	return strcase.ToKebab(label)
}

// FriendlyTypeName returns a user-friendly version of the name of the given type.
// It excludes the package and converts various builtin types into more
// friendly forms (eg: "int" to "Number"). Maps are "Map", or "Set" when
// their values are struct{} or bool.
func FriendlyTypeName(typ reflect.Type) string {
	if typ == nil {
		return "Value"
	}
	nptyp := reflectx.NonPointerType(typ)
	nm := nptyp.Name()

	if nm != "" {
		switch nm {
		case "string":
			return "Text"
		case "bool":
			return "Switch"
		case "float32", "float64", "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
			return "Number"
		}
		return Friendly(nm)
	}

	switch nptyp.Kind() {
	case reflect.Map:
		if reflectx.IsSetType(nptyp) {
			return "Set"
		}
		return "Map"
	case reflect.Slice, reflect.Array:
		return "List of " + FriendlyTypeName(nptyp.Elem())
	}
	if nptyp.Kind() == reflect.Interface {
		return "Value"
	}
	return nptyp.String()
}
