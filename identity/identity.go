// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package identity resolves the identity of inspected objects, which
// prefixes the unique ids of their groups so that persisted group state
// is scoped per object.
package identity

import (
	"reflect"

	"github.com/google/uuid"
)

// Identifier is an interface that inspected objects can implement
// to provide their own identity, which is then stable across sessions.
type Identifier interface {

	// InspectorID returns the identity of the object.
	InspectorID() string
}

// Registry assigns identities to objects within one editing session.
// The zero value is ready to use.
type Registry struct {
	ids map[any]string
}

// Session is the registry shared by all forms of the session,
// so that forms on the same object share its identity.
var Session = &Registry{}

// ID returns the identity of the given object. It uses [Identifier] if
// the object implements it; otherwise pointers get a random id on first
// sight that is returned for the same pointer for the rest of the session,
// and all other values are identified by their type name.
func (r *Registry) ID(obj any) string {
	if obj == nil {
		return ""
	}
	if idr, ok := obj.(Identifier); ok {
		return idr.InspectorID()
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return rv.Type().String()
	}
	if r.ids == nil {
		r.ids = map[any]string{}
	}
	if id, ok := r.ids[obj]; ok {
		return id
	}
	id := uuid.NewString()
	r.ids[obj] = id
	return id
}

// Forget drops the identity assigned to the given object,
// so that it is no longer retained by the registry.
func (r *Registry) Forget(obj any) {
	delete(r.ids, obj)
}

// Len returns the number of objects with assigned identities.
func (r *Registry) Len() int {
	return len(r.ids)
}
