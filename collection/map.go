// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/fields"
)

// MapAdapter is an [Adapter] for any Go map.
type MapAdapter struct {

	// mp is a pointer to the map, so that a nil map can be
	// replaced by a new one on the first commit.
	mp  reflect.Value
	typ reflect.Type
}

// NewMapAdapter returns a new adapter for the given map or pointer to a
// map, of the given declared type. If typ is nil, the dynamic type of mp
// is used. A map given by value is shared with the caller unless it is
// nil, in which case [MapAdapter.Collection] returns the new map once
// the first entry is committed.
func NewMapAdapter(mp any, typ reflect.Type) (*MapAdapter, error) {
	if typ == nil {
		typ = reflect.TypeOf(mp)
	}
	if !reflectx.IsMapType(typ) {
		return nil, fmt.Errorf("collection.NewMapAdapter: %v is not a map: %w", typ, fields.ErrUnsupportedType)
	}
	ma := &MapAdapter{typ: reflectx.NonPointerType(typ)}
	rv := reflect.ValueOf(mp)
	if rv.IsValid() && rv.Kind() == reflect.Pointer && !rv.IsNil() {
		ma.mp = reflectx.PointerValue(reflectx.NonPointerValue(rv))
		return ma, nil
	}
	ma.mp = reflect.New(ma.typ)
	if rv.IsValid() && rv.Kind() == reflect.Map {
		ma.mp.Elem().Set(rv)
	}
	return ma, nil
}

func (ma *MapAdapter) TypeName() string {
	return labels.FriendlyTypeName(ma.typ)
}

func (ma *MapAdapter) KeyType() reflect.Type {
	return ma.typ.Key()
}

func (ma *MapAdapter) ValueType() reflect.Type {
	return ma.typ.Elem()
}

func (ma *MapAdapter) Entries() []Entry {
	m := ma.mp.Elem()
	es := make([]Entry, 0, m.Len())
	for it := m.MapRange(); it.Next(); {
		es = append(es, Entry{Key: it.Key().Interface(), Value: it.Value().Interface()})
	}
	return es
}

// CheckEntry implements [Adapter]. A key that cannot be converted to
// the key type also blocks the commit.
func (ma *MapAdapter) CheckEntry(e Entry) bool {
	if reflectx.IsEmpty(e.Key) {
		return true
	}
	k, err := reflectx.Coerce(e.Key, ma.KeyType())
	if err != nil {
		return true
	}
	return ma.mp.Elem().MapIndex(k).IsValid()
}

func (ma *MapAdapter) CreateDefaultEntry() Entry {
	return Entry{
		Key:   reflectx.DefaultValue(ma.KeyType()).Interface(),
		Value: reflectx.DefaultValue(ma.ValueType()).Interface(),
	}
}

func (ma *MapAdapter) CommitEntry(e Entry) error {
	return ma.set(e.Key, e.Value)
}

func (ma *MapAdapter) set(key, value any) error {
	k, err := reflectx.Coerce(key, ma.KeyType())
	if err != nil {
		return fmt.Errorf("collection: key: %w", err)
	}
	v, err := reflectx.Coerce(value, ma.ValueType())
	if err != nil {
		return fmt.Errorf("collection: value: %w", err)
	}
	m := ma.mp.Elem()
	if m.IsNil() {
		m.Set(reflect.MakeMap(ma.typ))
	}
	m.SetMapIndex(k, v)
	return nil
}

func (ma *MapAdapter) RemoveEntry(e Entry) bool {
	k, err := reflectx.Coerce(e.Key, ma.KeyType())
	if err != nil {
		return false
	}
	m := ma.mp.Elem()
	if !m.MapIndex(k).IsValid() {
		return false
	}
	m.SetMapIndex(k, reflect.Value{})
	return true
}

func (ma *MapAdapter) ClearEntries() {
	if m := ma.mp.Elem(); !m.IsNil() {
		m.Clear()
	}
}

func (ma *MapAdapter) SetEntryValue(key, value any) error {
	return ma.set(key, value)
}

func (ma *MapAdapter) Collection() any {
	return ma.mp.Elem().Interface()
}

func (ma *MapAdapter) MakeRow(f *fields.Factory, e Entry, label string) (*Row, error) {
	return NewRow(f, ma, e, label, true)
}
