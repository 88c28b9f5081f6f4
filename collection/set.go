// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/fields"
)

// SetAdapter is an [Adapter] for a map used as a set, with struct{}
// or bool values. Its rows only show the key; committed entries have
// the value struct{}{} or true. [NewAdapter] only picks it for struct{}
// values; a map[K]bool is a set only when built with [NewSetAdapter],
// as form fields tagged `display:"set"` are.
type SetAdapter struct {
	*MapAdapter
}

// NewSetAdapter returns a new adapter for the given set,
// in the same way as [NewMapAdapter].
func NewSetAdapter(set any, typ reflect.Type) (*SetAdapter, error) {
	ma, err := NewMapAdapter(set, typ)
	if err != nil {
		return nil, err
	}
	if !reflectx.CanBeSet(ma.typ) {
		return nil, fmt.Errorf("collection.NewSetAdapter: %v is not a set: %w", ma.typ, fields.ErrUnsupportedType)
	}
	return &SetAdapter{MapAdapter: ma}, nil
}

// member returns the value stored for members of the set.
func (sa *SetAdapter) member() any {
	if sa.ValueType().Kind() == reflect.Bool {
		return true
	}
	return reflect.New(sa.ValueType()).Elem().Interface()
}

func (sa *SetAdapter) TypeName() string {
	return "Set"
}

func (sa *SetAdapter) CreateDefaultEntry() Entry {
	return Entry{Key: reflectx.DefaultValue(sa.KeyType()).Interface(), Value: sa.member()}
}

func (sa *SetAdapter) CommitEntry(e Entry) error {
	return sa.set(e.Key, sa.member())
}

func (sa *SetAdapter) MakeRow(f *fields.Factory, e Entry, label string) (*Row, error) {
	return NewRow(f, sa, e, label, false)
}

// NewAdapter returns a [SetAdapter] for maps with struct{} values,
// and a [MapAdapter] for other maps, including map[K]bool.
func NewAdapter(mp any, typ reflect.Type) (Adapter, error) {
	if typ == nil {
		typ = reflect.TypeOf(mp)
	}
	if reflectx.IsSetType(typ) {
		return NewSetAdapter(mp, typ)
	}
	return NewMapAdapter(mp, typ)
}
