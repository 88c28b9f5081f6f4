// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collection provides an editor for associative collections
// such as maps and sets, with one row per entry and a staged row
// for inserting new entries.
package collection

import (
	"reflect"

	"cogentcore.org/inspector/fields"
)

// Entry is one key/value pair of a collection. Entries are never
// modified in place: editing the key or value makes a new entry.
type Entry struct {
	Key   any
	Value any
}

// WithKey returns a copy of the entry with the given key.
func (e Entry) WithKey(key any) Entry {
	return Entry{Key: key, Value: e.Value}
}

// WithValue returns a copy of the entry with the given value.
func (e Entry) WithValue(value any) Entry {
	return Entry{Key: e.Key, Value: value}
}

// Adapter gives an [Editor] type-erased access to one backing collection.
type Adapter interface {

	// TypeName returns the user-facing name of the collection type,
	// like "Map", used in the empty placeholder.
	TypeName() string

	// KeyType returns the declared key type.
	KeyType() reflect.Type

	// ValueType returns the declared value type.
	ValueType() reflect.Type

	// Entries returns the current entries in the iteration
	// order of the backing collection.
	Entries() []Entry

	// CheckEntry returns true if the key of the given entry is already
	// in the collection, or is nil or empty. A staged entry may only be
	// committed if CheckEntry returns false.
	CheckEntry(e Entry) bool

	// CreateDefaultEntry returns an entry with a default key and value.
	CreateDefaultEntry() Entry

	// CommitEntry adds the given entry to the collection. The result is
	// undefined if the key is already present: callers must gate
	// commits through CheckEntry.
	CommitEntry(e Entry) error

	// RemoveEntry removes the entry with the key of the given entry,
	// returning whether it was present.
	RemoveEntry(e Entry) bool

	// ClearEntries removes all entries.
	ClearEntries()

	// SetEntryValue sets the value of the existing entry with the given key.
	SetEntryValue(key, value any) error

	// Collection returns the backing collection.
	Collection() any

	// MakeRow makes the row showing the given entry with the given label.
	MakeRow(f *fields.Factory, e Entry, label string) (*Row, error)
}
