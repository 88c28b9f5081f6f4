// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state provides the persisted UI state store that group
// builders use to remember small pieces of state, like the selected
// tab or whether a foldout is open, across rebuilds of a form.
package state

import (
	"strconv"
)

// Store is a string key-value store that outlives form rebuilds.
type Store interface {

	// Get returns the value for the given key, and whether it was present.
	Get(key string) (string, bool)

	// Set sets the value for the given key.
	Set(key, value string)
}

// Key returns the store key for the given group unique id
// and group kind name, as <id>_<kind>.
func Key(id, kind string) string {
	return id + "_" + kind
}

// Int returns the integer value stored at the given key, or def
// if there is no value or it does not parse as an integer.
func Int(s Store, key string, def int) int {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// SetInt stores the given integer value at the given key.
func SetInt(s Store, key string, value int) {
	s.Set(key, strconv.Itoa(value))
}

// Bool returns the boolean value stored at the given key, or def
// if there is no value or it does not parse as a boolean.
func Bool(s Store, key string, def bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// SetBool stores the given boolean value at the given key.
func SetBool(s Store, key string, value bool) {
	s.Set(key, strconv.FormatBool(value))
}

// Map is an in-memory [Store].
type Map map[string]string

// Get implements [Store].
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements [Store].
func (m Map) Set(key, value string) {
	m[key] = value
}
