// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/inspector/base/errors"
)

// File is a [Store] backed by a file. The file is encoded as TOML unless
// it has a .json, .yaml or .yml extension. Changes are kept in memory
// until [File.Save] is called.
type File struct {

	// Filename is the path of the file.
	Filename string

	values Map
	dirty  bool
}

// OpenFile opens the store at the given filename.
// A missing file results in an empty store.
func OpenFile(filename string) (*File, error) {
	f := &File{Filename: filename, values: Map{}}
	b, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, err
	}
	if err := unmarshal(filename, b, &f.values); err != nil {
		return nil, fmt.Errorf("state.OpenFile: %s: %w", filename, err)
	}
	if f.values == nil {
		f.values = Map{}
	}
	return f, nil
}

// Get implements [Store].
func (f *File) Get(key string) (string, bool) {
	return f.values.Get(key)
}

// Set implements [Store].
func (f *File) Set(key, value string) {
	if old, ok := f.values[key]; ok && old == value {
		return
	}
	f.values.Set(key, value)
	f.dirty = true
}

// Len returns the number of stored keys.
func (f *File) Len() int {
	return len(f.values)
}

// IsDirty returns whether there are changes that have not been saved.
func (f *File) IsDirty() bool {
	return f.dirty
}

// Save writes the store to its file, creating the directory if needed.
func (f *File) Save() error {
	b, err := marshal(f.Filename, f.values)
	if err != nil {
		return fmt.Errorf("state.File.Save: %s: %w", f.Filename, err)
	}
	if dir := filepath.Dir(f.Filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(f.Filename, b, 0o644); err != nil {
		return err
	}
	f.dirty = false
	return nil
}

func format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return "toml"
}

func marshal(filename string, v Map) ([]byte, error) {
	m := map[string]string(v)
	switch format(filename) {
	case "json":
		return json.MarshalIndent(m, "", "\t")
	case "yaml":
		return yaml.Marshal(m)
	}
	return toml.Marshal(m)
}

func unmarshal(filename string, b []byte, v *Map) error {
	m := map[string]string{}
	var err error
	switch format(filename) {
	case "json":
		err = json.Unmarshal(b, &m)
	case "yaml":
		err = yaml.Unmarshal(b, &m)
	default:
		err = toml.Unmarshal(b, &m)
	}
	*v = m
	return err
}
