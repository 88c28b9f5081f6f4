// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspector/state"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs(append(args, "--color=false", "-q"))
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestInspect(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.toml")
	out := execute(t, "--state", file, "--select-tab", "1", "--open")
	assert.Contains(t, out, `frame form`)
	assert.Contains(t, out, `help-box stats "Stats"`)
	assert.Contains(t, out, `foldout advanced "Advanced" [open]`)
	assert.Contains(t, out, `button invoke "Invoke"`)

	store, err := state.OpenFile(file)
	require.NoError(t, err)
	v, ok := store.Get("Character/Settings_TabGroup")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	v, _ = store.Get("Character/Advanced_FoldoutGroup")
	assert.Equal(t, "true", v)

	// the persisted state is restored on the next run
	again := execute(t, "--state", file)
	assert.Contains(t, again, `foldout advanced "Advanced" [open]`)
	assert.Equal(t, out, again)
}

func TestInspectSettings(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(settings, []byte("MinLabelWidth = 300\n"), 0o666))
	s, err := loadSettings(settings)
	require.NoError(t, err)
	assert.Equal(t, float32(300), s.MinLabelWidth)
	assert.Equal(t, float32(0.8), s.HorizontalLabelRatio)

	out := execute(t, "--state", filepath.Join(dir, "state.json"), "--settings", settings, "--width", "100")
	assert.Contains(t, out, "width=120")

	_, err = loadSettings(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestCharacterIdentity(t *testing.T) {
	c := newCharacter()
	id := c.InspectorID()
	c.Name = "Bob"
	assert.Equal(t, id, c.InspectorID(), "renaming keeps the persisted state")
}
