// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspector/fields"
)

func newEditor(t *testing.T, mp any) *Editor {
	t.Helper()
	a, err := NewAdapter(mp, nil)
	require.NoError(t, err)
	ed, err := NewEditor(fields.NewFactory(), a, "Scores")
	require.NoError(t, err)
	return ed
}

func setKey(t *testing.T, r *Row, key any) {
	t.Helper()
	require.NoError(t, r.KeyField.(*fields.Field).SetValue(key))
}

func TestCheckEntry(t *testing.T) {
	a, err := NewMapAdapter(map[string]int{"a": 1}, nil)
	require.NoError(t, err)
	assert.True(t, a.CheckEntry(Entry{Key: "a"}))
	assert.True(t, a.CheckEntry(Entry{Key: ""}))
	assert.True(t, a.CheckEntry(Entry{Key: nil}))
	assert.False(t, a.CheckEntry(Entry{Key: "b"}))

	ia, err := NewMapAdapter(map[int]string{3: "x"}, nil)
	require.NoError(t, err)
	assert.True(t, ia.CheckEntry(Entry{Key: 3}))
	assert.True(t, ia.CheckEntry(Entry{Key: "3"}))
	assert.True(t, ia.CheckEntry(Entry{Key: "three"}), "unconvertible keys block the commit")
	assert.False(t, ia.CheckEntry(Entry{Key: 0}))
}

func TestMapAdapter(t *testing.T) {
	var m map[string]float32
	a, err := NewMapAdapter(&m, nil)
	require.NoError(t, err)
	assert.Equal(t, "Map", a.TypeName())
	assert.Equal(t, reflect.TypeFor[string](), a.KeyType())
	assert.Equal(t, reflect.TypeFor[float32](), a.ValueType())
	assert.Equal(t, Entry{Key: "", Value: float32(0)}, a.CreateDefaultEntry())
	assert.Empty(t, a.Entries())

	require.NoError(t, a.CommitEntry(Entry{Key: "x", Value: 2}))
	assert.Equal(t, map[string]float32{"x": 2}, m, "a nil map behind a pointer is allocated in place")
	require.NoError(t, a.SetEntryValue("x", "2.5"))
	assert.Equal(t, float32(2.5), m["x"])
	assert.Error(t, a.SetEntryValue("x", "abc"))

	assert.False(t, a.RemoveEntry(Entry{Key: "y"}))
	assert.True(t, a.RemoveEntry(Entry{Key: "x"}))
	assert.Empty(t, m)

	require.NoError(t, a.CommitEntry(Entry{Key: "p", Value: 1}))
	require.NoError(t, a.CommitEntry(Entry{Key: "q", Value: 1}))
	a.ClearEntries()
	assert.Empty(t, m)

	_, err = NewMapAdapter(3, nil)
	assert.ErrorIs(t, err, fields.ErrUnsupportedType)
}

func TestSetAdapter(t *testing.T) {
	set := map[string]struct{}{"red": {}}
	a, err := NewAdapter(set, nil)
	require.NoError(t, err)
	sa, ok := a.(*SetAdapter)
	require.True(t, ok)
	assert.Equal(t, "Set", sa.TypeName())
	require.NoError(t, sa.CommitEntry(Entry{Key: "blue"}))
	assert.Contains(t, set, "blue")

	flags := map[int]bool{}
	fa, err := NewSetAdapter(flags, nil)
	require.NoError(t, err)
	assert.Equal(t, "Set", fa.TypeName())
	require.NoError(t, fa.CommitEntry(fa.CreateDefaultEntry().WithKey(7)))
	assert.Equal(t, map[int]bool{7: true}, flags)

	_, err = NewSetAdapter(map[string]int{}, nil)
	assert.Error(t, err)

	ed := newEditor(t, set)
	require.Len(t, ed.Rows(), 2)
	assert.Nil(t, ed.Rows()[0].ValueField)
	assert.NotNil(t, ed.Rows()[0].KeyField)
}

func TestEmptyEditor(t *testing.T) {
	ed := newEditor(t, map[string]int{})
	assert.Equal(t, Idle, ed.State())
	assert.True(t, ed.IsEmpty())
	assert.Empty(t, ed.Rows())
	assert.Equal(t, 0, ed.Contents.NumChildren())
	require.Equal(t, 1, ed.InputForm.NumChildren())
	assert.Equal(t, "Map is empty.", ed.Placeholder().Text)
	assert.Equal(t, AddText, ed.AddButton.Text)

	set := newEditor(t, map[string]struct{}{})
	assert.Equal(t, "Set is empty.", set.Placeholder().Text)

	flags := newEditor(t, map[string]bool{})
	assert.Equal(t, "Map is empty.", flags.Placeholder().Text)
}

func TestInsert(t *testing.T) {
	m := map[string]int{"a": 1}
	ed := newEditor(t, m)
	var changes []any
	ed.OnChange(func(v any) { changes = append(changes, v) })
	require.Len(t, ed.Rows(), 1)
	assert.Equal(t, "Element 0", ed.Rows()[0].Text)

	require.NoError(t, ed.BeginInsert())
	staged := ed.Staged()
	require.NotNil(t, staged)
	assert.Equal(t, "New Value", staged.Text)
	assert.Equal(t, Inserting, ed.State())
	assert.False(t, staged.IsLocked())

	// a second begin is a no-op
	require.NoError(t, ed.BeginInsert())
	assert.Same(t, staged, ed.Staged())
	assert.Equal(t, 1, ed.InputForm.NumChildren())

	// the default key is empty
	assert.Equal(t, InvalidText, ed.AddButton.Text)
	assert.False(t, ed.AddButton.IsEnabled())

	setKey(t, staged, "a")
	assert.Equal(t, InvalidText, ed.AddButton.Text)
	assert.False(t, ed.AddButton.IsEnabled())
	assert.False(t, ed.EndInsert())
	assert.Equal(t, Inserting, ed.State())

	setKey(t, staged, "b")
	assert.Equal(t, DoneText, ed.AddButton.Text)
	assert.True(t, ed.AddButton.IsEnabled())
	assert.Equal(t, map[string]int{"a": 1}, m, "nothing is written before the commit")

	ed.AddButton.Click()
	assert.Equal(t, map[string]int{"a": 1, "b": 0}, m)
	assert.Equal(t, Idle, ed.State())
	assert.Nil(t, ed.Staged())
	assert.Len(t, ed.Rows(), 2)
	assert.Equal(t, 0, ed.InputForm.NumChildren())
	assert.Equal(t, AddText, ed.AddButton.Text)
	assert.Len(t, changes, 1)
	assert.False(t, ed.EndInsert())
}

func TestInsertFromEmpty(t *testing.T) {
	var m map[string]int
	ed := newEditor(t, m)
	ed.AddButton.Click()
	assert.Equal(t, Inserting, ed.State())
	assert.Nil(t, ed.Placeholder())
	assert.Equal(t, 1, ed.InputForm.NumChildren())
	setKey(t, ed.Staged(), "x")
	require.NoError(t, ed.Staged().ValueField.(*fields.Field).SetValue("5"))
	assert.True(t, ed.EndInsert())
	assert.Equal(t, map[string]int{"x": 5}, ed.Value())
}

func TestCancelInsert(t *testing.T) {
	m := map[string]int{"a": 1}
	ed := newEditor(t, m)
	require.NoError(t, ed.BeginInsert())
	setKey(t, ed.Staged(), "b")
	ed.Staged().CloseButton.Click()
	assert.Equal(t, Idle, ed.State())
	assert.Nil(t, ed.Staged())
	assert.Equal(t, map[string]int{"a": 1}, m)
	assert.Len(t, ed.Rows(), 1)

	require.NoError(t, ed.BeginInsert())
	ed.CancelInsert()
	assert.Equal(t, Idle, ed.State())
	ed.CancelInsert()
	assert.Equal(t, Idle, ed.State())
}

func TestRemove(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	ed := newEditor(t, m)
	var changes int
	ed.OnChange(func(v any) { changes++ })
	var ra *Row
	for _, r := range ed.Rows() {
		if r.Entry.Key == "a" {
			ra = r
		}
	}
	require.NotNil(t, ra)
	assert.True(t, ra.IsLocked())
	ra.CloseButton.Click()
	assert.Equal(t, map[string]int{"b": 2}, m)
	require.Len(t, ed.Rows(), 1)
	assert.Equal(t, "b", ed.Rows()[0].Entry.Key)
	assert.Equal(t, 1, changes)
	assert.True(t, ra.IsDestroyed())
}

func TestRemoveWhileInserting(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	ed := newEditor(t, m)
	require.NoError(t, ed.BeginInsert())
	staged := ed.Staged()
	ed.Rows()[0].CloseButton.Click()
	assert.False(t, ed.RequestRemove(ed.Rows()[1]))
	assert.False(t, ed.Clear())
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)
	assert.Same(t, staged, ed.Staged())
	assert.Equal(t, Inserting, ed.State())
	assert.Len(t, ed.Rows(), 2)
}

func TestLockedRow(t *testing.T) {
	m := map[string]int{"a": 1}
	ed := newEditor(t, m)
	var got []any
	ed.OnChange(func(v any) { got = append(got, v) })
	r := ed.Rows()[0]
	assert.ErrorIs(t, r.KeyField.(*fields.Field).SetValue("z"), fields.ErrReadOnly)
	require.NoError(t, r.ValueField.(*fields.Field).SetValue(9))
	assert.Equal(t, map[string]int{"a": 9}, m, "value edits write through")
	assert.Equal(t, Entry{Key: "a", Value: 9}, r.Entry)
	assert.Len(t, got, 1)
}

func TestBoolMap(t *testing.T) {
	m := map[string]bool{"fog": false, "rain": true}
	a, err := NewAdapter(m, nil)
	require.NoError(t, err)
	_, ok := a.(*MapAdapter)
	require.True(t, ok, "bool maps are ordinary maps by default")
	assert.Equal(t, Entry{Key: "", Value: false}, a.CreateDefaultEntry())

	ed, err := NewEditor(fields.NewFactory(), a, "Features")
	require.NoError(t, err)
	require.Len(t, ed.Rows(), 2)
	var fog *Row
	for _, r := range ed.Rows() {
		require.NotNil(t, r.ValueField)
		if r.Entry.Key == "fog" {
			fog = r
		}
	}
	require.NotNil(t, fog)
	assert.True(t, fog.IsLocked())
	assert.Equal(t, false, fog.ValueField.Value())
	require.NoError(t, fog.ValueField.(*fields.Field).SetValue(true))
	assert.Equal(t, map[string]bool{"fog": true, "rain": true}, m, "value edits write through")

	require.NoError(t, ed.BeginInsert())
	setKey(t, ed.Staged(), "snow")
	require.True(t, ed.EndInsert())
	assert.Equal(t, false, m["snow"])
	assert.Contains(t, m, "snow")
}

func TestRebuildDiscardsStaged(t *testing.T) {
	m := map[string]int{"a": 1}
	ed := newEditor(t, m)
	require.NoError(t, ed.BeginInsert())
	staged := ed.Staged()
	m["c"] = 3
	require.NoError(t, ed.Rebuild())
	assert.Equal(t, Idle, ed.State())
	assert.True(t, staged.IsDestroyed())
	assert.Len(t, ed.Rows(), 2)
}

func TestClear(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	ed := newEditor(t, m)
	assert.True(t, ed.Clear())
	assert.Empty(t, m)
	assert.True(t, ed.IsEmpty())
}

func TestRegister(t *testing.T) {
	f := fields.NewFactory()
	Register(f)
	v, err := f.New(map[string]int{"a": 1}, nil, "Scores")
	require.NoError(t, err)
	ed, ok := v.(*Editor)
	require.True(t, ok)
	assert.Equal(t, "Scores", ed.Text)
	assert.Equal(t, "scores", ed.Name)
	assert.Len(t, ed.Rows(), 1)

	v, err = f.New(nil, reflect.TypeFor[map[string]struct{}](), "Tags")
	require.NoError(t, err)
	assert.True(t, v.(*Editor).IsEmpty())
}
