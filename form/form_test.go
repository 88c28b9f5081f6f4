// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspector/collection"
	"cogentcore.org/inspector/fields"
	"cogentcore.org/inspector/groups"
	"cogentcore.org/inspector/identity"
	"cogentcore.org/inspector/state"
	"cogentcore.org/inspector/widget"
)

type player struct {
	Name     string  `label:"Display Name"`
	Health   int     `group:"box:Stats"`
	Armor    int     `group:"box:Stats"`
	Speed    float32 `group:"tab:Settings" tab:"Movement"`
	Jump     float32 `group:"tab:Settings" tab:"Movement"`
	Damage   int     `group:"tab:Settings" tab:"Combat"`
	X        float32 `group:"horizontal:Position"`
	Y        float32 `group:"horizontal:Position"`
	Scores   map[string]int
	Tags     map[string]struct{} `group:"foldout:Advanced"`
	Secret   string              `display:"-"`
	internal int

	healed int
}

func (p *player) InspectorID() string { return "player" }

func (p *player) InspectorMethods() []string { return []string{"Reset", "Heal"} }

func (p *player) Reset() {
	p.Health = 100
}

func (p *player) Heal(amount int) error {
	if amount <= 0 {
		return errors.New("nothing to heal")
	}
	p.Health += amount
	p.healed++
	return nil
}

func newPlayer() *player {
	return &player{Name: "Ada", Health: 50, Speed: 3, Scores: map[string]int{"a": 1}}
}

func TestBuild(t *testing.T) {
	p := newPlayer()
	f := New(state.Map{})
	require.NoError(t, f.SetObject(p))

	assert.Nil(t, f.Field("Secret"))
	assert.Nil(t, f.Field("internal"))
	name := f.Field("Name").(*fields.Field)
	assert.Equal(t, "Display Name", name.Label())
	assert.Equal(t, "Ada", name.Editor.Text)

	// top-level order: first-seen members and groups, then methods
	var names []string
	for _, k := range f.Children {
		names = append(names, k.Name)
	}
	assert.Equal(t, []string{"display-name", "stats", "settings", "position", "scores", "advanced", "reset", "heal"}, names)

	cp := f.Composer()
	require.NotNil(t, cp)
	assert.Equal(t, "player", cp.OwnerID)
	stats := cp.Instance("Stats", groups.BoxGroup)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.Root.NumChildren())
	tb := cp.Instance("Settings", groups.TabGroup).Builder.(*groups.TabBuilder)
	assert.Equal(t, []string{"Movement", "Combat"}, tb.TabNames())

	_, ok := f.Field("Scores").(*collection.Editor)
	assert.True(t, ok)
	tags, ok := f.Field("Tags").(*collection.Editor)
	require.True(t, ok)
	assert.Equal(t, "Set is empty.", tags.Placeholder().Text)
}

func TestWriteBack(t *testing.T) {
	p := newPlayer()
	f := New(state.Map{})
	require.NoError(t, f.SetObject(p))
	var changes int
	f.OnChange(func(obj any) {
		assert.Same(t, p, obj)
		changes++
	})

	require.NoError(t, f.Field("Health").(*fields.Field).SetValue("75"))
	assert.Equal(t, 75, p.Health)

	ed := f.Field("Tags").(*collection.Editor)
	require.NoError(t, ed.BeginInsert())
	require.NoError(t, ed.Staged().KeyField.(*fields.Field).SetValue("boss"))
	require.True(t, ed.EndInsert())
	assert.Contains(t, p.Tags, "boss", "a nil map is replaced by the new one")

	scores := f.Field("Scores").(*collection.Editor)
	require.True(t, scores.RequestRemove(scores.Rows()[0]))
	assert.Empty(t, p.Scores)
	assert.Equal(t, 3, changes)
}

func TestStatePersists(t *testing.T) {
	store := state.Map{}
	p := newPlayer()
	f := New(store)
	require.NoError(t, f.SetObject(p))
	tb := f.Composer().Instance("Settings", groups.TabGroup).Builder.(*groups.TabBuilder)
	require.True(t, tb.Select(1))
	f.Composer().Instance("Advanced", groups.FoldoutGroup).Root.SetOpen(true)
	assert.Equal(t, "1", store["player/Settings_TabGroup"])
	assert.Equal(t, "true", store["player/Advanced_FoldoutGroup"])

	// a new form for the same object restores the state
	f = New(store)
	require.NoError(t, f.SetObject(p))
	tb = f.Composer().Instance("Settings", groups.TabGroup).Builder.(*groups.TabBuilder)
	assert.Equal(t, 1, tb.Selected())
	assert.True(t, f.Composer().Instance("Advanced", groups.FoldoutGroup).Root.Open)
	assert.True(t, f.FindPath("settings/page-root/combat/damage").IsVisible())
	assert.False(t, f.FindPath("settings/page-root/movement/speed").IsVisible())
}

func TestLayout(t *testing.T) {
	f := New(state.Map{})
	require.NoError(t, f.SetObject(newPlayer()))
	f.Layout(1000)
	pos := f.Composer().Instance("Position", groups.HorizontalGroup).Root
	want := f.Settings.LabelWidth(1000, 2)
	for _, name := range []string{"x", "y"} {
		fw := pos.ChildByName(name)
		require.NotNil(t, fw, name)
		assert.False(t, fw.HasClass(widget.ClassAligned))
		assert.InDelta(t, want, fw.ChildByName("label").Style.Width, 0.01)
	}
	f.Layout(200)
	assert.InDelta(t, f.Settings.LabelWidth(200, 2), pos.ChildByName("x").ChildByName("label").Style.Width, 0.01)
}

func TestMethods(t *testing.T) {
	p := newPlayer()
	f := New(state.Map{})
	require.NoError(t, f.SetObject(p))
	require.Len(t, f.Buttons(), 2)

	reset := f.Buttons()[0]
	assert.Equal(t, widget.Button, reset.Kind)
	reset.Button.Click()
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, "100", f.Field("Health").(*fields.Field).Editor.Text, "the form is rebuilt after invoking")

	heal := f.Buttons()[1]
	assert.Equal(t, widget.Foldout, heal.Kind)
	require.Len(t, heal.Params, 1)
	assert.Equal(t, 0, heal.Params[0].Value())
	_, err := heal.Invoke()
	assert.EqualError(t, err, "nothing to heal")
	assert.Equal(t, 0, p.healed)

	require.NoError(t, heal.Params[0].(*fields.Field).SetValue(5))
	res, err := heal.Invoke()
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, 105, p.Health)

	_, err = NewMethodButton(f.Factory, p, "Missing")
	assert.Error(t, err)
}

type badGroups struct {
	A int `group:"box:Stats"`
	B int `group:"tabz:Settings"`
}

type badTab struct {
	A int `group:"tab:Settings"`
}

func TestConfigurationError(t *testing.T) {
	f := New(state.Map{})
	require.NoError(t, f.SetObject(newPlayer()))
	n := f.NumChildren()

	err := f.SetObject(&badGroups{})
	var ce *groups.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "B", ce.Member)
	assert.Contains(t, ce.Reason, `did you mean "tab"?`)
	assert.Equal(t, n, f.NumChildren(), "the form is left unchanged")

	err = f.SetObject(&badTab{})
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "A", ce.Member)

	assert.Error(t, f.SetObject(player{}))
	assert.Error(t, f.SetObject(nil))
}

func TestCustomRegistry(t *testing.T) {
	reg := groups.NewRegistry().Add(groups.Plain, func(ctx *groups.Context) groups.Builder { return &groups.PlainBuilder{} })
	f := New(state.Map{}, WithRegistry(reg))
	err := f.SetObject(newPlayer())
	var ce *groups.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Reason, "BoxGroup")
	assert.Equal(t, 0, f.NumChildren())
}

type weather struct {
	Features map[string]bool
	Biomes   map[string]bool `display:"set"`
	Wind     int             `group:"tab:Settings" tab:"Basic"`
	Gust     int             `group:"tab:Settings" tab:"Gusts"`
}

func TestBoolMaps(t *testing.T) {
	w := &weather{Features: map[string]bool{"fog": false}}
	f := New(state.Map{})
	require.NoError(t, f.SetObject(w))

	features := f.Field("Features").(*collection.Editor)
	_, ok := features.Adapter.(*collection.MapAdapter)
	require.True(t, ok, "untagged bool maps are maps")
	require.Len(t, features.Rows(), 1)
	fog := features.Rows()[0]
	require.NotNil(t, fog.ValueField)
	require.NoError(t, fog.ValueField.(*fields.Field).SetValue(true))
	assert.Equal(t, map[string]bool{"fog": true}, w.Features)

	biomes := f.Field("Biomes").(*collection.Editor)
	_, ok = biomes.Adapter.(*collection.SetAdapter)
	require.True(t, ok, "tagged bool maps are sets")
	assert.Equal(t, "Set is empty.", biomes.Placeholder().Text)
	require.NoError(t, biomes.BeginInsert())
	assert.Nil(t, biomes.Staged().ValueField)
	require.NoError(t, biomes.Staged().KeyField.(*fields.Field).SetValue("desert"))
	require.True(t, biomes.EndInsert())
	assert.Equal(t, map[string]bool{"desert": true}, w.Biomes)
}

type badSet struct {
	Scores map[string]int `display:"set"`
}

func TestBadSetTag(t *testing.T) {
	f := New(state.Map{})
	assert.ErrorIs(t, f.SetObject(&badSet{}), fields.ErrUnsupportedType)
}

func TestSharedIdentity(t *testing.T) {
	store := state.Map{}
	w := &weather{}
	f := New(store)
	require.NoError(t, f.SetObject(w))
	tb := f.Composer().Instance("Settings", groups.TabGroup).Builder.(*groups.TabBuilder)
	require.True(t, tb.Select(1))

	// a second form on the same object, without an InspectorID,
	// resolves the same identity and restores the state
	g := New(store)
	require.NoError(t, g.SetObject(w))
	assert.Equal(t, f.Composer().OwnerID, g.Composer().OwnerID)
	tb = g.Composer().Instance("Settings", groups.TabGroup).Builder.(*groups.TabBuilder)
	assert.Equal(t, 1, tb.Selected())

	other := New(store)
	require.NoError(t, other.SetObject(&weather{}))
	assert.NotEqual(t, f.Composer().OwnerID, other.Composer().OwnerID)
	tb = other.Composer().Instance("Settings", groups.TabGroup).Builder.(*groups.TabBuilder)
	assert.Equal(t, 0, tb.Selected())
	identity.Session.Forget(w)
}
