// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type weapon struct {
	Name  string
	Tags  []string
	Stats map[string]int
}

func TestDefaultValueZero(t *testing.T) {
	assert.Equal(t, 0, Default[int]())
	assert.Equal(t, "", Default[string]())
	assert.Equal(t, weapon{}, Default[weapon]())
}

func TestDefaultValueAllocates(t *testing.T) {
	p := Default[*weapon]()
	assert.NotNil(t, p)

	m := Default[map[string]int]()
	assert.NotNil(t, m)
	m["a"] = 1

	s := DefaultValue(reflect.TypeFor[[]int]())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsNil())
}

func TestDefaultValuePrototype(t *testing.T) {
	type sword weapon
	AddDefault(sword{Name: "Sword", Tags: []string{"sharp"}, Stats: map[string]int{"damage": 3}})
	defer delete(prototypes, reflect.TypeFor[sword]())

	a := Default[sword]()
	assert.Equal(t, "Sword", a.Name)
	assert.Equal(t, 3, a.Stats["damage"])

	a.Tags[0] = "dull"
	a.Stats["damage"] = 0
	b := Default[sword]()
	assert.Equal(t, "sharp", b.Tags[0])
	assert.Equal(t, 3, b.Stats["damage"])
}
