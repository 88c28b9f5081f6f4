// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapOrder(t *testing.T) {
	om := New[string, int]()
	om.Add("General", 1)
	om.Add("Advanced", 2)
	om.Add("Debug", 3)
	om.Add("General", 4)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"General", "Advanced", "Debug"}, om.Keys())
	assert.Equal(t, []int{4, 2, 3}, om.Values())
	assert.Equal(t, 1, om.IndexByKey("Advanced"))
	assert.Equal(t, -1, om.IndexByKey("Missing"))
	assert.Equal(t, "Debug", om.KeyByIndex(2))
	assert.Equal(t, 2, om.ValueByIndex(1))

	v, ok := om.ValueByKeyTry("Debug")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = om.ValueByKeyTry("Missing")
	assert.False(t, ok)
}

func TestMapZero(t *testing.T) {
	var om Map[string, int]
	assert.Equal(t, 0, om.Len())
	om.Add("a", 1)
	assert.Equal(t, 1, om.Len())

	var nilmap *Map[string, int]
	assert.Equal(t, 0, nilmap.Len())
}
