// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type named struct{}

func (named) InspectorID() string { return "Root" }

type plain struct{ A int }

func TestIdentifier(t *testing.T) {
	var r Registry
	assert.Equal(t, "Root", r.ID(named{}))
	assert.Equal(t, "Root", r.ID(&named{}))
	assert.Equal(t, 0, r.Len())
}

func TestPointerIdentity(t *testing.T) {
	var r Registry
	a := &plain{}
	b := &plain{}
	ida := r.ID(a)
	_, err := uuid.Parse(ida)
	assert.NoError(t, err)
	assert.Equal(t, ida, r.ID(a))
	assert.NotEqual(t, ida, r.ID(b))
	assert.Equal(t, 2, r.Len())

	r.Forget(a)
	assert.Equal(t, 1, r.Len())
	assert.NotEqual(t, ida, r.ID(a))
}

func TestValueIdentity(t *testing.T) {
	var r Registry
	assert.Equal(t, "identity.plain", r.ID(plain{A: 1}))
	assert.Equal(t, "", r.ID(nil))
	assert.Equal(t, "*identity.plain", r.ID((*plain)(nil)))
}
