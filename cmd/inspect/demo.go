// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"time"
)

// Character is the sample object shown by the inspect command.
type Character struct {
	Name        string        `label:"Display Name"`
	Health      int           `group:"box:Stats"`
	Armor       int           `group:"box:Stats"`
	Speed       float32       `group:"tab:Settings" tab:"Movement"`
	JumpHeight  float32       `group:"tab:Settings" tab:"Movement"`
	Damage      int           `group:"tab:Settings" tab:"Combat"`
	Cooldown    time.Duration `group:"tab:Settings" tab:"Combat"`
	X           float32       `group:"horizontal:Settings/Spawn"`
	Y           float32       `group:"horizontal:Settings/Spawn"`
	Inventory   map[string]int
	Tags        map[string]struct{} `group:"foldout:Advanced"`
	Debug       bool                `group:"foldout:Advanced"`
	SaveVersion int                 `display:"-"`
}

func newCharacter() *Character {
	return &Character{
		Name:       "Ada",
		Health:     100,
		Armor:      20,
		Speed:      4.5,
		JumpHeight: 1.2,
		Damage:     12,
		Cooldown:   750 * time.Millisecond,
		Inventory:  map[string]int{"potion": 3},
		Tags:       map[string]struct{}{"hero": {}},
	}
}

func (c *Character) InspectorID() string { return "Character" }

func (c *Character) InspectorMethods() []string { return []string{"Respawn", "TakeDamage"} }

// Respawn restores full health.
func (c *Character) Respawn() {
	c.Health = 100
}

// TakeDamage removes the given amount of health.
func (c *Character) TakeDamage(amount int) error {
	if amount < 0 {
		return errors.New("negative damage")
	}
	c.Health = max(c.Health-amount, 0)
	return nil
}
