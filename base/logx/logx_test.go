// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelInfo, termenv.WithProfile(termenv.Ascii)))
	l.Debug("hidden")
	l.Info("group created", "id", "obj/Stats", "kind", "BoxGroup")
	l.With("form", "player").WithGroup("tab").Warn("selected", "index", 2)
	assert.Equal(t, "INFO group created id=obj/Stats kind=BoxGroup\nWARN selected form=player tab.index=2\n", buf.String())
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelDebug, termenv.WithProfile(termenv.ANSI)))
	l.Error("failed")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "ERROR")
}
