// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"cogentcore.org/inspector/base/logx"
	"cogentcore.org/inspector/form"
	"cogentcore.org/inspector/groups"
	"cogentcore.org/inspector/state"
	"cogentcore.org/inspector/widget"
)

// Config is the configuration of the inspect command.
type Config struct {

	// State is the file the UI state is persisted in.
	State string

	// Settings is an optional TOML file overriding the layout settings.
	Settings string

	// SelectTab is the index of the tab to select in every tab group,
	// or -1 to keep the persisted selection.
	SelectTab int

	// Open is whether to open every foldout group.
	Open bool

	// Width is the width the form is laid out at.
	Width float32

	// Color is whether to color the output.
	Color bool

	// Verbose, VeryVerbose and Quiet select the logging level.
	Verbose, VeryVerbose, Quiet bool
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}
	cmd := &cobra.Command{
		Use:           "inspect",
		Short:         "Build the inspector form of a sample object and print its widget tree",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			logx.SetDefaultLogger()
			return run(cfg, cmd.OutOrStdout())
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&cfg.State, "state", "inspector-state.toml", "the file the UI state is persisted in (.toml, .yaml or .json)")
	fl.StringVar(&cfg.Settings, "settings", "", "an optional TOML file overriding the layout settings")
	fl.IntVar(&cfg.SelectTab, "select-tab", -1, "the index of the tab to select in every tab group")
	fl.BoolVar(&cfg.Open, "open", false, "open every foldout group")
	fl.Float32Var(&cfg.Width, "width", 800, "the width to lay the form out at")
	fl.BoolVar(&cfg.Color, "color", true, "color the output if the terminal supports it")
	fl.BoolVarP(&cfg.Verbose, "verbose", "v", false, "show info log messages")
	fl.BoolVar(&cfg.VeryVerbose, "vv", false, "show debug log messages")
	fl.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only show error log messages")
	return cmd
}

// loadSettings returns the default layout settings
// overridden by the given TOML file, if any.
func loadSettings(filename string) (*groups.Settings, error) {
	s := groups.DefaultSettings()
	if filename == "" {
		return &s, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("settings %s: %w", filename, err)
	}
	return &s, nil
}

func run(cfg *Config, w io.Writer) error {
	settings, err := loadSettings(cfg.Settings)
	if err != nil {
		return err
	}
	store, err := state.OpenFile(cfg.State)
	if err != nil {
		return err
	}
	f := form.New(store, form.WithSettings(settings))
	if err := f.SetObject(newCharacter()); err != nil {
		return err
	}
	for _, in := range f.Composer().Instances() {
		switch b := in.Builder.(type) {
		case *groups.TabBuilder:
			if cfg.SelectTab >= 0 && !b.Select(cfg.SelectTab) {
				slog.Warn("tab index out of range", "group", in.UniqueID, "index", cfg.SelectTab, "tabs", len(b.TabNames()))
			}
		case *groups.FoldoutBuilder:
			if cfg.Open {
				b.Foldout.SetOpen(true)
			}
		}
	}
	n := f.Layout(cfg.Width)
	slog.Info("laid out form", "width", cfg.Width, "callbacks", n)
	if store.IsDirty() {
		if err := store.Save(); err != nil {
			return err
		}
		slog.Info("saved state", "file", store.Filename, "entries", store.Len())
	}
	var opts []termenv.OutputOption
	if !cfg.Color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return widget.Fprint(w, f.Widget, decorator(termenv.NewOutput(w, opts...)))
}

// decorator returns a line decorator coloring lines by widget state.
func decorator(out *termenv.Output) func(k *widget.Widget, line string) string {
	return func(k *widget.Widget, line string) string {
		st := out.String(line)
		switch {
		case !k.IsVisible():
			st = st.Faint()
		case k.Kind == widget.HelpBox || k.Kind == widget.Foldout || k.Kind == widget.TabStrip:
			st = st.Bold()
		case k.HasClass("selected"):
			st = st.Foreground(termenv.ANSIBlue).Underline()
		case k.Kind == widget.Button:
			st = st.Foreground(termenv.ANSIBlue)
		}
		return st.String()
	}
}
