// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"fmt"

	"cogentcore.org/inspector/state"
	"cogentcore.org/inspector/widget"
)

// Builder builds the widgets of one group instance.
type Builder interface {

	// CreateRootElement makes the outer container of the group
	// with the given label. It is called once per instance.
	CreateRootElement(label string) *widget.Widget

	// GroupElement returns the container that members with the given
	// sub key are placed into. For tab groups the sub key is the tab
	// name and the page is made on first use; other groups ignore it
	// and return their root element.
	GroupElement(subKey string) *widget.Widget
}

// Context is the information given to a [Builder] when it is made.
type Context struct {

	// UniqueID is the unique id of the group instance, stable across
	// rebuilds of the same object.
	UniqueID string

	// Kind is the kind of the group.
	Kind Kind

	// Store is where the group persists its UI state.
	Store state.Store

	// Settings are the layout settings.
	Settings *Settings
}

// StateKey returns the key under which the group persists its UI state.
func (c *Context) StateKey() string {
	return state.Key(c.UniqueID, c.Kind.String())
}

// NewBuilderFunc makes a new [Builder] for a group instance.
type NewBuilderFunc func(ctx *Context) Builder

// Registry maps group kinds to the functions making their builders.
type Registry struct {
	builders map[Kind]NewBuilderFunc
}

// Builders is the registry used by default, containing
// the builders of all of the builtin kinds.
var Builders = DefaultRegistry()

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: map[Kind]NewBuilderFunc{}}
}

// DefaultRegistry returns a new registry with the builtin builders.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Add(Plain, func(ctx *Context) Builder { return &PlainBuilder{} }).
		Add(BoxGroup, func(ctx *Context) Builder { return &BoxBuilder{} }).
		Add(TabGroup, func(ctx *Context) Builder { return NewTabBuilder(ctx) }).
		Add(FoldoutGroup, func(ctx *Context) Builder { return &FoldoutBuilder{Context: ctx} }).
		Add(HorizontalGroup, func(ctx *Context) Builder { return &HorizontalBuilder{Context: ctx} }).
		Add(InlineGroup, func(ctx *Context) Builder { return &InlineBuilder{} })
}

// Add sets the function making builders for the given kind.
func (r *Registry) Add(kind Kind, fun NewBuilderFunc) *Registry {
	r.builders[kind] = fun
	return r
}

// Has returns whether there is a builder for the given kind.
func (r *Registry) Has(kind Kind) bool {
	_, ok := r.builders[kind]
	return ok
}

// New returns a new builder for the given context. If there is no
// builder for the kind, it returns a [ConfigurationError] naming it.
func (r *Registry) New(ctx *Context) (Builder, error) {
	fun, ok := r.builders[ctx.Kind]
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("no builder registered for group kind %v", ctx.Kind)}
	}
	return fun(ctx), nil
}
