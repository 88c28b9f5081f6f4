// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget provides the headless widget primitives that the
// inspector builds its forms out of: a tree of [Widget]s with
// style classes, text, enabled and visibility state, click, toggle
// and geometry notifications, and scheduled post-layout callbacks.
package widget

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/inspector/base/errors"
)

// Kind is the kind of primitive a [Widget] represents.
type Kind int32

const (
	// Frame is a plain layout container.
	Frame Kind = iota

	// Box is a bordered container.
	Box

	// HelpBox is a bordered container with an optional heading text.
	HelpBox

	// Foldout is a container whose children are only visible when it is open.
	Foldout

	// TabStrip is a row of tab buttons.
	TabStrip

	// Button is a clickable button.
	Button

	// Label is a text label.
	Label

	// Field is a value editor.
	Field
)

var kindNames = [...]string{"frame", "box", "help-box", "foldout", "tab-strip", "button", "label", "field"}

// String returns the kebab-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Style classes shared by packages that cooperate on layout.
const (
	// ClassLabel marks the label part of a field.
	ClassLabel = "inspector-field__label"

	// ClassAligned marks a field whose label is aligned to the
	// inspector-wide label column.
	ClassAligned = "inspector-field__aligned"
)

// Style contains the layout properties assigned to a widget.
type Style struct {

	// Width is the assigned width in dots; zero means automatic.
	Width float32
}

// Geometry contains the measured layout results of a widget.
type Geometry struct {

	// Width is the measured width in dots.
	Width float32
}

// Widget is one node of a widget tree.
type Widget struct {

	// Name is the name of this widget, which is typically unique
	// relative to the other children of its parent.
	Name string `copier:"-"`

	// Kind is the primitive this widget represents.
	Kind Kind

	// Text is the text shown by labels, buttons, foldout headers,
	// help boxes and field editors.
	Text string

	// Classes are the style classes of this widget.
	Classes []string

	// Style holds the assigned layout properties.
	Style Style

	// Geometry holds the measured layout results.
	Geometry Geometry `copier:"-"`

	// Open is whether a [Foldout] is expanded.
	Open bool

	// Parent is the parent of this widget, set by [Widget.AddChild].
	Parent *Widget `copier:"-"`

	// Children is the list of children of this widget.
	Children []*Widget `copier:"-"`

	// Properties is a property map for arbitrary key-value properties.
	Properties map[string]any

	disabled  bool
	hidden    bool
	destroyed bool

	numLifetimeChildren int

	clickListeners    Listeners[*Widget]
	toggleListeners   Listeners[bool]
	geometryListeners Listeners[Geometry]

	scheduled []func() error
}

// New returns a new root widget of the given kind and name.
func New(kind Kind, name string) *Widget {
	return &Widget{Kind: kind, Name: name}
}

// NewChild makes a new widget of the given kind and name
// and adds it as the last child of this widget.
func (w *Widget) NewChild(kind Kind, name string) *Widget {
	kid := New(kind, name)
	w.AddChild(kid)
	return kid
}

// AddChild adds the given widget at the end of the children list,
// removing it from any previous parent. A widget without a name
// is named from its kind and the number of children ever added.
func (w *Widget) AddChild(kid *Widget) {
	w.InsertChild(kid, len(w.Children))
}

// InsertChild inserts the given widget at the given index in the
// children list, removing it from any previous parent.
func (w *Widget) InsertChild(kid *Widget, idx int) {
	if kid.Parent != nil {
		kid.Parent.removeChild(kid)
	}
	w.numLifetimeChildren++
	if kid.Name == "" {
		kid.Name = kid.Kind.String() + "-" + strconv.Itoa(w.numLifetimeChildren-1)
	}
	idx = min(max(idx, 0), len(w.Children))
	kid.Parent = w
	w.Children = slices.Insert(w.Children, idx, kid)
}

func (w *Widget) removeChild(kid *Widget) {
	if i := slices.Index(w.Children, kid); i >= 0 {
		w.Children = slices.Delete(w.Children, i, i+1)
	}
	kid.Parent = nil
}

// DeleteChildren destroys and removes all children of this widget.
func (w *Widget) DeleteChildren() {
	kids := w.Children
	w.Children = nil
	for _, kid := range kids {
		kid.Parent = nil
		kid.Destroy()
	}
}

// Delete removes this widget from its parent and destroys it.
func (w *Widget) Delete() {
	if w.Parent != nil {
		w.Parent.removeChild(w)
	}
	w.Destroy()
}

// Destroy marks this widget and all of its descendants as torn down.
// Destroyed widgets ignore clicks and never run scheduled callbacks.
func (w *Widget) Destroy() {
	w.WalkDown(func(k *Widget) bool {
		k.destroyed = true
		k.scheduled = nil
		return Continue
	})
}

// IsDestroyed returns whether [Widget.Destroy] has been called.
func (w *Widget) IsDestroyed() bool {
	return w.destroyed
}

// HasChildren returns whether this widget has any children.
func (w *Widget) HasChildren() bool {
	return len(w.Children) > 0
}

// NumChildren returns the number of children this widget has.
func (w *Widget) NumChildren() int {
	return len(w.Children)
}

// Child returns the child at the given index, or nil
// if the index is out of range.
func (w *Widget) Child(i int) *Widget {
	if i < 0 || i >= len(w.Children) {
		return nil
	}
	return w.Children[i]
}

// ChildByName returns the first child with the given name, or nil.
func (w *Widget) ChildByName(name string) *Widget {
	for _, kid := range w.Children {
		if kid.Name == name {
			return kid
		}
	}
	return nil
}

// IndexInParent returns the index of this widget in its parent,
// or -1 if it has no parent.
func (w *Widget) IndexInParent() int {
	if w.Parent == nil {
		return -1
	}
	return slices.Index(w.Parent.Children, w)
}

// Root returns the top-most ancestor of this widget.
func (w *Widget) Root() *Widget {
	r := w
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Path returns the path to this widget from the tree root,
// using names separated by / delimiters.
func (w *Widget) Path() string {
	if w.Parent != nil {
		return w.Parent.Path() + "/" + w.Name
	}
	return "/" + w.Name
}

// FindPath returns the descendant at the given path relative to
// this widget, in the format of [Widget.Path] without this widget's
// own name. Index-based elements like [0] are also supported.
// It returns nil if there is no such widget.
func (w *Widget) FindPath(path string) *Widget {
	cur := w
	for _, pe := range strings.Split(strings.Trim(path, "/"), "/") {
		if pe == "" {
			continue
		}
		if pe[0] == '[' && pe[len(pe)-1] == ']' {
			idx, err := strconv.Atoi(pe[1 : len(pe)-1])
			if err != nil {
				return nil
			}
			if idx < 0 {
				idx += cur.NumChildren()
			}
			cur = cur.Child(idx)
		} else {
			cur = cur.ChildByName(pe)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Clone returns a detached deep copy of this widget and its descendants.
// Listeners and scheduled callbacks are not copied.
func (w *Widget) Clone() *Widget {
	nw := New(w.Kind, w.Name)
	errors.Log(copier.CopyWithOption(nw, w, copier.Option{CaseSensitive: true, DeepCopy: true}))
	nw.disabled = w.disabled
	nw.hidden = w.hidden
	for _, kid := range w.Children {
		nw.AddChild(kid.Clone())
	}
	return nw
}

// String returns the path of the widget.
func (w *Widget) String() string {
	if w == nil {
		return "nil"
	}
	return w.Path()
}
