// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import (
	"log/slog"
	"strings"

	"cogentcore.org/inspector/state"
	"cogentcore.org/inspector/widget"
)

// Member is one member widget of a form to be placed into groups.
type Member struct {

	// Name is the name of the member, used in error messages.
	Name string

	// Group is the group the member declares it belongs to, if any.
	Group *Declaration

	// Widget is the widget of the member.
	Widget *widget.Widget
}

// Instance is one group instance made by a [Composer].
type Instance struct {

	// UniqueID is the unique id of the instance: the owner id
	// and the group path.
	UniqueID string

	// Kind is the kind of the group.
	Kind Kind

	// Path is the group path of the instance, from outermost to innermost.
	Path []string

	// Label is the display label of the group: its innermost path segment.
	Label string

	// Root is the root element made by the builder.
	Root *widget.Widget

	// Builder is the builder of the instance.
	Builder Builder

	// Parent is the instance containing this one, or nil.
	Parent *Instance
}

// PathString returns the path joined with /.
func (in *Instance) PathString() string {
	return strings.Join(in.Path, "/")
}

// Composer places the member widgets of a form into group containers,
// making each group instance once per composition and reusing it for
// every member that declares the same group path.
type Composer struct {

	// Registry is used to make builders.
	Registry *Registry

	// Store is where group builders persist their UI state.
	Store state.Store

	// OwnerID identifies the object the form is showing;
	// it prefixes the unique id of every group instance.
	OwnerID string

	// Settings are the layout settings given to builders.
	Settings *Settings

	instances []*Instance
	byKey     map[string]*Instance
	byPath    map[string]*Instance
}

// NewComposer returns a new composer using [Builders] and [DefaultSettings].
func NewComposer(store state.Store, ownerID string) *Composer {
	s := DefaultSettings()
	return &Composer{Registry: Builders, Store: store, OwnerID: ownerID, Settings: &s}
}

// Instances returns the group instances made by the last [Composer.Compose],
// in the order they were made.
func (cp *Composer) Instances() []*Instance {
	return cp.instances
}

// Instance returns the instance of the given kind for the given / separated
// path made by the last [Composer.Compose], or nil.
func (cp *Composer) Instance(path string, kind Kind) *Instance {
	return cp.byKey[instanceKey(path, kind)]
}

func instanceKey(path string, kind Kind) string {
	return path + "|" + kind.String()
}

// Compose adds the widgets of the given members to root in order, placing
// members with a group declaration into the innermost container of their
// group path. Every declaration is validated before root is modified:
// if any is invalid, a [ConfigurationError] naming the member is returned
// and nothing is added.
//
// The ancestor segments of a path resolve to the instance already made
// for that prefix. When there is none, the instance is made with the kind
// that the first member declaring that exact prefix gives it, or as a
// [Plain] group if no member declares it.
func (cp *Composer) Compose(root *widget.Widget, members []Member) error {
	if cp.Settings == nil {
		s := DefaultSettings()
		cp.Settings = &s
	}
	if cp.Registry == nil {
		cp.Registry = Builders
	}
	declared, tabs, err := cp.validate(members)
	if err != nil {
		return err
	}
	cp.instances = nil
	cp.byKey = map[string]*Instance{}
	cp.byPath = map[string]*Instance{}

	for _, m := range members {
		d := m.Group
		if d == nil || len(d.Path) == 0 {
			root.AddChild(m.Widget)
			continue
		}
		var parent *Instance
		for i, seg := range d.Path {
			prefix := strings.Join(d.Path[:i+1], "/")
			var in *Instance
			if i == len(d.Path)-1 {
				in = cp.byKey[instanceKey(prefix, d.Kind)]
				if in == nil {
					if in, err = cp.newInstance(root, parent, d.Path[:i+1], seg, d.Kind, tabs); err != nil {
						return withMember(err, m.Name)
					}
				}
			} else {
				in = cp.byPath[prefix]
				if in == nil {
					kind := Plain
					if pd, ok := declared[prefix]; ok {
						kind = pd.Kind
					}
					if in, err = cp.newInstance(root, parent, d.Path[:i+1], seg, kind, tabs); err != nil {
						return withMember(err, m.Name)
					}
				}
			}
			parent = in
		}
		parent.Builder.GroupElement(d.TabName).AddChild(m.Widget)
	}
	return nil
}

// validate checks every declaration, returning the first declaration of
// each exact path and the first tab name given for each tab group path.
func (cp *Composer) validate(members []Member) (declared map[string]*Declaration, tabs map[string]string, err error) {
	declared = map[string]*Declaration{}
	tabs = map[string]string{}
	for _, m := range members {
		d := m.Group
		if d == nil {
			continue
		}
		if err := d.Validate(); err != nil {
			return nil, nil, withMember(err, m.Name)
		}
		if !cp.Registry.Has(d.Kind) {
			return nil, nil, &ConfigurationError{Member: m.Name, Reason: "no builder registered for group kind " + d.Kind.String()}
		}
		if len(d.Path) > 1 && !cp.Registry.Has(Plain) {
			return nil, nil, &ConfigurationError{Member: m.Name, Reason: "no builder registered for group kind " + Plain.String()}
		}
		path := d.PathString()
		if path == "" {
			continue
		}
		if _, ok := declared[path]; !ok {
			declared[path] = d
		}
		if d.Kind == TabGroup {
			if _, ok := tabs[path]; !ok {
				tabs[path] = d.TabName
			}
		}
	}
	return declared, tabs, nil
}

// newInstance makes a new group instance and adds its root element
// to the container of its parent.
func (cp *Composer) newInstance(root *widget.Widget, parent *Instance, path []string, label string, kind Kind, tabs map[string]string) (*Instance, error) {
	ps := strings.Join(path, "/")
	ctx := &Context{
		UniqueID: cp.OwnerID + "/" + ps,
		Kind:     kind,
		Store:    cp.Store,
		Settings: cp.Settings,
	}
	b, err := cp.Registry.New(ctx)
	if err != nil {
		return nil, err
	}
	in := &Instance{
		UniqueID: ctx.UniqueID,
		Kind:     kind,
		Path:     append([]string(nil), path...),
		Label:    label,
		Builder:  b,
		Parent:   parent,
	}
	in.Root = b.CreateRootElement(label)
	container := root
	if parent != nil {
		sub := ""
		if parent.Kind == TabGroup {
			sub = tabs[parent.PathString()]
			if sub == "" {
				sub = parent.Label
			}
		}
		container = parent.Builder.GroupElement(sub)
	}
	container.AddChild(in.Root)
	cp.instances = append(cp.instances, in)
	cp.byKey[instanceKey(ps, kind)] = in
	if _, ok := cp.byPath[ps]; !ok {
		cp.byPath[ps] = in
	}
	slog.Debug("groups: created group", "id", in.UniqueID, "kind", kind)
	return in, nil
}
