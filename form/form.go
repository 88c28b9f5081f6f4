// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package form builds an inspector form for a struct object: one field
// per exported struct field, placed into the groups its struct tags
// declare, followed by buttons for the methods the object lists.
// Edits are written back to the object.
package form

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/base/ordmap"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/collection"
	"cogentcore.org/inspector/fields"
	"cogentcore.org/inspector/groups"
	"cogentcore.org/inspector/identity"
	"cogentcore.org/inspector/state"
	"cogentcore.org/inspector/widget"
)

// Form is an inspector form for one object.
type Form struct {
	*widget.Widget

	// Store is where groups persist their UI state.
	Store state.Store

	// Factory makes the field editors.
	Factory *fields.Factory

	// Registry makes the group builders.
	Registry *groups.Registry

	// Identities resolves the identity of the object,
	// which scopes the persisted group state.
	Identities *identity.Registry

	// Settings are the layout settings.
	Settings *groups.Settings

	object    any
	fields    *ordmap.Map[string, fields.Value]
	buttons   []*MethodButton
	composer  *groups.Composer
	listeners widget.Listeners[any]
}

// Option configures a [Form].
type Option func(f *Form)

// WithRegistry sets the group builder registry.
func WithRegistry(r *groups.Registry) Option {
	return func(f *Form) { f.Registry = r }
}

// WithFactory sets the field factory.
func WithFactory(fc *fields.Factory) Option {
	return func(f *Form) { f.Factory = fc }
}

// WithIdentities sets the identity registry.
func WithIdentities(ids *identity.Registry) Option {
	return func(f *Form) { f.Identities = ids }
}

// WithSettings sets the layout settings.
func WithSettings(s *groups.Settings) Option {
	return func(f *Form) { f.Settings = s }
}

// New returns a new empty form persisting group state in the given store.
// By default, maps and sets are edited with [collection.Editor], and
// identities come from [identity.Session].
func New(store state.Store, opts ...Option) *Form {
	f := &Form{Widget: widget.New(widget.Frame, "form"), Store: store}
	f.AddClass("inspector-form")
	for _, opt := range opts {
		opt(f)
	}
	if f.Factory == nil {
		f.Factory = fields.NewFactory()
		collection.Register(f.Factory)
	}
	if f.Registry == nil {
		f.Registry = groups.Builders
	}
	if f.Identities == nil {
		f.Identities = identity.Session
	}
	if f.Settings == nil {
		s := groups.DefaultSettings()
		f.Settings = &s
	}
	return f
}

// Object returns the object shown by the form.
func (f *Form) Object() any {
	return f.object
}

// SetObject sets the object shown by the form, which must be a pointer
// to a struct, and rebuilds the form. If the rebuild fails, the form
// keeps showing the previous object.
func (f *Form) SetObject(obj any) error {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("form.SetObject: %T is not a non-nil pointer to a struct", obj)
	}
	old := f.object
	f.object = obj
	if err := f.Rebuild(); err != nil {
		f.object = old
		return err
	}
	return nil
}

// OnChange adds a listener called with the object
// whenever the user changes it through the form.
func (f *Form) OnChange(fun func(obj any)) {
	f.listeners.Add(fun)
}

// Field returns the editor of the struct field with the given Go name, or nil.
func (f *Form) Field(name string) fields.Value {
	if f.fields == nil {
		return nil
	}
	v, _ := f.fields.ValueByKeyTry(name)
	return v
}

// Buttons returns the method buttons.
func (f *Form) Buttons() []*MethodButton {
	return f.buttons
}

// Composer returns the group composer of the last build.
func (f *Form) Composer() *groups.Composer {
	return f.composer
}

// Rebuild replaces the contents of the form with new widgets for the
// current values of the object. Group state is restored from the store.
// If any group declaration is invalid, a [groups.ConfigurationError] is
// returned and the form is left unchanged.
func (f *Form) Rebuild() error {
	if f.object == nil {
		f.DeleteChildren()
		return nil
	}
	st := reflect.ValueOf(f.object).Elem()
	typ := st.Type()

	var members []groups.Member
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() || sf.Tag.Get("display") == "-" {
			continue
		}
		d, err := groups.ParseTag(sf.Tag)
		if err != nil {
			return memberError(err, sf.Name)
		}
		members = append(members, groups.Member{Name: sf.Name, Group: d})
	}

	flds := ordmap.New[string, fields.Value]()
	for i := range members {
		m := &members[i]
		sf, _ := typ.FieldByName(m.Name)
		label := sf.Tag.Get("label")
		if label == "" {
			label = labels.Friendly(sf.Name)
		}
		fv, err := f.newField(st.FieldByIndex(sf.Index), sf, label)
		if err != nil {
			return fmt.Errorf("form.Rebuild: %s: %w", sf.Name, err)
		}
		name, index := sf.Name, sf.Index
		fv.OnChange(func(v any) {
			if err := f.setField(index, v); err != nil {
				slog.Error("form: setting field failed", "field", name, "err", err)
				return
			}
			f.listeners.Send(f.object)
		})
		m.Widget = fv.AsWidget()
		flds.Add(m.Name, fv)
	}

	var buttons []*MethodButton
	if ml, ok := f.object.(MethodLister); ok {
		for _, name := range ml.InspectorMethods() {
			mb, err := NewMethodButton(f.Factory, f.object, name)
			if err != nil {
				return fmt.Errorf("form.Rebuild: %w", err)
			}
			mb.OnInvoke(func(results []any) {
				f.listeners.Send(f.object)
				errors.Log(f.Rebuild())
			})
			buttons = append(buttons, mb)
			members = append(members, groups.Member{Name: name, Widget: mb.Widget})
		}
	}

	cp := &groups.Composer{
		Registry: f.Registry,
		Store:    f.Store,
		OwnerID:  f.Identities.ID(f.object),
		Settings: f.Settings,
	}
	body := widget.New(widget.Frame, f.Name)
	if err := cp.Compose(body, members); err != nil {
		return err
	}
	f.DeleteChildren()
	for _, kid := range append([]*widget.Widget(nil), body.Children...) {
		f.AddChild(kid)
	}
	f.fields = flds
	f.buttons = buttons
	f.composer = cp
	return nil
}

// newField returns the editor for the given struct field. Maps with
// bool values tagged `display:"set"` are edited as sets.
func (f *Form) newField(fv reflect.Value, sf reflect.StructField, label string) (fields.Value, error) {
	if sf.Tag.Get("display") != "set" {
		return f.Factory.New(fv.Interface(), sf.Type, label)
	}
	a, err := collection.NewSetAdapter(fv.Interface(), sf.Type)
	if err != nil {
		return nil, err
	}
	return collection.NewEditor(f.Factory, a, label)
}

// memberError names the member in the given configuration error.
func memberError(err error, member string) error {
	var ce *groups.ConfigurationError
	if errors.As(err, &ce) && ce.Member == "" {
		return &groups.ConfigurationError{Member: member, Reason: ce.Reason}
	}
	return err
}

func (f *Form) setField(index []int, v any) error {
	fv := reflect.ValueOf(f.object).Elem().FieldByIndex(index)
	nv, err := reflectx.Coerce(v, fv.Type())
	if err != nil {
		return err
	}
	fv.Set(nv)
	return nil
}

// Layout lays the form out at the given width and settles it,
// running the scheduled post-layout passes. It returns the number
// of callbacks that were run.
func (f *Form) Layout(width float32) int {
	f.WalkDown(func(k *widget.Widget) bool {
		if k.IsHidden() {
			return widget.Break
		}
		k.SetGeometry(widget.Geometry{Width: width})
		return widget.Continue
	})
	return widget.Settle(f.Widget)
}
