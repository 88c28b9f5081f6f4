// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/fields"
	"cogentcore.org/inspector/widget"
)

// MethodLister is implemented by objects that want buttons
// for some of their methods in their form.
type MethodLister interface {

	// InspectorMethods returns the names of the methods to show,
	// in display order.
	InspectorMethods() []string
}

var errorType = reflect.TypeFor[error]()

// MethodButton invokes a method of an object. Methods without parameters
// are a single button; methods with parameters are a foldout with one
// field per parameter, seeded with a default value, and an Invoke button.
type MethodButton struct {
	*widget.Widget

	// Method is the name of the method.
	Method string

	// Params are the editors of the parameters.
	Params []fields.Value

	// Button invokes the method when clicked.
	Button *widget.Widget

	method    reflect.Value
	listeners widget.Listeners[[]any]
}

// NewMethodButton returns a new button for the method
// of the given object with the given name.
func NewMethodButton(f *fields.Factory, obj any, name string) (*MethodButton, error) {
	mth := reflect.ValueOf(obj).MethodByName(name)
	if !mth.IsValid() {
		return nil, fmt.Errorf("form.NewMethodButton: %T has no method %q", obj, name)
	}
	label := labels.Friendly(name)
	mb := &MethodButton{Method: name, method: mth}
	mtyp := mth.Type()
	if mtyp.NumIn() == 0 {
		mb.Widget = widget.New(widget.Button, labels.Name(label)).SetText(label)
		mb.Button = mb.Widget
	} else {
		mb.Widget = widget.New(widget.Foldout, labels.Name(label)).SetText(label)
		for i := 0; i < mtyp.NumIn(); i++ {
			pt := mtyp.In(i)
			pv, err := f.New(reflectx.DefaultValue(pt).Interface(), pt, fmt.Sprintf("Arg %d", i))
			if err != nil {
				return nil, fmt.Errorf("form.NewMethodButton: %s: %w", name, err)
			}
			mb.AddChild(pv.AsWidget())
			mb.Params = append(mb.Params, pv)
		}
		mb.Button = mb.NewChild(widget.Button, "invoke").SetText("Invoke")
	}
	mb.AddClass("inspector-method")
	mb.Button.OnClick(func(w *widget.Widget) {
		errors.Log1(mb.Invoke())
	})
	return mb, nil
}

// OnInvoke adds a listener called with the results of every
// successful invocation.
func (mb *MethodButton) OnInvoke(fun func(results []any)) {
	mb.listeners.Add(fun)
}

// Invoke calls the method with the current parameter values,
// returning its results. If the last result of the method is an
// error, it is returned instead of being included in the results.
func (mb *MethodButton) Invoke() ([]any, error) {
	mtyp := mb.method.Type()
	args := make([]reflect.Value, len(mb.Params))
	for i, pv := range mb.Params {
		av, err := reflectx.Coerce(pv.Value(), mtyp.In(i))
		if err != nil {
			return nil, fmt.Errorf("form.MethodButton.Invoke: %s: argument %d: %w", mb.Method, i, err)
		}
		args[i] = av
	}
	var outs []reflect.Value
	if mtyp.IsVariadic() {
		outs = mb.method.CallSlice(args)
	} else {
		outs = mb.method.Call(args)
	}
	if n := len(outs); n > 0 && mtyp.Out(n-1) == errorType {
		if err, _ := outs[n-1].Interface().(error); err != nil {
			return nil, err
		}
		outs = outs[:n-1]
	}
	results := make([]any, len(outs))
	for i, o := range outs {
		results[i] = o.Interface()
	}
	mb.listeners.Send(results)
	return results, nil
}
