// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "slices"

// AddClass adds the given style classes, skipping ones already present.
func (w *Widget) AddClass(classes ...string) *Widget {
	for _, c := range classes {
		if !w.HasClass(c) {
			w.Classes = append(w.Classes, c)
		}
	}
	return w
}

// RemoveClass removes the given style class if present.
func (w *Widget) RemoveClass(class string) *Widget {
	w.Classes = slices.DeleteFunc(w.Classes, func(c string) bool { return c == class })
	return w
}

// HasClass returns whether the widget has the given style class.
func (w *Widget) HasClass(class string) bool {
	return slices.Contains(w.Classes, class)
}

// SetText sets the text of the widget.
func (w *Widget) SetText(text string) *Widget {
	w.Text = text
	return w
}

// SetEnabled sets whether the widget accepts user interaction.
// A disabled widget disables all of its descendants.
func (w *Widget) SetEnabled(enabled bool) *Widget {
	w.disabled = !enabled
	return w
}

// IsEnabled returns whether the widget and all of its ancestors are enabled.
func (w *Widget) IsEnabled() bool {
	for k := w; k != nil; k = k.Parent {
		if k.disabled {
			return false
		}
	}
	return true
}

// SetHidden sets whether the widget is excluded from display.
func (w *Widget) SetHidden(hidden bool) *Widget {
	w.hidden = hidden
	return w
}

// IsHidden returns whether the widget itself is hidden.
func (w *Widget) IsHidden() bool {
	return w.hidden
}

// IsVisible returns whether the widget is displayed: it is not
// hidden, it is not destroyed, and every ancestor is visible with
// every ancestor [Foldout] open.
func (w *Widget) IsVisible() bool {
	if w.destroyed {
		return false
	}
	for k := w; k != nil; k = k.Parent {
		if k.hidden {
			return false
		}
		if k != w && k.Kind == Foldout && !k.Open {
			return false
		}
	}
	return true
}

// SetProperty sets the given property.
func (w *Widget) SetProperty(key string, value any) *Widget {
	if w.Properties == nil {
		w.Properties = map[string]any{}
	}
	w.Properties[key] = value
	return w
}

// Property returns the given property, or nil.
func (w *Widget) Property(key string) any {
	return w.Properties[key]
}

// OnClick adds a listener called when the widget is clicked.
func (w *Widget) OnClick(fun func(w *Widget)) *Widget {
	w.clickListeners.Add(fun)
	return w
}

// Click simulates a user click. Clicks on disabled or
// destroyed widgets are ignored.
func (w *Widget) Click() {
	if w.destroyed || !w.IsEnabled() {
		return
	}
	w.clickListeners.Send(w)
}

// OnToggle adds a listener called when a [Foldout] is opened or closed.
func (w *Widget) OnToggle(fun func(open bool)) *Widget {
	w.toggleListeners.Add(fun)
	return w
}

// SetOpen sets whether a [Foldout] is expanded,
// notifying toggle listeners if it changed.
func (w *Widget) SetOpen(open bool) *Widget {
	if w.Open == open {
		return w
	}
	w.Open = open
	if !w.destroyed {
		w.toggleListeners.Send(open)
	}
	return w
}

// OnGeometryChanged adds a listener called when the measured
// geometry of the widget changes.
func (w *Widget) OnGeometryChanged(fun func(g Geometry)) *Widget {
	w.geometryListeners.Add(fun)
	return w
}

// SetGeometry records the measured geometry of the widget,
// notifying geometry listeners if it changed.
func (w *Widget) SetGeometry(g Geometry) *Widget {
	if w.Geometry == g {
		return w
	}
	w.Geometry = g
	if !w.destroyed {
		w.geometryListeners.Send(g)
	}
	return w
}
