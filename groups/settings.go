// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

// Settings are the layout settings used by group builders.
type Settings struct {

	// LabelWidthRatio is the fraction of the inspector width
	// used for the label column.
	LabelWidthRatio float32

	// LabelPadding is subtracted from the label column width.
	LabelPadding float32

	// MinLabelWidth is the minimum label column width.
	MinLabelWidth float32

	// HorizontalLabelRatio is the fraction of the label column shared
	// by the labels of the members of a horizontal group.
	HorizontalLabelRatio float32
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		LabelWidthRatio:      0.45,
		LabelPadding:         37,
		MinLabelWidth:        123,
		HorizontalLabelRatio: 0.8,
	}
}

// LabelColumnWidth returns the width of the label column
// of an inspector with the given width.
func (s *Settings) LabelColumnWidth(inspectorWidth float32) float32 {
	return max(inspectorWidth*s.LabelWidthRatio-s.LabelPadding, s.MinLabelWidth)
}

// LabelWidth returns the label width of each of n members laid out
// side by side in an inspector with the given width.
func (s *Settings) LabelWidth(inspectorWidth float32, n int) float32 {
	if n <= 0 {
		return 0
	}
	return s.LabelColumnWidth(inspectorWidth) * s.HorizontalLabelRatio / float32(n)
}
