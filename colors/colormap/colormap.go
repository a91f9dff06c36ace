// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides a registry of named color maps, each of which
// maps a normalized value in the [0, 1] range to a color. Maps are either
// continuous, interpolating between evenly spaced color stops, or indexed,
// in which case they hold a fixed list of discrete category colors.
package colormap

import (
	"image/color"
	"math"
	"slices"
	"strings"

	"cogentcore.org/colorscale/colors"
	"github.com/aclements/go-gg/palette"
)

// Map maps a value onto a color by interpolating between a list of colors
// defining a spectrum, or optionally as an indexed list of colors.
type Map struct {

	// Name is the name of the color map
	Name string

	// NoColor is the color to use for NaN values
	NoColor color.RGBA

	// Colors is the list of colors to interpolate between
	Colors []color.RGBA

	// Indexed is whether the color map should be treated as an indexed
	// list of discrete colors rather than an interpolated spectrum
	Indexed bool

	// Blend is the colorspace algorithm to use for blending colors
	Blend colors.BlendTypes
}

var _ palette.Continuous = &Map{}

// At returns the color for the given normalized value, which is clamped
// to the [0, 1] range. NaN values return [Map.NoColor].
func (cm *Map) At(t float64) color.RGBA {
	nc := len(cm.Colors)
	if nc == 0 || math.IsNaN(t) {
		return cm.NoColor
	}
	if nc == 1 {
		return cm.Colors[0]
	}
	t = min(max(t, 0), 1)
	if cm.Indexed {
		return cm.Colors[min(int(t*float64(nc)), nc-1)]
	}
	pos := t * float64(nc-1)
	i := int(pos)
	if i >= nc-1 {
		return cm.Colors[nc-1]
	}
	frac := pos - float64(i)
	if frac == 0 {
		return cm.Colors[i]
	}
	return colors.Blend(cm.Blend, float32(100*(1-frac)), cm.Colors[i], cm.Colors[i+1])
}

// Map implements [palette.Continuous] so that color maps can be used
// wherever a go-gg continuous palette is expected.
func (cm *Map) Map(t float64) color.Color {
	return cm.At(t)
}

// Index returns the color at the given index, wrapping around
// the list of colors; it is mainly useful for indexed maps.
func (cm *Map) Index(i int) color.RGBA {
	nc := len(cm.Colors)
	if nc == 0 {
		return cm.NoColor
	}
	i %= nc
	if i < 0 {
		i += nc
	}
	return cm.Colors[i]
}

// availableMaps holds all registered maps, keyed by lower-case name.
// It is only written during package initialization.
var availableMaps = map[string]*Map{}

// register adds the given map to the registry of available maps.
func register(cm *Map) {
	availableMaps[strings.ToLower(cm.Name)] = cm
}

// AvailableMap returns the registered color map with the given name,
// which is matched case-insensitively. The returned map is shared
// and must not be modified.
func AvailableMap(name string) (*Map, bool) {
	cm, ok := availableMaps[strings.ToLower(name)]
	return cm, ok
}

// AvailableMapsList returns a sorted list of the names of all
// available color maps.
func AvailableMapsList() []string {
	sl := make([]string, 0, len(availableMaps))
	for _, cm := range availableMaps {
		sl = append(sl, cm.Name)
	}
	slices.Sort(sl)
	return sl
}

// Func returns the palette function of the color map with the given name,
// which maps a value in [0, 1] to a color.
func Func(name string) (func(t float64) color.RGBA, bool) {
	cm, ok := AvailableMap(name)
	if !ok {
		return nil, false
	}
	return cm.At, true
}
