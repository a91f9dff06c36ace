// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/colorscale/colors/cam/cam16"
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the CAM16 space.
// This is useful, for example, for assigning colors to
// categories in a categorical scale.
func Spaced(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float32{255, 25, 150, 105, 340, 210, 60, 300}
	loffs := []float32{0, -5, 0, 10, 0, 0, 5, 0}
	lights := []float32{55, 75, 40, 60, 75}
	chromas := []float32{55, 45, 50, 20, 20}
	ncats := len(hues)
	hi := idx % ncats
	li := (idx / ncats) % len(lights)
	vw := cam16.NewStdView()
	return cam16.FromJCHView(lights[li]+loffs[hi], chromas[li], hues[hi], vw).AsRGBA()
}

// SpacedN returns the first n [Spaced] colors.
func SpacedN(n int) []color.RGBA {
	cs := make([]color.RGBA, n)
	for i := range cs {
		cs[i] = Spaced(i)
	}
	return cs
}
