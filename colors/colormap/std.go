// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"

	"cogentcore.org/colorscale/colors"
	"github.com/lucasb-eyer/go-colorful"
)

// StdMaps are the standard color maps that are always available,
// in addition to the ColorBrewer maps.
var StdMaps = []*Map{
	{Name: "Viridis", Colors: []color.RGBA{
		{68, 1, 84, 255}, {72, 35, 116, 255}, {64, 67, 135, 255}, {52, 94, 141, 255},
		{41, 120, 142, 255}, {32, 144, 140, 255}, {34, 167, 132, 255}, {68, 190, 112, 255},
		{121, 209, 81, 255}, {189, 222, 38, 255}, {253, 231, 37, 255},
	}},
	{Name: "Plasma", Colors: []color.RGBA{
		{13, 8, 135, 255}, {75, 3, 161, 255}, {125, 3, 168, 255}, {168, 34, 150, 255},
		{203, 70, 121, 255}, {229, 107, 93, 255}, {248, 148, 65, 255}, {253, 195, 40, 255},
		{240, 249, 33, 255},
	}},
	{Name: "Inferno", Colors: []color.RGBA{
		{0, 0, 4, 255}, {40, 11, 84, 255}, {101, 21, 110, 255}, {159, 42, 99, 255},
		{212, 72, 66, 255}, {245, 125, 21, 255}, {250, 193, 39, 255}, {252, 255, 164, 255},
	}},
	{Name: "Magma", Colors: []color.RGBA{
		{0, 0, 4, 255}, {28, 16, 68, 255}, {79, 18, 123, 255}, {129, 37, 129, 255},
		{181, 54, 122, 255}, {229, 80, 100, 255}, {251, 135, 97, 255}, {254, 194, 135, 255},
		{252, 253, 191, 255},
	}},
	{Name: "Cividis", Colors: []color.RGBA{
		{0, 34, 78, 255}, {18, 53, 112, 255}, {59, 73, 108, 255}, {87, 93, 109, 255},
		{112, 113, 115, 255}, {138, 134, 120, 255}, {165, 156, 116, 255}, {195, 179, 105, 255},
		{225, 204, 85, 255}, {254, 232, 56, 255},
	}},
	{Name: "Turbo", Blend: colors.Lab, Colors: []color.RGBA{
		{35, 23, 27, 255}, {74, 88, 221, 255}, {47, 157, 245, 255}, {39, 215, 196, 255},
		{77, 248, 132, 255}, {149, 251, 81, 255}, {222, 221, 50, 255}, {255, 164, 35, 255},
		{246, 95, 24, 255}, {186, 34, 8, 255}, {144, 12, 0, 255},
	}},
	{Name: "Category10", Indexed: true, Colors: []color.RGBA{
		{31, 119, 180, 255}, {255, 127, 14, 255}, {44, 160, 44, 255}, {214, 39, 40, 255},
		{148, 103, 189, 255}, {140, 86, 75, 255}, {227, 119, 194, 255}, {127, 127, 127, 255},
		{188, 189, 34, 255}, {23, 190, 207, 255},
	}},
	{Name: "Spaced", Indexed: true, Colors: colors.SpacedN(16)},
	{Name: "Rainbow", Blend: colors.HCL, Colors: hueSweep(12, 0.55, 0.65)},
}

// hueSweep returns n colors evenly spaced around the HCL hue circle
// at the given chroma and lightness, closing back on the starting hue.
func hueSweep(n int, chroma, light float64) []color.RGBA {
	cs := make([]color.RGBA, n+1)
	for i := range cs {
		h := 360 * float64(i) / float64(n)
		r, g, b := colorful.Hcl(h, chroma, light).Clamped().RGB255()
		cs[i] = color.RGBA{r, g, b, 255}
	}
	return cs
}

func init() {
	for _, cm := range StdMaps {
		register(cm)
	}
	registerBrewer()
}
