// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE standard color space transforms
// (sRGB, linear RGB, XYZ and L*a*b*) used by the perceptual color models.
package cie

import (
	"image/color"

	"github.com/chewxy/math32"
)

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value.
// Used in converting from XYZ to sRGB.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math32.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// ColorToSRGB returns the non-alpha-premultiplied sRGB components
// of the given color in the 0-1 range.
func ColorToSRGB(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

// SRGBToColor returns a [color.RGBA] from the given non-alpha-premultiplied
// sRGB components in the 0-1 range. Components outside of the range are
// clamped, which is how out-of-gamut colors are brought back into sRGB.
func SRGBToColor(r, g, b, a float32) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(clamp01(r)*a*255 + 0.5),
		G: uint8(clamp01(g)*a*255 + 0.5),
		B: uint8(clamp01(b)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float32) float32 {
	// NaN compares false both ways, so it is mapped to 0
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
