// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"image/color"

	"cogentcore.org/colorscale/colors/cam/cie"
	"github.com/chewxy/math32"
)

// achromaticChroma is the chroma below which a color is treated as gray,
// whose hue does not take part in blending.
const achromaticChroma = 5

// gamutEpsilon is how far outside of [0, 1] an sRGB component
// may fall and still count as in gamut.
const gamutEpsilon = 0.5 / 255

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done in the CAM16-UCS space, and alpha is blended linearly.
func Blend(pct float32, x, y color.Color) color.RGBA {
	pct = min(max(pct, 0), 100)
	return Lerp(pct/100, y, x)
}

// Lerp returns the color that is the fraction t of the way from color a
// to color b in the polar form of the CAM16-UCS space: lightness J* and
// colorfulness M* are interpolated linearly and hue takes the shorter
// way around the circle. It returns a and b unchanged for t of 0 and 1.
//
// Values of t outside of [0, 1] extrapolate J* and M* while keeping the
// hue of the nearer color, with J* clamped to [0, 100]. Colors outside of
// the sRGB gamut are brought back in by reducing M* at constant J* and hue.
func Lerp(t float32, a, b color.Color) color.RGBA {
	switch t {
	case 0:
		return color.RGBAModel.Convert(a).(color.RGBA)
	case 1:
		return color.RGBAModel.Convert(b).(color.RGBA)
	}
	ar, ag, ab, aa := cie.ColorToSRGB(a)
	br, bg, bb, ba := cie.ColorToSRGB(b)
	acam := FromSRGB(ar, ag, ab)
	bcam := FromSRGB(br, bg, bb)
	aj, am, _, _ := acam.UCS()
	bj, bm, _, _ := bcam.UCS()

	lerp := func(x, y float32) float32 { return x + t*(y-x) }
	ha, hb := acam.Hue, bcam.Hue
	switch {
	case acam.Chroma < achromaticChroma:
		ha = hb
	case bcam.Chroma < achromaticChroma:
		hb = ha
	}
	var h float32
	switch {
	case t < 0:
		h = ha
	case t > 1:
		h = hb
	default:
		h = lerpHue(t, ha, hb)
	}
	j := min(max(lerp(aj, bj), 0), 100)
	m := max(lerp(am, bm), 0)
	r, g, bl := toGamut(j, m, h)
	return cie.SRGBToColor(r, g, bl, lerp(aa, ba))
}

// lerpHue interpolates between hues ha and hb in degrees along the shorter arc.
func lerpHue(t, ha, hb float32) float32 {
	d := hb - ha
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return SanitizeDegrees(ha + t*d)
}

// toGamut returns the sRGB components of the color with the given
// CAM16-UCS lightness, colorfulness and hue, reducing the colorfulness
// by bisection when the color is outside of the sRGB gamut.
func toGamut(j, m, h float32) (r, g, b float32) {
	srgb := func(m float32) (r, g, b float32) {
		hr := h * degToRad
		return cie.XYZ100ToSRGB(FromUCS(j, m*math32.Cos(hr), m*math32.Sin(hr)).XYZ())
	}
	r, g, b = srgb(m)
	if inGamut(r, g, b) {
		return
	}
	lo, hi := float32(0), m
	for range 16 {
		mid := (lo + hi) / 2
		if inGamut(srgb(mid)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return srgb(lo)
}

func inGamut(r, g, b float32) bool {
	in := func(v float32) bool {
		return v >= -gamutEpsilon && v <= 1+gamutEpsilon
	}
	return in(r) && in(g) && in(b)
}
