// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/colorscale/colors/cam/cam16"
	"cogentcore.org/colorscale/colors/cam/cie"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendTypes are different algorithms (colorspaces) to use for blending
// between the color stops of scales and color maps.
type BlendTypes int32

const (
	// RGB uses raw RGB space, which is the standard
	// space that most other programs use.
	// It produces the most naive results, such as
	// passing through gray between complementary colors.
	RGB BlendTypes = iota

	// LinearRGB blends in gamma-corrected linear RGB space,
	// which keeps the physical light intensity of the
	// blend correct.
	LinearRGB

	// Lab uses the CIE L*a*b* space.
	Lab

	// HCL uses the cylindrical hue, chroma and lightness
	// form of L*a*b*, interpolating hue along the shortest arc.
	HCL

	// Luv uses the CIE L*u*v* space.
	Luv

	// CAM16 uses the CAM16-UCS color appearance space,
	// which is the most perceptually uniform option.
	CAM16

	blendTypesN
)

var blendTypesNames = [...]string{"rgb", "linear-rgb", "lab", "hcl", "luv", "cam16"}

// String returns the lower-case name of the blend type.
func (bt BlendTypes) String() string {
	if bt < 0 || bt >= blendTypesN {
		return fmt.Sprintf("BlendTypes(%d)", int32(bt))
	}
	return blendTypesNames[bt]
}

// SetString sets the blend type from its name, ignoring case.
func (bt *BlendTypes) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range blendTypesNames {
		if nm == s {
			*bt = BlendTypes(i)
			return nil
		}
	}
	return fmt.Errorf("colors.BlendTypes.SetString: %q is not a valid blend type", s)
}

// BlendTypesValues returns all valid blend types.
func BlendTypesValues() []BlendTypes {
	vals := make([]BlendTypes, blendTypesN)
	for i := range vals {
		vals[i] = BlendTypes(i)
	}
	return vals
}

// MarshalText implements [encoding.TextMarshaler].
func (bt BlendTypes) MarshalText() ([]byte, error) {
	return []byte(bt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (bt *BlendTypes) UnmarshalText(text []byte) error {
	return bt.SetString(string(text))
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done in the colorspace given by the blend type.
// The percent is clamped to 0-100; at the limits the corresponding
// input color is returned unchanged.
func Blend(bt BlendTypes, pct float32, x, y color.Color) color.RGBA {
	switch {
	case pct >= 100:
		return AsRGBA(x)
	case pct <= 0:
		return AsRGBA(y)
	}
	return bt.Interpolate(AsRGBA(y), AsRGBA(x), float64(pct)/100)
}

// Interpolate returns the color that is the fraction t of the way from
// color a to color b, in the colorspace of the blend type. It returns a
// and b unchanged for t of 0 and 1. Values of t outside of [0, 1]
// extrapolate along the same path, clamped into the sRGB gamut.
func (bt BlendTypes) Interpolate(a, b color.RGBA, t float64) color.RGBA {
	switch {
	case t == 0:
		return a
	case t == 1:
		return b
	}
	switch bt {
	case LinearRGB:
		return lerpLinearRGB(t, a, b)
	case Lab, HCL, Luv:
		return lerpColorful(bt, t, a, b)
	case CAM16:
		return cam16.Lerp(float32(t), a, b)
	}
	return lerpRGB(t, a, b)
}

// BlendRGB returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done directly on non-premultiplied RGB values, and
// a correctly premultiplied color is returned.
func BlendRGB(pct float32, x, y color.Color) color.RGBA {
	pct = min(max(pct, 0), 100)
	return lerpRGB(float64(pct)/100, AsRGBA(y), AsRGBA(x))
}

// lerpRGB interpolates the non-premultiplied channels of a and b
// independently, clamping each to the valid range.
func lerpRGB(t float64, a, b color.RGBA) color.RGBA {
	an := color.NRGBAModel.Convert(a).(color.NRGBA)
	bn := color.NRGBAModel.Convert(b).(color.NRGBA)
	ch := func(x, y uint8) uint8 {
		return clampUint8(float64(x) + t*(float64(y)-float64(x)))
	}
	return AsRGBA(color.NRGBA{ch(an.R, bn.R), ch(an.G, bn.G), ch(an.B, bn.B), ch(an.A, bn.A)})
}

// lerpLinearRGB interpolates the non-premultiplied channels of a and b
// in linear light, converting back to sRGB. Alpha is interpolated directly.
func lerpLinearRGB(t float64, a, b color.RGBA) color.RGBA {
	an := color.NRGBAModel.Convert(a).(color.NRGBA)
	bn := color.NRGBAModel.Convert(b).(color.NRGBA)
	tf := float32(t)
	ch := func(x, y uint8) uint8 {
		xl := cie.SRGBToLinearComp(float32(x) / 255)
		yl := cie.SRGBToLinearComp(float32(y) / 255)
		l := min(max(xl+tf*(yl-xl), 0), 1)
		return clampUint8(float64(cie.SRGBFromLinearComp(l)) * 255)
	}
	alpha := clampUint8(float64(an.A) + t*(float64(bn.A)-float64(an.A)))
	return AsRGBA(color.NRGBA{ch(an.R, bn.R), ch(an.G, bn.G), ch(an.B, bn.B), alpha})
}

// lerpColorful interpolates in one of the CIE spaces provided by go-colorful.
// Alpha is interpolated linearly and reapplied after the conversion back to sRGB.
func lerpColorful(bt BlendTypes, t float64, a, b color.RGBA) color.RGBA {
	an := color.NRGBAModel.Convert(a).(color.NRGBA)
	bn := color.NRGBAModel.Convert(b).(color.NRGBA)
	ac := colorful.Color{R: float64(an.R) / 255, G: float64(an.G) / 255, B: float64(an.B) / 255}
	bc := colorful.Color{R: float64(bn.R) / 255, G: float64(bn.G) / 255, B: float64(bn.B) / 255}
	var c colorful.Color
	switch bt {
	case Lab:
		c = ac.BlendLab(bc, t)
	case HCL:
		c = ac.BlendHcl(bc, t)
	default:
		c = ac.BlendLuv(bc, t)
	}
	r, g, bl := c.Clamped().RGB255()
	alpha := clampUint8(float64(an.A) + t*(float64(bn.A)-float64(an.A)))
	return AsRGBA(color.NRGBA{r, g, bl, alpha})
}

// clampUint8 rounds v to the nearest integer in the 0-255 range.
func clampUint8(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
