// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cam16 provides the CAM16 color appearance model and its
// uniform color space (CAM16-UCS), which is used for perceptually
// uniform blending of colors.
package cam16

import (
	"image/color"
	"math"

	"cogentcore.org/colorscale/colors/cam/cie"
	"github.com/chewxy/math32"
)

const (
	degToRad = float32(math.Pi / 180)
	radToDeg = float32(180 / math.Pi)
)

// CAM represents a point in the cam16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human subjective judgments.
type CAM struct {

	// Hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float32

	// Chroma (C) is the colorfulness or saturation of the color; greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float32

	// Colorfulness (M) is the absolute chromatic intensity
	Colorfulness float32

	// Saturation (s) is the colorfulness relative to brightness
	Saturation float32

	// Brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float32

	// Lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float32
}

// AsRGBA returns the color as a [color.RGBA], clamping it into the sRGB gamut.
func (cam *CAM) AsRGBA() color.RGBA {
	r, g, b := cie.XYZ100ToSRGB(cam.XYZ())
	return cie.SRGBToColor(r, g, b, 1)
}

// UCS returns the CAM16-UCS components based on the the CAM values
func (cam *CAM) UCS() (j, m, a, b float32) {
	j = (1 + 100*0.007) * cam.Lightness / (1 + 0.007*cam.Lightness)
	m = math32.Log(1+0.0228*cam.Colorfulness) / 0.0228
	hr := cam.Hue * degToRad
	a = m * math32.Cos(hr)
	b = m * math32.Sin(hr)
	return
}

// FromUCS returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), under standard viewing conditions
func FromUCS(j, a, b float32) *CAM {
	return FromUCSView(j, a, b, NewStdView())
}

// FromUCSView returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), using the given viewing conditions
func FromUCSView(j, a, b float32, vw *View) *CAM {
	m := math32.Sqrt(a*a + b*b)
	M := (math32.Exp(m*0.0228) - 1) / 0.0228
	c := M / vw.FLRoot
	h := SanitizeDegrees(math32.Atan2(b, a) * radToDeg)
	j /= 1 - (j-100)*0.007
	return FromJCHView(j, c, h, vw)
}

// FromJCHView returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under the given viewing conditions
func FromJCHView(j, c, h float32, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: h}
	cam.Brightness = (4 / vw.C) *
		math32.Sqrt(cam.Lightness/100) *
		(vw.AW + 4) *
		(vw.FLRoot)
	cam.Colorfulness = cam.Chroma * vw.FLRoot
	if cam.Lightness > 0 {
		alpha := cam.Chroma / math32.Sqrt(cam.Lightness/100)
		cam.Saturation = 50 * math32.Sqrt((alpha*vw.C)/(vw.AW+4))
	}
	return cam
}

// FromSRGB returns CAM values from given SRGB color coordinates,
// under standard viewing conditions. The RGB value range is 0-1,
// and RGB values have gamma correction.
func FromSRGB(r, g, b float32) *CAM {
	return FromXYZ(cie.SRGBToXYZ100(r, g, b))
}

// FromColor returns CAM values for the given color, ignoring alpha.
func FromColor(c color.Color) *CAM {
	r, g, b, _ := cie.ColorToSRGB(c)
	return FromSRGB(r, g, b)
}

// FromXYZ returns CAM values from given XYZ color coordinate,
// under standard viewing conditions
func FromXYZ(x, y, z float32) *CAM {
	return FromXYZView(x, y, z, NewStdView())
}

// FromXYZView returns CAM values from given XYZ color coordinate,
// under given viewing conditions. Requires 100-base XYZ coordinates.
func FromXYZView(x, y, z float32, vw *View) *CAM {
	l, m, s := XYZToLMS(x, y, z)
	redVgreen, yellowVblue, grey, greyNorm := LMSToOps(l, m, s, vw)

	hue := SanitizeDegrees(math32.Atan2(yellowVblue, redVgreen) * radToDeg)
	ac := grey * vw.NBB

	J := 100 * math32.Pow(ac/vw.AW, vw.C*vw.Z)
	Q := (4 / vw.C) * math32.Sqrt(J/100) * (vw.AW + 4) * (vw.FLRoot)

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math32.Cos(huePrime*degToRad+2) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vw.NC * vw.NCB
	t := p1 * math32.Sqrt(redVgreen*redVgreen+yellowVblue*yellowVblue) / (greyNorm + 0.305)
	alpha := math32.Pow(t, 0.9) * math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73)

	C := alpha * math32.Sqrt(J/100)
	M := C * vw.FLRoot
	s = 50 * math32.Sqrt((alpha*vw.C)/(vw.AW+4))
	return &CAM{Hue: hue, Chroma: C, Colorfulness: M, Saturation: s, Brightness: Q, Lightness: J}
}

// XYZ returns the CAM color as 100-base XYZ coordinates
// under standard viewing conditions.
func (cam *CAM) XYZ() (x, y, z float32) {
	return cam.XYZView(NewStdView())
}

// XYZView returns the CAM color as 100-base XYZ coordinates
// under the given viewing conditions.
func (cam *CAM) XYZView(vw *View) (x, y, z float32) {
	alpha := float32(0)
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math32.Sqrt(cam.Lightness/100)
	}

	t := math32.Pow(alpha/math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73), 1.0/0.9)

	hRad := cam.Hue * degToRad
	eHue := 0.25 * (math32.Cos(hRad+2) + 3.8)
	ac := vw.AW * math32.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000.0 / 13.0) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math32.Sin(hRad)
	hCos := math32.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rF := unadaptComp(rA, vw) / vw.RGBD[0]
	gF := unadaptComp(gA, vw) / vw.RGBD[1]
	bF := unadaptComp(bA, vw) / vw.RGBD[2]

	x = 1.86206786*rF - 1.01125463*gF + 0.14918677*bF
	y = 0.38752654*rF + 0.62144744*gF - 0.00897398*bF
	z = -0.01584150*rF - 0.03412294*gF + 1.04996444*bF
	return
}

// unadaptComp is the inverse of [LuminanceAdaptComp] without the discounting.
func unadaptComp(v float32, vw *View) float32 {
	av := math32.Abs(v)
	base := max(0, (27.13*av)/(400-av))
	return sign(v) * (100 / vw.FL) * math32.Pow(base, 1/0.42)
}
