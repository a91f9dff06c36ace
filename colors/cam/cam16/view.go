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

package cam16

import (
	"math"
	"sync"

	"cogentcore.org/colorscale/colors/cam/cie"
	"github.com/chewxy/math32"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. Defaults represent the
// standard defined such conditions, under which the CAM16 computations operate.
type View struct {

	// WhitePoint is the white point illumination in 100-base XYZ,
	// typically [cie.WhiteD65]
	WhitePoint [3]float32

	// Luminance is the ambient light strength in lux, 200 by default
	Luminance float32

	// BgLuminance is the average luminance of 10 degrees around the color
	// in question, 50 by default
	BgLuminance float32

	// Surround is the brightness of the entire environment, 0-2,
	// 2 by default
	Surround float32

	// Adapted is whether the person's eyes have adapted to the lighting
	Adapted bool

	// AdaptingLuminance is computed from Luminance
	AdaptingLuminance float32

	// BgYToWhiteY is the ratio of background to white relative luminance
	BgYToWhiteY float32

	// AW is the achromatic response to the white point
	AW float32

	// NBB is the brightness induction factor
	NBB float32

	// NCB is the chromatic induction factor of the background
	NCB float32

	// C is the exponential nonlinearity
	C float32

	// NC is the chromatic induction factor
	NC float32

	// FL is the luminance-level adaptation factor
	FL float32

	// FLRoot is FL to the 1/4 power
	FLRoot float32

	// Z is the base exponential nonlinearity
	Z float32

	// RGBD holds the cone responses to the white point, adjusted for discounting
	RGBD [3]float32
}

// NewView returns a new view with all parameters initialized based on given major params
func NewView(whitePoint [3]float32, lum, bgLum, surround float32, adapt bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapt}
	vw.Update()
	return vw
}

// stdView is built on first use and never modified afterwards.
var stdView = sync.OnceValue(func() *View {
	return NewView(cie.WhiteD65, 200, 50, 2, false)
})

// NewStdView returns the standard viewing conditions model.
// The same shared view is returned on every call, and it must not be modified.
func NewStdView() *View {
	return stdView()
}

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math.Pi) * (cie.LToY(50) / 100)
	// A background of pure black is non-physical and leads to infinities
	vw.BgLuminance = max(0.1, vw.BgLuminance)

	rW, gW, bW := XYZToLMS(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	// surround (0, 2) maps to CAM16 surround (0.8, 1.0)
	vw.Surround = min(max(vw.Surround, 0), 2)
	f := 0.8 + (vw.Surround / 10)
	if f >= 0.9 {
		vw.C = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = lerp(0.525, 0.59, (f-0.8)*10)
	}
	d := float32(1)
	if !vw.Adapted {
		d = f * (1 - ((1 / 3.6) * math32.Exp((-vw.AdaptingLuminance-42)/92)))
	}
	d = min(max(d, 0), 1)

	vw.NC = f

	// 100 rather than the white point Y: later steps scale relative to white
	vw.RGBD[0] = d*(100/rW) + 1 - d
	vw.RGBD[1] = d*(100/gW) + 1 - d
	vw.RGBD[2] = d*(100/bW) + 1 - d

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math32.Pow(5*vw.AdaptingLuminance, 1.0/3.0))
	vw.FLRoot = math32.Pow(vw.FL, 0.25)

	n := cie.LToY(vw.BgLuminance) / vw.WhitePoint[1]
	vw.BgYToWhiteY = n

	// Schlomer 2018 uses 1.58 here, which is a typo
	vw.Z = 1.48 + math32.Sqrt(n)

	vw.NBB = 0.725 / math32.Pow(n, 0.2)
	vw.NCB = vw.NBB

	rA, gA, bA := LuminanceAdapt(rW, gW, bW, vw)
	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}

func lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}
