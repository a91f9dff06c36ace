// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "github.com/chewxy/math32"

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAT16 transform from CAM16 color appearance model
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LuminanceAdaptComp performs luminance adaptation
// based on CAM16 equations, applied to one of the LMS
// components after discounting by d.
func LuminanceAdaptComp(v, d, fl float32) float32 {
	vd := v * d
	f := math32.Pow(fl*math32.Abs(vd)/100, 0.42)
	return sign(vd) * 400 * f / (f + 27.13)
}

// LuminanceAdapt performs luminance adaptation of LMS
// cone responses under the given viewing conditions.
func LuminanceAdapt(l, m, s float32, vw *View) (lA, mA, sA float32) {
	lA = LuminanceAdaptComp(l, vw.RGBD[0], vw.FL)
	mA = LuminanceAdaptComp(m, vw.RGBD[1], vw.FL)
	sA = LuminanceAdaptComp(s, vw.RGBD[2], vw.FL)
	return
}

// LMSToOps converts adapted cone responses into the opponent
// dimensions: red vs. green, yellow vs. blue, the achromatic
// (grey) response and its normalization factor.
func LMSToOps(l, m, s float32, vw *View) (redVgreen, yellowVblue, grey, greyNorm float32) {
	lA, mA, sA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*lA - 12*mA + sA) / 11
	yellowVblue = (lA + mA - 2*sA) / 9
	grey = (40*lA + 20*mA + sA) / 20
	greyNorm = (20*lA + 20*mA + 21*sA) / 20
	return
}

// SanitizeDegrees ensures that degrees is in [0-360) range
func SanitizeDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// sign returns -1, 0 or 1 depending on the sign of v.
func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
