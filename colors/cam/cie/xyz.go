// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhiteD65 is the standard D65 white point in 100-base XYZ coordinates.
var WhiteD65 = [3]float32{95.047, 100.0, 108.883}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2413774792388685*x - 1.5376652402851851*y - 0.49885366846268053*z
	gl = -0.9691452513005321*x + 1.8758853451067872*y + 0.04156585616912061*z
	bl = 0.05562093689691305*x - 0.20395524564742123*y + 1.0571799111220335*z
	return
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// SRGBToXYZ100 converts sRGB into XYZ CIE standard color space
// with 100-base sRGB values -- used for CAM16 but not CAM02
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBToXYZ(r, g, b)
	return 100 * x, 100 * y, 100 * z
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}

// XYZ100ToSRGB converts XYZ CIE standard color space, 100-base, into sRGB
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	return XYZToSRGB(x/100, y/100, z/100)
}
