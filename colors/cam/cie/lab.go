// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float32) float32 {
	if t > labEpsilon {
		return math32.Pow(t, 1.0/3.0)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// LToY converts a perceptual lightness L* value to a 100-base
// relative luminance Y value.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a 100-base relative luminance Y value to
// a perceptual lightness L* value.
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}
