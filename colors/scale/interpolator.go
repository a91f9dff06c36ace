// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"cogentcore.org/colorscale/colors"
)

// Interpolator computes the color that is the fraction t of the way
// from color a to color b. It is used by [Continuous] scales between
// each pair of adjacent color stops. t is in [0, 1] unless the scale
// extrapolates, in which case it may be outside of that range.
//
// [colors.BlendTypes] implements Interpolator, so any blend type
// (including the perceptual ones) can be used directly.
type Interpolator interface {
	Interpolate(a, b color.RGBA, t float64) color.RGBA
}

var _ Interpolator = colors.RGB

// InterpolatorFunc is an adapter to allow the use of an ordinary
// function as an [Interpolator].
type InterpolatorFunc func(a, b color.RGBA, t float64) color.RGBA

// Interpolate calls f(a, b, t).
func (f InterpolatorFunc) Interpolate(a, b color.RGBA, t float64) color.RGBA {
	return f(a, b, t)
}
