// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend samples color scales for drawing legends:
// evenly spaced (value, color) pairs, their layout along a legend
// axis, a rasterized color ramp and tick labels.
package legend

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/colorscale/colors/scale"
)

// Evaluator is anything that maps values onto colors,
// such as a [scale.Scale].
type Evaluator interface {
	Evaluate(x float64) color.RGBA
}

// Sample is one entry of a legend: a value and its color.
type Sample struct {
	Value float64
	Color color.RGBA
}

// Samples returns n evenly spaced samples of the given evaluator from
// min to max inclusive, in that order. The last value is exactly max.
// It returns an error matching [scale.ErrConfiguration] if n < 2
// or min or max is not finite.
func Samples(s Evaluator, min, max float64, n int) ([]Sample, error) {
	if n < 2 {
		return nil, fmt.Errorf("legend.Samples: need at least 2 samples, got %d: %w", n, scale.ErrConfiguration)
	}
	if !finite(min) || !finite(max) {
		return nil, fmt.Errorf("legend.Samples: range %v to %v is not finite: %w", min, max, scale.ErrConfiguration)
	}
	step := (max - min) / float64(n-1)
	samples := make([]Sample, n)
	for i := range samples {
		v := min + float64(i)*step
		if i == n-1 {
			v = max
		}
		samples[i] = Sample{Value: v, Color: s.Evaluate(v)}
	}
	return samples, nil
}

// MustSamples is like [Samples] but panics on error.
func MustSamples(s Evaluator, min, max float64, n int) []Sample {
	samples, err := Samples(s, min, max, n)
	if err != nil {
		panic(err)
	}
	return samples
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
