// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/palette"
)

var _ palette.Continuous = &Scale{}

// Evaluate returns the color for the given value. Values outside of the
// domain are clamped to it, unless the scale is a [Continuous] one that
// extrapolates. NaN values return the Unknown color of the configuration.
func (s *Scale) Evaluate(x float64) color.RGBA {
	if math.IsNaN(x) {
		return s.unknown
	}
	switch s.kind {
	case Continuous:
		return s.continuous(x)
	case Sequential:
		return s.palette(clamp01(s.norm.Map(x)))
	}
	return s.colors[s.Bucket(x)]
}

// continuous interpolates between the two color stops
// bracketing x in the domain.
func (s *Scale) continuous(x float64) color.RGBA {
	d := s.domain
	// index of the first segment whose upper end is not below x
	i := sort.Search(len(d)-2, func(i int) bool {
		if s.ascending {
			return x <= d[i+1]
		}
		return x >= d[i+1]
	})
	t := (x - d[i]) / (d[i+1] - d[i])
	if !s.extrapolate {
		t = clamp01(t)
	}
	switch t {
	case 0:
		return s.colors[i]
	case 1:
		return s.colors[i+1]
	}
	return s.interp.Interpolate(s.colors[i], s.colors[i+1], t)
}

// Bucket returns the index of the bucket that x falls into, for
// [Quantized] and [Categorical] scales. Buckets include their lower
// boundary (in domain order), and values outside of the domain go
// into the first or last bucket. It returns -1 for other kinds of
// scales and for NaN.
func (s *Scale) Bucket(x float64) int {
	if (s.kind != Quantized && s.kind != Categorical) || math.IsNaN(x) {
		return -1
	}
	th := s.thresholds
	return sort.Search(len(th), func(j int) bool {
		if s.ascending {
			return x < th[j]
		}
		return x > th[j]
	})
}

// Palette returns the scale as a palette function on [0, 1],
// with 0 and 1 corresponding to the first and last domain values.
func (s *Scale) Palette() func(t float64) color.RGBA {
	return func(t float64) color.RGBA {
		return s.Evaluate(s.unmap(t))
	}
}

// Map implements [palette.Continuous], mapping t in [0, 1]
// onto the domain and returning the color there.
func (s *Scale) Map(t float64) color.Color {
	return s.Evaluate(s.unmap(t))
}

// unmap maps t in [0, 1] linearly onto the domain extent.
func (s *Scale) unmap(t float64) float64 {
	first, last := s.Extent()
	return first + t*(last-first)
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}
