// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"slices"

	mscale "github.com/aclements/go-moremath/scale"
)

// Thresholds returns the interior boundaries between the buckets of
// a [Quantized] or [Categorical] scale, in domain order. There is one
// fewer threshold than there are colors. It returns nil for other kinds.
func (s *Scale) Thresholds() []float64 {
	return slices.Clone(s.thresholds)
}

// InvertExtent returns the extent of the domain that maps onto
// the bucket with the given index, for [Quantized] and [Categorical]
// scales. The extent is given in domain order, so lo > hi for
// a descending domain. ok is false if there is no such bucket.
func (s *Scale) InvertExtent(i int) (lo, hi float64, ok bool) {
	if s.kind != Quantized && s.kind != Categorical {
		return 0, 0, false
	}
	if i < 0 || i >= len(s.colors) {
		return 0, 0, false
	}
	lo, hi = s.Extent()
	if i > 0 {
		lo = s.thresholds[i-1]
	}
	if i < len(s.thresholds) {
		hi = s.thresholds[i]
	}
	return lo, hi, true
}

// Ticks returns at most n human-friendly tick values that lie within
// the domain extent, in increasing order, suitable for labeling a legend.
// It returns nil if n < 1.
func (s *Scale) Ticks(n int) []float64 {
	if n < 1 {
		return nil
	}
	first, last := s.Extent()
	lin := mscale.Linear{Min: min(first, last), Max: max(first, last)}
	major, _ := lin.Ticks(mscale.TickOptions{Max: n})
	return slices.DeleteFunc(major, func(v float64) bool {
		return v < lin.Min || v > lin.Max
	})
}
