// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides color scales, which map numeric data values
// onto colors. A [Scale] is configured with a domain of numeric
// breakpoints and a range of colors (or a palette function), and is
// immutable once constructed, so it can be evaluated concurrently.
//
// Four kinds of scales are supported: [Continuous] scales interpolate
// between color stops (with three or more stops giving a diverging
// scale), [Quantized] scales snap values into equal-width buckets,
// [Sequential] scales pass the normalized value through a palette
// function, and [Categorical] scales index a list of category colors.
package scale

import (
	"image/color"
	"math"
	"slices"

	"cogentcore.org/colorscale/colors"
	"cogentcore.org/colorscale/colors/colormap"
	mscale "github.com/aclements/go-moremath/scale"
)

// Config contains the parameters for constructing a [Scale] with [New].
type Config struct {

	// Kind is the kind of scale
	Kind Kinds

	// Domain holds the input breakpoints, which must be strictly
	// monotonic (all ascending or all descending) with at least two values.
	// Continuous scales need one breakpoint per color; the other kinds
	// only use the first and last values.
	Domain []float64

	// Colors are the color stops of a Continuous scale, or the bucket
	// and category colors of Quantized and Categorical scales.
	// For a Sequential scale without a palette, they are evenly
	// spaced stops of the palette.
	Colors []color.RGBA

	// Palette is the name of a [colormap] to use: its palette function
	// for a Sequential scale, or its colors for a Quantized or
	// Categorical scale with no Colors.
	Palette string

	// PaletteFunc is the palette function of a Sequential scale,
	// mapping [0, 1] onto colors. It takes precedence over Palette.
	PaletteFunc func(t float64) color.RGBA

	// Blend is the colorspace used for interpolating between
	// color stops, if Interpolator is nil
	Blend colors.BlendTypes

	// Interpolator is a custom interpolation strategy between
	// color stops; it takes precedence over Blend
	Interpolator Interpolator

	// Extrapolate makes Continuous scales extrapolate along their first
	// and last segments for values outside of the domain, instead of the
	// default of clamping to the end colors.
	Extrapolate bool

	// Unknown is the color returned for NaN values
	Unknown color.RGBA
}

// Scale maps numeric values onto colors. It must be made with [New]
// or one of the other constructors, and it is immutable afterwards.
type Scale struct {
	kind        Kinds
	domain      []float64
	colors      []color.RGBA
	palette     func(t float64) color.RGBA
	interp      Interpolator
	extrapolate bool
	unknown     color.RGBA

	// ascending is whether the domain increases
	ascending bool

	// norm maps the first and last domain values onto 0 and 1
	norm mscale.Linear

	// thresholds are the interior bucket boundaries
	// of Quantized and Categorical scales
	thresholds []float64
}

// New returns a new scale for the given configuration, or
// an error matching [ErrConfiguration] if it is invalid.
func New(cfg *Config) (*Scale, error) {
	if err := validateDomain(cfg.Domain); err != nil {
		return nil, err
	}
	s := &Scale{
		kind:        cfg.Kind,
		domain:      slices.Clone(cfg.Domain),
		colors:      slices.Clone(cfg.Colors),
		interp:      cfg.Interpolator,
		extrapolate: cfg.Extrapolate,
		unknown:     cfg.Unknown,
	}
	if s.interp == nil {
		s.interp = cfg.Blend
	}
	first, last := s.domain[0], s.domain[len(s.domain)-1]
	s.ascending = last > first
	s.norm = mscale.Linear{Min: first, Max: last}

	switch cfg.Kind {
	case Continuous:
		if len(s.colors) != len(s.domain) {
			return nil, configErrorf("Colors", "continuous scale needs one color per domain value, got %d colors for %d domain values", len(s.colors), len(s.domain))
		}
	case Quantized, Categorical:
		if len(s.colors) == 0 && cfg.Palette != "" {
			cm, ok := colormap.AvailableMap(cfg.Palette)
			if !ok {
				return nil, configErrorf("Palette", "unknown palette %q", cfg.Palette)
			}
			s.colors = slices.Clone(cm.Colors)
		}
		if len(s.colors) == 0 {
			return nil, configErrorf("Colors", "%v scale needs at least one color", cfg.Kind)
		}
		s.thresholds = thresholds(first, last, len(s.colors))
	case Sequential:
		switch {
		case cfg.PaletteFunc != nil:
			s.palette = cfg.PaletteFunc
		case cfg.Palette != "":
			fn, ok := colormap.Func(cfg.Palette)
			if !ok {
				return nil, configErrorf("Palette", "unknown palette %q", cfg.Palette)
			}
			s.palette = fn
		case len(s.colors) > 0:
			cm := &colormap.Map{Colors: s.colors, Blend: cfg.Blend}
			s.palette = cm.At
		default:
			return nil, configErrorf("Palette", "sequential scale needs a palette function, palette name, or colors")
		}
	default:
		return nil, configErrorf("Kind", "unknown scale kind %v", cfg.Kind)
	}
	return s, nil
}

// validateDomain checks that the domain has at least two finite,
// strictly monotonic values.
func validateDomain(d []float64) error {
	if len(d) < 2 {
		return configErrorf("Domain", "need at least 2 values, got %d", len(d))
	}
	for i, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return configErrorf("Domain", "value %d is not finite: %v", i, v)
		}
	}
	ascending := d[1] > d[0]
	for i := 1; i < len(d); i++ {
		if (ascending && d[i] <= d[i-1]) || (!ascending && d[i] >= d[i-1]) {
			return configErrorf("Domain", "values are not strictly monotonic at index %d (%v after %v)", i, d[i], d[i-1])
		}
	}
	return nil
}

// thresholds returns the k-1 interior boundaries of k equal-width
// buckets spanning first to last.
func thresholds(first, last float64, k int) []float64 {
	th := make([]float64, k-1)
	w := (last - first) / float64(k)
	for i := range th {
		th[i] = first + float64(i+1)*w
	}
	return th
}

// NewContinuous returns a new [Continuous] scale interpolating between
// the given colors, one per domain value, in the given blend colorspace.
func NewContinuous(domain []float64, cols []color.RGBA, blend colors.BlendTypes) (*Scale, error) {
	return New(&Config{Kind: Continuous, Domain: domain, Colors: cols, Blend: blend})
}

// NewQuantized returns a new [Quantized] scale dividing the range
// from min to max into one equal-width bucket per color.
func NewQuantized(min, max float64, cols ...color.RGBA) (*Scale, error) {
	return New(&Config{Kind: Quantized, Domain: []float64{min, max}, Colors: cols})
}

// NewSequential returns a new [Sequential] scale over the range
// from min to max using the given palette function.
func NewSequential(min, max float64, fn func(t float64) color.RGBA) (*Scale, error) {
	return New(&Config{Kind: Sequential, Domain: []float64{min, max}, PaletteFunc: fn})
}

// NewSequentialNamed returns a new [Sequential] scale over the range
// from min to max using the palette function of the named [colormap].
func NewSequentialNamed(min, max float64, palette string) (*Scale, error) {
	return New(&Config{Kind: Sequential, Domain: []float64{min, max}, Palette: palette})
}

// NewCategorical returns a new [Categorical] scale over the range
// from min to max, with one equal-width slot per color.
func NewCategorical(min, max float64, cols ...color.RGBA) (*Scale, error) {
	return New(&Config{Kind: Categorical, Domain: []float64{min, max}, Colors: cols})
}

// Must returns the given scale, panicking if err is non-nil.
// It is intended for scales with static configurations.
func Must(s *Scale, err error) *Scale {
	if err != nil {
		panic("scale.Must: " + err.Error())
	}
	return s
}

// Kind returns the kind of the scale.
func (s *Scale) Kind() Kinds {
	return s.kind
}

// Domain returns a copy of the domain breakpoints of the scale.
func (s *Scale) Domain() []float64 {
	return slices.Clone(s.domain)
}

// Extent returns the first and last domain values.
func (s *Scale) Extent() (first, last float64) {
	return s.domain[0], s.domain[len(s.domain)-1]
}

// Colors returns a copy of the colors of the scale, which is
// empty for a [Sequential] scale defined by a palette.
func (s *Scale) Colors() []color.RGBA {
	return slices.Clone(s.colors)
}

// Extrapolates returns whether values outside of the domain
// are extrapolated rather than clamped.
func (s *Scale) Extrapolates() bool {
	return s.extrapolate
}
