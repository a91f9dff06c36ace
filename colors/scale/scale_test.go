// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"image/color"
	"math"
	"sync"
	"testing"

	"cogentcore.org/colorscale/colors"
	"cogentcore.org/colorscale/colors/cam/cam16"
	"cogentcore.org/colorscale/colors/colormap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	purple = color.RGBA{128, 0, 128, 255}
	white  = color.RGBA{255, 255, 255, 255}
	orange = color.RGBA{255, 165, 0, 255}
	green  = color.RGBA{0, 128, 0, 255}
)

func between(t *testing.T, c, a, b color.RGBA) {
	t.Helper()
	in := func(v, x, y uint8) bool {
		return v >= min(x, y) && v <= max(x, y)
	}
	assert.True(t, in(c.R, a.R, b.R) && in(c.G, a.G, b.G) && in(c.B, a.B, b.B) && in(c.A, a.A, b.A),
		"%v is not between %v and %v", c, a, b)
}

// near checks that two colors differ by at most one in each channel,
// which allows for rounding.
func near(t *testing.T, a, b color.RGBA) {
	t.Helper()
	d := func(x, y uint8) int {
		return max(int(x)-int(y), int(y)-int(x))
	}
	assert.True(t, d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1 && d(a.A, b.A) <= 1,
		"%v is not near %v", a, b)
}

func TestContinuousTwoPoint(t *testing.T) {
	s, err := NewContinuous([]float64{-44, 45}, []color.RGBA{purple, orange}, colors.RGB)
	require.NoError(t, err)
	assert.Equal(t, Continuous, s.Kind())

	assert.Equal(t, purple, s.Evaluate(-44))
	assert.Equal(t, orange, s.Evaluate(45))

	// 0.5 is the midpoint of the domain
	assert.Equal(t, colors.RGB.Interpolate(purple, orange, 0.5), s.Evaluate(0.5))

	for x := -44.0; x <= 45; x += 0.75 {
		between(t, s.Evaluate(x), purple, orange)
	}

	// clamping law
	for _, x := range []float64{-45, -100, -1e9, math.Inf(-1)} {
		assert.Equal(t, s.Evaluate(-44), s.Evaluate(x), "x = %v", x)
	}
	for _, x := range []float64{45.0001, 100, 1e9, math.Inf(1)} {
		assert.Equal(t, s.Evaluate(45), s.Evaluate(x), "x = %v", x)
	}

	// pure function
	for _, x := range []float64{-30, 0, 12.25} {
		assert.Equal(t, s.Evaluate(x), s.Evaluate(x))
	}
}

func TestDiverging(t *testing.T) {
	s, err := NewContinuous([]float64{-44, 0, 45}, []color.RGBA{purple, white, orange}, colors.RGB)
	require.NoError(t, err)

	assert.Equal(t, purple, s.Evaluate(-44))
	assert.Equal(t, white, s.Evaluate(0))
	assert.Equal(t, orange, s.Evaluate(45))
	assert.Equal(t, colors.RGB.Interpolate(purple, white, 0.5), s.Evaluate(-22))
	assert.Equal(t, colors.RGB.Interpolate(white, orange, 0.5), s.Evaluate(22.5))

	for x := -44.0; x < 0; x += 1.5 {
		between(t, s.Evaluate(x), purple, white)
	}
	for x := 0.0; x <= 45; x += 1.5 {
		between(t, s.Evaluate(x), white, orange)
	}
	assert.Equal(t, purple, s.Evaluate(-500))
	assert.Equal(t, orange, s.Evaluate(500))
}

func TestDescendingDomain(t *testing.T) {
	asc, err := NewContinuous([]float64{-10, 0, 10}, []color.RGBA{purple, white, orange}, colors.RGB)
	require.NoError(t, err)
	desc, err := NewContinuous([]float64{10, 0, -10}, []color.RGBA{orange, white, purple}, colors.RGB)
	require.NoError(t, err)
	for x := -15.0; x <= 15; x += 0.5 {
		near(t, asc.Evaluate(x), desc.Evaluate(x))
	}
	assert.Equal(t, white, desc.Evaluate(0))
	assert.Equal(t, purple, desc.Evaluate(-15))

	q, err := NewQuantized(10, -10, purple, white, orange)
	require.NoError(t, err)
	assert.Equal(t, purple, q.Evaluate(9))
	assert.Equal(t, white, q.Evaluate(0))
	assert.Equal(t, orange, q.Evaluate(-9))
	assert.Equal(t, orange, q.Evaluate(-90))
}

func TestExtrapolate(t *testing.T) {
	s, err := New(&Config{Domain: []float64{0, 10}, Colors: []color.RGBA{{100, 100, 100, 255}, {150, 150, 150, 255}}, Extrapolate: true})
	require.NoError(t, err)
	assert.True(t, s.Extrapolates())
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, s.Evaluate(20))
	assert.Equal(t, color.RGBA{50, 50, 50, 255}, s.Evaluate(-10))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, s.Evaluate(1000))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, s.Evaluate(-1000))

	clamped, err := New(&Config{Domain: []float64{0, 10}, Colors: []color.RGBA{{100, 100, 100, 255}, {150, 150, 150, 255}}})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{150, 150, 150, 255}, clamped.Evaluate(20))

	// past the lighter end, every blend keeps getting lighter
	// rather than collapsing to black
	black := color.RGBA{0, 0, 0, 255}
	orangeJ := cam16.FromColor(orange).Lightness
	for _, bt := range colors.BlendTypesValues() {
		s := Must(New(&Config{Domain: []float64{0, 1}, Colors: []color.RGBA{purple, orange}, Blend: bt, Extrapolate: true}))
		for _, x := range []float64{3, 10, 100} {
			c := s.Evaluate(x)
			assert.NotEqual(t, black, c, "%v at %v", bt, x)
			assert.Equal(t, uint8(255), c.A, "%v at %v", bt, x)
			assert.GreaterOrEqual(t, cam16.FromColor(c).Lightness, orangeJ-1, "%v at %v", bt, x)
		}
	}
}

func TestPerceptualInterpolation(t *testing.T) {
	for _, bt := range []colors.BlendTypes{colors.Lab, colors.HCL, colors.Luv, colors.CAM16, colors.LinearRGB} {
		s, err := NewContinuous([]float64{-44, 0, 45}, []color.RGBA{purple, white, orange}, bt)
		require.NoError(t, err, bt.String())
		assert.Equal(t, purple, s.Evaluate(-44), bt.String())
		assert.Equal(t, white, s.Evaluate(0), bt.String())
		assert.Equal(t, orange, s.Evaluate(45), bt.String())
		assert.Equal(t, purple, s.Evaluate(-60), bt.String())
		mid := s.Evaluate(-22)
		assert.NotEqual(t, purple, mid, bt.String())
		assert.NotEqual(t, white, mid, bt.String())
	}
}

func TestCustomInterpolator(t *testing.T) {
	var calls int
	var mu sync.Mutex
	step := InterpolatorFunc(func(a, b color.RGBA, t float64) color.RGBA {
		mu.Lock()
		calls++
		mu.Unlock()
		if t < 0.5 {
			return a
		}
		return b
	})
	s, err := New(&Config{Domain: []float64{0, 1}, Colors: []color.RGBA{purple, orange}, Interpolator: step})
	require.NoError(t, err)
	assert.Equal(t, purple, s.Evaluate(0.25))
	assert.Equal(t, orange, s.Evaluate(0.75))
	assert.Equal(t, 2, calls)

	// end stops never reach the interpolator
	s.Evaluate(0)
	s.Evaluate(1)
	assert.Equal(t, 2, calls)
}

func TestQuantized(t *testing.T) {
	s, err := NewQuantized(-44, 45, purple, white, orange)
	require.NoError(t, err)

	th := s.Thresholds()
	require.Len(t, th, 2)
	width := 89.0 / 3
	assert.InDelta(t, 29.67, width, 0.01)
	assert.InDelta(t, -44+width, th[0], 1e-9)
	assert.InDelta(t, -44+2*width, th[1], 1e-9)

	assert.Equal(t, s.Evaluate(-44), s.Evaluate(-20))
	assert.Equal(t, purple, s.Evaluate(-44))
	assert.NotEqual(t, s.Evaluate(-20), s.Evaluate(10))
	assert.Equal(t, white, s.Evaluate(10))
	assert.Equal(t, orange, s.Evaluate(45))

	// no interpolation inside a bucket, and clamped outside of the domain
	for x := -44.0; x < th[0]; x += 0.5 {
		assert.Equal(t, purple, s.Evaluate(x))
	}
	assert.Equal(t, purple, s.Evaluate(-1000))
	assert.Equal(t, orange, s.Evaluate(1000))

	// buckets partition the domain: each boundary belongs to the upper bucket
	assert.Equal(t, 1, s.Bucket(th[0]))
	assert.Equal(t, 2, s.Bucket(th[1]))
	assert.Equal(t, 0, s.Bucket(math.Nextafter(th[0], math.Inf(-1))))

	prevHi := -44.0
	for i := range 3 {
		lo, hi, ok := s.InvertExtent(i)
		require.True(t, ok)
		assert.Equal(t, prevHi, lo)
		assert.InDelta(t, width, hi-lo, 1e-9)
		assert.Equal(t, i, s.Bucket(lo))
		prevHi = hi
	}
	assert.Equal(t, 45.0, prevHi)
	_, _, ok := s.InvertExtent(3)
	assert.False(t, ok)
	_, _, ok = s.InvertExtent(-1)
	assert.False(t, ok)
}

func TestSequential(t *testing.T) {
	s, err := NewSequentialNamed(0, 100, "Viridis")
	require.NoError(t, err)
	fn, ok := colormap.Func("Viridis")
	require.True(t, ok)

	assert.Equal(t, fn(0), s.Evaluate(0))
	assert.Equal(t, fn(0.5), s.Evaluate(50))
	assert.Equal(t, fn(1), s.Evaluate(100))
	assert.Equal(t, fn(0), s.Evaluate(-5))
	assert.Equal(t, fn(1), s.Evaluate(105))

	gray := func(t float64) color.RGBA {
		v := uint8(255 * t)
		return color.RGBA{v, v, v, 255}
	}
	s, err = NewSequential(-44, 45, gray)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, s.Evaluate(-44))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, s.Evaluate(45))
	assert.Empty(t, s.Colors())

	s, err = New(&Config{Kind: Sequential, Domain: []float64{0, 1}, Colors: []color.RGBA{purple, orange}})
	require.NoError(t, err)
	assert.Equal(t, purple, s.Evaluate(0))
	assert.Equal(t, orange, s.Evaluate(1))
}

func TestCategorical(t *testing.T) {
	s, err := NewCategorical(0, 3, purple, white, orange)
	require.NoError(t, err)
	assert.Equal(t, Categorical, s.Kind())
	assert.Equal(t, purple, s.Evaluate(0.5))
	assert.Equal(t, white, s.Evaluate(1.5))
	assert.Equal(t, orange, s.Evaluate(2.5))
	assert.Equal(t, orange, s.Evaluate(3))

	s, err = New(&Config{Kind: Categorical, Domain: []float64{0, 10}, Palette: "Category10"})
	require.NoError(t, err)
	cm, _ := colormap.AvailableMap("Category10")
	for i := range 10 {
		assert.Equal(t, cm.Colors[i], s.Evaluate(float64(i)+0.5))
	}
}

func TestUnknown(t *testing.T) {
	unk := color.RGBA{1, 2, 3, 255}
	for _, k := range KindsValues() {
		cfg := &Config{Kind: k, Domain: []float64{0, 1}, Colors: []color.RGBA{purple, orange}, Unknown: unk}
		s, err := New(cfg)
		require.NoError(t, err, k.String())
		assert.Equal(t, unk, s.Evaluate(math.NaN()), k.String())
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty domain", Config{Colors: []color.RGBA{purple}}},
		{"one value", Config{Domain: []float64{1}, Colors: []color.RGBA{purple}}},
		{"equal values", Config{Domain: []float64{1, 1}, Colors: []color.RGBA{purple, orange}}},
		{"not monotonic", Config{Domain: []float64{0, 5, 3}, Colors: []color.RGBA{purple, white, orange}}},
		{"nan", Config{Domain: []float64{0, math.NaN()}, Colors: []color.RGBA{purple, orange}}},
		{"inf", Config{Domain: []float64{0, math.Inf(1)}, Colors: []color.RGBA{purple, orange}}},
		{"mismatched", Config{Domain: []float64{0, 5, 10}, Colors: []color.RGBA{purple, orange}}},
		{"quantized no colors", Config{Kind: Quantized, Domain: []float64{0, 1}}},
		{"categorical bad palette", Config{Kind: Categorical, Domain: []float64{0, 1}, Palette: "nope"}},
		{"sequential no palette", Config{Kind: Sequential, Domain: []float64{0, 1}}},
		{"sequential bad palette", Config{Kind: Sequential, Domain: []float64{0, 1}, Palette: "nope"}},
		{"bad kind", Config{Kind: Kinds(99), Domain: []float64{0, 1}}},
	}
	for _, test := range tests {
		s, err := New(&test.cfg)
		assert.Nil(t, s, test.name)
		require.Error(t, err, test.name)
		assert.ErrorIs(t, err, ErrConfiguration, test.name)
		var ce *ConfigError
		assert.True(t, errors.As(err, &ce), test.name)
	}
	assert.Panics(t, func() { Must(NewQuantized(0, 0, purple)) })
}

func TestImmutable(t *testing.T) {
	domain := []float64{0, 10}
	cols := []color.RGBA{purple, orange}
	s, err := NewContinuous(domain, cols, colors.RGB)
	require.NoError(t, err)
	domain[1] = 1000
	cols[1] = green
	assert.Equal(t, orange, s.Evaluate(10))

	got := s.Domain()
	got[0] = -5
	assert.Equal(t, []float64{0, 10}, s.Domain())
	gc := s.Colors()
	gc[0] = green
	assert.Equal(t, purple, s.Evaluate(0))
}

func TestConcurrentEvaluate(t *testing.T) {
	s := Must(NewContinuous([]float64{-44, 0, 45}, []color.RGBA{purple, white, orange}, colors.CAM16))
	want := make([]color.RGBA, 90)
	for i := range want {
		want[i] = s.Evaluate(float64(i - 44))
	}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range want {
				assert.Equal(t, want[i], s.Evaluate(float64(i-44)))
			}
		}()
	}
	wg.Wait()
}

func TestPaletteAndMap(t *testing.T) {
	s := Must(NewContinuous([]float64{-44, 45}, []color.RGBA{purple, orange}, colors.RGB))
	p := s.Palette()
	assert.Equal(t, purple, p(0))
	assert.Equal(t, orange, p(1))
	assert.Equal(t, s.Evaluate(0.5), p(0.5))
	assert.Equal(t, color.Color(orange), s.Map(1))
}

func TestTicks(t *testing.T) {
	s := Must(NewContinuous([]float64{-44, 45}, []color.RGBA{purple, orange}, colors.RGB))
	ticks := s.Ticks(10)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 10)
	for i, v := range ticks {
		assert.GreaterOrEqual(t, v, -44.0)
		assert.LessOrEqual(t, v, 45.0)
		if i > 0 {
			assert.Greater(t, v, ticks[i-1])
		}
	}
	assert.Contains(t, ticks, 0.0)
	assert.Nil(t, s.Ticks(0))

	desc := Must(NewContinuous([]float64{45, -44}, []color.RGBA{orange, purple}, colors.RGB))
	assert.Equal(t, ticks, desc.Ticks(10))
}

func TestKindsString(t *testing.T) {
	for _, k := range KindsValues() {
		var got Kinds
		require.NoError(t, got.SetString(k.String()))
		assert.Equal(t, k, got)
	}
	var k Kinds
	require.NoError(t, k.UnmarshalText([]byte("Diverging")))
	assert.Equal(t, Continuous, k)
	require.NoError(t, k.SetString("quantize"))
	assert.Equal(t, Quantized, k)
	assert.Error(t, k.SetString("ordinal"))
}
