// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"cogentcore.org/colorscale/colors"
	"cogentcore.org/colorscale/colors/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	purple = color.RGBA{128, 0, 128, 255}
	white  = color.RGBA{255, 255, 255, 255}
	orange = color.RGBA{255, 165, 0, 255}
)

func diverging(t *testing.T) *scale.Scale {
	t.Helper()
	s, err := scale.NewContinuous([]float64{-44, 0, 45}, []color.RGBA{purple, white, orange}, colors.RGB)
	require.NoError(t, err)
	return s
}

func TestSamples(t *testing.T) {
	s := scale.Must(scale.NewContinuous([]float64{0, 100}, []color.RGBA{purple, orange}, colors.RGB))
	samples, err := Samples(s, 0, 100, 5)
	require.NoError(t, err)
	require.Len(t, samples, 5)
	for i, want := range []float64{0, 25, 50, 75, 100} {
		assert.Equal(t, want, samples[i].Value)
		assert.Equal(t, s.Evaluate(want), samples[i].Color)
	}

	d := diverging(t)
	for _, n := range []int{2, 3, 7, 10, 101} {
		samples, err := Samples(d, -44, 45, n)
		require.NoError(t, err)
		require.Len(t, samples, n)
		assert.Equal(t, -44.0, samples[0].Value)
		assert.Equal(t, 45.0, samples[n-1].Value)
		assert.Equal(t, purple, samples[0].Color)
		assert.Equal(t, orange, samples[n-1].Color)
		for i := 1; i < n; i++ {
			assert.Greater(t, samples[i].Value, samples[i-1].Value)
		}
	}

	// descending ranges keep their order
	samples, err = Samples(d, 45, -44, 4)
	require.NoError(t, err)
	assert.Equal(t, 45.0, samples[0].Value)
	assert.Equal(t, -44.0, samples[3].Value)
	assert.Equal(t, orange, samples[0].Color)
}

func TestSamplesErrors(t *testing.T) {
	d := diverging(t)
	for _, n := range []int{-1, 0, 1} {
		_, err := Samples(d, -44, 45, n)
		assert.ErrorIs(t, err, scale.ErrConfiguration, "n = %d", n)
	}
	_, err := Samples(d, math.NaN(), 45, 5)
	assert.ErrorIs(t, err, scale.ErrConfiguration)
	assert.Panics(t, func() { MustSamples(d, 0, 1, 1) })
}

func TestLayout(t *testing.T) {
	samples := MustSamples(diverging(t), -44, 45, 5)
	sw := Layout(samples, 200)
	require.Len(t, sw, 5)
	for i, s := range sw {
		assert.Equal(t, 50.0, s.Thickness)
		assert.Equal(t, float64(i)*50, s.Offset)
		assert.Equal(t, samples[i], s.Sample)
	}
	assert.Nil(t, Layout(nil, 100))
	one := Layout(samples[:1], 100)
	assert.Equal(t, 100.0, one[0].Thickness)
}

func TestImage(t *testing.T) {
	samples := MustSamples(diverging(t), -44, 45, 5)
	img := Image(samples, 100, 10, Horizontal)
	require.NotNil(t, img)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
	for i, s := range samples {
		x := i*20 + 10
		assert.Equal(t, s.Color, img.RGBAAt(x, 0), "x = %d", x)
		assert.Equal(t, s.Color, img.RGBAAt(x, 9), "x = %d", x)
	}
	assert.Equal(t, purple, img.RGBAAt(0, 5))
	assert.Equal(t, orange, img.RGBAAt(99, 5))

	img = Image(samples, 10, 50, Vertical)
	require.NotNil(t, img)
	assert.Equal(t, orange, img.RGBAAt(5, 0))
	assert.Equal(t, purple, img.RGBAAt(5, 49))

	assert.Nil(t, Image(nil, 10, 10, Horizontal))
	assert.Nil(t, Image(samples, 0, 10, Horizontal))
}

func TestLabels(t *testing.T) {
	ls := Labels(diverging(t), 10)
	require.NotEmpty(t, ls)
	for _, l := range ls {
		assert.Equal(t, FormatValue(l.Value), l.Text)
		assert.GreaterOrEqual(t, l.Value, -44.0)
		assert.LessOrEqual(t, l.Value, 45.0)
	}
	assert.Nil(t, Labels(diverging(t), 0))

	assert.Equal(t, "0", FormatValue(math.Copysign(0, -1)))
	assert.Equal(t, "-40", FormatValue(-40))
	assert.Equal(t, "0.3", FormatValue(0.1+0.2))
	assert.Equal(t, "1e+06", FormatValue(1e6))
}

func ExampleSamples() {
	s := scale.Must(scale.NewQuantized(0, 100,
		color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255}))
	for _, smp := range MustSamples(s, 0, 100, 5) {
		fmt.Println(smp.Value, colors.AsHex(smp.Color))
	}
	// Output:
	// 0 #FF0000
	// 25 #FF0000
	// 50 #0000FF
	// 75 #0000FF
	// 100 #0000FF
}
