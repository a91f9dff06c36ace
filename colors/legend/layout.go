// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"fmt"
	"image"
	"strconv"

	"golang.org/x/image/draw"
)

// Directions are the directions in which a legend ramp can run.
type Directions int32

const (
	// Horizontal ramps run from left to right.
	Horizontal Directions = iota

	// Vertical ramps run from bottom to top, like a y axis.
	Vertical
)

func (d Directions) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Directions(%d)", int32(d))
}

// Swatch is the placement of one [Sample] along a legend axis.
type Swatch struct {
	Sample

	// Offset is the distance of the start of the swatch
	// from the start of the legend
	Offset float64

	// Thickness is the size of the swatch along the legend axis
	Thickness float64
}

// Layout places the given samples along a legend axis of the given
// extent. Each swatch is extent/(n-1) thick, and swatch i starts at
// i times that, so the start of the last swatch lies at the end of
// the extent.
func Layout(samples []Sample, extent float64) []Swatch {
	n := len(samples)
	if n == 0 {
		return nil
	}
	th := extent
	if n > 1 {
		th = extent / float64(n-1)
	}
	sw := make([]Swatch, n)
	for i, s := range samples {
		sw[i] = Swatch{Sample: s, Offset: float64(i) * th, Thickness: th}
	}
	return sw
}

// Image returns a width by height image of the color ramp of the given
// samples running in the given direction, with each sample covering an
// equal share of the image. It returns nil if there are no samples or
// the size is empty.
func Image(samples []Sample, width, height int, dir Directions) *image.RGBA {
	n := len(samples)
	if n == 0 || width <= 0 || height <= 0 {
		return nil
	}
	var strip *image.RGBA
	if dir == Vertical {
		strip = image.NewRGBA(image.Rect(0, 0, 1, n))
		for i, s := range samples {
			strip.SetRGBA(0, n-1-i, s.Color)
		}
	} else {
		strip = image.NewRGBA(image.Rect(0, 0, n, 1))
		for i, s := range samples {
			strip.SetRGBA(i, 0, s.Color)
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(img, img.Bounds(), strip, strip.Bounds(), draw.Src, nil)
	return img
}

// Ticker is anything that can provide tick values for an axis,
// such as a [scale.Scale].
type Ticker interface {
	Ticks(n int) []float64
}

// Label is a tick label of a legend axis.
type Label struct {
	Value float64
	Text  string
}

// Labels returns labels for at most n ticks of the given ticker.
func Labels(t Ticker, n int) []Label {
	ticks := t.Ticks(n)
	if len(ticks) == 0 {
		return nil
	}
	ls := make([]Label, len(ticks))
	for i, v := range ticks {
		ls[i] = Label{Value: v, Text: FormatValue(v)}
	}
	return ls
}

// FormatValue formats a legend value compactly, with at most
// six significant digits.
func FormatValue(v float64) string {
	if v == 0 {
		return "0" // avoids "-0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
