// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot writes a scatter plot of colored points with
// a color ramp legend as SVG.
package svgplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"cogentcore.org/colorscale/colors"
	"cogentcore.org/colorscale/colors/legend"
	mscale "github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"
)

// Point is one data point of a scatter plot. Value is mapped to
// the color of the point.
type Point struct {
	X, Y, Value float64
}

// Plot contains the layout parameters of a scatter plot.
type Plot struct {

	// Width and Height are the size of the whole document in pixels
	Width, Height int

	// Margin is the space around the plot area and legend
	Margin int

	// Radius is the radius of each point
	Radius int

	// RampHeight is the height of the legend color ramp
	RampHeight int

	// Title is an optional document title
	Title string
}

// NewPlot returns a new [Plot] with default layout parameters.
func NewPlot() *Plot {
	return &Plot{Width: 640, Height: 480, Margin: 40, Radius: 6, RampHeight: 16}
}

// errWriter records the first write error, as [svg.SVG] does not
// report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// Write writes the SVG document for the given points, colored by
// the given evaluator, with a legend of the given samples and labels
// below the plot area.
func (p *Plot) Write(w io.Writer, points []Point, s legend.Evaluator, samples []legend.Sample, labels []legend.Label) error {
	if p.Width <= 2*p.Margin || p.Height <= 2*p.Margin+p.RampHeight {
		return fmt.Errorf("svgplot.Plot.Write: size %dx%d is too small for margin %d", p.Width, p.Height, p.Margin)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(p.Width, p.Height, `font-size="12px" font-family="Roboto,Helvetica,Arial,sans-serif"`)
	if p.Title != "" {
		canvas.Title(p.Title)
	}

	legendTop := p.Height - p.Margin - p.RampHeight - 16
	x0, x1 := float64(p.Margin), float64(p.Width-p.Margin)
	y0, y1 := float64(legendTop-p.Margin), float64(p.Margin)
	xs, ys := extents(points)

	canvas.Rect(p.Margin, p.Margin, p.Width-2*p.Margin, legendTop-2*p.Margin, "fill:#eee")
	canvas.Group(`id="points"`)
	for _, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) {
			continue
		}
		cx := x0 + xs.Map(pt.X)*(x1-x0)
		cy := y0 + ys.Map(pt.Y)*(y1-y0)
		canvas.Circle(int(math.Round(cx)), int(math.Round(cy)), p.Radius, cssPaint("fill", s.Evaluate(pt.Value)))
	}
	canvas.Gend()

	p.writeLegend(canvas, legendTop, samples, labels)
	canvas.End()
	return ew.err
}

// writeLegend draws the color ramp with its tick labels.
func (p *Plot) writeLegend(canvas *svg.SVG, top int, samples []legend.Sample, labels []legend.Label) {
	if len(samples) == 0 {
		return
	}
	extent := float64(p.Width - 2*p.Margin)
	// the last swatch starts at the end of the extent, so leave room for it
	if len(samples) > 1 {
		extent *= float64(len(samples)-1) / float64(len(samples))
	}
	canvas.Group(`id="legend"`)
	for _, sw := range legend.Layout(samples, extent) {
		x := p.Margin + int(math.Round(sw.Offset))
		w := int(math.Ceil(sw.Thickness))
		canvas.Rect(x, top, w, p.RampHeight, cssPaint("fill", sw.Color))
	}
	first, last := samples[0].Value, samples[len(samples)-1].Value
	lin := mscale.Linear{Min: first, Max: last}
	for _, l := range labels {
		t := lin.Map(l.Value)
		if t < 0 || t > 1 {
			continue
		}
		x := p.Margin + int(math.Round(t*extent))
		canvas.Line(x, top+p.RampHeight, x, top+p.RampHeight+4, "stroke:#888")
		canvas.Text(x, top+p.RampHeight+16, l.Text, `text-anchor="middle"`, `fill="#666"`)
	}
	canvas.Gend()
}

// extents returns linear scales covering the x and y
// values of the given points, extended to nice values.
func extents(points []Point) (xs, ys mscale.Linear) {
	xs = mscale.Linear{Min: math.Inf(1), Max: math.Inf(-1)}
	ys = xs
	for _, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) {
			continue
		}
		xs.Min, xs.Max = min(xs.Min, pt.X), max(xs.Max, pt.X)
		ys.Min, ys.Max = min(ys.Min, pt.Y), max(ys.Max, pt.Y)
	}
	if xs.Min > xs.Max {
		xs.Min, xs.Max = 0, 1
		ys.Min, ys.Max = 0, 1
	}
	xs.Nice(mscale.TickOptions{Max: 6})
	ys.Nice(mscale.TickOptions{Max: 6})
	return
}

// cssPaint returns a CSS paint property for the given color.
func cssPaint(prop string, c color.Color) string {
	rc := colors.AsRGBA(c)
	if rc.A == 0 {
		return prop + ":none"
	}
	return prop + ":" + colors.AsHex(rc)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
