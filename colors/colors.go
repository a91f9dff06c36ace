// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides basic color conversion, parsing and
// blending functions built around the standard [color.RGBA] type.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// Transparent is the fully transparent zero color.
	Transparent = color.RGBA{}

	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string of the
// non-premultiplied components, omitting alpha when it is opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := color.NRGBAModel.Convert(c).(color.NRGBA)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string
// (#RGB, #RRGGBB or #RRGGBBAA, with the # optional)
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var a uint8 = 255
	switch len(hex) {
	case 3, 6:
	case 8:
		var av int
		if _, err := fmt.Sscanf(hex[6:], "%02x", &av); err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process alpha of %q: %w", hex, err)
		}
		a = uint8(av)
		hex = hex[:6]
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	c, err := colorful.Hex("#" + expandHex(hex))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := c.RGB255()
	return WithA(color.RGBA{r, g, b, 255}, a), nil
}

// expandHex expands the short #RGB form into #RRGGBB.
func expandHex(hex string) string {
	if len(hex) != 3 {
		return hex
	}
	var sb strings.Builder
	for _, r := range hex {
		sb.WriteRune(r)
		sb.WriteRune(r)
	}
	return sb.String()
}

// FromString returns a color value from the given string,
// which can be a hex value, a CSS standard color name,
// or "none" / "transparent" for the transparent color.
func FromString(str string) (color.RGBA, error) {
	s := strings.TrimSpace(strings.ToLower(str))
	switch {
	case s == "":
		return color.RGBA{}, errors.New("colors.FromString: empty color string")
	case s == "none" || s == "transparent":
		return Transparent, nil
	case s[0] == '#':
		return FromHex(s)
	}
	return FromName(s)
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) color.RGBA {
	c, err := FromString(str)
	if err != nil {
		panic("colors.MustFromString: " + err.Error())
	}
	return c
}

// WithA returns the given color with the
// transparency (A) set to the given value,
// with the color premultiplied by the new alpha.
func WithA(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return AsRGBA(n)
}
