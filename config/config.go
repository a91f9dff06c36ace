// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads color scale configurations from
// TOML and YAML files and builds scales from them.
package config

import (
	"fmt"
	"image/color"
	"io/fs"

	"cogentcore.org/colorscale/colors"
	"cogentcore.org/colorscale/colors/scale"
)

// Scale is the file representation of a [scale.Config].
// Colors are given as hex codes or CSS color names,
// and the kind and blend mode by name.
type Scale struct {

	// Kind is the kind of scale: continuous (or diverging),
	// quantized (or quantize), sequential, or categorical.
	// It defaults to continuous.
	Kind string `toml:"kind" yaml:"kind"`

	// Domain holds the input breakpoints
	Domain []float64 `toml:"domain" yaml:"domain"`

	// Colors are the color stops or bucket colors
	Colors []string `toml:"colors" yaml:"colors"`

	// Palette is the name of a named color map
	Palette string `toml:"palette" yaml:"palette"`

	// Blend is the interpolation colorspace: rgb, linear-rgb,
	// lab, hcl, luv, or cam16. It defaults to rgb.
	Blend string `toml:"blend" yaml:"blend"`

	// Extrapolate extends continuous scales beyond their domain
	Extrapolate bool `toml:"extrapolate" yaml:"extrapolate"`

	// Unknown is the color for NaN values
	Unknown string `toml:"unknown" yaml:"unknown"`
}

// Open reads the scale configuration from the given TOML or YAML file,
// chosen by its extension.
func Open(filename string) (*Scale, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	sc := &Scale{}
	if err := Decode(sc, filename, f); err != nil {
		return nil, fmt.Errorf("config.Open: reading %q: %w", filename, err)
	}
	return sc, nil
}

// OpenFS is like [Open], but reads from the given filesystem.
func OpenFS(fsys fs.FS, filename string) (*Scale, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	sc := &Scale{}
	if err := DecodeFS(sc, fsys, filename, f); err != nil {
		return nil, fmt.Errorf("config.OpenFS: reading %q: %w", filename, err)
	}
	return sc, nil
}

// Config converts the file representation into a [scale.Config],
// parsing the kind, blend mode and colors.
func (sc *Scale) Config() (*scale.Config, error) {
	cfg := &scale.Config{
		Domain:      sc.Domain,
		Palette:     sc.Palette,
		Extrapolate: sc.Extrapolate,
	}
	if sc.Kind != "" {
		if err := cfg.Kind.SetString(sc.Kind); err != nil {
			return nil, fmt.Errorf("config.Scale.Config: %w", err)
		}
	}
	if sc.Blend != "" {
		if err := cfg.Blend.SetString(sc.Blend); err != nil {
			return nil, fmt.Errorf("config.Scale.Config: %w", err)
		}
	}
	if len(sc.Colors) > 0 {
		cfg.Colors = make([]color.RGBA, len(sc.Colors))
		for i, s := range sc.Colors {
			c, err := colors.FromString(s)
			if err != nil {
				return nil, fmt.Errorf("config.Scale.Config: color %d: %w", i, err)
			}
			cfg.Colors[i] = c
		}
	}
	if sc.Unknown != "" {
		c, err := colors.FromString(sc.Unknown)
		if err != nil {
			return nil, fmt.Errorf("config.Scale.Config: unknown color: %w", err)
		}
		cfg.Unknown = c
	}
	return cfg, nil
}

// Build returns the [scale.Scale] described by the configuration.
func (sc *Scale) Build() (*scale.Scale, error) {
	cfg, err := sc.Config()
	if err != nil {
		return nil, err
	}
	return scale.New(cfg)
}
