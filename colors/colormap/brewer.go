// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"

	"cogentcore.org/colorscale/colors"
	"github.com/aclements/go-gg/palette/brewer"
)

// brewerQualitative are the ColorBrewer palettes designed for nominal
// data, which are registered as indexed maps.
var brewerQualitative = map[string]bool{
	"Accent": true, "Dark2": true, "Paired": true, "Pastel1": true,
	"Pastel2": true, "Set1": true, "Set2": true, "Set3": true,
}

// registerBrewer registers every ColorBrewer palette, using the variant
// with the largest number of levels. Sequential and diverging palettes
// are interpolated in Lab space, qualitative ones are indexed.
func registerBrewer() {
	for name, variants := range brewer.ByName {
		if _, exists := AvailableMap(name); exists {
			continue
		}
		best := 0
		for n := range variants {
			best = max(best, n)
		}
		if best == 0 {
			continue
		}
		var cs []color.RGBA
		for _, c := range variants[best] {
			cs = append(cs, colors.AsRGBA(c))
		}
		cm := &Map{Name: name, Colors: cs}
		if brewerQualitative[name] {
			cm.Indexed = true
		} else {
			cm.Blend = colors.Lab
		}
		register(cm)
	}
}
