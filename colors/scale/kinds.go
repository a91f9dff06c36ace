// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"strings"
)

// Kinds are the different ways in which a [Scale] maps
// values in its domain onto colors.
type Kinds int32

const (
	// Continuous interpolates between color stops, one per domain
	// breakpoint. With more than two breakpoints it is a diverging
	// (or multi-stop) scale.
	Continuous Kinds = iota

	// Quantized divides the domain into equal-width buckets, one per
	// color, and returns the bucket color without any interpolation.
	Quantized

	// Sequential normalizes the domain to [0, 1] and passes the result
	// through a continuous palette function.
	Sequential

	// Categorical uses the same bucketing as Quantized, but the colors
	// label discrete categories rather than magnitude bands.
	Categorical

	kindsN
)

var kindsNames = [...]string{"continuous", "quantized", "sequential", "categorical"}

// String returns the lower-case name of the kind.
func (k Kinds) String() string {
	if k < 0 || k >= kindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindsNames[k]
}

// SetString sets the kind from its name, ignoring case.
// "diverging" is accepted as an alias for [Continuous],
// and "quantize" for [Quantized].
func (k *Kinds) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "diverging":
		s = "continuous"
	case "quantize":
		s = "quantized"
	}
	for i, nm := range kindsNames {
		if nm == s {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("scale.Kinds.SetString: %q is not a valid scale kind", s)
}

// KindsValues returns all valid scale kinds.
func KindsValues() []Kinds {
	vals := make([]Kinds, kindsN)
	for i := range vals {
		vals[i] = Kinds(i)
	}
	return vals
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kinds) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kinds) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}
