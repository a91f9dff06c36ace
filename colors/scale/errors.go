// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched (using [errors.Is]) by all errors
// resulting from invalid scale or legend configuration.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigError describes an invalid scale configuration.
// It matches [ErrConfiguration] through [errors.Is].
type ConfigError struct {

	// Field is the name of the offending configuration field
	Field string

	// Msg describes what is wrong with the field
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scale: invalid %s: %s", e.Field, e.Msg)
}

// Is reports whether target is [ErrConfiguration].
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// configErrorf returns a new [ConfigError] for the given field.
func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
