// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging setup shared by the color scale
// tools: a user verbosity level and a [log/slog] handler that colors
// each message according to its level.
package logx

import "log/slog"

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level will be shown. The default is [slog.LevelInfo],
// or [slog.LevelDebug] and [slog.LevelWarn] in debug and release builds.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
