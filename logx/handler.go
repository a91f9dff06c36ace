// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"cogentcore.org/colorscale/colors"
	"github.com/muesli/termenv"
)

// UseColor is whether to color log messages by level.
// It has no effect when the output is not a color terminal.
var UseColor = true

// LevelColors are the colors used for log messages at each level.
// Levels that are not present (or have a transparent color) are
// printed without any color.
var LevelColors = map[slog.Level]color.RGBA{
	slog.LevelDebug: colors.MustFromString("gray"),
	slog.LevelWarn:  colors.MustFromString("orange"),
	slog.LevelError: colors.MustFromString("red"),
}

// Handler is a [slog.Handler] that formats records as text
// and colors each line according to its level.
type Handler struct {
	out  *termenv.Output
	w    io.Writer
	mu   *sync.Mutex
	buf  *bytes.Buffer
	text slog.Handler
}

// NewHandler returns a new [Handler] that writes to the given writer,
// showing messages at or above [UserLevel].
func NewHandler(w io.Writer, opts ...termenv.OutputOption) *Handler {
	if !UseColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	buf := &bytes.Buffer{}
	return &Handler{
		out:  termenv.NewOutput(w, opts...),
		w:    w,
		mu:   &sync.Mutex{},
		buf:  buf,
		text: slog.NewTextHandler(buf, &slog.HandlerOptions{Level: UserLevel}),
	}
}

// SetDefaultLogger sets the default logger to one that writes
// colored messages to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	line := strings.TrimSuffix(h.buf.String(), "\n")
	_, err := io.WriteString(h.w, ApplyColor(h.out, LevelColors[r.Level], line)+"\n")
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.text = h.text.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.text = h.text.WithGroup(name)
	return &nh
}

// ApplyColor returns the given string styled with the given foreground
// color for the given terminal output. It returns the string unchanged
// if the color is fully transparent.
func ApplyColor(out *termenv.Output, clr color.RGBA, str string) string {
	if clr.A == 0 {
		return str
	}
	return out.String(str).Foreground(out.Color(colors.AsHex(clr))).String()
}
