// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// TOML decodes TOML documents, rejecting unknown keys.
var TOML = NewDecoderFunc(func(r io.Reader) *toml.Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
})

// YAML decodes YAML documents, rejecting unknown keys.
var YAML = NewDecoderFunc(func(r io.Reader) *yaml.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
})

// DecoderFor returns the [DecoderFunc] for the given filename
// based on its extension: .toml, or .yaml and .yml.
func DecoderFor(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return nil, fmt.Errorf("config.DecoderFor: unsupported file type %q (must be .toml, .yaml or .yml)", filename)
}

// Decode reads object from the given filename using the given [DecoderFunc]
func Decode(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// DecodeFS reads object from the given filename using the given [DecoderFunc],
// using the fs.FS filesystem (e.g., for embed files)
func DecodeFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read reads object encoding from the given reader,
// using the given [DecoderFunc]
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// ReadBytes reads object encoding from the given bytes,
// using the given [DecoderFunc]
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	b := bytes.NewBuffer(data)
	return Read(v, b, f)
}
