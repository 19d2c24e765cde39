// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/okscale/palette"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encodings are the supported output document encodings.
type Encodings int32 //enums:enum -trim-prefix Encoding -transform lower

const (
	// EncodingCSS is a list of CSS custom property declarations.
	EncodingCSS Encodings = iota

	// EncodingTheme is a Tailwind CSS @theme block.
	EncodingTheme

	// EncodingJSON is a JSON token document.
	EncodingJSON

	// EncodingYAML is a YAML token document.
	EncodingYAML

	// EncodingTOML is a TOML token document.
	EncodingTOML
)

// Options are the options for [Encode].
type Options struct {

	// Name is the name of the palette, used as the CSS variable prefix.
	Name string

	// Background is the background color the palette was generated against.
	Background string

	// Format is the color format of CSS values.
	Format Formats

	// Wrap is whether to wrap CSS values in their CSS function.
	Wrap bool

	// Encoding is the document encoding.
	Encoding Encodings
}

// Tokens is a design token document describing a palette.
type Tokens struct {
	Name       string  `json:"name" yaml:"name" toml:"name"`
	Background string  `json:"background" yaml:"background" toml:"background"`
	Colors     []Token `json:"colors" yaml:"colors" toml:"colors"`
}

// Token is one color of a [Tokens] document, in every format.
type Token struct {
	Scale int    `json:"scale" yaml:"scale" toml:"scale"`
	Hex   string `json:"hex" yaml:"hex" toml:"hex"`
	OKLCH string `json:"oklch" yaml:"oklch" toml:"oklch"`
	HSL   string `json:"hsl" yaml:"hsl" toml:"hsl"`
	RGB   string `json:"rgb" yaml:"rgb" toml:"rgb"`
	OKHSL OKHSL  `json:"okhsl" yaml:"okhsl" toml:"okhsl"`
}

// OKHSL are the raw OKHsl coordinates of a [Token].
type OKHSL struct {
	H float64 `json:"h" yaml:"h" toml:"h"`
	S float64 `json:"s" yaml:"s" toml:"s"`
	L float64 `json:"l" yaml:"l" toml:"l"`
}

// NewTokens returns the token document for the given entries.
func NewTokens(entries []palette.Entry, name, background string, wrap bool) *Tokens {
	doc := &Tokens{Name: name, Background: background, Colors: make([]Token, len(entries))}
	for i, e := range entries {
		doc.Colors[i] = Token{
			Scale: e.Scale,
			Hex:   e.Hex,
			OKLCH: Color(e, FormatOKLCH, wrap),
			HSL:   Color(e, FormatHSL, wrap),
			RGB:   Color(e, FormatRGB, wrap),
			OKHSL: OKHSL{H: e.Color.H, S: e.Color.S, L: e.Color.L},
		}
	}
	return doc
}

// Encode encodes the given entries with the given options.
// Text encodings end with a newline.
func Encode(entries []palette.Entry, o Options) ([]byte, error) {
	switch o.Encoding {
	case EncodingCSS:
		return []byte(CSSVariables(entries, o.Name, o.Format, o.Wrap) + "\n"), nil
	case EncodingTheme:
		return []byte(ThemeBlock(entries, o.Name, o.Format, o.Wrap) + "\n"), nil
	}
	doc := NewTokens(entries, o.Name, o.Background, o.Wrap)
	switch o.Encoding {
	case EncodingJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case EncodingYAML:
		return yaml.Marshal(doc)
	case EncodingTOML:
		return toml.Marshal(doc)
	}
	return nil, fmt.Errorf("export: unsupported encoding %v", o.Encoding)
}

// DecodeParams decodes palette parameters from the given JSON, YAML
// or TOML data. Fields missing from the data keep their
// [palette.DefaultParams] values.
func DecodeParams(data []byte, enc Encodings) (palette.Params, error) {
	p := palette.DefaultParams()
	var err error
	switch enc {
	case EncodingJSON:
		err = json.Unmarshal(data, &p)
	case EncodingYAML:
		err = yaml.Unmarshal(data, &p)
	case EncodingTOML:
		err = toml.Unmarshal(data, &p)
	default:
		return p, fmt.Errorf("export: can not decode parameters from %v", enc)
	}
	if err != nil {
		return p, fmt.Errorf("export: decoding %v parameters: %w", enc, err)
	}
	return p, nil
}

// EncodingFromFilename returns the encoding for the extension
// of the given file name.
func EncodingFromFilename(filename string) (Encodings, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".css":
		return EncodingCSS, nil
	case ".json":
		return EncodingJSON, nil
	case ".yaml", ".yml":
		return EncodingYAML, nil
	case ".toml":
		return EncodingTOML, nil
	default:
		return EncodingCSS, fmt.Errorf("export: unknown file extension %q", ext)
	}
}
