// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"strings"
	"testing"

	"cogentcore.org/okscale/palette"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewTokens(t *testing.T) {
	entries := palette.Generate(palette.DefaultParams())
	doc := NewTokens(entries, "primary", "#ffffff", true)
	assert.Equal(t, "primary", doc.Name)
	assert.Equal(t, "#ffffff", doc.Background)
	require.Len(t, doc.Colors, 11)
	for i, tok := range doc.Colors {
		e := entries[i]
		assert.Equal(t, e.Scale, tok.Scale)
		assert.Equal(t, e.Hex, tok.Hex)
		assert.Equal(t, OKLCH(e.Color, true), tok.OKLCH)
		assert.Equal(t, HSL(e.Color, true), tok.HSL)
		assert.Equal(t, RGB(e.Color, true), tok.RGB)
		assert.Equal(t, e.Color.L, tok.OKHSL.L)
	}
}

func TestEncode(t *testing.T) {
	entries := palette.Generate(palette.ColorParams(25))
	o := Options{Name: "accent", Background: "#ffffff", Format: FormatHex, Wrap: true}

	o.Encoding = EncodingCSS
	b, err := Encode(entries, o)
	require.NoError(t, err)
	assert.Equal(t, CSSVariables(entries, "accent", FormatHex, true)+"\n", string(b))

	o.Encoding = EncodingTheme
	b, err = Encode(entries, o)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "@theme {\n  --accent-50: "))

	want := NewTokens(entries, "accent", "#ffffff", true)
	decoders := map[Encodings]func([]byte, any) error{
		EncodingJSON: json.Unmarshal,
		EncodingYAML: yaml.Unmarshal,
		EncodingTOML: toml.Unmarshal,
	}
	for enc, dec := range decoders {
		o.Encoding = enc
		b, err := Encode(entries, o)
		require.NoError(t, err, enc)
		assert.Contains(t, string(b), "accent", enc)
		var got Tokens
		require.NoError(t, dec(b, &got), enc)
		assert.Equal(t, want.Name, got.Name, enc)
		require.Len(t, got.Colors, 11, enc)
		for i := range got.Colors {
			assert.Equal(t, want.Colors[i].Hex, got.Colors[i].Hex, enc)
			assert.Equal(t, want.Colors[i].OKLCH, got.Colors[i].OKLCH, enc)
			assert.InDelta(t, want.Colors[i].OKHSL.H, got.Colors[i].OKHSL.H, 1e-9, enc)
		}
	}

	o.Encoding = Encodings(99)
	_, err = Encode(entries, o)
	assert.Error(t, err)
}

func TestDecodeParams(t *testing.T) {
	p, err := DecodeParams([]byte(`{"baseHue": 30, "background": "#000"}`), EncodingJSON)
	require.NoError(t, err)
	assert.Equal(t, 30.0, p.BaseHue)
	assert.Equal(t, 5.0, p.HueShift)
	assert.Equal(t, 100.0, p.MaxSaturation)
	assert.Equal(t, "#000", p.Background)

	p, err = DecodeParams([]byte("baseHue: 210\nhueShift: 12\nminSaturation: 10\n"), EncodingYAML)
	require.NoError(t, err)
	assert.Equal(t, 210.0, p.BaseHue)
	assert.Equal(t, 12.0, p.HueShift)
	assert.Equal(t, 10.0, p.MinSaturation)
	assert.Equal(t, "#ffffff", p.Background)

	p, err = DecodeParams([]byte("baseHue = 300.0\nmaxSaturation = 60.0\nbackground = \"navy\"\n"), EncodingTOML)
	require.NoError(t, err)
	assert.Equal(t, 300.0, p.BaseHue)
	assert.Equal(t, 60.0, p.MaxSaturation)
	assert.Equal(t, "navy", p.Background)

	_, err = DecodeParams([]byte(`{"baseHue": "red"}`), EncodingJSON)
	assert.Error(t, err)
	_, err = DecodeParams([]byte("--x: 1;"), EncodingCSS)
	assert.Error(t, err)
}

func TestEncodingFromFilename(t *testing.T) {
	tests := map[string]Encodings{
		"palette.css":       EncodingCSS,
		"tokens.JSON":       EncodingJSON,
		"dir/params.yaml":   EncodingYAML,
		"params.yml":        EncodingYAML,
		"okscale.toml":      EncodingTOML,
		"/tmp/x.y/out.json": EncodingJSON,
	}
	for name, want := range tests {
		got, err := EncodingFromFilename(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := EncodingFromFilename("palette.png")
	assert.Error(t, err)
	_, err = EncodingFromFilename("palette")
	assert.Error(t, err)
}
