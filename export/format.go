// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export renders palette colors as CSS color values,
// CSS custom property declarations and design token documents.
package export

//go:generate core generate

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/okscale/cam/okhsl"
	"cogentcore.org/okscale/palette"
)

// Formats are the supported CSS color value formats.
type Formats int32 //enums:enum -trim-prefix Format -transform lower

const (
	// FormatHex is a #rrggbb hex code.
	FormatHex Formats = iota

	// FormatOKLCH is an oklch() value, with lightness and chroma
	// to 2 decimals and the hue in whole degrees.
	FormatOKLCH

	// FormatHSL is an hsl() value, with the hue, saturation
	// and lightness to 1 decimal.
	FormatHSL

	// FormatRGB is an rgb() value with 0-255 channels.
	FormatRGB
)

// round rounds x to the given number of decimals,
// with halves rounded up.
func round(x float64, decimals int) float64 {
	f := math.Pow(10, float64(decimals))
	return math.Floor(x*f+0.5) / f
}

// num formats x in its shortest form, without trailing zeros.
func num(x float64) string {
	if x == 0 {
		x = 0 // no negative zero
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// wrapped returns the space separated values, inside
// of the given CSS function if wrap is true.
func wrapped(fn string, wrap bool, vals ...string) string {
	s := strings.Join(vals, " ")
	if wrap {
		return fn + "(" + s + ")"
	}
	return s
}

// Hex returns the #rrggbb hex code of the given color.
func Hex(c okhsl.OKHSL) string {
	return c.Hex()
}

// OKLCH returns the given color in OKLCH notation, for example
// "oklch(0.63 0.26 29)", or "0.63 0.26 29" if wrap is false.
// Colors that can not be converted fall back to their hex code.
func OKLCH(c okhsl.OKHSL, wrap bool) string {
	return oklch(c, wrap, c.Hex())
}

func oklch(c okhsl.OKHSL, wrap bool, fallback string) string {
	lch := c.OKLab().LCH()
	if !finite(lch.L, lch.C, lch.H) {
		return fallback
	}
	return wrapped("oklch", wrap, num(round(lch.L, 2)), num(round(lch.C, 2)), num(round(lch.H, 0)))
}

// HSL returns the given color in HSL notation, for example
// "hsl(0 100% 50%)", or without the hsl() if wrap is false.
func HSL(c okhsl.OKHSL, wrap bool) string {
	return hsl(c, wrap, c.Hex())
}

func hsl(c okhsl.OKHSL, wrap bool, fallback string) string {
	col := c.Color().Clamped()
	// grays must not pick up a hue from float noise
	col.R, col.G, col.B = round(col.R, 9), round(col.G, 9), round(col.B, 9)
	h, s, l := col.Hsl()
	if !finite(h, s, l) {
		return fallback
	}
	s = round(s*100, 1)
	if s == 0 {
		h = 0
	}
	return wrapped("hsl", wrap, num(round(h, 1)), num(s)+"%", num(round(l*100, 1))+"%")
}

// RGB returns the given color in RGB notation with 0-255 channels,
// for example "rgb(255 0 0)", or "255 0 0" if wrap is false.
func RGB(c okhsl.OKHSL, wrap bool) string {
	return rgb(c, wrap, c.Hex())
}

func rgb(c okhsl.OKHSL, wrap bool, fallback string) string {
	r, g, b := c.SRGB()
	if !finite(r, g, b) {
		return fallback
	}
	ch := func(v float64) string {
		return num(round(math.Max(0, math.Min(v, 1))*255, 0))
	}
	return wrapped("rgb", wrap, ch(r), ch(g), ch(b))
}

// Color returns the color of the given entry in the given format.
// The hex format always returns the entry's own hex code, as do
// the other formats if the color can not be converted.
func Color(e palette.Entry, f Formats, wrap bool) string {
	switch f {
	case FormatOKLCH:
		return oklch(e.Color, wrap, e.Hex)
	case FormatHSL:
		return hsl(e.Color, wrap, e.Hex)
	case FormatRGB:
		return rgb(e.Color, wrap, e.Hex)
	}
	return e.Hex
}

// VariableName returns the CSS custom property name of the entry,
// which is the name followed by ten times the scale, for example
// "--primary-50" for scale 5 and "--primary-950" for scale 95.
func VariableName(name string, e palette.Entry) string {
	return "--" + name + "-" + strconv.Itoa(e.Scale) + "0"
}

// Declarations returns one CSS custom property declaration per entry.
func Declarations(entries []palette.Entry, name string, f Formats, wrap bool) []string {
	decls := make([]string, len(entries))
	for i, e := range entries {
		decls[i] = VariableName(name, e) + ": " + Color(e, f, wrap) + ";"
	}
	return decls
}

// CSSVariables returns the newline separated CSS custom property
// declarations of the given entries.
func CSSVariables(entries []palette.Entry, name string, f Formats, wrap bool) string {
	return strings.Join(Declarations(entries, name, f, wrap), "\n")
}

// ThemeBlock returns the CSS custom property declarations inside
// of an @theme block, as used by Tailwind CSS 4.
func ThemeBlock(entries []palette.Entry, name string, f Formats, wrap bool) string {
	var b strings.Builder
	b.WriteString("@theme {\n")
	for _, d := range Declarations(entries, name, f, wrap) {
		b.WriteString("  ")
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
