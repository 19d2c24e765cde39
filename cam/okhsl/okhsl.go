// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package okhsl provides the OKHsl color space, a perceptual
// hue, saturation, and lightness model built on top of OKLab.
// See https://bottosson.github.io/posts/colorpicker/.
package okhsl

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/okscale/cam/oklab"
	"github.com/lucasb-eyer/go-colorful"
)

// OKHSL is a color in the OKHsl color space.
type OKHSL struct {

	// H is the hue in degrees (0-360).
	H float64 `min:"0" max:"360"`

	// S is the saturation relative to the sRGB gamut at this
	// hue and lightness (0-1); 1 lies on the gamut boundary.
	S float64 `min:"0" max:"1"`

	// L is the perceived lightness (0-1).
	L float64 `min:"0" max:"1"`
}

// achromaticChroma is the OKLab chroma below which
// a color is treated as having no defined hue.
const achromaticChroma = 1e-10

// mid is the saturation at which the chroma reaches cMid.
const (
	mid    = 0.8
	midInv = 1.25
)

// New returns a new [OKHSL] color with the hue normalized into [0, 360).
func New(h, s, l float64) OKHSL {
	return OKHSL{H: oklab.NormalizeHue(h), S: s, L: l}
}

// FromOKLab converts an OKLab color to OKHsl.
// Achromatic colors have a hue and saturation of 0.
func FromOKLab(c oklab.Lab) OKHSL {
	h, _ := FromOKLabOK(c)
	return h
}

// FromOKLabOK converts an OKLab color to OKHsl, also returning
// whether the hue of the color is defined. It is undefined for
// achromatic colors, and for black and white.
func FromOKLabOK(c oklab.Lab) (OKHSL, bool) {
	res := OKHSL{L: Toe(c.L)}
	ch := math.Hypot(c.A, c.B)
	if !(ch >= achromaticChroma) || c.L <= 0 || c.L >= 1 {
		return res, false
	}
	a := c.A / ch
	b := c.B / ch
	res.H = oklab.NormalizeHue(math.Atan2(b, a) * 180 / math.Pi)

	c0, cMid, cMax := chromas(c.L, a, b)
	if ch < cMid {
		k1 := mid * c0
		k2 := 1 - k1/cMid
		t := ch / (k1 + k2*ch)
		res.S = t * mid
	} else {
		k0 := cMid
		k1 := (1 - mid) * cMid * cMid * midInv * midInv / c0
		k2 := 1 - k1/(cMax-cMid)
		t := (ch - k0) / (k1 + k2*(ch-k0))
		res.S = mid + (1-mid)*t
	}
	return res, true
}

// OKLab converts the color to OKLab.
func (c OKHSL) OKLab() oklab.Lab {
	switch {
	case c.L >= 1:
		return oklab.Lab{L: 1}
	case c.L <= 0:
		return oklab.Lab{}
	}
	L := ToeInv(c.L)
	if c.S <= 0 {
		return oklab.Lab{L: L}
	}
	hr := oklab.NormalizeHue(c.H) * math.Pi / 180
	a := math.Cos(hr)
	b := math.Sin(hr)

	c0, cMid, cMax := chromas(L, a, b)
	var ch float64
	if c.S < mid {
		t := midInv * c.S
		k1 := mid * c0
		k2 := 1 - k1/cMid
		ch = t * k1 / (1 - k2*t)
	} else {
		t := (c.S - mid) / (1 - mid)
		k0 := cMid
		k1 := (1 - mid) * cMid * cMid * midInv * midInv / c0
		k2 := 1 - k1/(cMax-cMid)
		ch = k0 + t*k1/(1-k2*t)
	}
	return oklab.Lab{L: L, A: ch * a, B: ch * b}
}

// FromSRGB converts sRGB gamma-encoded components (0-1) to OKHsl.
func FromSRGB(r, g, b float64) OKHSL {
	return FromOKLab(oklab.FromSRGB(r, g, b))
}

// FromXYZ converts CIE XYZ (D65, Y in 0-1) coordinates to OKHsl.
func FromXYZ(x, y, z float64) OKHSL {
	return FromOKLab(oklab.FromXYZ(x, y, z))
}

// FromColor converts a standard [color.Color] to OKHsl.
func FromColor(c color.Color) OKHSL {
	cf, _ := colorful.MakeColor(c)
	return FromSRGB(cf.R, cf.G, cf.B)
}

// SRGB converts the color to sRGB gamma-encoded components.
// The result is not clamped to the 0-1 range.
func (c OKHSL) SRGB() (r, g, b float64) {
	return c.OKLab().SRGB()
}

// Color returns the color as an unclamped [colorful.Color].
func (c OKHSL) Color() colorful.Color {
	r, g, b := c.SRGB()
	return colorful.Color{R: r, G: g, B: b}
}

// RGBA implements the [color.Color] interface.
func (c OKHSL) RGBA() (r, g, b, a uint32) {
	return c.Color().Clamped().RGBA()
}

// AsRGBA returns the color as a [color.RGBA], clamped to the sRGB gamut.
func (c OKHSL) AsRGBA() color.RGBA {
	r, g, b := c.Color().Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Hex returns the color as a lowercase #rrggbb string,
// clamped to the sRGB gamut.
func (c OKHSL) Hex() string {
	return c.Color().Clamped().Hex()
}

// String returns the color in okhsl() notation.
func (c OKHSL) String() string {
	return fmt.Sprintf("okhsl(%g %g %g)", c.H, c.S, c.L)
}

// Model is the standard [color.Model] that converts colors to OKHsl.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(OKHSL); ok {
		return h
	}
	return FromColor(c)
}
