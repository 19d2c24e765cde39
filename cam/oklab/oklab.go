// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab provides the OKLab and OKLCH color spaces
// described by Björn Ottosson at https://bottosson.github.io/posts/oklab/.
package oklab

import (
	"fmt"
	"math"

	"cogentcore.org/okscale/cam/cie"
)

// Lab is a color in the OKLab color space.
type Lab struct {

	// L is the perceived lightness, from 0 (black) to 1 (white).
	L float64

	// A is the green-red axis.
	A float64

	// B is the blue-yellow axis.
	B float64
}

// LCH is a color in the OKLCH color space, the polar form of [Lab].
type LCH struct {

	// L is the perceived lightness, from 0 (black) to 1 (white).
	L float64

	// C is the chroma; 0 is achromatic.
	C float64

	// H is the hue angle in degrees (0-360).
	H float64
}

// FromLinearSRGB converts linear sRGB components to OKLab.
func FromLinearSRGB(rl, gl, bl float64) Lab {
	l := math.Cbrt(0.412221469470763*rl + 0.5363325372617348*gl + 0.0514459932675022*bl)
	m := math.Cbrt(0.2119034958178252*rl + 0.6806995506452344*gl + 0.1073969535369406*bl)
	s := math.Cbrt(0.0883024591900564*rl + 0.2817188391361215*gl + 0.6299787016738222*bl)
	return Lab{
		L: 0.210454268309314*l + 0.7936177747023054*m - 0.0040720430116193*s,
		A: 1.9779985324311684*l - 2.4285922420485799*m + 0.450593709617411*s,
		B: 0.0259040424655478*l + 0.7827717124575296*m - 0.8086757549230774*s,
	}
}

// LinearSRGB converts the color to linear sRGB components.
// The result is not clamped to the sRGB gamut.
func (c Lab) LinearSRGB() (rl, gl, bl float64) {
	l := c.L + 0.3963377773761749*c.A + 0.2158037573099136*c.B
	m := c.L - 0.1055613458156586*c.A - 0.0638541728258133*c.B
	s := c.L - 0.0894841775298119*c.A - 1.2914855480194092*c.B
	l, m, s = l*l*l, m*m*m, s*s*s
	rl = 4.076741636075957*l - 3.3077115392580616*m + 0.2309699031821044*s
	gl = -1.2684379732850317*l + 2.6097573492876887*m - 0.3413193760026573*s
	bl = -0.0041960761386756*l - 0.7034186179359362*m + 1.7076146940746117*s
	return
}

// FromSRGB converts sRGB gamma-encoded components to OKLab.
func FromSRGB(r, g, b float64) Lab {
	return FromLinearSRGB(cie.SRGBToLinear(r, g, b))
}

// SRGB converts the color to sRGB gamma-encoded components.
// The result is not clamped to the sRGB gamut.
func (c Lab) SRGB() (r, g, b float64) {
	return cie.SRGBFromLinear(c.LinearSRGB())
}

// FromXYZ converts CIE XYZ (D65, Y in 0-1) coordinates to OKLab,
// going through linear sRGB.
func FromXYZ(x, y, z float64) Lab {
	return FromLinearSRGB(cie.XYZToSRGBLin(x, y, z))
}

// XYZ converts the color to CIE XYZ (D65, Y in 0-1) coordinates.
func (c Lab) XYZ() (x, y, z float64) {
	return cie.SRGBLinToXYZ(c.LinearSRGB())
}

// LCH returns the polar form of the color. Achromatic colors
// (zero chroma) have a hue of 0.
func (c Lab) LCH() LCH {
	ch := math.Hypot(c.A, c.B)
	h := 0.0
	if ch != 0 {
		h = NormalizeHue(math.Atan2(c.B, c.A) * 180 / math.Pi)
	}
	return LCH{L: c.L, C: ch, H: h}
}

// Lab returns the rectangular form of the color.
func (c LCH) Lab() Lab {
	hr := c.H * math.Pi / 180
	return Lab{L: c.L, A: c.C * math.Cos(hr), B: c.C * math.Sin(hr)}
}

// String returns the color in CSS oklch() notation.
func (c LCH) String() string {
	return fmt.Sprintf("oklch(%g %g %g)", c.L, c.C, c.H)
}

// NormalizeHue returns the given hue angle in degrees
// normalized into the [0, 360) range.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
