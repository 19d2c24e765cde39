// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates eleven-step OKHsl color scales whose
// lightness is solved against a background color so that steps a
// fixed distance apart keep a predictable WCAG contrast ratio.
package palette

//go:generate core generate

import (
	"math"

	"cogentcore.org/okscale/cam/cie"
	"cogentcore.org/okscale/cam/okhsl"
	"cogentcore.org/okscale/cam/oklab"
	"cogentcore.org/okscale/contrast"
)

const (
	// ContrastExponent is the exponent of the target contrast curve
	// e^(ContrastExponent*n). With it, two steps that are 50 scale
	// values apart have a contrast ratio of e^1.52, just over 4.5.
	ContrastExponent = 3.04

	// LightBackgroundY is the luminance above which a background
	// is light, so that higher scales become darker.
	LightBackgroundY = contrast.LightThreshold

	// DefaultBackground is the background used when none is given.
	DefaultBackground = "#ffffff"
)

// Scales are the scale values of every generated palette, in order.
var Scales = []int{5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95}

// Entry is one step of a generated palette.
type Entry struct {

	// Scale is the scale value (5-95).
	Scale int

	// Color is the OKHsl color of this step.
	Color okhsl.OKHSL

	// Hex is the #rrggbb sRGB hex code of Color, clamped to the gamut.
	Hex string
}

// Generate returns the palette for the given parameters: one [Entry]
// for each of the [Scales], in ascending scale order. It never fails;
// see [Params.Validate] for checking parameters.
func Generate(p Params) []Entry {
	bg := p.Background
	if bg == "" {
		bg = DefaultBackground
	}
	bgY := contrast.Luminance(bg)
	entries := make([]Entry, len(Scales))
	for i, scale := range Scales {
		n := float64(scale) / 100
		c := okhsl.OKHSL{
			H: Hue(p.BaseHue, p.HueShift, n),
			S: Saturation(p.MaxSaturation, p.MinSaturation, n),
			L: Lightness(bgY, n),
		}
		entries[i] = Entry{Scale: scale, Color: c, Hex: c.Hex()}
	}
	return entries
}

// GenerateFrom is [Generate] with the parameters given positionally.
func GenerateFrom(baseHue, hueShift, maxSaturation, minSaturation float64, background string) []Entry {
	return Generate(Params{
		BaseHue:       baseHue,
		HueShift:      hueShift,
		MaxSaturation: maxSaturation,
		MinSaturation: minSaturation,
		Background:    background,
	})
}

// Hue returns the hue at normalized scale n (0-1). The full hueShift is
// added at n = 0 and none at n = 1, which offsets the perceived hue drift
// of lighter colors. The result is in [0, 360).
func Hue(baseHue, hueShift, n float64) float64 {
	return oklab.NormalizeHue(baseHue + hueShift*(1-n))
}

// Saturation returns the OKHsl saturation (0-1) at normalized scale n
// for the given saturation bounds in percent. It follows a parabola that
// is minSat at n = 0 and n = 1 and maxSat at n = 0.5, clamped to [0, 1].
func Saturation(maxSat, minSat, n float64) float64 {
	smax := maxSat / 100
	smin := minSat / 100
	d := smax - smin
	s := -4*d*n*n + 4*d*n + smin
	return math.Max(0, math.Min(s, 1))
}

// TargetRatio returns the target contrast ratio against the background
// at normalized scale n.
func TargetRatio(n float64) float64 {
	return math.Exp(ContrastExponent * n)
}

// TargetLuminance returns the luminance (0-1) that has [TargetRatio]
// contrast against a background of luminance bgY. It is darker than the
// background on light backgrounds and lighter on dark ones.
func TargetLuminance(bgY, n float64) float64 {
	r := TargetRatio(n)
	var y float64
	if bgY > LightBackgroundY {
		y = (bgY+0.05)/r - 0.05
	} else {
		y = r*(bgY+0.05) - 0.05
	}
	return math.Max(0, math.Min(y, 1))
}

// Lightness returns the OKHsl lightness at normalized scale n for a
// background of luminance bgY. The target luminance is converted as an
// achromatic color, since OKHsl lightness is not a simple function of Y.
// The result is clamped to [0, 1] to absorb rounding at pure white.
func Lightness(bgY, n float64) float64 {
	l := okhsl.FromXYZ(cie.Gray(TargetLuminance(bgY, n))).L
	return math.Max(0, math.Min(l, 1))
}
