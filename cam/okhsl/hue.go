// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package okhsl

import (
	"math"

	"cogentcore.org/okscale/cam/oklab"
	"github.com/lucasb-eyer/go-colorful"
)

// The reference saturation and lightness used to map hues between
// HSL and OKHsl. Near the achromatic axis hue depends on saturation
// and lightness in both models, so a single mid-tone point is used.
const (
	BridgeSaturation = 0.8
	BridgeLightness  = 0.5
)

// FromHSLHue returns the OKHsl hue of the HSL color with the given hue
// and the bridge saturation and lightness. If that color has no defined
// OKHsl hue, the given hue is returned unchanged.
func FromHSLHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return h
	}
	c := colorful.Hsl(oklab.NormalizeHue(h), BridgeSaturation, BridgeLightness)
	res, ok := FromOKLabOK(oklab.FromSRGB(c.R, c.G, c.B))
	if !ok || math.IsNaN(res.H) {
		return h
	}
	return res.H
}

// ToHSLHue returns the HSL hue of the OKHsl color with the given hue
// and the bridge saturation and lightness. It is the approximate inverse
// of [FromHSLHue]: the bridge colors of the two models differ in chroma,
// so ToHSLHue(FromHSLHue(h)) is within 17 degrees of h. The error is
// largest in the blue band, 16.8 degrees at 246. If that color has no
// defined HSL hue, the given hue is returned unchanged.
func ToHSLHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return h
	}
	c := New(h, BridgeSaturation, BridgeLightness).Color()
	hh, s, _ := c.Hsl()
	if s == 0 || math.IsNaN(hh) {
		return h
	}
	return oklab.NormalizeHue(hh)
}
