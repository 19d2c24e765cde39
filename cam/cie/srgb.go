// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBToLinearComp converts an sRGB gamma-encoded color component
// to its linear-light equivalent. Negative (out of gamut) values keep
// their sign so that the transfer function is odd-symmetric.
func SRGBToLinearComp(srgb float64) float64 {
	abs := math.Abs(srgb)
	if abs <= 0.04045 {
		return srgb / 12.92
	}
	return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), srgb)
}

// SRGBFromLinearComp converts a linear-light color component
// to its sRGB gamma-encoded equivalent.
func SRGBFromLinearComp(lin float64) float64 {
	abs := math.Abs(lin)
	if abs <= 0.0031308 {
		return 12.92 * lin
	}
	return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, lin)
}

// SRGBToLinear converts the given sRGB gamma-encoded components
// to linear-light components.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear converts the given linear-light components
// to sRGB gamma-encoded components.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}
