// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// D65 reference white, normalized so that Y = 1.
const (
	WhiteX = 0.95047
	WhiteY = 1.0
	WhiteZ = 1.08883
)

// SRGBLinToXYZ converts linear sRGB components to CIE XYZ (D65),
// with Y in the 0-1 range.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.4123907992659593*rl + 0.357584339383878*gl + 0.1804807884018343*bl
	y = 0.2126390058715102*rl + 0.715168678767756*gl + 0.0721923153113969*bl
	z = 0.0193308187155918*rl + 0.119194779794626*gl + 0.9505321522496607*bl
	return
}

// XYZToSRGBLin converts CIE XYZ (D65) coordinates to linear sRGB components.
// The result is not clamped and may lie outside of the 0-1 range.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2409699419045226*x - 1.537383177570094*y - 0.4986107602930034*z
	gl = -0.9692436362808796*x + 1.8759675015077204*y + 0.0415550574071756*z
	bl = 0.0556300796969936*x - 0.2039769588889765*y + 1.0569715142428784*z
	return
}

// SRGBToXYZ converts sRGB gamma-encoded components to CIE XYZ (D65).
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// XYZToSRGB converts CIE XYZ (D65) coordinates to sRGB gamma-encoded components.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}

// Gray returns the achromatic XYZ color with the given luminance y,
// scaled by the D65 white point ratios.
func Gray(y float64) (x, yy, z float64) {
	return WhiteX * y, y, WhiteZ * y
}

// Luminance returns the relative luminance (XYZ Y) of the given
// sRGB gamma-encoded color.
func Luminance(r, g, b float64) float64 {
	_, y, _ := SRGBToXYZ(r, g, b)
	return y
}
