// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LABCompress is the forward CIE L*a*b* compression function,
// applied to a component normalized by the white point.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// LToY converts a perceptual lightness L* (0-100) to
// a relative luminance Y (0-1).
func LToY(l float64) float64 {
	return LABUncompress((l + 16) / 116)
}

// YToL converts a relative luminance Y (0-1) to
// a perceptual lightness L* (0-100).
func YToL(y float64) float64 {
	return 116*LABCompress(y) - 16
}

// XYZToLAB converts CIE XYZ (D65, Y in 0-1) to CIE L*a*b*.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteX)
	fy := LABCompress(y / WhiteY)
	fz := LABCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts CIE L*a*b* to CIE XYZ (D65, Y in 0-1).
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteX
	y = LToY(l)
	z = LABUncompress(fz) * WhiteZ
	return
}
