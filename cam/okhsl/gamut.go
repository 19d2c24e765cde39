// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://bottosson.github.io/posts/colorpicker/
// Copyright (c) 2021 Björn Ottosson
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

package okhsl

import (
	"math"

	"cogentcore.org/okscale/cam/oklab"
)

// Toe parameters.
const (
	k1 = 0.206
	k2 = 0.03
	k3 = (1 + k1) / (1 + k2)
)

// Toe maps an OKLab lightness to an OKHsl lightness, so that
// the result tracks perceived brightness (close to CIE L*/100)
// rather than the cube root of luminance.
func Toe(x float64) float64 {
	d := k3*x - k1
	return 0.5 * (d + math.Sqrt(d*d+4*k2*k3*x))
}

// ToeInv is the inverse of [Toe].
func ToeInv(x float64) float64 {
	return (x*x + k1*x) / (k3 * (x + k2))
}

// cusp is the point of maximum chroma of the sRGB gamut
// for a given hue, in OKLab lightness and chroma.
type cusp struct {
	L, C float64
}

// maxSaturation returns the maximum saturation S = C/L possible
// for the given normalized hue direction (a, b), such that the
// color is still within the sRGB gamut. It uses a polynomial
// fit followed by a single Halley step.
func maxSaturation(a, b float64) float64 {
	var c0, c1, c2, c3, c4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		// red reaches zero first
		c0, c1, c2, c3, c4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		// green
		c0, c1, c2, c3, c4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		// blue
		c0, c1, c2, c3, c4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	s := c0 + c1*a + c2*b + c3*a*a + c4*a*b

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	lp := 1 + s*kl
	mp := 1 + s*km
	sp := 1 + s*ks

	l := lp * lp * lp
	m := mp * mp * mp
	ss := sp * sp * sp

	ldS := 3 * kl * lp * lp
	mdS := 3 * km * mp * mp
	sdS := 3 * ks * sp * sp

	ldS2 := 6 * kl * kl * lp
	mdS2 := 6 * km * km * mp
	sdS2 := 6 * ks * ks * sp

	f := wl*l + wm*m + ws*ss
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return s - f*f1/(f1*f1-0.5*f*f2)
}

// findCusp returns the cusp of the sRGB gamut triangle
// for the given normalized hue direction (a, b).
func findCusp(a, b float64) cusp {
	sc := maxSaturation(a, b)
	r, g, bl := oklab.Lab{L: 1, A: sc * a, B: sc * b}.LinearSRGB()
	lc := math.Cbrt(1 / max(r, g, bl))
	return cusp{L: lc, C: lc * sc}
}

// findGamutIntersection finds the intersection of the line from (L0, 0)
// to (L1, C1) with the sRGB gamut boundary for the given normalized hue
// direction, returning t such that the intersection is at
// L = L0*(1-t) + t*L1, C = t*C1.
func findGamutIntersection(a, b, l1, c1, l0 float64, cu cusp) float64 {
	if (l1-l0)*cu.C-(cu.L-l0)*c1 <= 0 {
		// lower half
		return cu.C * l0 / (c1*cu.L + cu.C*(l0-l1))
	}

	// upper half: triangle approximation, then one Halley step
	t := cu.C * (l0 - 1) / (c1*(cu.L-1) + cu.C*(l0-l1))

	dl := l1 - l0
	dc := c1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dl + dc*kl
	mdt := dl + dc*km
	sdt := dl + dc*ks

	L := l0*(1-t) + t*l1
	C := t * c1

	lp := L + C*kl
	mp := L + C*km
	sp := L + C*ks

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	ldt1 := 3 * ldt * lp * lp
	mdt1 := 3 * mdt * mp * mp
	sdt1 := 3 * sdt * sp * sp

	ldt2 := 6 * ldt * ldt * lp
	mdt2 := 6 * mdt * mdt * mp
	sdt2 := 6 * sdt * sdt * sp

	halley := func(wl, wm, ws float64) float64 {
		f := wl*l + wm*m + ws*s - 1
		f1 := wl*ldt1 + wm*mdt1 + ws*sdt1
		f2 := wl*ldt2 + wm*mdt2 + ws*sdt2
		u := f1 / (f1*f1 - 0.5*f*f2)
		if u < 0 {
			return math.MaxFloat64
		}
		return -f * u
	}

	tr := halley(4.0767416621, -3.3077115913, 0.2309699292)
	tg := halley(-1.2684380046, 2.6097574011, -0.3413193965)
	tb := halley(-0.0041960863, -0.7034186147, 1.7076147010)

	return t + min(tr, tg, tb)
}

// st is a pair of slopes of the gamut triangle: S = C/L and T = C/(1-L).
type st struct {
	S, T float64
}

func (cu cusp) slopes() st {
	return st{S: cu.C / cu.L, T: cu.C / (1 - cu.L)}
}

// stMid returns a smooth approximation of the location of the cusp,
// used as the mid-saturation point of OKHsl.
func stMid(a, b float64) st {
	s := 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t := 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))

	return st{S: s, T: t}
}

// chromas returns the three chroma anchors that OKHsl saturation
// interpolates between at the given OKLab lightness and normalized
// hue direction: c0 (hue independent), cMid and cMax (gamut boundary).
func chromas(L, a, b float64) (c0, cMid, cMax float64) {
	cu := findCusp(a, b)

	cMax = findGamutIntersection(a, b, L, 1, L, cu)
	stMax := cu.slopes()

	// compensates for the curved part of the gamut shape
	k := cMax / min(L*stMax.S, (1-L)*stMax.T)

	stm := stMid(a, b)
	ca := L * stm.S
	cb := (1 - L) * stm.T
	cMid = 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	ca = L * 0.4
	cb = (1 - L) * 0.8
	c0 = math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))
	return
}
