// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSRGB(t *testing.T) {
	tol := 1e-6
	tolassert.EqualTol(t, 0.00015479876, SRGBToLinearComp(0.002), tol)
	tolassert.EqualTol(t, 0.23302202, SRGBToLinearComp(0.52), tol)

	tolassert.EqualTol(t, 0.01292, SRGBFromLinearComp(0.001), tol)
	tolassert.EqualTol(t, 0.84338915, SRGBFromLinearComp(0.68), tol)

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.EqualTol(t, 0.07323897, rl, tol)
	tolassert.EqualTol(t, 0.033104762, gl, tol)
	tolassert.EqualTol(t, 0.31854683, bl, tol)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.EqualTol(t, 0.38109186, r, tol)
	tolassert.EqualTol(t, 0.61803144, g, tol)
	tolassert.EqualTol(t, 0.8962438, b, tol)
}

func TestSRGBOutOfGamut(t *testing.T) {
	assert.Equal(t, -SRGBToLinearComp(0.5), SRGBToLinearComp(-0.5))
	assert.Equal(t, -SRGBFromLinearComp(0.5), SRGBFromLinearComp(-0.5))
	tolassert.EqualTol(t, 1.2, SRGBFromLinearComp(SRGBToLinearComp(1.2)), 1e-12)
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.04045, 0.1, 0.5, 0.77, 1} {
		tolassert.EqualTol(t, v, SRGBFromLinearComp(SRGBToLinearComp(v)), 1e-12)
	}
}
