// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.EqualTol(t, 0.5470825551, x, 1e-9)
	tolassert.EqualTol(t, 0.5859553309, y, 1e-9)
	tolassert.EqualTol(t, 0.7465547838, z, 1e-9)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, 0.5, rl, 1e-9)
	tolassert.EqualTol(t, 0.6, gl, 1e-9)
	tolassert.EqualTol(t, 0.7, bl, 1e-9)
}

func TestLuminance(t *testing.T) {
	tolassert.EqualTol(t, 1, Luminance(1, 1, 1), 1e-9)
	assert.Equal(t, 0.0, Luminance(0, 0, 0))
	tolassert.EqualTol(t, 0.2126390058715102, Luminance(1, 0, 0), 1e-12)
	tolassert.EqualTol(t, 0.715168678767756, Luminance(0, 1, 0), 1e-12)
	tolassert.EqualTol(t, 0.0721923153113969, Luminance(0, 0, 1), 1e-12)
}

func TestGray(t *testing.T) {
	x, y, z := Gray(0.5)
	assert.Equal(t, 0.5*WhiteX, x)
	assert.Equal(t, 0.5, y)
	assert.Equal(t, 0.5*WhiteZ, z)

	// the D65 gray is very nearly neutral in linear sRGB
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, 0.5, rl, 1e-3)
	tolassert.EqualTol(t, 0.5, gl, 1e-3)
	tolassert.EqualTol(t, 0.5, bl, 1e-3)
}
