// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestWhiteBlack(t *testing.T) {
	w := FromSRGB(1, 1, 1)
	tolassert.EqualTol(t, 1, w.L, 1e-6)
	tolassert.EqualTol(t, 0, w.A, 1e-6)
	tolassert.EqualTol(t, 0, w.B, 1e-6)

	assert.Equal(t, Lab{}, FromSRGB(0, 0, 0))
}

// Reference values from https://bottosson.github.io/posts/oklab/
func TestPrimaries(t *testing.T) {
	red := FromSRGB(1, 0, 0).LCH()
	tolassert.EqualTol(t, 0.627955, red.L, 1e-4)
	tolassert.EqualTol(t, 0.257683, red.C, 1e-4)
	tolassert.EqualTol(t, 29.2339, red.H, 1e-2)

	blue := FromSRGB(0, 0, 1).LCH()
	tolassert.EqualTol(t, 0.452014, blue.L, 1e-4)
	tolassert.EqualTol(t, 264.052, blue.H, 1e-2)
}

func TestMatchesColorful(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#336699", "#c0ffee", "#808080"} {
		c, err := colorful.Hex(hex)
		assert.NoError(t, err)
		l, a, b := c.OkLab()
		have := FromSRGB(c.R, c.G, c.B)
		tolassert.EqualTol(t, l, have.L, 1e-5, hex)
		tolassert.EqualTol(t, a, have.A, 1e-5, hex)
		tolassert.EqualTol(t, b, have.B, 1e-5, hex)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, rgb := range [][3]float64{{0.2, 0.4, 0.6}, {1, 0.5, 0}, {0.01, 0.9, 0.3}} {
		r, g, b := FromSRGB(rgb[0], rgb[1], rgb[2]).SRGB()
		tolassert.EqualTol(t, rgb[0], r, 1e-9)
		tolassert.EqualTol(t, rgb[1], g, 1e-9)
		tolassert.EqualTol(t, rgb[2], b, 1e-9)
	}

	c := LCH{L: 0.7, C: 0.1, H: 200}
	back := c.Lab().LCH()
	tolassert.EqualTol(t, c.L, back.L, 1e-12)
	tolassert.EqualTol(t, c.C, back.C, 1e-12)
	tolassert.EqualTol(t, c.H, back.H, 1e-9)

	x, y, z := FromXYZ(0.3, 0.4, 0.5).XYZ()
	tolassert.EqualTol(t, 0.3, x, 1e-9)
	tolassert.EqualTol(t, 0.4, y, 1e-9)
	tolassert.EqualTol(t, 0.5, z, 1e-9)
}

func TestNormalizeHue(t *testing.T) {
	assert.Equal(t, 10.0, NormalizeHue(370))
	assert.Equal(t, 350.0, NormalizeHue(-10))
	assert.Equal(t, 0.0, NormalizeHue(360))
	assert.Equal(t, 0.0, NormalizeHue(-720))
}

func TestAchromaticHue(t *testing.T) {
	assert.Equal(t, 0.0, Lab{L: 0.5}.LCH().H)
	assert.Equal(t, "oklch(0.5 0 0)", Lab{L: 0.5}.LCH().String())
}
