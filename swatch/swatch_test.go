// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/okscale/palette"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage(t *testing.T) {
	entries := palette.Generate(palette.DefaultParams())
	cell := image.Point{20, 40}
	img := Image(entries, cell)
	assert.Equal(t, image.Rect(0, 0, 220, 40), img.Bounds())

	for i, e := range entries {
		// corner of each cell has the entry color
		assert.Equal(t, e.Color.AsRGBA(), img.RGBAAt(i*cell.X+1, 1), e.Scale)
	}
	// lightest cell has a black mark and darkest a white one
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(10, 20))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(10*cell.X+10, 20))

	def := Image(entries, image.Point{})
	assert.Equal(t, DefaultCell.X*11, def.Bounds().Dx())
	assert.Equal(t, DefaultCell.Y, def.Bounds().Dy())
}

func TestSave(t *testing.T) {
	entries := palette.Generate(palette.NeutralParams(250))
	fn := filepath.Join(t.TempDir(), "neutral.png")
	require.NoError(t, Save(fn, entries, image.Point{8, 8}))

	img, err := imgio.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 88, 8), img.Bounds())
	r, g, b, _ := img.At(1, 1).RGBA()
	want := entries[0].Color.AsRGBA()
	assert.Equal(t, uint32(want.R), r>>8)
	assert.Equal(t, uint32(want.G), g>>8)
	assert.Equal(t, uint32(want.B), b>>8)

	assert.Error(t, Save(filepath.Join(t.TempDir(), "missing", "x.png"), entries, image.Point{8, 8}))
}
