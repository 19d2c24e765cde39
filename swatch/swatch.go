// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch renders palettes as images.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/okscale/contrast"
	"cogentcore.org/okscale/palette"
	"github.com/anthonynsimon/bild/imgio"
)

// DefaultCell is the default size of one swatch cell.
var DefaultCell = image.Point{64, 96}

// Image returns a horizontal strip with one cell of the given size per
// entry, in order. Each cell is filled with the entry color and has a
// small centered mark in its overlay text color, so that the
// readable text color can be checked at a glance.
func Image(entries []palette.Entry, cell image.Point) *image.RGBA {
	if cell.X <= 0 || cell.Y <= 0 {
		cell = DefaultCell
	}
	img := image.NewRGBA(image.Rectangle{Max: image.Point{cell.X * len(entries), cell.Y}})
	mark := image.Point{max(cell.X/4, 1), max(cell.Y/8, 1)}
	for i, e := range entries {
		r := image.Rect(i*cell.X, 0, (i+1)*cell.X, cell.Y)
		draw.Draw(img, r, &image.Uniform{e.Color.AsRGBA()}, image.Point{}, draw.Src)

		mc := color.RGBA{A: 255}
		if contrast.OverlayTextY(contrast.LuminanceOKHSL(e.Color)) == contrast.White {
			mc = color.RGBA{255, 255, 255, 255}
		}
		c := r.Min.Add(cell.Div(2))
		mr := image.Rectangle{Min: c.Sub(mark.Div(2)), Max: c.Sub(mark.Div(2)).Add(mark)}
		draw.Draw(img, mr, &image.Uniform{mc}, image.Point{}, draw.Src)
	}
	return img
}

// Save renders the entries with [Image] and saves the
// result to the given file as a PNG image.
func Save(filename string, entries []palette.Entry, cell image.Point) error {
	if err := imgio.Save(filename, Image(entries, cell), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("swatch: saving %q: %w", filename, err)
	}
	return nil
}
