// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview prints palettes to terminals as colored swatches.
package preview

import (
	"fmt"
	"io"
	"math"
	"strings"

	"cogentcore.org/okscale/contrast"
	"cogentcore.org/okscale/palette"
	"github.com/muesli/termenv"
)

// Table writes one line per entry to w: a swatch of the color labeled
// with its scale in the readable overlay text color, followed by the
// hex code, the OKHsl coordinates and the contrast ratio against the
// given background. The color profile is detected from w unless
// set with [termenv.WithProfile].
func Table(w io.Writer, entries []palette.Entry, background string, opts ...termenv.OutputOption) error {
	o := termenv.NewOutput(w, opts...)
	bgY := contrast.Luminance(background)
	for _, e := range entries {
		y := contrast.LuminanceOKHSL(e.Color)
		sw := o.String(fmt.Sprintf("  %3d  ", e.Scale)).
			Background(o.Color(e.Hex)).
			Foreground(o.Color(contrast.OverlayTextY(y)))
		_, err := fmt.Fprintf(w, "%s %s  h %6.2f  s %5.1f%%  l %5.1f%%  %5.2f:1\n",
			sw, e.Hex, e.Color.H, 100*e.Color.S, 100*e.Color.L, contrast.Ratio(bgY, y))
		if err != nil {
			return err
		}
	}
	return nil
}

// bars are the block characters used by [Graphs], from lowest to highest.
var bars = []rune(" ▁▂▃▄▅▆▇█")

// Graphs writes one row per [palette.Dimensions] to w: a bar for each
// entry, colored with the entry color, whose height is the value of the
// dimension scaled to its [palette.Domain], followed by the range of
// values. The color profile is detected from w unless set with
// [termenv.WithProfile].
func Graphs(w io.Writer, entries []palette.Entry, opts ...termenv.OutputOption) error {
	o := termenv.NewOutput(w, opts...)
	for _, dim := range palette.DimensionsValues() {
		vals := palette.Series(entries, dim)
		lo, hi := palette.Domain(dim)
		var b strings.Builder
		vmin, vmax := math.Inf(1), math.Inf(-1)
		for i, v := range vals {
			f := (v - lo) / (hi - lo)
			f = math.Max(0, math.Min(f, 1))
			bar := string(bars[int(math.Round(f*float64(len(bars)-1)))])
			b.WriteString(o.String(bar).Foreground(o.Color(entries[i].Hex)).String())
			vmin = min(vmin, v)
			vmax = max(vmax, v)
		}
		if len(vals) == 0 {
			vmin, vmax = lo, lo
		}
		_, err := fmt.Fprintf(w, "%-10s %s  %.1f-%.1f\n", dim.String(), b.String(), vmin, vmax)
		if err != nil {
			return err
		}
	}
	return nil
}
