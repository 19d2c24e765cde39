// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// Dimensions are the OKHsl coordinates of a palette that can be
// plotted as a function of scale.
type Dimensions int32 //enums:enum -trim-prefix Dimension -transform lower

const (
	// DimensionHue is the OKHsl hue in degrees.
	DimensionHue Dimensions = iota

	// DimensionSaturation is the OKHsl saturation in percent.
	DimensionSaturation

	// DimensionLightness is the OKHsl lightness in percent.
	DimensionLightness
)

// Series returns the values of the given dimension for each entry,
// with saturation and lightness in percent.
func Series(entries []Entry, dim Dimensions) []float64 {
	vals := make([]float64, len(entries))
	for i, e := range entries {
		switch dim {
		case DimensionHue:
			vals[i] = e.Color.H
		case DimensionSaturation:
			vals[i] = 100 * e.Color.S
		case DimensionLightness:
			vals[i] = 100 * e.Color.L
		}
	}
	return vals
}

// Domain returns the range of values of the given dimension.
func Domain(dim Dimensions) (lo, hi float64) {
	if dim == DimensionHue {
		return 0, 360
	}
	return 0, 100
}
