// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast provides relative luminance and WCAG contrast
// ratio computations, and picks readable overlay text colors.
package contrast

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/okscale/cam/cie"
	"cogentcore.org/okscale/cam/okhsl"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// OverlayThreshold is the luminance at which black and white text
	// have the same contrast ratio against a background: above it,
	// black text is more readable; at or below it, white text is.
	OverlayThreshold = 0.179

	// LightThreshold is the luminance above which a background
	// is treated as light when solving for contrast.
	LightThreshold = 0.18

	// Black and White are the overlay text colors.
	Black = "#000000"
	White = "#FFFFFF"
)

// isHex returns whether s is a #rgb or #rrggbb hex code.
func isHex(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// ParseColor parses a #rgb or #rrggbb hex color, or a CSS color name.
// Fully transparent colors are an error, since they have no luminance
// of their own.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if !isHex(s) {
			return colorful.Color{}, fmt.Errorf("contrast: invalid hex color %q", s)
		}
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return colorful.Color{}, fmt.Errorf("contrast: invalid hex color %q: %w", s, err)
		}
		return c, nil
	}
	rgba, err := colors.FromName(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("contrast: unknown color %q: %w", s, err)
	}
	c, ok := colorful.MakeColor(rgba)
	if !ok {
		return colorful.Color{}, fmt.Errorf("contrast: color %q has no opacity", s)
	}
	return c, nil
}

// LuminanceOf returns the relative luminance (XYZ Y) of the given color.
func LuminanceOf(c colorful.Color) float64 {
	return cie.Luminance(c.R, c.G, c.B)
}

// LuminanceOKHSL returns the relative luminance of the given OKHsl
// color after clamping it to the sRGB gamut.
func LuminanceOKHSL(c okhsl.OKHSL) float64 {
	return LuminanceOf(c.Color().Clamped())
}

// Luminance returns the relative luminance of the color given as a
// hex string or color name. Colors that can not be parsed are treated
// as white, with a luminance of 1.
func Luminance(s string) float64 {
	c, err := ParseColor(s)
	if err != nil {
		return 1
	}
	return LuminanceOf(c)
}

// Ratio returns the contrast ratio between two luminances.
// The contrast ratio will be between 1 and 21 for luminances in [0, 1],
// and it is symmetric in its arguments.
func Ratio(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// RatioHex returns the contrast ratio between two colors given as
// hex strings or color names. See [Luminance] for invalid colors.
func RatioHex(a, b string) float64 {
	return Ratio(Luminance(a), Luminance(b))
}

// ToneRatio returns the contrast ratio between two CIE L* tones.
// The tones should be between 0 and 100 and will be clamped to such.
func ToneRatio(a, b float64) float64 {
	a = math.Max(0, math.Min(a, 100))
	b = math.Max(0, math.Min(b, 100))
	return Ratio(cie.LToY(a), cie.LToY(b))
}

// IsLight returns whether a background with the given
// luminance is light, based on [LightThreshold].
func IsLight(y float64) bool {
	return y > LightThreshold
}

// OverlayText returns the text color ([Black] or [White]) that is
// most readable on top of the given background color.
func OverlayText(background string) string {
	return OverlayTextY(Luminance(background))
}

// OverlayTextY is [OverlayText] for a background luminance.
func OverlayTextY(y float64) string {
	if y > OverlayThreshold {
		return Black
	}
	return White
}
