// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/okscale/contrast"
)

// Params are the parameters of a generated palette.
type Params struct {

	// BaseHue is the OKHsl hue in degrees (0-360) of the darkest steps.
	BaseHue float64 `json:"baseHue" yaml:"baseHue" toml:"baseHue" min:"0" max:"360" default:"180"`

	// HueShift is the number of degrees (0-20) added to the hue
	// of the lightest steps, decreasing linearly with scale.
	HueShift float64 `json:"hueShift" yaml:"hueShift" toml:"hueShift" min:"0" max:"20" default:"5"`

	// MaxSaturation is the saturation in percent (0-100) of the middle step.
	MaxSaturation float64 `json:"maxSaturation" yaml:"maxSaturation" toml:"maxSaturation" min:"0" max:"100" default:"100"`

	// MinSaturation is the saturation in percent (0-100) that the
	// curve reaches at the ends of the scale. It should be no more
	// than MaxSaturation; otherwise the curve is inverted and clamped.
	MinSaturation float64 `json:"minSaturation" yaml:"minSaturation" toml:"minSaturation" min:"0" max:"100" default:"0"`

	// Background is the hex code or name of the background color
	// that lightness is solved against. It defaults to white.
	Background string `json:"background" yaml:"background" toml:"background" default:"#ffffff"`
}

// ColorParams returns the parameters of a chromatic palette at the
// given hue: a 5 degree hue shift and saturation from 0 to 100 percent.
func ColorParams(hue float64) Params {
	return Params{BaseHue: hue, HueShift: 5, MaxSaturation: 100, MinSaturation: 0, Background: DefaultBackground}
}

// NeutralParams returns the parameters of a near-gray palette tinted
// with the given hue: no hue shift and saturation from 0 to 20 percent.
func NeutralParams(hue float64) Params {
	return Params{BaseHue: hue, HueShift: 0, MaxSaturation: 20, MinSaturation: 0, Background: DefaultBackground}
}

// DefaultParams returns the default parameters, [ColorParams] at 180.
func DefaultParams() Params {
	return ColorParams(180)
}

// Validate returns an error describing every parameter that is outside of
// its documented range. [Generate] does not call it and accepts any
// parameters, so it is up to callers to decide what to do with the error.
func (p *Params) Validate() error {
	var errs []error
	inRange := func(name string, v, lo, hi float64) {
		if !(v >= lo && v <= hi) {
			errs = append(errs, fmt.Errorf("%s %g is outside of [%g, %g]", name, v, lo, hi))
		}
	}
	inRange("base hue", p.BaseHue, 0, 360)
	inRange("hue shift", p.HueShift, 0, 20)
	inRange("max saturation", p.MaxSaturation, 0, 100)
	inRange("min saturation", p.MinSaturation, 0, 100)
	if p.MinSaturation > p.MaxSaturation {
		errs = append(errs, fmt.Errorf("min saturation %g is greater than max saturation %g", p.MinSaturation, p.MaxSaturation))
	}
	if p.Background != "" {
		if _, err := contrast.ParseColor(p.Background); err != nil {
			errs = append(errs, fmt.Errorf("background: %w (treated as white)", err))
		}
	}
	return errors.Join(errs...)
}
