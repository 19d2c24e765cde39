// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command okscale generates contrast-aware OKHsl color palettes
// and exports them as CSS variables or design tokens.
package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/cli"
	"cogentcore.org/okscale/cam/okhsl"
	"cogentcore.org/okscale/export"
	"cogentcore.org/okscale/palette"
	"cogentcore.org/okscale/preview"
	"cogentcore.org/okscale/swatch"
	"github.com/muesli/termenv"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the okscale cli.
type Config struct {

	// Name is the name of the palette, used as the prefix
	// of the generated CSS variables.
	Name string `default:"color"`

	// Hue is the base hue in degrees (0-360).
	Hue float64 `default:"180"`

	// HSL is whether Hue is an HSL hue, as used by most color pickers,
	// instead of an OKHsl hue.
	HSL bool

	// Shift is the hue shift in degrees (0-20) of the lightest steps.
	Shift float64 `default:"5"`

	// MaxSaturation is the saturation in percent (0-100) of the middle step.
	MaxSaturation float64 `default:"100"`

	// MinSaturation is the saturation in percent (0-100) of the end steps.
	MinSaturation float64 `default:"0"`

	// Neutral generates a near-gray palette at the hue,
	// ignoring Shift, MaxSaturation, and MinSaturation.
	Neutral bool

	// Background is the background color the palette is generated against.
	Background string `default:"#ffffff"`

	// Format is the color format of CSS values (hex, oklch, hsl, or rgb).
	Format export.Formats `default:"oklch"`

	// Wrap is whether to wrap CSS values in their CSS function, like oklch().
	Wrap bool `default:"true"`

	// Encoding is the export encoding (css, theme, json, yaml, or toml).
	Encoding export.Encodings `default:"css"`

	// Graphs is whether to also print graphs of the hue,
	// saturation, and lightness of the palette.
	Graphs bool

	// Output is the output file; the export and watch commands
	// write to standard output if it is empty.
	Output string `flag:"o,output"`

	// CellWidth is the width of one swatch cell in pixels.
	CellWidth int `cmd:"swatch" default:"64"`

	// CellHeight is the height of one swatch cell in pixels.
	CellHeight int `cmd:"swatch" default:"96"`

	// File is the parameters file (json, yaml, or toml) to watch.
	File string `cmd:"watch" posarg:"0"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("okscale", "Okscale generates contrast-aware OKHsl color palettes.")
	opts.DefaultFiles = []string{"okscale.toml"}
	cli.Run(opts, &Config{}, Generate, Export, Swatch, Watch)
}

// Params returns the palette parameters of the config.
func (c *Config) Params() palette.Params {
	hue := c.Hue
	if c.HSL {
		hue = okhsl.FromHSLHue(hue)
	}
	if c.Neutral {
		p := palette.NeutralParams(hue)
		p.Background = c.Background
		return p
	}
	return palette.Params{
		BaseHue:       hue,
		HueShift:      c.Shift,
		MaxSaturation: c.MaxSaturation,
		MinSaturation: c.MinSaturation,
		Background:    c.Background,
	}
}

// Options returns the export options of the config.
func (c *Config) Options(p palette.Params) export.Options {
	return export.Options{
		Name:       c.Name,
		Background: p.Background,
		Format:     c.Format,
		Wrap:       c.Wrap,
		Encoding:   c.Encoding,
	}
}

// generate returns the palette for the given parameters,
// logging a warning if they are out of range.
func generate(p palette.Params) []palette.Entry {
	if err := p.Validate(); err != nil {
		slog.Warn("palette parameters out of range", "err", err)
	}
	return palette.Generate(p)
}

// Generate prints a preview of the palette to the terminal.
func Generate(c *Config) error { //cli:cmd -root
	return generateTo(os.Stdout, c)
}

// generateTo writes the palette preview, and the graphs if
// requested, to the given writer.
func generateTo(w io.Writer, c *Config, opts ...termenv.OutputOption) error {
	p := c.Params()
	entries := generate(p)
	if err := preview.Table(w, entries, p.Background, opts...); err != nil {
		return err
	}
	if !c.Graphs {
		return nil
	}
	fmt.Fprintln(w)
	return preview.Graphs(w, entries, opts...)
}

// Export exports the palette as CSS variables or design tokens.
func Export(c *Config) error {
	return exportParams(c, c.Params())
}

// exportParams exports the palette for the given parameters
// to the configured output.
func exportParams(c *Config, p palette.Params) error {
	b, err := export.Encode(generate(p), c.Options(p))
	if err != nil {
		return err
	}
	if c.Output == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(c.Output, b, 0666); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}
	slog.Info("exported palette", "name", c.Name, "file", c.Output, "encoding", c.Encoding)
	return nil
}

// Swatch saves an image of the palette as a PNG file.
func Swatch(c *Config) error {
	fn := c.Output
	if fn == "" {
		fn = c.Name + ".png"
	}
	if err := swatch.Save(fn, generate(c.Params()), image.Pt(c.CellWidth, c.CellHeight)); err != nil {
		return err
	}
	slog.Info("saved swatch", "file", fn)
	return nil
}

// Watch watches a parameters file and exports the palette
// each time that the file is written.
func Watch(c *Config) error {
	if err := watchExport(c); err != nil {
		return err
	}
	return watchFile(c.File, func() error { return watchExport(c) }, nil)
}

// watchExport exports the palette for the parameters in the watched file.
func watchExport(c *Config) error {
	p, err := readParams(c.File)
	if err != nil {
		return err
	}
	return exportParams(c, p)
}

// readParams reads palette parameters from the given file,
// with the encoding given by its extension.
func readParams(filename string) (palette.Params, error) {
	enc, err := export.EncodingFromFilename(filename)
	if err != nil {
		return palette.Params{}, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return palette.Params{}, err
	}
	return export.DecodeParams(b, enc)
}
