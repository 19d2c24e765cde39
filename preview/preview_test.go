// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/okscale/palette"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAscii(t *testing.T) {
	entries := palette.Generate(palette.DefaultParams())
	var b bytes.Buffer
	require.NoError(t, Table(&b, entries, "#ffffff", termenv.WithProfile(termenv.Ascii)))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.NotContains(t, b.String(), "\x1b[")
	for i, l := range lines {
		assert.Contains(t, l, entries[i].Hex)
		assert.True(t, strings.HasSuffix(l, ":1"), l)
	}
	assert.True(t, strings.HasPrefix(lines[0], "    5  "), lines[0])
	assert.True(t, strings.HasPrefix(lines[10], "   95  "), lines[10])
	assert.Contains(t, lines[5], "s 100.0%")
}

func TestTableTrueColor(t *testing.T) {
	entries := palette.GenerateFrom(0, 0, 0, 0, "#ffffff")
	var b bytes.Buffer
	require.NoError(t, Table(&b, entries, "#ffffff", termenv.WithProfile(termenv.TrueColor)))
	out := b.String()
	assert.Contains(t, out, "\x1b[")
	// lightest step is labeled in black, darkest in white
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "38;2;0;0;0")
	assert.Contains(t, lines[10], "38;2;255;255;255")
	assert.Contains(t, lines[10], "48;2;")
}

func TestGraphs(t *testing.T) {
	entries := palette.Generate(palette.DefaultParams())
	var b bytes.Buffer
	require.NoError(t, Graphs(&b, entries, termenv.WithProfile(termenv.Ascii)))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "hue "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "saturation "), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "lightness "), lines[2])

	for _, l := range lines {
		g := []rune(l[11:])
		assert.GreaterOrEqual(t, len(g), 11, l)
	}
	// saturation peaks in the middle at 100%
	sat := []rune(lines[1][11:])
	assert.Equal(t, '█', sat[5])
	assert.Less(t, strings.IndexRune(string(bars), sat[0]), strings.IndexRune(string(bars), sat[5]))
	assert.True(t, strings.HasSuffix(lines[1], "-100.0"), lines[1])

	// lightness falls on a white background
	light := []rune(lines[2][11:])
	assert.Greater(t, strings.IndexRune(string(bars), light[0]), strings.IndexRune(string(bars), light[10]))

	b.Reset()
	require.NoError(t, Graphs(&b, entries, termenv.WithProfile(termenv.TrueColor)))
	assert.Contains(t, b.String(), "\x1b[")
}
