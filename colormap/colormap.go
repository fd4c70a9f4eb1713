// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides a registry of named cubehelix color maps,
// each with a precomputed reversed variant, along with construction of
// custom maps from generation parameters.
package colormap

import (
	"image/color"
	"slices"
	"strings"

	"cogentcore.org/cubehelix"
	"github.com/lucasb-eyer/go-colorful"
)

// Kinds classifies color maps for consumers such as choosers and
// plotting frontends; it has no effect on generation.
type Kinds string

const (
	// Sequential maps encode a single ordered scale.
	Sequential Kinds = "sequential"

	// Custom maps are built by callers via [New].
	Custom Kinds = "custom"
)

// ReversedSuffix is appended to a map name to form the name of its
// reversed variant.
const ReversedSuffix = "_r"

// Map is a materialized color map: an ordered sequence of colors where
// index 0 is the lowest intensity. Maps are immutable once built; they
// are only looked up, interpolated, or copied in reverse.
type Map struct {
	Name   string
	Kind   Kinds
	Colors []color.RGBA
}

// New generates a custom map from the given parameters, carrying the
// parameter Name. It does not touch the registry, so concurrent callers
// are independent.
func New(p cubehelix.Params) (*Map, error) {
	cs, err := p.Generate()
	if err != nil {
		return nil, err
	}
	return &Map{Name: p.Name, Kind: Custom, Colors: cs}, nil
}

// Reversed returns a copy of the map with the colors in reverse order
// and the [ReversedSuffix] toggled on the name, so reversing twice
// restores the original name.
func (cm *Map) Reversed() *Map {
	cs := slices.Clone(cm.Colors)
	slices.Reverse(cs)
	nm, ok := strings.CutSuffix(cm.Name, ReversedSuffix)
	if !ok {
		nm = cm.Name + ReversedSuffix
	}
	return &Map{Name: nm, Kind: cm.Kind, Colors: cs}
}

// Map returns the color at normalized position t in [0, 1], blending
// linearly in RGB between the two nearest palette colors. Values of t
// outside the range are clamped to the end colors.
func (cm *Map) Map(t float32) color.RGBA {
	n := len(cm.Colors)
	if n == 0 {
		return color.RGBA{}
	}
	if t <= 0 || n == 1 {
		return cm.Colors[0]
	}
	if t >= 1 {
		return cm.Colors[n-1]
	}
	pos := t * float32(n-1)
	lo := int(pos)
	frac := pos - float32(lo)
	c := asColorful(cm.Colors[lo]).BlendRgb(asColorful(cm.Colors[lo+1]), float64(frac))
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

func asColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
