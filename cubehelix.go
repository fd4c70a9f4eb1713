// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on the cubehelix scheme of Green (2011),
// Bulletin of the Astronomical Society of India, 39, 289.

// Package cubehelix generates color palettes that degrade gracefully to
// grayscale. Colors trace a helix around the diagonal of the RGB cube,
// so that increasing intensity always increases perceived brightness,
// modulated by a saturation envelope, a lightness envelope, and gamma
// correction.
package cubehelix

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/chewxy/math32"
)

// ErrParams indicates malformed generation parameters.
// Errors returned by [Params.Validate] and [Params.Generate] wrap it.
var ErrParams = errors.New("cubehelix: invalid parameters")

// Params are the generation parameters for a cubehelix palette.
// The zero value is not usable; start from [Defaults] and set fields
// as needed. Optional fields (StartHue, EndHue, Sat) are NaN when unset.
type Params struct {

	// Name is a label for the palette carried through to consumers;
	// it has no effect on generation.
	Name string

	// Start is the starting position of the helix on the red, green,
	// blue color wheel: 0 = blue, 1 = red, 2 = green. Ignored when
	// StartHue and EndHue are both set.
	Start float32

	// Rotation is the signed number of rotations the helix makes over
	// the full intensity range; negative rotates blue through green.
	// Ignored when StartHue and EndHue are both set.
	Rotation float32

	// StartHue and EndHue, in degrees within [-360, 360], are an
	// alternative way to place the helix: when both are set they take
	// precedence over Start and Rotation. Setting only one of the two
	// is an error. NaN when unset.
	StartHue, EndHue float32

	// Gamma is the lightness correction exponent; must be positive.
	// Values below 1 emphasize low intensities, above 1 high ones.
	Gamma float32

	// Sat is a constant saturation applied across the whole palette,
	// overriding MinSat and MaxSat when set. NaN when unset.
	Sat float32

	// MinSat and MaxSat are the saturation envelope: saturation is
	// interpolated linearly from MinSat at the lowest intensity to
	// MaxSat at the highest. Ignored when Sat is set.
	MinSat, MaxSat float32

	// MinLight and MaxLight are the lightness envelope, normally
	// within [0, 1]. MinLight must not exceed MaxLight.
	MinLight, MaxLight float32

	// N is the number of colors to generate; must be at least 1.
	N int

	// Reverse returns the palette in reversed order, so that index 0
	// is the highest intensity.
	Reverse bool
}

// Defaults returns the standard generation parameters: the classic
// cubehelix of Green (2011) sampled at 256 points, with the optional
// hue and saturation overrides unset.
func Defaults() Params {
	return Params{
		Start:    0.5,
		Rotation: -1.5,
		StartHue: math32.NaN(),
		EndHue:   math32.NaN(),
		Gamma:    1,
		Sat:      math32.NaN(),
		MinSat:   1.2,
		MaxSat:   1.2,
		MinLight: 0,
		MaxLight: 1,
		N:        256,
	}
}

// Direction-cosine coefficients of the helix color directions from
// Green (2011). These are a constant of the algorithm, not parameters.
const (
	redCos   = -0.14861
	redSin   = 1.78277
	greenCos = -0.29227
	greenSin = -0.90649
	blueCos  = 1.97294
)

// Validate checks the parameters, returning an error wrapping
// [ErrParams] describing the first problem found.
func (p Params) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("%w: sample count %d is less than 1", ErrParams, p.N)
	}
	if p.Gamma <= 0 {
		return fmt.Errorf("%w: gamma %g is not positive", ErrParams, p.Gamma)
	}
	if p.MinLight > p.MaxLight {
		return fmt.Errorf("%w: light range [%g, %g] is inverted", ErrParams, p.MinLight, p.MaxLight)
	}
	if math32.IsNaN(p.StartHue) != math32.IsNaN(p.EndHue) {
		return fmt.Errorf("%w: start and end hues must be set together", ErrParams)
	}
	return nil
}

// effective returns the start and rotation actually used for the helix:
// the hue pair takes precedence when set.
func (p Params) effective() (start, rot float32) {
	if !math32.IsNaN(p.StartHue) && !math32.IsNaN(p.EndHue) {
		return p.StartHue/360 + 0.72, (p.EndHue - p.StartHue) / 360
	}
	return p.Start, p.Rotation
}

// Generate computes the palette: N colors ordered from lowest to
// highest intensity (reversed if Reverse is set). Generation is pure;
// identical parameters always produce identical output. It either
// returns exactly N colors or fails with an error wrapping [ErrParams]
// before producing any.
func (p Params) Generate() ([]color.RGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start, rot := p.effective()
	cs := make([]color.RGBA, p.N)
	for i := range cs {
		t := float32(0)
		if p.N > 1 {
			t = float32(i) / float32(p.N-1)
		}
		sat := p.Sat
		if math32.IsNaN(sat) {
			sat = p.MinSat + t*(p.MaxSat-p.MinSat)
		}
		fract := math32.Pow(p.MinLight+t*(p.MaxLight-p.MinLight), p.Gamma)
		angle := 2 * math32.Pi * (start/3 + rot*t + 1)
		amp := sat * fract * (1 - fract) / 2
		cos, sin := math32.Cos(angle), math32.Sin(angle)
		cs[i] = color.RGBA{
			R: channel(fract + amp*(redCos*cos+redSin*sin)),
			G: channel(fract + amp*(greenCos*cos+greenSin*sin)),
			B: channel(fract + amp*(blueCos*cos)),
			A: 255,
		}
	}
	if p.Reverse {
		slices.Reverse(cs)
	}
	return cs, nil
}

// channel clamps a unit channel value and scales it to a byte.
// Out-of-range values mean the helix left the RGB cube (oversaturation)
// and are clamped rather than treated as an error.
func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Luma returns the Rec. 601 luma of the given color in [0, 1], the
// weighted brightness measure that cubehelix keeps monotone in
// intensity.
func Luma(c color.Color) float32 {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return (0.299*float32(rgba.R) + 0.587*float32(rgba.G) + 0.114*float32(rgba.B)) / 255
}
