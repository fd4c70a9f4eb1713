// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubehelix

import (
	"image/color"
	"slices"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func expectTol(t *testing.T, ref, val, tol float32, str string) {
	t.Helper()
	if math32.Abs(ref-val) > tol {
		t.Errorf("expected value: %g != %g with tolerance: %g for %s\n", ref, val, tol, str)
	}
}

func classic(n int) Params {
	p := Defaults()
	p.N = n
	return p
}

func TestGenerateCount(t *testing.T) {
	for _, n := range []int{1, 2, 16, 256} {
		cs, err := classic(n).Generate()
		assert.NoError(t, err)
		assert.Equal(t, n, len(cs))
		for _, c := range cs {
			assert.Equal(t, uint8(255), c.A)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := classic(64).Generate()
	assert.NoError(t, err)
	b, err := classic(64).Generate()
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateReverse(t *testing.T) {
	fwd, err := classic(16).Generate()
	assert.NoError(t, err)

	p := classic(16)
	p.Reverse = true
	rev, err := p.Generate()
	assert.NoError(t, err)

	exp := slices.Clone(fwd)
	slices.Reverse(exp)
	assert.Equal(t, exp, rev)
}

func TestGenerateEndpoints(t *testing.T) {
	// amp is zero at both ends of the full lightness range, so the
	// classic palette runs exactly from black to white.
	cs, err := classic(16).Generate()
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cs[0])
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cs[15])
}

func TestLumaMonotoneIntent(t *testing.T) {
	cs, err := classic(16).Generate()
	assert.NoError(t, err)
	assert.Less(t, Luma(cs[0]), Luma(cs[15]))
}

func TestHuePairOverride(t *testing.T) {
	p := Defaults()
	p.StartHue, p.EndHue = 240, -300
	start, rot := p.effective()
	expectTol(t, 240.0/360.0+0.72, start, 1e-5, "start from hue pair")
	expectTol(t, (-300.0-240.0)/360.0, rot, 1e-5, "rotation from hue pair")

	// without the hue pair, start and rotation pass through as given
	p = Defaults()
	start, rot = p.effective()
	expectTol(t, 0.5, start, 1e-7, "default start")
	expectTol(t, -1.5, rot, 1e-7, "default rotation")
}

func TestSingleSample(t *testing.T) {
	cs, err := classic(1).Generate()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(cs))

	p := classic(1)
	p.Reverse = true
	rev, err := p.Generate()
	assert.NoError(t, err)
	assert.Equal(t, cs, rev)
}

func TestValidate(t *testing.T) {
	p := Defaults()
	p.N = 0
	assert.ErrorIs(t, p.Validate(), ErrParams)
	_, err := p.Generate()
	assert.ErrorIs(t, err, ErrParams)

	p = Defaults()
	p.Gamma = 0
	assert.ErrorIs(t, p.Validate(), ErrParams)

	p = Defaults()
	p.Gamma = -2
	assert.ErrorIs(t, p.Validate(), ErrParams)

	p = Defaults()
	p.MinLight, p.MaxLight = 0.8, 0.3
	assert.ErrorIs(t, p.Validate(), ErrParams)

	p = Defaults()
	p.StartHue = 240
	assert.ErrorIs(t, p.Validate(), ErrParams)

	p = Defaults()
	p.EndHue = -300
	assert.ErrorIs(t, p.Validate(), ErrParams)

	assert.NoError(t, Defaults().Validate())
}

func TestConstantSatOverride(t *testing.T) {
	// with Sat set, the envelope fields are ignored entirely
	a := Defaults()
	a.N = 16
	a.Sat = 1.2

	b := Defaults()
	b.N = 16
	b.Sat = 1.2
	b.MinSat, b.MaxSat = 0, 99

	ca, err := a.Generate()
	assert.NoError(t, err)
	cb, err := b.Generate()
	assert.NoError(t, err)
	assert.Equal(t, ca, cb)
}

func TestCustomScenario(t *testing.T) {
	p := Defaults()
	p.N = 5
	p.StartHue, p.EndHue = 240, -300
	p.MinSat, p.MaxSat = 1, 2.5
	p.MinLight, p.MaxLight = 0.3, 0.8
	p.Gamma = 0.9

	cs, err := p.Generate()
	assert.NoError(t, err)
	assert.Equal(t, 5, len(cs))

	again, err := p.Generate()
	assert.NoError(t, err)
	assert.Equal(t, cs, again)
}

func TestLuma(t *testing.T) {
	expectTol(t, 0, Luma(color.RGBA{0, 0, 0, 255}), 1e-6, "black")
	expectTol(t, 1, Luma(color.RGBA{255, 255, 255, 255}), 1e-6, "white")
	expectTol(t, 0.587, Luma(color.RGBA{0, 255, 0, 255}), 1e-3, "green")
}
