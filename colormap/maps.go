// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/cubehelix"
)

// ErrNotFound indicates a lookup of a map name that is not registered.
// Errors returned by [Lookup] wrap it.
var ErrNotFound = errors.New("colormap: map not found")

// MapInfo pairs a built-in map name with its classification.
type MapInfo struct {
	Name string
	Kind Kinds
}

// std returns the catalog parameter set for one built-in map:
// defaults at 16 samples, with the given edits applied.
func std(name string, edit func(p *cubehelix.Params)) cubehelix.Params {
	p := cubehelix.Defaults()
	p.Name = name
	p.N = 16
	edit(&p)
	return p
}

// standard is the built-in catalog in declaration order. The parameter
// sets reproduce the reference cubehelix chart.
var standard = []cubehelix.Params{
	std("classic_16", func(p *cubehelix.Params) {
		p.Start, p.Rotation = 0.5, -1.5
	}),
	std("perceptual_rainbow_16", func(p *cubehelix.Params) {
		p.StartHue, p.EndHue = 240, -300
		p.MinSat, p.MaxSat = 1, 2.5
		p.MinLight, p.MaxLight = 0.3, 0.8
		p.Gamma = 0.9
	}),
	std("purple_16", func(p *cubehelix.Params) {
		p.Start, p.Rotation = 0, 0
	}),
	std("jim_special_16", func(p *cubehelix.Params) {
		p.Start, p.Rotation = 0.3, -0.5
	}),
	std("red_16", func(p *cubehelix.Params) {
		p.Start, p.Rotation = 0, 0.5
	}),
	std("cubehelix1_16", func(p *cubehelix.Params) {
		p.Start, p.Rotation, p.Sat = 1.5, -1, 1.5
	}),
	std("cubehelix2_16", func(p *cubehelix.Params) {
		p.Start, p.Rotation, p.Sat = 2, 1, 1.5
	}),
	std("cubehelix3_16", func(p *cubehelix.Params) {
		p.Start, p.Rotation, p.Sat = 2, 1, 3
	}),
}

// AvailableMaps holds all built-in maps and their reversed variants,
// keyed by name. It is populated once at init and read-only afterwards,
// so concurrent lookups need no locking.
var AvailableMaps = map[string]*Map{}

func init() {
	for _, p := range standard {
		cs, err := p.Generate()
		if err != nil {
			panic("colormap: bad builtin parameters for " + p.Name + ": " + err.Error())
		}
		m := &Map{Name: p.Name, Kind: Sequential, Colors: cs}
		AvailableMaps[m.Name] = m
		r := m.Reversed()
		AvailableMaps[r.Name] = r
	}
}

// Lookup returns the registered map with the given name, including
// reversed variants. It returns an error wrapping [ErrNotFound] if the
// name is not registered; see [MustMap] and [LogMap] for versions that
// do not return an error.
func Lookup(name string) (*Map, error) {
	if m, ok := AvailableMaps[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// MustMap returns the registered map with the given name. It panics
// if the name is not registered; see [Lookup] for a version that
// returns an error.
func MustMap(name string) *Map {
	m, err := Lookup(name)
	if err != nil {
		panic("colormap.MustMap: " + err.Error())
	}
	return m
}

// LogMap returns the registered map with the given name. It logs an
// error and returns the classic map if the name is not registered; see
// [Lookup] for a version that returns an error.
func LogMap(name string) *Map {
	m, err := Lookup(name)
	if err != nil {
		slog.Error("colormap.LogMap: invalid color map name", "name", name)
		return AvailableMaps["classic_16"]
	}
	return m
}

// List returns the built-in catalog names and kinds in declaration
// order. Reversed variants are not listed; every listed name also has
// a registered variant with [ReversedSuffix] appended.
func List() []MapInfo {
	li := make([]MapInfo, len(standard))
	for i, p := range standard {
		li[i] = MapInfo{Name: p.Name, Kind: Sequential}
	}
	return li
}

// AvailableMapsList returns every registered name: the built-ins in
// declaration order, followed by their reversed variants in the same
// order.
func AvailableMapsList() []string {
	ns := make([]string, 0, 2*len(standard))
	for _, p := range standard {
		ns = append(ns, p.Name)
	}
	for _, p := range standard {
		ns = append(ns, p.Name+ReversedSuffix)
	}
	return ns
}
