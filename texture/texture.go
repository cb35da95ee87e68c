// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture implements a function from
// (uv, point) to a color, with concrete Constant, SurfaceChecker,
// VolumeChecker and a default "missing texture" pattern.
package texture

import (
	"math"

	"github.com/dpedroso/geotrace/color"
	"github.com/dpedroso/geotrace/ten"
)

// Texture returns a color for a hit's (u, v) surface coordinates and its
// ambient-space point.
type Texture interface {
	Value(u, v float64, point ten.Vec) color.Color
}

// Constant returns the same color everywhere.
type Constant struct {
	Color color.Color
}

func (t Constant) Value(u, v float64, point ten.Vec) color.Color { return t.Color }

// SurfaceChecker alternates between two colors in a checkerboard pattern
// over (u, v); the color flips every pi/Scale along u and along v (Scale 0
// means 10).
type SurfaceChecker struct {
	Odd, Even color.Color
	Scale     float64
}

func (t SurfaceChecker) Value(u, v float64, point ten.Vec) color.Color {
	scale := t.Scale
	if scale == 0 {
		scale = 10
	}
	sines := math.Sin(scale*u) * math.Sin(scale*v)
	if sines < 0 {
		return t.Odd
	}
	return t.Even
}

// VolumeChecker alternates between two colors in a checkerboard pattern over
// the ambient-space point's coordinates, for volumetric materials (Mist)
// where UV is not meaningful.
type VolumeChecker struct {
	Odd, Even color.Color
	Scale     float64
}

func (t VolumeChecker) Value(u, v float64, point ten.Vec) color.Color {
	scale := t.Scale
	if scale == 0 {
		scale = 10
	}
	sign := 1.0
	for _, x := range point {
		sign *= math.Sin(scale * x)
	}
	if sign < 0 {
		return t.Odd
	}
	return t.Even
}

// missingUVCheckerScale sets the square density of the default texture
// below.
const missingUVCheckerScale = 8

// Missing is the "pink/black UV-checker" pattern used when
// no texture is bound to a material.
var Missing Texture = uvChecker{}

type uvChecker struct{}

func (uvChecker) Value(u, v float64, point ten.Vec) color.Color {
	ui := int(math.Floor(u * missingUVCheckerScale))
	vi := int(math.Floor(v * missingUVCheckerScale))
	if (ui+vi)%2 == 0 {
		return color.Color{R: 1, G: 0, B: 1}
	}
	return color.Color{R: 0, G: 0, B: 0}
}
