// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package color implements the 3-channel floating color used throughout the
// renderer, plus saturating conversion to 8-bit integer channels.
package color

import (
	"math"

	"github.com/dpedroso/geotrace/ten"
)

// Color is an RGB triple with unclamped floating channels; values typically
// live in [0,1] but scattering/accumulation can exceed that range
// transiently.
type Color struct {
	R, G, B float64
}

// Black is the zero color.
var Black = Color{}

// White is (1,1,1).
var White = Color{1, 1, 1}

// Add returns c+other elementwise.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns c*other elementwise (used for attenuation accumulation along a
// path).
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns c scaled by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Lerp linearly interpolates between c and other at parameter t in [0,1].
func (c Color) Lerp(other Color, t float64) Color {
	return c.Scale(1 - t).Add(other.Scale(t))
}

// Gamma applies channel_out = channel_in^(1/gamma) to every channel,
// clamping negative inputs to 0 first.
func (c Color) Gamma(gamma float64) Color {
	apply := func(x float64) float64 {
		if x < 0 {
			x = 0
		}
		return math.Pow(x, 1/gamma)
	}
	return Color{apply(c.R), apply(c.G), apply(c.B)}
}

func saturate8(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}

// RGB8 converts c (channels conventionally in [0,1]) to saturated [0,255]
// integers, mapping NaN to 0.
func (c Color) RGB8() (r, g, b uint8) {
	return saturate8(c.R * 255), saturate8(c.G * 255), saturate8(c.B * 255)
}

// Vec returns c as a 3-vector (R,G,B), for packages (material, render) that
// need to run color through package ten's arithmetic.
func (c Color) Vec() ten.Vec { return ten.VecFrom(c.R, c.G, c.B) }

// FromVec builds a Color from a 3-vector (R,G,B). It panics (via v's
// indexing) if v does not have length 3.
func FromVec(v ten.Vec) Color { return Color{R: v[0], G: v[1], B: v[2]} }
