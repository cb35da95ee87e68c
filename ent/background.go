// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dpedroso/geotrace/color"
	"github.com/dpedroso/geotrace/geo"
)

// Background is the background abstraction: a color produced for a ray
// segment that left the scene without a hit.
type Background interface {
	Value(seg geo.RaySegment) color.Color
}

// ConstantBackground is a solid backdrop color.
type ConstantBackground struct {
	Color color.Color
}

func (b ConstantBackground) Value(seg geo.RaySegment) color.Color { return b.Color }

// SkyBackground is a vertical gradient between Bottom and Top, blended by
// the ray direction's component along Up (normalized to the unit sphere).
type SkyBackground struct {
	Bottom, Top color.Color
	Up          int // index of the "vertical" ambient coordinate, usually 1
}

func (b SkyBackground) Value(seg geo.RaySegment) color.Color {
	dir := seg.Direction.Unit()
	t := 0.5 * (dir[b.Up] + 1)
	return b.Bottom.Lerp(b.Top, t)
}

// PulsingSky is a SkyBackground whose overall brightness varies with scene
// time, driven by a gosl/fun.TimeSpace the same way element gravity loads
// and boundary conditions are driven by a time function elsewhere in the
// stack. AtTime samples Brightness once and returns a plain SkyBackground,
// the same way scn.Scene resolves an entity Animator at freeze time.
type PulsingSky struct {
	Base       SkyBackground
	Brightness fun.TimeSpace
}

// AtTime scales Base's Bottom and Top by Brightness evaluated at time.
func (b PulsingSky) AtTime(time float64) Background {
	scale := b.Brightness.F(time, nil)
	return SkyBackground{
		Bottom: b.Base.Bottom.Scale(scale),
		Top:    b.Base.Top.Scale(scale),
		Up:     b.Base.Up,
	}
}
