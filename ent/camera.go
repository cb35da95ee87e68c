// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/ten"
)

// Camera is the pinhole camera: a detector-surface function maps
// canvas coordinates (u, v) in [-1, 1]^2 to an ambient-space point; the
// emitted ray starts at Pinhole and passes through that detector point,
// continuing beyond it into the scene.
type Camera struct {
	DetectorSurface func(u, v float64) ten.Vec
	Pinhole         ten.Vec
	// Animator updates the camera's position for a given time, if set.
	Animator func(time float64) Camera
}

// SetTime applies Animator, if present, returning the (possibly) updated
// camera for that time.
func (c Camera) SetTime(time float64) Camera {
	if c.Animator == nil {
		return c
	}
	return c.Animator(time)
}

// RayForCoords emits the ray for canvas coordinates (x, y) in [-1, 1]^2.
func (c Camera) RayForCoords(geometry geo.Manifold, x, y float64) geo.Ray {
	detector := c.DetectorSurface(x, y)
	direction := detector.Sub(c.Pinhole).Unit()
	return geometry.RayFrom(c.Pinhole, direction)
}

// NewPinholeCamera builds a Camera whose detector surface is a flat
// rectangle centered at detectorCenter, spanning detectorRight and
// detectorUp at the extremes of canvas coordinates, with the pinhole at the
// given point (a common 3D setup; higher dimensional detector surfaces can be
// built by supplying DetectorSurface directly).
func NewPinholeCamera(detectorCenter, detectorRight, detectorUp ten.Vec, pinhole ten.Vec) Camera {
	return Camera{
		DetectorSurface: func(u, v float64) ten.Vec {
			return detectorCenter.Add(detectorRight.Scale(u)).Add(detectorUp.Scale(v))
		},
		Pinhole: pinhole,
	}
}
