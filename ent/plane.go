// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
	"github.com/dpedroso/geotrace/ten"
)

// Plane is the 3D centered unit square in the x-y plane, facing
// +z, with independently toggleable infinite extents per edge.
type Plane struct {
	Position ten.Vec // 3-vector, plane center
	NegX     bool    // true: unbounded toward -x
	PosX     bool    // true: unbounded toward +x
	NegY     bool
	PosY     bool

	Scatterer hit.Scatterer
}

func (p Plane) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool) {
	if seg.Direction[2] == 0 {
		return hit.Record{}, false
	}
	t := (p.Position[2] - seg.Start[2]) / seg.Direction[2]
	if t < tMin || t >= tMax {
		return hit.Record{}, false
	}
	point := seg.At(t)
	localX := point[0] - p.Position[0]
	localY := point[1] - p.Position[1]

	if !p.NegX && localX < -0.5 {
		return hit.Record{}, false
	}
	if !p.PosX && localX > 0.5 {
		return hit.Record{}, false
	}
	if !p.NegY && localY < -0.5 {
		return hit.Record{}, false
	}
	if !p.PosY && localY > 0.5 {
		return hit.Record{}, false
	}

	outwardNormal := ten.VecFrom(0, 0, 1)
	u := localX + 0.5
	v := localY + 0.5
	rec := buildHit(geometry, point, outwardNormal, seg.Direction, t, u, v, p.Scatterer)
	return rec, true
}

func (p Plane) BoundingBox() (AABB, bool) {
	if p.NegX || p.PosX || p.NegY || p.PosY {
		return AABB{}, false
	}
	half := ten.VecFrom(0.5, 0.5, 1e-4)
	return AABB{Min: p.Position.Sub(half), Max: p.Position.Add(half)}, true
}
