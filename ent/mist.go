// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"math"

	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
	"github.com/dpedroso/geotrace/ten"
)

// Mist is the constant-density volume: a convex Boundary entity
// filled with isotropic-scattering medium of density Density. The normal at
// a hit is arbitrary since only the Isotropic material (which ignores it)
// is meaningful here.
type Mist struct {
	Boundary  Entity
	Density   float64
	Scatterer hit.Scatterer
}

func (m Mist) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool) {
	rec1, ok := m.Boundary.HitRecord(geometry, seg, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return hit.Record{}, false
	}
	rec2, ok := m.Boundary.HitRecord(geometry, seg, rec1.T+1e-4, math.Inf(1), rng)
	if !ok {
		return hit.Record{}, false
	}

	t1 := math.Max(rec1.T, tMin)
	t2 := math.Min(rec2.T, tMax)
	if t1 >= t2 {
		return hit.Record{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	interiorLength := (t2 - t1) * seg.Direction.Length()
	hitDistance := -(1 / m.Density) * math.Log(rng.Float64(0, 1))
	if hitDistance >= interiorLength {
		return hit.Record{}, false
	}

	t := t1 + hitDistance/seg.Direction.Length()
	point := seg.At(t)
	// The normal is arbitrary; Isotropic ignores it.
	arbitraryNormal := ten.NewVec(len(point))
	if len(arbitraryNormal) > 0 {
		arbitraryNormal[0] = 1
	}
	rec := buildHit(geometry, point, arbitraryNormal, seg.Direction, t, 0, 0, m.Scatterer)
	return rec, true
}

func (m Mist) BoundingBox() (AABB, bool) {
	return m.Boundary.BoundingBox()
}
