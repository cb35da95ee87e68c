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

// Sphere is the analytic sphere, valid in 3D Cartesian space and
// in any N-dimensional flat-Euclidean embedding. A negative Radius flips the
// outward normal, building glass shells with concentric inner surfaces out
// of two spheres of opposite sign.
type Sphere struct {
	Center    ten.Vec
	Radius    float64
	Scatterer hit.Scatterer
}

func (s Sphere) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool) {
	oc := seg.Start.Sub(s.Center)
	a := seg.Direction.LengthSquared()
	halfB := oc.Dot(seg.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return hit.Record{}, false
	}
	sqrtDisc := math.Sqrt(disc)

	root := (-halfB - sqrtDisc) / a
	if root < tMin || root >= tMax {
		root = (-halfB + sqrtDisc) / a
		if root < tMin || root >= tMax {
			return hit.Record{}, false
		}
	}

	point := seg.At(root)
	outwardNormal := point.Sub(s.Center).Scale(1 / s.Radius)
	rec := buildHit(geometry, point, outwardNormal, seg.Direction, root, 0, 0, s.Scatterer)
	// UV is defined from the ONB-frame normal (always 3D regardless of
	// ambient N), not the ambient-space outward normal.
	rec.U, rec.V = sphereUV(rec.Normal)
	return rec, true
}

// sphereUV maps a unit ONB-frame normal to (u, v) in [0,1]x[0,1] via
// standard spherical coordinates.
func sphereUV(n ten.Vec) (u, v float64) {
	theta := math.Acos(-n[1])
	phi := math.Atan2(-n[2], n[0]) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func (s Sphere) BoundingBox() (AABB, bool) {
	r := math.Abs(s.Radius)
	rad := ten.NewVec(len(s.Center))
	for i := range rad {
		rad[i] = r
	}
	return AABB{Min: s.Center.Sub(rad), Max: s.Center.Add(rad)}, true
}
