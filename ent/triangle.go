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

// Triangle is the small-triangle primitive: it assumes negligible
// curvature across its own footprint, so intersection and the normal are
// computed treating the triangle's immediate neighborhood as flat, but with
// the ambient metric (evaluated at the triangle's centroid) substituted for
// the Euclidean dot product wherever lengths or angles matter — the
// approximation only breaks down for triangles large relative to the
// geometry's curvature scale (package geo's Infinite-style predicates do not
// apply here; callers are responsible for keeping meshes "small").
type Triangle struct {
	V0, V1, V2 ten.Vec // 3-vectors
	Scatterer  hit.Scatterer
}

func metricDot(g ten.Mat, a, b ten.Vec) float64 {
	return a.Dot(g.MulVec(b))
}

// metricCross3 is the 3D cross product of e1 and e2, scaled so that its
// metric-g length is 1 (the "metric-aware cross product... normalize with
// the metric").
func metricCross3(g ten.Mat, e1, e2 ten.Vec) ten.Vec {
	raw := ten.VecFrom(
		e1[1]*e2[2]-e1[2]*e2[1],
		e1[2]*e2[0]-e1[0]*e2[2],
		e1[0]*e2[1]-e1[1]*e2[0],
	)
	norm := math.Sqrt(math.Abs(metricDot(g, raw, raw)))
	if norm == 0 {
		return raw
	}
	return raw.Scale(1 / norm)
}

func (tri Triangle) centroid() ten.Vec {
	return tri.V0.Add(tri.V1).Add(tri.V2).Scale(1.0 / 3.0)
}

func (tri Triangle) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool) {
	e1 := tri.V1.Sub(tri.V0)
	e2 := tri.V2.Sub(tri.V0)
	g := geometry.Metric(tri.centroid())
	normal := metricCross3(g, e1, e2)

	denom := metricDot(g, normal, seg.Direction)
	if denom == 0 {
		return hit.Record{}, false
	}
	t := -metricDot(g, normal, seg.Start.Sub(tri.V0)) / denom
	if t < tMin || t >= tMax {
		return hit.Record{}, false
	}
	point := seg.At(t)
	w := point.Sub(tri.V0)

	a11 := metricDot(g, e1, e1)
	a12 := metricDot(g, e1, e2)
	a22 := metricDot(g, e2, e2)
	b1 := metricDot(g, w, e1)
	b2 := metricDot(g, w, e2)
	det := a11*a22 - a12*a12
	if det == 0 {
		return hit.Record{}, false
	}
	u := (b1*a22 - b2*a12) / det
	v := (a11*b2 - a12*b1) / det
	if u < 0 || v < 0 || u+v > 1 {
		return hit.Record{}, false
	}

	rec := buildHit(geometry, point, normal, seg.Direction, t, u, v, tri.Scatterer)
	return rec, true
}

func (tri Triangle) BoundingBox() (AABB, bool) {
	box := NewAABB(tri.V0, tri.V1)
	box = Surrounding(box, NewAABB(tri.V2, tri.V2))
	// Guard against a degenerate zero-thickness box along the triangle's
	// normal axis, which would make AABB.Hit reject grazing rays.
	const pad = 1e-4
	padded := ten.VecFrom(pad, pad, pad)
	return AABB{Min: box.Min.Sub(padded), Max: box.Max.Add(padded)}, true
}
