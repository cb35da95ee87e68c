// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
)

// TriangleMesh is the small-triangle mesh: a flat list of
// Triangles checked by brute force. A BVH over a mesh's own triangles is an
// optimization left unspecified; meshes here are assumed small
// enough (same "negligible curvature" premise as a single Triangle) that
// this is adequate.
type TriangleMesh struct {
	Triangles []Triangle
}

func (m TriangleMesh) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool) {
	closest := tMax
	var best hit.Record
	found := false
	for _, tri := range m.Triangles {
		if rec, ok := tri.HitRecord(geometry, seg, tMin, closest, rng); ok {
			closest = rec.T
			best = rec
			found = true
		}
	}
	return best, found
}

func (m TriangleMesh) BoundingBox() (AABB, bool) {
	if len(m.Triangles) == 0 {
		return AABB{}, false
	}
	box, _ := m.Triangles[0].BoundingBox()
	for _, tri := range m.Triangles[1:] {
		b, _ := tri.BoundingBox()
		box = Surrounding(box, b)
	}
	return box, true
}
