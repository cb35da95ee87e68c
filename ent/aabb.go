// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ent implements entities (Sphere, Plane, Triangle,
// Instance, Mist), their bounding boxes, Camera and Background.
package ent

import (
	"math"

	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/ten"
)

// AABB is an N-dimensional axis-aligned bounding box.
type AABB struct {
	Min, Max ten.Vec
}

// NewAABB sorts two arbitrary corners per-axis into a canonical Min/Max box.
func NewAABB(a, b ten.Vec) AABB {
	n := len(a)
	min := ten.NewVec(n)
	max := ten.NewVec(n)
	for i := 0; i < n; i++ {
		if a[i] <= b[i] {
			min[i], max[i] = a[i], b[i]
		} else {
			min[i], max[i] = b[i], a[i]
		}
	}
	return AABB{Min: min, Max: max}
}

// Hit narrows [tMin, tMax] by the box's per-axis slab intersection, returning
// whether the resulting interval is non-empty. NaN (e.g. from a 0/0 slab
// computation) is treated as a miss.
func (box AABB) Hit(seg geo.RaySegment, tMin, tMax float64) bool {
	for i := range box.Min {
		d := seg.Direction[i]
		var t0, t1 float64
		if d == 0 {
			if seg.Start[i] < box.Min[i] || seg.Start[i] > box.Max[i] {
				return false
			}
			continue
		}
		t0 = (box.Min[i] - seg.Start[i]) / d
		t1 = (box.Max[i] - seg.Start[i]) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if math.IsNaN(t0) || math.IsNaN(t1) {
			return false
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Surrounding returns the smallest box enclosing both a and b.
func Surrounding(a, b AABB) AABB {
	n := len(a.Min)
	min := ten.NewVec(n)
	max := ten.NewVec(n)
	for i := 0; i < n; i++ {
		min[i] = math.Min(a.Min[i], b.Min[i])
		max[i] = math.Max(a.Max[i], b.Max[i])
	}
	return AABB{Min: min, Max: max}
}

// Translated returns box shifted by offset.
func (box AABB) Translated(offset ten.Vec) AABB {
	return AABB{Min: box.Min.Add(offset), Max: box.Max.Add(offset)}
}
