// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"math"
	"testing"

	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/prng"
	"github.com/dpedroso/geotrace/ten"
)

func TestMistHitsInsideBoundaryOrMisses(t *testing.T) {
	geometry := geo.Euclidean{}
	m := Mist{
		Boundary: Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1},
		Density:  1,
	}
	seg := geo.RaySegment{Start: ten.VecFrom(0, 0, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	rng := prng.NewSeeded(42, 7)
	rec, ok := m.HitRecord(geometry, seg, 1e-4, math.Inf(1), rng)
	if ok {
		if rec.T < 4 || rec.T > 6 {
			t.Fatalf("hit t = %v, expected within the sphere's [4,6] passage", rec.T)
		}
	}
}

func TestMistMissesWhenRayDoesNotTouchBoundary(t *testing.T) {
	geometry := geo.Euclidean{}
	m := Mist{
		Boundary: Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1},
		Density:  1,
	}
	seg := geo.RaySegment{Start: ten.VecFrom(5, 5, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	rng := prng.NewSeeded(1, 1)
	if _, ok := m.HitRecord(geometry, seg, 1e-4, math.Inf(1), rng); ok {
		t.Fatal("expected a miss for a ray that never enters the boundary")
	}
}
