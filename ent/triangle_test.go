// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"math"
	"testing"

	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/ten"
)

func TestTriangleCenterHit(t *testing.T) {
	geometry := geo.Euclidean{}
	tri := Triangle{
		V0: ten.VecFrom(-1, -1, 0),
		V1: ten.VecFrom(1, -1, 0),
		V2: ten.VecFrom(0, 1, 0),
	}
	seg := geo.RaySegment{Start: ten.VecFrom(0, -0.3, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	rec, ok := tri.HitRecord(geometry, seg, 1e-4, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected a hit through the triangle's interior")
	}
	if math.Abs(rec.T-5) > 1e-9 {
		t.Fatalf("t = %v, want 5", rec.T)
	}
}

func TestTriangleMissesOutsideBarycentric(t *testing.T) {
	geometry := geo.Euclidean{}
	tri := Triangle{
		V0: ten.VecFrom(-1, -1, 0),
		V1: ten.VecFrom(1, -1, 0),
		V2: ten.VecFrom(0, 1, 0),
	}
	seg := geo.RaySegment{Start: ten.VecFrom(5, 5, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	if _, ok := tri.HitRecord(geometry, seg, 1e-4, math.Inf(1), nil); ok {
		t.Fatal("expected a miss outside the triangle")
	}
}
