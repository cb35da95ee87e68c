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

func TestInstanceTranslatesHitPoint(t *testing.T) {
	geometry := geo.Euclidean{}
	inst := Instance{
		Translation: ten.VecFrom(5, 0, 0),
		Inner:       Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1},
	}
	seg := geo.RaySegment{Start: ten.VecFrom(5, 0, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	rec, ok := inst.HitRecord(geometry, seg, 1e-4, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected a hit on the translated sphere")
	}
	want := ten.VecFrom(5, 0, 1)
	if d := rec.Position.Sub(want).Length(); d > 1e-9 {
		t.Fatalf("hit point = %v, want ~%v", rec.Position, want)
	}
}

func TestInstanceBoundingBoxTranslated(t *testing.T) {
	inst := Instance{
		Translation: ten.VecFrom(5, 0, 0),
		Inner:       Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1},
	}
	box, ok := inst.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if math.Abs(box.Min[0]-4) > 1e-9 || math.Abs(box.Max[0]-6) > 1e-9 {
		t.Fatalf("box = %+v, want x in [4,6]", box)
	}
}
