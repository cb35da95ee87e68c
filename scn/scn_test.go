// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scn

import (
	"math"
	"testing"

	"github.com/dpedroso/geotrace/ent"
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/ten"
)

func testCamera() ent.Camera {
	return ent.NewPinholeCamera(
		ten.VecFrom(0, 0, 4.9),
		ten.VecFrom(1, 0, 0),
		ten.VecFrom(0, 1, 0),
		ten.VecFrom(0, 0, 5),
	)
}

func TestFreezeForTimeRequiresActiveCamera(t *testing.T) {
	s := New()
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1}, nil)
	if _, err := s.FreezeForTime(0); err == nil {
		t.Fatal("expected an error when no camera is set")
	}
}

func TestFreezeUnfreezeCycleRestoresMutability(t *testing.T) {
	s := New()
	s.SetCamera(testCamera())
	for i := 0; i < 1000; i++ {
		guard, err := s.FreezeForTime(0)
		if err != nil {
			t.Fatalf("iteration %d: FreezeForTime: %v", i, err)
		}
		guard.Close()
		s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1}, nil)
		s.Clear()
	}
}

func TestFreezeGuardHitRecordMatchesScene(t *testing.T) {
	s := New()
	s.SetCamera(testCamera())
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1}, nil)
	guard, err := s.FreezeForTime(0)
	if err != nil {
		t.Fatalf("FreezeForTime: %v", err)
	}
	defer guard.Close()

	geometry := geo.Euclidean{}
	seg := geo.RaySegment{Start: ten.VecFrom(0, 0, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	rec, ok := guard.HitRecord(geometry, seg, 1e-4, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Fatalf("t = %v, want 4", rec.T)
	}
}

func TestDoubleFreezePanics(t *testing.T) {
	s := New()
	s.SetCamera(testCamera())
	if _, err := s.FreezeForTime(0); err != nil {
		t.Fatalf("FreezeForTime: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on double freeze")
		}
	}()
	s.FreezeForTime(0)
}

func TestMutateWhileFrozenPanics(t *testing.T) {
	s := New()
	s.SetCamera(testCamera())
	if _, err := s.FreezeForTime(0); err != nil {
		t.Fatalf("FreezeForTime: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic mutating a frozen scene")
		}
	}()
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1}, nil)
}
