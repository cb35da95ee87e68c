// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prng

import "testing"

func TestFloat64Range(t *testing.T) {
	s := NewSeeded(1, 2)
	for i := 0; i < 1000; i++ {
		x := s.Float64(-2, 3)
		if x < -2 || x >= 3 {
			t.Fatalf("Float64 out of range: %v", x)
		}
	}
}

func TestVecInsideUnitSphereBounded(t *testing.T) {
	s := NewSeeded(3, 4)
	for i := 0; i < 200; i++ {
		v := s.VecInsideUnitSphere(4)
		if v.LengthSquared() >= 1 {
			t.Fatalf("sample outside unit ball: %v", v)
		}
	}
}

func TestUnitVecIsUnit(t *testing.T) {
	s := NewSeeded(5, 6)
	for i := 0; i < 50; i++ {
		v := s.UnitVec(3)
		l := v.Length()
		if l < 0.999999 || l > 1.000001 {
			t.Fatalf("not unit length: %v", l)
		}
	}
}

func TestInUnitDisk(t *testing.T) {
	s := NewSeeded(7, 8)
	for i := 0; i < 200; i++ {
		v := s.InUnitDisk()
		if v[2] != 0 {
			t.Fatalf("expected z=0, got %v", v[2])
		}
		if v[0]*v[0]+v[1]*v[1] >= 1 {
			t.Fatalf("sample outside unit disk: %v", v)
		}
	}
}
