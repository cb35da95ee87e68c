// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math"
	"testing"
)

func almostEqualMat(t *testing.T, tag string, got, want Mat, tol float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("%s: shape mismatch: got %dx%d want %dx%d", tag, got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	for i := range got {
		for j := range got[i] {
			if math.Abs(got[i][j]-want[i][j]) > tol {
				t.Fatalf("%s: [%d][%d]: got %v want %v", tag, i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestMatMulAssociative(t *testing.T) {
	a := Mat{{1, 2}, {3, 4}, {5, 6}}   // 3x2
	b := Mat{{2, 0, 1}, {1, 3, -1}}    // 2x3
	v := VecFrom(1, -1, 2)            // len 3

	lhs := a.MulMat(b).MulVec(v)
	rhs := a.MulVec(b.MulVec(v))
	almostEqualVec(t, "associativity", lhs, rhs, 1e-12)
}

func TestRotationMatInverse(t *testing.T) {
	roll, pitch, yaw := 0.3, -0.7, 1.1
	r := RotationMat3(roll, pitch, yaw)
	rinv := InverseRotationMat3(roll, pitch, yaw)
	almostEqualMat(t, "rotation inverse", rinv.MulMat(r), IdentityMat(3), 1e-13)
}

func TestScalingMatInverse(t *testing.T) {
	v := VecFrom(2, 3, 0.5, 4)
	s := ScalingMat(v)
	sinv := InverseScalingMat(v)
	almostEqualMat(t, "scaling inverse", s.MulMat(sinv), IdentityMat(4), 1e-12)
}

func TestInverse(t *testing.T) {
	m := Mat{{4, 7}, {2, 6}}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	almostEqualMat(t, "inverse", m.MulMat(inv), IdentityMat(2), 1e-10)
}

func TestInverseSingular(t *testing.T) {
	m := Mat{{1, 2}, {2, 4}}
	if _, err := m.Inverse(); err == nil {
		t.Fatalf("expected error for singular matrix")
	}
}

func TestTranspose(t *testing.T) {
	m := Mat{{1, 2, 3}, {4, 5, 6}}
	got := m.Transpose()
	want := Mat{{1, 4}, {2, 5}, {3, 6}}
	almostEqualMat(t, "transpose", got, want, 0)
}
