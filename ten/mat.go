// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Mat is an R-by-C matrix over float64, stored row-major as in gosl/la's
// MatAlloc convention.
type Mat [][]float64

// NewMat returns a zero r-by-c matrix, allocated with la.MatAlloc.
func NewMat(r, c int) Mat {
	return Mat(la.MatAlloc(r, c))
}

// Rows returns the number of rows.
func (m Mat) Rows() int { return len(m) }

// Cols returns the number of columns (0 if m has no rows).
func (m Mat) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns an independent copy of m.
func (m Mat) Clone() Mat {
	c := NewMat(m.Rows(), m.Cols())
	for i := range m {
		copy(c[i], m[i])
	}
	return c
}

// IdentityMat returns the n-by-n identity matrix.
func IdentityMat(n int) Mat {
	m := NewMat(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// ScalingMat returns the diagonal matrix with v on its diagonal.
func ScalingMat(v Vec) Mat {
	n := len(v)
	m := NewMat(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = v[i]
	}
	return m
}

// InverseScalingMat returns the diagonal matrix with 1/v on its diagonal.
// Panics if any component of v is zero.
func InverseScalingMat(v Vec) Mat {
	n := len(v)
	m := NewMat(n, n)
	for i := 0; i < n; i++ {
		if v[i] == 0 {
			chk.Panic("ten.InverseScalingMat: zero component at index %d", i)
		}
		m[i][i] = 1 / v[i]
	}
	return m
}

// RotationMat3 returns the 3x3 roll-pitch-yaw rotation matrix Rx(roll) *
// Ry(pitch) * Rz(yaw), angles in radians.
func RotationMat3(roll, pitch, yaw float64) Mat {
	sx, cx := math.Sincos(roll)
	sy, cy := math.Sincos(pitch)
	sz, cz := math.Sincos(yaw)
	rx := Mat{
		{1, 0, 0},
		{0, cx, -sx},
		{0, sx, cx},
	}
	ry := Mat{
		{cy, 0, sy},
		{0, 1, 0},
		{-sy, 0, cy},
	}
	rz := Mat{
		{cz, -sz, 0},
		{sz, cz, 0},
		{0, 0, 1},
	}
	return rx.MulMat(ry).MulMat(rz)
}

// InverseRotationMat3 returns the inverse (transpose) of RotationMat3(roll,
// pitch, yaw).
func InverseRotationMat3(roll, pitch, yaw float64) Mat {
	return RotationMat3(roll, pitch, yaw).Transpose()
}

func (m Mat) checkShape(r, c int, op string) {
	if m.Rows() != r || m.Cols() != c {
		chk.Panic("ten.Mat.%s: shape mismatch, have %dx%d want %dx%d", op, m.Rows(), m.Cols(), r, c)
	}
}

// MulVec returns m*v (matrix-vector product).
func (m Mat) MulVec(v Vec) Vec {
	if m.Cols() != len(v) {
		chk.Panic("ten.Mat.MulVec: shape mismatch, matrix is %dx%d, vector has length %d", m.Rows(), m.Cols(), len(v))
	}
	r := make(Vec, m.Rows())
	for i := range m {
		var s float64
		row := m[i]
		for j, x := range row {
			s += x * v[j]
		}
		r[i] = s
	}
	return r
}

// VecMulMat returns v*m (row-vector times matrix).
func VecMulMat(v Vec, m Mat) Vec {
	if m.Rows() != len(v) {
		chk.Panic("ten.VecMulMat: shape mismatch, vector has length %d, matrix is %dx%d", len(v), m.Rows(), m.Cols())
	}
	c := m.Cols()
	r := make(Vec, c)
	for j := 0; j < c; j++ {
		var s float64
		for i := 0; i < m.Rows(); i++ {
			s += v[i] * m[i][j]
		}
		r[j] = s
	}
	return r
}

// MulMat returns m*other (shape-composing matrix product): an (r x k)
// matrix times a (k x c) matrix yields an (r x c) matrix.
func (m Mat) MulMat(other Mat) Mat {
	if m.Cols() != other.Rows() {
		chk.Panic("ten.Mat.MulMat: shape mismatch, %dx%d times %dx%d", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	r := NewMat(m.Rows(), other.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < other.Cols(); j++ {
			var s float64
			for k := 0; k < m.Cols(); k++ {
				s += m[i][k] * other[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Scale returns s*m elementwise.
func (m Mat) Scale(s float64) Mat {
	r := NewMat(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			r[i][j] = s * m[i][j]
		}
	}
	return r
}

// Add returns m+other elementwise.
func (m Mat) Add(other Mat) Mat {
	m.checkShape(other.Rows(), other.Cols(), "Add")
	r := NewMat(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			r[i][j] = m[i][j] + other[i][j]
		}
	}
	return r
}

// Transpose returns the transpose of m.
func (m Mat) Transpose() Mat {
	r := NewMat(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// Inverse returns the inverse of a square matrix via Gauss-Jordan
// elimination with partial pivoting. This is the one dense-linear-algebra
// primitive hand-rolled instead of reached for from gosl/la: metric
// inversion for Jacobian pseudo-inverses (needed for the J*(J^-1*x)==x
// round-trip invariant) must stay transparent and
// dependency-free at 3x3/4x4 scale rather than go through la's
// solver-oriented, larger-system-focused API.
func (m Mat) Inverse() (Mat, error) {
	n := m.Rows()
	if m.Cols() != n {
		chk.Panic("ten.Mat.Inverse: matrix is %dx%d, must be square", m.Rows(), m.Cols())
	}
	a := m.Clone()
	inv := IdentityMat(n)
	for col := 0; col < n; col++ {
		piv := col
		best := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r][col]); v > best {
				piv, best = r, v
			}
		}
		if best == 0 {
			return nil, chk.Err("ten.Mat.Inverse: singular matrix (column %d)", col)
		}
		if piv != col {
			a[col], a[piv] = a[piv], a[col]
			inv[col], inv[piv] = inv[piv], inv[col]
		}
		pivotVal := a[col][col]
		for j := 0; j < n; j++ {
			a[col][j] /= pivotVal
			inv[col][j] /= pivotVal
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[r][j] -= factor * a[col][j]
				inv[r][j] -= factor * inv[col][j]
			}
		}
	}
	return inv, nil
}
