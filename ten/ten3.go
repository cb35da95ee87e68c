// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import "github.com/cpmech/gosl/chk"

// Ten is the one rank-3 shape this raytracer needs: an N x N x N tensor
// representing a Christoffel symbol of the second kind, Gamma^i_{jk}. Ten[i]
// is the matrix Gamma^i_{..}; Ten[i][j][k] is the scalar component.
type Ten []Mat

// NewTen returns a zero n x n x n tensor.
func NewTen(n int) Ten {
	t := make(Ten, n)
	for i := range t {
		t[i] = NewMat(n, n)
	}
	return t
}

// Dim returns n for an n x n x n tensor.
func (t Ten) Dim() int { return len(t) }

func (t Ten) checkSquare(op string) {
	n := len(t)
	for i, m := range t {
		if m.Rows() != n || m.Cols() != n {
			chk.Panic("ten.Ten.%s: slice %d has shape %dx%d, want %dx%d", op, i, m.Rows(), m.Cols(), n, n)
		}
	}
}

// Contract1 contracts t with v along its first lower index j:
// M^i_k = sum_j t[i][j][k] * v[j]. Returns an N x N matrix.
func (t Ten) Contract1(v Vec) Mat {
	t.checkSquare("Contract1")
	n := t.Dim()
	if len(v) != n {
		chk.Panic("ten.Ten.Contract1: vector length %d does not match tensor dimension %d", len(v), n)
	}
	r := NewMat(n, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			var s float64
			for j := 0; j < n; j++ {
				s += t[i][j][k] * v[j]
			}
			r[i][k] = s
		}
	}
	return r
}

// Contract2 contracts t with v along its second lower index k:
// M^i_j = sum_k t[i][j][k] * v[k]. Returns an N x N matrix.
func (t Ten) Contract2(v Vec) Mat {
	t.checkSquare("Contract2")
	n := t.Dim()
	if len(v) != n {
		chk.Panic("ten.Ten.Contract2: vector length %d does not match tensor dimension %d", len(v), n)
	}
	r := NewMat(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += t[i][j][k] * v[k]
			}
			r[i][j] = s
		}
	}
	return r
}

// DoubleContract contracts t with v along both lower indices:
// w^i = sum_{j,k} t[i][j][k] * v[j] * v[k].
//
// This is exactly the right-hand side of the geodesic equation,
// Gamma^i_{jk}(x) xdot^j xdot^k, used by package rk.
func (t Ten) DoubleContract(v Vec) Vec {
	t.checkSquare("DoubleContract")
	n := t.Dim()
	if len(v) != n {
		chk.Panic("ten.Ten.DoubleContract: vector length %d does not match tensor dimension %d", len(v), n)
	}
	w := NewVec(n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			vj := v[j]
			if vj == 0 {
				continue
			}
			row := t[i][j]
			for k := 0; k < n; k++ {
				s += row[k] * vj * v[k]
			}
		}
		w[i] = s
	}
	return w
}
