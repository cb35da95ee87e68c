// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ten implements dimension-generic tensor algebra: vectors, matrices
// and the one rank-3 tensor shape this raytracer needs (Christoffel symbols).
//
// Go has no const generics, so shapes cannot be carried in the type system
// the way a compile-time dimension parameter would. Vec/Mat/Ten are
// runtime-dimensioned slices instead, mirroring gosl/la's own slice-based
// Vector/MatAlloc convention. Shape is fixed at construction; binary
// operations (Add, Sub, Dot, Zip, MulVec, MulMat, contractions) check their
// operands' shapes on every call and chk.Panic on mismatch, standing in for
// the compile-time shape checking a const-generic representation would give.
package ten

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Vec is an N-dimensional vector over float64.
type Vec []float64

// NewVec returns a zero vector of dimension n.
func NewVec(n int) Vec {
	return make(Vec, n)
}

// VecFrom copies the given values into a new Vec.
func VecFrom(vals ...float64) Vec {
	v := make(Vec, len(vals))
	copy(v, vals)
	return v
}

// BaseVec returns the k-th standard basis vector of dimension n.
func BaseVec(n, k int) Vec {
	if k < 0 || k >= n {
		chk.Panic("BaseVec: index %d out of range for dimension %d", k, n)
	}
	v := NewVec(n)
	v[k] = 1
	return v
}

// Clone returns an independent copy of v.
func (v Vec) Clone() Vec {
	c := make(Vec, len(v))
	copy(c, v)
	return c
}

func (v Vec) checkSameDim(b Vec, op string) {
	if len(v) != len(b) {
		chk.Panic("ten.Vec.%s: dimension mismatch (%d vs %d)", op, len(v), len(b))
	}
}

// Add returns v+b.
func (v Vec) Add(b Vec) Vec {
	v.checkSameDim(b, "Add")
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] + b[i]
	}
	return r
}

// Sub returns v-b.
func (v Vec) Sub(b Vec) Vec {
	v.checkSameDim(b, "Sub")
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] - b[i]
	}
	return r
}

// Scale returns s*v.
func (v Vec) Scale(s float64) Vec {
	r := make(Vec, len(v))
	for i := range v {
		r[i] = s * v[i]
	}
	return r
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return v.Scale(-1)
}

// Dot returns the Euclidean inner product of v and b.
func (v Vec) Dot(b Vec) float64 {
	v.checkSameDim(b, "Dot")
	var s float64
	for i := range v {
		s += v[i] * b[i]
	}
	return s
}

// LengthSquared returns v.Dot(v).
func (v Vec) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean norm of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns v normalized to length 1. The result for a zero vector is
// unspecified but finite; callers must avoid normalizing the zero vector.
func (v Vec) Unit() Vec {
	l := v.Length()
	if l == 0 {
		return v.Clone()
	}
	return v.Scale(1 / l)
}

// Map applies f elementwise and returns the result.
func (v Vec) Map(f func(float64) float64) Vec {
	r := make(Vec, len(v))
	for i := range v {
		r[i] = f(v[i])
	}
	return r
}

// Zip applies f elementwise to v and b and returns the result.
func (v Vec) Zip(b Vec, f func(a, c float64) float64) Vec {
	v.checkSameDim(b, "Zip")
	r := make(Vec, len(v))
	for i := range v {
		r[i] = f(v[i], b[i])
	}
	return r
}

// IsFinite reports whether every component of v is finite (not NaN/Inf).
func (v Vec) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// ZeroVec returns a zero vector of dimension n. Thin alias kept for call
// sites that read more naturally as a builder than as NewVec.
func ZeroVec(n int) Vec {
	return NewVec(n)
}

// OuterSum concatenates u and v: (u0..u_{N-1}, v0..v_{M-1}).
func OuterSum(u, v Vec) Vec {
	r := make(Vec, len(u)+len(v))
	copy(r, u)
	copy(r[len(u):], v)
	return r
}

// Split is the inverse of OuterSum for two equal-length halves: it panics if
// w's length is not 2*n.
func Split(w Vec, n int) (Vec, Vec) {
	if len(w) != 2*n {
		chk.Panic("ten.Split: length %d is not twice the requested half-size %d", len(w), n)
	}
	a := make(Vec, n)
	b := make(Vec, n)
	copy(a, w[:n])
	copy(b, w[n:])
	return a, b
}

// Embedded pads src with zeros to produce a vector of dimension to, placing
// src's components starting at offset.
func Embedded(to, offset int, src Vec) Vec {
	if offset < 0 || offset+len(src) > to {
		chk.Panic("ten.Embedded: src of length %d at offset %d does not fit in dimension %d", len(src), offset, to)
	}
	r := make(Vec, to)
	copy(r[offset:], src)
	return r
}
