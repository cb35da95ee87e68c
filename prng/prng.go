// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prng implements the per-goroutine pseudo-random source used by the
// renderer's path tracing and the N-dimensional rejection-sampling helpers
// built on top of it (random_vec_inside_unit_sphere, random_unit_vec,
// random_in_unit_disk).
//
// gosl/rnd exposes a single shared generator, which would need a
// mutex on the render hot path — each goroutine that calls
// render.ray_color instead owns its own *rand.Rand (math/rand/v2), obtained
// via Get and never shared across goroutines. This is the one place in the
// repo that reaches for the standard library instead of an ecosystem
// library, and it does so because the only pack library for this concern
// does not fit the concurrency model (see DESIGN.md).
package prng

import (
	"math/rand/v2"
	"sync"

	"github.com/dpedroso/geotrace/ten"
)

// Source is a goroutine-local random source. It must not be shared across
// goroutines.
type Source struct {
	r *rand.Rand
}

var pool = sync.Pool{
	New: func() any {
		return &Source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	},
}

// Get returns a Source owned by the calling goroutine for the duration of
// one pixel/sample's work. Callers should Put it back when done so the pool
// can reuse the underlying generator, but forgetting to do so only costs an
// extra allocation next time, never correctness.
func Get() *Source {
	return pool.Get().(*Source)
}

// Put returns s to the pool.
func Put(s *Source) {
	pool.Put(s)
}

// NewSeeded returns a Source seeded deterministically, for reproducible
// tests; it is not drawn from the shared pool.
func NewSeeded(seed1, seed2 uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Float64 returns a uniform sample in [a, b).
func (s *Source) Float64(a, b float64) float64 {
	return a + (b-a)*s.r.Float64()
}

// Int returns a uniform integer sample in [a, b].
func (s *Source) Int(a, b int) int {
	return a + s.r.IntN(b-a+1)
}

// VecInsideUnitSphere rejection-samples a point inside the unit n-ball,
// i.e. random_vec_inside_unit_sphere<N>.
func (s *Source) VecInsideUnitSphere(n int) ten.Vec {
	for {
		v := ten.NewVec(n)
		for i := range v {
			v[i] = s.Float64(-1, 1)
		}
		if v.LengthSquared() < 1 {
			return v
		}
	}
}

// UnitVec returns a uniformly distributed unit vector of dimension n,
// i.e. random_unit_vec<N>.
func (s *Source) UnitVec(n int) ten.Vec {
	return s.VecInsideUnitSphere(n).Unit()
}

// InUnitDisk rejection-samples a point inside the unit disk in the xy plane,
// returning a 3-vector with z=0 (random_in_unit_disk).
func (s *Source) InUnitDisk() ten.Vec {
	for {
		x := s.Float64(-1, 1)
		y := s.Float64(-1, 1)
		if x*x+y*y < 1 {
			return ten.VecFrom(x, y, 0)
		}
	}
}
