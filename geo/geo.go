// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo implements the Manifold/Geometry abstraction,
// rays as lazy sequences of straight segments, and the concrete geometries
// a renderer ships with (flat Euclidean/embedded-Euclidean/Minkowski and
// curved Swirl/TwistedOrb/Schwarzschild).
package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/geotrace/ten"
)

// RaySegment is one straight piece of a (possibly curved) ray.
type RaySegment struct {
	Start     ten.Vec
	Direction ten.Vec
	TMax      float64 // +Inf if unbounded
}

// NewRaySegment returns a RaySegment with TMax defaulted to +Inf.
func NewRaySegment(start, direction ten.Vec) RaySegment {
	return RaySegment{Start: start, Direction: direction, TMax: math.Inf(1)}
}

// At returns start + t*direction.
func (s RaySegment) At(t float64) ten.Vec {
	return s.Start.Add(s.Direction.Scale(t))
}

// Ray is a lazy sequence of RaySegments approximating a geodesic. Next
// returns ok=false exactly when the ray has ended (exceeded
// max length, numerical error, or a flat geometry's single segment already
// delivered). A Ray is not safe for concurrent use by more than one
// goroutine.
type Ray interface {
	Next() (RaySegment, bool)
}

// Manifold produces rays and exposes the geometric quantities materials and
// the renderer need at a hit point.
type Manifold interface {
	// Dim returns the ambient dimension N.
	Dim() int
	// RayFrom returns a Ray starting at start along the tangent direction
	// (normalized by the caller with respect to the local metric).
	RayFrom(start, direction ten.Vec) Ray
	// RayPassingThrough returns a Ray from start aimed (exactly, for flat
	// geometries, or approximately via a shooting solve for curved ones) so
	// that it passes through target.
	RayPassingThrough(start, target ten.Vec) Ray
	// ToONBJacobian returns the 3xN linear map from the tangent space at p
	// to the local orthonormal frame.
	ToONBJacobian(p ten.Vec) ten.Mat
	// FromONBJacobian returns the Nx3 pseudo-inverse of ToONBJacobian at p.
	FromONBJacobian(p ten.Vec) ten.Mat
	// Metric returns the NxN metric tensor g at p.
	Metric(p ten.Vec) ten.Mat
}

// singleSegmentRay is the flat-geometry Ray: one infinite segment, then done.
type singleSegmentRay struct {
	seg  RaySegment
	done bool
}

// NewSingleSegmentRay returns a Ray that yields seg once.
func NewSingleSegmentRay(seg RaySegment) Ray {
	return &singleSegmentRay{seg: seg}
}

func (r *singleSegmentRay) Next() (RaySegment, bool) {
	if r.done {
		return RaySegment{}, false
	}
	r.done = true
	return r.seg, true
}

// checkDim panics (a programmer error) if v's length is not n.
func checkDim(n int, v ten.Vec, who string) {
	if len(v) != n {
		chk.Panic("geo: %s: expected a %d-vector, got length %d", who, n, len(v))
	}
}
