// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/dpedroso/geotrace/rk"
	"github.com/dpedroso/geotrace/ten"
)

// christoffelFiniteDiffStep is the central-difference step used by
// NumericChristoffel. Curved geometries here are defined by an analytic
// metric function; rather than hand-deriving Gamma^i_{jk} symbolically for
// every geometry (a hand-coded-derivatives approach tends to run to tens of
// kilobytes of source per geometry, and is easy to get wrong), this
// raytracer computes Christoffel symbols once, generically, from any
// metric(p) via finite differences of the metric, contracted with the
// metric's inverse. Swirl,
// TwistedOrb and Schwarzschild each supply only g(p); NumericChristoffel does
// the rest.
const christoffelFiniteDiffStep = 1e-5

// NumericChristoffel computes Gamma^i_{jk}(p) = 1/2 g^{il} (d_j g_{kl} + d_k
// g_{jl} - d_l g_{jk}) from a metric function via central differences.
func NumericChristoffel(metric func(ten.Vec) ten.Mat, p ten.Vec) ten.Ten {
	n := len(p)
	h := christoffelFiniteDiffStep

	ginv, err := metric(p).Inverse()
	if err != nil {
		chk.Panic("geo.NumericChristoffel: metric is singular at %v: %v", p, err)
	}

	// dg[d] = d(metric)/d(x_d), an NxN matrix, central difference.
	dg := make([]ten.Mat, n)
	for d := 0; d < n; d++ {
		pPlus := p.Clone()
		pPlus[d] += h
		pMinus := p.Clone()
		pMinus[d] -= h
		gPlus := metric(pPlus)
		gMinus := metric(pMinus)
		dg[d] = ten.NewMat(n, n)
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				dg[d][a][b] = (gPlus[a][b] - gMinus[a][b]) / (2 * h)
			}
		}
	}

	gamma := ten.NewTen(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				var s float64
				for l := 0; l < n; l++ {
					s += ginv[i][l] * (dg[j][k][l] + dg[k][j][l] - dg[l][j][k])
				}
				gamma[i][j][k] = 0.5 * s
			}
		}
	}
	return gamma
}

// curvedRay adapts an rk.Stream to the geo.Ray interface.
type curvedRay struct {
	stream *rk.Stream
}

func (r *curvedRay) Next() (RaySegment, bool) {
	seg, ok := r.stream.Next()
	if !ok {
		return RaySegment{}, false
	}
	return RaySegment{Start: seg.Start, Direction: seg.Direction, TMax: seg.DeltaT}, true
}

// CurvedManifold is a Manifold defined purely by an analytic metric
// function, an "effectively flat" predicate, and adaptive-stepper
// parameters. Swirl, TwistedOrb and Schwarzschild below are all thin
// configurations of CurvedManifold.
type CurvedManifold struct {
	N          int
	MetricFunc func(p ten.Vec) ten.Mat
	// Infinite reports whether (p,v) is far enough from curvature that a
	// single straight segment is an adequate approximation
	// (treated as an infinite segment).
	Infinite func(p, v ten.Vec) bool
	Params   rk.Params
	// ToONB/FromONB build the local orthonormal-frame Jacobians at p; for
	// every concrete curved geometry here these are the flat embedding
	// Jacobians (the geometries distort the metric, not the frame used for
	// shading).
	ToONB   func(p ten.Vec) ten.Mat
	FromONB func(p ten.Vec) ten.Mat
}

func (g CurvedManifold) Dim() int { return g.N }

func (g CurvedManifold) christoffel(p ten.Vec) ten.Ten {
	return NumericChristoffel(g.MetricFunc, p)
}

func (g CurvedManifold) ToONBJacobian(p ten.Vec) ten.Mat {
	checkDim(g.N, p, "CurvedManifold.ToONBJacobian")
	return g.ToONB(p)
}

func (g CurvedManifold) FromONBJacobian(p ten.Vec) ten.Mat {
	checkDim(g.N, p, "CurvedManifold.FromONBJacobian")
	return g.FromONB(p)
}

func (g CurvedManifold) Metric(p ten.Vec) ten.Mat {
	checkDim(g.N, p, "CurvedManifold.Metric")
	return g.MetricFunc(p)
}

func (g CurvedManifold) RayFrom(start, direction ten.Vec) Ray {
	checkDim(g.N, start, "CurvedManifold.RayFrom start")
	checkDim(g.N, direction, "CurvedManifold.RayFrom direction")
	stream := rk.NewStream(g.N, start, direction, g.christoffel, g.Infinite, g.Params)
	return &curvedRay{stream: stream}
}

// RayPassingThrough aims a ray from start through target by a 1D shooting
// search: it rotates the initial straight-line direction within the plane
// spanned by (target-start) and a fixed perpendicular, searching for the
// angle whose geodesic passes closest to target at the integration
// parameter where it is nearest. Good enough for the radially symmetric
// geometries implemented here (Swirl, TwistedOrb, Schwarzschild); other
// curved geometries may need an analytic inverse or a different search.
func (g CurvedManifold) RayPassingThrough(start, target ten.Vec) Ray {
	checkDim(g.N, start, "CurvedManifold.RayPassingThrough start")
	checkDim(g.N, target, "CurvedManifold.RayPassingThrough target")

	toTarget := target.Sub(start)
	baseDir := toTarget.Unit()
	perp := anyPerpendicular(baseDir)

	missAtAngle := func(theta float64) float64 {
		dir := baseDir.Scale(math.Cos(theta)).Add(perp.Scale(math.Sin(theta)))
		return signedMiss(g, start, dir, target, perp)
	}

	var solver num.Brent
	solver.Init(missAtAngle, nil)
	theta, err := solver.Root(-0.5, 0.5)
	if err != nil {
		// Fall back to the naive straight aim; the renderer will still
		// produce an image, just without exact curved-aim correction.
		return g.RayFrom(start, baseDir)
	}
	dir := baseDir.Scale(math.Cos(theta)).Add(perp.Scale(math.Sin(theta)))
	return g.RayFrom(start, dir.Unit())
}

// signedMiss integrates the geodesic from (start, dir) and returns the
// signed projection onto perp of (closest point to target) - target: the
// shooting-method residual that num.Brent searches for a zero of.
func signedMiss(g CurvedManifold, start, dir, target, perp ten.Vec) float64 {
	stream := rk.NewStream(g.N, start, dir, g.christoffel, g.Infinite, g.Params)
	defer stream.Close()
	bestDist := math.Inf(1)
	var bestPoint ten.Vec
	steps := 0
	for steps < 64 {
		seg, ok := stream.Next()
		if !ok {
			break
		}
		dt := seg.DeltaT
		if math.IsInf(dt, 1) {
			dt = 1
		}
		p := seg.Start.Add(seg.Direction.Scale(dt))
		if d := p.Sub(target).Length(); d < bestDist {
			bestDist = d
			bestPoint = p
		}
		steps++
	}
	if bestPoint == nil {
		return 0
	}
	return bestPoint.Sub(target).Dot(perp)
}

// anyPerpendicular returns a unit vector orthogonal to v (v must be unit).
func anyPerpendicular(v ten.Vec) ten.Vec {
	n := len(v)
	axis := ten.BaseVec(n, 0)
	if math.Abs(v.Dot(axis)) > 0.9 {
		axis = ten.BaseVec(n, 1)
	}
	proj := v.Scale(v.Dot(axis))
	return axis.Sub(proj).Unit()
}
