// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "github.com/dpedroso/geotrace/ten"

// Euclidean is flat 3D Cartesian space: the simplest Manifold, and the
// baseline a flat-space sphere hit runs against.
type Euclidean struct{}

func (Euclidean) Dim() int { return 3 }

func (Euclidean) RayFrom(start, direction ten.Vec) Ray {
	checkDim(3, start, "Euclidean.RayFrom start")
	checkDim(3, direction, "Euclidean.RayFrom direction")
	return NewSingleSegmentRay(NewRaySegment(start, direction))
}

func (g Euclidean) RayPassingThrough(start, target ten.Vec) Ray {
	checkDim(3, start, "Euclidean.RayPassingThrough start")
	checkDim(3, target, "Euclidean.RayPassingThrough target")
	return g.RayFrom(start, target.Sub(start).Unit())
}

func (Euclidean) ToONBJacobian(p ten.Vec) ten.Mat   { return ten.IdentityMat(3) }
func (Euclidean) FromONBJacobian(p ten.Vec) ten.Mat { return ten.IdentityMat(3) }
func (Euclidean) Metric(p ten.Vec) ten.Mat          { return ten.IdentityMat(3) }

// EmbeddedEuclidean is flat N-dimensional Euclidean space whose local
// orthonormal frame is the first three ambient coordinates (3D vectors are
// used for the local orthonormal frame regardless of N).
type EmbeddedEuclidean struct {
	N int
}

func (g EmbeddedEuclidean) Dim() int { return g.N }

func (g EmbeddedEuclidean) RayFrom(start, direction ten.Vec) Ray {
	checkDim(g.N, start, "EmbeddedEuclidean.RayFrom start")
	checkDim(g.N, direction, "EmbeddedEuclidean.RayFrom direction")
	return NewSingleSegmentRay(NewRaySegment(start, direction))
}

func (g EmbeddedEuclidean) RayPassingThrough(start, target ten.Vec) Ray {
	checkDim(g.N, start, "EmbeddedEuclidean.RayPassingThrough start")
	checkDim(g.N, target, "EmbeddedEuclidean.RayPassingThrough target")
	return g.RayFrom(start, target.Sub(start).Unit())
}

// embeddingJacobian3xN returns [I_3 | 0]: the 3xN projection onto the first
// three ambient coordinates.
func embeddingJacobian3xN(n int) ten.Mat {
	m := ten.NewMat(3, n)
	for i := 0; i < 3 && i < n; i++ {
		m[i][i] = 1
	}
	return m
}

func (g EmbeddedEuclidean) ToONBJacobian(p ten.Vec) ten.Mat {
	return embeddingJacobian3xN(g.N)
}

func (g EmbeddedEuclidean) FromONBJacobian(p ten.Vec) ten.Mat {
	return embeddingJacobian3xN(g.N).Transpose()
}

func (g EmbeddedEuclidean) Metric(p ten.Vec) ten.Mat {
	return ten.IdentityMat(g.N)
}

// Minkowski is flat 4D spacetime (t,x,y,z) with signature (-1,1,1,1): flat
// but pseudo-Riemannian.
// Because the metric is constant, Christoffel symbols vanish everywhere and
// geodesics are straight lines in the ambient coordinates, exactly like the
// purely Euclidean geometries — only the metric (and hence front-face
// orientation and lengths) differs.
type Minkowski struct {
	SpeedOfLight float64
}

func (Minkowski) Dim() int { return 4 }

func (g Minkowski) RayFrom(start, direction ten.Vec) Ray {
	checkDim(4, start, "Minkowski.RayFrom start")
	checkDim(4, direction, "Minkowski.RayFrom direction")
	return NewSingleSegmentRay(NewRaySegment(start, direction))
}

func (g Minkowski) RayPassingThrough(start, target ten.Vec) Ray {
	checkDim(4, start, "Minkowski.RayPassingThrough start")
	checkDim(4, target, "Minkowski.RayPassingThrough target")
	return g.RayFrom(start, target.Sub(start).Unit())
}

// spatialEmbedding3x4 returns the 3x4 projection that drops the time
// coordinate (index 0) and keeps (x,y,z).
func spatialEmbedding3x4() ten.Mat {
	return ten.Mat{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (Minkowski) ToONBJacobian(p ten.Vec) ten.Mat   { return spatialEmbedding3x4() }
func (Minkowski) FromONBJacobian(p ten.Vec) ten.Mat { return spatialEmbedding3x4().Transpose() }

func (g Minkowski) Metric(p ten.Vec) ten.Mat {
	c := g.SpeedOfLight
	m := ten.IdentityMat(4)
	m[0][0] = -(c * c)
	return m
}
