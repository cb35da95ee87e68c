// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "github.com/dpedroso/geotrace/ten"

const embeddingFiniteDiffStep = 1e-6

// MetricFromEmbedding returns the pullback of the flat Euclidean metric
// under a coordinate distortion mapFn: R^n -> R^n, g(p) = J(p)^T J(p), with
// J computed by central differences. Swirl and TwistedOrb below describe
// their curvature this way rather than by hand-deriving a metric tensor
// directly: both motivate their geometry as a distortion applied to
// otherwise flat space.
func MetricFromEmbedding(mapFn func(ten.Vec) ten.Vec, p ten.Vec) ten.Mat {
	n := len(p)
	h := embeddingFiniteDiffStep
	jac := ten.NewMat(n, n)
	for col := 0; col < n; col++ {
		pPlus := p.Clone()
		pPlus[col] += h
		pMinus := p.Clone()
		pMinus[col] -= h
		diff := mapFn(pPlus).Sub(mapFn(pMinus)).Scale(1 / (2 * h))
		for row := 0; row < n; row++ {
			jac[row][col] = diff[row]
		}
	}
	return jac.Transpose().MulMat(jac)
}
