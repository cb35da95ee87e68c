// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/geotrace/rk"
	"github.com/dpedroso/geotrace/ten"
)

// NewSchwarzschild returns a 3D geometry with the Schwarzschild spatial
// metric in isotropic coordinates, g_ij = (1 + schwarzschildRadius/(4r))^4
// delta_ij, a conformally flat form. Unlike Swirl and
// TwistedOrb this metric is given directly rather than via an embedding,
// since it is not a pullback of a flat coordinate distortion.
func NewSchwarzschild(schwarzschildRadius float64, p rk.Params) (CurvedManifold, error) {
	if err := p.Validate(); err != nil {
		return CurvedManifold{}, err
	}
	if !(schwarzschildRadius >= 0) {
		return CurvedManifold{}, chk.Err("geo.NewSchwarzschild: schwarzschildRadius must be non-negative, got %v", schwarzschildRadius)
	}
	metric := func(q ten.Vec) ten.Mat {
		r := q.Length()
		if r < schwarzschildRadius/4 {
			r = schwarzschildRadius / 4
		}
		conf := 1 + schwarzschildRadius/(4*r)
		factor := conf * conf * conf * conf
		m := ten.IdentityMat(3)
		return m.Scale(factor)
	}
	infinite := func(q, v ten.Vec) bool {
		return q.Length() > farFromOriginFactor*math.Max(schwarzschildRadius, 1)
	}
	return CurvedManifold{
		N:          3,
		MetricFunc: metric,
		Infinite:   infinite,
		Params:     p,
		ToONB:      func(ten.Vec) ten.Mat { return ten.IdentityMat(3) },
		FromONB:    func(ten.Vec) ten.Mat { return ten.IdentityMat(3) },
	}, nil
}
