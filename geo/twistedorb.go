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

// NewTwistedOrb returns a 3D geometry that twists flat space inside a
// spherical region of the given radius, smoothly relaxing to flat space
// outside it; a localized cousin of Swirl.
func NewTwistedOrb(strength, radius float64, p rk.Params) (CurvedManifold, error) {
	if err := p.Validate(); err != nil {
		return CurvedManifold{}, err
	}
	if math.IsNaN(strength) || math.IsInf(strength, 0) {
		return CurvedManifold{}, chk.Err("geo.NewTwistedOrb: strength is not finite: %v", strength)
	}
	if !(radius > 0) {
		return CurvedManifold{}, chk.Err("geo.NewTwistedOrb: radius must be positive, got %v", radius)
	}
	embed := func(q ten.Vec) ten.Vec {
		x, y, z := q[0], q[1], q[2]
		r := q.Length()
		theta := strength * math.Exp(-(r*r)/(radius*radius))
		s, c := math.Sincos(theta)
		return ten.VecFrom(x*c-y*s, x*s+y*c, z)
	}
	metric := func(q ten.Vec) ten.Mat { return MetricFromEmbedding(embed, q) }
	infinite := func(q, v ten.Vec) bool {
		return q.Length() > farFromOriginFactor*radius
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
