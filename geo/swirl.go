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

// farFromOriginFactor sets the treat_as_infinite_segment threshold used by
// the curved geometries below, in multiples of their characteristic length
// scale: far enough out that the coordinate distortion is numerically flat.
const farFromOriginFactor = 200

// NewSwirl returns a 3D geometry that twists flat space around the z-axis by
// an angle that decays with cylindrical radius, distorting otherwise
// straight light paths into swirling arcs.
func NewSwirl(strength float64, p rk.Params) (CurvedManifold, error) {
	if err := p.Validate(); err != nil {
		return CurvedManifold{}, err
	}
	if math.IsNaN(strength) || math.IsInf(strength, 0) {
		return CurvedManifold{}, chk.Err("geo.NewSwirl: strength is not finite: %v", strength)
	}
	embed := func(q ten.Vec) ten.Vec {
		x, y, z := q[0], q[1], q[2]
		rho := math.Hypot(x, y)
		theta := strength / (1 + rho)
		s, c := math.Sincos(theta)
		return ten.VecFrom(x*c-y*s, x*s+y*c, z)
	}
	metric := func(q ten.Vec) ten.Mat { return MetricFromEmbedding(embed, q) }
	infinite := func(q, v ten.Vec) bool {
		rho := math.Hypot(q[0], q[1])
		return rho > farFromOriginFactor*(1+math.Abs(strength))
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
