// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
	"github.com/dpedroso/geotrace/ten"
)

// buildHit assembles a hit.Record from ambient-space quantities at a hit
// point, performing the manifold-to-ONB conversions:
// front_face from the metric inner product of the outward normal and the
// ray direction, then onb_normal flipped to face the incoming ray.
func buildHit(geometry geo.Manifold, point, outwardNormal, rayDirection ten.Vec, t, u, v float64, scatterer hit.Scatterer) hit.Record {
	g := geometry.Metric(point)
	gd := g.MulVec(rayDirection)
	frontFace := outwardNormal.Dot(gd) < 0

	toONB := geometry.ToONBJacobian(point)
	fromONB := geometry.FromONBJacobian(point)

	onbNormal := toONB.MulVec(outwardNormal).Unit()
	if !frontFace {
		onbNormal = onbNormal.Neg()
	}
	onbRayDir := toONB.MulVec(rayDirection).Unit()

	return hit.Record{
		Position:     point,
		Normal:       onbNormal,
		RayDirection: onbRayDir,
		T:            t,
		U:            u,
		V:            v,
		FrontFace:    frontFace,
		Scatterer:    scatterer,
		ToONB:        toONB,
		FromONB:      fromONB,
	}
}
