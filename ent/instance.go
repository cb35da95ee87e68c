// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
	"github.com/dpedroso/geotrace/ten"
)

// Instance is the (translation, scale, inner_entity) wrapper: it
// transforms an incoming ray into the inner entity's local frame, delegates,
// then transforms the result back. Rotation is supported for the 3D flat
// case the spec calls out explicitly; for curved geometries only
// translation+scale are meaningful, since the inner entity's local point
// feeds the same geometry's (position-dependent) metric and Jacobians, an
// approximation that is exact only where those are position-independent.
type Instance struct {
	Translation ten.Vec
	Scale       ten.Vec // per-axis; nil means no scaling
	Rotation    ten.Mat // 3x3; nil means no rotation
	Inner       Entity
}

func (in Instance) invScale(n int) ten.Vec {
	if in.Scale == nil {
		v := ten.NewVec(n)
		for i := range v {
			v[i] = 1
		}
		return v
	}
	v := ten.NewVec(n)
	for i := range v {
		v[i] = 1 / in.Scale[i]
	}
	return v
}

func elementwiseMul(a, b ten.Vec) ten.Vec {
	r := ten.NewVec(len(a))
	for i := range a {
		r[i] = a[i] * b[i]
	}
	return r
}

func (in Instance) toLocal(v ten.Vec, n int, isDirection bool) ten.Vec {
	w := v
	if !isDirection {
		w = w.Sub(in.Translation)
	}
	if in.Rotation != nil {
		w = in.Rotation.Transpose().MulVec(w)
	}
	return elementwiseMul(in.invScale(n), w)
}

func (in Instance) toWorldPoint(local ten.Vec) ten.Vec {
	w := local
	if in.Scale != nil {
		w = elementwiseMul(in.Scale, w)
	}
	if in.Rotation != nil {
		w = in.Rotation.MulVec(w)
	}
	return w.Add(in.Translation)
}

// toWorldNormal applies the inverse-transpose of the (rotation, scale)
// linear map, which for a diagonal scale matrix is (invScale, rotation).
func (in Instance) toWorldNormal(local ten.Vec) ten.Vec {
	w := elementwiseMul(in.invScale(len(local)), local)
	if in.Rotation != nil {
		w = in.Rotation.MulVec(w)
	}
	return w.Unit()
}

func (in Instance) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool) {
	n := len(seg.Start)
	localSeg := geo.RaySegment{
		Start:     in.toLocal(seg.Start, n, false),
		Direction: in.toLocal(seg.Direction, n, true),
		TMax:      seg.TMax,
	}
	rec, ok := in.Inner.HitRecord(geometry, localSeg, tMin, tMax, rng)
	if !ok {
		return hit.Record{}, false
	}
	rec.Position = in.toWorldPoint(rec.Position)
	rec.Normal = in.toWorldNormal(rec.Normal)
	return rec, true
}

func (in Instance) BoundingBox() (AABB, bool) {
	box, ok := in.Inner.BoundingBox()
	if !ok {
		return AABB{}, false
	}
	min := in.toWorldPoint(box.Min)
	max := in.toWorldPoint(box.Max)
	return NewAABB(min, max), true
}
