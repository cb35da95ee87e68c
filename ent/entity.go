// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
)

// Entity is the shape abstraction: every concrete shape implements
// HitRecord and BoundingBox. Boundedness is BoundingBox's second return.
type Entity interface {
	HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool)
	BoundingBox() (AABB, bool)
}
