// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hit holds the hit Record value and the Scatterer interface shared
// between package ent (entities, which hold a Scatterer handle) and package
// material (Scatterers, whose Scatter method takes a *Record) so that
// neither package imports the other.
package hit

import "github.com/dpedroso/geotrace/ten"

// Record is the hit record: everything a material or the renderer
// needs to know about a ray/entity intersection.
type Record struct {
	Position     ten.Vec
	Normal       ten.Vec // unit, in the local orthonormal frame
	RayDirection ten.Vec // unit, in the local orthonormal frame
	T            float64
	U, V         float64
	FrontFace    bool
	Scatterer    Scatterer
	ToONB        ten.Mat // 3xN
	FromONB      ten.Mat // Nx3
}

// SetFaceNormal orients Normal against rayDirection and records whether the
// hit was on the front face (outward normal side), for a consistent
// outward-normal convention.
func (r *Record) SetFaceNormal(rayDirection, outwardNormal ten.Vec) {
	r.FrontFace = rayDirection.Dot(outwardNormal) < 0
	if r.FrontFace {
		r.Normal = outwardNormal
	} else {
		r.Normal = outwardNormal.Neg()
	}
}

// ScatterResult is what a Scatterer produces for one scattering event:
// either an emitted color, a scattered ray, or both for materials that do
// neither absorb nor scatter purely.
type ScatterResult struct {
	Emitted     Emission
	Scattered   bool
	Attenuation ten.Vec // RGB as a 3-vector, avoids an import of package color
	Direction   ten.Vec // local-frame (3D) scattered direction, unit
}

// Emission is the color a material radiates at a hit point, before any
// scattering contribution.
type Emission struct {
	Present bool
	RGB     ten.Vec // length 3
}

// Scatterer is the Material interface: given a hit and a source
// of randomness, it decides whether (and how) the ray continues.
type Scatterer interface {
	Scatter(rec *Record, rng Random) ScatterResult
}

// Random is the subset of package prng's generator a Scatterer needs,
// re-declared here to avoid importing package prng from package hit.
type Random interface {
	Float64(a, b float64) float64
	UnitVec(n int) ten.Vec
	VecInsideUnitSphere(n int) ten.Vec
	InUnitDisk() ten.Vec
}
