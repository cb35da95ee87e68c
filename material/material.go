// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the concrete Material kinds:
// Emitter, Diffuse, Metal, Dielectric and Isotropic, all operating in the
// 3D local orthonormal frame package hit's Record carries.
package material

import (
	"math"

	"github.com/dpedroso/geotrace/hit"
	"github.com/dpedroso/geotrace/ten"
	"github.com/dpedroso/geotrace/texture"
)

func textureAt(tex texture.Texture, rec *hit.Record) texture.Texture {
	if tex == nil {
		return texture.Missing
	}
	return tex
}

// nearZeroEpsilon is the threshold below which a candidate scatter direction
// is treated as degenerate (the Diffuse fallback).
const nearZeroEpsilon = 1e-8

func nearZero(v ten.Vec) bool {
	for _, x := range v {
		if math.Abs(x) > nearZeroEpsilon {
			return false
		}
	}
	return true
}

// Emitter radiates its texture's color and never scatters.
type Emitter struct {
	Texture texture.Texture
}

func (m Emitter) Scatter(rec *hit.Record, rng hit.Random) hit.ScatterResult {
	tex := textureAt(m.Texture, rec)
	c := tex.Value(rec.U, rec.V, rec.Position)
	return hit.ScatterResult{Emitted: hit.Emission{Present: true, RGB: c.Vec()}}
}

// Diffuse is a Lambertian reflector.
type Diffuse struct {
	Texture texture.Texture
}

func (m Diffuse) Scatter(rec *hit.Record, rng hit.Random) hit.ScatterResult {
	dir := rec.Normal.Add(rng.UnitVec(3))
	if nearZero(dir) {
		dir = rec.Normal
	}
	tex := textureAt(m.Texture, rec)
	c := tex.Value(rec.U, rec.V, rec.Position)
	return hit.ScatterResult{Scattered: true, Direction: dir.Unit(), Attenuation: c.Vec()}
}

// Metal is a fuzzy specular reflector.
type Metal struct {
	Texture   texture.Texture
	Roughness float64
}

func reflect(incoming, normal ten.Vec) ten.Vec {
	return incoming.Sub(normal.Scale(2 * incoming.Dot(normal)))
}

func (m Metal) Scatter(rec *hit.Record, rng hit.Random) hit.ScatterResult {
	reflected := reflect(rec.RayDirection, rec.Normal)
	dir := reflected.Unit().Add(rng.VecInsideUnitSphere(3).Scale(m.Roughness))
	tex := textureAt(m.Texture, rec)
	c := tex.Value(rec.U, rec.V, rec.Position)
	if dir.Dot(rec.Normal) <= 0 {
		// The fuzz pushed the reflection below the surface; absorb instead of
		// scattering instead (Metal has no transmission).
		return hit.ScatterResult{}
	}
	return hit.ScatterResult{Scattered: true, Direction: dir.Unit(), Attenuation: c.Vec()}
}

// Dielectric is a refractive material (glass, water) with Fresnel
// reflectance via the Schlick approximation.
type Dielectric struct {
	IndexOfRefraction float64
}

func refract(incoming, normal ten.Vec, etaRatio float64) (ten.Vec, bool) {
	cosTheta := math.Min(incoming.Neg().Dot(normal), 1)
	sinTheta2 := 1 - cosTheta*cosTheta
	if etaRatio*etaRatio*sinTheta2 > 1 {
		return nil, false
	}
	perp := incoming.Add(normal.Scale(cosTheta)).Scale(etaRatio)
	parallel := normal.Scale(-math.Sqrt(math.Abs(1 - perp.LengthSquared())))
	return perp.Add(parallel), true
}

func schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

func (m Dielectric) Scatter(rec *hit.Record, rng hit.Random) hit.ScatterResult {
	etaRatio := m.IndexOfRefraction
	if rec.FrontFace {
		etaRatio = 1 / m.IndexOfRefraction
	}
	unitDir := rec.RayDirection.Unit()
	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal), 1)

	refracted, ok := refract(unitDir, rec.Normal, etaRatio)
	reflectProb := 1.0
	if ok {
		reflectProb = schlick(cosTheta, etaRatio)
	}
	var dir ten.Vec
	if !ok || reflectProb > rng.Float64(0, 1) {
		dir = reflect(unitDir, rec.Normal)
	} else {
		dir = refracted
	}
	return hit.ScatterResult{Scattered: true, Direction: dir.Unit(), Attenuation: ten.VecFrom(1, 1, 1)}
}

// Isotropic scatters uniformly in all directions, for Mist volumes.
type Isotropic struct {
	Texture texture.Texture
}

func (m Isotropic) Scatter(rec *hit.Record, rng hit.Random) hit.ScatterResult {
	tex := textureAt(m.Texture, rec)
	c := tex.Value(rec.U, rec.V, rec.Position)
	return hit.ScatterResult{Scattered: true, Direction: rng.VecInsideUnitSphere(3).Unit(), Attenuation: c.Vec()}
}

var (
	_ hit.Scatterer = Emitter{}
	_ hit.Scatterer = Diffuse{}
	_ hit.Scatterer = Metal{}
	_ hit.Scatterer = Dielectric{}
	_ hit.Scatterer = Isotropic{}
)
