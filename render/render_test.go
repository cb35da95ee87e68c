// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
	"testing"

	"github.com/dpedroso/geotrace/color"
	"github.com/dpedroso/geotrace/ent"
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/img"
	"github.com/dpedroso/geotrace/material"
	"github.com/dpedroso/geotrace/prng"
	"github.com/dpedroso/geotrace/scn"
	"github.com/dpedroso/geotrace/ten"
)

func testCamera() ent.Camera {
	return ent.NewPinholeCamera(
		ten.VecFrom(0, 0, 4.9),
		ten.VecFrom(1, 0, 0),
		ten.VecFrom(0, 1, 0),
		ten.VecFrom(0, 0, 5),
	)
}

func TestRayColorZeroDepthReturnsSentinel(t *testing.T) {
	s := scn.New()
	s.SetCamera(testCamera())
	s.SetBackground(ent.ConstantBackground{Color: color.White})
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1, Scatterer: material.Diffuse{}}, nil)
	guard, err := s.FreezeForTime(0)
	if err != nil {
		t.Fatalf("FreezeForTime: %v", err)
	}
	defer guard.Close()

	r := New(1, 1)
	r.RayColorIfRayEnded = color.Color{R: 0.25}
	geometry := geo.Euclidean{}
	seg := geo.RaySegment{Start: ten.VecFrom(0, 0, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	ray := geo.NewSingleSegmentRay(seg)

	got := r.rayColor(guard, geometry, ray, seg, 0, prng.NewSeeded(1, 2))
	if got != r.RayColorIfRayEnded {
		t.Fatalf("got %+v, want %+v", got, r.RayColorIfRayEnded)
	}
}

func TestRayColorMissingMaterialIsSentinel(t *testing.T) {
	s := scn.New()
	s.SetCamera(testCamera())
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1}, nil) // no Scatterer
	guard, err := s.FreezeForTime(0)
	if err != nil {
		t.Fatalf("FreezeForTime: %v", err)
	}
	defer guard.Close()

	r := New(1, 1)
	geometry := geo.Euclidean{}
	seg := geo.RaySegment{Start: ten.VecFrom(0, 0, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	ray := geo.NewSingleSegmentRay(seg)

	got := r.rayColor(guard, geometry, ray, seg, 4, prng.NewSeeded(1, 2))
	if got != r.MissingMaterialColor {
		t.Fatalf("got %+v, want the missing-material sentinel %+v", got, r.MissingMaterialColor)
	}
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	s := scn.New()
	s.SetCamera(testCamera())
	s.SetBackground(ent.ConstantBackground{Color: color.Color{R: 0.1, G: 0.2, B: 0.3}})
	guard, err := s.FreezeForTime(0)
	if err != nil {
		t.Fatalf("FreezeForTime: %v", err)
	}
	defer guard.Close()

	r := New(1, 1)
	geometry := geo.Euclidean{}
	seg := geo.RaySegment{Start: ten.VecFrom(0, 0, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	ray := geo.NewSingleSegmentRay(seg)

	got := r.rayColor(guard, geometry, ray, seg, 4, prng.NewSeeded(1, 2))
	want := color.Color{R: 0.1, G: 0.2, B: 0.3}
	if got != want {
		t.Fatalf("got %+v, want background %+v", got, want)
	}
}

func TestRayColorEmitterReturnsEmission(t *testing.T) {
	s := scn.New()
	s.SetCamera(testCamera())
	emitColor := color.Color{R: 1, G: 1, B: 0}
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1, Scatterer: material.Emitter{Texture: constTexture{emitColor}}}, nil)
	guard, err := s.FreezeForTime(0)
	if err != nil {
		t.Fatalf("FreezeForTime: %v", err)
	}
	defer guard.Close()

	r := New(1, 1)
	geometry := geo.Euclidean{}
	seg := geo.RaySegment{Start: ten.VecFrom(0, 0, 5), Direction: ten.VecFrom(0, 0, -1), TMax: math.Inf(1)}
	ray := geo.NewSingleSegmentRay(seg)

	got := r.rayColor(guard, geometry, ray, seg, 4, prng.NewSeeded(1, 2))
	if got != emitColor {
		t.Fatalf("got %+v, want %+v", got, emitColor)
	}
}

// constTexture always returns the same color, independent of (u,v,point).
type constTexture struct{ c color.Color }

func (t constTexture) Value(u, v float64, point ten.Vec) color.Color { return t.c }

// TestRollingShutterFreezesOncePerRow exercises the rolling-shutter path
// directly against renderRollingSample: with
// total_line_exposure_time = 0 the per-row time is deterministic, row j at
// time j/H * frame_exposure_time.
func TestRollingShutterFreezesOncePerRow(t *testing.T) {
	var times []float64
	s := scn.New()
	s.SetCamera(testCamera())
	s.SetBackground(ent.ConstantBackground{Color: color.Black})
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1}, func(time float64) ent.Entity {
		times = append(times, time)
		return ent.Sphere{Center: ten.VecFrom(time, 0, 0), Radius: 1}
	})

	r := New(1, 4)
	r.Shutter = RollingShutter
	r.FrameExposureTime = 1
	r.TotalLineExposureTime = 0

	im := img.New(1, 4)
	if err := r.renderRollingSample(geo.Euclidean{}, s, im, prng.NewSeeded(1, 2)); err != nil {
		t.Fatalf("renderRollingSample: %v", err)
	}

	if len(times) != 4 {
		t.Fatalf("got %d freezes, want 4 (one per row)", len(times))
	}
	for j, tau := range times {
		want := float64(j) / 4
		if math.Abs(tau-want) > 1e-12 {
			t.Fatalf("row %d: froze at %v, want %v", j, tau, want)
		}
	}
}

// TestGlobalShutterFreezesOncePerSample checks the global-shutter counterpart:
// one freeze for the whole sample, regardless of row count.
func TestGlobalShutterFreezesOncePerSample(t *testing.T) {
	calls := 0
	s := scn.New()
	s.SetCamera(testCamera())
	s.SetBackground(ent.ConstantBackground{Color: color.Black})
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1}, func(time float64) ent.Entity {
		calls++
		return ent.Sphere{Center: ten.VecFrom(time, 0, 0), Radius: 1}
	})

	r := New(4, 4)
	r.Shutter = GlobalShutter
	r.ExposureTime = 1

	im := img.New(4, 4)
	if err := r.renderGlobalSample(geo.Euclidean{}, s, im, prng.NewSeeded(1, 2)); err != nil {
		t.Fatalf("renderGlobalSample: %v", err)
	}
	if calls != 1 {
		t.Fatalf("got %d freezes, want 1 (one per sample)", calls)
	}
}

func TestRenderProducesNoPanicSmokeTest(t *testing.T) {
	s := scn.New()
	s.SetCamera(testCamera())
	s.SetBackground(ent.ConstantBackground{Color: color.Color{R: 0.2, G: 0.2, B: 0.2}})
	s.Add(ent.Sphere{Center: ten.VecFrom(0, 0, 0), Radius: 1, Scatterer: material.Diffuse{}}, nil)

	r := New(4, 3)
	r.Samples = 2
	im, err := r.Render(geo.Euclidean{}, s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if im.Width != 4 || im.Height != 3 {
		t.Fatalf("got %dx%d, want 4x3", im.Width, im.Height)
	}
}
