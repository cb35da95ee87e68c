// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the per-pixel path tracer, global
// and rolling shutter sampling, and sample accumulation into a RawImage.
package render

import (
	"math"
	"sync"

	"github.com/dpedroso/geotrace/color"
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/img"
	"github.com/dpedroso/geotrace/prng"
	"github.com/dpedroso/geotrace/scn"
	"github.com/dpedroso/geotrace/ten"
)

// ShutterMode selects how time samples are assigned to pixels.
type ShutterMode int

const (
	// GlobalShutter freezes the scene once per sample; every pixel in that
	// sample sees the same time.
	GlobalShutter ShutterMode = iota
	// RollingShutter freezes the scene once per row per sample; row j sees a
	// time offset by (j/height)*FrameExposureTime.
	RollingShutter
)

// State is passed to render callbacks after each completed sample.
type State struct {
	Sample      int // 1-based index of the sample just completed
	TotalSamples int
	Image       *img.RawImage // accumulator, not yet divided by sample count
}

// Callback is invoked with the renderer's progress; see Renderer's
// FrequentCallback and InfrequentCallback.
type Callback func(State)

// magenta is the sentinel returned for a hit whose entity carries no
// material.
var magenta = color.Color{R: 1, G: 0, B: 1}

// Renderer holds the per-render configuration.
type Renderer struct {
	Width, Height int
	Samples       int
	MaxDepth      int

	Time                  float64
	ExposureTime          float64 // global shutter: sample time spread
	FrameExposureTime     float64 // rolling shutter: spread across rows
	TotalLineExposureTime float64 // rolling shutter: per-row jitter width
	Shutter               ShutterMode

	MinimalRayLength float64
	MaximalRayLength float64

	DebugNormals        bool
	RayColorIfRayEnded  color.Color
	MissingMaterialColor color.Color

	FrequentCallback            Callback
	InfrequentCallback          Callback
	InfrequentCallbackFrequency int
}

// New returns a Renderer with the defaults a CLI would fall back to absent
// explicit flags.
func New(width, height int) Renderer {
	return Renderer{
		Width:                       width,
		Height:                      height,
		Samples:                     1,
		MaxDepth:                    8,
		ExposureTime:                0,
		FrameExposureTime:           0,
		TotalLineExposureTime:       0,
		Shutter:                     GlobalShutter,
		MinimalRayLength:            1e-4,
		MaximalRayLength:            1e6,
		RayColorIfRayEnded:          color.Black,
		MissingMaterialColor:        magenta,
		InfrequentCallbackFrequency: 1,
	}
}

// Render runs every sample of r against scene under geometry, accumulating
// into a fresh RawImage and dividing by the sample count before returning.
func (r Renderer) Render(geometry geo.Manifold, scene *scn.Scene) (*img.RawImage, error) {
	im := img.New(r.Width, r.Height)
	rng := prng.Get()
	defer prng.Put(rng)

	samples := r.Samples
	if samples <= 0 {
		samples = 1
	}

	for s := 1; s <= samples; s++ {
		var err error
		switch r.Shutter {
		case RollingShutter:
			err = r.renderRollingSample(geometry, scene, im, rng)
		default:
			err = r.renderGlobalSample(geometry, scene, im, rng)
		}
		if err != nil {
			return nil, err
		}

		state := State{Sample: s, TotalSamples: samples, Image: im}
		if r.FrequentCallback != nil {
			r.FrequentCallback(state)
		}
		freq := r.InfrequentCallbackFrequency
		if freq <= 0 {
			freq = 1
		}
		if r.InfrequentCallback != nil && s%freq == 0 {
			r.InfrequentCallback(state)
		}
	}

	im.ScaleAll(1 / float64(samples))
	return im, nil
}

// renderGlobalSample freezes the scene once at a time uniform in
// [time, time+exposure_time], then traces every row in its own goroutine
// (parallelizing over rows for the global shutter).
func (r Renderer) renderGlobalSample(geometry geo.Manifold, scene *scn.Scene, im *img.RawImage, rng *prng.Source) error {
	tau := r.Time
	if r.ExposureTime > 0 {
		tau = rng.Float64(r.Time, r.Time+r.ExposureTime)
	}
	guard, err := scene.FreezeForTime(tau)
	if err != nil {
		return err
	}
	defer guard.Close()

	var wg sync.WaitGroup
	for y := 0; y < r.Height; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			r.traceRow(geometry, guard, im, y)
		}(y)
	}
	wg.Wait()
	return nil
}

// renderRollingSample freezes the scene once per row, at a time that
// advances linearly with the row index, and parallelizes across columns
// within that single row. Rows are necessarily sequential: a FreezeGuard holds exclusive
// frozen status, so two rows cannot be frozen at different times at once.
func (r Renderer) renderRollingSample(geometry geo.Manifold, scene *scn.Scene, im *img.RawImage, rng *prng.Source) error {
	for y := 0; y < r.Height; y++ {
		frac := float64(y) / float64(r.Height)
		lo := r.Time + frac*r.FrameExposureTime
		tau := lo
		width := r.TotalLineExposureTime / float64(r.Height)
		if width > 0 {
			tau = rng.Float64(lo, lo+width)
		}

		guard, err := scene.FreezeForTime(tau)
		if err != nil {
			return err
		}
		r.traceRowParallel(geometry, guard, im, y)
		guard.Close()
	}
	return nil
}

// traceRow traces every column of row y sequentially, using a goroutine-local
// PRNG borrowed once for the whole row.
func (r Renderer) traceRow(geometry geo.Manifold, guard *scn.FreezeGuard, im *img.RawImage, y int) {
	rng := prng.Get()
	defer prng.Put(rng)
	for x := 0; x < r.Width; x++ {
		r.tracePixel(geometry, guard, im, x, y, rng)
	}
}

// traceRowParallel traces every column of row y concurrently, one goroutine
// per pixel with its own PRNG.
func (r Renderer) traceRowParallel(geometry geo.Manifold, guard *scn.FreezeGuard, im *img.RawImage, y int) {
	var wg sync.WaitGroup
	for x := 0; x < r.Width; x++ {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			rng := prng.Get()
			defer prng.Put(rng)
			r.tracePixel(geometry, guard, im, x, y, rng)
		}(x)
	}
	wg.Wait()
}

// tracePixel emits one jittered sample for pixel (x, y) and accumulates the
// resulting color.
func (r Renderer) tracePixel(geometry geo.Manifold, guard *scn.FreezeGuard, im *img.RawImage, x, y int, rng *prng.Source) {
	px := 2*(float64(x)+rng.Float64(-0.5, 0.5))/float64(r.Width) - 1
	py := 2*(float64(y)+rng.Float64(-0.5, 0.5))/float64(r.Height) - 1

	cam := guard.Camera()
	ray := cam.RayForCoords(geometry, px, py)

	seg, ok := ray.Next()
	var c color.Color
	if !ok {
		c = r.RayColorIfRayEnded
	} else {
		c = r.rayColor(guard, geometry, ray, seg, r.MaxDepth, rng)
	}
	im.AddAt(x, y, c)
}

// rayColor is the recursive path tracer: depth counts material interactions,
// not segment advances.
func (r Renderer) rayColor(guard *scn.FreezeGuard, geometry geo.Manifold, ray geo.Ray, seg geo.RaySegment, depth int, rng *prng.Source) color.Color {
	if depth == 0 {
		return r.RayColorIfRayEnded
	}

	effSeg := seg
	if math.IsNaN(effSeg.TMax) || effSeg.TMax > r.MaximalRayLength {
		effSeg.TMax = r.MaximalRayLength
	}

	rec, hitOK := guard.HitRecord(geometry, effSeg, r.MinimalRayLength, rng)
	if !hitOK {
		next, more := ray.Next()
		if !more {
			return guard.Background().Value(seg)
		}
		return r.rayColor(guard, geometry, ray, next, depth, rng)
	}

	if r.DebugNormals {
		return normalDebugColor(rec.Normal)
	}
	if rec.Scatterer == nil {
		return r.MissingMaterialColor
	}

	result := rec.Scatterer.Scatter(&rec, rng)
	if result.Emitted.Present {
		return color.FromVec(result.Emitted.RGB)
	}
	if !result.Scattered || result.Direction.LengthSquared() == 0 {
		return color.Black
	}

	attenuation := color.FromVec(result.Attenuation)
	ambientDir := rec.FromONB.MulVec(result.Direction).Unit()
	nextStart := rec.Position.Add(ambientDir.Scale(r.MinimalRayLength))
	nextRay := geometry.RayFrom(nextStart, ambientDir)

	nextSeg, more := nextRay.Next()
	if !more {
		return attenuation.Mul(r.RayColorIfRayEnded)
	}
	return attenuation.Mul(r.rayColor(guard, geometry, nextRay, nextSeg, depth-1, rng))
}

// normalDebugColor maps a unit ONB-frame normal's components from [-1,1] to
// [0,1] channels.
func normalDebugColor(n ten.Vec) color.Color {
	return color.FromVec(n.Map(func(x float64) float64 { return 0.5 * (x + 1) }))
}
