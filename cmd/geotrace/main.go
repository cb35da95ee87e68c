// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geotrace renders a built-in demo scene and writes it to a PPM
// and/or PFM file. Scene file loading/saving is not supported; the scene
// itself is selected by name and built in Go.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/geotrace/examples/randomspheres"
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/img"
	"github.com/dpedroso/geotrace/render"
	"github.com/dpedroso/geotrace/rk"
	"github.com/dpedroso/geotrace/scn"
)

func main() {
	out := flag.String("o", "out", "output path, without extension")
	flag.StringVar(out, "out", "out", "output path, without extension (long form)")

	resolutionFactor := flag.Float64("resolution_factor", 1, "scales the base 400x225 canvas")
	samples := flag.Int("samples", 16, "samples per pixel")
	saveFrequency := flag.Int("save_frequency", 0, "write a checkpoint image every N samples (0 disables)")
	rayDepth := flag.Int("ray_depth", 8, "max ray depth (material interactions)")
	renderTime := flag.Float64("time", 0, "scene time at the start of the exposure")
	gamma := flag.Float64("gamma", 2.2, "PPM gamma correction")

	shutterMode := flag.String("shutter_mode", "global", "global or rolling")
	exposureTime := flag.Float64("exposure_time", 0, "global shutter: time spread across one sample")
	totalLineExposureTime := flag.Float64("total_line_exposure_time", 0, "rolling shutter: time spread within one row")
	frameExposureTime := flag.Float64("frame_exposure_time", 1, "rolling shutter: time spread across all rows")

	scene := flag.String("scene", "randomspheres", "which built-in demo scene to render")
	sphereCount := flag.Int("sphere_count", 1000, "randomspheres scene: number of spheres")

	geometryName := flag.String("geometry", "euclidean", "euclidean, swirl, twistedorb or schwarzschild")
	swirlStrength := flag.Float64("swirl_strength", 1, "swirl geometry: twist strength")
	twistedOrbStrength := flag.Float64("twistedorb_strength", 1, "twistedorb geometry: twist strength")
	twistedOrbRadius := flag.Float64("twistedorb_radius", 5, "twistedorb geometry: localization radius")
	schwarzschildRadius := flag.Float64("schwarzschild_radius", 1, "schwarzschild geometry: horizon radius")
	rayInitialStepSize := flag.Float64("ray_initial_step_size", 1e-2, "curved geometries: initial RK step")
	rayErrorAbs := flag.Float64("ray_error_abs", 1e-8, "curved geometries: absolute RK tolerance")
	rayErrorRel := flag.Float64("ray_error_rel", 1e-8, "curved geometries: relative RK tolerance")
	rayMaxLength := flag.Float64("ray_max_length", 1e3, "curved geometries: max geodesic arc length")
	raySegmentLengthFactor := flag.Float64("ray_segment_length_factor", 1.01, "curved geometries: segment overlap factor")

	flag.Parse()

	if err := run(config{
		out:                    *out,
		resolutionFactor:       *resolutionFactor,
		samples:                *samples,
		saveFrequency:          *saveFrequency,
		rayDepth:               *rayDepth,
		time:                   *renderTime,
		gamma:                  *gamma,
		shutterMode:            *shutterMode,
		exposureTime:           *exposureTime,
		totalLineExposureTime:  *totalLineExposureTime,
		frameExposureTime:      *frameExposureTime,
		scene:                  *scene,
		sphereCount:            *sphereCount,
		geometryName:           *geometryName,
		swirlStrength:          *swirlStrength,
		twistedOrbStrength:     *twistedOrbStrength,
		twistedOrbRadius:       *twistedOrbRadius,
		schwarzschildRadius:    *schwarzschildRadius,
		rayInitialStepSize:     *rayInitialStepSize,
		rayErrorAbs:            *rayErrorAbs,
		rayErrorRel:            *rayErrorRel,
		rayMaxLength:           *rayMaxLength,
		raySegmentLengthFactor: *raySegmentLengthFactor,
	}); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	out              string
	resolutionFactor float64
	samples          int
	saveFrequency    int
	rayDepth         int
	time             float64
	gamma            float64

	shutterMode           string
	exposureTime          float64
	totalLineExposureTime float64
	frameExposureTime     float64

	scene       string
	sphereCount int

	geometryName           string
	swirlStrength          float64
	twistedOrbStrength     float64
	twistedOrbRadius       float64
	schwarzschildRadius    float64
	rayInitialStepSize     float64
	rayErrorAbs            float64
	rayErrorRel            float64
	rayMaxLength           float64
	raySegmentLengthFactor float64
}

func run(c config) error {
	geometry, err := buildGeometry(c)
	if err != nil {
		return err
	}

	scene, _, err := buildScene(c)
	if err != nil {
		return err
	}

	width := int(400 * c.resolutionFactor)
	height := int(225 * c.resolutionFactor)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	r := render.New(width, height)
	r.Samples = c.samples
	r.MaxDepth = c.rayDepth
	r.Time = c.time
	r.ExposureTime = c.exposureTime
	r.TotalLineExposureTime = c.totalLineExposureTime
	r.FrameExposureTime = c.frameExposureTime
	switch c.shutterMode {
	case "global":
		r.Shutter = render.GlobalShutter
	case "rolling":
		r.Shutter = render.RollingShutter
	default:
		return chk.Err("unknown --shutter_mode %q, want global or rolling", c.shutterMode)
	}

	if c.saveFrequency > 0 {
		r.InfrequentCallbackFrequency = c.saveFrequency
		r.InfrequentCallback = func(state render.State) {
			io.Pf("> checkpoint at sample %d/%d\n", state.Sample, state.TotalSamples)
			if err := writeImage(state.Image, c.out, c.gamma); err != nil {
				io.Pfred("checkpoint write failed: %v\n", err)
			}
		}
	}
	r.FrequentCallback = func(state render.State) {
		io.Pf("> sample %d/%d done\n", state.Sample, state.TotalSamples)
	}

	io.PfWhite("geotrace: rendering %dx%d, %d samples, geometry=%s, scene=%s\n", width, height, c.samples, c.geometryName, c.scene)

	im, err := r.Render(geometry, scene)
	if err != nil {
		return err
	}
	return writeImage(im, c.out, c.gamma)
}

func buildScene(c config) (*scn.Scene, geo.Manifold, error) {
	switch c.scene {
	case "randomspheres":
		opts := randomspheres.DefaultOptions()
		opts.Count = c.sphereCount
		s, g := randomspheres.Build(opts)
		return s, g, nil
	default:
		return nil, nil, chk.Err("unknown --scene %q", c.scene)
	}
}

func buildGeometry(c config) (geo.Manifold, error) {
	params := rk.Params{
		InitialStep:         c.rayInitialStepSize,
		ErrorAbs:            c.rayErrorAbs,
		ErrorRel:            c.rayErrorRel,
		MaxLength:           c.rayMaxLength,
		SegmentLengthFactor: c.raySegmentLengthFactor,
	}

	switch c.geometryName {
	case "euclidean":
		return geo.Euclidean{}, nil
	case "swirl":
		g, err := geo.NewSwirl(c.swirlStrength, params)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "twistedorb":
		g, err := geo.NewTwistedOrb(c.twistedOrbStrength, c.twistedOrbRadius, params)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "schwarzschild":
		g, err := geo.NewSchwarzschild(c.schwarzschildRadius, params)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, chk.Err("unknown --geometry %q", c.geometryName)
	}
}

func writeImage(im *img.RawImage, outPath string, gamma float64) error {
	ppmFile, err := os.Create(outPath + ".ppm")
	if err != nil {
		return chk.Err("cannot create %s.ppm: %v", outPath, err)
	}
	defer ppmFile.Close()
	if err := img.WritePPM(ppmFile, im, gamma); err != nil {
		return chk.Err("cannot write %s.ppm: %v", outPath, err)
	}

	pfmFile, err := os.Create(outPath + ".pfm")
	if err != nil {
		return chk.Err("cannot create %s.pfm: %v", outPath, err)
	}
	defer pfmFile.Close()
	if err := img.WritePFM(pfmFile, im, 1); err != nil {
		return chk.Err("cannot write %s.pfm: %v", outPath, err)
	}

	io.Pfgreen("wrote %s.ppm and %s.pfm\n", outPath, outPath)
	return nil
}
