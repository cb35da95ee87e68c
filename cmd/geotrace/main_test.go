// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func defaultRKFlags(c config) config {
	c.rayInitialStepSize = 1e-2
	c.rayErrorAbs = 1e-8
	c.rayErrorRel = 1e-8
	c.rayMaxLength = 1e3
	c.raySegmentLengthFactor = 1.01
	return c
}

func TestBuildGeometryEuclidean(t *testing.T) {
	g, err := buildGeometry(defaultRKFlags(config{geometryName: "euclidean"}))
	if err != nil {
		t.Fatalf("buildGeometry: %v", err)
	}
	if g.Dim() != 3 {
		t.Fatalf("Dim() = %d, want 3", g.Dim())
	}
}

func TestBuildGeometryUnknown(t *testing.T) {
	if _, err := buildGeometry(defaultRKFlags(config{geometryName: "nonsense"})); err == nil {
		t.Fatal("expected an error for an unknown geometry name")
	}
}

func TestBuildSceneUnknown(t *testing.T) {
	if _, _, err := buildScene(config{scene: "nonsense"}); err == nil {
		t.Fatal("expected an error for an unknown scene name")
	}
}

func TestRunEndToEndSmokeTest(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "smoke")

	err := run(defaultRKFlags(config{
		out:              out,
		resolutionFactor: 0.02, // 8x4 canvas, kept tiny for test speed
		samples:          1,
		rayDepth:         4,
		gamma:            2.2,
		shutterMode:      "global",
		scene:            "randomspheres",
		sphereCount:      5,
		geometryName:     "euclidean",
	}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, ext := range []string{".ppm", ".pfm"} {
		if _, err := os.Stat(out + ext); err != nil {
			t.Fatalf("expected %s to exist: %v", out+ext, err)
		}
	}
}

func TestRunRejectsUnknownShutterMode(t *testing.T) {
	dir := t.TempDir()
	err := run(defaultRKFlags(config{
		out:              filepath.Join(dir, "out"),
		resolutionFactor: 0.02,
		samples:          1,
		rayDepth:         1,
		gamma:            2.2,
		shutterMode:      "nonsense",
		scene:            "randomspheres",
		sphereCount:      1,
		geometryName:     "euclidean",
	}))
	if err == nil {
		t.Fatal("expected an error for an unknown shutter mode")
	}
}
