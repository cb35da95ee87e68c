// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"testing"

	"github.com/dpedroso/geotrace/color"
	"github.com/dpedroso/geotrace/ten"
)

func TestConstant(t *testing.T) {
	c := Constant{Color: color.Color{R: 0.2, G: 0.3, B: 0.4}}
	got := c.Value(0, 0, ten.VecFrom(1, 2, 3))
	if got != c.Color {
		t.Fatalf("Value() = %v, want %v", got, c.Color)
	}
}

func TestSurfaceCheckerAlternates(t *testing.T) {
	chk := SurfaceChecker{Odd: color.Black, Even: color.White, Scale: 1}
	a := chk.Value(0.1, 0.1, nil)
	b := chk.Value(0.1+3.14159265/1, 0.1, nil)
	if a == b {
		t.Fatal("expected adjacent squares to differ")
	}
}

func TestMissingIsDeterministic(t *testing.T) {
	a := Missing.Value(0.3, 0.7, nil)
	b := Missing.Value(0.3, 0.7, nil)
	if a != b {
		t.Fatal("Missing texture should be deterministic given the same (u,v)")
	}
}
