// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"math"
	"testing"
)

func TestRGB8Saturates(t *testing.T) {
	c := Color{2, -1, math.NaN()}
	r, g, b := c.RGB8()
	if r != 255 {
		t.Fatalf("expected saturation to 255, got %d", r)
	}
	if g != 0 {
		t.Fatalf("expected clamp to 0, got %d", g)
	}
	if b != 0 {
		t.Fatalf("expected NaN to map to 0, got %d", b)
	}
}

func TestGammaIdentityAtOne(t *testing.T) {
	c := Color{0.5, 0.25, 0.75}
	got := c.Gamma(1)
	if got != c {
		t.Fatalf("gamma=1 should be identity, got %v want %v", got, c)
	}
}

func TestMulAndAdd(t *testing.T) {
	a := Color{0.5, 0.5, 0.5}
	b := Color{2, 0, 1}
	if got, want := a.Mul(b), (Color{1, 0, 0.5}); got != want {
		t.Fatalf("Mul: got %v want %v", got, want)
	}
	if got, want := a.Add(b), (Color{2.5, 0.5, 1.5}); got != want {
		t.Fatalf("Add: got %v want %v", got, want)
	}
}
