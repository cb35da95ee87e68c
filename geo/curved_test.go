// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/dpedroso/geotrace/rk"
	"github.com/dpedroso/geotrace/ten"
)

func testParams() rk.Params {
	return rk.Params{
		InitialStep:         0.01,
		ErrorAbs:            1e-8,
		ErrorRel:            1e-8,
		MaxLength:           50,
		SegmentLengthFactor: 1.001,
	}
}

func TestNumericChristoffelVanishesOnFlatMetric(t *testing.T) {
	flat := func(ten.Vec) ten.Mat { return ten.IdentityMat(3) }
	gamma := NumericChristoffel(flat, ten.VecFrom(1, 2, 3))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if math.Abs(gamma[i][j][k]) > 1e-6 {
					t.Fatalf("Christoffel[%d][%d][%d] = %v, want ~0 on a flat metric", i, j, k, gamma[i][j][k])
				}
			}
		}
	}
}

func TestMetricFromEmbeddingIdentityMapIsFlat(t *testing.T) {
	identity := func(p ten.Vec) ten.Vec { return p }
	g := MetricFromEmbedding(identity, ten.VecFrom(0.3, -0.7, 1.1))
	want := ten.IdentityMat(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(g[i][j]-want[i][j]) > 1e-4 {
				t.Fatalf("g[%d][%d] = %v, want %v", i, j, g[i][j], want[i][j])
			}
		}
	}
}

func TestSwirlImplementsManifold(t *testing.T) {
	var _ Manifold = CurvedManifold{}
	g, err := NewSwirl(0.5, testParams())
	if err != nil {
		t.Fatalf("NewSwirl: %v", err)
	}
	if g.Dim() != 3 {
		t.Fatalf("Dim() = %d, want 3", g.Dim())
	}
	ray := g.RayFrom(ten.VecFrom(5, 0, 0), ten.VecFrom(0, 1, 0))
	count := 0
	for {
		_, ok := ray.Next()
		if !ok {
			break
		}
		count++
		if count > 1000 {
			t.Fatal("swirl ray did not terminate within 1000 segments")
		}
	}
	if count == 0 {
		t.Fatal("expected at least one segment from a swirl ray")
	}
}

func TestSwirlRejectsNonFiniteStrength(t *testing.T) {
	if _, err := NewSwirl(math.NaN(), testParams()); err == nil {
		t.Fatal("expected an error for NaN swirl strength")
	}
}

func TestTwistedOrbFarFromCenterIsNearlyFlat(t *testing.T) {
	g, err := NewTwistedOrb(2, 1, testParams())
	if err != nil {
		t.Fatalf("NewTwistedOrb: %v", err)
	}
	far := ten.VecFrom(1000, 0, 0)
	gamma := NumericChristoffel(g.MetricFunc, far)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if math.Abs(gamma[i][j][k]) > 1e-3 {
					t.Fatalf("far-field Christoffel[%d][%d][%d] = %v, want ~0", i, j, k, gamma[i][j][k])
				}
			}
		}
	}
}

func TestTwistedOrbRejectsNonPositiveRadius(t *testing.T) {
	if _, err := NewTwistedOrb(1, 0, testParams()); err == nil {
		t.Fatal("expected an error for zero radius")
	}
	if _, err := NewTwistedOrb(1, -1, testParams()); err == nil {
		t.Fatal("expected an error for negative radius")
	}
}

// TestSchwarzschildDeflectsLight checks that a ray
// passing near a Schwarzschild mass should end up traveling in a direction
// measurably different from its initial direction (gravitational lensing),
// while a ray passing far from the mass should barely deflect at all.
func TestSchwarzschildDeflectsLight(t *testing.T) {
	const rs = 1.0
	g, err := NewSchwarzschild(rs, testParams())
	if err != nil {
		t.Fatalf("NewSchwarzschild: %v", err)
	}

	deflection := func(impactParameter float64) float64 {
		start := ten.VecFrom(-40, impactParameter, 0)
		dir := ten.VecFrom(1, 0, 0)
		ray := g.RayFrom(start, dir)
		var first, last RaySegment
		got := false
		for {
			seg, ok := ray.Next()
			if !ok {
				break
			}
			if !got {
				first = seg
				got = true
			}
			last = seg
		}
		if !got {
			t.Fatal("expected at least one segment")
		}
		cosAngle := first.Direction.Unit().Dot(last.Direction.Unit())
		if cosAngle > 1 {
			cosAngle = 1
		}
		if cosAngle < -1 {
			cosAngle = -1
		}
		return math.Acos(cosAngle)
	}

	close := deflection(3 * rs)
	far := deflection(200 * rs)
	if !(close > far) {
		t.Fatalf("expected a closer pass (impact %v) to deflect more than a far pass (impact %v), got close=%v far=%v", 3*rs, 200*rs, close, far)
	}
}

func TestSchwarzschildRejectsNegativeRadius(t *testing.T) {
	if _, err := NewSchwarzschild(-1, testParams()); err == nil {
		t.Fatal("expected an error for a negative Schwarzschild radius")
	}
}
