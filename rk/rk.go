// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rk implements the geodesic ray integrator: an
// adaptive embedded Runge-Kutta scheme over the phase-space ODE
//
//	dx/dLambda  = xdot
//	dxdot/dLambda = -Gamma^2(x)[xdot, xdot]
//
// producing a lazy, monotonically increasing sequence of straight-line
// segments that piecewise approximate the true geodesic.
//
// The stepper itself is gosl/ode.Solver driven with method "Dopri5"
// (Dormand-Prince 4(5)), following the Init/SetTol/Solve call shape used in
// mdl/retention/model.go and ana/colpresfluid.go. gosl/ode.Solver.Solve
// integrates to a target parameter in one blocking call; a ray needs a
// stepwise, lazy sequence instead. The two are reconciled by running Solve
// inside a producer goroutine and repurposing its per-accepted-step "out"
// callback to emit one Segment per accepted step onto a channel that
// Stream.Next drains — a Go-native generator rather than a time-iterator.
package rk

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"

	"github.com/dpedroso/geotrace/ten"
)

// ChristoffelFunc evaluates Gamma^i_{jk} at a manifold point p.
type ChristoffelFunc func(p ten.Vec) ten.Ten

// InfiniteTestFunc reports whether (p, v) lies in a region the geometry
// treats as effectively flat.
type InfiniteTestFunc func(p, v ten.Vec) bool

// Params configures the adaptive stepper, one set per geometry instance
// one per geometry instance.
type Params struct {
	InitialStep         float64
	ErrorAbs            float64
	ErrorRel            float64
	MaxLength           float64
	SegmentLengthFactor float64 // >= 1; slightly over 1 avoids banding at segment seams
}

// Validate checks the stepper configuration's invariants:
// stepper parameters must be finite and positive, and the segment length
// factor must be at least 1.
func (p Params) Validate() error {
	vals := map[string]float64{
		"InitialStep": p.InitialStep,
		"ErrorAbs":    p.ErrorAbs,
		"ErrorRel":    p.ErrorRel,
		"MaxLength":   p.MaxLength,
	}
	for name, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("rk.Params: %s is not finite: %v", name, v)
		}
		if v <= 0 {
			return chk.Err("rk.Params: %s must be positive, got %v", name, v)
		}
	}
	if p.SegmentLengthFactor < 1 {
		return chk.Err("rk.Params: SegmentLengthFactor must be >= 1, got %v", p.SegmentLengthFactor)
	}
	return nil
}

// Segment is one straight-line piece of a geodesic, covering integration
// parameter span DeltaT starting at Start with (constant) Direction.
type Segment struct {
	Start     ten.Vec
	Direction ten.Vec
	DeltaT    float64
}

// Stream is a lazy, monotonically increasing sequence of Segments. It is not
// safe for concurrent use by more than one goroutine.
type Stream struct {
	segs <-chan Segment
	errs <-chan error
	stop chan<- struct{}
}

// NewStream starts integrating the geodesic ODE from (x0, v0) and returns a
// Stream that yields accepted-step segments lazily, one per Next call.
func NewStream(n int, x0, v0 ten.Vec, christoffel ChristoffelFunc, infinite InfiniteTestFunc, p Params) *Stream {
	segs := make(chan Segment)
	errs := make(chan error, 1)
	stop := make(chan struct{}, 1)
	s := &Stream{segs: segs, errs: errs, stop: stop}
	go runStream(n, x0, v0, christoffel, infinite, p, segs, errs, stop)
	return s
}

// Next blocks until the next accepted segment is available, or the ray
// terminates (numerical abort, max length reached, or a single infinite
// segment already delivered). ok is false exactly when None would be
// returned.
func (s *Stream) Next() (Segment, bool) {
	seg, ok := <-s.segs
	return seg, ok
}

// Close abandons the stream; the producer goroutine exits on its next
// blocking send. Safe to call multiple times.
func (s *Stream) Close() {
	select {
	case s.stop <- struct{}{}:
	default:
	}
}

// Err returns the numerical failure that ended the stream, if any. It only
// ever returns non-nil after Next has returned ok=false; this is a
// recoverable condition, not a propagated error. Package geo's curved rays
// do not read it: to the renderer an aborted ray simply ends.
func (s *Stream) Err() error {
	select {
	case err := <-s.errs:
		return err
	default:
		return nil
	}
}

func runStream(n int, x0, v0 ten.Vec, christoffel ChristoffelFunc, infinite InfiniteTestFunc, p Params, segs chan<- Segment, errs chan<- error, stop <-chan struct{}) {
	defer close(segs)

	send := func(seg Segment) bool {
		select {
		case segs <- seg:
			return true
		case <-stop:
			return false
		}
	}

	if infinite(x0, v0) {
		send(Segment{Start: x0, Direction: v0, DeltaT: math.Inf(1)})
		return
	}
	if !x0.IsFinite() || !v0.IsFinite() || v0.LengthSquared() == 0 {
		return
	}

	// Phase space Phi = (x, xdot) in R^(2n).
	y := ten.OuterSum(x0, v0)

	fcn := func(f []float64, dLambda, lambda float64, y []float64) error {
		x := ten.Vec(y[:n])
		xdot := ten.Vec(y[n:])
		if !x.IsFinite() || !xdot.IsFinite() {
			return chk.Err("rk: non-finite phase state at lambda=%v", lambda)
		}
		gam := christoffel(x)
		acc := gam.DoubleContract(xdot)
		for i := 0; i < n; i++ {
			f[i] = xdot[i]
			f[n+i] = -acc[i]
		}
		return nil
	}

	lastLambda := 0.0
	lastStart := x0.Clone()
	lastDir := v0.Clone()

	const (
		reasonNone = iota
		reasonConsumerClosed
		reasonEnteredInfinite
	)
	reason := reasonNone

	out := func(first bool, dLambda, lambda float64, yAtStep []float64) error {
		if first {
			return nil
		}
		deltaT := (lambda - lastLambda) * p.SegmentLengthFactor
		seg := Segment{Start: lastStart, Direction: lastDir, DeltaT: deltaT}
		if !send(seg) {
			reason = reasonConsumerClosed
			return chk.Err("rk: stream closed by consumer")
		}
		lastLambda = lambda
		lastStart = ten.Vec(yAtStep[:n]).Clone()
		lastDir = ten.Vec(yAtStep[n:]).Clone()
		if infinite(lastStart, lastDir) {
			reason = reasonEnteredInfinite
			return chk.Err("rk: entered infinite-segment region")
		}
		return nil
	}

	var sol ode.Solver
	sol.Init("Dopri5", 2*n, fcn, nil, nil, out)
	sol.SetTol(p.ErrorAbs, p.ErrorRel)
	sol.Distr = false

	err := sol.Solve(y, 0, p.MaxLength, p.InitialStep, false)
	switch reason {
	case reasonConsumerClosed:
		return
	case reasonEnteredInfinite:
		send(Segment{Start: lastStart, Direction: lastDir, DeltaT: math.Inf(1)})
		return
	}
	if err != nil {
		errs <- err
		return
	}
	// Solve ran to MaxLength without the geometry ever declaring the ray
	// effectively flat: the ray simply ends.
}
