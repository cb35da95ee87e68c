// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scn implements Scene and its freeze guard. Freezing
// applies animators, rebuilds the BVH cache, and exposes a read-only handle;
// dropping (Close-ing) the guard unfreezes the scene.
package scn

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/geotrace/bvh"
	"github.com/dpedroso/geotrace/ent"
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
)

// Animator mutates an entity for a given time; entities without one are
// static.
type Animator func(time float64) ent.Entity

// BackgroundAnimator resolves the active background for a given time, the
// same way Animator resolves an entity. See ent.PulsingSky.
type BackgroundAnimator func(time float64) ent.Background

// entry pairs an entity with its optional animator.
type entry struct {
	entity   ent.Entity
	animator Animator
}

// Scene holds the active camera, active background and entity container
// describes above. It is not safe for concurrent mutation, and
// mutation is forbidden entirely while frozen.
type Scene struct {
	camera             *ent.Camera
	background         ent.Background
	backgroundAnimator BackgroundAnimator
	entries            []entry
	frozen             bool
}

// New returns an empty, unfrozen Scene.
func New() *Scene {
	return &Scene{}
}

// SetCamera sets the active camera. Forbidden while frozen.
func (s *Scene) SetCamera(c ent.Camera) {
	if s.frozen {
		chk.Panic("scn.Scene.SetCamera: scene is frozen")
	}
	s.camera = &c
}

// SetBackground sets the active, static background. Forbidden while frozen.
func (s *Scene) SetBackground(b ent.Background) {
	if s.frozen {
		chk.Panic("scn.Scene.SetBackground: scene is frozen")
	}
	s.background = b
	s.backgroundAnimator = nil
}

// SetAnimatedBackground sets a background resolved fresh at every freeze,
// for time-varying backdrops such as ent.PulsingSky. Forbidden while frozen.
func (s *Scene) SetAnimatedBackground(a BackgroundAnimator) {
	if s.frozen {
		chk.Panic("scn.Scene.SetAnimatedBackground: scene is frozen")
	}
	s.backgroundAnimator = a
	s.background = nil
}

// Add appends an entity, with an optional animator. Forbidden while frozen
// Scene does not implement ent.Entity, so nested scenes are
// disallowed structurally rather than by a runtime check.
func (s *Scene) Add(e ent.Entity, animator Animator) {
	if s.frozen {
		chk.Panic("scn.Scene.Add: scene is frozen")
	}
	s.entries = append(s.entries, entry{entity: e, animator: animator})
}

// Clear removes every entity. Forbidden while frozen.
func (s *Scene) Clear() {
	if s.frozen {
		chk.Panic("scn.Scene.Clear: scene is frozen")
	}
	s.entries = nil
}

// FreezeGuard is a scoped, read-only handle on a frozen Scene's BVH cache.
// Creating a second guard while one is outstanding is an error; Close
// unfreezes the scene.
type FreezeGuard struct {
	scene      *Scene
	tree       *bvh.Tree
	cam        ent.Camera
	background ent.Background
}

// FreezeForTime applies every animator, rebuilds the BVH cache, and marks
// the scene frozen. Requiring an active camera at freeze time is the
// stricter of two reasonable behaviors, and the one chosen here.
func (s *Scene) FreezeForTime(time float64) (*FreezeGuard, error) {
	if s.frozen {
		chk.Panic("scn.Scene.FreezeForTime: scene is already frozen")
	}
	if s.camera == nil {
		return nil, chk.Err("scn.Scene.FreezeForTime: no active_camera set")
	}

	live := make([]ent.Entity, len(s.entries))
	for i, e := range s.entries {
		if e.animator != nil {
			live[i] = e.animator(time)
		} else {
			live[i] = e.entity
		}
	}

	cam := s.camera.SetTime(time)

	background := s.background
	if s.backgroundAnimator != nil {
		background = s.backgroundAnimator(time)
	}

	s.frozen = true

	return &FreezeGuard{scene: s, tree: bvh.Build(live), cam: cam, background: background}, nil
}

// Camera returns the frozen camera (post-animation) for this guard.
func (g *FreezeGuard) Camera() ent.Camera { return g.cam }

// Background returns the background resolved for this guard's freeze time.
func (g *FreezeGuard) Background() ent.Background { return g.background }

// HitRecord queries the BVH cache built at freeze time. It panics if called
// after Close: querying a hit without a cache is a programmer error.
func (g *FreezeGuard) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin float64, rng hit.Random) (hit.Record, bool) {
	if g.tree == nil {
		chk.Panic("scn.FreezeGuard.HitRecord: guard already closed")
	}
	return g.tree.HitRecord(geometry, seg, tMin, rng)
}

// Close unfreezes the scene, resetting frozen to false.
func (g *FreezeGuard) Close() {
	g.scene.frozen = false
	g.tree = nil
}
