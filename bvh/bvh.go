// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bvh implements a binary bounding-volume hierarchy
// over bounded entities, plus a flat list for unbounded ones. Built once per
// scene freeze (package scn), read-only and safe for concurrent queries
// thereafter.
package bvh

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/utl"

	"github.com/dpedroso/geotrace/ent"
	"github.com/dpedroso/geotrace/geo"
	"github.com/dpedroso/geotrace/hit"
)

// node is an internal or leaf node of the bounded-entity tree. A leaf has
// Entity set and Left/Right nil; an internal node has both children and no
// Entity.
type node struct {
	Bounds      ent.AABB
	Entity      ent.Entity
	Left, Right *node
}

// Tree is the built BVH: a (possibly empty) tree over bounded entities plus
// the flat list of unbounded ones.
type Tree struct {
	root      *node
	unbounded []ent.Entity
}

// Build partitions entities into bounded/unbounded,
// then recursively builds a binary tree over the bounded ones.
func Build(entities []ent.Entity) *Tree {
	var bounded []ent.Entity
	var boxes []ent.AABB
	var unbounded []ent.Entity
	for _, e := range entities {
		if box, ok := e.BoundingBox(); ok {
			bounded = append(bounded, e)
			boxes = append(boxes, box)
		} else {
			unbounded = append(unbounded, e)
		}
	}
	return &Tree{root: buildNode(bounded, boxes, 0), unbounded: unbounded}
}

func buildNode(entities []ent.Entity, boxes []ent.AABB, depth int) *node {
	switch len(entities) {
	case 0:
		return nil
	case 1:
		return &node{Bounds: boxes[0], Entity: entities[0]}
	}

	// Round-robin the split axis by depth: deterministic and cheap, standing
	// in for a random split axis, which would serve just as well.
	axis := depth % len(boxes[0].Min)
	idx := utl.IntRange(len(entities))
	sort.Slice(idx, func(a, b int) bool {
		return boxes[idx[a]].Min[axis] < boxes[idx[b]].Min[axis]
	})

	mid := len(idx) / 2
	leftEntities := make([]ent.Entity, mid)
	leftBoxes := make([]ent.AABB, mid)
	rightEntities := make([]ent.Entity, len(idx)-mid)
	rightBoxes := make([]ent.AABB, len(idx)-mid)
	for i, id := range idx[:mid] {
		leftEntities[i] = entities[id]
		leftBoxes[i] = boxes[id]
	}
	for i, id := range idx[mid:] {
		rightEntities[i] = entities[id]
		rightBoxes[i] = boxes[id]
	}

	left := buildNode(leftEntities, leftBoxes, depth+1)
	right := buildNode(rightEntities, rightBoxes, depth+1)
	return &node{Bounds: ent.Surrounding(left.Bounds, right.Bounds), Left: left, Right: right}
}

// HitRecord walks the tree, then linearly checks the
// unbounded entities, keeping the closest hit by t throughout.
func (tr *Tree) HitRecord(geometry geo.Manifold, seg geo.RaySegment, tMin float64, rng hit.Random) (hit.Record, bool) {
	tMax := seg.TMax
	if math.IsNaN(tMax) {
		tMax = math.Inf(1)
	}

	best := tMax
	var bestRec hit.Record
	found := false

	if rec, ok := hitNode(tr.root, geometry, seg, tMin, best, rng); ok {
		best = rec.T
		bestRec = rec
		found = true
	}
	for _, e := range tr.unbounded {
		if rec, ok := e.HitRecord(geometry, seg, tMin, best, rng); ok {
			best = rec.T
			bestRec = rec
			found = true
		}
	}
	return bestRec, found
}

// hitNode recurses into both children unconditionally: recursing into left
// twice and never into right would silently miss every right-subtree hit.
func hitNode(n *node, geometry geo.Manifold, seg geo.RaySegment, tMin, tMax float64, rng hit.Random) (hit.Record, bool) {
	if n == nil {
		return hit.Record{}, false
	}
	if !n.Bounds.Hit(seg, tMin, tMax) {
		return hit.Record{}, false
	}

	best := tMax
	var bestRec hit.Record
	found := false

	if n.Entity != nil {
		if rec, ok := n.Entity.HitRecord(geometry, seg, tMin, best, rng); ok {
			best = rec.T
			bestRec = rec
			found = true
		}
	}
	if rec, ok := hitNode(n.Left, geometry, seg, tMin, best, rng); ok {
		best = rec.T
		bestRec = rec
		found = true
	}
	if rec, ok := hitNode(n.Right, geometry, seg, tMin, best, rng); ok {
		best = rec.T
		bestRec = rec
		found = true
	}
	return bestRec, found
}
