// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package id implements Identifier<T>: a string slug uniquely owned in a
// per-type, process-wide registry. Identifiers exist for logging and
// debugging only — nothing in the render path depends on them
// being present.
package id

import (
	"fmt"
	"sync"
)

// registry holds the slugs currently in use for one type tag.
type registry struct {
	mu   sync.Mutex
	used map[string]struct{}
}

var registries sync.Map // map[string]*registry, keyed by type tag

func registryFor(tag string) *registry {
	v, _ := registries.LoadOrStore(tag, &registry{used: make(map[string]struct{})})
	return v.(*registry)
}

// Identifier is a unique slug owned in the registry named by Tag. The zero
// value is not a valid Identifier; use New.
type Identifier struct {
	tag  string
	slug string
}

// New acquires a fresh identifier in the registry for tag, renaming the
// requested slug to the next free "_k" suffix on collision.
func New(tag, wanted string) Identifier {
	r := registryFor(tag)
	r.mu.Lock()
	defer r.mu.Unlock()
	slug := wanted
	if _, taken := r.used[slug]; taken {
		for k := 1; ; k++ {
			candidate := fmt.Sprintf("%s_%d", wanted, k)
			if _, taken := r.used[candidate]; !taken {
				slug = candidate
				break
			}
		}
	}
	r.used[slug] = struct{}{}
	return Identifier{tag: tag, slug: slug}
}

// Slug returns the identifier's current slug.
func (i Identifier) Slug() string {
	return i.slug
}

// Clone generates a fresh, independently owned identifier with the same
// base name (slugs may drift apart via the "_k" suffix rule).
func (i Identifier) Clone() Identifier {
	return New(i.tag, i.slug)
}

// Release drops i from its registry, freeing its slug for reuse. Slugs stay
// unique because the owner releases on drop; no entity or material type in
// this module holds an Identifier, so callers release their own.
func (i Identifier) Release() {
	if i.tag == "" {
		return
	}
	r := registryFor(i.tag)
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.used, i.slug)
}
