// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheduler

import (
	"sync"

	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/tree"
)

// DeletionMap is written concurrently from per-file visit goroutines:
// a thread-safe id → recipe stack map, doubling as both the
// deletion-attribution and the generation-attribution table (last
// writer wins on a reused id).
type DeletionMap struct {
	mu sync.Mutex
	m  map[tree.ID]recipe.Stack
}

// NewDeletionMap returns an empty map ready for concurrent use.
func NewDeletionMap() *DeletionMap {
	return &DeletionMap{m: map[tree.ID]recipe.Stack{}}
}

// Set records that stack is responsible for id's deletion or generation.
// Last writer wins.
func (d *DeletionMap) Set(id tree.ID, stack recipe.Stack) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.m[id] = stack
}

// Get returns the stack recorded for id, if any. Implements
// result.DeletionMap.
func (d *DeletionMap) Get(id tree.ID) (recipe.Stack, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.m[id]
	return s, ok
}
