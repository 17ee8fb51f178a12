// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marker defines the two well-known marker kinds the core itself
// understands: Generated (excludes a file from change reporting) and
// RecipesThatMadeChanges (the change-attribution marker).
package marker

import (
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/tree"
)

// GeneratedKind identifies the Generated marker.
const GeneratedKind tree.Kind = "Generated"

// RecipesThatMadeChangesKind identifies the attribution marker.
const RecipesThatMadeChangesKind tree.Kind = "RecipesThatMadeChanges"

// Generated marks a file as machine-generated; such files are excluded
// from change reporting entirely.
type Generated struct{}

func (Generated) Kind() tree.Kind { return GeneratedKind }

// IsGenerated reports whether f carries the Generated marker.
func IsGenerated(f tree.SourceFile) bool {
	return f.Markers().Has(GeneratedKind)
}

// RecipesThatMadeChanges is the change-attribution marker: the set of
// recipe stacks that have contributed an edit to a file, keyed by
// recipe.Stack.Key() for set-union merging.
type RecipesThatMadeChanges struct {
	Stacks map[string]recipe.Stack
}

func (RecipesThatMadeChanges) Kind() tree.Kind { return RecipesThatMadeChangesKind }

// NewAttribution builds a RecipesThatMadeChanges marker naming a single
// stack.
func NewAttribution(stack recipe.Stack) RecipesThatMadeChanges {
	return RecipesThatMadeChanges{Stacks: map[string]recipe.Stack{stack.Key(): stack}}
}

// StackSet returns the marker's stacks as a slice, in no particular order.
func (m RecipesThatMadeChanges) StackSet() []recipe.Stack {
	out := make([]recipe.Stack, 0, len(m.Stacks))
	for _, s := range m.Stacks {
		out = append(out, s)
	}
	return out
}

func init() {
	// Set-union on element-wise stack equality.
	tree.RegisterMerge(RecipesThatMadeChangesKind, func(existing, incoming tree.Marker) tree.Marker {
		e := existing.(RecipesThatMadeChanges)
		i := incoming.(RecipesThatMadeChanges)
		merged := make(map[string]recipe.Stack, len(e.Stacks)+len(i.Stacks))
		for k, v := range e.Stacks {
			merged[k] = v
		}
		for k, v := range i.Stacks {
			merged[k] = v
		}
		return RecipesThatMadeChanges{Stacks: merged}
	})
	// Generated is a marker that never legitimately collides (a file is
	// either generated or not); last writer wins is fine, same as the
	// default.
	tree.RegisterMerge(GeneratedKind, func(_, incoming tree.Marker) tree.Marker {
		return incoming
	})
}

// Attach adds stack's attribution to f's existing RecipesThatMadeChanges
// marker (creating one if absent), returning the merged marker set.
func Attach(f tree.SourceFile, stack recipe.Stack) tree.MarkerSet {
	return f.Markers().With(NewAttribution(stack))
}
