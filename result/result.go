// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result implements the Result Builder: it diffs the
// before-set against the after-set of one scheduler run by stable file
// identity, decides "changed" via the marker-aware canonicalizer, and
// attaches attribution from the after-set's RecipesThatMadeChanges marker
// or from the deletion/generation map the scheduler maintained.
package result

import (
	"github.com/ghale/rewrite/marker"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/rerrors"
	"github.com/ghale/rewrite/tree"
)

// Result is a single observed file-level change: an addition (Before ==
// nil), a removal (After == nil), or an edit (both set).
type Result struct {
	Before             tree.SourceFile
	After              tree.SourceFile
	RecipesThatChanged []recipe.Stack
}

// DeletionMap records, per file id, the recipe stack responsible for that
// file's deletion or generation. The scheduler populates it during the
// run; the Result Builder consumes it to attribute additions and
// deletions.
type DeletionMap interface {
	Get(id tree.ID) (recipe.Stack, bool)
}

// Build computes Result values comparing before against after. deletions
// supplies the attribution for any file id present in one set but not
// mirrored with the same content in the other.
func Build(before, after []tree.SourceFile, deletions DeletionMap) ([]Result, error) {
	if tree.SameSlice(before, after) {
		return nil, nil
	}

	beforeByID := make(map[tree.ID]tree.SourceFile, len(before))
	for _, f := range before {
		beforeByID[f.ID()] = f
	}
	afterIDs := make(map[tree.ID]struct{}, len(after))
	for _, f := range after {
		afterIDs[f.ID()] = struct{}{}
	}

	var results []Result

	for _, a := range after {
		orig, existed := beforeByID[a.ID()]
		if !existed {
			stack, _ := deletions.Get(a.ID())
			results = append(results, Result{
				Before:             nil,
				After:              a,
				RecipesThatChanged: stacksOf(stack),
			})
			continue
		}
		if marker.IsGenerated(orig) {
			continue
		}

		changed, err := isChanged(orig, a)
		if err != nil {
			return nil, err
		}
		if !changed {
			continue
		}

		stacks, ok := attributionOf(a)
		if !ok {
			return nil, &rerrors.InvariantViolationError{
				Path:   a.SourcePath(),
				Detail: "file changed by canonicalization but carries no RecipesThatMadeChanges marker",
			}
		}
		results = append(results, Result{Before: orig, After: a, RecipesThatChanged: stacks})
	}

	for _, b := range before {
		if _, ok := afterIDs[b.ID()]; ok {
			continue
		}
		if marker.IsGenerated(b) {
			continue
		}
		stack, _ := deletions.Get(b.ID())
		results = append(results, Result{
			Before:             b,
			After:              nil,
			RecipesThatChanged: stacksOf(stack),
		})
	}

	return results, nil
}

func isChanged(orig, a tree.SourceFile) (bool, error) {
	if orig.SourcePath() != a.SourcePath() {
		return true, nil
	}
	origCanon, err := canonical(orig)
	if err != nil {
		return false, err
	}
	aCanon, err := canonical(a)
	if err != nil {
		return false, err
	}
	return origCanon != aCanon, nil
}

func attributionOf(f tree.SourceFile) ([]recipe.Stack, bool) {
	m, ok := f.Markers().Get(marker.RecipesThatMadeChangesKind)
	if !ok {
		return nil, false
	}
	rtm := m.(marker.RecipesThatMadeChanges)
	if len(rtm.Stacks) == 0 {
		return nil, false
	}
	return rtm.StackSet(), true
}

func stacksOf(s recipe.Stack) []recipe.Stack {
	if s == nil {
		return nil
	}
	return []recipe.Stack{s}
}
