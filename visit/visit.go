// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visit defines the engine's traversal contract: a polymorphic
// function over a SourceFile that either returns the same instance
// (meaning "no edit") or a new one.
//
// The identity contract is load-bearing: it is the only signal the
// scheduler uses to decide whether a visit changed a file, and the only
// signal applicability predicates use to decide whether they matched.
package visit

import (
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/tree"
)

// Visitor performs one traversal over one file. Implementations must
// return the exact same SourceFile value (not an equal-but-distinct copy)
// when they make no edit; violating this turns every visit into a
// reported change and defeats fixed-point detection.
//
// A nil return value with a nil error means "delete this file".
type Visitor interface {
	Visit(ctx rctx.ExecutionContext, file tree.SourceFile) (tree.SourceFile, error)
}

// Func adapts a plain function to the Visitor interface.
type Func func(ctx rctx.ExecutionContext, file tree.SourceFile) (tree.SourceFile, error)

func (f Func) Visit(ctx rctx.ExecutionContext, file tree.SourceFile) (tree.SourceFile, error) {
	return f(ctx, file)
}

// Identity is a Visitor that always returns its input unchanged; it is the
// zero-value behavior recipes fall back to when they have no per-file
// edit of their own.
var Identity Visitor = Func(func(_ rctx.ExecutionContext, f tree.SourceFile) (tree.SourceFile, error) {
	return f, nil
})

// Changed reports whether after is a different instance than before, per
// the identity contract. Deletions (after == nil) count as changed.
func Changed(before, after tree.SourceFile) bool {
	if after == nil {
		return true
	}
	return !tree.Same(before, after)
}
