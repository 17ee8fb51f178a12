// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recipes collects small, concrete recipes exercising the
// scheduler end to end: a rename, a Markdown heading title-caser, a
// table-of-contents generator (widening), and a go.mod version bump
// (single-source applicability gating).
package recipes

import (
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// Rename renames a single file by its current logical path, leaving its
// content untouched.
type Rename struct {
	recipe.Base
	OldPath, NewPath string
}

// NewRename constructs a Rename recipe.
func NewRename(oldPath, newPath string) *Rename {
	return &Rename{OldPath: oldPath, NewPath: newPath}
}

func (*Rename) DisplayName() string { return "Rename" }
func (*Rename) Description() string { return "Renames a file by exact logical path." }

// CausesAnotherCycle is false: a bare rename never unlocks further edits
// on its own.
func (*Rename) CausesAnotherCycle() bool { return false }

func (r *Rename) Visitor() visit.Visitor {
	return visit.Func(func(_ rctx.ExecutionContext, f tree.SourceFile) (tree.SourceFile, error) {
		if f.SourcePath() != r.OldPath {
			return f, nil
		}
		wp, ok := f.(tree.WithPath)
		if !ok {
			return f, nil
		}
		return wp.WithPath(r.NewPath), nil
	})
}

func init() {
	recipe.Register("rewrite.Rename", func() recipe.Recipe { return NewRename("", "") })
}
