// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// DeleteByPath deletes every file whose logical path exactly matches
// Path.
type DeleteByPath struct {
	recipe.Base
	Path string
}

// NewDeleteByPath constructs a DeleteByPath recipe.
func NewDeleteByPath(path string) *DeleteByPath { return &DeleteByPath{Path: path} }

func (*DeleteByPath) DisplayName() string      { return "DeleteByPath" }
func (*DeleteByPath) Description() string      { return "Deletes a file by exact logical path." }
func (*DeleteByPath) CausesAnotherCycle() bool { return false }

func (r *DeleteByPath) Visitor() visit.Visitor {
	return visit.Func(func(_ rctx.ExecutionContext, f tree.SourceFile) (tree.SourceFile, error) {
		if f.SourcePath() != r.Path {
			return f, nil
		}
		return nil, nil
	})
}

func init() {
	recipe.Register("rewrite.DeleteByPath", func() recipe.Recipe { return NewDeleteByPath("") })
}
