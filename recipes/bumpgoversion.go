// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/ghale/rewrite/lang/gomod"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// BumpGoVersion sets the `go` directive of every go.mod file matching a
// glob to a fixed version. It demonstrates a SingleSourceApplicableTest
// gated by a path glob (a recipe that narrows to one language's files by
// pattern rather than by type assertion alone, matching how a real
// multi-language batch is filtered in practice.
type BumpGoVersion struct {
	recipe.Base
	PathGlob string
	Version  string
}

// NewBumpGoVersion constructs a BumpGoVersion recipe. pathGlob defaults
// to "**/go.mod" when empty.
func NewBumpGoVersion(pathGlob, version string) *BumpGoVersion {
	if pathGlob == "" {
		pathGlob = "**/go.mod"
	}
	return &BumpGoVersion{PathGlob: pathGlob, Version: version}
}

func (*BumpGoVersion) DisplayName() string { return "BumpGoVersion" }
func (*BumpGoVersion) Description() string {
	return "Sets the `go` directive in matching go.mod files."
}
func (*BumpGoVersion) CausesAnotherCycle() bool { return false }

func (r *BumpGoVersion) matches(path string) bool {
	ok, _ := doublestar.Match(r.PathGlob, path)
	return ok
}

func (r *BumpGoVersion) SingleSourceApplicableTest() visit.Visitor {
	return visit.Func(func(_ rctx.ExecutionContext, f tree.SourceFile) (tree.SourceFile, error) {
		mf, ok := f.(*gomod.File)
		if !ok || !r.matches(f.SourcePath()) || mf.GoVersion() == r.Version {
			return f, nil
		}
		return nil, nil
	})
}

func (r *BumpGoVersion) Visitor() visit.Visitor {
	return visit.Func(func(_ rctx.ExecutionContext, f tree.SourceFile) (tree.SourceFile, error) {
		mf, ok := f.(*gomod.File)
		if !ok {
			return f, nil
		}
		return mf.WithGoVersion(r.Version)
	})
}

func init() {
	recipe.Register("rewrite.BumpGoVersion", func() recipe.Recipe { return NewBumpGoVersion("", "") })
}
