// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghale/rewrite/lang/markdown"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipes"
	"github.com/ghale/rewrite/tree"
)

func TestGenerateTOCAddsNewFile(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte("# First\n\n## Second\n"))
	require.NoError(t, err)

	r := recipes.NewGenerateTOC()
	out, err := r.VisitAll(rctx.New(), []tree.SourceFile{f})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, recipes.TOCPath, out[1].SourcePath())
}

func TestGenerateTOCIsIdempotent(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte("# First\n"))
	require.NoError(t, err)

	r := recipes.NewGenerateTOC()
	first, err := r.VisitAll(rctx.New(), []tree.SourceFile{f})
	require.NoError(t, err)

	second, err := r.VisitAll(rctx.New(), first)
	require.NoError(t, err)
	assert.True(t, tree.SameSlice(first, second))
}
