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

func TestTitlecaseHeadingsSkipsAlreadyTitled(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte("# Already Titled\n"))
	require.NoError(t, err)

	r := recipes.NewTitlecaseHeadings()
	gate := r.SingleSourceApplicableTest()
	out, err := gate.Visit(rctx.New(), f)
	require.NoError(t, err)
	assert.True(t, tree.Same(f, out))
}

func TestTitlecaseHeadingsEditsLowercaseHeading(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte("# hello world\n"))
	require.NoError(t, err)

	r := recipes.NewTitlecaseHeadings()
	out, err := r.Visitor().Visit(rctx.New(), f)
	require.NoError(t, err)
	require.False(t, tree.Same(f, out))
	assert.Equal(t, "Hello World", out.(*markdown.File).Headings()[0].Text)
}
