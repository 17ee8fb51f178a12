// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghale/rewrite/lang/gomod"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipes"
	"github.com/ghale/rewrite/tree"
)

const modSrc = "module example.com/foo\n\ngo 1.20\n"

func TestBumpGoVersionGateSkipsNonMatchingPath(t *testing.T) {
	f, err := gomod.Parse("vendor/go.mod", []byte(modSrc))
	require.NoError(t, err)

	r := recipes.NewBumpGoVersion("go.mod", "1.23")
	out, err := r.SingleSourceApplicableTest().Visit(rctx.New(), f)
	require.NoError(t, err)
	assert.True(t, tree.Same(f, out))
}

func TestBumpGoVersionEditsMatchingFile(t *testing.T) {
	f, err := gomod.Parse("go.mod", []byte(modSrc))
	require.NoError(t, err)

	r := recipes.NewBumpGoVersion("go.mod", "1.23")
	gate, err := r.SingleSourceApplicableTest().Visit(rctx.New(), f)
	require.NoError(t, err)
	assert.False(t, tree.Same(f, gate))

	out, err := r.Visitor().Visit(rctx.New(), f)
	require.NoError(t, err)
	assert.Equal(t, "1.23", out.(*gomod.File).GoVersion())
	assert.Equal(t, f.ID(), out.ID())
}
