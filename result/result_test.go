// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghale/rewrite/lang/plaintext"
	"github.com/ghale/rewrite/marker"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/result"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// noopRecipe carries a non-zero-size field so that each &noopRecipe{} has
// its own address: pointers to zero-size values may all be equal, which
// would collapse distinct recipes into one attribution stack.
type noopRecipe struct {
	recipe.Base
	_ byte
}

func (*noopRecipe) DisplayName() string    { return "Noop" }
func (*noopRecipe) Description() string    { return "Noop" }
func (*noopRecipe) Visitor() visit.Visitor { return visit.Identity }

type fakeDeletions map[tree.ID]recipe.Stack

func (f fakeDeletions) Get(id tree.ID) (recipe.Stack, bool) {
	s, ok := f[id]
	return s, ok
}

func TestBuildSameSliceReturnsEmpty(t *testing.T) {
	f1 := plaintext.Parse("a.txt", "x")
	files := []tree.SourceFile{f1}

	results, err := result.Build(files, files, fakeDeletions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBuildSkipsGeneratedBefore(t *testing.T) {
	f1 := plaintext.Parse("a.txt", "x")
	gen := f1.WithMarkers(f1.Markers().With(marker.Generated{}))
	edited := gen.(*plaintext.File).WithText("y")

	results, err := result.Build([]tree.SourceFile{gen}, []tree.SourceFile{edited}, fakeDeletions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBuildRequiresAttributionOnChange(t *testing.T) {
	f1 := plaintext.Parse("a.txt", "x")
	edited := f1.WithText("y") // changed, but no RecipesThatMadeChanges marker

	_, err := result.Build([]tree.SourceFile{f1}, []tree.SourceFile{edited}, fakeDeletions{})
	assert.Error(t, err)
}

func TestBuildAdditionUsesDeletionMapAsGenerationAttribution(t *testing.T) {
	gen := plaintext.Parse("new.txt", "fresh")
	root := &noopRecipe{}
	stack := recipe.Stack{root}
	dm := fakeDeletions{gen.ID(): stack}

	results, err := result.Build(nil, []tree.SourceFile{gen}, dm)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Before)
	assert.Equal(t, gen, results[0].After)
	require.Len(t, results[0].RecipesThatChanged, 1)
}

func TestBuildResultSetIgnoresOrderOfRecipesThatChanged(t *testing.T) {
	f1 := plaintext.Parse("a.txt", "x")
	other := &noopRecipe{}
	stack1 := recipe.Stack{&noopRecipe{}}
	stack2 := recipe.Stack{other}
	edited := f1.WithText("y")
	edited = edited.WithMarkers(edited.Markers().With(marker.NewAttribution(stack1)))
	edited = edited.WithMarkers(edited.Markers().With(marker.NewAttribution(stack2)))

	got, err := result.Build([]tree.SourceFile{f1}, []tree.SourceFile{edited}, fakeDeletions{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := []recipe.Stack{stack1, stack2}
	diff := cmp.Diff(want, got[0].RecipesThatChanged,
		cmpopts.SortSlices(func(a, b recipe.Stack) bool { return a.Key() < b.Key() }),
		cmp.Comparer(func(a, b recipe.Stack) bool { return a.Key() == b.Key() }),
	)
	assert.Empty(t, diff)
}
