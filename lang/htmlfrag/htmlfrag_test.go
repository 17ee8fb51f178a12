// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlfrag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghale/rewrite/lang/htmlfrag"
	"github.com/ghale/rewrite/tree"
)

const doc = "<html><head><title>old</title></head><body></body></html>"

func TestParseReadsTitle(t *testing.T) {
	f, err := htmlfrag.Parse("a.html", []byte(doc))
	require.NoError(t, err)

	title, ok := f.Title()
	require.True(t, ok)
	assert.Equal(t, "old", title)
}

func TestWithTitleIsIdentityWhenUnchanged(t *testing.T) {
	f, err := htmlfrag.Parse("a.html", []byte(doc))
	require.NoError(t, err)

	same := f.WithTitle("old")
	assert.True(t, tree.Same(f, same))
}

func TestWithTitleEditsWithoutAliasingOriginal(t *testing.T) {
	f, err := htmlfrag.Parse("a.html", []byte(doc))
	require.NoError(t, err)

	edited := f.WithTitle("new")
	require.False(t, tree.Same(f, edited))

	title, _ := edited.Title()
	assert.Equal(t, "new", title)

	orig, _ := f.Title()
	assert.Equal(t, "old", orig, "editing the copy must not mutate the original node tree")

	var buf bytes.Buffer
	require.NoError(t, edited.Print(&buf))
	assert.Contains(t, buf.String(), "<title>new</title>")
}
