// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghale/rewrite/lang/markdown"
	"github.com/ghale/rewrite/tree"
)

const doc = "# hello world\n\nsome body text\n\n## second heading\n"

func TestParseExtractsHeadings(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte(doc))
	require.NoError(t, err)

	headings := f.Headings()
	require.Len(t, headings, 2)
	assert.Equal(t, "hello world", headings[0].Text)
	assert.Equal(t, 1, headings[0].Level)
	assert.Equal(t, "second heading", headings[1].Text)
	assert.Equal(t, 2, headings[1].Level)
}

func TestPrintIsLosslessWithoutEdits(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte(doc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Print(&buf))
	assert.Equal(t, doc, buf.String())
}

func TestWithHeadingTextIsIdentityWhenUnchanged(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte(doc))
	require.NoError(t, err)

	same := f.WithHeadingText(0, "hello world")
	assert.True(t, tree.Same(f, same))
}

func TestWithHeadingTextEditsOnlyThatHeading(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte(doc))
	require.NoError(t, err)

	edited := f.WithHeadingText(0, "Hello World")
	assert.False(t, tree.Same(f, edited))

	var buf bytes.Buffer
	require.NoError(t, edited.Print(&buf))
	assert.Contains(t, buf.String(), "# Hello World\n")
	assert.Contains(t, buf.String(), "## second heading\n")
	assert.Equal(t, f.ID(), edited.ID())
}

func TestUpdateBodyPreservesID(t *testing.T) {
	f, err := markdown.Parse("a.md", []byte(doc))
	require.NoError(t, err)

	next, err := f.UpdateBody([]byte("# new body\n"))
	require.NoError(t, err)
	assert.Equal(t, f.ID(), next.ID())
}
