// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gomod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghale/rewrite/lang/gomod"
	"github.com/ghale/rewrite/tree"
)

const modSrc = "module example.com/foo\n\ngo 1.20\n"

func TestParseReadsGoVersion(t *testing.T) {
	f, err := gomod.Parse("go.mod", []byte(modSrc))
	require.NoError(t, err)
	assert.Equal(t, "1.20", f.GoVersion())
}

func TestWithGoVersionIsIdentityWhenUnchanged(t *testing.T) {
	f, err := gomod.Parse("go.mod", []byte(modSrc))
	require.NoError(t, err)

	same, err := f.WithGoVersion("1.20")
	require.NoError(t, err)
	assert.True(t, tree.Same(f, same))
}

func TestWithGoVersionBumps(t *testing.T) {
	f, err := gomod.Parse("go.mod", []byte(modSrc))
	require.NoError(t, err)

	bumped, err := f.WithGoVersion("1.23")
	require.NoError(t, err)
	require.False(t, tree.Same(f, bumped))
	assert.Equal(t, "1.23", bumped.GoVersion())

	var buf []byte
	w := &sliceWriter{&buf}
	require.NoError(t, bumped.Print(w))
	assert.Contains(t, string(buf), "go 1.23")
}

type sliceWriter struct{ buf *[]byte }

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
