// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghale/rewrite/lang/plaintext"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

func TestIdentityReturnsSameInstance(t *testing.T) {
	f := plaintext.Parse("a.txt", "x")
	out, err := visit.Identity.Visit(rctx.New(), f)
	assert.NoError(t, err)
	assert.True(t, tree.Same(f, out))
}

func TestChangedDetectsDeletion(t *testing.T) {
	f := plaintext.Parse("a.txt", "x")
	assert.True(t, visit.Changed(f, nil))
}

func TestChangedFalseForSameReference(t *testing.T) {
	f := plaintext.Parse("a.txt", "x")
	assert.False(t, visit.Changed(f, f))
}

func TestChangedTrueForNewReference(t *testing.T) {
	f := plaintext.Parse("a.txt", "x")
	assert.True(t, visit.Changed(f, f.WithText("y")))
}
