// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghale/rewrite/tree"
)

type fakeMarker struct {
	kind tree.Kind
	n    int
}

func (m fakeMarker) Kind() tree.Kind { return m.kind }

func TestMarkerSetMergeDefaultsToLastWriterWins(t *testing.T) {
	ms := tree.NewMarkerSet(fakeMarker{"k", 1})
	ms = ms.With(fakeMarker{"k", 2})

	got, ok := ms.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, got.(fakeMarker).n)
}

func TestMarkerSetMergeUsesRegisteredFunc(t *testing.T) {
	tree.RegisterMerge("sum", func(existing, incoming tree.Marker) tree.Marker {
		return fakeMarker{"sum", existing.(fakeMarker).n + incoming.(fakeMarker).n}
	})

	ms := tree.NewMarkerSet(fakeMarker{"sum", 3})
	ms = ms.With(fakeMarker{"sum", 4})

	got, ok := ms.Get("sum")
	assert.True(t, ok)
	assert.Equal(t, 7, got.(fakeMarker).n)
}

func TestMarkerSetWithoutRemoves(t *testing.T) {
	ms := tree.NewMarkerSet(fakeMarker{"k", 1})
	ms = ms.Without("k")
	assert.False(t, ms.Has("k"))
}

func TestMarkerSetKindsSorted(t *testing.T) {
	ms := tree.NewMarkerSet(fakeMarker{"z", 1}, fakeMarker{"a", 2})
	assert.Equal(t, []tree.Kind{"a", "z"}, ms.Kinds())
}
