// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "sort"

// Kind names a marker's type. The core recognizes two well-known kinds,
// GeneratedKind and RecipesThatMadeChangesKind (see package marker);
// everything else is implementation-defined and opaque to the core.
type Kind string

// Marker is a tagged value attached to a SourceFile (or, in a richer LST,
// to an individual node, this module's simplified tree model attaches
// markers only at the file level, see DESIGN.md).
type Marker interface {
	Kind() Kind
}

// CanonicalMarker is implemented by markers that have a textual effect
// recognized by the marker-aware canonicalizer. Most markers
// are pure out-of-band metadata, invisible to printing, and therefore
// invisible to change detection too; a marker only shows up in the
// canonical form (and can therefore, on its own, make a file "changed")
// if it implements this and returns a non-empty string.
type CanonicalMarker interface {
	Marker
	Canonical() string
}

// MergeFunc resolves two marker values of the same kind into one, used
// when two recipes (or two widening steps) attach a marker of a kind that
// is already present.
type MergeFunc func(existing, incoming Marker) Marker

var mergeFuncs = map[Kind]MergeFunc{}

// RegisterMerge installs the merge function used whenever two markers of
// kind k collide. Language and marker packages call this from init().
func RegisterMerge(k Kind, fn MergeFunc) {
	mergeFuncs[k] = fn
}

func mergeOne(existing, incoming Marker) Marker {
	if fn, ok := mergeFuncs[incoming.Kind()]; ok {
		return fn(existing, incoming)
	}
	// No registered merge: last writer wins.
	return incoming
}

// MarkerSet is an immutable mapping from marker kind to the single value
// of that kind currently attached to a file.
type MarkerSet struct {
	byKind map[Kind]Marker
}

// NewMarkerSet builds a MarkerSet from the given markers; later entries of
// the same kind are merged with earlier ones via the registered merge
// function.
func NewMarkerSet(markers ...Marker) MarkerSet {
	ms := MarkerSet{byKind: map[Kind]Marker{}}
	for _, m := range markers {
		ms = ms.With(m)
	}
	return ms
}

// Get returns the marker of kind k, if present.
func (ms MarkerSet) Get(k Kind) (Marker, bool) {
	m, ok := ms.byKind[k]
	return m, ok
}

// Has reports whether a marker of kind k is present.
func (ms MarkerSet) Has(k Kind) bool {
	_, ok := ms.byKind[k]
	return ok
}

// With returns a new MarkerSet with m added, merged with any existing
// marker of the same kind via the kind's registered MergeFunc.
func (ms MarkerSet) With(m Marker) MarkerSet {
	next := make(map[Kind]Marker, len(ms.byKind)+1)
	for k, v := range ms.byKind {
		next[k] = v
	}
	if existing, ok := next[m.Kind()]; ok {
		next[m.Kind()] = mergeOne(existing, m)
	} else {
		next[m.Kind()] = m
	}
	return MarkerSet{byKind: next}
}

// Without returns a new MarkerSet with the marker of kind k removed.
func (ms MarkerSet) Without(k Kind) MarkerSet {
	if !ms.Has(k) {
		return ms
	}
	next := make(map[Kind]Marker, len(ms.byKind))
	for kk, v := range ms.byKind {
		if kk != k {
			next[kk] = v
		}
	}
	return MarkerSet{byKind: next}
}

// Merge unions two marker sets, resolving collisions per kind.
func (ms MarkerSet) Merge(other MarkerSet) MarkerSet {
	out := ms
	for _, k := range other.Kinds() {
		m, _ := other.Get(k)
		out = out.With(m)
	}
	return out
}

// Kinds returns the set's kinds in a stable (sorted) order, for
// deterministic iteration such as the marker-aware canonicalizer.
func (ms MarkerSet) Kinds() []Kind {
	kinds := make([]Kind, 0, len(ms.byKind))
	for k := range ms.byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Len reports the number of distinct marker kinds present.
func (ms MarkerSet) Len() int { return len(ms.byKind) }
