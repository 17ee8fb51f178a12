// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree defines the engine's lossless-syntax-tree identity model:
// stable file ids, the marker metadata bag attached to a file, and the
// SourceFile contract that every language plugin implements.
//
// Packages in this module never assume anything about the shape of a
// particular language's AST beyond this interface; a language's own parser
// and printer packages (lang/plaintext, lang/markdown, ...) own that.
package tree

import "io"

// ID is a stable identity carried unchanged across every transformation of
// a SourceFile. A transformation that edits a file must return a new value
// with the same ID; only a parser mints fresh ones.
type ID string

// Tree is the minimal lossless-printing contract a parsed file must
// satisfy: it can render itself back to the exact bytes it was parsed
// from, modulo any edits applied since.
type Tree interface {
	// Print writes the canonical textual form of the tree to w.
	Print(w io.Writer) error
}

// SourceFile is a single parsed, possibly-edited file flowing through the
// engine. Values are immutable: every transformation that changes a file
// produces a new SourceFile value rather than mutating the receiver.
type SourceFile interface {
	Tree

	// ID is this file's stable identity. Two SourceFile values with equal
	// ID are understood by the engine to be "the same file, possibly
	// edited".
	ID() ID

	// SourcePath is the file's logical path, used for display and for
	// detecting renames: a changed SourcePath alone makes a file
	// "changed" even if its printed form is identical.
	SourcePath() string

	// Markers returns the file's current marker set.
	Markers() MarkerSet

	// WithMarkers returns a new SourceFile carrying the given marker set
	// in place of this one's, with the same id, path and tree content.
	WithMarkers(MarkerSet) SourceFile
}

// WithPath is implemented by SourceFile kinds whose logical path can be
// rewritten independent of their content (used by rename-style recipes).
type WithPath interface {
	SourceFile
	WithPath(path string) SourceFile
}

// Same reports whether a and b are the same object by reference identity.
// This is the scheduler's sole "did this visit change anything" signal.
// Go has no universal object-identity operator for interface values
// holding arbitrary concrete types, so SourceFile kinds are expected to be
// pointer types: interface equality on two pointers then reflects
// reference identity.
func Same(a, b SourceFile) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return identityOf(a) == identityOf(b)
}

// identityWitness hands back a comparable value (typically the underlying
// pointer) usable for identity comparisons. Its method is unexported, so
// only types declared in package tree can implement it; SourceFile kinds
// in other packages (lang/*) fall back to interface equality, which is
// reference-correct for their pointer-typed implementations.
type identityWitness interface {
	identity() any
}

func identityOf(f SourceFile) any {
	if w, ok := f.(identityWitness); ok {
		return w.identity()
	}
	return f
}

// SameSlice reports whether a and b hold the same SourceFile references,
// in the same order (the scheduler's "did this step change anything at
// the batch level" signal).
func SameSlice(a, b []SourceFile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}
	return true
}
