// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plaintext implements the simplest possible SourceFile: a
// whole-file byte blob with no internal structure. It exists to exercise
// the scheduler end to end without committing to any particular grammar,
// and backs the worked rename, marker-only-change, deletion, and timeout
// examples in the scheduler's own tests.
package plaintext

import (
	"io"

	"github.com/ghale/rewrite/internal/idgen"
	"github.com/ghale/rewrite/tree"
)

// File is a plain-text SourceFile.
type File struct {
	id      tree.ID
	path    string
	text    string
	markers tree.MarkerSet
}

// Parse mints a fresh File with a new stable id.
func Parse(path, text string) *File {
	return &File{id: tree.ID(idgen.New()), path: path, text: text}
}

func (f *File) ID() tree.ID             { return f.id }
func (f *File) SourcePath() string      { return f.path }
func (f *File) Text() string            { return f.text }
func (f *File) Markers() tree.MarkerSet { return f.markers }
func (f *File) Print(w io.Writer) error { _, err := io.WriteString(w, f.text); return err }
func (f *File) identity() any           { return f }

// WithMarkers returns a copy of f carrying ms in place of its current
// marker set.
func (f *File) WithMarkers(ms tree.MarkerSet) tree.SourceFile {
	next := *f
	next.markers = ms
	return &next
}

// WithText returns a copy of f with new text, same id and path.
func (f *File) WithText(text string) *File {
	if text == f.text {
		return f
	}
	next := *f
	next.text = text
	return &next
}

// WithPath returns a copy of f with a new logical path, same id and text.
func (f *File) WithPath(path string) tree.SourceFile {
	if path == f.path {
		return f
	}
	next := *f
	next.path = path
	return &next
}

var _ tree.SourceFile = (*File)(nil)
var _ tree.WithPath = (*File)(nil)
