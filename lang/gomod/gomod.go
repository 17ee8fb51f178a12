// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gomod implements a SourceFile backed by
// golang.org/x/mod/modfile, parsing and re-formatting go.mod-shaped
// files. It gives recipes/bumpgoversion something narrow and realistic to
// be single_source_applicable_test-gated against.
package gomod

import (
	"io"

	"golang.org/x/mod/modfile"

	"github.com/ghale/rewrite/internal/idgen"
	"github.com/ghale/rewrite/tree"
)

// File is a go.mod SourceFile.
type File struct {
	id      tree.ID
	path    string
	mf      *modfile.File
	markers tree.MarkerSet
}

// Parse parses src as a go.mod file and mints a fresh File.
func Parse(path string, src []byte) (*File, error) {
	mf, err := modfile.Parse(path, src, nil)
	if err != nil {
		return nil, err
	}
	return &File{id: tree.ID(idgen.New()), path: path, mf: mf}, nil
}

func (f *File) ID() tree.ID             { return f.id }
func (f *File) SourcePath() string      { return f.path }
func (f *File) Markers() tree.MarkerSet { return f.markers }
func (f *File) identity() any           { return f }

func (f *File) Print(w io.Writer) error {
	out, err := f.mf.Format()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func (f *File) WithMarkers(ms tree.MarkerSet) tree.SourceFile {
	next := *f
	next.markers = ms
	return &next
}

func (f *File) WithPath(path string) tree.SourceFile {
	if path == f.path {
		return f
	}
	next := *f
	next.path = path
	return &next
}

// GoVersion returns the file's `go` directive version, if set.
func (f *File) GoVersion() string {
	if f.mf.Go == nil {
		return ""
	}
	return f.mf.Go.Version
}

// WithGoVersion returns a copy of f with its `go` directive set to
// version, or f unchanged if it already matches.
func (f *File) WithGoVersion(version string) (*File, error) {
	if f.GoVersion() == version {
		return f, nil
	}
	out, err := f.mf.Format()
	if err != nil {
		return nil, err
	}
	mf, err := modfile.Parse(f.path, out, nil)
	if err != nil {
		return nil, err
	}
	if err := mf.AddGoStmt(version); err != nil {
		return nil, err
	}
	next := *f
	next.mf = mf
	return &next, nil
}

var _ tree.SourceFile = (*File)(nil)
var _ tree.WithPath = (*File)(nil)
