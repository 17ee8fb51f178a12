// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlfrag implements a SourceFile backed by golang.org/x/net/html.
// It exists purely to demonstrate that a single scheduler run can carry a
// heterogeneous batch (Markdown and HTML files side by side) since
// nothing in the core assumes a single LST shape.
package htmlfrag

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/ghale/rewrite/internal/idgen"
	"github.com/ghale/rewrite/tree"
)

// File is an HTML-fragment SourceFile.
type File struct {
	id      tree.ID
	path    string
	doc     *html.Node
	markers tree.MarkerSet
}

// Parse parses src as an HTML document and mints a fresh File.
func Parse(path string, src []byte) (*File, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	return &File{id: tree.ID(idgen.New()), path: path, doc: doc}, nil
}

func (f *File) ID() tree.ID             { return f.id }
func (f *File) SourcePath() string      { return f.path }
func (f *File) Markers() tree.MarkerSet { return f.markers }
func (f *File) identity() any           { return f }

func (f *File) Print(w io.Writer) error { return html.Render(w, f.doc) }

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

// Title returns the document's <title> text, if any.
func (f *File) Title() (string, bool) {
	n := findTitle(f.doc)
	if n == nil || n.FirstChild == nil {
		return "", false
	}
	return n.FirstChild.Data, true
}

// WithTitle returns a copy of f with its <title> text replaced, or f
// unchanged if there is no <title> or the text is identical.
func (f *File) WithTitle(title string) *File {
	cur, ok := f.Title()
	if !ok || cur == title {
		return f
	}
	clone := cloneNode(f.doc)
	findTitle(clone).FirstChild.Data = title
	next := *f
	next.doc = clone
	return &next
}

func findTitle(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "title") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != nil {
			return t
		}
	}
	return nil
}

// cloneNode deep-copies an *html.Node tree; x/net/html nodes are linked
// both ways (parent/sibling pointers) so a shallow copy would alias the
// original document.
func cloneNode(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	var prev *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cc := cloneNode(c)
		cc.Parent = clone
		if prev == nil {
			clone.FirstChild = cc
		} else {
			prev.NextSibling = cc
			cc.PrevSibling = prev
		}
		prev = cc
	}
	clone.LastChild = prev
	return clone
}

var _ tree.SourceFile = (*File)(nil)
var _ tree.WithPath = (*File)(nil)
