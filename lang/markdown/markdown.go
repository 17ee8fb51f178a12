// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown implements a SourceFile backed by
// github.com/yuin/goldmark: the parser walks the goldmark AST once to
// locate ATX heading lines, and the printer reproduces the original bytes
// verbatim except where a heading's text has been edited. This is enough
// structure to exercise a real per-node edit (recipes/titlecase) and
// widening (recipes/toc, which synthesizes a brand-new Markdown file from
// an existing one's headings).
package markdown

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ghale/rewrite/internal/idgen"
	"github.com/ghale/rewrite/tree"
)

// Heading is one ATX heading (`# ...` through `###### ...`) found in a
// Markdown file.
type Heading struct {
	Level      int
	Text       string
	startByte  int
	stopByte   int
}

// File is a Markdown SourceFile.
type File struct {
	id       tree.ID
	path     string
	source   []byte
	headings []Heading
	markers  tree.MarkerSet
}

// Parse parses src as Markdown, extracting its ATX headings, and mints a
// fresh File with a new stable id.
func Parse(path string, src []byte) (*File, error) {
	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var headings []Heading
	err := gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || n.Kind() != gmast.KindHeading {
			return gmast.WalkContinue, nil
		}
		h := n.(*gmast.Heading)
		lines := h.Lines()
		if lines.Len() == 0 {
			return gmast.WalkContinue, nil
		}
		seg := lines.At(0)
		raw := string(seg.Value(src))
		headings = append(headings, Heading{
			Level:     h.Level,
			Text:      headingText(raw),
			startByte: seg.Start,
			stopByte:  seg.Stop,
		})
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return &File{
		id:       tree.ID(idgen.New()),
		path:     path,
		source:   append([]byte(nil), src...),
		headings: headings,
	}, nil
}

func headingText(rawLine string) string {
	t := strings.TrimRight(rawLine, "\r\n")
	t = strings.TrimLeft(t, "#")
	t = strings.TrimSpace(t)
	t = strings.TrimRight(t, "#")
	return strings.TrimSpace(t)
}

func (f *File) ID() tree.ID             { return f.id }
func (f *File) SourcePath() string      { return f.path }
func (f *File) Markers() tree.MarkerSet { return f.markers }
func (f *File) identity() any           { return f }

// Headings returns the file's headings, outermost order of appearance.
func (f *File) Headings() []Heading { return append([]Heading(nil), f.headings...) }

// Print reproduces the original bytes, substituting the current text for
// any heading whose text has been edited since parse (losslessness modulo
// edits, per the Tree contract).
func (f *File) Print(w io.Writer) error {
	prev := 0
	for _, h := range f.headings {
		if _, err := w.Write(f.source[prev:h.startByte]); err != nil {
			return err
		}
		if headingText(string(f.source[h.startByte:h.stopByte])) == h.Text {
			if _, err := w.Write(f.source[h.startByte:h.stopByte]); err != nil {
				return err
			}
		} else {
			// [startByte, stopByte) spans only the heading's text, so the
			// surrounding markers and line ending come from the source.
			if _, err := io.WriteString(w, h.Text); err != nil {
				return err
			}
		}
		prev = h.stopByte
	}
	_, err := w.Write(f.source[prev:])
	return err
}

func (f *File) WithMarkers(ms tree.MarkerSet) tree.SourceFile {
	next := *f
	next.markers = ms
	next.headings = append([]Heading(nil), f.headings...)
	return &next
}

// WithHeadingText returns a copy of f with headings[i].Text replaced, or
// f unchanged if text is identical.
func (f *File) WithHeadingText(i int, text string) *File {
	if i < 0 || i >= len(f.headings) || f.headings[i].Text == text {
		return f
	}
	next := *f
	next.headings = append([]Heading(nil), f.headings...)
	next.headings[i].Text = text
	return &next
}

func (f *File) WithPath(path string) tree.SourceFile {
	if path == f.path {
		return f
	}
	next := *f
	next.headings = append([]Heading(nil), f.headings...)
	next.path = path
	return &next
}

// UpdateBody reparses body as this file's new content, preserving f's id
// and path. Used by recipes that regenerate a file's content each cycle
// (recipes/toc) so that an unchanged regeneration still compares equal by
// id to the prior cycle's file, rather than minting a fresh one forever.
func (f *File) UpdateBody(body []byte) (*File, error) {
	next, err := Parse(f.path, body)
	if err != nil {
		return nil, err
	}
	next.id = f.id
	return next, nil
}

// NewSynthetic constructs a brand-new Markdown File (a fresh id), used by
// generative recipes such as recipes/toc.
func NewSynthetic(path string, body []byte) *File {
	f, err := Parse(path, body)
	if err != nil {
		// body is produced by our own table-of-contents renderer, not
		// untrusted input; a goldmark parse failure here would be a bug
		// in that renderer.
		return &File{id: tree.ID(idgen.New()), path: path, source: append([]byte(nil), body...)}
	}
	return f
}

var _ tree.SourceFile = (*File)(nil)
var _ tree.WithPath = (*File)(nil)
