// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ghale/rewrite/lang/markdown"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// TOCPath is the logical path recipes/toc.go generates or updates.
const TOCPath = "TOC.md"

// GenerateTOC synthesizes (or keeps up to date) a TOC.md listing every
// heading found across the Markdown files in the batch: a recipe's
// whole-batch step adding a file of the same language, generated rather
// than parsed.
type GenerateTOC struct {
	recipe.Base
}

// NewGenerateTOC constructs a GenerateTOC recipe.
func NewGenerateTOC() *GenerateTOC { return &GenerateTOC{} }

func (*GenerateTOC) DisplayName() string { return "GenerateTableOfContents" }
func (*GenerateTOC) Description() string {
	return "Synthesizes TOC.md from every Markdown heading in the batch."
}

// CausesAnotherCycle is false: generation is idempotent (UpdateBody keeps
// the generated file's id stable across cycles), so one pass suffices.
func (*GenerateTOC) CausesAnotherCycle() bool { return false }

// Visitor is the identity: GenerateTOC has no per-file edit of its own,
// all of its work happens in VisitAll.
func (*GenerateTOC) Visitor() visit.Visitor { return visit.Identity }

func (*GenerateTOC) VisitAll(_ rctx.ExecutionContext, files []tree.SourceFile) ([]tree.SourceFile, error) {
	var lines []string
	tocIndex := -1
	var existing *markdown.File

	for i, f := range files {
		md, ok := f.(*markdown.File)
		if !ok {
			continue
		}
		if md.SourcePath() == TOCPath {
			tocIndex, existing = i, md
			continue
		}
		for _, h := range md.Headings() {
			indent := strings.Repeat("  ", max(h.Level-1, 0))
			lines = append(lines, fmt.Sprintf("%s- [%s](#%s)", indent, h.Text, slugify(h.Text)))
		}
	}
	if len(lines) == 0 {
		return files, nil
	}
	body := []byte("# Table of Contents\n\n" + strings.Join(lines, "\n") + "\n")

	if existing != nil {
		var buf bytes.Buffer
		if err := existing.Print(&buf); err != nil {
			return nil, err
		}
		if buf.String() == string(body) {
			return files, nil
		}
		updated, err := existing.UpdateBody(body)
		if err != nil {
			return nil, err
		}
		out := append([]tree.SourceFile(nil), files...)
		out[tocIndex] = updated
		return out, nil
	}

	out := append([]tree.SourceFile(nil), files...)
	out = append(out, markdown.NewSynthetic(TOCPath, body))
	return out, nil
}

func slugify(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}

func init() {
	recipe.Register("rewrite.GenerateTOC", func() recipe.Recipe { return NewGenerateTOC() })
}
