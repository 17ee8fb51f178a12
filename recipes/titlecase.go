// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ghale/rewrite/lang/markdown"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// TitlecaseHeadings title-cases every Markdown ATX heading's text.
type TitlecaseHeadings struct {
	recipe.Base
	caser cases.Caser
}

// NewTitlecaseHeadings constructs a TitlecaseHeadings recipe.
func NewTitlecaseHeadings() *TitlecaseHeadings {
	return &TitlecaseHeadings{caser: cases.Title(language.Und)}
}

func (*TitlecaseHeadings) DisplayName() string { return "TitlecaseHeadings" }
func (*TitlecaseHeadings) Description() string {
	return "Title-cases the text of every Markdown ATX heading."
}
func (*TitlecaseHeadings) CausesAnotherCycle() bool { return false }

// SingleSourceApplicableTest skips any file that isn't Markdown, or whose
// headings are already title-cased, without running the full visitor.
func (r *TitlecaseHeadings) SingleSourceApplicableTest() visit.Visitor {
	return visit.Func(func(_ rctx.ExecutionContext, f tree.SourceFile) (tree.SourceFile, error) {
		md, ok := f.(*markdown.File)
		if !ok {
			return f, nil
		}
		for i, h := range md.Headings() {
			if titled := r.caser.String(h.Text); titled != h.Text {
				// Return a distinct instance to signal "applicable";
				// its content is irrelevant, only its identity is
				// inspected by the scheduler.
				return md.WithHeadingText(i, titled), nil
			}
		}
		return f, nil
	})
}

func (r *TitlecaseHeadings) Visitor() visit.Visitor {
	return visit.Func(func(_ rctx.ExecutionContext, f tree.SourceFile) (tree.SourceFile, error) {
		md, ok := f.(*markdown.File)
		if !ok {
			return f, nil
		}
		cur := md
		for i, h := range cur.Headings() {
			titled := r.caser.String(h.Text)
			cur = cur.WithHeadingText(i, titled)
		}
		if cur == md {
			return f, nil
		}
		return cur, nil
	})
}

func init() {
	recipe.Register("rewrite.TitlecaseHeadings", func() recipe.Recipe { return NewTitlecaseHeadings() })
}
