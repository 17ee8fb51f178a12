// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import "github.com/ghale/rewrite/visit"

// Group is a composite recipe with no per-file edit of its own, purely a
// named container for child recipes, built from a recipeconfig YAML
// activation list's recipeList.
type Group struct {
	Base
	Name string
	Desc string
	Kids []Recipe
}

// NewGroup constructs a Group recipe.
func NewGroup(name, desc string, kids ...Recipe) *Group {
	return &Group{Name: name, Desc: desc, Kids: kids}
}

func (g *Group) DisplayName() string    { return g.Name }
func (g *Group) Description() string    { return g.Desc }
func (g *Group) Visitor() visit.Visitor { return visit.Identity }
func (g *Group) Children() []Recipe     { return g.Kids }
