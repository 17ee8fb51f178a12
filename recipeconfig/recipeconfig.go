// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recipeconfig loads declarative recipe activation lists from
// YAML, modeled after OpenRewrite's own rewrite.yml activation files (see
// original_source/ for the Java equivalent this module was distilled
// from): a name, a display name, and a recipeList of dotted recipe names
// resolved against the in-process registry (package recipe).
//
// This is ambient CLI/config-loading machinery, not part of the
// scheduler's core contract (only cmd/rewrite imports it).
package recipeconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ghale/rewrite/recipe"
)

// Declaration is one YAML document describing a named, composite recipe.
type Declaration struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"displayName"`
	RecipeList  []string `yaml:"recipeList"`
}

// Load decodes zero or more YAML documents (separated by `---`) from r
// into Declarations.
func Load(r io.Reader) ([]Declaration, error) {
	dec := yaml.NewDecoder(r)
	var decls []Declaration
	for {
		var d Declaration
		if err := dec.Decode(&d); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("decode recipe activation yaml: %w", err)
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// Build resolves d's recipeList against the recipe registry and returns a
// recipe.Group naming them as children.
func Build(d Declaration) (recipe.Recipe, error) {
	kids := make([]recipe.Recipe, 0, len(d.RecipeList))
	for _, name := range d.RecipeList {
		r, ok := recipe.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("recipe %q: unknown child recipe %q", d.Name, name)
		}
		kids = append(kids, r)
	}
	displayName := d.DisplayName
	if displayName == "" {
		displayName = d.Name
	}
	return recipe.NewGroup(displayName, d.Name, kids...), nil
}
