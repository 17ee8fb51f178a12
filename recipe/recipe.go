// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recipe defines the composable transformation unit the scheduler
// drives: display metadata, validation, applicability predicates, the
// per-file visitor, optional child recipes, and the recipe stack used for
// change attribution.
package recipe

import (
	"fmt"
	"strings"

	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// Validated is the outcome of Recipe.Validate: either the recipe is usable
// this run, or it carries a non-empty list of reasons it isn't. An invalid
// recipe is not a fatal error (its per-file step is skipped for this run,
// but its children still run).
type Validated struct {
	Valid  bool
	Errors []error
}

// Valid1 is a convenience constructor for a successful validation.
func Valid1() Validated { return Validated{Valid: true} }

// Invalid constructs a failed validation carrying errs. Called with no
// errs it returns a valid result, so an invalid Validated always carries
// at least one error.
func Invalid(errs ...error) Validated {
	return Validated{Valid: len(errs) == 0, Errors: errs}
}

// And composes two validations: the result is valid only if both are, and
// carries the concatenation of both error lists.
func (v Validated) And(other Validated) Validated {
	return Validated{
		Valid:  v.Valid && other.Valid,
		Errors: append(append([]error{}, v.Errors...), other.Errors...),
	}
}

// Recipe is a single transformation, optionally composed of child recipes.
// Implementations are expected to be pointer types: recipe identity
// (pointer equality) is the unit the scheduler uses to build attribution
// stacks, and applicability/visitor closures frequently need to refer back
// to recipe-local configuration.
type Recipe interface {
	// DisplayName is the short human name shown in reports and metrics
	// tags.
	DisplayName() string

	// Description is a one-line explanation of what the recipe does.
	Description() string

	// Validate checks whether this recipe can run against ctx this run.
	Validate(ctx rctx.ExecutionContext) Validated

	// ApplicableTest, if non-nil, gates the whole recipe: the recipe (and
	// its per-file step) only runs this cycle if the test visitor edits
	// at least one file in the batch, per the identity contract in
	// package visit.
	ApplicableTest() visit.Visitor

	// SingleSourceApplicableTest, if non-nil, gates a single file: a file
	// for which this test returns the same instance is skipped for this
	// recipe (but other children may still process it).
	SingleSourceApplicableTest() visit.Visitor

	// Visitor is the per-file edit this recipe applies.
	Visitor() visit.Visitor

	// VisitAll is the whole-batch step run after the per-file visitor,
	// letting a recipe add, replace, or remove files wholesale (e.g.
	// generate a new file). The default is the identity function.
	VisitAll(ctx rctx.ExecutionContext, files []tree.SourceFile) ([]tree.SourceFile, error)

	// Children returns this recipe's ordered sub-recipes.
	Children() []Recipe

	// CausesAnotherCycle reports whether, after this recipe subtree
	// changes anything, the scheduler should run another cycle.
	CausesAnotherCycle() bool
}

// Base is embedded by concrete recipes to supply the common defaults:
// no applicability gates, no children, an identity VisitAll, and
// CausesAnotherCycle() == true (most composite recipes want another pass
// in case a sibling's edit unlocks further work; leaf recipes that know
// better should override).
type Base struct{}

func (Base) ApplicableTest() visit.Visitor             { return nil }
func (Base) SingleSourceApplicableTest() visit.Visitor { return nil }
func (Base) Validate(rctx.ExecutionContext) Validated  { return Valid1() }
func (Base) Children() []Recipe                        { return nil }
func (Base) CausesAnotherCycle() bool                  { return true }
func (Base) VisitAll(_ rctx.ExecutionContext, files []tree.SourceFile) ([]tree.SourceFile, error) {
	return files, nil
}

// Stack is an ordered path of recipes from the root of the recipe tree
// down to the recipe currently being applied, the attribution unit.
type Stack []Recipe

// Push returns a new stack with r appended.
func (s Stack) Push(r Recipe) Stack {
	next := make(Stack, len(s)+1)
	copy(next, s)
	next[len(s)] = r
	return next
}

// Equal reports whether s and other name the same recipes, in the same
// order, by recipe identity (pointer equality of the underlying
// concrete recipe values).
func (s Stack) Equal(other Stack) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns a stable string uniquely identifying this stack, suitable
// for use as a map key in a set of recipe stacks (package marker).
func (s Stack) Key() string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteByte('/')
		}
		fmt.Fprintf(&b, "%p:%s", r, r.DisplayName())
	}
	return b.String()
}

// String renders the stack as "root > child > grandchild" for diagnostics.
func (s Stack) String() string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = r.DisplayName()
	}
	return strings.Join(names, " > ")
}

// Root returns the first recipe in the stack, or nil if s is empty.
func (s Stack) Root() Recipe {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

// registry resolves a dotted recipe name (as used in a YAML recipe
// activation list, package recipeconfig) to a constructor. Recipes
// register themselves from an init() in their defining package.
var registry = map[string]func() Recipe{}

// Register installs a constructor for name. Re-registering the same name
// replaces the previous constructor (useful in tests).
func Register(name string, ctor func() Recipe) {
	registry[name] = ctor
}

// Lookup constructs the recipe registered under name, if any.
func Lookup(name string) (Recipe, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
