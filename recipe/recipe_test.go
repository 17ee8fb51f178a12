// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/visit"
)

type stubRecipe struct {
	recipe.Base
	name string
}

func (s *stubRecipe) DisplayName() string { return s.name }
func (s *stubRecipe) Description() string { return "" }
func (s *stubRecipe) Visitor() visit.Visitor {
	return visit.Identity
}

func TestStackEqualIsByPointerIdentity(t *testing.T) {
	a := &stubRecipe{name: "a"}
	b := &stubRecipe{name: "a"} // same DisplayName, different identity

	s1 := recipe.Stack{a}
	s2 := recipe.Stack{a}
	s3 := recipe.Stack{b}

	assert.True(t, s1.Equal(s2))
	assert.False(t, s1.Equal(s3))
}

func TestStackPushAndKeyAreStable(t *testing.T) {
	a := &stubRecipe{name: "a"}
	b := &stubRecipe{name: "b"}

	s := recipe.Stack{}.Push(a).Push(b)
	assert.Equal(t, 2, len(s))
	assert.Equal(t, a, s.Root())
	assert.Equal(t, s.Key(), recipe.Stack{a, b}.Key())
	assert.Equal(t, "a > b", s.String())
}

func TestValidatedAnd(t *testing.T) {
	ok := recipe.Valid1()
	bad := recipe.Invalid(errors.New("boom"))

	combined := ok.And(bad)
	assert.False(t, combined.Valid)
	assert.Len(t, combined.Errors, 1)
}

func TestRegisterAndLookup(t *testing.T) {
	recipe.Register("test.Stub", func() recipe.Recipe {
		return &stubRecipe{name: "registered"}
	})

	r, ok := recipe.Lookup("test.Stub")
	require := assert.New(t)
	require.True(ok)
	require.Equal("registered", r.DisplayName())

	_, ok = recipe.Lookup("test.DoesNotExist")
	require.False(ok)
}
