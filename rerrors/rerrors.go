// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rerrors defines the core's error taxonomy: parse failures,
// per-file visitor failures, per-recipe-visit timeouts, and the fatal
// invariant-violation case raised by the result builder. Messages are
// formatted with golang.org/x/xerrors. ParseError and VisitorError wrap an
// underlying cause and expose it via Unwrap; RecipeTimeoutError and
// InvariantViolationError carry no cause.
package rerrors

import (
	"golang.org/x/xerrors"
)

// ParseError is reported via ctx.OnError when a parser fails on a file;
// the offending file is dropped from the batch, and parsing continues.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return xerrors.Errorf("parse %s: %w", e.Path, e.Err).Error()
}
func (e *ParseError) Unwrap() error { return e.Err }

// VisitorError wraps a panic or returned error from a per-file visit; the
// file passes through unchanged and the batch continues.
type VisitorError struct {
	Recipe string
	Path   string
	Err    error
}

func (e *VisitorError) Error() string {
	return xerrors.Errorf("recipe %s visiting %s: %w", e.Recipe, e.Path, e.Err).Error()
}
func (e *VisitorError) Unwrap() error { return e.Err }

// RecipeTimeoutError is reported exactly once per recipe-visit when the
// elapsed wall-clock exceeds ctx.RunTimeout(n); remaining files in that
// visit pass through unchanged.
type RecipeTimeoutError struct {
	Recipe  string
	NFiles  int
	Elapsed string
}

func (e *RecipeTimeoutError) Error() string {
	return xerrors.Errorf("recipe %s timed out after %s visiting %d files", e.Recipe, e.Elapsed, e.NFiles).Error()
}

// InvariantViolationError is fatal: the result builder found a file that
// the canonicalizer says changed, but which carries no
// RecipesThatMadeChanges marker. Unlike the other three, this propagates
// out of the scheduler's Run.
type InvariantViolationError struct {
	Path   string
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return xerrors.Errorf("invariant violation for %s: %s", e.Path, e.Detail).Error()
}
