// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheduler drives recipe execution cycles: it walks the recipe
// tree depth-first, dispatches per-file visits through mapAsync (bounded to
// one visit in flight, see perFileConcurrency), widens the
// batch via each recipe's whole-batch step, enforces timeouts and the
// cooperative panic flag, and records deletions, then hands the
// before/after sets to package result for attribution.
package scheduler

import (
	"sync/atomic"
	"time"

	"github.com/ghale/rewrite/marker"
	"github.com/ghale/rewrite/rctx"
	"github.com/ghale/rewrite/recipe"
	"github.com/ghale/rewrite/rerrors"
	"github.com/ghale/rewrite/result"
	"github.com/ghale/rewrite/telemetry"
	"github.com/ghale/rewrite/tree"
	"github.com/ghale/rewrite/visit"
)

// Scheduler runs a recipe tree over a batch of files to a fixed point.
type Scheduler struct{}

// New returns a Scheduler. It holds no state of its own; every run gets
// its own DeletionMap and watch-wrapped context.
func New() *Scheduler { return &Scheduler{} }

// Run drives the cycle loop and returns the
// diffed results of the whole run.
func (s *Scheduler) Run(root recipe.Recipe, filesBefore []tree.SourceFile, ctx rctx.ExecutionContext, maxCycles, minCycles int) ([]result.Result, error) {
	if minCycles < 1 {
		minCycles = 1
	}
	watch := rctx.NewWatch(ctx)
	dm := NewDeletionMap()

	acc := filesBefore
	for i := 0; i < maxCycles; i++ {
		after, err := s.visit(recipe.Stack{root}, acc, watch, dm)
		if err != nil {
			return nil, err
		}
		stop := i+1 >= minCycles && (tree.SameSlice(after, acc) && !watch.Dirty() || !root.CausesAnotherCycle())
		if stop {
			acc = after
			break
		}
		acc = after
		watch.Reset()
	}

	return result.Build(filesBefore, acc, dm)
}

// visit applies the recipe at the top of stack to files, then recurses
// into its children in order.
func (s *Scheduler) visit(stack recipe.Stack, files []tree.SourceFile, ctx rctx.ExecutionContext, dm *DeletionMap) ([]tree.SourceFile, error) {
	r := stack[len(stack)-1]
	sink := ctx.Sink()
	sink.Count("recipe.run", float64(len(files)), telemetry.Tag{Key: "recipe", Value: r.DisplayName()})

	if test := r.ApplicableTest(); test != nil {
		applicable := false
		for _, f := range files {
			out, err := test.Visit(ctx, f)
			if err != nil {
				ctx.OnError(err)
				continue
			}
			if !tree.Same(f, out) {
				applicable = true
				break
			}
		}
		if !applicable {
			stop := sink.Timer("recipe.visit", telemetry.Tag{Key: "recipe", Value: r.DisplayName()})
			stop(telemetry.OutcomeSkipped)
			return files, nil
		}
	}

	var after []tree.SourceFile
	if v := r.Validate(ctx); !v.Valid {
		stop := sink.Timer("recipe.visit", telemetry.Tag{Key: "recipe", Value: r.DisplayName()})
		stop(telemetry.OutcomeSkipped)
		after = files
	} else {
		var err error
		after, err = s.perFileStep(stack, files, ctx, dm, sink)
		if err != nil {
			return nil, err
		}
	}

	widened, err := r.VisitAll(ctx, after)
	if err != nil {
		return nil, err
	}
	if !tree.SameSlice(widened, after) {
		attributeWidening(stack, after, widened, dm)
	}

	out := widened
	for _, child := range r.Children() {
		if ctx.Panic() {
			break
		}
		out, err = s.visit(stack.Push(child), out, ctx, dm)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// perFileConcurrency bounds how many files a single recipe-visit processes
// at once. A bound of one gives the timeout accounting below a
// well-defined order: a file that is still running when the budget
// expires is observed as the timeout, and every file queued behind it
// inherits that observation at its own entry rather than racing it.
// map_async's scheduling primitive is deliberately abstract (a thread
// pool, a fiber pool, or a single-threaded executor are all valid), and
// this is the single-threaded reading of it.
const perFileConcurrency = 1

// perFileStep runs the recipe's per-file visitor over files, preserving
// order, honoring the single-source applicability gate, the per-visit
// timeout, and the cooperative panic flag.
func (s *Scheduler) perFileStep(stack recipe.Stack, files []tree.SourceFile, ctx rctx.ExecutionContext, dm *DeletionMap, sink telemetry.Sink) ([]tree.SourceFile, error) {
	r := stack[len(stack)-1]
	singleTest := r.SingleSourceApplicableTest()
	v := r.Visitor()
	budget := ctx.RunTimeout(len(files))
	start := time.Now()
	deadline := start.Add(budget)
	var timedOut atomic.Bool
	var reportOnce atomic.Bool

	reportTimeout := func() {
		if reportOnce.CompareAndSwap(false, true) {
			timedOut.Store(true)
			ctx.OnTimeout(&rerrors.RecipeTimeoutError{
				Recipe:  r.DisplayName(),
				NFiles:  len(files),
				Elapsed: time.Since(start).String(),
			})
		}
	}

	out, err := mapAsync(files, perFileConcurrency, func(_ int, f tree.SourceFile) (tree.SourceFile, error) {
		tag := telemetry.Tag{Key: "recipe", Value: r.DisplayName()}
		stop := sink.Timer("recipe.visit", tag)

		if singleTest != nil {
			res, terr := singleTest.Visit(ctx, f)
			if terr == nil && tree.Same(f, res) {
				stop(telemetry.OutcomeSkipped)
				return f, nil
			}
		}

		if timedOut.Load() {
			stop(telemetry.OutcomeTimeout)
			return f, nil
		}

		if ctx.Panic() {
			stop(telemetry.OutcomeSkipped)
			return f, nil
		}

		// Race the visit itself against the remaining budget, rather than
		// only checking the clock at entry: a visit already in flight when
		// the deadline passes must still be observed as a timeout, not
		// left to run to completion unobserved.
		type visited struct {
			after tree.SourceFile
			err   error
		}
		done := make(chan visited, 1)
		go func() {
			after, verr := safeVisit(v, ctx, f)
			done <- visited{after, verr}
		}()

		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		select {
		case <-time.After(remaining):
			reportTimeout()
			stop(telemetry.OutcomeTimeout)
			return f, nil
		case res := <-done:
			if res.err != nil {
				ctx.OnError(&rerrors.VisitorError{Recipe: r.DisplayName(), Path: f.SourcePath(), Err: res.err})
				stop(telemetry.OutcomeError)
				return f, nil
			}
			after := res.after
			if after == nil {
				dm.Set(f.ID(), stack)
				stop(telemetry.OutcomeDeleted)
				return nil, nil
			}
			if tree.Same(f, after) {
				stop(telemetry.OutcomeUnchanged)
				return f, nil
			}
			after = after.WithMarkers(marker.Attach(after, stack))
			stop(telemetry.OutcomeChanged)
			return after, nil
		}
	})
	if err != nil {
		return nil, err
	}

	compacted := make([]tree.SourceFile, 0, len(out))
	for _, f := range out {
		if f != nil {
			compacted = append(compacted, f)
		}
	}
	return compacted, nil
}

// safeVisit recovers from a panicking visitor, turning it into an error
// (a VisitorError thrown from a per-file visit).
func safeVisit(v visit.Visitor, ctx rctx.ExecutionContext, f tree.SourceFile) (after tree.SourceFile, err error) {
	defer func() {
		if p := recover(); p != nil {
			after, err = f, asError(p)
		}
	}()
	return v.Visit(ctx, f)
}

func asError(p any) error {
	if e, ok := p.(error); ok {
		return e
	}
	return &panicValue{p}
}

type panicValue struct{ v any }

func (p *panicValue) Error() string { return formatPanic(p.v) }

func formatPanic(v any) string {
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return "panic: " + toString(v)
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "non-string panic value"
}

// attributeWidening decorates every file in widened that is new or whose
// reference changed relative to before with stack's attribution, and
// records a deletion-map entry for every id present in before but absent
// from widened.
func attributeWidening(stack recipe.Stack, before, widened []tree.SourceFile, dm *DeletionMap) {
	beforeByID := make(map[tree.ID]tree.SourceFile, len(before))
	for _, f := range before {
		beforeByID[f.ID()] = f
	}
	widenedIDs := make(map[tree.ID]struct{}, len(widened))

	for i, f := range widened {
		widenedIDs[f.ID()] = struct{}{}
		prior, existed := beforeByID[f.ID()]
		if existed && tree.Same(prior, f) {
			continue
		}
		if !existed {
			dm.Set(f.ID(), stack)
		}
		widened[i] = f.WithMarkers(marker.Attach(f, stack))
	}

	for id := range beforeByID {
		if _, ok := widenedIDs[id]; !ok {
			dm.Set(id, stack)
		}
	}
}
