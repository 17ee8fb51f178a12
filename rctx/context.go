// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rctx implements the engine's per-run execution context: the
// message map recipes use to talk to later cycles, the error/timeout
// sinks, the run-timeout policy, and the cooperative panic flag.
package rctx

import (
	"sync"
	"time"

	"github.com/ghale/rewrite/telemetry"
)

// panicKey is the well-known message key the cooperative stop flag is
// stored under.
const panicKey = "PANIC"

// ExecutionContext is the per-run scratchpad threaded through every visit.
type ExecutionContext interface {
	// Message reads a value previously written with SetMessage.
	Message(key string) (any, bool)
	// SetMessage records a value recipes can read in a later cycle.
	SetMessage(key string, value any)

	// OnError reports a recoverable error (ParseError, VisitorError,
	// RecipeTimeoutError). Never aborts the run.
	OnError(err error)
	// OnTimeout reports a RecipeTimeoutError in addition to OnError,
	// giving callers that care specifically about deadlines a distinct
	// hook.
	OnTimeout(err error)

	// RunTimeout returns the wall-clock budget for one recipe visit over
	// a batch of nFiles files.
	RunTimeout(nFiles int) time.Duration

	// Panic reports whether the cooperative stop flag is set.
	Panic() bool
	// SetPanic sets the cooperative stop flag; checked at per-file entry
	// and between child recipes.
	SetPanic()

	// Sink returns the metrics sink for this run (never nil).
	Sink() telemetry.Sink
}

// Context is the default ExecutionContext implementation.
type Context struct {
	mu         sync.Mutex
	messages   map[string]any
	onError    func(error)
	onTimeout  func(error)
	runTimeout func(nFiles int) time.Duration
	sink       telemetry.Sink
}

// Option configures a new Context.
type Option func(*Context)

// WithOnError sets the error sink.
func WithOnError(fn func(error)) Option { return func(c *Context) { c.onError = fn } }

// WithOnTimeout sets the timeout sink.
func WithOnTimeout(fn func(error)) Option { return func(c *Context) { c.onTimeout = fn } }

// WithRunTimeout sets the per-visit timeout policy.
func WithRunTimeout(fn func(nFiles int) time.Duration) Option {
	return func(c *Context) { c.runTimeout = fn }
}

// WithSink sets the metrics sink.
func WithSink(s telemetry.Sink) Option { return func(c *Context) { c.sink = s } }

// New builds a Context with sane, no-op defaults, overridden by opts.
func New(opts ...Option) *Context {
	c := &Context{
		messages:   map[string]any{},
		onError:    func(error) {},
		onTimeout:  func(error) {},
		runTimeout: func(int) time.Duration { return 30 * time.Second },
		sink:       telemetry.NoOp,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Context) Message(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.messages[key]
	return v, ok
}

func (c *Context) SetMessage(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages[key] = value
}

func (c *Context) OnError(err error) {
	if err == nil {
		return
	}
	c.onError(err)
}

func (c *Context) OnTimeout(err error) {
	if err == nil {
		return
	}
	c.onTimeout(err)
	c.onError(err)
}

func (c *Context) RunTimeout(nFiles int) time.Duration { return c.runTimeout(nFiles) }

func (c *Context) Panic() bool {
	_, ok := c.Message(panicKey)
	return ok
}

func (c *Context) SetPanic() { c.SetMessage(panicKey, true) }

func (c *Context) Sink() telemetry.Sink { return c.sink }
