// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rctx

import "sync/atomic"

// Watch wraps an ExecutionContext and records whether any message write
// occurred since the last Reset. The scheduler's cycle loop uses this to
// detect "a recipe requested another pass" independent of whether any file
// reference changed.
type Watch struct {
	ExecutionContext
	dirty atomic.Bool
}

// NewWatch wraps inner in a Watch.
func NewWatch(inner ExecutionContext) *Watch {
	return &Watch{ExecutionContext: inner}
}

// SetMessage delegates to the wrapped context and marks the watch dirty.
func (w *Watch) SetMessage(key string, value any) {
	w.ExecutionContext.SetMessage(key, value)
	// PANIC is a control-flow signal, not a "recipe requested another
	// cycle" signal; don't let it trip the watch.
	if key != panicKey {
		w.dirty.Store(true)
	}
}

// Dirty reports whether SetMessage has been called (with a non-PANIC key)
// since the last Reset.
func (w *Watch) Dirty() bool { return w.dirty.Load() }

// Reset clears the dirty flag, typically called at the start of each
// cycle.
func (w *Watch) Reset() { w.dirty.Store(false) }
