// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghale/rewrite/rctx"
)

func TestWatchStartsClean(t *testing.T) {
	w := rctx.NewWatch(rctx.New())
	assert.False(t, w.Dirty())
}

func TestWatchDirtiesOnSetMessage(t *testing.T) {
	w := rctx.NewWatch(rctx.New())
	w.SetMessage("key", "value")
	assert.True(t, w.Dirty())
}

func TestWatchIgnoresPanicKey(t *testing.T) {
	w := rctx.NewWatch(rctx.New())
	w.SetMessage("PANIC", true)
	assert.False(t, w.Dirty())
}

func TestWatchResetClearsDirty(t *testing.T) {
	w := rctx.NewWatch(rctx.New())
	w.SetMessage("key", "value")
	w.Reset()
	assert.False(t, w.Dirty())
}
