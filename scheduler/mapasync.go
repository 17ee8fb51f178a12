// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheduler

import (
	"golang.org/x/sync/errgroup"

	"github.com/ghale/rewrite/tree"
)

// mapAsync applies fn to every element of files and reassembles the
// results positionally, so the returned slice preserves input order
// regardless of completion order. limit bounds how many calls to fn run
// at once (golang.org/x/sync/errgroup.Group.SetLimit); limit <= 0 leaves
// the group unbounded. The scheduling primitive this models is
// deliberately abstract: a thread pool, a fiber pool, and a
// single-threaded executor are all valid readings of "concurrent" here,
// and perFileStep picks the bound that gives its timeout accounting a
// well-defined order. Errors from fn are not expected in normal
// operation (per_file_apply never returns an error, it reports via
// ctx.OnError and returns the input file), but we still surface
// anything unexpected via errgroup rather than silently dropping it.
func mapAsync(files []tree.SourceFile, limit int, fn func(int, tree.SourceFile) (tree.SourceFile, error)) ([]tree.SourceFile, error) {
	out := make([]tree.SourceFile, len(files))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			r, err := fn(i, f)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
