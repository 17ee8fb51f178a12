// Copyright 2026 The Rewrite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result

import (
	"bytes"
	"fmt"

	"github.com/ghale/rewrite/marker"
	"github.com/ghale/rewrite/tree"
)

// canonical prints f through the marker-aware canonicalizer: a
// header naming every non-attribution marker with an observable textual
// effect, followed by the file's normal printed text. Two files compare
// equal under canonical iff they'd be considered unchanged by the result
// builder, in particular:
//
//   - a file that only gained or lost a RecipesThatMadeChanges marker
//     canonicalizes identically to its un-attributed self, since
//     attribution must never itself register as a change;
//   - a file that gained or lost a marker with no textual effect (one not
//     implementing tree.CanonicalMarker, or whose Canonical() is empty)
//     also canonicalizes identically (most markers are pure out-of-band
//     metadata, invisible to printing);
//   - any other marker change contributes a different header and is
//     therefore observed as a change.
func canonical(f tree.SourceFile) (string, error) {
	var buf bytes.Buffer
	for _, k := range f.Markers().Kinds() {
		if k == marker.RecipesThatMadeChangesKind {
			continue
		}
		m, _ := f.Markers().Get(k)
		cm, ok := m.(tree.CanonicalMarker)
		if !ok {
			continue
		}
		if s := cm.Canonical(); s != "" {
			fmt.Fprintf(&buf, "markers[%s]→", s)
		}
	}
	if err := f.Print(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
