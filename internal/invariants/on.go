// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build invariants || race

package invariants

import "fmt"

// Enabled is true if we were built with the "invariants" or "race" build tags.
const Enabled = true

// CheckDepth panics if depth exceeds limit. Used to catch walks that would
// not terminate on a corrupted (cyclic) node graph.
func CheckDepth(depth, limit int) {
	if depth > limit {
		panic(fmt.Sprintf("walk depth %d exceeds node count %d; cycle in node graph?", depth, limit))
	}
}
