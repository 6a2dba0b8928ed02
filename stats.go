// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/redact"
)

// Stats describes the shape of a node graph.
type Stats struct {
	// Nodes is the total number of nodes.
	Nodes int
	// Height is the number of levels; 0 for an empty graph, 1 for a single node.
	Height int
	// Leaves is the number of nodes without children.
	Leaves int
	// LevelWidths[i] is the number of nodes at depth i.
	LevelWidths []int
}

// ComputeStats walks the graph rooted at n.
func ComputeStats[T any](n *Node[T]) Stats {
	var s Stats
	var walk func(n *Node[T], depth int)
	walk = func(n *Node[T], depth int) {
		if n == nil {
			return
		}
		s.Nodes++
		if depth == len(s.LevelWidths) {
			s.LevelWidths = append(s.LevelWidths, 0)
		}
		s.LevelWidths[depth]++
		if n.IsLeaf() {
			s.Leaves++
		}
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(n, 0)
	s.Height = len(s.LevelWidths)
	return s
}

// SafeFormat implements redact.SafeFormatter.
func (s Stats) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("nodes=%d height=%d leaves=%d", redact.Safe(s.Nodes), redact.Safe(s.Height), redact.Safe(s.Leaves))
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return redact.StringWithoutMarkers(s)
}

// Fingerprint returns a hash of the shape and values of the graph rooted at n.
// Two graphs have the same fingerprint if they have the same structure and
// their values format identically with %v (barring hash collisions). Trees
// built by inserting the same sequence of values always share a fingerprint.
func Fingerprint[T any](n *Node[T]) uint64 {
	d := xxhash.New()
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			_, _ = d.WriteString("-")
			return
		}
		_, _ = fmt.Fprintf(d, "(%v\x00", n.Value)
		walk(n.Left)
		walk(n.Right)
		_, _ = d.WriteString(")")
	}
	walk(n)
	return d.Sum64()
}
