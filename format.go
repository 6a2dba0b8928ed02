// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import (
	"fmt"

	"github.com/cockroachdb/redact"
	"github.com/xlab/treeprint"
)

// maxFormatValues is the number of values included by Tree.SafeFormat.
const maxFormatValues = 16

var _ redact.SafeFormatter = (*Tree[int])(nil)

// SafeFormat implements redact.SafeFormatter. It prints the size and height of
// the tree followed by its first values in order. Values are user data and
// are marked unsafe.
func (t *Tree[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("bstree(len=%d, height=%d) [", redact.Safe(t.len), redact.Safe(ComputeStats(t.root).Height))
	values := Inorder(t.root)
	for i, v := range values {
		if i == maxFormatValues {
			w.Printf(" ... +%d", redact.Safe(len(values)-i))
			break
		}
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v)
	}
	w.SafeRune(']')
}

// String implements fmt.Stringer.
func (t *Tree[T]) String() string {
	return redact.StringWithoutMarkers(t)
}

// Pretty renders the graph rooted at n with box-drawing characters, one node
// per line. Children are labelled with their side:
//
//	10
//	├── L 5
//	│   └── L 0
//	└── R 15
//	    └── R 20
func Pretty[T any](n *Node[T]) string {
	if n == nil {
		return "<empty>\n"
	}
	tp := treeprint.NewWithRoot(fmt.Sprint(n.Value))
	prettyChildren(tp, n)
	return tp.String()
}

func prettyChildren[T any](tp treeprint.Tree, n *Node[T]) {
	add := func(side string, c *Node[T]) {
		label := fmt.Sprintf("%s %v", side, c.Value)
		if c.IsLeaf() {
			tp.AddNode(label)
			return
		}
		prettyChildren(tp.AddBranch(label), c)
	}
	if n.Left != nil {
		add("L", n.Left)
	}
	if n.Right != nil {
		add("R", n.Right)
	}
}
