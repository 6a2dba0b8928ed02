// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import "github.com/cockroachdb/bstree/internal/treesteps"

// Node is a vertex in a binary tree. A node exclusively owns its children;
// graphs must not share nodes or contain cycles.
//
// Nothing about a Node enforces search-tree ordering. Nodes linked by
// Tree.Insert are ordered; nodes linked by hand need not be.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode returns a node with the given value and children.
func NewNode[T any](v T, left, right *Node[T]) *Node[T] {
	return &Node[T]{Value: v, Left: left, Right: right}
}

// IsLeaf returns true if n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

var _ treesteps.Node = (*Node[int])(nil)

// TreeStepsNode implements treesteps.Node. A missing child is reported as a
// property when its sibling is present, so the side of the remaining child
// stays visible.
func (n *Node[T]) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("%v", n.Value)
	switch {
	case n.Left == nil && n.Right != nil:
		info.AddPropf("left", "nil")
	case n.Left != nil && n.Right == nil:
		info.AddPropf("right", "nil")
	}
	info.AddChildren(n.Left, n.Right)
	return info
}
