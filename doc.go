// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bstree provides an unbalanced binary search tree together with two
// read-only visitors over arbitrary node graphs: an in-order traversal and a
// local ordering check.
//
// A Tree is only ever mutated by Insert. Values greater than a node's value go
// to its right subtree; values that are less than or equal go to its left
// subtree, so duplicates accumulate on the left. There is no rebalancing,
// which means the shape of a tree is fully determined by the insertion order
// and sorted input produces a degenerate, list-like tree.
//
// Inorder and IsValidBST operate on *Node values rather than on a Tree, so
// they can be applied to any subtree or to hand-built graphs:
//
//	root := &bstree.Node[int]{Value: 1,
//	    Left:  &bstree.Node[int]{Value: 2},
//	    Right: &bstree.Node[int]{Value: 3},
//	}
//	bstree.Inorder(root)    // [2 1 3]
//	bstree.IsValidBST(root) // false: 2 is a left child of 1
//
// IsValidBST only compares each node with its immediate children. A node deep
// in a left subtree that exceeds an ancestor two or more levels up goes
// undetected; see CheckLocalOrder.
//
// Trees created with New order values with cmp.Compare. For floating-point
// types this makes NaN the smallest value, so a value inserted below a NaN
// node goes to its right subtree.
//
// Insert is iterative. Inorder, the validator and the formatting helpers
// recurse once per level, so their stack depth is proportional to the height
// of the tree.
//
// None of the types are safe for concurrent mutation; a Tree that is written
// from multiple goroutines must be protected by the caller.
package bstree
