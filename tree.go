// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/bstree/internal/invariants"
	"github.com/cockroachdb/bstree/internal/treesteps"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Compare returns -1, 0, or +1 depending on whether a is less than, equal to,
// or greater than b. It must define a total order.
type Compare[T any] func(a, b T) int

// Tree is an unbalanced binary search tree. The zero value is not usable;
// construct trees with New or NewWithCompare.
type Tree[T any] struct {
	root    *Node[T]
	compare Compare[T]
	len     int
}

// New returns an empty tree ordered by the natural order of T, as defined by
// cmp.Compare. For floating-point types NaN sorts before every other value.
func New[T constraints.Ordered]() *Tree[T] {
	return NewWithCompare(cmp.Compare[T])
}

// NewWithCompare returns an empty tree ordered by compare.
func NewWithCompare[T any](compare Compare[T]) *Tree[T] {
	if compare == nil {
		panic(errors.AssertionFailedf("bstree: nil Compare"))
	}
	return &Tree[T]{compare: compare}
}

// Root returns the root node, or nil if the tree is empty. The returned graph
// is owned by the tree; callers must not modify it.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of values inserted into the tree.
func (t *Tree[T]) Len() int {
	return t.len
}

// Insert adds v to the tree as a new leaf. Starting at the root, the walk goes
// right when v is greater than the current node's value and left otherwise, so
// a value equal to an existing one ends up in that node's left subtree.
// Existing nodes are never moved or modified, other than to link the new leaf.
func (t *Tree[T]) Insert(v T) {
	if t.compare == nil {
		panic(errors.AssertionFailedf("bstree: zero Tree; use New or NewWithCompare"))
	}
	n := &Node[T]{Value: v}
	t.len++
	if t.root == nil {
		t.root = n
		return
	}
	for cur, depth := t.root, 0; ; depth++ {
		invariants.CheckDepth(depth, t.len)
		var op *treesteps.Op
		if treesteps.Enabled && treesteps.IsRecording(cur) {
			op = treesteps.StartOpf(cur, "insert(%v)", v)
		}
		if t.compare(v, cur.Value) > 0 {
			if cur.Right == nil {
				cur.Right = n
				treesteps.NodeUpdated(cur, "right attached")
				op.Finishf("attached right")
				break
			}
			op.Finishf("go right")
			cur = cur.Right
		} else {
			if cur.Left == nil {
				cur.Left = n
				treesteps.NodeUpdated(cur, "left attached")
				op.Finishf("attached left")
				break
			}
			op.Finishf("go left")
			cur = cur.Left
		}
	}
	if invariants.Sometimes(10) {
		t.checkInvariants()
	}
}

// Inorder returns the values of the tree in ascending order. Equal values are
// returned in reverse insertion order.
func (t *Tree[T]) Inorder() []T {
	return Inorder(t.root)
}

// Valid runs IsValidBSTFunc on the tree using the tree's comparison.
func (t *Tree[T]) Valid() bool {
	return IsValidBSTFunc(t.root, t.compare)
}

// checkInvariants panics if the tree is not a search tree with Len() nodes.
func (t *Tree[T]) checkInvariants() {
	values := Inorder(t.root)
	if len(values) != t.len {
		panic(errors.AssertionFailedf("bstree: found %d nodes, expected %d", len(values), t.len))
	}
	if err := CheckLocalOrder(t.root, t.compare); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "bstree: inserted tree out of order"))
	}
	if !slices.IsSortedFunc(values, t.compare) {
		panic(errors.AssertionFailedf("bstree: in-order walk is not sorted"))
	}
}
