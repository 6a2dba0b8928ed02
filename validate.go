// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// IsValidBST reports whether every parent/child pair in the graph rooted at n
// is ordered: a left child is not greater than its parent and a right child is
// not less than its parent. A nil node is valid.
//
// Only immediate children are compared with their parent; a value is never
// compared with its other ancestors. For example, the graph
//
//	10
//	 L 5
//	  R 12
//
// is reported valid even though 12 sits in the left subtree of 10. Use an
// in-order walk (see Inorder) to check ordering across the whole graph.
func IsValidBST[T constraints.Ordered](n *Node[T]) bool {
	return IsValidBSTFunc(n, cmp.Compare[T])
}

// IsValidBSTFunc is like IsValidBST, with values ordered by compare.
func IsValidBSTFunc[T any](n *Node[T], compare Compare[T]) bool {
	return CheckLocalOrder(n, compare) == nil
}

// CheckLocalOrder performs the same checks as IsValidBSTFunc and returns an
// error describing the first violation found, or nil. At each node the left
// child is checked, then the right child, then the left subtree and finally
// the right subtree. The error unwraps to an *OrderViolation[T].
func CheckLocalOrder[T any](n *Node[T], compare Compare[T]) error {
	if n == nil {
		return nil
	}
	if n.Left != nil && compare(n.Left.Value, n.Value) > 0 {
		return errors.WithStack(&OrderViolation[T]{Parent: n.Value, Child: n.Left.Value, Side: SideLeft})
	}
	if n.Right != nil && compare(n.Right.Value, n.Value) < 0 {
		return errors.WithStack(&OrderViolation[T]{Parent: n.Value, Child: n.Right.Value, Side: SideRight})
	}
	if err := CheckLocalOrder(n.Left, compare); err != nil {
		return err
	}
	return CheckLocalOrder(n.Right, compare)
}

// Side identifies a child slot.
type Side int8

const (
	SideLeft Side = iota
	SideRight
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// SafeValue implements redact.SafeValue.
func (Side) SafeValue() {}

// OrderViolation describes a child whose value is on the wrong side of its
// parent's value.
type OrderViolation[T any] struct {
	Parent T
	Child  T
	Side   Side
}

var _ errors.SafeFormatter = (*OrderViolation[int])(nil)

// SafeFormatError implements errors.SafeFormatter. The values are user data and
// are marked unsafe.
func (v *OrderViolation[T]) SafeFormatError(p errors.Printer) (next error) {
	if v.Side == SideLeft {
		p.Printf("left child %v is greater than its parent %v", v.Child, v.Parent)
	} else {
		p.Printf("right child %v is less than its parent %v", v.Child, v.Parent)
	}
	return nil
}

// Format implements fmt.Formatter.
func (v *OrderViolation[T]) Format(s fmt.State, verb rune) { errors.FormatError(v, s, verb) }

// Error implements the error interface.
func (v *OrderViolation[T]) Error() string { return fmt.Sprint(v) }
