// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree

// Inorder returns the values of the graph rooted at n: the left subtree, then
// n, then the right subtree. The result follows the structure of the graph; it
// is sorted only if the graph is a search tree. A nil node yields an empty
// (nil) slice.
func Inorder[T any](n *Node[T]) []T {
	return AppendInorder(nil, n)
}

// AppendInorder appends the in-order values of the graph rooted at n to dst
// and returns the extended slice.
func AppendInorder[T any](dst []T, n *Node[T]) []T {
	if n == nil {
		return dst
	}
	if n.Left != nil {
		dst = AppendInorder(dst, n.Left)
	}
	dst = append(dst, n.Value)
	if n.Right != nil {
		dst = AppendInorder(dst, n.Right)
	}
	return dst
}
