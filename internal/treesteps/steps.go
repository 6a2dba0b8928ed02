// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Steps is the result of a recording.
type Steps struct {
	Name  string
	Steps []Step
}

// Step is a snapshot of the hierarchy taken at a point of interest.
type Step struct {
	Name string
	Root TreeNode
}

// TreeNode is the state of a node (and its subtree) at the time of a step.
type TreeNode struct {
	Name       string
	Properties [][2]string
	// Ops in progress on this node, with their current state.
	Ops      []string
	Children []TreeNode
}

// String renders every step, one tree per step.
func (s Steps) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Name)
	for i := range s.Steps {
		fmt.Fprintf(&b, "step %d/%d: %s\n", i+1, len(s.Steps), s.Steps[i].Name)
		b.WriteString(s.Steps[i].Root.String())
	}
	return b.String()
}

// String renders the subtree rooted at n.
func (n TreeNode) String() string {
	tp := treeprint.NewWithRoot(n.label())
	n.addChildren(tp)
	return tp.String()
}

func (n TreeNode) label() string {
	if len(n.Ops) == 0 {
		return n.Name
	}
	return fmt.Sprintf("%s ← %s", n.Name, strings.Join(n.Ops, ", "))
}

func (n TreeNode) addChildren(tp treeprint.Tree) {
	for _, p := range n.Properties {
		tp.AddNode(fmt.Sprintf("%s: %s", p[0], p[1]))
	}
	for i := range n.Children {
		n.Children[i].addChildren(tp.AddBranch(n.Children[i].label()))
	}
}
