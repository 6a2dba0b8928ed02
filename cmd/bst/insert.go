// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/bstree"
	"github.com/cockroachdb/bstree/internal/outline"
	"github.com/cockroachdb/bstree/internal/treesteps"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	insertOutline bool
	insertSteps   bool
)

var insertCmd = &cobra.Command{
	Use:   "insert <values...>",
	Short: "insert values into an empty tree and print the tree",
	Long: `
Insert the values, in order, into an empty tree and print the resulting tree.
Values greater than a node go to its right; smaller or equal values go to its
left.
`,
	RunE: runInsert,
}

var inorderCmd = &cobra.Command{
	Use:   "inorder [<values...>]",
	Short: "print the in-order walk of a tree",
	Long: `
Print the values of a tree in in-order sequence (left subtree, node, right
subtree). The tree is built by inserting the values, or read as an outline with
--file, in which case it need not be ordered.
`,
	RunE: runInorder,
}

var validateCmd = &cobra.Command{
	Use:   "validate [<values...>]",
	Short: "check that every parent/child pair of a tree is ordered",
	Long: `
Check that no left child is greater than its parent and no right child is less
than its parent. Only immediate children are compared with each node. Exits with
status 1 if a violation is found.
`,
	RunE: runValidate,
}

var errInvalid = errors.New("tree is not a valid binary search tree")

func runInsert(cmd *cobra.Command, args []string) error {
	if insertSteps && !treesteps.Enabled {
		return errors.New("--steps requires a build with the invariants tag")
	}
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	t := bstree.New[int64]()
	for i, v := range values {
		if insertSteps && i == len(values)-1 && t.Root() != nil {
			rec := treesteps.StartRecording(t.Root(), fmt.Sprintf("insert(%d)", v))
			t.Insert(v)
			fmt.Fprintln(out, rec.Finish().String())
			continue
		}
		t.Insert(v)
	}
	infof("%s", t)
	if insertOutline {
		fmt.Fprint(out, outline.Format(t.Root()))
	} else {
		fmt.Fprint(out, bstree.Pretty(t.Root()))
	}
	return nil
}

func runInorder(cmd *cobra.Command, args []string) error {
	n, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), bstree.Inorder(n))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	n, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}
	if err := bstree.CheckLocalOrder(n, cmp.Compare[int64]); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", err)
		return errInvalid
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
