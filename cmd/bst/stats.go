// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/cockroachdb/bstree"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [<values...>]",
	Short: "print the shape of a tree",
	Long: `
Print the number of nodes, height and leaves of a tree, along with the number
of nodes at each depth. The tree is built by inserting the values, or read as
an outline with --file.
`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	n, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}
	writeStats(cmd.OutOrStdout(), bstree.ComputeStats(n), bstree.Fingerprint(n))
	return nil
}

// minHeight is the height of a perfectly balanced tree with n nodes.
func minHeight(n int) int {
	return bits.Len(uint(n))
}

func writeStats(w io.Writer, s bstree.Stats, fingerprint uint64) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Nodes", "Height", "Min height", "Leaves", "Fingerprint"})
	tbl.Append([]string{
		string(crhumanize.Count(s.Nodes, crhumanize.Compact)),
		fmt.Sprintf("%d", s.Height),
		fmt.Sprintf("%d", minHeight(s.Nodes)),
		string(crhumanize.Count(s.Leaves, crhumanize.Compact)),
		fmt.Sprintf("%016x", fingerprint),
	})
	tbl.Render()

	if s.Height < 2 {
		return
	}
	widths := make([]float64, len(s.LevelWidths))
	for i, width := range s.LevelWidths {
		widths[i] = float64(width)
	}
	fmt.Fprintln(w, asciigraph.Plot(widths,
		asciigraph.Height(10),
		asciigraph.Caption("nodes per depth")))
}
