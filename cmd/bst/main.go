// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// The bst command builds search trees from its arguments and inspects them.
package main

import (
	"log"
	"os"

	"github.com/cockroachdb/bstree/internal/base"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  base.Logger = base.DefaultLogger{}
)

var rootCmd = &cobra.Command{
	Use:           "bst [command] (flags)",
	Short:         "binary search tree construction and inspection tool",
	Long:          ``,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		insertCmd,
		inorderCmd,
		validateCmd,
		statsCmd,
		benchCmd,
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable verbose logging")

	insertCmd.Flags().BoolVar(
		&insertOutline, "outline", false, "print the tree as an indented outline")
	insertCmd.Flags().BoolVar(
		&insertSteps, "steps", false, "print every step of the last insertion (requires an invariants build)")

	for _, cmd := range []*cobra.Command{inorderCmd, validateCmd, statsCmd} {
		cmd.Flags().StringVarP(
			&graphFile, "file", "f", "", "read an outline graph from a file (- for stdin) instead of inserting values")
	}

	benchCmd.Flags().IntVarP(
		&benchConfig.trees, "trees", "t", 4, "number of trees to build in parallel")
	benchCmd.Flags().IntVarP(
		&benchConfig.count, "count", "n", 100000, "number of values to insert into each tree")
	benchCmd.Flags().StringVar(
		&benchConfig.dist, "dist", "uniform", "value distribution: uniform, zipf or sequential")
	benchCmd.Flags().Uint64Var(
		&benchConfig.max, "max", 1<<20, "largest value to generate")
	benchCmd.Flags().Float64Var(
		&benchConfig.rate, "rate", 0, "maximum inserts per second per tree (0 means unlimited)")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 1, "random seed; tree i uses seed+i")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("bst: %v", err)
		os.Exit(1)
	}
}

func infof(format string, args ...interface{}) {
	if verbose {
		logger.Infof(format, args...)
	}
}
