// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/bstree"
	"github.com/cockroachdb/bstree/internal/outline"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var graphFile string

func parseValues(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		values[i] = v
	}
	return values, nil
}

func buildTree(values []int64) *bstree.Tree[int64] {
	t := bstree.New[int64]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// loadGraph returns the graph named by --file, or the tree built by inserting
// the arguments in order.
func loadGraph(cmd *cobra.Command, args []string) (*bstree.Node[int64], error) {
	if graphFile == "" {
		values, err := parseValues(args)
		if err != nil {
			return nil, err
		}
		return buildTree(values).Root(), nil
	}
	if len(args) > 0 {
		return nil, errors.New("values cannot be combined with --file")
	}
	var data []byte
	var err error
	if graphFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(graphFile)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", graphFile)
	}
	n, err := outline.Parse(string(data), func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", graphFile)
	}
	infof("loaded graph with %d nodes from %s", bstree.ComputeStats(n).Nodes, graphFile)
	return n, nil
}
