// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package outline converts between node graphs and an indented text form. For
// example:
//
//	10
//	 L 5
//	  R 12
//	 R 15
//
// describes a root with value 10, a left child 5 which has a right child 12,
// and a right child 15. Every line except the first names its side with an L
// or R marker. The form describes arbitrary graphs, including ones that
// violate search-tree ordering, which makes it useful for exercising the
// traversal and the validator independently of insertion.
package outline

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/bstree"
	"github.com/cockroachdb/errors"
)

// Empty is the outline of an absent node.
const Empty = "<empty>"

// Parse a multi-line outline into a node graph. Values are converted with
// parseValue.
//
// The indentation step is arbitrary but it must be consistent. Tabs cannot be
// used for indentation, and levels cannot be skipped.
func Parse[T any](input string, parseValue func(string) (T, error)) (*bstree.Node[T], error) {
	input = strings.TrimSuffix(input, "\n")
	if strings.TrimSpace(input) == Empty {
		return nil, nil
	}
	if input == "" {
		return nil, errors.Errorf("empty input")
	}
	lines := strings.Split(input, "\n")
	indentLevel := make([]int, len(lines))
	for i, line := range lines {
		level := 0
		for strings.HasPrefix(line[level:], " ") {
			level++
		}
		if len(line) == level {
			return nil, errors.Errorf("empty line in input:\n%s", input)
		}
		if line[level] == '\t' {
			return nil, errors.Errorf("tab indentation in input:\n%s", input)
		}
		indentLevel[i] = level
	}
	if indentLevel[0] != 0 {
		return nil, errors.Errorf("root must not be indented:\n%s", input)
	}
	levels := slices.Clone(indentLevel)
	slices.Sort(levels)
	levels = slices.Compact(levels)

	// parseNode parses the node on line lineIdx (with the side marker already
	// stripped from text) and its descendants on the following lines, up to
	// endLineIdx.
	var parseNode func(levelIdx, lineIdx, endLineIdx int, text string) (*bstree.Node[T], error)
	parseNode = func(levelIdx, lineIdx, endLineIdx int, text string) (*bstree.Node[T], error) {
		v, err := parseValue(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineIdx+1)
		}
		n := &bstree.Node[T]{Value: v}
		for child := lineIdx + 1; child <= endLineIdx; {
			if levelIdx+1 >= len(levels) || indentLevel[child] != levels[levelIdx+1] {
				return nil, errors.Errorf("inconsistent indentation in input:\n%s", input)
			}
			next := child + 1
			for ; next <= endLineIdx; next++ {
				if indentLevel[next] <= indentLevel[child] {
					break
				}
			}
			side, rest, ok := strings.Cut(lines[child][indentLevel[child]:], " ")
			if !ok || (side != "L" && side != "R") {
				return nil, errors.Errorf("line %d: expected L or R marker: %q", child+1, lines[child])
			}
			c, err := parseNode(levelIdx+1, child, next-1, rest)
			if err != nil {
				return nil, err
			}
			slot := &n.Left
			if side == "R" {
				slot = &n.Right
			}
			if *slot != nil {
				return nil, errors.Errorf("line %d: duplicate %s child", child+1, side)
			}
			*slot = c
			child = next
		}
		return n, nil
	}

	for i := 1; i < len(lines); i++ {
		if indentLevel[i] == 0 {
			return nil, errors.Errorf("line %d: multiple roots in input", i+1)
		}
	}
	return parseNode(0, 0, len(lines)-1, lines[0])
}

// ParseInts parses an outline with integer values.
func ParseInts(input string) (*bstree.Node[int], error) {
	return Parse(input, func(s string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errors.Wrapf(err, "invalid value %q", s)
		}
		return v, nil
	})
}

// Format returns the outline of the graph rooted at n, using a one space
// indentation step. Values are formatted with %v.
func Format[T any](n *bstree.Node[T]) string {
	if n == nil {
		return Empty + "\n"
	}
	var b strings.Builder
	var format func(n *bstree.Node[T], depth int, side string)
	format = func(n *bstree.Node[T], depth int, side string) {
		b.WriteString(strings.Repeat(" ", depth))
		b.WriteString(side)
		fmt.Fprintf(&b, "%v\n", n.Value)
		if n.Left != nil {
			format(n.Left, depth+1, "L ")
		}
		if n.Right != nil {
			format(n.Right, depth+1, "R ")
		}
	}
	format(n, 0, "")
	return b.String()
}
