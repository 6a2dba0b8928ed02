// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstree_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/bstree"
	"github.com/cockroachdb/bstree/internal/outline"
	"github.com/cockroachdb/bstree/internal/testutils"
	"github.com/cockroachdb/bstree/internal/treesteps"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func insertAll(values ...int) *bstree.Tree[int] {
	tr := bstree.New[int]()
	for _, v := range values {
		tr.Insert(v)
	}
	return tr
}

func TestDataDriven(t *testing.T) {
	var root *bstree.Node[int]
	datadriven.RunTest(t, "testdata/bstree", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "insert":
			tr := bstree.New[int]()
			for _, f := range strings.Fields(d.Input) {
				v, err := strconv.Atoi(f)
				if err != nil {
					d.Fatalf(t, "%v", err)
				}
				tr.Insert(v)
			}
			require.Equal(t, len(strings.Fields(d.Input)), tr.Len())
			root = tr.Root()
			return outline.Format(root)

		case "build":
			var err error
			root, err = outline.ParseInts(d.Input)
			if err != nil {
				d.Fatalf(t, "%v", err)
			}
			return outline.Format(root)

		case "inorder":
			return fmt.Sprint(bstree.Inorder(root))

		case "validate":
			err := bstree.CheckLocalOrder(root, func(a, b int) int { return a - b })
			require.Equal(t, err == nil, bstree.IsValidBST(root))
			if err != nil {
				return fmt.Sprintf("invalid: %s", err)
			}
			return "valid"

		case "stats":
			s := bstree.ComputeStats(root)
			return fmt.Sprintf("%s widths=%v", s, s.LevelWidths)

		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestInsert(t *testing.T) {
	tr := insertAll(10, 5, 15, 0, 20)
	require.Equal(t, 5, tr.Len())

	r := tr.Root()
	require.Equal(t, 10, r.Value)
	require.Equal(t, 5, r.Left.Value)
	require.Equal(t, 0, r.Left.Left.Value)
	require.Nil(t, r.Left.Right)
	require.Equal(t, 15, r.Right.Value)
	require.Nil(t, r.Right.Left)
	require.Equal(t, 20, r.Right.Right.Value)
	require.True(t, r.Left.Left.IsLeaf())
	require.True(t, r.Right.Right.IsLeaf())
}

func TestInsertEmpty(t *testing.T) {
	tr := insertAll()
	require.Nil(t, tr.Root())
	require.Zero(t, tr.Len())
	require.Empty(t, tr.Inorder())
	require.True(t, tr.Valid())
}

func TestInsertDuplicatesGoLeft(t *testing.T) {
	tr := insertAll(5, 5)
	require.Equal(t, 5, tr.Root().Value)
	require.NotNil(t, tr.Root().Left)
	require.Equal(t, 5, tr.Root().Left.Value)
	require.Nil(t, tr.Root().Right)
}

func TestInsertDuplicateOrder(t *testing.T) {
	type kv struct {
		k, seq int
	}
	tr := bstree.NewWithCompare(func(a, b kv) int { return a.k - b.k })
	for i, k := range []int{2, 1, 2, 3, 2} {
		tr.Insert(kv{k: k, seq: i})
	}
	// Equal keys come out of an in-order walk in reverse insertion order.
	require.Equal(t, []kv{{1, 1}, {2, 4}, {2, 2}, {2, 0}, {3, 3}}, tr.Inorder())
}

func TestInsertDoesNotModifyExistingNodes(t *testing.T) {
	tr := insertAll(8, 4, 12)
	root, left, right := tr.Root(), tr.Root().Left, tr.Root().Right
	for _, v := range []int{2, 6, 10, 14} {
		tr.Insert(v)
	}
	require.Same(t, root, tr.Root())
	require.Same(t, left, tr.Root().Left)
	require.Same(t, right, tr.Root().Right)
	require.Equal(t, []int{8, 4, 12}, []int{root.Value, left.Value, right.Value})
}

func TestInsertNodeCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, uint64(time.Now().UnixNano())))
	for i := 0; i < 50; i++ {
		n := rng.IntN(200)
		values := make([]int, n)
		for j := range values {
			// A small domain so that duplicates are common.
			values[j] = rng.IntN(20)
		}
		tr := insertAll(values...)
		s := bstree.ComputeStats(tr.Root())
		require.Equal(t, n, tr.Len())
		require.Equal(t, n, s.Nodes, "values: %v", values)
		require.Len(t, tr.Inorder(), n)
	}
}

func TestInsertDeterministicShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, uint64(time.Now().UnixNano())))
	values := rng.Perm(100)
	a, b := insertAll(values...), insertAll(values...)
	require.Equal(t, outline.Format(a.Root()), outline.Format(b.Root()))
	require.Equal(t, bstree.Fingerprint(a.Root()), bstree.Fingerprint(b.Root()))

	// Same values, different order: same in-order walk, different shape.
	c := insertAll(slices.Sorted(slices.Values(values))...)
	require.Equal(t, a.Inorder(), c.Inorder())
	require.NotEqual(t, bstree.Fingerprint(a.Root()), bstree.Fingerprint(c.Root()))
}

func TestInsertDegenerate(t *testing.T) {
	// Sorted input produces a list; insertion must not recurse.
	const n = 5000
	tr := bstree.New[int]()
	for i := 0; i < n; i++ {
		tr.Insert(i)
	}
	s := bstree.ComputeStats(tr.Root())
	require.Equal(t, n, s.Height)
	require.Equal(t, 1, s.Leaves)
	require.True(t, tr.Valid())
	require.True(t, slices.IsSorted(tr.Inorder()))
}

func TestNewWithCompare(t *testing.T) {
	desc := bstree.NewWithCompare(func(a, b string) int { return strings.Compare(b, a) })
	for _, s := range []string{"m", "c", "x", "a"} {
		desc.Insert(s)
	}
	require.Equal(t, []string{"x", "m", "c", "a"}, desc.Inorder())
	require.True(t, desc.Valid())
	// The same graph is not ordered under the natural order of strings.
	require.False(t, bstree.IsValidBST(desc.Root()))

	require.Panics(t, func() { bstree.NewWithCompare[int](nil) })
}

func TestZeroTreeInsert(t *testing.T) {
	var tr bstree.Tree[int]
	func() {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			require.True(t, errors.IsAssertionFailure(err))
			require.ErrorContains(t, err, "zero Tree")
		}()
		tr.Insert(1)
	}()
	require.Nil(t, tr.Root())
	require.Equal(t, 0, tr.Len())
}

func TestInsertNaN(t *testing.T) {
	tr := bstree.New[float64]()
	tr.Insert(math.NaN())
	tr.Insert(1)
	tr.Insert(math.Inf(-1))
	root := tr.Root()
	require.True(t, math.IsNaN(root.Value))
	require.Nil(t, root.Left)
	require.Equal(t, 1.0, root.Right.Value)
	require.Equal(t, math.Inf(-1), root.Right.Left.Value)
}

func TestInorder(t *testing.T) {
	root := bstree.NewNode(1, bstree.NewNode(2, nil, nil), bstree.NewNode(3, nil, nil))
	require.Equal(t, []int{2, 1, 3}, bstree.Inorder(root))
	require.Equal(t, []int{3}, bstree.Inorder(root.Right))
	require.Empty(t, bstree.Inorder[int](nil))

	dst := bstree.AppendInorder([]int{9}, root)
	require.Equal(t, []int{9, 2, 1, 3}, dst)
}

func TestIsValidBST(t *testing.T) {
	node := func(v int, l, r *bstree.Node[int]) *bstree.Node[int] { return bstree.NewNode(v, l, r) }
	leaf := func(v int) *bstree.Node[int] { return node(v, nil, nil) }

	testCases := []struct {
		name  string
		root  *bstree.Node[int]
		valid bool
	}{
		{"nil", nil, true},
		{"single", leaf(1), true},
		{"inserted", insertAll(10, 5, 15, 0, 20).Root(), true},
		// 12 exceeds its grandparent but every parent/child pair is ordered.
		{"grandparent-gap", node(10, node(5, nil, leaf(12)), nil), true},
		{"right-child-too-small", node(10, nil, leaf(5)), false},
		{"left-child-too-large", node(10, leaf(11), nil), false},
		{"equal-children", node(3, leaf(3), leaf(3)), true},
		{"deep", node(10, node(5, leaf(1), leaf(7)), node(15, leaf(16), nil)), false},
		{"outline", testutils.CheckErr(outline.ParseInts("8\n L 4\n  L 2\n  R 6\n R 9\n  L 9")), true},
		{"outline-deep", testutils.CheckErr(outline.ParseInts("8\n L 4\n  L 2\n   R 1")), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, bstree.IsValidBST(tc.root))
		})
	}
}

func TestCheckLocalOrder(t *testing.T) {
	root := bstree.NewNode(10, nil, bstree.NewNode(5, nil, nil))
	err := bstree.CheckLocalOrder(root, func(a, b int) int { return a - b })
	require.Error(t, err)
	require.Equal(t, "right child 5 is less than its parent 10", err.Error())

	var v *bstree.OrderViolation[int]
	require.True(t, errors.As(err, &v))
	require.Equal(t, bstree.OrderViolation[int]{Parent: 10, Child: 5, Side: bstree.SideRight}, *v)

	root.Right.Value = 10
	require.NoError(t, bstree.CheckLocalOrder(root, func(a, b int) int { return a - b }))
	root.Left = bstree.NewNode(11, nil, nil)
	err = bstree.CheckLocalOrder(root, func(a, b int) int { return a - b })
	require.True(t, errors.As(err, &v))
	require.Equal(t, bstree.SideLeft, v.Side)
	require.Equal(t, "left child 11 is greater than its parent 10", fmt.Sprint(err))
}

func TestTreeString(t *testing.T) {
	tr := insertAll(10, 5, 15, 0, 20)
	require.Equal(t, "bstree(len=5, height=3) [0 5 10 15 20]", tr.String())
	require.Equal(t, "bstree(len=0, height=0) []", insertAll().String())

	long := bstree.New[int]()
	for i := 0; i < 20; i++ {
		long.Insert(i)
	}
	require.Equal(t, "bstree(len=20, height=20) [0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 ... +4]", long.String())
}

func TestPretty(t *testing.T) {
	require.Equal(t, "<empty>\n", bstree.Pretty[int](nil))
	s := bstree.Pretty(insertAll(10, 5, 15, 0, 20).Root())
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "10", lines[0])
	for i, label := range []string{"L 5", "L 0", "R 15", "R 20"} {
		require.True(t, strings.HasSuffix(lines[i+1], label), "line %q", lines[i+1])
	}
}

func TestStats(t *testing.T) {
	s := bstree.ComputeStats(insertAll(50, 30, 70, 20, 40, 60, 80, 10).Root())
	expected := bstree.Stats{Nodes: 8, Height: 4, Leaves: 4, LevelWidths: []int{1, 2, 4, 1}}
	if diff := pretty.Diff(expected, s); len(diff) > 0 {
		t.Fatalf("unexpected stats:\n%s", strings.Join(diff, "\n"))
	}
	require.Equal(t, "nodes=8 height=4 leaves=4", s.String())
}

func TestFingerprint(t *testing.T) {
	a := bstree.NewNode(1, bstree.NewNode(2, nil, nil), nil)
	b := bstree.NewNode(1, nil, bstree.NewNode(2, nil, nil))
	c := bstree.NewNode(1, bstree.NewNode(2, nil, nil), nil)
	require.NotEqual(t, bstree.Fingerprint(a), bstree.Fingerprint(b))
	require.Equal(t, bstree.Fingerprint(a), bstree.Fingerprint(c))
	require.NotEqual(t, bstree.Fingerprint[int](nil), bstree.Fingerprint(a))
}

func TestInsertSteps(t *testing.T) {
	if !treesteps.Enabled {
		t.Skip("treesteps not available in this build")
	}
	tr := insertAll(10, 5, 15)
	r := treesteps.StartRecording(tr.Root(), "insert")
	tr.Insert(12)
	steps := r.Finish()

	var names []string
	for _, s := range steps.Steps {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{
		"initial",
		"insert on 10 started",
		"insert on 10 finished",
		"insert on 15 started",
		"node 15: left attached",
		"insert on 15 finished",
	}, names)
	require.Equal(t, []string{"insert(12)"}, steps.Steps[3].Root.Children[1].Ops)
	require.Equal(t, []string{"insert(12) go right"}, steps.Steps[2].Root.Ops)
	require.Contains(t, treesteps.TreeToString(tr.Root()), "12")
}

func BenchmarkInsert(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 14} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(0, 1))
			values := make([]int, n)
			for i := range values {
				values[i] = rng.Int()
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr := bstree.New[int]()
				for _, v := range values {
					tr.Insert(v)
				}
			}
			b.ReportMetric(float64(b.N*n)/b.Elapsed().Seconds(), "inserts/s")
		})
	}
}
