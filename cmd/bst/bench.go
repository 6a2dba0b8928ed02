// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/bstree"
	"github.com/cockroachdb/bstree/internal/randvar"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/tokenbucket"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	minLatency = 10 * time.Nanosecond
	maxLatency = 10 * time.Second
)

var benchConfig struct {
	trees int
	count int
	dist  string
	max   uint64
	rate  float64
	seed  uint64
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "measure insertion into independent trees",
	Long: `
Build several trees in parallel, one goroutine per tree, inserting values drawn
from the chosen distribution. Reports insertion latency percentiles and the
resulting tree shapes. The sequential distribution builds list-shaped trees,
so insertion cost grows linearly with the tree size.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := runBench(cmd.Context(), benchConfig.trees, benchConfig.count)
		if err != nil {
			return err
		}
		writeBenchResults(cmd.OutOrStdout(), results)
		return nil
	},
}

type benchResult struct {
	elapsed time.Duration
	hist    *hdrhistogram.Histogram
	stats   bstree.Stats
}

func runBench(ctx context.Context, trees, count int) ([]benchResult, error) {
	if trees <= 0 || count < 0 {
		return nil, errors.Errorf("invalid bench configuration: trees=%d count=%d", trees, count)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	gens := make([]randvar.Static, trees)
	for i := range gens {
		var err error
		gens[i], err = randvar.New(benchConfig.dist, randvar.NewRand(benchConfig.seed+uint64(i)), benchConfig.max)
		if err != nil {
			return nil, err
		}
	}
	results := make([]benchResult, trees)
	g, ctx := errgroup.WithContext(ctx)
	for i := range gens {
		g.Go(func() error {
			r, err := benchTree(ctx, i, gens[i], count)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func benchTree(ctx context.Context, id int, gen randvar.Static, count int) (benchResult, error) {
	var limiter *tokenbucket.TokenBucket
	if benchConfig.rate > 0 {
		limiter = &tokenbucket.TokenBucket{}
		limiter.Init(tokenbucket.TokensPerSecond(benchConfig.rate), tokenbucket.Tokens(benchConfig.rate*0.1+1))
	}
	hist := hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 1)
	t := bstree.New[uint64]()
	start := crtime.NowMono()
	for j := 0; j < count; j++ {
		if limiter != nil {
			if err := limiter.WaitCtx(ctx, 1); err != nil {
				return benchResult{}, errors.Wrapf(err, "tree %d", id)
			}
		}
		v := gen.Uint64()
		opStart := crtime.NowMono()
		t.Insert(v)
		if err := hist.RecordValue(max(opStart.Elapsed().Nanoseconds(), minLatency.Nanoseconds())); err != nil {
			return benchResult{}, errors.Wrapf(err, "tree %d", id)
		}
	}
	r := benchResult{
		elapsed: start.Elapsed(),
		hist:    hist,
		stats:   bstree.ComputeStats(t.Root()),
	}
	infof("tree %d: %s in %s", id, r.stats, r.elapsed)
	return r, nil
}

func writeBenchResults(w io.Writer, results []benchResult) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Tree", "Inserts", "Height", "Elapsed", "ops/sec", "p50(ns)", "p99(ns)", "pMax(ns)"})
	total := hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 1)
	var elapsed time.Duration
	for i, r := range results {
		total.Merge(r.hist)
		elapsed = max(elapsed, r.elapsed)
		tbl.Append(benchRow(fmt.Sprintf("%d", i), r.hist, r.elapsed, r.stats.Height))
	}
	if len(results) > 1 {
		tbl.Append(benchRow("all", total, elapsed, -1))
	}
	tbl.Render()
}

func benchRow(name string, h *hdrhistogram.Histogram, elapsed time.Duration, height int) []string {
	heightStr := "-"
	if height >= 0 {
		heightStr = fmt.Sprintf("%d", height)
	}
	secs := elapsed.Seconds()
	if secs == 0 {
		secs = 1e-9
	}
	return []string{
		name,
		string(crhumanize.Count(h.TotalCount(), crhumanize.Compact)),
		heightStr,
		elapsed.Round(time.Microsecond).String(),
		fmt.Sprintf("%.0f", float64(h.TotalCount())/secs),
		fmt.Sprintf("%d", h.ValueAtQuantile(50)),
		fmt.Sprintf("%d", h.ValueAtQuantile(99)),
		fmt.Sprintf("%d", h.Max()),
	}
}
