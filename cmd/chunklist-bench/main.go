// chunklist-bench drives randomized workloads against the chunklist
// collections and reports throughput and rebalancing activity. It is a
// tuning aid: run it with different load factors to find the right one
// for a workload shape before baking it into an application.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/chunklist"
	"github.com/hupe1980/chunklist/testutil"
)

func main() {
	app := &cli.App{
		Name:  "chunklist-bench",
		Usage: "benchmark chunklist workloads",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "ops",
				Usage: "number of operations per workload",
				Value: 1_000_000,
			},
			&cli.IntFlag{
				Name:  "load-factor",
				Usage: "target chunk size (0 = library default)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "workload RNG seed",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "independent workload instances to run concurrently",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log rebalancing events",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "sorted",
				Usage:  "mixed add/pop workload on a SortedList",
				Action: runSorted,
			},
			{
				Name:   "unsorted",
				Usage:  "random positional inserts on an UnsortedList",
				Action: runUnsorted,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type result struct {
	elapsed time.Duration
	metrics *chunklist.BasicMetricsCollector
	length  int
}

func listOptions(c *cli.Context, metrics *chunklist.BasicMetricsCollector) []chunklist.Option {
	opts := []chunklist.Option{
		chunklist.WithMetricsCollector(metrics),
	}
	if lf := c.Int("load-factor"); lf > 0 {
		opts = append(opts, chunklist.WithLoadFactor(lf))
	}
	if c.Bool("debug") {
		opts = append(opts, chunklist.WithLogger(chunklist.NewTextLogger(slog.LevelDebug)))
	}
	return opts
}

func runSorted(c *cli.Context) error {
	return runWorkloads(c, func(seed int64) result {
		metrics := &chunklist.BasicMetricsCollector{}
		list := chunklist.NewSortedList[int](listOptions(c, metrics)...)
		ops := testutil.NewGenerator(seed).Workload(c.Int("ops"), testutil.Mix{
			Add:      6,
			PopFirst: 2,
			PopLast:  2,
		})

		start := time.Now()
		for _, op := range ops {
			switch op.Kind {
			case testutil.OpAdd:
				list.Add(op.Value)
			case testutil.OpPopFirst:
				list.PopFirst()
			case testutil.OpPopLast:
				list.PopLast()
			}
		}
		return result{
			elapsed: time.Since(start),
			metrics: metrics,
			length:  list.Len(),
		}
	})
}

func runUnsorted(c *cli.Context) error {
	return runWorkloads(c, func(seed int64) result {
		metrics := &chunklist.BasicMetricsCollector{}
		list := chunklist.NewUnsortedList[int](listOptions(c, metrics)...)
		positions := testutil.NewGenerator(seed).Ints(c.Int("ops"), 0, 1<<30)

		start := time.Now()
		for i, pos := range positions {
			list.Insert(pos%(list.Len()+1), i)
		}
		return result{
			elapsed: time.Since(start),
			metrics: metrics,
			length:  list.Len(),
		}
	})
}

// runWorkloads runs one workload per --parallel instance, each on its
// own list (a single list is single-threaded by contract), and prints a
// report per instance.
func runWorkloads(c *cli.Context, workload func(seed int64) result) error {
	parallel := c.Int("parallel")
	if parallel < 1 {
		parallel = 1
	}

	results := make([]result, parallel)
	var g errgroup.Group
	for i := range parallel {
		g.Go(func() error {
			results[i] = workload(c.Int64("seed") + int64(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, r := range results {
		report(c, i, r)
	}
	return nil
}

func report(c *cli.Context, instance int, r result) {
	ops := c.Int("ops")
	opsPerSec := float64(ops) / r.elapsed.Seconds()

	fmt.Printf("instance %d: %s ops in %v (%s ops/sec)\n",
		instance,
		humanize.Comma(int64(ops)),
		r.elapsed.Round(time.Millisecond),
		humanize.CommafWithDigits(opsPerSec, 0),
	)
	fmt.Printf("  final length %s, splits %s, merges %s, peak chunks %s\n",
		humanize.Comma(int64(r.length)),
		humanize.Comma(r.metrics.SplitCount.Load()),
		humanize.Comma(r.metrics.MergeCount.Load()),
		humanize.Comma(r.metrics.MaxChunkCount.Load()),
	)
}
