package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/layout"
)

type benchOptions struct {
	trees     int
	depth     int
	branching int
	rounds    int
	config    *layout.Config
}

type benchResult struct {
	nodes   uint32
	stats   layout.Stats
	elapsed time.Duration
}

// runBench implements the bench subcommand.
// Each tree gets its own engine and goroutine; engines are never shared.
func runBench(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := benchOptions{}
	fs.IntVar(&opts.trees, "trees", 8, "number of trees")
	fs.IntVar(&opts.depth, "depth", 3, "tree depth")
	fs.IntVar(&opts.branching, "branching", 5, "children per container")
	fs.IntVar(&opts.rounds, "rounds", 10, "mutate-and-recompute rounds")
	configPath := fs.String("config", "", "engine config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.trees < 1 || opts.depth < 0 || opts.branching < 1 || opts.rounds < 0 {
		return fmt.Errorf("trees and branching must be positive; depth and rounds must not be negative")
	}
	if *configPath != "" {
		cfg, err := layout.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		opts.config = &cfg
	}

	start := time.Now()
	results, err := bench(context.Background(), opts)
	if err != nil {
		return err
	}

	var total layout.Stats
	var nodes uint64
	var slowest time.Duration
	for _, r := range results {
		nodes += uint64(r.nodes)
		slowest = max(slowest, r.elapsed)
		total.Computes += r.stats.Computes
		total.Solved += r.stats.Solved
		total.CacheHits += r.stats.CacheHits
		total.CacheMisses += r.stats.CacheMisses
	}

	fmt.Fprintf(out, "trees:      %d\n", len(results))
	fmt.Fprintf(out, "nodes:      %d\n", nodes)
	fmt.Fprintf(out, "computes:   %d\n", total.Computes)
	fmt.Fprintf(out, "solved:     %d\n", total.Solved)
	fmt.Fprintf(out, "cache hits: %.1f%%\n", total.HitRate()*100)
	fmt.Fprintf(out, "slowest:    %s\n", slowest.Round(time.Microsecond))
	fmt.Fprintf(out, "elapsed:    %s\n", time.Since(start).Round(time.Microsecond))
	return nil
}

// bench lays out opts.trees independent trees concurrently.
func bench(ctx context.Context, opts benchOptions) ([]benchResult, error) {
	results := make([]benchResult, opts.trees)
	g, ctx := errgroup.WithContext(ctx)
	for i := range results {
		g.Go(func() error {
			r, err := benchTree(ctx, opts, i)
			if err != nil {
				return fmt.Errorf("tree %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func benchTree(ctx context.Context, opts benchOptions, seed int) (benchResult, error) {
	var engineOpts []layout.Option
	if opts.config != nil {
		engineOpts = append(engineOpts, layout.WithConfig(*opts.config))
	}
	e, err := layout.New(engineOpts...)
	if err != nil {
		return benchResult{}, err
	}

	start := time.Now()
	leaves, err := buildTree(e, opts.depth, opts.branching)
	if err != nil {
		return benchResult{}, err
	}
	if err := e.Compute(1000, 1000); err != nil {
		return benchResult{}, err
	}

	// Each round restyles one leaf, so only its ancestor chain is solved.
	for round := 0; round < opts.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return benchResult{}, err
		}
		leaf := leaves[(seed+round*7)%len(leaves)]
		style, err := e.Style(leaf)
		if err != nil {
			return benchResult{}, err
		}
		style.FlexGrow = float32(1 + round%3)
		if err := e.SetStyle(leaf, style); err != nil {
			return benchResult{}, err
		}
		if err := e.Compute(1000, 1000); err != nil {
			return benchResult{}, err
		}
	}

	return benchResult{nodes: e.NodeCount(), stats: e.Stats(), elapsed: time.Since(start)}, nil
}

// buildTree creates a tree with the specified branching factor and depth,
// alternating direction per level, and returns its leaves.
func buildTree(e *layout.Engine, depth, branching int) ([]layout.Handle, error) {
	style := layout.DefaultStyle()
	style.Width = layout.Fixed(1000)
	style.Height = layout.Fixed(1000)
	root, err := e.AddNode(layout.NoHandle, style)
	if err != nil {
		return nil, err
	}

	level := []layout.Handle{root}
	dir := layout.Row
	for d := 0; d < depth; d++ {
		next := make([]layout.Handle, 0, len(level)*branching)
		if dir == layout.Row {
			dir = layout.Column
		} else {
			dir = layout.Row
		}
		for _, parent := range level {
			for i := 0; i < branching; i++ {
				child := layout.DefaultStyle()
				child.FlexGrow = 1
				child.Direction = dir
				child.Gap = 1
				h, err := e.AddNode(parent, child)
				if err != nil {
					return nil, err
				}
				next = append(next, h)
			}
		}
		level = next
	}
	return level, nil
}
