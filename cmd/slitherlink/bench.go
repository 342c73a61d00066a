package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/reader"
	"github.com/ancientHacker/slitherlink/internal/search"
	"github.com/ancientHacker/slitherlink/internal/solveerr"
)

func newBenchCmd() *cobra.Command {
	var all bool
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench <inputfile>",
		Short: "repeatedly solve a puzzle and report timing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), args[0], all, repeat)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "find every solution on each run")
	cmd.Flags().IntVar(&repeat, "repeat", 5, "number of timed runs")
	return cmd
}

func runBench(ctx context.Context, path string, all bool, repeat int) error {
	logger := loggerFromContext(ctx)
	if repeat <= 0 {
		return solveerr.New(solveerr.InputScope, "--repeat must be positive, got %d", repeat)
	}

	f, err := os.Open(path)
	if err != nil {
		return solveerr.New(solveerr.InputScope, "%v", err)
	}
	defer f.Close()

	g, err := reader.Read(f)
	if err != nil {
		return err
	}
	gr := graph.Build(g)
	opts := search.Options{FindAll: all}

	var total time.Duration
	var best, worst time.Duration
	var solCount int
	for i := 0; i < repeat; i++ {
		p := newProgress(logger)
		solutions := search.Run(ctx, gr, opts)
		elapsed := time.Since(p.start)
		p.done(fmt.Sprintf("run %d/%d", i+1, repeat))

		solCount = len(solutions)
		total += elapsed
		if i == 0 || elapsed < best {
			best = elapsed
		}
		if i == 0 || elapsed > worst {
			worst = elapsed
		}
	}

	avg := total / time.Duration(repeat)
	fmt.Printf("Solutions: %d\n", solCount)
	fmt.Printf("Runs: %d\n", repeat)
	fmt.Printf("Best: %s\n", best)
	fmt.Printf("Worst: %s\n", worst)
	fmt.Printf("Average: %s\n", avg)
	return nil
}
