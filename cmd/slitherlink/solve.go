package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ancientHacker/slitherlink/internal/config"
	"github.com/ancientHacker/slitherlink/internal/grid"
	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/printer"
	"github.com/ancientHacker/slitherlink/internal/reader"
	"github.com/ancientHacker/slitherlink/internal/search"
	"github.com/ancientHacker/slitherlink/internal/solveerr"
	"github.com/ancientHacker/slitherlink/internal/store"
	"github.com/ancientHacker/slitherlink/internal/tui"
)

func newSolveCmd() *cobra.Command {
	cfg := &config.SolverConfig{}
	var historyMigrations string

	cmd := &cobra.Command{
		Use:   "solve <inputfile>",
		Short: "solve a Slitherlink puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), args[0], cfg, historyMigrations)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.All, "all", false, "find every solution, not just the first")
	flags.IntVar(&cfg.MaxSolutions, "max-solutions", 0, "cap the number of solutions collected (0 = unbounded)")
	flags.IntVar(&cfg.Threads, "threads", 0, "goroutine budget for fork-join search (0 = NumCPU)")
	flags.Float64Var(&cfg.CPU, "cpu", 1, "fraction of CPUs to use, in (0,1]")
	flags.DurationVar(&cfg.Timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	flags.BoolVar(&cfg.NoParallel, "no-parallel", false, "disable fork-join parallelism")
	flags.BoolVar(&cfg.CacheSolutions, "cache-solutions", false, "cache/reuse solutions in Redis")
	flags.StringVar(&cfg.HistoryDSN, "history-dsn", "", "Postgres DSN to append solve history to")
	flags.StringVar(&historyMigrations, "history-migrations", "internal/store/migrations", "directory of history schema migrations")
	flags.BoolVar(&cfg.View, "view", false, "open an interactive viewer on the first solution")

	return cmd
}

func runSolve(ctx context.Context, path string, cfg *config.SolverConfig, migrationsDir string) error {
	logger := loggerFromContext(ctx)
	if err := cfg.Validate(); err != nil {
		return err
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
	logger.Debugf("parsed %dx%d grid with %d clues", g.Rows, g.Cols, len(gridClues(g)))

	var cache *store.Cache
	if cfg.CacheSolutions {
		cache, err = store.NewCache(ctx, "")
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	var history *store.History
	if cfg.HistoryDSN != "" {
		history, err = store.NewHistory(ctx, cfg.HistoryDSN, migrationsDir)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	cacheKey := ""
	if cache != nil {
		cacheKey = store.Key(g)
		if cached, ok, err := cache.Get(ctx, cacheKey); err != nil {
			logger.Warnf("cache lookup failed: %v", err)
		} else if ok {
			logger.Debug("cache hit")
			fmt.Print(cached)
			return nil
		}
	}

	solveCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	gr := graph.Build(g)
	p := newProgress(logger)
	solutions := search.Run(solveCtx, gr, cfg.SearchOptions())
	elapsed := time.Since(p.start)
	p.done(fmt.Sprintf("search finished, found %d solution(s)", len(solutions)))

	var out strings.Builder
	if len(solutions) == 0 {
		fmt.Fprintln(&out, "No solution found.")
	} else {
		printer.Solution(&out, g, solutions[0].State, solutions[0].Cycle)
		if cfg.All {
			for _, sol := range solutions[1:] {
				fmt.Fprintln(&out)
				printer.Solution(&out, g, sol.State, sol.Cycle)
			}
			printer.Summary(&out, len(solutions))
		}
	}
	fmt.Print(out.String())

	if cache != nil && len(solutions) > 0 {
		if err := cache.Put(ctx, cacheKey, out.String()); err != nil {
			logger.Warnf("cache write failed: %v", err)
		}
	}

	if history != nil {
		signature := cacheKey
		if signature == "" {
			signature = store.Key(g)
		}
		rec := store.Record{
			GridSignature: signature,
			FindAll:       cfg.All,
			SolutionCount: len(solutions),
			Elapsed:       elapsed,
		}
		if err := history.Append(ctx, rec); err != nil {
			logger.Warnf("history append failed: %v", err)
		}
	}

	if cfg.View && len(solutions) > 0 {
		if err := tui.Run(g, solutions[0].State, solutions[0].Cycle); err != nil {
			logger.Warnf("viewer exited with error: %v", err)
		}
	}

	return nil
}

func gridClues(g *grid.Grid) []int {
	clued := make([]int, 0, len(g.Clues))
	for _, c := range g.Clues {
		if c != grid.NoClue {
			clued = append(clued, c)
		}
	}
	return clued
}
