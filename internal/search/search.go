// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015-2016 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Package search is the backtracking driver: at each node it propagates to
// a fixed point, validates, and if still undecided, picks a branch edge via
// heuristic and explores OFF then ON, cloning state.State rather than
// maintaining an undo log (see internal/state's doc comment). Near the root
// the two branches fork onto separate goroutines, the way the Ariadne's-
// thread solver in this lineage forks a new thread per choice point, except
// bounded by depth and a goroutine budget so the fork-off doesn't runaway
// on a wide or deep grid.
package search

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/heuristic"
	"github.com/ancientHacker/slitherlink/internal/propagate"
	"github.com/ancientHacker/slitherlink/internal/state"
	"github.com/ancientHacker/slitherlink/internal/validate"
)

// A Solution is a complete, validated State plus its extracted cycle.
type Solution struct {
	State *state.State
	Cycle []validate.Point
}

// Options controls the search: how many solutions to collect, how much
// parallelism to use, and how to bound both.
type Options struct {
	// FindAll requests every solution rather than stopping at the first.
	FindAll bool
	// MaxSolutions caps the number collected; 0 means unbounded (subject to FindAll).
	MaxSolutions int
	// Threads caps the number of goroutines used for fork-join parallel
	// search; 0 selects runtime.NumCPU().
	Threads int
	// CPU is a fraction in (0,1] scaling Threads down from the full core
	// count; it composes with Threads (whichever yields fewer wins).
	CPU float64
}

func (o Options) maxThreads() int {
	n := o.Threads
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if o.CPU > 0 && o.CPU < 1 {
		scaled := int(float64(runtime.NumCPU()) * o.CPU)
		if scaled < 1 {
			scaled = 1
		}
		if scaled < n {
			n = scaled
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// calculateOptimalParallelDepth bounds how deep into the search tree we'll
// still fork a goroutine per branch, scaled to the grid's size and clue
// density: small, densely-clued grids prune fast and don't benefit from
// forking past a shallow depth, while large sparse grids have a much wider,
// shallower-pruning tree and profit from forking much deeper.
func calculateOptimalParallelDepth(gr *graph.Graph) int {
	area := gr.Grid.Rows * gr.Grid.Cols
	clued := len(gr.ClueCells)
	density := 0.0
	if area > 0 {
		density = float64(clued) / float64(area)
	}

	base := 8
	switch {
	case area <= 25:
		base = 8
	case area <= 100:
		base = 14
	case area <= 400:
		base = 26
	default:
		base = 38
	}

	// Sparse grids (low clue density) get a deeper allowance; dense grids
	// prune hard enough near the root that forking deeper wastes goroutines.
	if density < 0.5 {
		base += 7
	}
	if area > 400 {
		base = min(base, 45)
	}
	return base
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// collector gathers solutions under a mutex and tracks whether the caller's
// stopping condition (first-found, or MaxSolutions reached) has been met.
type collector struct {
	opts Options

	mu        sync.Mutex
	solutions []Solution

	found atomic.Bool
}

func (c *collector) shouldStop() bool {
	if c.found.Load() {
		return true
	}
	if !c.opts.FindAll {
		return false
	}
	if c.opts.MaxSolutions <= 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.solutions) >= c.opts.MaxSolutions
}

func (c *collector) add(sol Solution) {
	limit := c.opts.MaxSolutions
	if !c.opts.FindAll {
		limit = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// Parallel branches can reach a leaf after the limit was hit; drop those.
	if limit > 0 && len(c.solutions) >= limit {
		return
	}
	c.solutions = append(c.solutions, sol)
	if limit > 0 && len(c.solutions) >= limit {
		c.found.Store(true)
	}
}

// Run solves gr under opts and returns every solution found (one, if
// !opts.FindAll and any exist). It respects ctx cancellation cooperatively:
// in-flight branches check ctx.Err() before recursing further.
func Run(ctx context.Context, gr *graph.Graph, opts Options) []Solution {
	s0 := state.New(gr)
	if !propagate.Validate(gr, s0) {
		return nil
	}
	if !propagate.Propagate(s0) {
		return nil
	}

	c := &collector{opts: opts}
	maxDepth := calculateOptimalParallelDepth(gr)
	// The calling goroutine is always one of the workers; sem only bounds
	// the *additional* goroutines a fork spawns, so a 1-thread budget
	// (e.g. --no-parallel) yields a zero-capacity semaphore and the search
	// runs single-threaded, deterministic DFS order.
	sem := make(chan struct{}, opts.maxThreads()-1)

	var wg sync.WaitGroup
	search(ctx, gr, s0, c, 0, maxDepth, sem, &wg)
	wg.Wait()

	return c.solutions
}

// search explores one node of the backtracking tree. depth counts branch
// points taken so far, used only to decide whether to fork goroutines.
func search(ctx context.Context, gr *graph.Graph, s *state.State, c *collector, depth, maxDepth int, sem chan struct{}, wg *sync.WaitGroup) {
	if c.shouldStop() || ctx.Err() != nil {
		return
	}
	if validate.IsUnsolvable(s) {
		return
	}
	if !propagate.Propagate(s) {
		return
	}
	if validate.IsUnsolvable(s) {
		return
	}

	edgeIdx := heuristic.SelectNextEdge(gr, s)
	if edgeIdx == heuristic.NoEdge {
		if s.Complete() && validate.IsValid(s) {
			c.add(Solution{State: s, Cycle: validate.ExtractCycle(s)})
		}
		return
	}

	offState := s.Clone()
	canOff := offState.Apply(edgeIdx, state.Off)

	onState := s.Clone()
	canOn := onState.Apply(edgeIdx, state.On)

	doParallel := depth < maxDepth
	if doParallel {
		// Only fork while more than 10 edges are still undecided; smaller
		// subtrees are cheaper to walk on the current goroutine.
		undecided := 0
		for _, d := range s.EdgeDecision {
			if d == state.Undecided {
				undecided++
			}
		}
		doParallel = undecided > 10
	}
	var forked bool
	if doParallel && canOff && canOn {
		select {
		case sem <- struct{}{}:
			forked = true
		default:
		}
	}

	if forked {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			search(ctx, gr, onState, c, depth+1, maxDepth, sem, wg)
		}()
		search(ctx, gr, offState, c, depth+1, maxDepth, sem, wg)
		return
	}

	if canOff {
		search(ctx, gr, offState, c, depth+1, maxDepth, sem, wg)
	}
	if canOn {
		search(ctx, gr, onState, c, depth+1, maxDepth, sem, wg)
	}
}
