package search

import (
	"context"
	"testing"

	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/grid"
	"github.com/ancientHacker/slitherlink/internal/validate"
)

func mustGraph(t *testing.T, rows, cols int, clues []int) *graph.Graph {
	g, err := grid.New(rows, cols, clues)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return graph.Build(g)
}

func TestRunNoClueSingleCellHasOneSolution(t *testing.T) {
	// Per the puzzle's rules, the only loop around a single unclued cell is
	// all four of its edges on; the empty (all-off) assignment satisfies
	// every local invariant but is rejected by the validator for having no
	// cycle at all.
	gr := mustGraph(t, 1, 1, []int{grid.NoClue})
	sols := Run(context.Background(), gr, Options{FindAll: true})
	if len(sols) != 1 {
		t.Fatalf("got %d solutions, want 1", len(sols))
	}
	if !validate.IsValid(sols[0].State) {
		t.Fatal("returned solution fails validation")
	}
	if len(sols[0].Cycle) != 5 {
		t.Errorf("cycle length = %d, want 5 (4 edges + wrap)", len(sols[0].Cycle))
	}
}

func TestRunClueThreeOnOneCellIsUnsatisfiable(t *testing.T) {
	// A lone cell can only be boxed (clue 4) or empty (clue 0); clue 3 is
	// impossible because exactly 3 of its 4 edges being on leaves a
	// degree-1 dead end at one corner.
	gr := mustGraph(t, 1, 1, []int{3})
	sols := Run(context.Background(), gr, Options{FindAll: true})
	if len(sols) != 0 {
		t.Fatalf("got %d solutions, want 0", len(sols))
	}
}

func TestRunFindFirstStopsAtOne(t *testing.T) {
	// A 2x2 grid with no clues has many valid loop configurations; find-first
	// mode should return exactly one.
	gr := mustGraph(t, 2, 2, []int{
		grid.NoClue, grid.NoClue,
		grid.NoClue, grid.NoClue,
	})
	sols := Run(context.Background(), gr, Options{FindAll: false})
	if len(sols) != 1 {
		t.Fatalf("got %d solutions in find-first mode, want 1", len(sols))
	}
}

func TestRunFindAllSupersetOfFindFirst(t *testing.T) {
	gr := mustGraph(t, 2, 2, []int{
		grid.NoClue, grid.NoClue,
		grid.NoClue, grid.NoClue,
	})
	all := Run(context.Background(), gr, Options{FindAll: true})
	first := Run(context.Background(), gr, Options{FindAll: false})
	if len(first) != 1 {
		t.Fatalf("find-first returned %d solutions, want 1", len(first))
	}
	if len(all) < len(first) {
		t.Fatalf("find-all returned fewer solutions (%d) than find-first (%d)", len(all), len(first))
	}
}

func TestRunMaxSolutionsCaps(t *testing.T) {
	gr := mustGraph(t, 2, 2, []int{
		grid.NoClue, grid.NoClue,
		grid.NoClue, grid.NoClue,
	})
	sols := Run(context.Background(), gr, Options{FindAll: true, MaxSolutions: 1})
	if len(sols) != 1 {
		t.Fatalf("got %d solutions with MaxSolutions=1, want 1", len(sols))
	}
}

func TestRunSingleThreadedIsDeterministic(t *testing.T) {
	// With a 1-thread budget the fork semaphore has zero capacity, so the
	// search never forks a goroutine and always walks OFF-before-ON in
	// plain sequential order; repeated runs must return solutions in
	// exactly the same order.
	gr := mustGraph(t, 2, 2, []int{
		grid.NoClue, grid.NoClue,
		grid.NoClue, grid.NoClue,
	})
	opts := Options{FindAll: true, Threads: 1}
	first := Run(context.Background(), gr, opts)
	second := Run(context.Background(), gr, opts)

	if len(first) != len(second) {
		t.Fatalf("got %d and %d solutions across two runs, want equal counts", len(first), len(second))
	}
	for i := range first {
		if len(first[i].Cycle) != len(second[i].Cycle) {
			t.Fatalf("solution %d: cycle lengths differ between runs", i)
		}
		for j, p := range first[i].Cycle {
			if p != second[i].Cycle[j] {
				t.Fatalf("solution %d diverged between runs at point %d: %v vs %v", i, j, p, second[i].Cycle[j])
			}
		}
	}
}

func TestCalculateOptimalParallelDepthScalesWithSize(t *testing.T) {
	small := mustGraph(t, 3, 3, []int{
		0, grid.NoClue, grid.NoClue,
		grid.NoClue, grid.NoClue, grid.NoClue,
		grid.NoClue, grid.NoClue, 0,
	})
	bigClues := make([]int, 625)
	for i := range bigClues {
		bigClues[i] = grid.NoClue
	}
	big := mustGraph(t, 25, 25, bigClues)

	if d := calculateOptimalParallelDepth(small); d < 8 || d > 21 {
		t.Errorf("small grid depth = %d, want roughly 8-21", d)
	}
	if d := calculateOptimalParallelDepth(big); d < 30 {
		t.Errorf("large sparse grid depth = %d, want >= 30", d)
	}
}
