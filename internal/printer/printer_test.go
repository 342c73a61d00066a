package printer

import (
	"strings"
	"testing"

	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/grid"
	"github.com/ancientHacker/slitherlink/internal/state"
	"github.com/ancientHacker/slitherlink/internal/validate"
)

func TestGridRendersTopAndBottomEdgesOn(t *testing.T) {
	g, err := grid.New(1, 1, []int{2})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	gr := graph.Build(g)
	s := state.New(gr)
	top := gr.HorizEdgeIndex[0]
	bottom := gr.HorizEdgeIndex[g.Cols]
	if !s.Apply(top, state.On) || !s.Apply(bottom, state.On) {
		t.Fatal("Apply(On) on top/bottom edges unexpectedly rejected")
	}
	for _, ei := range gr.VertEdgeIndex {
		s.Apply(ei, state.Off)
	}

	var b strings.Builder
	Grid(&b, g, s)
	out := b.String()

	if !strings.Contains(out, "+-+") {
		t.Errorf("expected the top edge rendered as on, got:\n%s", out)
	}
	if !strings.Contains(out, " 2 ") {
		t.Errorf("expected clue 2 flanked by off vertical edges, got:\n%s", out)
	}
}

func TestCycleFormatsArrowChain(t *testing.T) {
	cycle := []validate.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 0}}
	var b strings.Builder
	Cycle(&b, cycle)
	out := b.String()
	if !strings.Contains(out, "(0,0) -> (0,1) -> (1,1) -> (0,0)") {
		t.Errorf("unexpected cycle rendering: %s", out)
	}
}

func TestSummaryReportsCount(t *testing.T) {
	var b strings.Builder
	Summary(&b, 3)
	if !strings.Contains(b.String(), "Total solutions found: 3") {
		t.Errorf("unexpected summary: %s", b.String())
	}
}
