package state

import (
	"testing"

	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/grid"
)

func buildSingleCell(t *testing.T, clue int) (*graph.Graph, *State) {
	g, err := grid.New(1, 1, []int{clue})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	gr := graph.Build(g)
	return gr, New(gr)
}

func TestNewInitialCounts(t *testing.T) {
	gr, s := buildSingleCell(t, 2)
	for i := range s.CellUndecided {
		if s.CellUndecided[i] != len(gr.CellEdges[i]) {
			t.Errorf("CellUndecided[%d] = %d, want %d", i, s.CellUndecided[i], len(gr.CellEdges[i]))
		}
	}
	for p := range s.VertexUndecided {
		if s.VertexUndecided[p] != len(gr.PointEdges[p]) {
			t.Errorf("VertexUndecided[%d] = %d, want %d", p, s.VertexUndecided[p], len(gr.PointEdges[p]))
		}
	}
}

func TestApplyOnUpdatesCounters(t *testing.T) {
	_, s := buildSingleCell(t, 2)
	ok := s.Apply(0, On)
	if !ok {
		t.Fatal("Apply(0, On) = false, want true")
	}
	e := s.Graph.Edges[0]
	if s.VertexOnDegree[e.U] != 1 || s.VertexOnDegree[e.V] != 1 {
		t.Errorf("vertex on-degrees = %d,%d, want 1,1", s.VertexOnDegree[e.U], s.VertexOnDegree[e.V])
	}
	if e.CellB >= 0 && s.CellOnCount[e.CellB] != 1 {
		t.Errorf("CellOnCount = %d, want 1", s.CellOnCount[e.CellB])
	}
}

func TestApplyRejectsOverClue(t *testing.T) {
	_, s := buildSingleCell(t, 1)
	gr := s.Graph
	for _, ei := range gr.CellEdges[0][:1] {
		if !s.Apply(ei, On) {
			t.Fatal("first On should succeed")
		}
	}
	secondEdge := gr.CellEdges[0][1]
	if s.Apply(secondEdge, On) {
		t.Fatal("second On on a clue-1 cell should be rejected")
	}
}

func TestApplyRejectsDegreeThree(t *testing.T) {
	g, _ := grid.New(2, 1, []int{grid.NoClue, grid.NoClue})
	gr := graph.Build(g)
	s := New(gr)

	// The middle vertex row sits between two cells; find a point with 3 incident edges.
	midPoint := -1
	for p, edges := range gr.PointEdges {
		if len(edges) == 3 {
			midPoint = p
			break
		}
	}
	if midPoint < 0 {
		t.Fatal("expected a degree-3-capable point in a 2x1 grid")
	}
	edges := gr.PointEdges[midPoint]
	if !s.Apply(edges[0], On) || !s.Apply(edges[1], On) {
		t.Fatal("first two On decisions should succeed")
	}
	if s.Apply(edges[2], On) {
		t.Fatal("third On at the same vertex should be rejected")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	_, s := buildSingleCell(t, 2)
	s.Apply(0, On)
	c := s.Clone()
	c.Apply(1, On)

	if s.EdgeDecision[1] == c.EdgeDecision[1] {
		t.Fatal("clone mutation leaked back into original")
	}
}

func TestComplete(t *testing.T) {
	_, s := buildSingleCell(t, 0)
	if s.Complete() {
		t.Fatal("fresh state should not be complete")
	}
	for i := range s.EdgeDecision {
		s.Apply(i, Off)
	}
	if !s.Complete() {
		t.Fatal("state with every edge decided should be complete")
	}
}
