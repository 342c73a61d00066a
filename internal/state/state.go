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

// Package state holds the mutable, incrementally-maintained part of a
// search node: each edge's decision plus the running per-vertex and
// per-cell counters the propagator and heuristic read in O(1). There is no
// undo log — a branch clones the whole State before trying a decision, the
// same way the teacher's puzzle.copy() clones a puzzle before exploring a
// choice.
package state

import "github.com/ancientHacker/slitherlink/internal/graph"

// Decision is the ternary state of an edge.
type Decision int8

// Constants for the three edge decisions.
const (
	Undecided Decision = iota
	On
	Off
)

// State is the incrementally-maintained decision state for one search node.
// All slices are indexed the same way as the Graph they were built from.
type State struct {
	Graph *graph.Graph

	EdgeDecision []Decision

	// VertexOnDegree[p] counts ON edges incident on lattice point p.
	VertexOnDegree []int
	// VertexUndecided[p] counts Undecided edges incident on lattice point p.
	VertexUndecided []int

	// CellOnCount[i] counts ON edges bordering cell i.
	CellOnCount []int
	// CellUndecided[i] counts Undecided edges bordering cell i.
	CellUndecided []int
}

// New builds the initial State for gr: every edge Undecided, every vertex's
// undecided-count equal to its incidence degree (4 in the interior, 3 on a
// boundary side, 2 at a corner), every cell's undecided-count equal to 4.
func New(gr *graph.Graph) *State {
	s := &State{
		Graph:           gr,
		EdgeDecision:    make([]Decision, gr.NumEdges()),
		VertexOnDegree:  make([]int, len(gr.PointEdges)),
		VertexUndecided: make([]int, len(gr.PointEdges)),
		CellOnCount:     make([]int, len(gr.CellEdges)),
		CellUndecided:   make([]int, len(gr.CellEdges)),
	}
	for p, edges := range gr.PointEdges {
		s.VertexUndecided[p] = len(edges)
	}
	for i, edges := range gr.CellEdges {
		s.CellUndecided[i] = len(edges)
	}
	return s
}

// Clone returns a deep copy of s, safe to mutate independently. This is the
// state package's only "undo mechanism": a search branch clones before
// trying a decision rather than maintaining a log to roll back.
func (s *State) Clone() *State {
	c := &State{
		Graph:           s.Graph,
		EdgeDecision:    make([]Decision, len(s.EdgeDecision)),
		VertexOnDegree:  make([]int, len(s.VertexOnDegree)),
		VertexUndecided: make([]int, len(s.VertexUndecided)),
		CellOnCount:     make([]int, len(s.CellOnCount)),
		CellUndecided:   make([]int, len(s.CellUndecided)),
	}
	copy(c.EdgeDecision, s.EdgeDecision)
	copy(c.VertexOnDegree, s.VertexOnDegree)
	copy(c.VertexUndecided, s.VertexUndecided)
	copy(c.CellOnCount, s.CellOnCount)
	copy(c.CellUndecided, s.CellUndecided)
	return c
}

// Apply sets edge edgeIdx to value (On or Off) and updates the affected
// vertex and cell counters. It reports ok=false if the decision immediately
// violates an invariant: a vertex degree would exceed 2, or a clued cell's
// on-count would exceed its clue. Apply never allocates and never returns
// an error; contradiction is a plain boolean, checked on the hot path.
func (s *State) Apply(edgeIdx int, value Decision) (ok bool) {
	e := s.Graph.Edges[edgeIdx]
	if s.EdgeDecision[edgeIdx] != Undecided {
		return true // already decided; idempotent no-op
	}
	s.EdgeDecision[edgeIdx] = value

	s.VertexUndecided[e.U]--
	s.VertexUndecided[e.V]--
	if e.CellA >= 0 {
		s.CellUndecided[e.CellA]--
	}
	if e.CellB >= 0 {
		s.CellUndecided[e.CellB]--
	}

	if value != On {
		return true
	}

	s.VertexOnDegree[e.U]++
	s.VertexOnDegree[e.V]++
	if s.VertexOnDegree[e.U] > 2 || s.VertexOnDegree[e.V] > 2 {
		return false
	}
	if e.CellA >= 0 {
		s.CellOnCount[e.CellA]++
		if clue := s.Graph.Grid.Clues[e.CellA]; clue >= 0 && s.CellOnCount[e.CellA] > clue {
			return false
		}
	}
	if e.CellB >= 0 {
		s.CellOnCount[e.CellB]++
		if clue := s.Graph.Grid.Clues[e.CellB]; clue >= 0 && s.CellOnCount[e.CellB] > clue {
			return false
		}
	}
	return true
}

// Complete reports whether every edge has been decided.
func (s *State) Complete() bool {
	for _, d := range s.EdgeDecision {
		if d == Undecided {
			return false
		}
	}
	return true
}
