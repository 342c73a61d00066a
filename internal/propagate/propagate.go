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

// Package propagate runs forced-move constraint propagation to a fixed
// point: a cell whose on-count plus undecided count equals its clue must
// have every undecided edge turned on; a cell whose on-count already equals
// its clue must have every undecided edge turned off; a degree-1 vertex
// with one undecided edge must turn it on; a degree-2 vertex must turn its
// remaining undecided edges off. Two worklists (cells, vertices) with
// dedup-by-queued-flag drive the fixed point, mirroring the original
// solver's cellQueue/pointQueue pair.
package propagate

import (
	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/state"
)

// Propagate runs the worklist to a fixed point, applying every forced move
// it can derive. It reports ok=false the moment a contradiction is found: a
// forced move that state.Apply rejects, a clued cell whose on-count exceeds
// its clue or can no longer reach it, or a vertex above degree 2 or stuck at
// degree 1 with no undecided edge left. The caller should then discard s.
func Propagate(s *state.State) (ok bool) {
	gr := s.Graph

	cellQueued := make([]bool, len(gr.CellEdges))
	pointQueued := make([]bool, len(gr.PointEdges))
	var cellQueue, pointQueue []int

	enqueueCell := func(i int) {
		if i >= 0 && !cellQueued[i] {
			cellQueued[i] = true
			cellQueue = append(cellQueue, i)
		}
	}
	enqueuePoint := func(p int) {
		if !pointQueued[p] {
			pointQueued[p] = true
			pointQueue = append(pointQueue, p)
		}
	}
	enqueueEdgeEnds := func(edgeIdx int) {
		e := gr.Edges[edgeIdx]
		enqueueCell(e.CellA)
		enqueueCell(e.CellB)
		enqueuePoint(e.U)
		enqueuePoint(e.V)
	}

	for _, ci := range gr.ClueCells {
		enqueueCell(ci)
	}
	for p := range gr.PointEdges {
		enqueuePoint(p)
	}

	for len(cellQueue) > 0 || len(pointQueue) > 0 {
		for len(cellQueue) > 0 {
			ci := cellQueue[0]
			cellQueue = cellQueue[1:]
			cellQueued[ci] = false
			if !propagateCell(s, ci, enqueueEdgeEnds) {
				return false
			}
		}
		for len(pointQueue) > 0 {
			p := pointQueue[0]
			pointQueue = pointQueue[1:]
			pointQueued[p] = false
			if !propagatePoint(s, p, enqueueEdgeEnds) {
				return false
			}
		}
	}
	return true
}

// propagateCell applies the two cell rules for cell ci: force-on when
// on-count + undecided == clue, force-off when on-count == clue.
func propagateCell(s *state.State, ci int, enqueue func(edgeIdx int)) bool {
	clue := s.Graph.Grid.Clues[ci]
	if clue < 0 {
		return true
	}
	onCount := s.CellOnCount[ci]
	undecided := s.CellUndecided[ci]
	if onCount > clue || onCount+undecided < clue {
		return false
	}
	switch {
	case onCount+undecided == clue && undecided > 0:
		for _, ei := range s.Graph.CellEdges[ci] {
			if s.EdgeDecision[ei] == state.Undecided {
				if !s.Apply(ei, state.On) {
					return false
				}
				enqueue(ei)
			}
		}
	case onCount == clue && undecided > 0:
		for _, ei := range s.Graph.CellEdges[ci] {
			if s.EdgeDecision[ei] == state.Undecided {
				if !s.Apply(ei, state.Off) {
					return false
				}
				enqueue(ei)
			}
		}
	}
	return true
}

// propagatePoint applies the two vertex rules for point p: a degree-1,
// one-undecided vertex must turn that edge on; a degree-2 vertex must turn
// any remaining undecided edges off.
func propagatePoint(s *state.State, p int, enqueue func(edgeIdx int)) bool {
	deg := s.VertexOnDegree[p]
	undecided := s.VertexUndecided[p]
	if deg > 2 || (deg == 1 && undecided == 0) {
		return false
	}
	switch {
	case deg == 1 && undecided == 1:
		for _, ei := range s.Graph.PointEdges[p] {
			if s.EdgeDecision[ei] == state.Undecided {
				if !s.Apply(ei, state.On) {
					return false
				}
				enqueue(ei)
			}
		}
	case deg == 2 && undecided > 0:
		for _, ei := range s.Graph.PointEdges[p] {
			if s.EdgeDecision[ei] == state.Undecided {
				if !s.Apply(ei, state.Off) {
					return false
				}
				enqueue(ei)
			}
		}
	}
	return true
}

// Validate is a fast up-front sanity check on gr's clue cells, run once
// before the first Propagate call so a malformed clue is rejected
// immediately rather than discovered several propagation steps in.
func Validate(gr *graph.Graph, s *state.State) bool {
	for _, ci := range gr.ClueCells {
		clue := gr.Grid.Clues[ci]
		if clue > 3 || clue < 0 {
			return false
		}
		if clue > len(s.Graph.CellEdges[ci]) {
			return false
		}
	}
	return true
}
