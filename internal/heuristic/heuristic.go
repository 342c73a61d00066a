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

// Package heuristic picks the next edge to branch on. It favors edges that
// are already forced down to one real branch (an endpoint vertex pins the
// outcome), and otherwise scores by how close a bordering vertex
// or cell is to being pinned down, so the search commits to the
// tightest-constrained part of the grid first.
package heuristic

import (
	"github.com/ancientHacker/slitherlink/internal/graph"
	"github.com/ancientHacker/slitherlink/internal/state"
)

// NoEdge is returned by SelectNextEdge when every edge is already decided.
const NoEdge = -1

// EstimateBranches reports how many of {On, Off} remain live options for
// edgeIdx given the current vertex degrees at its endpoints: 1 if a
// neighboring vertex already forces the outcome, else 2.
func EstimateBranches(s *state.State, edgeIdx int) int {
	e := s.Graph.Edges[edgeIdx]
	du, uu := s.VertexOnDegree[e.U], s.VertexUndecided[e.U]
	dv, uv := s.VertexOnDegree[e.V], s.VertexUndecided[e.V]
	if (du == 1 && uu == 1) || (dv == 1 && uv == 1) {
		return 1 // forced on
	}
	if du >= 2 || dv >= 2 {
		return 1 // forced off
	}
	return 2
}

// scoreCell scores how close cell ci is to being pinned down: higher means
// tighter. A cell with no clue scores 0.
func scoreCell(s *state.State, ci int) int {
	if ci < 0 {
		return 0
	}
	clue := s.Graph.Grid.Clues[ci]
	if clue < 0 {
		return 0
	}
	need := clue - s.CellOnCount[ci]
	undecided := s.CellUndecided[ci]
	switch {
	case need == undecided || need == 0:
		return 2000
	case undecided == 1:
		return 1500
	case undecided <= 2:
		return 1000
	default:
		score := 100 - abs(need*2-undecided)
		if score < 0 {
			return 0
		}
		return score
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectNextEdge picks the undecided edge to branch on next: any edge with
// exactly one live branch wins immediately (a forced move, which can remain
// when s has not been propagated to a fixed point); otherwise the edge with the lowest branch count and,
// among those, the highest score (vertex-degree-1 bonus, pristine-vertex
// bonus, plus both bordering cells' tightness) is chosen. Returns NoEdge if
// every edge is decided.
func SelectNextEdge(gr *graph.Graph, s *state.State) int {
	best := NoEdge
	bestBranches := 3
	bestScore := -1

	for ei, d := range s.EdgeDecision {
		if d != state.Undecided {
			continue
		}
		branches := EstimateBranches(s, ei)
		if branches == 1 {
			return ei
		}
		e := gr.Edges[ei]
		du, uu := s.VertexOnDegree[e.U], s.VertexUndecided[e.U]
		dv, uv := s.VertexOnDegree[e.V], s.VertexUndecided[e.V]

		score := 0
		if du == 1 || dv == 1 {
			score += 10000
		}
		if (du == 0 && uu == 2) || (dv == 0 && uv == 2) {
			score += 5000
		}
		score += scoreCell(s, e.CellA) + scoreCell(s, e.CellB)

		if branches < bestBranches || (branches == bestBranches && score > bestScore) {
			best = ei
			bestBranches = branches
			bestScore = score
		}
	}
	return best
}
