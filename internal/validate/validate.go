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

// Package validate confirms that a complete State is a genuine solution —
// every clue exactly satisfied and the ON edges form a single simple
// cycle — and extracts that cycle's ordered lattice-point walk.
package validate

import "github.com/ancientHacker/slitherlink/internal/state"

// Point is a lattice-point coordinate, (row, col).
type Point struct {
	Row, Col int
}

// IsUnsolvable reports whether s can be pruned immediately: a cell whose
// on-count already exceeds its clue, a cell that can no longer reach its
// clue even with every undecided edge turned on, or a vertex with more
// than two ON edges or at degree 1 with no undecided edge left to complete
// a cycle through it (degree 1, zero undecided — a dead end).
func IsUnsolvable(s *state.State) bool {
	gr := s.Graph
	for ci, clue := range gr.Grid.Clues {
		if clue < 0 {
			continue
		}
		if s.CellOnCount[ci] > clue {
			return true
		}
		if s.CellOnCount[ci]+s.CellUndecided[ci] < clue {
			return true
		}
	}
	for p := range gr.PointEdges {
		deg := s.VertexOnDegree[p]
		if deg > 2 {
			return true
		}
		if deg == 1 && s.VertexUndecided[p] == 0 {
			return true
		}
	}
	return false
}

// CheckCellConstraints reports whether every clued cell's on-count exactly
// equals its clue. Callable only once s is complete.
func CheckCellConstraints(s *state.State) bool {
	for ci, clue := range s.Graph.Grid.Clues {
		if clue >= 0 && s.CellOnCount[ci] != clue {
			return false
		}
	}
	return true
}

// buildOnAdjacency returns the adjacency list of ON edges, the total ON
// edge count, and the lowest-indexed ON vertex to start a walk from.
func buildOnAdjacency(s *state.State) (adj [][]int, onEdges, start int) {
	gr := s.Graph
	adj = make([][]int, len(gr.PointEdges))
	start = -1
	for ei, d := range s.EdgeDecision {
		if d != state.On {
			continue
		}
		e := gr.Edges[ei]
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
		onEdges++
		if start < 0 || e.U < start {
			start = e.U
		}
		if e.V < start {
			start = e.V
		}
	}
	return adj, onEdges, start
}

// HasSingleCycle reports whether the ON edges of s form exactly one simple
// cycle: every vertex touched by an ON edge has degree exactly 2, and a walk
// starting from any one of them, always stepping to the neighbor that isn't
// where we came from, returns to the start after visiting every ON edge
// exactly once.
func HasSingleCycle(s *state.State) bool {
	adj, onEdges, start := buildOnAdjacency(s)
	if onEdges == 0 {
		return false
	}
	for _, neighbors := range adj {
		if len(neighbors) != 0 && len(neighbors) != 2 {
			return false
		}
	}

	visited := make([]bool, len(adj))
	prev, curr, steps := -1, start, 0
	for {
		visited[curr] = true
		next := adj[curr][0]
		if next == prev && len(adj[curr]) > 1 {
			next = adj[curr][1]
		}
		steps++
		prev, curr = curr, next
		if curr == start {
			break
		}
		if steps > onEdges {
			return false
		}
	}

	for p, neighbors := range adj {
		if len(neighbors) > 0 && !visited[p] {
			return false
		}
	}
	return steps == onEdges
}

// IsValid reports whether s is both cell-complete and a single cycle. Call
// only when s.Complete() is true.
func IsValid(s *state.State) bool {
	return CheckCellConstraints(s) && HasSingleCycle(s)
}

// ExtractCycle walks the ON edges of a valid, complete State into an
// ordered slice of lattice points starting from the lowest-indexed ON
// vertex and returning to it.
func ExtractCycle(s *state.State) []Point {
	adj, onEdges, start := buildOnAdjacency(s)
	if onEdges == 0 {
		return nil
	}

	cols := s.Graph.Grid.Cols
	toPoint := func(p int) Point {
		return Point{Row: p / (cols + 1), Col: p % (cols + 1)}
	}

	walk := make([]Point, 0, onEdges+1)
	prev, curr := -1, start
	for {
		walk = append(walk, toPoint(curr))
		next := adj[curr][0]
		if next == prev && len(adj[curr]) > 1 {
			next = adj[curr][1]
		}
		prev, curr = curr, next
		if curr == start {
			walk = append(walk, toPoint(curr))
			break
		}
	}
	return walk
}
