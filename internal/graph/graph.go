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

// Package graph turns a grid.Grid into the fixed incidence structure the
// solver walks: every edge, which two lattice points it connects, which one
// or two cells border it, and the reverse lookups from a point or a cell
// back to its edges. This structure never changes once built; only the
// per-edge decision (held in state.State) changes during search.
package graph

import "github.com/ancientHacker/slitherlink/internal/grid"

// noCell marks the missing side of a boundary edge.
const noCell = -1

// An Edge connects lattice points U and V, and borders cell CellA and/or
// CellB (either may be noCell if the edge is on the grid's boundary).
type Edge struct {
	U, V         int
	CellA, CellB int
}

// A Graph is the fixed incidence structure built from a grid.Grid: every
// edge plus the reverse lookups needed by the propagator and the heuristic.
type Graph struct {
	Grid *grid.Grid

	Edges []Edge

	// HorizEdgeIndex[r*Cols+c] is the index into Edges of the horizontal
	// edge above row r (r in 0..Rows), column c (c in 0..Cols-1).
	HorizEdgeIndex []int
	// VertEdgeIndex[r*(Cols+1)+c] is the index into Edges of the vertical
	// edge left of column c (c in 0..Cols), row r (r in 0..Rows-1).
	VertEdgeIndex []int

	// CellEdges[cellIdx] lists the (always exactly 4) edge indices bordering a cell.
	CellEdges [][]int
	// PointEdges[pointIdx] lists the edge indices incident on a lattice point.
	PointEdges [][]int

	// ClueCells lists, in row-major order, the indices of cells with a clue.
	ClueCells []int
}

// Build constructs the full incidence structure for g, in two passes (all
// horizontal edges, then all vertical edges) so that edge indices group by
// orientation, matching the layout the propagator and heuristic expect.
func Build(g *grid.Grid) *Graph {
	n, m := g.Rows, g.Cols
	gr := &Graph{
		Grid:           g,
		HorizEdgeIndex: make([]int, (n+1)*m),
		VertEdgeIndex:  make([]int, n*(m+1)),
		CellEdges:      make([][]int, n*m),
		PointEdges:     make([][]int, g.NumPoints()),
	}

	addEdge := func(e Edge) int {
		idx := len(gr.Edges)
		gr.Edges = append(gr.Edges, e)
		if e.CellA != noCell {
			gr.CellEdges[e.CellA] = append(gr.CellEdges[e.CellA], idx)
		}
		if e.CellB != noCell {
			gr.CellEdges[e.CellB] = append(gr.CellEdges[e.CellB], idx)
		}
		gr.PointEdges[e.U] = append(gr.PointEdges[e.U], idx)
		gr.PointEdges[e.V] = append(gr.PointEdges[e.V], idx)
		return idx
	}

	for r := 0; r <= n; r++ {
		for c := 0; c < m; c++ {
			above, below := noCell, noCell
			if r > 0 {
				above = g.CellIndex(r-1, c)
			}
			if r < n {
				below = g.CellIndex(r, c)
			}
			e := Edge{U: g.PointID(r, c), V: g.PointID(r, c+1), CellA: above, CellB: below}
			gr.HorizEdgeIndex[r*m+c] = addEdge(e)
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c <= m; c++ {
			left, right := noCell, noCell
			if c > 0 {
				left = g.CellIndex(r, c-1)
			}
			if c < m {
				right = g.CellIndex(r, c)
			}
			e := Edge{U: g.PointID(r, c), V: g.PointID(r+1, c), CellA: left, CellB: right}
			gr.VertEdgeIndex[r*(m+1)+c] = addEdge(e)
		}
	}

	for i, clue := range g.Clues {
		if clue != grid.NoClue {
			gr.ClueCells = append(gr.ClueCells, i)
		}
	}

	return gr
}

// NumEdges returns the total number of edges in the graph.
func (gr *Graph) NumEdges() int {
	return len(gr.Edges)
}
