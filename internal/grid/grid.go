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

// Package grid holds the raw puzzle: its dimensions and its per-cell clues.
// It knows nothing about edges, lattice points, or solving; that's graph's
// and state's job.
package grid

import "github.com/ancientHacker/slitherlink/internal/solveerr"

// NoClue marks a cell with no numeric constraint.
const NoClue = -1

// A Grid is an n x m array of cell clues, row-major. A clue is an integer
// in [0, 3] or NoClue.
type Grid struct {
	Rows, Cols int
	Clues      []int // len == Rows*Cols, row-major
}

// New builds a Grid from explicit dimensions and a row-major clue slice,
// validating both.
func New(rows, cols int, clues []int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, solveerr.Error{
			Scope:     solveerr.InputScope,
			Condition: solveerr.NonPositiveDimensionCondition,
			Values:    []interface{}{rows, cols},
		}
	}
	if len(clues) != rows*cols {
		return nil, solveerr.New(solveerr.InputScope,
			"expected %d clues for a %dx%d grid, got %d", rows*cols, rows, cols, len(clues))
	}
	for _, c := range clues {
		if c != NoClue && (c < 0 || c > 3) {
			return nil, solveerr.New(solveerr.InputScope, "clue %d out of range [0,3]", c)
		}
	}
	return &Grid{Rows: rows, Cols: cols, Clues: clues}, nil
}

// CellIndex returns the row-major index of cell (r, c).
func (g *Grid) CellIndex(r, c int) int {
	return r*g.Cols + c
}

// Clue returns the clue at cell (r, c), or NoClue.
func (g *Grid) Clue(r, c int) int {
	return g.Clues[g.CellIndex(r, c)]
}

// NumCells returns the number of cells in the grid.
func (g *Grid) NumCells() int {
	return g.Rows * g.Cols
}

// NumPoints returns the number of lattice points: (Rows+1) x (Cols+1).
func (g *Grid) NumPoints() int {
	return (g.Rows + 1) * (g.Cols + 1)
}

// PointID returns the lattice-point index for row r (0..Rows), col c (0..Cols).
func (g *Grid) PointID(r, c int) int {
	return r*(g.Cols+1) + c
}
