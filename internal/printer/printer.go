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

// Package printer renders a Solution as the ASCII grid-plus-cycle text
// format: a line of '+' and '-'/' ' for each horizontal edge row, a line of
// '|'/' ' and clue digits for each cell row, followed by the ordered cycle
// walk.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ancientHacker/slitherlink/internal/grid"
	"github.com/ancientHacker/slitherlink/internal/state"
	"github.com/ancientHacker/slitherlink/internal/validate"
)

// Grid renders s's decided edges as an ASCII grid, using gr's clue digits
// (or a space for no clue) in each cell.
func Grid(w io.Writer, g *grid.Grid, s *state.State) {
	gr := s.Graph
	isHorizOn := func(r, c int) bool {
		return s.EdgeDecision[gr.HorizEdgeIndex[r*g.Cols+c]] == state.On
	}
	isVertOn := func(r, c int) bool {
		return s.EdgeDecision[gr.VertEdgeIndex[r*(g.Cols+1)+c]] == state.On
	}

	for r := 0; r <= g.Rows; r++ {
		var line strings.Builder
		line.WriteByte('+')
		for c := 0; c < g.Cols; c++ {
			if isHorizOn(r, c) {
				line.WriteString("-+")
			} else {
				line.WriteString(" +")
			}
		}
		fmt.Fprintln(w, line.String())

		if r < g.Rows {
			var row strings.Builder
			for c := 0; c < g.Cols; c++ {
				if isVertOn(r, c) {
					row.WriteByte('|')
				} else {
					row.WriteByte(' ')
				}
				clue := g.Clue(r, c)
				if clue == grid.NoClue {
					row.WriteByte(' ')
				} else {
					row.WriteByte(byte('0' + clue))
				}
			}
			if isVertOn(r, g.Cols) {
				row.WriteByte('|')
			} else {
				row.WriteByte(' ')
			}
			fmt.Fprintln(w, row.String())
		}
	}
}

// Cycle renders the cycle's lattice-point walk as "(r,c) -> (r,c) -> ...".
func Cycle(w io.Writer, cycle []validate.Point) {
	fmt.Fprintln(w, "Cycle (point coordinates row,col):")
	parts := make([]string, len(cycle))
	for i, p := range cycle {
		parts[i] = fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	fmt.Fprintln(w, strings.Join(parts, " -> "))
}

// Solution renders both the grid and the cycle for a single solution.
func Solution(w io.Writer, g *grid.Grid, s *state.State, cycle []validate.Point) {
	Grid(w, g, s)
	Cycle(w, cycle)
}

// Summary renders the trailing "=== SUMMARY ===" line printed after a
// find-all run.
func Summary(w io.Writer, count int) {
	fmt.Fprintf(w, "\n=== SUMMARY ===\nTotal solutions found: %d\n", count)
}
