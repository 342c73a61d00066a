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

// Package reader parses the puzzle text format: a header line "rows cols",
// then rows lines of cols whitespace-separated clue tokens ('0'-'3', or any
// other single character such as '.', '-', 'x', 'X' for no clue). Blank
// lines between the header and the grid, or between grid rows, are skipped
// rather than treated as short rows.
package reader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ancientHacker/slitherlink/internal/grid"
	"github.com/ancientHacker/slitherlink/internal/solveerr"
)

// Read parses a grid from r in the puzzle text format.
func Read(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)

	header, err := nextNonBlank(sc)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, solveerr.New(solveerr.InputScope, "header must have two integers, got %q", header)
	}
	rows, err1 := strconv.Atoi(fields[0])
	cols, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return nil, solveerr.New(solveerr.InputScope, "header must have two integers, got %q", header)
	}
	if rows <= 0 || cols <= 0 {
		return nil, solveerr.Error{
			Scope:     solveerr.InputScope,
			Condition: solveerr.NonPositiveDimensionCondition,
			Values:    []interface{}{rows, cols},
		}
	}

	clues := make([]int, 0, rows*cols)
	for row := 0; row < rows; row++ {
		line, err := nextNonBlank(sc)
		if err != nil {
			return nil, solveerr.Error{
				Scope:     solveerr.InputScope,
				Condition: solveerr.WrongRowCountCondition,
				Values:    []interface{}{rows, row},
			}
		}
		tokens := strings.Fields(line)
		if len(tokens) != cols {
			return nil, solveerr.Error{
				Scope:     solveerr.InputScope,
				Condition: solveerr.WrongColCountCondition,
				Values:    []interface{}{row, cols, len(tokens)},
			}
		}
		for col, tok := range tokens {
			if len(tok) != 1 {
				return nil, solveerr.Error{
					Scope:     solveerr.InputScope,
					Condition: solveerr.UnrecognizedTokenCondition,
					Values:    []interface{}{tok, row, col},
				}
			}
			if tok[0] >= '0' && tok[0] <= '3' {
				clues = append(clues, int(tok[0]-'0'))
			} else {
				clues = append(clues, grid.NoClue)
			}
		}
	}

	return grid.New(rows, cols, clues)
}

// nextNonBlank returns the next line from sc that has non-whitespace
// content, skipping any number of blank lines, the same way the original
// grid reader decrements its row counter and continues on a blank line.
func nextNonBlank(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, nil
	}
	if err := sc.Err(); err != nil {
		return "", solveerr.New(solveerr.InputScope, "read error: %v", err)
	}
	return "", solveerr.New(solveerr.InputScope, "unexpected end of input")
}
