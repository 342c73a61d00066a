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

// Package solveerr provides the structured error type shared by every
// collaborator that crosses the core solver's boundary: the grid reader,
// the grid constructor (grid.New), and the store layer. The core's hot loop (propagator,
// heuristic, search) never constructs or returns one of these; contradiction
// there is a plain boolean, not an error.
package solveerr

import "fmt"

// A Scope names the subsystem in which a problem occurred.
type Scope int

// Constants for the various scopes.
const (
	UnknownScope Scope = iota
	InputScope
	GeometryScope
	StoreScope
	InternalScope
)

func (s Scope) label() string {
	switch s {
	case InputScope:
		return "Invalid input"
	case GeometryScope:
		return "Invalid geometry"
	case StoreScope:
		return "Store failure"
	case InternalScope:
		return "Internal logic error"
	default:
		return "Unknown error"
	}
}

// A Condition is the predicate that failed to hold.
type Condition int

// Constants for the various conditions.
const (
	UnknownCondition Condition = iota
	GeneralCondition
	WrongRowCountCondition
	WrongColCountCondition
	UnrecognizedTokenCondition
	NonPositiveDimensionCondition
	ConnectFailedCondition
	MigrationFailedCondition
)

// An Error describes a problem with a puzzle input or a store operation.
// Scope says which subsystem failed, Condition says how, and Values holds
// the supplemental data needed to render an English message.
type Error struct {
	Scope     Scope
	Condition Condition
	Values    []interface{}
	Message   string // pre-formatted message, if set, wins over Scope/Condition
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	vals := e.Values
	next := func() interface{} {
		if len(vals) == 0 {
			return "<unknown>"
		}
		v := vals[0]
		vals = vals[1:]
		return v
	}
	msg := e.Scope.label() + ": "
	switch e.Condition {
	case GeneralCondition:
		msg += fmt.Sprint(next())
	case WrongRowCountCondition:
		msg += fmt.Sprintf("expected %v rows, got %v", next(), next())
	case WrongColCountCondition:
		msg += fmt.Sprintf("row %v: expected %v columns, got %v", next(), next(), next())
	case UnrecognizedTokenCondition:
		msg += fmt.Sprintf("unrecognized clue token %q at row %v, col %v", next(), next(), next())
	case NonPositiveDimensionCondition:
		msg += fmt.Sprintf("rows and cols must be positive, got %v x %v", next(), next())
	case ConnectFailedCondition:
		msg += fmt.Sprintf("couldn't connect to %v: %v", next(), next())
	case MigrationFailedCondition:
		msg += fmt.Sprintf("schema migration failed: %v", next())
	default:
		msg += fmt.Sprint(vals)
	}
	return msg
}

// New is a convenience constructor for the common case of a general-purpose
// message with no structured Values.
func New(scope Scope, format string, args ...interface{}) Error {
	return Error{Scope: scope, Condition: GeneralCondition, Values: []interface{}{fmt.Sprintf(format, args...)}}
}
