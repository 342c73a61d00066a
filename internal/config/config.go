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

// Package config validates the combination of flags a solve invocation was
// given, the way the original solver's SolverConfig::validate() rejects a
// nonsensical combination (e.g. --verbose together with --quiet, or a
// negative thread count) before the solve begins rather than mid-run.
package config

import (
	"time"

	"github.com/ancientHacker/slitherlink/internal/search"
	"github.com/ancientHacker/slitherlink/internal/solveerr"
)

// SolverConfig holds every user-settable knob for a solve invocation.
type SolverConfig struct {
	All             bool // find all solutions, not just the first
	MaxSolutions    int
	Threads         int
	CPU             float64
	Timeout         time.Duration
	Verbose         bool
	Quiet           bool
	NoParallel      bool
	CacheSolutions  bool
	HistoryDSN      string
	View            bool
}

// Validate checks c for internal consistency, mirroring the original's
// range checks, and normalizes MaxSolutions==1 into stopping after the
// first solution the way the original auto-sets stopAfterFirst.
func (c *SolverConfig) Validate() error {
	if c.Threads < 0 {
		return solveerr.New(solveerr.InputScope, "threads must be >= 0, got %d", c.Threads)
	}
	if c.CPU < 0 || c.CPU > 1 {
		return solveerr.New(solveerr.InputScope, "cpu fraction must be in [0,1], got %v", c.CPU)
	}
	if c.MaxSolutions < 0 {
		return solveerr.New(solveerr.InputScope, "max-solutions must be >= 0, got %d", c.MaxSolutions)
	}
	if c.Verbose && c.Quiet {
		return solveerr.New(solveerr.InputScope, "--verbose and --quiet are mutually exclusive")
	}
	if c.MaxSolutions == 1 {
		c.All = false
	}
	if c.NoParallel {
		c.Threads = 1
		c.CPU = 0
	}
	return nil
}

// SearchOptions projects c onto the search package's Options.
func (c SolverConfig) SearchOptions() search.Options {
	return search.Options{
		FindAll:      c.All,
		MaxSolutions: c.MaxSolutions,
		Threads:      c.Threads,
		CPU:          c.CPU,
	}
}
