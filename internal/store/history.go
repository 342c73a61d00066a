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

package store

import (
	"context"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ancientHacker/slitherlink/internal/solveerr"
)

// History records one row per completed solve, backed by Postgres the way
// the original dbprep package ensured its schema via a migration runner
// before any row was ever written.
type History struct {
	pool *pgxpool.Pool
}

// NewHistory connects to dsn and ensures the solve_history schema exists,
// running any pending migrations in migrationsDir via golang-migrate.
func NewHistory(ctx context.Context, dsn, migrationsDir string) (*History, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, solveerr.Error{
			Scope:     solveerr.StoreScope,
			Condition: solveerr.ConnectFailedCondition,
			Values:    []interface{}{dsn, err},
		}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, solveerr.Error{
			Scope:     solveerr.StoreScope,
			Condition: solveerr.ConnectFailedCondition,
			Values:    []interface{}{dsn, err},
		}
	}

	if migrationsDir != "" {
		if err := ensureSchema(dsn, migrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &History{pool: pool}, nil
}

// ensureSchema runs every up migration in migrationsDir, mirroring
// dbprep.EnsureData's "bring the schema forward, then continue" flow.
func ensureSchema(dsn, migrationsDir string) error {
	// golang-migrate's pgx/v5 driver registers under the "pgx5" scheme;
	// the pool above keeps using the caller's postgres:// DSN unchanged.
	migrateDSN := "pgx5" + strings.TrimPrefix(dsn, "postgres")
	m, err := migrate.New("file://"+migrationsDir, migrateDSN)
	if err != nil {
		return solveerr.Error{
			Scope:     solveerr.StoreScope,
			Condition: solveerr.MigrationFailedCondition,
			Values:    []interface{}{err},
		}
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return solveerr.Error{
			Scope:     solveerr.StoreScope,
			Condition: solveerr.MigrationFailedCondition,
			Values:    []interface{}{err},
		}
	}
	return nil
}

// Close releases the connection pool.
func (h *History) Close() {
	h.pool.Close()
}

// Record is one completed-solve entry.
type Record struct {
	GridSignature string
	FindAll       bool
	SolutionCount int
	Elapsed       time.Duration
}

// Append inserts rec into the solve_history table.
func (h *History) Append(ctx context.Context, rec Record) error {
	_, err := h.pool.Exec(ctx,
		`INSERT INTO solve_history (grid_signature, find_all, solution_count, elapsed_ms)
		 VALUES ($1, $2, $3, $4)`,
		rec.GridSignature, rec.FindAll, rec.SolutionCount, rec.Elapsed.Milliseconds())
	if err != nil {
		return solveerr.Error{Scope: solveerr.StoreScope, Condition: solveerr.GeneralCondition, Values: []interface{}{err}}
	}
	return nil
}
