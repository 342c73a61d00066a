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

// Package store persists completed solves: a Redis cache keyed by a content
// hash of the input grid, and a Postgres history of every solve attempt.
// Neither ever sees a State: the cache stores the printed solution text and
// the history stores a summary Record of each solve, the same boundary the original storage package drew
// between the puzzle engine and its Redis/Postgres connections.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/ancientHacker/slitherlink/internal/grid"
	"github.com/ancientHacker/slitherlink/internal/solveerr"
)

// RedisURLEnv names the environment variable holding the cache's connection URL.
const RedisURLEnv = "SLITHERLINK_REDIS_URL"

// Cache is a solution cache backed by Redis. It holds a single shared
// client behind a mutex, mirroring the original storage package's single
// guarded connection rather than a pool, since a CLI invocation only ever
// needs one solve's worth of cache traffic at a time.
type Cache struct {
	mu     sync.Mutex
	client *redis.Client
}

// NewCache connects to the Redis URL named by RedisURLEnv, or url if
// non-empty, and pings it once to fail fast on a bad connection.
func NewCache(ctx context.Context, url string) (*Cache, error) {
	if url == "" {
		url = os.Getenv(RedisURLEnv)
	}
	if url == "" {
		return nil, solveerr.New(solveerr.StoreScope, "%s is not set", RedisURLEnv)
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, solveerr.Error{
			Scope:     solveerr.StoreScope,
			Condition: solveerr.ConnectFailedCondition,
			Values:    []interface{}{url, err},
		}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, solveerr.Error{
			Scope:     solveerr.StoreScope,
			Condition: solveerr.ConnectFailedCondition,
			Values:    []interface{}{url, err},
		}
	}
	return &Cache{client: client}, nil
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Key returns the content-hash cache key for a grid, stable across
// whitespace-insensitive re-renderings of the same puzzle.
func Key(g *grid.Grid) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d %d\n", g.Rows, g.Cols)
	for _, c := range g.Clues {
		fmt.Fprintf(h, "%d ", c)
	}
	return "slitherlink:solution:" + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached rendering for key, if any.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, solveerr.Error{
			Scope:     solveerr.StoreScope,
			Condition: solveerr.GeneralCondition,
			Values:    []interface{}{err},
		}
	}
	return val, true, nil
}

// Put stores rendering under key with no expiry, matching the original
// cache's unbounded retention of computed puzzle state.
func (c *Cache) Put(ctx context.Context, key, rendering string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.client.Set(ctx, key, rendering, 0).Err(); err != nil {
		return solveerr.Error{Scope: solveerr.StoreScope, Condition: solveerr.GeneralCondition, Values: []interface{}{err}}
	}
	return nil
}
