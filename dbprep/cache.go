// sudokusolver - a Sudoku puzzle solver library and web service.
// Copyright (C) 2024 Wendell Smith.
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

package dbprep

import (
	"os"

	"github.com/gomodule/redigo/redis"
)

// cacheKeyPatterns match the solver's cache entries: solutions
// keyed by grid signature and puzzles keyed by puzzle id.  The
// prefixes are spelled out here rather than imported because the
// storage layer that writes the keys depends on this package.
var cacheKeyPatterns = []string{"SIG:*", "PID:*"}

// ClearCache deletes the solver's entries from the cache.
// Anything else sharing the Redis instance is left alone.
func ClearCache() error {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/"
	}
	conn, err := redis.DialURL(url)
	if err != nil {
		return err
	}
	defer conn.Close()
	for _, pattern := range cacheKeyPatterns {
		keys, err := redis.Strings(conn.Do("KEYS", pattern))
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			continue
		}
		args := make([]interface{}, len(keys))
		for i, key := range keys {
			args[i] = key
		}
		if _, err := conn.Do("DEL", args...); err != nil {
			return err
		}
	}
	return nil
}
