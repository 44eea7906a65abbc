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
	"path"
	"testing"
)

// path.Match and Redis KEYS agree on these simple prefix globs,
// so the patterns can be checked without a Redis instance.
func TestCacheKeyPatterns(t *testing.T) {
	matches := func(key string) bool {
		for _, pattern := range cacheKeyPatterns {
			ok, err := path.Match(pattern, key)
			if err != nil {
				t.Fatalf("Pattern %q is malformed: %v", pattern, err)
			}
			if ok {
				return true
			}
		}
		return false
	}

	// the storage layer's keys must be covered
	sig := samplePuzzles[0].signature()
	for _, key := range []string{"SIG:" + sig, "PID:" + sig} {
		if !matches(key) {
			t.Errorf("Cache key %q matches no clear pattern", key)
		}
	}

	// keys belonging to other users of the instance must not be
	others := []string{"sessions:abc", "sig:lowercase", "BANANA"}
	for _, key := range others {
		if matches(key) {
			t.Errorf("Unrelated key %q would be cleared", key)
		}
	}
}
