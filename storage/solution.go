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

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/wackywendell/sudokusolver/puzzle"
)

/*

signatures

*/

// Signature computes the canonical identifier for a grid: its 81
// values in reading order as a digit string, 0 for open cells.
// Two requests for the same puzzle share one signature, so the
// signature is the cache and database key for its solution.
func Signature(g puzzle.Grid) string {
	vs := g.Values()
	bytes := make([]byte, len(vs))
	for i, v := range vs {
		bytes[i] = byte('0' + v)
	}
	return string(bytes)
}

// value-list conversions between the solver's ints and the
// stored int32 arrays
func toStored(vs []int) []int32 {
	stored := make([]int32, len(vs))
	for i, v := range vs {
		stored[i] = int32(v)
	}
	return stored
}

func fromStored(stored []int32) []int {
	vs := make([]int, len(stored))
	for i, v := range stored {
		vs[i] = int(v)
	}
	return vs
}

// choices are stored flattened as index, value pairs
func flattenChoices(choices []puzzle.Choice) []int32 {
	flat := make([]int32, 0, 2*len(choices))
	for _, c := range choices {
		flat = append(flat, int32(c.Index), int32(c.Value))
	}
	return flat
}

func unflattenChoices(flat []int32) []puzzle.Choice {
	if len(flat) == 0 {
		return nil
	}
	choices := make([]puzzle.Choice, len(flat)/2)
	for i := range choices {
		choices[i] = puzzle.Choice{Index: int(flat[2*i]), Value: int(flat[2*i+1])}
	}
	return choices
}

/*

solve entry points

*/

// recovered wraps a storage entry point, turning the panics
// thrown by rdExecute and pgExecute into returned errors.
func recovered(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
		} else {
			*err = fmt.Errorf("Storage failure: %v", r)
		}
	}
}

// SolveGrid returns the first solution of the given grid,
// consulting the cache and the database before searching.  A
// fresh search result is saved to both, along with a solve
// record carrying the search time.  The second return is false
// when the grid has no solution.
func SolveGrid(ctx context.Context, g puzzle.Grid) (sol puzzle.Solution, ok bool, err error) {
	defer recovered(&err)

	se := &solutionEntry{Signature: Signature(g)}
	if !se.cacheLoad() && !se.databaseLoad(ctx) {
		solveAndStore(ctx, g, se)
	}
	if !se.Solved {
		return puzzle.Solution{}, false, nil
	}
	return puzzle.Solution{
		Values:  fromStored(se.Values),
		Choices: unflattenChoices(se.Choices),
	}, true, nil
}

// solveAndStore runs the searcher on the grid and saves the
// outcome under the entry's signature.  Unsolvable grids are
// stored too, so the search is never repeated.
func solveAndStore(ctx context.Context, g puzzle.Grid, se *solutionEntry) {
	b, err := puzzle.NewGrid(g)
	if err != nil {
		panic(fmt.Errorf("Can't solve malformed grid %q: %v", se.Signature, err))
	}
	start := time.Now()
	sol, err := b.FirstSolution()
	elapsed := time.Since(start)
	if err == nil {
		se.Solved = true
		se.Values = toStored(sol.Values)
		se.Choices = flattenChoices(sol.Choices)
	}
	se.cacheInsert()
	se.databaseInsert(ctx, elapsed)
	log.WithFields(logrus.Fields{
		"signature": se.Signature,
		"solved":    se.Solved,
		"elapsed":   elapsed,
	}).Info("solved grid")
}

/*

solution entries

*/

// A solutionEntry is the stored outcome of one search: the
// solved values and the choices that reached them, or a
// not-solved marker.  It is JSON serializable so it can go into
// the cache as well as the database.
type solutionEntry struct {
	Signature string // signature of the starting grid
	Solved    bool
	Values    []int32 // solved values, nil unless Solved
	Choices   []int32 // flattened choice pairs
}

// key: compute the cache key for a solutionEntry.
func (se *solutionEntry) key() string {
	return "SIG:" + se.Signature
}

// cacheLoad: load an already cached solution entry.  Returns
// whether the entry was found in the cache.
func (se *solutionEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", se.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading solution %q: %v", se.Signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var sse *solutionEntry
	if err := json.Unmarshal(bytes, &sse); err != nil {
		panic(fmt.Errorf("Failed to unmarshal solution %q: %v", se.Signature, err))
	}
	if sse.Signature != se.Signature {
		panic(fmt.Errorf("Cached solution (signature %q) found for grid %q!",
			sse.Signature, se.Signature))
	}
	*se = *sse
	return true
}

// cacheInsert: insert a solution entry into the cache.  Replaces
// any existing entry with the same signature.
func (se *solutionEntry) cacheInsert() {
	bytes, e := json.Marshal(se)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal solution %q: %v", se.Signature, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", se.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving solution %q: %v", se.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad: load a solution entry from the database, caching
// it on a hit.  Returns whether a stored record was found.
func (se *solutionEntry) databaseLoad(ctx context.Context) bool {
	found := false
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT solved, valueList, choiceList FROM solutions "+
				"WHERE signature = $1 ORDER BY created LIMIT 1", se.Signature)
		err := row.Scan(&se.Solved, &se.Values, &se.Choices)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up solution %q: %v", se.Signature, err)
		}
		found = true
		return nil
	}
	pgExecute(ctx, body)
	if found {
		se.cacheInsert()
	}
	return found
}

// databaseInsert: insert a solve record for the entry into the
// database.  Each search gets its own record id.
func (se *solutionEntry) databaseInsert(ctx context.Context, elapsed time.Duration) {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx,
			"INSERT INTO solutions "+
				"(recordId, signature, solved, valueList, choiceList, elapsedMs, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6, $7)",
			uuid.NewString(), se.Signature, se.Solved, se.Values, se.Choices,
			elapsed.Milliseconds(), time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving solution %q: %v", se.Signature, err)
		}
		return
	}
	pgExecute(ctx, body)
}
