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
	"github.com/jackc/pgx/v5"

	"github.com/wackywendell/sudokusolver/puzzle"
)

/*

known puzzles

*/

// SavePuzzle stores a named starting grid.  The grid's signature
// is its identifier; saving the same grid twice under different
// names is an error.
func SavePuzzle(ctx context.Context, name string, g puzzle.Grid) (signature string, err error) {
	defer recovered(&err)

	// reject grids the solver would reject
	if _, err = puzzle.NewGrid(g); err != nil {
		return "", err
	}
	pe := &puzzleEntry{
		Signature: Signature(g),
		Name:      name,
		Values:    toStored(g.Values()),
	}
	pe.databaseInsert(ctx)
	pe.cacheInsert()
	return pe.Signature, nil
}

// LoadPuzzle returns the named-grid entry for a signature.
func LoadPuzzle(ctx context.Context, signature string) (g puzzle.Grid, name string, err error) {
	defer recovered(&err)

	pe := loadPuzzleEntry(ctx, signature)
	vs := fromStored(pe.Values)
	b, err := puzzle.New(vs)
	if err != nil {
		return puzzle.Grid{}, "", fmt.Errorf("Stored puzzle %q is malformed: %v", signature, err)
	}
	return b.Grid(), pe.Name, nil
}

// ListPuzzles returns info about every stored puzzle.
func ListPuzzles(ctx context.Context) (infos []*PuzzleInfo, err error) {
	defer recovered(&err)

	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT signature, puzzleName, valueList, created FROM puzzles")
		if err != nil {
			return fmt.Errorf("Failure listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			var sig, name string
			var values []int32
			var created time.Time
			if err := rows.Scan(&sig, &name, &values, &created); err != nil {
				return fmt.Errorf("Failure reading puzzle list: %v", err)
			}
			infos = append(infos, &PuzzleInfo{
				Signature: sig,
				Name:      name,
				Remaining: countZeroes(values),
				Created:   created,
			})
		}
		return rows.Err()
	}
	pgExecute(ctx, body)
	return infos, nil
}

/*

puzzle info

*/

// A PuzzleInfo is the exported summary of a stored puzzle.
type PuzzleInfo struct {
	Signature string    // grid signature, the puzzle's unique ID
	Name      string    // user-facing name of the puzzle
	Remaining int       // number of open cells
	Created   time.Time // time when the puzzle was stored
}

// compute the number of empty squares
func countZeroes(vals []int32) (count int) {
	for _, v := range vals {
		if v == 0 {
			count++
		}
	}
	return
}

// sorting of info sequences by puzzle name
type ByName []*PuzzleInfo

func (pi ByName) Len() int           { return len(pi) }
func (pi ByName) Swap(i, j int)      { pi[i], pi[j] = pi[j], pi[i] }
func (pi ByName) Less(i, j int) bool { return pi[i].Name < pi[j].Name }

// sorting of info sequences by creation time, newest first
type ByLatestCreated []*PuzzleInfo

func (pi ByLatestCreated) Len() int           { return len(pi) }
func (pi ByLatestCreated) Swap(i, j int)      { pi[i], pi[j] = pi[j], pi[i] }
func (pi ByLatestCreated) Less(i, j int) bool { return pi[i].Created.After(pi[j].Created) }

/*

puzzle entries

*/

// A puzzleEntry represents the stored form of a named starting
// grid.  It is JSON serializable so it can go into the cache as
// well as the database.
type puzzleEntry struct {
	Signature string
	Name      string
	Values    []int32
}

// loadPuzzleEntry first checks the cache, then the database, to
// find the puzzle's entry.  If it loads from the database, it
// caches the result.  Panics if there is no such stored entry.
func loadPuzzleEntry(ctx context.Context, signature string) *puzzleEntry {
	pe := &puzzleEntry{Signature: signature}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, load from database and save to cache
	pe.databaseLoad(ctx)
	pe.cacheInsert()
	return pe
}

// key: compute the cache key for a puzzleEntry.
func (pe *puzzleEntry) key() string {
	return "PID:" + pe.Signature
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *puzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzleEntry %q: %v", pe.Signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *puzzleEntry
	err := json.Unmarshal(bytes, &spe)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal puzzleEntry %q: %v", pe.Signature, err))
	}
	if spe.Signature != pe.Signature {
		panic(fmt.Errorf("Cached puzzleEntry (signature %q) found for puzzle %q!",
			spe.Signature, pe.Signature))
	}
	*pe = *spe
	return true
}

// databaseLoad: load a puzzle entry from the database.  Panics
// if there is no saved entry with the given signature.
func (pe *puzzleEntry) databaseLoad(ctx context.Context) {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT puzzleName, valueList FROM puzzles "+
				"WHERE signature = $1", pe.Signature)
		if err := row.Scan(&pe.Name, &pe.Values); err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", pe.Signature, err)
		}
		return nil
	}
	pgExecute(ctx, body)
}

// cacheInsert: insert a puzzle entry into the cache.  Replaces
// any existing entry with the same signature.
func (pe *puzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal puzzleEntry %q: %v", pe.Signature, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving puzzle entry %q: %v", pe.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseInsert: insert a new puzzle entry into the database.
// Panics if there is already a saved entry with the given
// signature.
func (pe *puzzleEntry) databaseInsert(ctx context.Context) {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx,
			"INSERT INTO puzzles (signature, puzzleName, valueList, created) "+
				"VALUES ($1, $2, $3, $4)",
			pe.Signature, pe.Name, pe.Values, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving puzzle entry %q: %v", pe.Signature, err)
		}
		return
	}
	pgExecute(ctx, body)
}
