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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

/*

entries

*/

type dataFunction func(context.Context, pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudokusolver?sslmode=disable"
	}

	// open the database, defer the close
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(ctx, tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

sample puzzles

*/

type samplePuzzle struct {
	name   string
	values []int32
}

var samplePuzzles = []samplePuzzle{
	{"1-star", []int32{
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	}},
	{"2-star", []int32{
		0, 1, 0, 5, 0, 6, 0, 2, 0,
		0, 0, 0, 0, 0, 3, 0, 1, 8,
		0, 0, 0, 0, 7, 0, 0, 0, 6,
		0, 0, 5, 0, 0, 0, 0, 3, 0,
		0, 0, 8, 0, 9, 0, 7, 0, 0,
		0, 6, 0, 0, 0, 0, 4, 0, 0,
		5, 0, 0, 0, 4, 0, 0, 0, 0,
		6, 4, 0, 2, 0, 0, 0, 0, 0,
		0, 3, 0, 9, 0, 1, 0, 8, 0,
	}},
	{"3-star", []int32{
		9, 0, 0, 4, 5, 0, 0, 0, 8,
		0, 2, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 7, 2, 4, 0, 0,
		0, 7, 9, 0, 0, 0, 6, 8, 0,
		2, 0, 0, 0, 0, 0, 0, 0, 5,
		0, 4, 3, 0, 0, 0, 2, 7, 0,
		0, 0, 8, 3, 2, 5, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 6, 0,
		4, 0, 0, 0, 1, 6, 0, 0, 3,
	}},
	{"4-star", []int32{
		9, 4, 8, 0, 5, 0, 2, 0, 0,
		0, 0, 7, 8, 0, 3, 0, 0, 1,
		0, 5, 0, 0, 7, 0, 0, 0, 0,
		0, 7, 0, 0, 0, 0, 3, 0, 0,
		2, 0, 0, 6, 0, 5, 0, 0, 4,
		0, 0, 5, 0, 0, 0, 0, 9, 0,
		0, 0, 0, 0, 6, 0, 0, 1, 0,
		3, 0, 0, 5, 0, 9, 7, 0, 0,
		0, 0, 6, 0, 1, 0, 4, 2, 3,
	}},
	{"5-star", []int32{
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		9, 0, 0, 5, 0, 7, 0, 3, 0,
		0, 0, 0, 1, 0, 0, 6, 0, 7,
		0, 4, 0, 0, 6, 0, 0, 8, 2,
		6, 7, 0, 0, 0, 0, 0, 1, 3,
		3, 8, 0, 0, 1, 0, 0, 9, 0,
		7, 0, 5, 0, 0, 8, 0, 0, 0,
		0, 2, 0, 3, 0, 9, 0, 0, 8,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}},
	{"6-star", []int32{
		2, 0, 0, 8, 0, 0, 0, 5, 0,
		0, 8, 5, 0, 0, 0, 0, 0, 0,
		0, 3, 6, 7, 5, 0, 0, 0, 1,
		0, 0, 3, 0, 4, 0, 0, 9, 8,
		0, 0, 0, 3, 0, 5, 0, 0, 0,
		4, 1, 0, 0, 6, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 1, 2, 0,
		0, 0, 0, 0, 0, 0, 5, 6, 0,
		0, 2, 0, 0, 0, 0, 0, 0, 4,
	}},
}

// signature: the sample's grid signature, the same digit string
// the storage layer computes for solve requests
func (sp samplePuzzle) signature() string {
	bytes := make([]byte, len(sp.values))
	for i, v := range sp.values {
		bytes[i] = byte('0' + v)
	}
	return string(bytes)
}

// insertSamples: insert the sample puzzles
func insertSamples(ctx context.Context, tx pgx.Tx) error {
	for _, sp := range samplePuzzles {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (signature, puzzleName, valueList, created) "+
				"VALUES ($1, $2, $3, $4)",
			sp.signature(), sp.name, sp.values, time.Now())
		if err != nil {
			return fmt.Errorf("Couldn't insert sample %q: %v", sp.name, err)
		}
	}
	return nil
}

// deleteSamples: remove the sample puzzles and any solutions
// computed for them
func deleteSamples(ctx context.Context, tx pgx.Tx) error {
	for _, sp := range samplePuzzles {
		sig := sp.signature()
		if _, err := tx.Exec(ctx,
			"DELETE from solutions where signature = $1", sig); err != nil {
			return fmt.Errorf("Couldn't delete solutions of sample %q: %v", sp.name, err)
		}
		if _, err := tx.Exec(ctx,
			"DELETE from puzzles where signature = $1", sig); err != nil {
			return fmt.Errorf("Couldn't delete sample %q: %v", sp.name, err)
		}
	}
	return nil
}
