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
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// EnsureData migrates the puzzle and solution tables to the
// current schema.  A fresh database (schema version 0, which is
// how migrate reports no schema at all) also gets the sample
// puzzles seeded; one that has already been seeded keeps the
// puzzles and solutions it has accumulated since.
func EnsureData() error {
	before, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't read schema version: %v", err)
	}
	if err := SchemaUp(); err != nil {
		return fmt.Errorf("Couldn't migrate schema: %v", err)
	}
	after, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't read migrated schema version: %v", err)
	}
	if after == 0 {
		return fmt.Errorf("Schema version is still 0 after migration: no migrations found")
	}
	if before != 0 {
		log.WithFields(logrus.Fields{"from": before, "to": after}).
			Info("schema is current")
		return nil
	}
	if err := DataUp(); err != nil {
		return fmt.Errorf("Couldn't seed sample puzzles: %v", err)
	}
	log.WithFields(logrus.Fields{"version": after, "samples": len(samplePuzzles)}).
		Info("seeded fresh database")
	return nil
}

// RemoveData drops the puzzle and solution tables with
// everything in them, samples and computed solutions alike.  A
// database with no schema installed is left as it is.
func RemoveData() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't read schema version: %v", err)
	}
	if version == 0 {
		return nil
	}
	if err := SchemaDown(); err != nil {
		return fmt.Errorf("Couldn't drop tables: %v", err)
	}
	return nil
}

// ReinitializeAll returns the solver's storage to a fresh
// install: cached solutions cleared, tables dropped and rebuilt,
// samples reseeded.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("Couldn't clear solution cache: %v", err)
	}
	if err := RemoveData(); err != nil {
		return fmt.Errorf("Couldn't drop database tables: %v", err)
	}
	if err := EnsureData(); err != nil {
		return fmt.Errorf("Couldn't rebuild database: %v", err)
	}
	return nil
}
