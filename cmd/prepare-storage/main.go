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

// Prepare the sudokusolver storage system for use
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wackywendell/sudokusolver/dbprep"
)

var log = logrus.New()

func main() {
	godotenv.Load()
	log.Info("Preparing data storage...")
	if err := dbprep.EnsureData(); err != nil {
		log.WithError(err).Fatal("Couldn't prepare storage")
	}
	version, err := dbprep.SchemaVersion()
	if err != nil {
		log.WithError(err).Fatal("Couldn't read schema version")
	}
	log.WithField("version", version).Info("Database ready.")
}
