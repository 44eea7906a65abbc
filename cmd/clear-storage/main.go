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

// Clear and re-initialize the sudokusolver storage system
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wackywendell/sudokusolver/dbprep"
)

var log = logrus.New()

func main() {
	godotenv.Load()
	log.Info("Removing existing data storage and cache...")
	if err := dbprep.ReinitializeAll(); err != nil {
		log.WithError(err).Fatal("Couldn't clear storage")
	}
	log.Info("Database re-initialized.")
}
