// Copyright 2024 Wendell Smith.  All rights reserved.

// Package puzzle provides a model for standard 9x9 Sudoku
// puzzles, constraint propagation over them, and a backtracking
// solver.  It also provides RESTful wrappers over the solver, so
// it's easy to build web services on top of it.
//
// In this package, a puzzle is made of cells which are either
// open (represented with a 0 value) or filled with a value
// between 1 and 9 (inclusive).  The cells are designated by
// indices that start at 0 and increase left-to-right,
// top-to-bottom (English reading order).
//
// For each open cell, the implementation maintains the set of
// candidate values the cell can still take without conflicting
// with a filled cell in one of its groups: its row, its column,
// and its 3x3 tile.  Filling a cell removes the filled value
// from the candidates of every cell that shares a group with it.
//
// Propagation repeatedly fills cells whose value is forced: open
// cells with a single candidate left, and cells that are the
// only place in some group where a needed value can go.  When
// propagation can make no further deduction the solver guesses,
// always on a copy of the board, so a wrong guess is abandoned
// rather than undone.
package puzzle

// A Grid is the plain 9x9 value form of a puzzle: rows top to
// bottom, columns left to right, 0 for an open cell.
type Grid [SideLength][SideLength]int

// Values flattens a grid into reading order.
func (g Grid) Values() []int {
	vs := make([]int, 0, CellCount)
	for r := 0; r < SideLength; r++ {
		vs = append(vs, g[r][:]...)
	}
	return vs
}

// A Choice records one guessed cell assignment made during the
// search for a solution.  The cell is referred to by its index.
type Choice struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// A Solution is a completed puzzle (expressed as its values)
// plus the sequence of choices for open cells that were made to
// get there.  Solutions tend to have far fewer choices than
// originally open cells, because most of the open cells in most
// puzzles have their values forced by propagation.  Forced
// values are present only in the solved values, not in the
// choice list.
type Solution struct {
	Values  []int    `json:"values"`
	Choices []Choice `json:"choices,omitempty"`
}
