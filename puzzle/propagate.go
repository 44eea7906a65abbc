package puzzle

/*

Constraint propagation

Propagation alternates two deduction rules until neither makes
progress:

1. An open cell with a single remaining candidate must be filled
with that candidate.

2. If a group has exactly one cell that can hold a value the
group still needs, that cell must be filled with that value.

Each fill removes the filled value from the candidates of the
cell's peers, which can enable further deductions, so the rules
are applied repeatedly until a full round of both makes no fill.
Propagation either completes the board, stalls with open cells
that all have at least two candidates, or discovers that the
board has no solution.

*/

import (
	"fmt"
)

// A Result reports the outcome of propagation.
type Result int

// Constants for the propagation outcomes.
const (
	Solved Result = iota
	Stalled
	Contradiction
)

// Results implement Stringer
func (r Result) String() string {
	switch r {
	case Solved:
		return "solved"
	case Stalled:
		return "stalled"
	case Contradiction:
		return "contradiction"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Propagate applies the deduction rules to the board until they
// reach a fixpoint.  The board is modified in place: every value
// the rules can force is filled in.  Propagation never guesses,
// so two boards created from the same values always propagate to
// the same cells and candidates.
func (b *Board) Propagate() Result {
	for {
		if len(b.errors) > 0 {
			return Contradiction
		}
		if b.open == 0 {
			return Solved
		}
		filled := b.singlesPass()
		if len(b.errors) == 0 {
			filled += b.groupsPass()
		}
		if len(b.errors) > 0 {
			return Contradiction
		}
		if filled == 0 {
			return Stalled
		}
	}
}

// singlesPass fills every open cell that has exactly one
// candidate left, returning the number of cells filled.  The
// pass stops early if a fill violates a constraint.
func (b *Board) singlesPass() int {
	filled := 0
	for i := range b.cells {
		c := &b.cells[i]
		if c.value != 0 || len(c.cands) != 1 {
			continue
		}
		if !b.fix(i, c.cands[0]) {
			return filled
		}
		filled++
	}
	return filled
}

// groupsPass walks the groups looking for values with only one
// candidate cell left, filling each one found, and returns the
// number of cells filled.  A value some group can no longer
// place anywhere is a contradiction, recorded on the board.
//
// Fills made while walking a group can make that group's counts
// stale, but only by filling a counted cell, so a cell is
// rechecked before it is filled.  A zero count is never stale:
// fills only remove candidates for their own value, and for that
// value the count includes the filled cell itself.
func (b *Board) groupsPass() int {
	filled := 0
	for gi := range gdescs {
		g := &gdescs[gi]
		var have [SideLength + 1]bool
		var counts, lasts [SideLength + 1]int
		for _, ci := range g.indices {
			c := &b.cells[ci]
			if c.value != 0 {
				have[c.value] = true
				continue
			}
			for _, v := range c.cands {
				counts[v]++
				lasts[v] = ci
			}
		}
		for v := 1; v <= SideLength; v++ {
			if have[v] {
				continue
			}
			switch counts[v] {
			case 0:
				b.errors = append(b.errors, groupError(g.id, v, NoGroupValueCondition))
				return filled
			case 1:
				ci := lasts[v]
				if b.cells[ci].value != 0 {
					continue // filled earlier in this pass
				}
				if !b.fix(ci, v) {
					return filled
				}
				filled++
			}
		}
	}
	return filled
}
