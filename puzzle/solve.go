package puzzle

/*

Sudoku puzzle solver

The solver is a depth-first search over guesses.  Propagation
does the deductive work; the search only branches when
propagation stalls.  A branch picks an open cell with the fewest
remaining candidates (reading order breaks ties) and tries each
of its candidates in ascending order, always on a copy of the
board, so a failed guess is abandoned rather than undone.

Because the branch cell and the order of its candidates are both
deterministic, solving the same board twice yields the same
solution, and enumerating all solutions yields them in a stable
order.

*/

// Solve returns a solved copy of the board; the receiver is not
// modified.  When the board has more than one solution, the one
// returned is the first in the search order.  If the board has
// no solution, the returned error is an Error with
// UnsolvableCondition.
func (b *Board) Solve() (*Board, error) {
	s, _ := searchFirst(b.Clone(), nil)
	if s == nil {
		return nil, unsolvableError()
	}
	return s, nil
}

// FirstSolution is Solve in Solution form: it also reports the
// guesses the search made along the way.
func (b *Board) FirstSolution() (Solution, error) {
	s, trail := searchFirst(b.Clone(), nil)
	if s == nil {
		return Solution{}, unsolvableError()
	}
	return Solution{Values: s.Values(), Choices: trail}, nil
}

// Solutions finds all solutions to the board; the receiver is
// not modified.  The solutions come back in search order, and
// each records the guesses that produced it.  A board with no
// solutions gets an empty slice, not an error.
func (b *Board) Solutions() []Solution {
	var solutions []Solution
	searchAll(b.Clone(), nil, &solutions)
	return solutions
}

// searchFirst runs propagation on the board and, if it stalls,
// tries each candidate of the branch cell on a copy, depth
// first.  It owns its argument.  Returns the first solved board
// found and the trail of guesses that reached it, or nil if the
// board has no solution.
func searchFirst(b *Board, trail []Choice) (*Board, []Choice) {
	switch b.Propagate() {
	case Solved:
		return b, trail
	case Contradiction:
		return nil, nil
	}
	i := b.chooseCell()
	for _, v := range b.cells[i].cands {
		branch := b.Clone()
		branch.fix(i, v)
		if s, tr := searchFirst(branch, growTrail(trail, Choice{i, v})); s != nil {
			return s, tr
		}
	}
	return nil, nil
}

// searchAll is searchFirst except that it collects every solved
// board it reaches instead of stopping at the first.
func searchAll(b *Board, trail []Choice, solutions *[]Solution) {
	switch b.Propagate() {
	case Solved:
		*solutions = append(*solutions, Solution{Values: b.Values(), Choices: trail})
		return
	case Contradiction:
		return
	}
	i := b.chooseCell()
	for _, v := range b.cells[i].cands {
		branch := b.Clone()
		branch.fix(i, v)
		searchAll(branch, growTrail(trail, Choice{i, v}), solutions)
	}
}

// growTrail extends a trail of guesses without sharing storage
// with the input, so sibling branches can't clobber each other's
// trails.
func growTrail(trail []Choice, ch Choice) []Choice {
	next := make([]Choice, len(trail)+1)
	copy(next, trail)
	next[len(trail)] = ch
	return next
}

// chooseCell picks the open cell to branch on: the first cell in
// reading order with the fewest candidates.  Two candidates is
// the minimum any open cell can have after a stall, so the scan
// stops early when it finds one.
func (b *Board) chooseCell() int {
	best, bestcount := -1, SideLength+1
	for i := range b.cells {
		c := &b.cells[i]
		if c.value != 0 {
			continue
		}
		if count := len(c.cands); count < bestcount {
			best, bestcount = i, count
			if count == 2 {
				break
			}
		}
	}
	return best
}

// unsolvableError returns the Error reported for boards with no
// solution.
func unsolvableError() error {
	err := Error{
		Scope:     GridScope,
		Structure: ScopeStructure,
		Condition: UnsolvableCondition,
	}
	err.Message = err.Error()
	return err
}
