package puzzle

/*

Board representation

*/

/*

Cells

*/

// A cell is either filled with a value between 1 and SideLength
// or open.  While open, it carries the set of candidate values
// it can still take without conflicting with a filled cell in
// one of its groups.  Once filled, the candidate set is dropped.
type cell struct {
	value int
	cands intset
}

/*

Boards

*/

// A Board holds the cells of a puzzle in reading order, a count
// of the cells still open, and any Errors that prevent the board
// from being solved.  Boards with errors are contradictory:
// their cells can't be completed to a solution, and the solver
// won't try.
type Board struct {
	cells  [CellCount]cell
	open   int
	errors []Error
}

// New creates a Board from the given cell values, which must be
// in reading order, one for each cell.  Input values of 0 mean
// an open cell.  Gives an error if the number of values or any
// single value is out of range for the grid.
//
// Filling the given values does constraint relaxation on the
// candidates of the open cells.  If the values conflict with
// each other, or leave an open cell with no candidates, New
// fails with the first resulting Error: conflicting givens are
// an input problem, surfaced at construction rather than later
// as an unsolvable board.
func New(values []int) (*Board, error) {
	if len(values) != CellCount {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: GridSizeAttribute,
			Condition: WrongGridSizeCondition,
			Values:    ErrorData{len(values), CellCount},
		}
	}
	for _, v := range values {
		if v < 0 || v > SideLength {
			return nil, rangeError(ValueAttribute, v, 0, SideLength)
		}
	}
	b := &Board{open: CellCount}
	for i := range b.cells {
		b.cells[i].cands = newIntsetRange(SideLength)
	}
	for i, v := range values {
		if v != 0 {
			if !b.fix(i, v) {
				err := b.errors[0]
				err.Message = err.Error()
				return nil, err
			}
		}
	}
	return b, nil
}

// NewGrid creates a Board from a Grid.
func NewGrid(g Grid) (*Board, error) {
	return New(g.Values())
}

// fix fills the open cell at index i with value v and removes v
// from the candidates of every peer.  Any constraint violated by
// the fill is recorded as an Error on the board.  Returns true
// if the board is still free of errors afterward.
func (b *Board) fix(i, v int) bool {
	c := &b.cells[i]
	if c.value == v {
		return len(b.errors) == 0
	}
	if c.value != 0 {
		err := cellError(i, v, nil, DuplicateAssignmentCondition)
		err.Values = append(err.Values, c.value)
		b.errors = append(b.errors, err)
		return false
	}
	if _, found := c.cands.find(v); !found {
		b.errors = append(b.errors, cellError(i, v, c.cands, NotInSetCondition))
	}
	c.value = v
	c.cands = nil
	b.open--
	for _, pi := range peers[i] {
		p := &b.cells[pi]
		if p.value == v {
			b.errors = append(b.errors, groupError(sharedGroup(i, pi), v, DuplicateGroupValuesCondition))
			continue
		}
		if p.value == 0 && p.cands.remove(v) && len(p.cands) == 0 {
			b.errors = append(b.errors, cellError(pi, v, nil, NoPossibleValuesCondition))
		}
	}
	return len(b.errors) == 0
}

// Fix fills the cell at row r, column c with value v.  Rows and
// columns are 0-based; values run from 1 through SideLength.
// Out-of-range arguments give an error and leave the board
// unchanged.  A fill that conflicts with other filled cells is
// not an error from Fix: it is recorded on the board, where
// IsContradictory will report it.
func (b *Board) Fix(r, c, v int) error {
	if r < 0 || r >= SideLength {
		return rangeError(RowAttribute, r, 0, SideLength-1)
	}
	if c < 0 || c >= SideLength {
		return rangeError(ColumnAttribute, c, 0, SideLength-1)
	}
	if v < 1 || v > SideLength {
		return rangeError(ValueAttribute, v, 1, SideLength)
	}
	b.fix(cellIndex(r, c), v)
	return nil
}

// IsComplete reports whether every cell is filled and no
// constraint has been violated.
func (b *Board) IsComplete() bool {
	return b.open == 0 && len(b.errors) == 0
}

// IsContradictory reports whether the board's cells can no
// longer be completed to a solution.
func (b *Board) IsContradictory() bool {
	return len(b.errors) > 0
}

// Errors returns the board's Errors, verbalized for clients.
// The returned slice doesn't share storage with the board.
func (b *Board) Errors() []Error {
	errs := append([]Error(nil), b.errors...)
	for i := range errs {
		errs[i].Message = errs[i].Error() // verbalize the error
	}
	return errs
}

// Clone returns a deep copy of the board (no shared structure).
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	c := &Board{
		open:   b.open,
		errors: append([]Error(nil), b.errors...),
	}
	for i := range b.cells {
		c.cells[i].value = b.cells[i].value
		c.cells[i].cands = newIntsetCopy(b.cells[i].cands)
	}
	return c
}

// Values returns the cell values in reading order.  The return
// value does not share storage with the board.
func (b *Board) Values() []int {
	vs := make([]int, CellCount)
	for i := range b.cells {
		vs[i] = b.cells[i].value
	}
	return vs
}

// Grid returns the cell values as a Grid.
func (b *Board) Grid() Grid {
	var g Grid
	for i := range b.cells {
		r, c := cellCoords(i)
		g[r][c] = b.cells[i].value
	}
	return g
}

// Value returns the value of the cell at row r, column c, or 0
// if the cell is open.
func (b *Board) Value(r, c int) int {
	return b.cells[cellIndex(r, c)].value
}

// Candidates returns the candidate values of the cell at row r,
// column c.  Filled cells have no candidates.  The return value
// does not share storage with the board.
func (b *Board) Candidates(r, c int) []int {
	return newIntsetCopy(b.cells[cellIndex(r, c)].cands)
}

/*

Integer sets

*/

// An intset is a set of integers, represented as a sorted slice.
// We use intsets to represent both sets of candidate values for
// cells and sets of indices.
type intset []int

// newIntsetRange: Make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: Make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	// see https://github.com/golang/go/wiki/SliceTricks
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
