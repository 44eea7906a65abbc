package puzzle

import (
	"reflect"
	"testing"
)

/*

Construction

*/

func TestNewBadArguments(t *testing.T) {
	badSizes := [][]int{
		nil,
		{},
		make([]int, CellCount-1),
		make([]int, CellCount+1),
	}
	for i, vs := range badSizes {
		if _, e := New(vs); e == nil {
			t.Errorf("TestNewBadArguments case %d: no error for %d values", i+1, len(vs))
		}
	}
	badValues := []int{-1, 10, 42}
	for i, v := range badValues {
		vs := make([]int, CellCount)
		vs[40] = v
		if _, e := New(vs); e == nil {
			t.Errorf("TestNewBadArguments value case %d: no error for value %d", i+1, v)
		}
	}
}

func TestNewRelaxation(t *testing.T) {
	vs := make([]int, CellCount)
	vs[0] = 5 // row 0, column 0
	b, e := New(vs)
	if e != nil {
		t.Fatalf("Failed to create board: %v", e)
	}
	if b.Value(0, 0) != 5 {
		t.Errorf("Cell (0,0) is %d, expected 5", b.Value(0, 0))
	}
	without5 := []int{1, 2, 3, 4, 6, 7, 8, 9}
	all9 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tcs := []struct {
		r, c  int
		cands []int
	}{
		{0, 8, without5}, // same row
		{8, 0, without5}, // same column
		{2, 2, without5}, // same tile
		{4, 4, all9},     // unrelated
	}
	for i, tc := range tcs {
		if cands := b.Candidates(tc.r, tc.c); !reflect.DeepEqual(cands, tc.cands) {
			t.Errorf("case %d: cell (%d,%d) candidates are %v (expected %v)",
				i+1, tc.r, tc.c, cands, tc.cands)
		}
	}
	if cands := b.Candidates(0, 0); cands != nil {
		t.Errorf("Filled cell has candidates %v", cands)
	}
}

func TestNewConflictingValues(t *testing.T) {
	tcs := []struct {
		name string
		fill func(vs []int)
	}{
		{"row", func(vs []int) { vs[0], vs[5] = 7, 7 }},
		{"column", func(vs []int) { vs[cellIndex(1, 3)], vs[cellIndex(7, 3)] = 4, 4 }},
		{"tile", func(vs []int) { vs[cellIndex(0, 0)], vs[cellIndex(1, 1)] = 2, 2 }},
	}
	for i, tc := range tcs {
		vs := make([]int, CellCount)
		tc.fill(vs)
		b, e := New(vs)
		if e == nil {
			t.Errorf("case %d (%s): creation succeeded with duplicate values", i+1, tc.name)
			continue
		}
		if b != nil {
			t.Errorf("case %d (%s): board returned alongside error", i+1, tc.name)
		}
		err, ok := e.(Error)
		if !ok || err.Condition != DuplicateGroupValuesCondition {
			t.Errorf("case %d (%s): unexpected error: %v", i+1, tc.name, e)
		}
		if ok && err.Message == "" {
			t.Errorf("case %d (%s): error not verbalized: %+v", i+1, tc.name, err)
		}
	}

	// pairwise-consistent values that strip every candidate from
	// the open cell at (0,0)
	g := Grid{
		{0, 1, 2, 3, 4, 0, 0, 0, 0},
		{5, 8, 9, 0, 0, 0, 0, 0, 0},
		{6, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	_, e := NewGrid(g)
	if e == nil {
		t.Fatalf("Creation succeeded with a candidate-free cell")
	}
	err, ok := e.(Error)
	if !ok || err.Condition != NoPossibleValuesCondition {
		t.Errorf("Unexpected error for candidate-free cell: %v", e)
	}
}

/*

Fixing cells

*/

func TestFixBadArguments(t *testing.T) {
	b, e := New(make([]int, CellCount))
	if e != nil {
		t.Fatalf("Failed to create board: %v", e)
	}
	tcs := []struct{ r, c, v int }{
		{-1, 0, 1},
		{SideLength, 0, 1},
		{0, -1, 1},
		{0, SideLength, 1},
		{0, 0, 0},
		{0, 0, SideLength + 1},
	}
	for i, tc := range tcs {
		if e := b.Fix(tc.r, tc.c, tc.v); e == nil {
			t.Errorf("TestFixBadArguments case %d: no error for (%d,%d,%d)",
				i+1, tc.r, tc.c, tc.v)
		}
	}
	if !reflect.DeepEqual(b.Values(), make([]int, CellCount)) {
		t.Errorf("Rejected fixes modified the board")
	}
}

func TestFixConflict(t *testing.T) {
	b, e := New(make([]int, CellCount))
	if e != nil {
		t.Fatalf("Failed to create board: %v", e)
	}
	if e := b.Fix(2, 2, 7); e != nil {
		t.Fatalf("First fix failed: %v", e)
	}
	if b.IsContradictory() {
		t.Fatalf("Board contradictory after one fix: %v", b.Errors())
	}
	// same value elsewhere in the same row: allowed by Fix,
	// reported by IsContradictory
	if e := b.Fix(2, 6, 7); e != nil {
		t.Fatalf("Second fix failed: %v", e)
	}
	if !b.IsContradictory() {
		t.Errorf("Row conflict not detected")
	}
	// refixing a filled cell with a different value
	b, _ = New(make([]int, CellCount))
	b.Fix(4, 4, 3)
	if e := b.Fix(4, 4, 8); e != nil {
		t.Fatalf("Refix returned an argument error: %v", e)
	}
	if !b.IsContradictory() {
		t.Errorf("Refilling a filled cell not detected")
	}
	if b.Value(4, 4) != 3 {
		t.Errorf("Refilling changed the cell to %d", b.Value(4, 4))
	}
}

func TestFixSolvesLastCell(t *testing.T) {
	vs := append([]int(nil), tileRotationCompleteValues...)
	vs[80] = 0
	b, e := New(vs)
	if e != nil {
		t.Fatalf("Failed to create board: %v", e)
	}
	if b.IsComplete() {
		t.Fatalf("Board with an open cell claims to be complete")
	}
	if cands := b.Candidates(8, 8); !reflect.DeepEqual(cands, []int{8}) {
		t.Fatalf("Last open cell has candidates %v (expected [8])", cands)
	}
	if e := b.Fix(8, 8, 8); e != nil {
		t.Fatalf("Fix failed: %v", e)
	}
	if !b.IsComplete() || b.IsContradictory() {
		t.Errorf("Completed board is complete=%v contradictory=%v",
			b.IsComplete(), b.IsContradictory())
	}
}

/*

Copies and value forms

*/

func TestClone(t *testing.T) {
	b, e := New(sixStarValues)
	if e != nil {
		t.Fatalf("Failed to create board: %v", e)
	}
	c := b.Clone()
	if !reflect.DeepEqual(b, c) {
		t.Fatalf("Clone differs from original")
	}
	if e := c.Fix(0, 1, 6); e != nil {
		t.Fatalf("Fix on clone failed: %v", e)
	}
	if b.Value(0, 1) != 0 {
		t.Errorf("Fix on clone modified the original's values")
	}
	if reflect.DeepEqual(b.Candidates(0, 2), c.Candidates(0, 2)) {
		t.Errorf("Fix on clone didn't prune the clone's candidates")
	}
	if (*Board)(nil).Clone() != nil {
		t.Errorf("Clone of nil board is not nil")
	}
}

func TestValuesGrid(t *testing.T) {
	b, e := New(oneStarValues)
	if e != nil {
		t.Fatalf("Failed to create board: %v", e)
	}
	if !reflect.DeepEqual(b.Values(), oneStarValues) {
		t.Errorf("Values are %v (expected %v)", b.Values(), oneStarValues)
	}
	g := b.Grid()
	if !reflect.DeepEqual(g.Values(), oneStarValues) {
		t.Errorf("Grid values are %v (expected %v)", g.Values(), oneStarValues)
	}
	b2, e := NewGrid(g)
	if e != nil {
		t.Fatalf("Failed to create board from grid: %v", e)
	}
	if !reflect.DeepEqual(b, b2) {
		t.Errorf("Grid round trip changed the board")
	}
	vs := b.Values()
	vs[0] = 9
	if b.Value(0, 0) == 9 {
		t.Errorf("Values shares storage with the board")
	}
}

/*

Integer sets

*/

func TestIntset(t *testing.T) {
	ps := newIntsetRange(4)
	if !reflect.DeepEqual(ps, intset{1, 2, 3, 4}) {
		t.Fatalf("Range intset is %v", ps)
	}
	if where, found := ps.find(3); !found || where != 2 {
		t.Errorf("find(3) gave %d, %v", where, found)
	}
	if _, found := ps.find(5); found {
		t.Errorf("find(5) found a missing value")
	}
	if !ps.remove(2) || ps.remove(2) {
		t.Errorf("remove(2) misbehaved: %v", ps)
	}
	if ps.insert(7) || !ps.insert(7) {
		t.Errorf("insert(7) misbehaved: %v", ps)
	}
	if ps.insert(2) {
		t.Errorf("insert(2) claimed 2 was present: %v", ps)
	}
	if !reflect.DeepEqual(ps, intset{1, 2, 3, 4, 7}) {
		t.Errorf("Final intset is %v", ps)
	}
	cp := newIntsetCopy(ps)
	cp.remove(1)
	if reflect.DeepEqual(ps, cp) {
		t.Errorf("Copy shares storage with original")
	}
	if newIntsetCopy(nil) != nil {
		t.Errorf("Copy of nil intset is not nil")
	}
}
