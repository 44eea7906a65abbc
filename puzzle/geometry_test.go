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

package puzzle

import (
	"testing"
)

func TestStandardMapping(t *testing.T) {
	// every group holds SideLength distinct in-range cells
	counts := make([]int, CellCount)
	for gi := range gdescs {
		g := &gdescs[gi]
		if g.index != gi {
			t.Errorf("group %d records index %d", gi, g.index)
		}
		if len(g.indices) != SideLength {
			t.Errorf("group %v has %d cells", g.id, len(g.indices))
		}
		seen := make(map[int]bool, SideLength)
		for _, ci := range g.indices {
			if ci < 0 || ci >= CellCount {
				t.Fatalf("group %v contains cell %d", g.id, ci)
			}
			if seen[ci] {
				t.Errorf("group %v repeats cell %d", g.id, ci)
			}
			seen[ci] = true
			counts[ci]++
		}
	}
	// every cell is in exactly 3 groups, and ixmap agrees
	for ci := 0; ci < CellCount; ci++ {
		if counts[ci] != 3 {
			t.Errorf("cell %d is in %d groups", ci, counts[ci])
		}
		for _, gi := range ixmap[ci] {
			if _, found := gdescs[gi].indices.find(ci); !found {
				t.Errorf("cell %d maps to group %v, which doesn't contain it",
					ci, gdescs[gi].id)
			}
		}
	}
}

func TestPeers(t *testing.T) {
	for ci := 0; ci < CellCount; ci++ {
		if len(peers[ci]) != 20 {
			t.Errorf("cell %d has %d peers", ci, len(peers[ci]))
		}
		if _, found := peers[ci].find(ci); found {
			t.Errorf("cell %d is its own peer", ci)
		}
		for _, pi := range peers[ci] {
			if _, found := peers[pi].find(ci); !found {
				t.Errorf("peer relation between %d and %d isn't symmetric", ci, pi)
			}
		}
	}
	// spot-check one cell: (4,4) is in row 4, column 4, and the
	// center tile
	expected := intset{4, 13, 22, 30, 31, 32, 36, 37, 38, 39, 41, 42, 43, 44, 48, 49, 50, 58, 67, 76}
	cands := peers[cellIndex(4, 4)]
	if len(cands) != len(expected) {
		t.Fatalf("peers of (4,4) are %v (expected %v)", cands, expected)
	}
	for i := range expected {
		if cands[i] != expected[i] {
			t.Fatalf("peers of (4,4) are %v (expected %v)", cands, expected)
		}
	}
}

func TestCellCoords(t *testing.T) {
	for i := 0; i < CellCount; i++ {
		r, c := cellCoords(i)
		if r < 0 || r >= SideLength || c < 0 || c >= SideLength {
			t.Errorf("cell %d has coordinates (%d,%d)", i, r, c)
		}
		if cellIndex(r, c) != i {
			t.Errorf("cell %d round trips to %d", i, cellIndex(r, c))
		}
	}
}

func TestSharedGroup(t *testing.T) {
	tcs := []struct {
		i, j int
		id   GroupID
	}{
		{cellIndex(0, 0), cellIndex(0, 8), GroupID{GtypeRow, 0}},
		{cellIndex(0, 0), cellIndex(8, 0), GroupID{GtypeCol, 0}},
		{cellIndex(0, 0), cellIndex(2, 2), GroupID{GtypeTile, 0}},
		{cellIndex(4, 3), cellIndex(4, 5), GroupID{GtypeRow, 4}},
		{cellIndex(0, 0), cellIndex(8, 8), GroupID{}},
	}
	for i, tc := range tcs {
		if id := sharedGroup(tc.i, tc.j); id != tc.id {
			t.Errorf("case %d: shared group of %d and %d is %v (expected %v)",
				i+1, tc.i, tc.j, id, tc.id)
		}
	}
}

func TestGroupIDString(t *testing.T) {
	tcs := map[GroupID]string{
		{GtypeRow, 0}:  "row 0",
		{GtypeCol, 3}:  "column 3",
		{GtypeTile, 8}: "tile 8",
		{}:             "<group> 0",
	}
	for gid, expected := range tcs {
		if gid.String() != expected {
			t.Errorf("String form of %+v is %q, expected %q", gid, gid.String(), expected)
		}
	}
}
