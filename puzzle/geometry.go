package puzzle

/*

Grid geometry

There is only one geometry in this package: the standard Sudoku
grid of nine rows, nine columns, and nine non-overlapping 3x3
tiles, for 27 groups in all.  The geometry never varies, so the
group descriptors and index maps are computed once at startup
and shared by every board.

*/

import (
	"fmt"
)

// Geometry parameters of the standard grid.
const (
	SideLength = 9
	TileLength = 3
	CellCount  = SideLength * SideLength
	GroupCount = 3 * SideLength
)

// A GroupID names a row, column, or tile.  The index for each
// type of group is 0-based, matching cell coordinates.
type GroupID struct {
	Gtype string `json:"gtype"`
	Index int    `json:"index"`
}

// Gtype (group type) constants.  These are human-readable but
// not localized.
const (
	GtypeRow  = "row"
	GtypeCol  = "column"
	GtypeTile = "tile"
)

// Group IDs implement Stringer
func (gid GroupID) String() string {
	if gid.Gtype == "" {
		return fmt.Sprintf("<group> %d", gid.Index)
	}
	return fmt.Sprintf("%s %d", gid.Gtype, gid.Index)
}

// A group descriptor identifies a group and enumerates the
// indices of its cells.
type groupDescriptor struct {
	index   int
	id      GroupID
	indices intset
}

// The standard mapping: descriptors for the 27 groups, a map
// from each cell to the three groups that contain it, and the
// set of each cell's peers (the 20 other cells that share a
// group with it).
var (
	gdescs [GroupCount]groupDescriptor
	ixmap  [CellCount][3]int
	peers  [CellCount]intset
)

func init() {
	computeStandardMapping()
}

func computeStandardMapping() {
	for i := 0; i < SideLength; i++ {
		// row i
		row := make(intset, SideLength)
		for ri := 0; ri < SideLength; ri++ {
			ci := SideLength*i + ri
			row[ri] = ci
			ixmap[ci][0] = i
		}
		gdescs[i] = groupDescriptor{i, GroupID{GtypeRow, i}, row}
		// column i
		cgi := i + SideLength
		col := make(intset, SideLength)
		for ci := 0; ci < SideLength; ci++ {
			si := SideLength*ci + i
			col[ci] = si
			ixmap[si][1] = cgi
		}
		gdescs[cgi] = groupDescriptor{cgi, GroupID{GtypeCol, i}, col}
		// tile i
		tgi := i + 2*SideLength
		tile := make(intset, SideLength)
		baserow, basecol := TileLength*(i/TileLength), TileLength*(i%TileLength)
		for tri := 0; tri < TileLength; tri++ {
			for tci := 0; tci < TileLength; tci++ {
				si := SideLength*(baserow+tri) + (basecol + tci)
				tile[tri*TileLength+tci] = si
				ixmap[si][2] = tgi
			}
		}
		gdescs[tgi] = groupDescriptor{tgi, GroupID{GtypeTile, i}, tile}
	}
	// peers of a cell: the union of its three groups, minus the
	// cell itself.
	for ci := 0; ci < CellCount; ci++ {
		ps := make(intset, 0, 20)
		for _, gi := range ixmap[ci] {
			for _, ei := range gdescs[gi].indices {
				if ei != ci {
					ps.insert(ei)
				}
			}
		}
		peers[ci] = ps
	}
}

// cellIndex maps row and column coordinates to a cell index.
func cellIndex(r, c int) int {
	return r*SideLength + c
}

// cellCoords maps a cell index back to row and column coordinates.
func cellCoords(i int) (int, int) {
	return i / SideLength, i % SideLength
}

// sharedGroup returns the ID of a group containing both cells.
// When the cells share more than one group (same row and tile,
// say), the row or column is preferred over the tile.
func sharedGroup(i, j int) GroupID {
	for _, gi := range ixmap[i] {
		for _, gj := range ixmap[j] {
			if gi == gj {
				return gdescs[gi].id
			}
		}
	}
	return GroupID{}
}
