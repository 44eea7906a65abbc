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
	"bufio"
	"fmt"
	"io"
	"strings"
)

/*

Reading grids from text

A grid is nine lines of nine marks each: the digits 1 through 9
for filled cells, and '0', '-', or ' ' for open cells.  Blank
lines are skipped, trailing carriage returns are tolerated, and
anything but blank lines after the ninth grid line is an error.

*/

// Read parses a grid from the reader and creates a Board from
// it.  Malformed text (wrong line lengths, unrecognized marks, a
// line count other than nine) gives an error, as does a grid
// whose values conflict with each other.
func Read(r io.Reader) (*Board, error) {
	values := make([]int, 0, CellCount)
	rows := 0
	scanner := bufio.NewScanner(r)
	for rows < SideLength && scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		marks := []rune(line)
		if len(marks) != SideLength {
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: LineAttribute,
				Condition: WrongGridSizeCondition,
				Values:    ErrorData{rows, SideLength},
			}
		}
		for _, m := range marks {
			switch {
			case m >= '1' && m <= '9':
				values = append(values, int(m-'0'))
			case m == '0' || m == '-' || m == ' ':
				values = append(values, 0)
			default:
				return nil, Error{
					Scope:     ArgumentScope,
					Structure: AttributeValueStructure,
					Attribute: MarkAttribute,
					Condition: UnknownMarkCondition,
					Values:    ErrorData{string(m), rows},
				}
			}
		}
		rows++
	}
	// more grid content after the ninth line is a size problem,
	// not something to ignore
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: LineAttribute,
			Condition: WrongGridSizeCondition,
			Values:    ErrorData{rows + 1, SideLength},
		}
	}
	if e := scanner.Err(); e != nil {
		return nil, Error{
			Scope:     RequestScope,
			Structure: ScopeStructure,
			Condition: GeneralCondition,
			Values:    ErrorData{e.Error()},
		}
	}
	if rows < SideLength {
		return nil, rangeError(LineAttribute, rows, SideLength, SideLength)
	}
	return New(values)
}

// ReadString is Read on a string.
func ReadString(s string) (*Board, error) {
	return Read(strings.NewReader(s))
}

/*

Plain print form of grids

*/

// String renders the grid as nine lines of nine marks, open
// cells as spaces, with no trailing newline.  The result reads
// back with Read.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < SideLength; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < SideLength; c++ {
			if v := g[r][c]; v == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('0' + byte(v))
			}
		}
	}
	return sb.String()
}

/*

Pretty-printed boards in strings, for debugging.

*/

// String gives a pretty-printed view of a board.
func (b *Board) String() string {
	return b.CandidatesString() + b.ErrorsString()
}

// CandidatesString: return a pretty-printed grid of the cells.
// Filled cells show their value; open cells with one or two
// candidates show them, and other open cells show a blank.
func (b *Board) CandidatesString() (result string) {
	if b == nil {
		return
	}
	// first put out the header
	result += " "
	for i := 0; i < SideLength; i++ {
		if i%TileLength != 0 {
			result += " "
		} else {
			result += "|"
		}
		result += fmt.Sprintf("%2d ", i)
	}
	result += "\n"
	// next are the rows, including the separator at the top
	for r, rowhdr := 0, 'a'; r < SideLength; r, rowhdr = r+1, rowhdr+1 {
		if r%TileLength == 0 {
			result += " "
			for i := 0; i < SideLength; i++ {
				result += "+---"
			}
			result += "\n"
		}
		result += string(rowhdr)
		for c := 0; c < SideLength; c++ {
			cl := &b.cells[cellIndex(r, c)]
			if c%TileLength != 0 {
				result += " "
			} else {
				result += "|"
			}
			switch {
			case cl.value != 0:
				result += fmt.Sprintf(" %d ", cl.value)
			case len(cl.cands) == 1:
				result += fmt.Sprintf("=%d ", cl.cands[0])
			case len(cl.cands) == 2:
				result += fmt.Sprintf("%d,%d", cl.cands[0], cl.cands[1])
			default:
				result += " _ "
			}
		}
		result += "\n"
	}
	return
}

func (b *Board) ErrorsString() (result string) {
	if b != nil {
		if elen := len(b.errors); elen > 0 {
			if elen > 1 {
				result += fmt.Sprintf("Errors (%d):\n", elen)
				for i, err := range b.errors {
					result += fmt.Sprintf("  #%d: %v\n", i+1, err)
				}
			} else {
				result += fmt.Sprintf("Error: %v\n", b.errors[0])
			}
		}
	}
	return
}
