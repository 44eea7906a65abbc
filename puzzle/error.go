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
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a board or a requested
// operation.  It can produce an error message in English, but
// its main function is to support localized error messaging by
// clients.  It tells the client "this thing failed to meet this
// condition", and provides supplemental details about the thing
// and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.  In the case of client errors, this is either a
// client-supplied argument or some aspect of the resulting
// board.  In the case of internal logic errors, this is where
// in the code the failure occurred.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	GridScope
	GroupScope
	CellScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.  There are a bunch of
// known, named predicates and then a "general" (arbitrary
// English string) predicate for runtime errors.
type ErrorCondition int

// Constants for the various error conditions
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	DuplicateAssignmentCondition
	NotInSetCondition
	NoPossibleValuesCondition
	NoGroupValueCondition
	DuplicateGroupValuesCondition
	WrongGridSizeCondition
	UnknownMarkCondition
	UnsolvableCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	URLAttribute
	LocationAttribute
	RowAttribute
	ColumnAttribute
	ValueAttribute
	LineAttribute
	MarkAttribute
	GridSizeAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as minimum required values).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.
// Sadly, there is no good way to express this condition in a way
// the compiler can check it, so we just have to rely on
// implementors to "do the right thing" and check the condition
// at runtime.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case GridScope:
		es = "Invalid grid: "
	case GroupScope:
		es = fmt.Sprintf("Problem in %v: ", nextVal())
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case URLAttribute:
			es += "Resource path"
		case LocationAttribute:
			es += fmt.Sprintf("In puzzle.%v", nextVal())
		case RowAttribute:
			es += "Row"
		case ColumnAttribute:
			es += "Column"
		case ValueAttribute:
			es += "Value"
		case LineAttribute:
			es += "Line"
		case MarkAttribute:
			es += "Mark"
		case GridSizeAttribute:
			es += "Grid size"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case DuplicateAssignmentCondition:
		es += fmt.Sprintf("Already filled with value %v", nextVal())
	case NotInSetCondition:
		es += fmt.Sprintf("Must be in candidate values %v", nextVal())
	case NoPossibleValuesCondition:
		es += "No remaining candidate values"
	case NoGroupValueCondition:
		es += fmt.Sprintf("No cell can contain %v", nextVal())
	case DuplicateGroupValuesCondition:
		es += fmt.Sprintf("Multiple cells have value %v", nextVal())
	case WrongGridSizeCondition:
		es += fmt.Sprintf("Must have exactly %v cells", nextVal())
	case UnknownMarkCondition:
		es += "Not a digit or an open-cell mark"
	case UnsolvableCondition:
		es += "No solution exists"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// cellError returns an Error from an attempted operation on a
// cell that would violate a constraint on the cell.
func cellError(i, v int, cands intset, cond ErrorCondition) Error {
	err := Error{
		Scope:     CellScope,
		Structure: AttributeValueStructure,
		Attribute: ValueAttribute,
		Condition: cond,
		Values:    ErrorData{i, v},
	}
	switch cond {
	case NotInSetCondition:
		err.Values = append(err.Values, newIntsetCopy(cands))
	case NoPossibleValuesCondition:
	case DuplicateAssignmentCondition:
		// caller appends the value already in the cell
	default:
		panic(fmt.Errorf("Unexpected cell error condition (%v) in cell %d", cond, i))
	}
	return err
}

// groupError returns an Error from a group whose cells can no
// longer hold one of each value.
func groupError(gid GroupID, v int, cond ErrorCondition) Error {
	err := Error{
		Scope:     GroupScope,
		Structure: ScopeStructure,
		Condition: cond,
		Values:    ErrorData{gid, v},
	}
	switch cond {
	case NoGroupValueCondition:
	case DuplicateGroupValuesCondition:
	default:
		panic(fmt.Errorf("Unexpected group error condition (%v) in group %v", cond, gid))
	}
	return err
}
