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
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Request and response bodies

*/

// A GridRequest is the JSON body accepted by the solver
// handlers: the cell values of a grid in reading order.
type GridRequest struct {
	Values []int `json:"values"`
}

// A PropagateResponse reports what propagation did to a posted
// grid: the outcome, the cell values afterward, and any errors
// if the outcome was a contradiction.
type PropagateResponse struct {
	Result string  `json:"result"`
	Values []int   `json:"values"`
	Errors []Error `json:"errors,omitempty"`
}

/*

Solver handlers

*/

// SolveHandler is a POST handler that reads a JSON-encoded
// GridRequest from the request body and responds with the first
// Solution of the posted grid.  The Solution is sent as a 200
// response; a grid with no solution gets the unsolvable Error as
// a 400 response, which is also returned to the golang caller.
//
// If we can't decode the posted grid, we send a 400 response and
// return the error to the caller.
func SolveHandler(w http.ResponseWriter, r *http.Request) error {
	b, e := decodeGrid(w, r)
	if e != nil {
		return e
	}
	s, e := b.FirstSolution()
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			return writeError(errorFormatError, ErrorData{"SolveHandler", e.Error()}, w, r)
		}
		return writeJSON(err, http.StatusBadRequest, w, r)
	}
	return writeJSON(s, http.StatusOK, w, r)
}

// SolutionsHandler is a POST handler that reads a JSON-encoded
// GridRequest from the request body and responds with all the
// Solutions of the posted grid, in search order.  A grid with no
// solutions gets an empty list, not an error.
func SolutionsHandler(w http.ResponseWriter, r *http.Request) error {
	b, e := decodeGrid(w, r)
	if e != nil {
		return e
	}
	solutions := b.Solutions()
	if solutions == nil {
		solutions = []Solution{}
	}
	return writeJSON(solutions, http.StatusOK, w, r)
}

// PropagateHandler is a POST handler that reads a JSON-encoded
// GridRequest from the request body, propagates the posted grid
// without guessing, and responds with a PropagateResponse.
func PropagateHandler(w http.ResponseWriter, r *http.Request) error {
	b, e := decodeGrid(w, r)
	if e != nil {
		return e
	}
	result := b.Propagate()
	resp := PropagateResponse{
		Result: result.String(),
		Values: b.Values(),
	}
	if result == Contradiction {
		resp.Errors = b.Errors()
	}
	return writeJSON(resp, http.StatusOK, w, r)
}

// decodeGrid reads the posted GridRequest and creates a Board
// from it.  Decode and validation failures are sent to the
// client as a 400 response and returned to the golang caller.
func decodeGrid(w http.ResponseWriter, r *http.Request) (*Board, error) {
	dec := json.NewDecoder(r.Body)
	var req GridRequest
	e := dec.Decode(&req)
	if e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	b, e := New(req.Values)
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"decodeGrid", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return b, nil
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create an Error object describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an Encoding error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
