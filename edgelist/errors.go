// SPDX-License-Identifier: MIT

package edgelist

import "errors"

var (
	// ErrMalformed is returned for a line that is not "<uint> <uint> <real>".
	ErrMalformed = errors.New("edgelist: malformed line")

	// ErrEmptyInput is returned when the input holds no edges.
	ErrEmptyInput = errors.New("edgelist: no edges in input")

	// ErrEmptyResult is returned when writing a result with no eigenpairs.
	ErrEmptyResult = errors.New("edgelist: result has no eigenpairs")

	// ErrRaggedResult is returned when result vectors differ in length or
	// do not match the number of values.
	ErrRaggedResult = errors.New("edgelist: inconsistent result shape")
)
