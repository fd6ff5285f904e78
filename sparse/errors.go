// SPDX-License-Identifier: MIT

package sparse

import "errors"

// Sentinel errors. Every message is prefixed with "sparse:"; callers match
// with errors.Is, wrapped context is added via fmt.Errorf("...: %w", ErrX).
var (
	// ErrBadIndex is returned when an edge endpoint is negative or does not
	// fit an unsigned 32-bit index.
	ErrBadIndex = errors.New("sparse: index out of range")

	// ErrInvalidWeight is returned when a weight is NaN or ±Inf and weight
	// validation is enabled (the default).
	ErrInvalidWeight = errors.New("sparse: invalid edge weight")

	// ErrDimensionMismatch is returned when a vector length differs from Dim().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix is returned when a nil *Matrix is used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadDimension is returned by generators asked for fewer than one row.
	ErrBadDimension = errors.New("sparse: dimension must be >= 1")

	// ErrBadProbability is returned by RandomSymmetric when p is outside [0,1].
	ErrBadProbability = errors.New("sparse: probability must lie in [0,1]")

	// ErrNeedRandSource is returned by RandomSymmetric when sampling needs a
	// random source and none was given.
	ErrNeedRandSource = errors.New("sparse: random source required")
)
