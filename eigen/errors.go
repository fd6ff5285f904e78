// SPDX-License-Identifier: MIT

package eigen

import "errors"

// Sentinel errors; match with errors.Is.
var (
	// ErrBadK is returned when fewer than one eigenpair is requested.
	ErrBadK = errors.New("eigen: k must be >= 1")

	// ErrEmptyMatrix is returned for a 0×0 matrix.
	ErrEmptyMatrix = errors.New("eigen: matrix has no rows")

	// ErrTooLarge is returned when k·n working memory cannot be addressed.
	ErrTooLarge = errors.New("eigen: k·n working set too large")

	// ErrDegenerate is returned under strict numerics when an iterate has a
	// zero or non-finite norm. A non-finite eigenvalue estimate alone is not
	// degenerate; see SlotStats.ValueUndefined.
	ErrDegenerate = errors.New("eigen: degenerate iterate (zero or non-finite norm)")

	// ErrNotSquare is returned by DenseEigen for ragged or non-square input.
	ErrNotSquare = errors.New("eigen: matrix is not square")

	// ErrNotSymmetric is returned by DenseEigen when a[i][j] ≠ a[j][i] beyond tolerance.
	ErrNotSymmetric = errors.New("eigen: matrix is not symmetric")

	// ErrNotConverged is returned by DenseEigen when the rotation budget runs out.
	ErrNotConverged = errors.New("eigen: jacobi rotations did not converge")

	// ErrUnknownEstimator is returned by ParseEstimator.
	ErrUnknownEstimator = errors.New("eigen: unknown estimator")
)
