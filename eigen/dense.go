// SPDX-License-Identifier: MIT

package eigen

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/topeigen/sparse"
)

// DenseEigen computes every eigenpair of the dense symmetric matrix a with
// the classical Jacobi method (largest off-diagonal pivot).
// It returns the eigenvalues and the eigenvectors as rows: vecs[i] belongs
// to vals[i]. Order is whatever the rotations leave on the diagonal.
//
// tol is relative: iteration stops once every |a[p][q]| (p≠q) is at most
// tol·max|a[i][j]| of the input. maxRotations caps the number of rotations.
//
// Errors: ErrNotSquare, ErrNotSymmetric, ErrNotConverged.
//
// Complexity: O(n²) per rotation (pivot search) plus O(n) per update;
// memory O(n²). Meant for verification on small matrices.
func DenseEigen(a [][]float64, tol float64, maxRotations int) ([]float64, [][]float64, error) {
	// Stage 1: validate shape, symmetry and scale.
	var (
		n     = len(a)
		scale float64
		i, j  int
	)
	for i = 0; i < n; i++ {
		if len(a[i]) != n {
			return nil, nil, fmt.Errorf("DenseEigen: row %d has %d columns, want %d: %w", i, len(a[i]), n, ErrNotSquare)
		}
		for j = 0; j < n; j++ {
			scale = math.Max(scale, math.Abs(a[i][j]))
		}
	}
	if scale == 0 {
		scale = 1
	}
	threshold := tol * scale
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i][j]-a[j][i]) > threshold {
				return nil, nil, fmt.Errorf("DenseEigen: a[%d][%d]≠a[%d][%d]: %w", i, j, j, i, ErrNotSymmetric)
			}
		}
	}

	// Stage 2: working copy A and accumulated rotations V (columns are vectors).
	A := make([][]float64, n)
	V := make([][]float64, n)
	for i = 0; i < n; i++ {
		A[i] = slices.Clone(a[i])
		V[i] = make([]float64, n)
		V[i][i] = 1
	}

	// Stage 3: rotate away the largest off-diagonal entry until small enough.
	var (
		rot                int
		p, q               int
		maxOff, off        float64
		theta, t, c, s     float64
		app, aqq, apq      float64
		arp, arq, vrp, vrq float64
		r                  int
		converged          bool
	)
	for rot = 0; rot <= maxRotations; rot++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A[i][j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff <= threshold {
			converged = true

			break
		}
		if rot == maxRotations {
			break
		}

		app, aqq, apq = A[p][p], A[q][q], A[p][q]
		theta = (aqq - app) / (2 * apq)
		t = 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta < 0 {
			t = -t
		}
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for r = 0; r < n; r++ {
			if r != p && r != q {
				arp, arq = A[r][p], A[r][q]
				A[r][p] = c*arp - s*arq
				A[p][r] = A[r][p]
				A[r][q] = s*arp + c*arq
				A[q][r] = A[r][q]
			}
			vrp, vrq = V[r][p], V[r][q]
			V[r][p] = c*vrp - s*vrq
			V[r][q] = s*vrp + c*vrq
		}
		A[p][p] = app - t*apq
		A[q][q] = aqq + t*apq
		A[p][q], A[q][p] = 0, 0
	}
	if !converged {
		return nil, nil, fmt.Errorf("DenseEigen: %d rotations: %w", maxRotations, ErrNotConverged)
	}

	// Stage 4: diagonal holds eigenvalues, columns of V hold eigenvectors.
	vals := make([]float64, n)
	vecs := make([][]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = A[i][i]
		vecs[i] = make([]float64, n)
		for r = 0; r < n; r++ {
			vecs[i][r] = V[r][i]
		}
	}

	return vals, vecs, nil
}

// referenceTol is the relative off-diagonal threshold used by Reference.
const referenceTol = 1e-13

// Reference computes the k largest-magnitude eigenpairs of m exactly (up to
// rounding) by expanding it densely and running DenseEigen. Ties in |λ| keep
// diagonal order. k is clamped to n. Intended for verification only.
//
// Errors: sparse.ErrNilMatrix, ErrEmptyMatrix, ErrBadK, ErrNotConverged.
//
// Complexity: O(n²) memory, roughly O(n⁴) time in the worst case.
func Reference(m *sparse.Matrix, k int) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("Reference: %w", sparse.ErrNilMatrix)
	}
	n := m.Dim()
	if n == 0 {
		return nil, fmt.Errorf("Reference: %w", ErrEmptyMatrix)
	}
	if k < 1 {
		return nil, fmt.Errorf("Reference: k=%d: %w", k, ErrBadK)
	}
	k = min(k, n)

	vals, vecs, err := DenseEigen(m.Dense(), referenceTol, 50*n*n+100)
	if err != nil {
		return nil, fmt.Errorf("Reference: %w", err)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return cmp.Compare(math.Abs(vals[y]), math.Abs(vals[x]))
	})

	res := &Result{Values: make([]float64, k), Vectors: make([][]float64, k)}
	for i := 0; i < k; i++ {
		res.Values[i] = vals[order[i]]
		res.Vectors[i] = vecs[order[i]]
	}

	return res, nil
}
