// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topeigen/sparse"
	"github.com/katalvlaran/topeigen/vector"
)

// Result holds k eigenpairs in extraction order: Values[i] belongs to
// Vectors[i], and every vector has length n.
type Result struct {
	Values  []float64
	Vectors [][]float64
}

// K returns the number of eigenpairs.
func (r *Result) K() int { return len(r.Values) }

// N returns the vector length (0 for an empty result).
func (r *Result) N() int {
	if len(r.Vectors) == 0 {
		return 0
	}
	return len(r.Vectors[0])
}

// Pair returns the i-th eigenvalue and eigenvector.
func (r *Result) Pair(i int) (float64, []float64) {
	return r.Values[i], r.Vectors[i]
}

// Residual returns ‖A·vᵢ − λᵢ·vᵢ‖₂, zero for an exact eigenpair.
//
// Errors: sparse.ErrNilMatrix, sparse.ErrDimensionMismatch.
//
// Complexity: O(n + e).
func (r *Result) Residual(m *sparse.Matrix, i int) (float64, error) {
	lambda, v := r.Pair(i)
	av := make([]float64, len(v))
	if err := m.MulVec(av, v); err != nil {
		return 0, fmt.Errorf("Residual(%d): %w", i, err)
	}
	vector.AddScaled(av, -lambda, v)

	return vector.Norm(av), nil
}

// MaxOverlap returns max |⟨vᵢ,vⱼ⟩| over i<j: 0 for a perfectly orthogonal set.
//
// Complexity: O(k²·n).
func (r *Result) MaxOverlap() float64 {
	var worst float64
	for i := range r.Vectors {
		for j := i + 1; j < len(r.Vectors); j++ {
			worst = math.Max(worst, math.Abs(vector.Dot(r.Vectors[i], r.Vectors[j])))
		}
	}

	return worst
}
