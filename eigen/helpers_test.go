package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/topeigen/sparse"
)

const invSqrt2 = 1 / math.Sqrt2

// tieMatrix is the 2×2 [[0,1],[1,0]] with eigenvalues ±1 of equal magnitude.
func tieMatrix(t *testing.T) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New([]sparse.Edge{{S: 0, T: 1, W: 1}})
	require.NoError(t, err)

	return m
}

// gapMatrix is [[0.5,1],[1,0.5]]: eigenvalues 1.5 on (1,1)/√2 and −0.5 on
// (1,−1)/√2. The self-loops of weight 0.25 land twice on the diagonal.
func gapMatrix(t *testing.T) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New([]sparse.Edge{
		{S: 0, T: 1, W: 1},
		{S: 0, T: 0, W: 0.25},
		{S: 1, T: 1, W: 0.25},
	})
	require.NoError(t, err)

	return m
}

// ladderMatrix is a 5×5 diagonally dominant matrix with well separated
// eigenvalue magnitudes near 8, −4, 2, 1, 0.5.
func ladderMatrix(t *testing.T) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New([]sparse.Edge{
		{S: 0, T: 0, W: 4},
		{S: 1, T: 1, W: -2},
		{S: 2, T: 2, W: 1},
		{S: 3, T: 3, W: 0.5},
		{S: 4, T: 4, W: 0.25},
		{S: 0, T: 1, W: 0.3},
		{S: 1, T: 2, W: 0.2},
		{S: 2, T: 3, W: 0.1},
		{S: 3, T: 4, W: 0.1},
		{S: 0, T: 4, W: 0.05},
	})
	require.NoError(t, err)

	return m
}

// oracle returns every eigenpair of m from gonum's LAPACK-backed EigenSym,
// sorted by decreasing |λ|.
func oracle(t *testing.T, m *sparse.Matrix) ([]float64, [][]float64) {
	t.Helper()
	n := m.Dim()
	a := m.Dense()
	flat := make([]float64, 0, n*n)
	for i := range a {
		flat = append(flat, a[i]...)
	}

	var es mat.EigenSym
	require.True(t, es.Factorize(mat.NewSymDense(n, flat), true), "gonum factorization failed")
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// insertion sort by |λ| desc; n is tiny
	for i := 1; i < n; i++ {
		for j := i; j > 0 && math.Abs(vals[order[j]]) > math.Abs(vals[order[j-1]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	outVals := make([]float64, n)
	outVecs := make([][]float64, n)
	for i, idx := range order {
		outVals[i] = vals[idx]
		outVecs[i] = mat.Col(nil, idx, &ev)
	}

	return outVals, outVecs
}

// requireSameDirection asserts |⟨a,b⟩| ≈ 1 for unit vectors a and b.
func requireSameDirection(t *testing.T, a, b []float64, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	require.InDelta(t, 1.0, math.Abs(dot), tol, msgAndArgs...)
}
