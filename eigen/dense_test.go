package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topeigen/eigen"
)

// TestDenseEigen_TwoByTwo checks the ±1 spectrum of [[0,1],[1,0]].
func TestDenseEigen_TwoByTwo(t *testing.T) {
	vals, vecs, err := eigen.DenseEigen([][]float64{{0, 1}, {1, 0}}, 1e-14, 10)
	require.NoError(t, err)
	require.Len(t, vals, 2)

	for i, lambda := range vals {
		require.InDelta(t, 1.0, math.Abs(lambda), 1e-14)
		v := vecs[i]
		// A·v = λ·v with A swapping components.
		require.InDelta(t, lambda*v[0], v[1], 1e-14)
		require.InDelta(t, 1.0, math.Hypot(v[0], v[1]), 1e-14)
	}
	assert.InDelta(t, 0.0, vals[0]+vals[1], 1e-14, "trace is zero")
}

// TestDenseEigen_DiagonalNeedsNoRotation: a diagonal matrix converges at once.
func TestDenseEigen_DiagonalNeedsNoRotation(t *testing.T) {
	vals, _, err := eigen.DenseEigen([][]float64{{3, 0}, {0, -7}}, 1e-12, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -7}, vals)
}

// TestDenseEigen_Errors covers shape, symmetry and budget failures.
func TestDenseEigen_Errors(t *testing.T) {
	_, _, err := eigen.DenseEigen([][]float64{{1, 2}, {3}}, 1e-12, 10)
	assert.ErrorIs(t, err, eigen.ErrNotSquare)

	_, _, err = eigen.DenseEigen([][]float64{{1, 2}, {3, 4}}, 1e-12, 10)
	assert.ErrorIs(t, err, eigen.ErrNotSymmetric)

	_, _, err = eigen.DenseEigen([][]float64{{1, 2}, {2, 4}}, 1e-12, 0)
	assert.ErrorIs(t, err, eigen.ErrNotConverged)
}

// TestReference_ClampsK: asking for more pairs than rows returns n pairs.
func TestReference_ClampsK(t *testing.T) {
	ref, err := eigen.Reference(gapMatrix(t), 10)
	require.NoError(t, err)
	require.Equal(t, 2, ref.K())
	assert.InDelta(t, 1.5, ref.Values[0], 1e-12)
	assert.InDelta(t, -0.5, ref.Values[1], 1e-12)
	assert.Less(t, ref.MaxOverlap(), 1e-12)
}
