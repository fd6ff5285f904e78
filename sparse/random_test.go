package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topeigen/sparse"
)

// TestRandomSymmetric_Contract checks the parameter domain.
func TestRandomSymmetric_Contract(t *testing.T) {
	_, err := sparse.RandomSymmetric(0, 0.5, rand.New(rand.NewSource(1)), nil)
	assert.ErrorIs(t, err, sparse.ErrBadDimension)

	_, err = sparse.RandomSymmetric(4, 1.5, rand.New(rand.NewSource(1)), nil)
	assert.ErrorIs(t, err, sparse.ErrBadProbability)

	_, err = sparse.RandomSymmetric(4, 0.5, nil, nil)
	assert.ErrorIs(t, err, sparse.ErrNeedRandSource)
}

// TestRandomSymmetric_Extremes: p=0 gives no edges, p=1 gives every pair once.
func TestRandomSymmetric_Extremes(t *testing.T) {
	empty, err := sparse.RandomSymmetric(5, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumEdges())

	full, err := sparse.RandomSymmetric(5, 1, nil, sparse.UniformWeight(2, 4))
	require.NoError(t, err)
	assert.Equal(t, 10, full.NumEdges())
	assert.Equal(t, 5, full.Dim())
	for _, e := range full.Edges() {
		assert.Less(t, e.S, e.T, "only the upper triangle is emitted")
		assert.Equal(t, 3.0, e.W, "midpoint weight without a random source")
	}
}

// TestRandomSymmetric_SeedDeterminism checks identical edges for identical seeds.
func TestRandomSymmetric_SeedDeterminism(t *testing.T) {
	a, err := sparse.RandomSymmetric(30, 0.2, rand.New(rand.NewSource(42)), sparse.UniformWeight(-1, 1))
	require.NoError(t, err)
	b, err := sparse.RandomSymmetric(30, 0.2, rand.New(rand.NewSource(42)), sparse.UniformWeight(-1, 1))
	require.NoError(t, err)

	require.Equal(t, a.Edges(), b.Edges())
	require.Greater(t, a.NumEdges(), 0)
}
