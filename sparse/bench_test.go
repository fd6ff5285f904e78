package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/topeigen/sparse"
)

// BenchmarkMulVec measures one sparse product on a 2000-row random matrix.
func BenchmarkMulVec(b *testing.B) {
	m, err := sparse.RandomSymmetric(2000, 0.005, rand.New(rand.NewSource(7)), sparse.UniformWeight(0, 1))
	if err != nil {
		b.Fatalf("RandomSymmetric failed: %v", err)
	}
	x := make([]float64, m.Dim())
	for i := range x {
		x[i] = 1
	}
	dst := make([]float64, m.Dim())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = m.MulVec(dst, x); err != nil {
			b.Fatalf("MulVec failed: %v", err)
		}
	}
}
