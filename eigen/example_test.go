package eigen_test

import (
	"fmt"

	"github.com/katalvlaran/topeigen/eigen"
	"github.com/katalvlaran/topeigen/sparse"
)

// ExampleSolve extracts both eigenpairs of [[0.5,1],[1,0.5]].
// The diagonal comes from self-loops, each counted twice.
func ExampleSolve() {
	m, _ := sparse.New([]sparse.Edge{
		{S: 0, T: 1, W: 1},
		{S: 0, T: 0, W: 0.25},
		{S: 1, T: 1, W: 0.25},
	})

	res, err := eigen.Solve(m, 2, eigen.WithSeed(42), eigen.WithEstimator(eigen.Rayleigh))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < res.K(); i++ {
		lambda, v := res.Pair(i)
		if v[0] < 0 { // eigenvectors are defined up to sign
			v[0], v[1] = -v[0], -v[1]
		}
		fmt.Printf("λ=%.4f v=(%.4f, %.4f)\n", lambda, v[0], v[1])
	}
	// Output:
	// λ=1.5000 v=(0.7071, 0.7071)
	// λ=-0.5000 v=(0.7071, -0.7071)
}
