package edgelist_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/topeigen/edgelist"
	"github.com/katalvlaran/topeigen/eigen"
)

// ExampleRead loads a two-node graph with self-loops and writes its
// dominant pair. Each self-loop contributes twice its weight to the diagonal.
func ExampleRead() {
	in := "# all-ones 2x2\n0 1 1\n0 0 0.5\n1 1 0.5\n"
	m, err := edgelist.Read(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := eigen.Solve(m, 1, eigen.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = edgelist.Write(os.Stdout, res, edgelist.WithPrecision(3))
	// Output:
	// 2.000e+00
	// 7.071e-01
	// 7.071e-01
}
