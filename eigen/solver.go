// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topeigen/sparse"
)

// Solver extracts dominant eigenpairs with a fixed configuration.
// A Solver built without WithRand is safe for concurrent Solve calls; one
// built with WithRand shares that stream and is not.
type Solver struct {
	opts Options
}

// NewSolver resolves opts into a reusable Solver.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// Options returns a copy of the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve is shorthand for NewSolver(opts...).Solve(m, k).
func Solve(m *sparse.Matrix, k int, opts ...Option) (*Result, error) {
	return NewSolver(opts...).Solve(m, k)
}

// Solve computes k eigenpairs of m, largest magnitude first.
//
// Slot i runs power iteration against the deflation set built from slots
// 0..i-1; its eigenvector is appended to the set before slot i+1 starts.
// Every observer is notified after each slot.
//
// k larger than m.Dim() is not rejected: the extra slots iterate on
// rounding noise and their pairs carry no meaning.
//
// Errors: sparse.ErrNilMatrix, ErrEmptyMatrix, ErrBadK, ErrTooLarge, and
// ErrDegenerate (strict numerics only), wrapped with slot context.
//
// Complexity: O(k·(budget+1)·(n + e + k·n)) time, O(k·n) memory.
func (s *Solver) Solve(m *sparse.Matrix, k int) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("Solve: %w", sparse.ErrNilMatrix)
	}
	n := m.Dim()
	if n == 0 {
		return nil, fmt.Errorf("Solve: %w", ErrEmptyMatrix)
	}
	if k < 1 {
		return nil, fmt.Errorf("Solve: k=%d: %w", k, ErrBadK)
	}
	if k > math.MaxInt/n {
		return nil, fmt.Errorf("Solve: k=%d n=%d: %w", k, n, ErrTooLarge)
	}

	var (
		opts = s.opts
		defl = &DeflationSet{vectors: make([][]float64, 0, k)}
		eng  = newEngine(m, &opts, opts.random(), defl)
		res  = &Result{
			Values:  make([]float64, k),
			Vectors: make([][]float64, k),
		}
	)
	for slot := 0; slot < k; slot++ {
		value, vec, stats, err := eng.run(slot)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		res.Values[slot] = value
		res.Vectors[slot] = vec
		defl.accept(vec)

		for _, obs := range opts.observers {
			obs.ObserveSlot(stats)
		}
	}

	return res, nil
}
