// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math/rand"
)

// WeightFn draws an edge weight. rng is nil on deterministic paths (p ∈ {0,1}
// without a random source).
type WeightFn func(rng *rand.Rand) float64

// UnitWeight returns 1 for every edge.
func UnitWeight(*rand.Rand) float64 { return 1 }

// UniformWeight returns a WeightFn drawing from [lo, hi). Without a random
// source it returns the midpoint.
func UniformWeight(lo, hi float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return (lo + hi) / 2
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// RandomSymmetric samples an Erdős–Rényi-like symmetric matrix over n indices:
// every unordered pair {i,j} with i<j becomes an edge independently with
// probability p. Weights come from weight (UnitWeight when nil).
//
// Contract:
//   - n ≥ 1 (else ErrBadDimension).
//   - 0 ≤ p ≤ 1 (else ErrBadProbability).
//   - rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: pairs are visited in (i asc, j asc) order, so a fixed seed
// yields the same edge list. The dimension of the result is 1 + the largest
// index that received an edge; trailing indices without edges are not
// represented.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSymmetric(n int, p float64, rng *rand.Rand, weight WeightFn) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSymmetric: n=%d: %w", n, ErrBadDimension)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSymmetric: p=%.6f: %w", p, ErrBadProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("RandomSymmetric: %w", ErrNeedRandSource)
	}
	if weight == nil {
		weight = UnitWeight
	}

	b := NewBuilder()
	var (
		i, j    int
		include bool
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// p ∈ {0,1} never consumes the random stream.
			include = p == 1 || (p > 0 && rng.Float64() < p)
			if !include {
				continue
			}
			if err := b.Add(i, j, weight(rng)); err != nil {
				return nil, fmt.Errorf("RandomSymmetric: %w", err)
			}
		}
	}

	return b.Build(), nil
}
