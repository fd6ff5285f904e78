// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/topeigen/sparse"
	"github.com/katalvlaran/topeigen/vector"
)

// engine runs power iteration for one slot at a time. It owns two working
// buffers that are swapped, never reallocated, between iterations.
type engine struct {
	m    *sparse.Matrix
	opts *Options
	rng  *rand.Rand
	defl *DeflationSet

	cur  []float64 // current normalized iterate
	next []float64 // product / projection target
}

func newEngine(m *sparse.Matrix, opts *Options, rng *rand.Rand, defl *DeflationSet) *engine {
	n := m.Dim()

	return &engine{
		m:    m,
		opts: opts,
		rng:  rng,
		defl: defl,
		cur:  make([]float64, n),
		next: make([]float64, n),
	}
}

// apply computes next ← P·(A·cur), P being the projection away from the
// deflation set.
func (e *engine) apply() error {
	if err := e.m.MulVec(e.next, e.cur); err != nil {
		return err
	}
	e.defl.Project(e.next)

	return nil
}

// degenerate reports whether a norm breaks the strict policy.
func degenerate(x float64) bool {
	return x == 0 || math.IsNaN(x) || math.IsInf(x, 0)
}

// run converges one eigenpair and returns (λ, v, stats). The returned vector
// is a fresh slice owned by the caller.
//
//   - Stage 1: Init, uniform [0,1) entries from the shared stream.
//   - Stage 2: Iterate multiply → project → normalize → swap, budget times
//     or until the tolerance rule fires.
//   - Stage 3: Finalize multiply → project → estimate → normalize.
func (e *engine) run(slot int) (float64, []float64, SlotStats, error) {
	var (
		start     = time.Now()
		budget    = e.opts.iterations
		tol       = e.opts.tolerance
		delta     = math.NaN()
		converged bool
		norm      float64
		it        int
	)
	stats := SlotStats{Slot: slot, N: len(e.cur)}

	// Stage 1
	vector.Uniform(e.cur, e.rng)

	// Stage 2
	for it = 0; it < budget; it++ {
		if err := e.apply(); err != nil {
			return 0, nil, stats, fmt.Errorf("slot %d iteration %d: %w", slot, it, err)
		}
		norm = vector.Normalize(e.next)
		if e.opts.strict && degenerate(norm) {
			return 0, nil, stats, fmt.Errorf("slot %d iteration %d: norm=%v: %w", slot, it, norm, ErrDegenerate)
		}
		if tol > 0 {
			delta = vector.Delta(e.cur, e.next)
		}
		e.cur, e.next = e.next, e.cur
		if tol > 0 && delta < tol {
			converged = true
			it++

			break
		}
	}

	// Stage 3
	if err := e.apply(); err != nil {
		return 0, nil, stats, fmt.Errorf("slot %d finalize: %w", slot, err)
	}
	var value float64
	switch e.opts.estimator {
	case Rayleigh:
		value = vector.Rayleigh(e.cur, e.next)
	default:
		value = vector.Ratio(e.cur, e.next)
	}
	norm = vector.Normalize(e.next)
	if e.opts.strict && degenerate(norm) {
		return 0, nil, stats, fmt.Errorf("slot %d finalize: norm=%v: %w", slot, norm, ErrDegenerate)
	}

	out := make([]float64, len(e.next))
	copy(out, e.next)

	stats.Iterations = it
	stats.Multiplies = it + 1
	stats.Value = value
	stats.ValueUndefined = math.IsNaN(value) || math.IsInf(value, 0)
	stats.Norm = norm
	stats.Delta = delta
	stats.Converged = converged
	stats.Duration = time.Since(start)

	return value, out, stats, nil
}
