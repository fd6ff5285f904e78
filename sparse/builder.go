// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// maxIndex is the largest accepted endpoint index (unsigned 32-bit).
const maxIndex = math.MaxUint32

// Builder accumulates edges and produces an immutable Matrix.
// A Builder is not safe for concurrent use.
type Builder struct {
	opts      Options
	n         int
	edges     []Edge
	selfLoops int
	touched   *roaring.Bitmap
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	o := gatherOptions(opts...)

	return &Builder{
		opts:    o,
		edges:   make([]Edge, 0, o.capacity),
		touched: roaring.New(),
	}
}

// Add appends the entry (s,t,w). The dimension grows to 1+max(s,t) when needed.
//
// Errors: ErrBadIndex for s or t outside [0, 2³²), ErrInvalidWeight for
// NaN/±Inf weights while validation is on. A rejected edge leaves the Builder
// unchanged.
//
// Complexity: amortized O(1).
func (b *Builder) Add(s, t int, w float64) error {
	if s < 0 || t < 0 || uint64(s) > maxIndex || uint64(t) > maxIndex {
		return fmt.Errorf("Add(%d,%d): %w", s, t, ErrBadIndex)
	}
	if b.opts.validateWeights && (math.IsNaN(w) || math.IsInf(w, 0)) {
		return fmt.Errorf("Add(%d,%d): w=%v: %w", s, t, w, ErrInvalidWeight)
	}

	b.edges = append(b.edges, Edge{S: s, T: t, W: w})
	if s == t {
		b.selfLoops++
	}
	b.touched.Add(uint32(s))
	b.touched.Add(uint32(t))
	if s+1 > b.n {
		b.n = s + 1
	}
	if t+1 > b.n {
		b.n = t + 1
	}

	return nil
}

// Len returns the number of edges added so far.
func (b *Builder) Len() int { return len(b.edges) }

// Build returns the Matrix. The Builder must not be used afterwards; its
// storage is handed over to the Matrix without copying.
func (b *Builder) Build() *Matrix {
	m := &Matrix{
		n:         b.n,
		edges:     b.edges[:len(b.edges):len(b.edges)],
		selfLoops: b.selfLoops,
		touched:   b.touched,
	}
	b.edges, b.touched = nil, nil

	return m
}
