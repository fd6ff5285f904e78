// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Edge is one stored entry of a symmetric matrix. It stands for both
// positions (S,T) and (T,S).
type Edge struct {
	S int     // source index (row)
	T int     // target index (column)
	W float64 // weight applied to both mirrored positions
}

// Matrix is an immutable symmetric sparse matrix held as an edge list.
// The zero value is an empty 0×0 matrix; use Builder or New to construct one.
type Matrix struct {
	n         int             // dimension: 1 + max index seen
	edges     []Edge          // stored entries, insertion order
	selfLoops int             // number of edges with S == T
	touched   *roaring.Bitmap // indices referenced by at least one edge
}

// New builds a Matrix from edges using the given builder options.
// Equivalent to adding every edge to a Builder and calling Build.
//
// Errors: ErrBadIndex, ErrInvalidWeight (wrapped with the edge position).
//
// Complexity: O(e) time, O(e) memory.
func New(edges []Edge, opts ...Option) (*Matrix, error) {
	b := NewBuilder(append([]Option{WithCapacity(len(edges))}, opts...)...)
	for i, e := range edges {
		if err := b.Add(e.S, e.T, e.W); err != nil {
			return nil, fmt.Errorf("New: edge %d: %w", i, err)
		}
	}

	return b.Build(), nil
}

// Dim returns n, the number of rows (and columns).
func (m *Matrix) Dim() int {
	if m == nil {
		return 0
	}
	return m.n
}

// NumEdges returns the number of stored edges, duplicates included.
func (m *Matrix) NumEdges() int {
	if m == nil {
		return 0
	}
	return len(m.edges)
}

// Edges returns a copy of the stored edges in insertion order.
func (m *Matrix) Edges() []Edge {
	if m == nil {
		return nil
	}
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)

	return out
}

// MulVec computes dst = A·x where A is the symmetric matrix implied by the
// edge list. dst is zeroed first, then every edge (s,t,w) accumulates
//
//	dst[s] += x[t]·w
//	dst[t] += x[s]·w
//
// dst and x must both have length Dim() and must not alias.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(n + e) time, zero allocations.
func (m *Matrix) MulVec(dst, x []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(dst) != m.n || len(x) != m.n {
		return fmt.Errorf("MulVec: dst=%d x=%d n=%d: %w", len(dst), len(x), m.n, ErrDimensionMismatch)
	}

	clear(dst)
	for _, e := range m.edges {
		dst[e.S] += x[e.T] * e.W
		dst[e.T] += x[e.S] * e.W
	}

	return nil
}

// Dense expands the matrix into a row-major n×n slice using the same
// mirroring rule as MulVec (self-loops land twice on the diagonal).
// Intended for small matrices: verification, tests, debugging.
//
// Complexity: O(n² + e) time and memory.
func (m *Matrix) Dense() [][]float64 {
	if m == nil {
		return nil
	}
	a := make([][]float64, m.n)
	for i := range a {
		a[i] = make([]float64, m.n)
	}
	for _, e := range m.edges {
		a[e.S][e.T] += e.W
		a[e.T][e.S] += e.W
	}

	return a
}
