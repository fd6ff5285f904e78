// SPDX-License-Identifier: MIT

package sparse

import "github.com/RoaringBitmap/roaring/v2"

// Stats summarizes the structure of a Matrix.
type Stats struct {
	N         int // dimension
	Edges     int // stored edges, duplicates included
	SelfLoops int // edges with S == T
	Isolated  int // rows never referenced by an edge (all-zero rows)
}

// Stats reports dimension, edge counts and the number of isolated rows.
// Isolated rows are exactly zero in A·x and are the usual cause of
// zero-norm vectors during power iteration on tiny or disconnected inputs.
//
// Complexity: O(1).
func (m *Matrix) Stats() Stats {
	if m == nil {
		return Stats{}
	}

	return Stats{
		N:         m.n,
		Edges:     len(m.edges),
		SelfLoops: m.selfLoops,
		Isolated:  m.n - m.touchedCount(),
	}
}

func (m *Matrix) touchedCount() int {
	if m.touched == nil {
		return 0
	}
	return int(m.touched.GetCardinality())
}

// IsolatedRows returns the indices in [0, n) that no edge references,
// in ascending order.
//
// Complexity: O(n/64) for the bitmap flip plus O(isolated) output.
func (m *Matrix) IsolatedRows() []int {
	if m == nil || m.n == 0 {
		return nil
	}
	touched := m.touched
	if touched == nil {
		touched = roaring.New()
	}
	missing := roaring.Flip(touched, 0, uint64(m.n))
	out := make([]int, 0, missing.GetCardinality())
	it := missing.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
