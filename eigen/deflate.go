// SPDX-License-Identifier: MIT

package eigen

import "github.com/katalvlaran/topeigen/vector"

// DeflationSet is the ordered list of accepted unit eigenvectors.
// It grows by one vector per completed slot; accepted vectors are never
// modified afterwards.
type DeflationSet struct {
	vectors [][]float64
}

// DeflationSetOf returns a set pre-filled with unit vectors vs, in order.
// Useful to continue an extraction against eigenvectors found earlier.
func DeflationSetOf(vs ...[]float64) DeflationSet {
	return DeflationSet{vectors: append([][]float64(nil), vs...)}
}

// Len returns the number of accepted vectors.
func (d *DeflationSet) Len() int { return len(d.vectors) }

// At returns the i-th accepted vector. The slice is shared; do not modify it.
func (d *DeflationSet) At(i int) []float64 { return d.vectors[i] }

// Project removes from v, in place and in acceptance order, its component
// along every accepted vector u:  v ← v − u·⟨v,u⟩.
//
// This is one Gram–Schmidt pass. It assumes the accepted vectors are unit
// length and mutually near-orthogonal; residual components are not re-projected.
//
// Complexity: O(len·n).
func (d *DeflationSet) Project(v []float64) {
	for _, u := range d.vectors {
		vector.AddScaled(v, -vector.Dot(v, u), u)
	}
}

func (d *DeflationSet) accept(u []float64) {
	d.vectors = append(d.vectors, u)
}
