// SPDX-License-Identifier: MIT

package eigen

import "time"

// SlotStats describes one completed eigenpair slot.
type SlotStats struct {
	Slot       int           // zero-based slot index (extraction order)
	N          int           // vector length
	Iterations int           // power iterations performed (≤ budget)
	Multiplies int           // sparse products performed, finalize included
	Value      float64       // eigenvalue estimate
	Norm       float64       // ‖A·v‖ after projection, before the final normalize
	Delta      float64       // last sign-insensitive step distance; NaN when not tracked
	Converged  bool          // true when the tolerance rule stopped the slot early
	Duration   time.Duration // wall time of the slot

	// ValueUndefined is set when the estimator returned NaN or ±Inf while
	// the vector itself is sound. SumRatio does this for eigenvectors whose
	// entries sum to zero; Rayleigh does not.
	ValueUndefined bool
}

// Observer receives per-slot statistics. Implementations must not retain
// or mutate solver state; they run synchronously on the solver goroutine.
type Observer interface {
	ObserveSlot(SlotStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(SlotStats)

// ObserveSlot calls f(s).
func (f ObserverFunc) ObserveSlot(s SlotStats) { f(s) }
