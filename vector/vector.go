// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Dot returns Σ a[i]·b[i].
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Norm returns the Euclidean norm ‖v‖₂.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Sum returns Σ v[i].
func Sum(v []float64) float64 {
	return floats.Sum(v)
}

// Normalize scales v in place by 1/‖v‖₂ and returns the norm it divided by.
// A zero vector is not guarded: its entries become NaN. Callers that need to
// detect that case check the returned norm.
func Normalize(v []float64) float64 {
	n := Norm(v)
	floats.Scale(1/n, v)

	return n
}

// AddScaled performs dst += alpha·s.
func AddScaled(dst []float64, alpha float64, s []float64) {
	floats.AddScaled(dst, alpha, s)
}

// Ratio returns Σ after / Σ before, the sum-of-components eigenvalue
// estimate. It is only meaningful once before is close to an eigenvector and
// its components do not cancel out.
func Ratio(before, after []float64) float64 {
	return Sum(after) / Sum(before)
}

// Rayleigh returns ⟨v, av⟩ / ⟨v, v⟩ where av = A·v.
func Rayleigh(v, av []float64) float64 {
	return Dot(v, av) / Dot(v, v)
}

// Delta returns the distance between a and b ignoring sign, that is
// min(‖a−b‖₂, ‖a+b‖₂). Power iteration on a negative eigenvalue flips the
// iterate every step, so both orientations count as the same direction.
func Delta(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("vector: length mismatch")
	}
	var minus, plus, d float64
	for i := range a {
		d = a[i] - b[i]
		minus += d * d
		d = a[i] + b[i]
		plus += d * d
	}

	return math.Sqrt(math.Min(minus, plus))
}

// Uniform fills v with independent draws from [0,1).
func Uniform(v []float64, rng *rand.Rand) {
	for i := range v {
		v[i] = rng.Float64()
	}
}

// Finite reports whether every entry of v is neither NaN nor ±Inf.
func Finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
