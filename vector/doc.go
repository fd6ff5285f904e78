// SPDX-License-Identifier: MIT

// Package vector provides the dense vector kernels used by power iteration:
// inner products, Euclidean norms, in-place normalization and the
// eigenvalue estimators. Vectors are plain []float64 of equal length; the
// kernels delegate to gonum's floats package and panic on length mismatch
// (programmer error), exactly like gonum.
package vector
