// SPDX-License-Identifier: MIT

// Package eigen computes the k dominant eigenpairs (largest |λ| first) of a
// symmetric sparse.Matrix by power iteration with deflation.
//
// 🚀 Algorithm (per requested slot):
//
//	Init      v ← uniform [0,1)ⁿ from ONE random stream shared by all slots
//	Iterate   repeat budget times:
//	            w ← A·v            (sparse.Matrix.MulVec, O(e))
//	            w ← w − Σ uᵢ⟨w,uᵢ⟩  (project out accepted eigenvectors)
//	            w ← w / ‖w‖₂
//	            swap(v, w)
//	Finalize  w ← A·v, project, λ ← estimator(v, w), w ← w / ‖w‖₂
//	Accept    append w to the deflation set; move to the next slot
//
// ✨ Knobs (functional options):
//   - WithIterations: fixed budget per slot (default 30).
//   - WithTolerance: optional early stop on sign-insensitive ‖vₜ − vₜ₋₁‖.
//   - WithSeed / WithRand: explicit random source, reproducible runs.
//   - WithEstimator: SumRatio (Σw/Σv, default) or Rayleigh (⟨v,w⟩/⟨v,v⟩).
//   - WithStrictNumerics: report zero/non-finite iterate norms as ErrDegenerate
//     (default) or let NaN propagate silently.
//   - WithObserver: per-slot hook for logging and metrics.
//
// Known limitations:
//   - Deflation is a single Gram–Schmidt pass with no re-orthogonalization;
//     nearly degenerate eigenpairs can leak into each other over the budget.
//   - Eigenvalues of equal magnitude and opposite sign (λ and −λ) are not
//     separated by power iteration: the iterate oscillates between them.
//   - The SumRatio estimate is ill-conditioned for eigenvectors whose
//     components sum to ≈0; prefer Rayleigh there. An exact zero sum gives
//     NaN, which is returned as the eigenvalue and flagged through
//     SlotStats.ValueUndefined rather than failing the run.
//   - k > n is accepted; slots beyond n iterate on rounding noise.
//
// The package is single-threaded and never logs.
//
// ⚙️ Usage:
//
//	res, err := eigen.Solve(m, 3, eigen.WithSeed(42), eigen.WithIterations(200))
//	if err != nil {
//	    // ErrBadK, ErrTooLarge, ErrDegenerate, sparse.ErrNilMatrix
//	}
//	λ, v := res.Pair(0)
package eigen
