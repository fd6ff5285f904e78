// SPDX-License-Identifier: MIT

// Package topeigen extracts the k dominant eigenpairs (largest |λ|) of large
// sparse symmetric matrices by power iteration with deflation.
//
// 🚀 What is topeigen?
//
//	A small numerical toolkit built around one algorithm:
//		• sparse/    edge-list matrix with implicit symmetric mirroring
//		• vector/    dense kernels (dot, norm, projection) on gonum floats
//		• eigen/     power iteration, deflation, estimators, dense reference
//		• edgelist/  text I/O for matrices and results, gzip/zstd/lz4 aware
//		• blobstore/ local, S3 and MinIO locations for inputs and outputs
//		• metrics/   Prometheus view of a run
//		• cmd/topeigen  the command-line front end
//
// ✨ Semantics in one paragraph
//
// An edge (s, t, w) contributes w to both A[s][t] and A[t][s]; a self-loop
// therefore adds 2w to the diagonal. Each eigenpair starts from a random
// vector, runs a fixed number of multiply → project → normalize steps, and
// is then frozen and added to the deflation set so that later pairs are
// searched in its orthogonal complement. Eigenvalues come out in extraction
// order, which is decreasing magnitude for well-separated spectra.
//
// Quick example:
//
//	m, _ := sparse.New([]sparse.Edge{{S: 0, T: 1, W: 1}, {S: 0, T: 0, W: 0.25}, {S: 1, T: 1, W: 0.25}})
//	res, _ := eigen.Solve(m, 2, eigen.WithSeed(42), eigen.WithEstimator(eigen.Rayleigh))
//	// res.Values ≈ [1.5, -0.5]
//
// See each subpackage for contracts, error values and complexity notes.
package topeigen
