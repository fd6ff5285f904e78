// SPDX-License-Identifier: MIT

// Package sparse stores a real symmetric matrix as a list of weighted edges.
//
// 🚀 What is sparse.Matrix?
//
//	An immutable, edge-list ("triplet") representation of a symmetric matrix.
//	Every stored Edge{S, T, W} stands for BOTH entries (S,T) and (T,S):
//
//	    Edge{0, 1, 2.5}   ⇒   A[0][1] = A[1][0] = 2.5
//
//	The dimension is n = 1 + max index seen across all edges. Gaps are
//	allowed: an index that never appears is an all-zero (isolated) row.
//
// ✨ Semantics worth knowing:
//   - Each unordered pair {i,j} should be listed once. Listing both (i,j)
//     and (j,i) double-counts, because mirroring is implicit.
//   - Duplicates are not merged; their contributions add up.
//   - A self-loop Edge{i, i, w} contributes 2w to A[i][i] (mirroring is not
//     special-cased).
//
// ⚙️ Usage:
//
//	b := sparse.NewBuilder()
//	_ = b.Add(0, 1, 1.0)
//	_ = b.Add(1, 2, 0.5)
//	m := b.Build()
//
//	dst := make([]float64, m.Dim())
//	_ = m.MulVec(dst, x) // dst = A·x, O(e)
//
// Performance:
//
//   - MulVec: O(e) time, no allocations.
//   - Memory: 24 bytes per edge plus a compressed bitmap of touched indices.
package sparse
