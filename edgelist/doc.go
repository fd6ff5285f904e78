// SPDX-License-Identifier: MIT

// Package edgelist reads weighted edge lists into sparse matrices and writes
// eigen results back as plain text.
//
// Input format, one edge per line:
//
//	<source uint32> <target uint32> <weight float>
//	0 1 1.0
//	1 2 -2.5e-3
//
// Blank lines and lines starting with '#' or '%' are skipped. Any other line
// must hold exactly three whitespace-separated fields. Indices are decimal
// and may carry a single leading '+'.
//
// Output format for k eigenpairs of an n-row matrix (1 + n lines, k fields each):
//
//	λ₀ λ₁ … λₖ₋₁
//	v₀[0] v₁[0] … vₖ₋₁[0]
//	…
//	v₀[n-1] v₁[n-1] … vₖ₋₁[n-1]
//
// Numbers use %e formatting with 6 fractional digits by default.
//
// Streams may be compressed: readers detect gzip, zstd and lz4 frames by
// their magic bytes; writers pick a codec with CodecFromName (".gz", ".zst",
// ".lz4").
package edgelist
