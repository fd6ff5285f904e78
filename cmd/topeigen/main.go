// SPDX-License-Identifier: MIT

// Command topeigen extracts the k dominant eigenpairs of a sparse symmetric
// matrix given as an edge list.
//
// Usage:
//
//	topeigen run <input> <k> <output>
//	topeigen gen <n> <p> <output>
//	topeigen version
//
// Inputs and outputs may be local paths or s3:// and minio:// URIs; .gz,
// .zst and .lz4 outputs are compressed accordingly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "topeigen:", err)
		os.Exit(1)
	}
}
