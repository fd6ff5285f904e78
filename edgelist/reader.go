// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/topeigen/sparse"
)

// Read parses an edge list (optionally gzip/zstd/lz4 compressed) into a
// sparse.Matrix.
//
// Errors: ErrMalformed (with 1-based line number), ErrEmptyInput, sparse
// builder errors such as sparse.ErrInvalidWeight, and I/O errors.
//
// Complexity: O(bytes) time, O(e) memory.
func Read(r io.Reader, opts ...Option) (*sparse.Matrix, error) {
	o := gatherOptions(opts...)

	dr, _, err := NewDecompressor(r)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	defer func() { _ = dr.Close() }()

	var (
		b    = sparse.NewBuilder(o.builderOpts...)
		sc   = bufio.NewScanner(dr)
		line int
	)
	sc.Buffer(make([]byte, 0, min(64*1024, o.maxLineBytes)), o.maxLineBytes)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		s, t, w, perr := parseEdge(text)
		if perr != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, perr)
		}
		if err = b.Add(s, t, w); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: line %d: %w", line+1, err)
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("Read: %w", ErrEmptyInput)
	}

	return b.Build(), nil
}

// parseEdge splits "<uint> <uint> <real>".
func parseEdge(text string) (int, int, float64, error) {
	f := strings.Fields(text)
	if len(f) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 fields, got %d: %w", len(f), ErrMalformed)
	}
	s, err := parseIndex(f[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("source %q: %w", f[0], ErrMalformed)
	}
	t, err := parseIndex(f[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("target %q: %w", f[1], ErrMalformed)
	}
	w, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("weight %q: %w", f[2], ErrMalformed)
	}

	return int(s), int(t), w, nil
}

// parseIndex reads an unsigned 32-bit index. A single leading '+' is
// accepted, as scanf's %u does.
func parseIndex(tok string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 32)
}
