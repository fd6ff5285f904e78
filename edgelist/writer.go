// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/topeigen/eigen"
	"github.com/katalvlaran/topeigen/sparse"
)

// Write emits res in the result format: the k eigenvalues on the first line,
// then one line per row j holding entry j of every eigenvector in
// extraction order.
//
// Errors: ErrEmptyResult, ErrRaggedResult, and write errors.
//
// Complexity: O(k·n) time, O(k) buffer.
func Write(w io.Writer, res *eigen.Result, opts ...Option) error {
	if res == nil || res.K() == 0 {
		return fmt.Errorf("Write: %w", ErrEmptyResult)
	}
	k, n := res.K(), res.N()
	if len(res.Vectors) != k {
		return fmt.Errorf("Write: %d values, %d vectors: %w", k, len(res.Vectors), ErrRaggedResult)
	}
	for i, v := range res.Vectors {
		if len(v) != n {
			return fmt.Errorf("Write: vector %d has %d entries, want %d: %w", i, len(v), n, ErrRaggedResult)
		}
	}

	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, k*(o.precision+8))

	buf = appendRow(buf[:0], res.Values, o.precision)
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("Write: values: %w", err)
	}
	row := make([]float64, k)
	for j := 0; j < n; j++ {
		for i := 0; i < k; i++ {
			row[i] = res.Vectors[i][j]
		}
		buf = appendRow(buf[:0], row, o.precision)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("Write: row %d: %w", j, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: flush: %w", err)
	}

	return nil
}

func appendRow(buf []byte, row []float64, prec int) []byte {
	for i, x := range row {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, x, 'e', prec, 64)
	}

	return append(buf, '\n')
}

// ReadResult parses the result format back into an eigen.Result.
// Every line must carry the same number of fields as the first.
//
// Errors: ErrEmptyResult, ErrRaggedResult, ErrMalformed.
func ReadResult(r io.Reader) (*eigen.Result, error) {
	dr, _, err := NewDecompressor(r)
	if err != nil {
		return nil, fmt.Errorf("ReadResult: %w", err)
	}
	defer func() { _ = dr.Close() }()

	var (
		sc   = bufio.NewScanner(dr)
		res  *eigen.Result
		line int
	)
	sc.Buffer(make([]byte, 0, 64*1024), DefaultMaxLineBytes)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if res == nil {
			if len(fields) == 0 {
				return nil, fmt.Errorf("ReadResult: %w", ErrEmptyResult)
			}
			res = &eigen.Result{Values: make([]float64, len(fields)), Vectors: make([][]float64, len(fields))}
			if err = parseFloats(fields, res.Values); err != nil {
				return nil, fmt.Errorf("ReadResult: line %d: %w", line, err)
			}
			continue
		}
		if len(fields) != res.K() {
			return nil, fmt.Errorf("ReadResult: line %d has %d fields, want %d: %w", line, len(fields), res.K(), ErrRaggedResult)
		}
		for i, f := range fields {
			x, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return nil, fmt.Errorf("ReadResult: line %d: %q: %w", line, f, ErrMalformed)
			}
			res.Vectors[i] = append(res.Vectors[i], x)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadResult: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("ReadResult: %w", ErrEmptyResult)
	}

	return res, nil
}

func parseFloats(fields []string, dst []float64) error {
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("%q: %w", f, ErrMalformed)
		}
		dst[i] = x
	}

	return nil
}

// WriteEdges emits m as an edge list Read accepts, one "s t w" line per
// stored edge in insertion order. Weights use the 'g' format at full
// precision so a round trip is exact.
func WriteEdges(w io.Writer, m *sparse.Matrix) error {
	if m == nil {
		return fmt.Errorf("WriteEdges: %w", sparse.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, e := range m.Edges() {
		buf = strconv.AppendInt(buf[:0], int64(e.S), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.T), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, e.W, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteEdges: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteEdges: flush: %w", err)
	}

	return nil
}
