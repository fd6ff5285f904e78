// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies a stream compression format.
type Codec uint8

const (
	// CodecNone is plain text.
	CodecNone Codec = iota
	// CodecGzip is RFC 1952 gzip.
	CodecGzip
	// CodecZstd is a zstd frame.
	CodecZstd
	// CodecLZ4 is an lz4 frame.
	CodecLZ4
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecGzip:
		return "gzip"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Codec(%d)", uint8(c))
	}
}

// CodecFromName picks a codec from a file or object name extension.
// Unknown extensions map to CodecNone.
func CodecFromName(name string) Codec {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return CodecGzip
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// sniff inspects the first bytes of br without consuming them.
func sniff(br *bufio.Reader) Codec {
	head, _ := br.Peek(4) // short streams are plain text
	switch {
	case bytes.HasPrefix(head, magicZstd):
		return CodecZstd
	case bytes.HasPrefix(head, magicLZ4):
		return CodecLZ4
	case bytes.HasPrefix(head, magicGzip):
		return CodecGzip
	default:
		return CodecNone
	}
}

// NewDecompressor detects the codec of r from its magic bytes and returns a
// reader yielding the decompressed stream. Closing it releases decoder
// resources only; r is left open.
func NewDecompressor(r io.Reader) (io.ReadCloser, Codec, error) {
	br := bufio.NewReader(r)
	c := sniff(br)
	switch c {
	case CodecGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("NewDecompressor: gzip: %w", err)
		}
		return zr, c, nil
	case CodecZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("NewDecompressor: zstd: %w", err)
		}
		return zr.IOReadCloser(), c, nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(br)), c, nil
	default:
		return io.NopCloser(br), c, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewCompressor wraps w with codec c. Close flushes the compressed stream
// but does not close w.
func NewCompressor(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case CodecNone:
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("NewCompressor: zstd: %w", err)
		}
		return zw, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("NewCompressor: unknown codec %s", c)
	}
}
