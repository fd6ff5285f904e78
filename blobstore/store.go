// SPDX-License-Identifier: MIT

package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
var ErrNotFound = os.ErrNotExist

// ErrClosed is returned when a WritableBlob is used after Close or Abort.
var ErrClosed = errors.New("blobstore: blob already closed")

// Store reads and writes whole blobs by name.
type Store interface {
	// Open opens a blob for streaming reads.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Create starts a new blob. Nothing is visible under name until the
	// returned blob is closed successfully.
	Create(ctx context.Context, name string) (WritableBlob, error)
}

// WritableBlob is a blob under construction.
type WritableBlob interface {
	io.Writer
	// Close commits the blob.
	Close() error
	// Abort discards everything written so far. Abort after Close is a no-op.
	Abort() error
}
