// SPDX-License-Identifier: MIT

package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore implements Store on the local file system. Names are joined to
// root; an empty root leaves them relative to the working directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) path(name string) string {
	if s.root == "" {
		return name
	}

	return filepath.Join(s.root, name)
}

// Open opens a file for reading.
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Create writes to a temp file next to the target and renames it into place
// on Close.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	target := s.path(name)
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("blobstore: create %s: %w", target, err)
	}

	return &localWritableBlob{f: f, target: target}, nil
}

type localWritableBlob struct {
	f      *os.File
	target string
	done   bool
}

func (b *localWritableBlob) Write(p []byte) (int, error) {
	if b.done {
		return 0, ErrClosed
	}

	return b.f.Write(p)
}

func (b *localWritableBlob) Close() error {
	if b.done {
		return ErrClosed
	}
	b.done = true
	tmp := b.f.Name()
	if err := b.f.Sync(); err != nil {
		_ = b.f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("blobstore: sync %s: %w", b.target, err)
	}
	if err := b.f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("blobstore: close %s: %w", b.target, err)
	}
	if err := os.Rename(tmp, b.target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("blobstore: commit %s: %w", b.target, err)
	}

	return nil
}

func (b *localWritableBlob) Abort() error {
	if b.done {
		return nil
	}
	b.done = true
	_ = b.f.Close()
	if err := os.Remove(b.f.Name()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blobstore: abort %s: %w", b.target, err)
	}

	return nil
}
