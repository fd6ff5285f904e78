// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/topeigen/blobstore"
	"github.com/katalvlaran/topeigen/blobstore/minio"
	"github.com/katalvlaran/topeigen/blobstore/s3"
	"github.com/katalvlaran/topeigen/edgelist"
)

// storeFor resolves the backend serving loc.
func (a *app) storeFor(ctx context.Context, loc blobstore.Location) (blobstore.Store, error) {
	switch loc.Scheme {
	case blobstore.SchemeFile:
		return blobstore.NewLocalStore(""), nil
	case blobstore.SchemeS3:
		client, err := s3.NewClient(ctx, a.cfg.S3Region, a.cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		return s3.NewStore(client, loc.Bucket, ""), nil
	case blobstore.SchemeMinio:
		if a.cfg.MinioEndpoint == "" {
			return nil, fmt.Errorf("%s: minio.endpoint is not configured", loc)
		}
		client, err := minio.NewClient(a.cfg.MinioEndpoint, a.cfg.MinioAccess, a.cfg.MinioSecret, a.cfg.MinioSecure)
		if err != nil {
			return nil, err
		}
		return minio.NewStore(client, loc.Bucket, ""), nil
	default:
		return nil, fmt.Errorf("%s: %w", loc, blobstore.ErrBadLocation)
	}
}

// openInput opens uri for reading.
func (a *app) openInput(ctx context.Context, uri string) (io.ReadCloser, error) {
	loc, err := blobstore.ParseLocation(uri)
	if err != nil {
		return nil, err
	}
	store, err := a.storeFor(ctx, loc)
	if err != nil {
		return nil, err
	}

	return store.Open(ctx, loc.Name)
}

// output is a committed-on-success destination with the codec implied by
// its name applied.
type output struct {
	blob blobstore.WritableBlob
	zw   io.WriteCloser
}

func (o *output) Write(p []byte) (int, error) { return o.zw.Write(p) }

// Commit flushes the codec and makes the blob visible.
func (o *output) Commit() error {
	if err := o.zw.Close(); err != nil {
		_ = o.blob.Abort()
		return err
	}

	return o.blob.Close()
}

// Abort discards the blob.
func (o *output) Abort() error { return o.blob.Abort() }

// createOutput starts writing uri.
func (a *app) createOutput(ctx context.Context, uri string) (*output, error) {
	loc, err := blobstore.ParseLocation(uri)
	if err != nil {
		return nil, err
	}
	store, err := a.storeFor(ctx, loc)
	if err != nil {
		return nil, err
	}
	blob, err := store.Create(ctx, loc.Name)
	if err != nil {
		return nil, err
	}
	zw, err := edgelist.NewCompressor(blob, edgelist.CodecFromName(loc.Name))
	if err != nil {
		_ = blob.Abort()
		return nil, err
	}

	return &output{blob: blob, zw: zw}, nil
}
