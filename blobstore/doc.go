// SPDX-License-Identifier: MIT

// Package blobstore abstracts where edge lists are read from and where
// results are written to.
//
// A Store opens named blobs for streaming reads and creates WritableBlobs
// whose content becomes visible only on Close. Abort discards a partial
// write, so a failed run never leaves a truncated result behind.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, temp file + rename on commit
//   - s3.Store: Amazon S3 via the multipart upload manager
//   - minio.Store: MinIO and other S3-compatible endpoints
//
// ParseLocation splits a user-supplied URI (s3://, minio://, file:// or a
// plain path) into the backend scheme, bucket and object name.
package blobstore
