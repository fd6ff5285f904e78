// SPDX-License-Identifier: MIT

// Package s3 implements blobstore.Store on Amazon S3.
//
// Reads are single GetObject calls streamed to the caller. Writes are piped
// into the multipart upload manager; the object appears only once Close
// completes the upload, and Abort cancels it.
package s3
