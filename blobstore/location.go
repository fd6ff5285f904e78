// SPDX-License-Identifier: MIT

package blobstore

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme names a storage backend.
type Scheme string

const (
	// SchemeFile is the local file system.
	SchemeFile Scheme = "file"
	// SchemeS3 is Amazon S3.
	SchemeS3 Scheme = "s3"
	// SchemeMinio is a MinIO or other S3-compatible endpoint.
	SchemeMinio Scheme = "minio"
)

// ErrBadLocation is returned by ParseLocation for URIs it cannot split.
var ErrBadLocation = errors.New("blobstore: bad location")

// Location is a parsed input or output URI.
type Location struct {
	Scheme Scheme
	Bucket string // empty for SchemeFile
	Name   string // object key or file path
}

// String renders l back into URI form.
func (l Location) String() string {
	if l.Scheme == SchemeFile {
		return l.Name
	}

	return string(l.Scheme) + "://" + l.Bucket + "/" + l.Name
}

// ParseLocation accepts s3://bucket/key, minio://bucket/key, file://path and
// plain paths.
func ParseLocation(uri string) (Location, error) {
	if uri == "" {
		return Location{}, fmt.Errorf("%w: empty", ErrBadLocation)
	}
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return Location{Scheme: SchemeFile, Name: uri}, nil
	}
	switch Scheme(strings.ToLower(scheme)) {
	case SchemeFile:
		if rest == "" {
			return Location{}, fmt.Errorf("%w: %q has no path", ErrBadLocation, uri)
		}
		return Location{Scheme: SchemeFile, Name: rest}, nil
	case SchemeS3, SchemeMinio:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("%w: %q needs bucket and key", ErrBadLocation, uri)
		}
		return Location{Scheme: Scheme(strings.ToLower(scheme)), Bucket: bucket, Name: key}, nil
	default:
		return Location{}, fmt.Errorf("%w: unknown scheme %q", ErrBadLocation, scheme)
	}
}
