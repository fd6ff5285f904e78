package blobstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topeigen/blobstore"
)

func TestParseLocation(t *testing.T) {
	cases := []struct {
		in   string
		want blobstore.Location
	}{
		{"graph.txt", blobstore.Location{Scheme: blobstore.SchemeFile, Name: "graph.txt"}},
		{"/tmp/g.gz", blobstore.Location{Scheme: blobstore.SchemeFile, Name: "/tmp/g.gz"}},
		{"file:///tmp/g", blobstore.Location{Scheme: blobstore.SchemeFile, Name: "/tmp/g"}},
		{"s3://b/dir/k.zst", blobstore.Location{Scheme: blobstore.SchemeS3, Bucket: "b", Name: "dir/k.zst"}},
		{"MINIO://b/k", blobstore.Location{Scheme: blobstore.SchemeMinio, Bucket: "b", Name: "k"}},
	}
	for _, tc := range cases {
		got, err := blobstore.ParseLocation(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "s3://bucket", "s3:///key", "gs://b/k", "file://"} {
		_, err := blobstore.ParseLocation(bad)
		assert.ErrorIs(t, err, blobstore.ErrBadLocation, bad)
	}

	assert.Equal(t, "s3://b/dir/k", blobstore.Location{Scheme: blobstore.SchemeS3, Bucket: "b", Name: "dir/k"}.String())
	assert.Equal(t, "x.txt", blobstore.Location{Scheme: blobstore.SchemeFile, Name: "x.txt"}.String())
}
