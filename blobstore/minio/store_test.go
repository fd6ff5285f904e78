package minio

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topeigen/blobstore"
)

func TestWritableBlob_Abort(t *testing.T) {
	client, err := NewClient("127.0.0.1:1", "k", "s", false)
	require.NoError(t, err)
	store := NewStore(client, "bucket", "p")

	w, err := store.Create(context.Background(), "out.txt")
	require.NoError(t, err)
	require.NoError(t, w.Abort())
	assert.NoError(t, w.Abort())

	_, err = w.Write([]byte("late"))
	assert.ErrorIs(t, err, blobstore.ErrClosed)
	assert.ErrorIs(t, w.Close(), blobstore.ErrClosed)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
}

// TestStore_Integration requires a running MinIO instance at
// TOPEIGEN_MINIO_ENDPOINT with the default credentials.
func TestStore_Integration(t *testing.T) {
	endpoint := os.Getenv("TOPEIGEN_MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("TOPEIGEN_MINIO_ENDPOINT not set")
	}
	client, err := NewClient(endpoint, "minioadmin", "minioadmin", false)
	require.NoError(t, err)

	ctx := context.Background()
	const bucket = "test-topeigen"
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}
	store := NewStore(client, bucket, "it")

	w, err := store.Create(ctx, "result.txt")
	require.NoError(t, err)
	_, err = io.WriteString(w, "1.0e+00\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := store.Open(ctx, "result.txt")
	require.NoError(t, err)
	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "1.0e+00\n", string(raw))

	_, err = store.Open(ctx, "missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
