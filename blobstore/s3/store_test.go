package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topeigen/blobstore"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockClient) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *mockClient) UploadPart(ctx context.Context, in *s3.UploadPartInput, _ ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.UploadPartOutput)
	return out, args.Error(1)
}

func (m *mockClient) CreateMultipartUpload(ctx context.Context, in *s3.CreateMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.CreateMultipartUploadOutput)
	return out, args.Error(1)
}

func (m *mockClient) CompleteMultipartUpload(ctx context.Context, in *s3.CompleteMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.CompleteMultipartUploadOutput)
	return out, args.Error(1)
}

func (m *mockClient) AbortMultipartUpload(ctx context.Context, in *s3.AbortMultipartUploadInput, _ ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.AbortMultipartUploadOutput)
	return out, args.Error(1)
}

func TestStore_Open(t *testing.T) {
	c := new(mockClient)
	store := NewStore(c, "bucket", "runs")

	t.Run("Success", func(t *testing.T) {
		c.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return *in.Bucket == "bucket" && *in.Key == "runs/graph.txt"
		})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("0 1 1\n"))}, nil).Once()

		r, err := store.Open(context.Background(), "graph.txt")
		require.NoError(t, err)
		raw, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "0 1 1\n", string(raw))
	})

	t.Run("NotFound", func(t *testing.T) {
		c.On("GetObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchKey{}).Once()

		_, err := store.Open(context.Background(), "missing")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("OtherError", func(t *testing.T) {
		boom := errors.New("throttled")
		c.On("GetObject", mock.Anything, mock.Anything).Return(nil, boom).Once()

		_, err := store.Open(context.Background(), "x")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, blobstore.ErrNotFound)
	})

	c.AssertExpectations(t)
}

func TestStore_CreateCommits(t *testing.T) {
	c := new(mockClient)
	store := NewStore(c, "bucket", "")

	var got bytes.Buffer
	c.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return *in.Bucket == "bucket" && *in.Key == "out.txt"
	})).Run(func(args mock.Arguments) {
		_, _ = io.Copy(&got, args.Get(1).(*s3.PutObjectInput).Body)
	}).Return(&s3.PutObjectOutput{}, nil).Once()

	w, err := store.Create(context.Background(), "out.txt")
	require.NoError(t, err)
	_, err = io.WriteString(w, "2.0e+00\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, "2.0e+00\n", got.String())
	assert.ErrorIs(t, w.Close(), blobstore.ErrClosed)
	assert.NoError(t, w.Abort())
	c.AssertExpectations(t)
}

func TestStore_CreateUploadError(t *testing.T) {
	c := new(mockClient)
	store := NewStore(c, "bucket", "")

	boom := errors.New("denied")
	c.On("PutObject", mock.Anything, mock.Anything).Return(nil, boom).Once()

	w, err := store.Create(context.Background(), "out.txt")
	require.NoError(t, err)
	_, _ = io.WriteString(w, "x")
	assert.Error(t, w.Close())
}

func TestStore_Abort(t *testing.T) {
	c := new(mockClient)
	store := NewStore(c, "bucket", "")

	w, err := store.Create(context.Background(), "out.txt")
	require.NoError(t, err)
	require.NoError(t, w.Abort())

	_, err = w.Write([]byte("late"))
	assert.ErrorIs(t, err, blobstore.ErrClosed)
	assert.ErrorIs(t, w.Close(), blobstore.ErrClosed)
	c.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
}
