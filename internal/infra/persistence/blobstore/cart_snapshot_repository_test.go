package blobstore

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestCartSnapshotRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCartSnapshotRepository(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = repo.Close() })

	_, err := repo.LoadSnapshot(ctx, "cart")
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))

	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{"store":null,"orders":[]}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{"store":{"id":"s1"},"orders":[]}`)))

	data, err := repo.LoadSnapshot(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"store":{"id":"s1"},"orders":[]}`, string(data))

	_, err = repo.LoadSnapshot(ctx, "other")
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))

	require.NoError(t, repo.DeleteSnapshot(ctx, "cart"))
	require.NoError(t, repo.DeleteSnapshot(ctx, "cart"))

	_, err = repo.LoadSnapshot(ctx, "cart")
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))
}

func TestOpen_FileBucket(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := Open(ctx, "file://"+dir)
	require.NoError(t, err)
	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{}`)))
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, "file://"+dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	data, err := reopened.LoadSnapshot(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
