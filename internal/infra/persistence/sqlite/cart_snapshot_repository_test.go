package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSnapshotRepository_InMemory(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	_, err = repo.LoadSnapshot(ctx, "cart")
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))

	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{"orders":[1]}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{"orders":[2]}`)))

	data, err := repo.LoadSnapshot(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `{"orders":[2]}`, string(data))

	require.NoError(t, repo.DeleteSnapshot(ctx, "cart"))
	require.NoError(t, repo.DeleteSnapshot(ctx, "missing"))

	_, err = repo.LoadSnapshot(ctx, "cart")
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))
}

func TestCartSnapshotRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{"store":null,"orders":[]}`)))
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	data, err := reopened.LoadSnapshot(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"store":null,"orders":[]}`, string(data))
}
