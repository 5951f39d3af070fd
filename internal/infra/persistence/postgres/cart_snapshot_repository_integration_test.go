//go:build integration

package postgres

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) repository.CartSnapshotRepository {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	db, release, err := wrap(ctx, gormDB, slog.Default(), true)
	require.NoError(t, err)

	repo, err := NewCartSnapshotRepository(ctx, db, release)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestCartSnapshotRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.LoadSnapshot(ctx, "cart")
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))

	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{"store":null,"orders":[]}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{"store":{"id":"s1"},"orders":[]}`)))

	data, err := repo.LoadSnapshot(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"store":{"id":"s1"},"orders":[]}`, string(data))

	require.NoError(t, repo.DeleteSnapshot(ctx, "cart"))
	_, err = repo.LoadSnapshot(ctx, "cart")
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))
}
