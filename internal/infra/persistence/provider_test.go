package persistence

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(persistence config.PersistenceConfig) *config.Config {
	return &config.Config{Cart: &config.CartConfig{Persistence: persistence}}
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	tests := []struct {
		name string
		cfg  config.PersistenceConfig
	}{
		{
			name: "blob",
			cfg:  config.PersistenceConfig{Backend: constants.PersistenceBackendBlob, BlobURL: "mem://"},
		},
		{
			name: "sqlite",
			cfg: config.PersistenceConfig{
				Backend:    constants.PersistenceBackendSQLite,
				SQLitePath: filepath.Join(t.TempDir(), "cart.db"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := Open(ctx, testConfig(tt.cfg), logger)
			require.NoError(t, err)
			t.Cleanup(func() { _ = repo.Close() })

			require.NoError(t, repo.SaveSnapshot(ctx, "cart", []byte(`{}`)))
			data, err := repo.LoadSnapshot(ctx, "cart")
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(data))
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	_, err := Open(ctx, &config.Config{}, logger)
	assert.Error(t, err)

	_, err = Open(ctx, testConfig(config.PersistenceConfig{Backend: "redis"}), logger)
	assert.ErrorContains(t, err, "unknown persistence backend")

	_, err = Open(ctx, testConfig(config.PersistenceConfig{Backend: constants.PersistenceBackendSQLite}), logger)
	assert.ErrorContains(t, err, "sqlite path")

	_, err = Open(ctx, testConfig(config.PersistenceConfig{Backend: constants.PersistenceBackendPostgres}), logger)
	assert.ErrorContains(t, err, "postgres section")
}
