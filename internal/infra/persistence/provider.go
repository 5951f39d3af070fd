// Package persistence selects the cart snapshot backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/blobstore"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Params holds dependencies for the snapshot repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCartSnapshotRepository opens the configured backend and closes it on shutdown.
func NewCartSnapshotRepository(params Params) (repository.CartSnapshotRepository, error) {
	repo, err := Open(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing cart snapshot repository")

			return repo.Close()
		},
	})

	return repo, nil
}

// Open opens the backend named by cart.persistence.backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.CartSnapshotRepository, error) {
	if cfg.Cart == nil {
		return nil, errors.New("cart section is missing from configuration")
	}
	persistence := cfg.Cart.Persistence

	switch persistence.Backend {
	case constants.PersistenceBackendBlob:
		logger.Info("Using blob cart snapshot store", slog.String("bucket_url", persistence.BlobURL))

		return blobstore.Open(ctx, persistence.BlobURL)

	case constants.PersistenceBackendSQLite:
		if persistence.SQLitePath == "" {
			return nil, errors.New("sqlite path is required for sqlite backend")
		}
		logger.Info("Using SQLite cart snapshot store", slog.String("path", persistence.SQLitePath))

		return sqlite.Open(ctx, persistence.SQLitePath)

	case constants.PersistenceBackendPostgres:
		db, release, err := postgres.Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL cart snapshot store")

		repo, err := postgres.NewCartSnapshotRepository(ctx, db, release)
		if err != nil {
			_ = release()

			return nil, err
		}

		return repo, nil

	default:
		return nil, errors.Errorf("unknown persistence backend: %s", persistence.Backend)
	}
}
