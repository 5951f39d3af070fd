package postgres

import (
	"context"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartSnapshotRepository implements the repository.CartSnapshotRepository interface.
type cartSnapshotRepository struct {
	db      *gorm.DB
	release func() error
}

// NewCartSnapshotRepository migrates the snapshot table and returns the repository.
// release is called by Close; it may be nil when the caller owns the connection.
func NewCartSnapshotRepository(ctx context.Context, db *gorm.DB, release func() error) (repository.CartSnapshotRepository, error) {
	if err := db.WithContext(ctx).AutoMigrate(&model.CartSnapshotModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate cart_snapshots")
	}

	return &cartSnapshotRepository{
		db:      db,
		release: release,
	}, nil
}

// SaveSnapshot upserts the slot in one statement.
func (repo *cartSnapshotRepository) SaveSnapshot(ctx context.Context, key string, data []byte) error {
	snapshotM := &model.CartSnapshotModel{
		Key:       key,
		Payload:   data,
		UpdatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(snapshotM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart snapshot")
	}

	return nil
}

func (repo *cartSnapshotRepository) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	var snapshotM model.CartSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("slot_key = ?", key).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart snapshot")
	}

	return snapshotM.Payload, nil
}

func (repo *cartSnapshotRepository) DeleteSnapshot(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("slot_key = ?", key).
		Delete(&model.CartSnapshotModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart snapshot")
	}

	return nil
}

func (repo *cartSnapshotRepository) Close() error {
	if repo.release == nil {
		return nil
	}

	return repo.release()
}
