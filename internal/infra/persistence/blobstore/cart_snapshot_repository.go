// Package blobstore keeps cart snapshots as objects in a gocloud.dev bucket
// (in-memory, local directory or Google Cloud Storage).
package blobstore

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	objectPrefix = "carts/"
	contentType  = "application/json"
)

// cartSnapshotRepository implements repository.CartSnapshotRepository on a bucket.
type cartSnapshotRepository struct {
	bucket *blob.Bucket
}

// Open opens the bucket behind a URL such as mem://, file:///var/lib/storefront or gs://bucket.
func Open(ctx context.Context, bucketURL string) (repository.CartSnapshotRepository, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewCartSnapshotRepository(bucket), nil
}

// NewCartSnapshotRepository wraps an already opened bucket. The repository owns it from here on.
func NewCartSnapshotRepository(bucket *blob.Bucket) repository.CartSnapshotRepository {
	return &cartSnapshotRepository{bucket: bucket}
}

// SaveSnapshot writes the object in one call; the bucket only exposes it once the write completes.
func (repo *cartSnapshotRepository) SaveSnapshot(ctx context.Context, key string, data []byte) error {
	if err := repo.bucket.WriteAll(ctx, objectKey(key), data, &blob.WriterOptions{
		ContentType: contentType,
	}); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return nil
}

func (repo *cartSnapshotRepository) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	data, err := repo.bucket.ReadAll(ctx, objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to read snapshot %s", key)
	}

	return data, nil
}

func (repo *cartSnapshotRepository) DeleteSnapshot(ctx context.Context, key string) error {
	if err := repo.bucket.Delete(ctx, objectKey(key)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete snapshot %s", key)
	}

	return nil
}

func (repo *cartSnapshotRepository) Close() error {
	return errors.WithStack(repo.bucket.Close())
}

func objectKey(key string) string {
	return objectPrefix + key + ".json"
}
