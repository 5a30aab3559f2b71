// Package localstore implements the durable local key-value storage the
// cart persists itself into, backed by a gocloud.dev blob bucket. In
// production the bucket is a directory on disk; tests use an in-memory
// bucket.
package localstore

import (
	"context"

	"lanche/config"
	"lanche/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Store implements repository.CartStorage over a blob bucket. Each key
// maps to one blob that is overwritten wholesale on every save.
type Store struct {
	bucket *blob.Bucket
}

// Params defines the dependencies for the file-backed store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens a file-backed store rooted at the configured data path,
// creating the directory if needed. The bucket is closed on shutdown.
func New(params Params) (repository.CartStorage, error) {
	bucket, err := fileblob.OpenBucket(params.Config.Cart.DataPath, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open storage at %s", params.Config.Cart.DataPath)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &Store{bucket: bucket}, nil
}

// NewWithBucket wraps an already opened bucket. The caller keeps ownership
// of the bucket's lifetime.
func NewWithBucket(bucket *blob.Bucket) *Store {
	return &Store{bucket: bucket}
}

// Load reads the document stored under key.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrSlotNotFound
		}

		return nil, errors.Wrapf(err, "failed to read storage slot %s", key)
	}

	return data, nil
}

// Save overwrites the document stored under key.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write storage slot %s", key)
	}

	return nil
}
