// Package catalog reads catalog seed documents from blob storage.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"nexttoyou/config"
	domainerrors "nexttoyou/internal/domain/errors"
	"nexttoyou/internal/usecase"
	"nexttoyou/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gocloud.dev/gcerrors"
)

// maxSeedBytes bounds the seed document read into memory.
const maxSeedBytes = 32 << 20

// BlobSource loads a CatalogSeed from one object of a gocloud bucket.
type BlobSource struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewBlobSource wraps an already opened bucket.
func NewBlobSource(bucket *blob.Bucket, key string, logger *slog.Logger) *BlobSource {
	return &BlobSource{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// OpenBlobSource opens the bucket named by cfg.Catalog.BucketURL.
// The caller must Close the returned source.
func OpenBlobSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BlobSource, error) {
	if cfg.Catalog == nil || strings.TrimSpace(cfg.Catalog.BucketURL) == "" {
		return nil, errors.New("catalog.bucketUrl is required")
	}

	key := cfg.Catalog.SeedKey
	if key == "" {
		key = "seed.json"
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Catalog.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Catalog.BucketURL)
	}

	return NewBlobSource(bucket, key, logger), nil
}

// LoadSeed reads and decodes the seed object.
func (s *BlobSource) LoadSeed(ctx context.Context) (*usecase.CatalogSeed, error) {
	attrs, err := s.bucket.Attributes(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrCatalogInvalid.WithDetails("seed object " + s.key + " not found")
		}

		return nil, errors.Wrapf(err, "failed to stat seed object %s", s.key)
	}
	if attrs.Size > maxSeedBytes {
		return nil, domainerrors.ErrCatalogInvalid.WithDetails("seed object is too large")
	}

	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read seed object %s", s.key)
	}

	checksum, err := util.Checksum(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var seed usecase.CatalogSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, domainerrors.ErrCatalogInvalid.WithDetails("malformed JSON: " + err.Error())
	}

	s.logger.Info("Catalog seed loaded",
		slog.String("key", s.key),
		slog.String("size", util.FormatBytes(attrs.Size)),
		slog.String("sha256", checksum),
		slog.Int("stores", len(seed.Stores)),
	)

	return &seed, nil
}

// Close releases the bucket.
func (s *BlobSource) Close() error {
	return errors.WithStack(s.bucket.Close())
}
