package bucket

import (
	"context"
	"encoding/json"
	"log/slog"

	"engage/config"
	"engage/internal/domain/entity"
	"engage/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

type historyRepository struct {
	bucket *blob.Bucket
	key    string
}

// NewHistoryRepository stores the whole notification history as one JSON object under key
func NewHistoryRepository(bucket *blob.Bucket, key string) repository.NotificationHistoryRepository {
	return &historyRepository{bucket: bucket, key: key}
}

// LoadHistory reads the stored history, ErrHistoryNotFound when nothing was written yet
func (r *historyRepository) LoadHistory(ctx context.Context) ([]entity.NotificationRecord, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrHistoryNotFound
		}

		return nil, errors.Wrapf(err, "read history %s", r.key)
	}

	var records []entity.NotificationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "decode history %s", r.key)
	}

	return records, nil
}

// SaveHistory replaces the stored history; the object only becomes visible once fully written
func (r *historyRepository) SaveHistory(ctx context.Context, records []entity.NotificationRecord) error {
	if records == nil {
		records = []entity.NotificationRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return errors.Wrapf(err, "write history %s", r.key)
	}

	return nil
}

// BucketParams holds dependencies for the history bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured history bucket and closes it on shutdown
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	url := params.Config.History.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open history bucket %s", url)
	}

	params.Logger.Info("Notification history bucket opened", slog.String("url", url))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

func newConfiguredHistoryRepository(bucket *blob.Bucket, cfg *config.Config) repository.NotificationHistoryRepository {
	return NewHistoryRepository(bucket, cfg.History.Key)
}

// Module provides the blob persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBucket,
		newConfiguredHistoryRepository,
	),
)
