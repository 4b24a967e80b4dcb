package export

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"fleetplan/config"
	"fleetplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

// StoreParams holds dependencies for the artifact store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
	url    string
	prefix string
}

type noopStore struct{}

// NewArtifactStore opens the bucket named by export.bucketUrl. Without a
// bucket URL artifacts are not persisted.
func NewArtifactStore(params StoreParams) (service.ArtifactStore, error) {
	cfg := params.Config.Export
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Artifact export disabled, export.bucketUrl is empty")

		return noopStore{}, nil
	}

	store, err := OpenBlobStore(context.Background(), cfg.BucketURL, cfg.Prefix)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	params.Logger.Info("Artifact store ready", slog.String("bucket", cfg.BucketURL))

	return store, nil
}

// OpenBlobStore opens a gocloud bucket URL such as file:///var/lib/fleetplan,
// gs://bucket or mem://.
func OpenBlobStore(ctx context.Context, bucketURL, prefix string) (*blobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &blobStore{
		bucket: bucket,
		url:    strings.TrimSuffix(bucketURL, "/"),
		prefix: prefix,
	}, nil
}

func (s *blobStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	fullKey := path.Join(s.prefix, key)
	if err := s.bucket.WriteAll(ctx, fullKey, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "write %s", fullKey)
	}

	return s.url + "/" + fullKey, nil
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	fullKey := path.Join(s.prefix, key)
	data, err := s.bucket.ReadAll(ctx, fullKey)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", fullKey)
	}

	return data, nil
}

// Close releases the bucket.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (noopStore) Put(context.Context, string, string, []byte) (string, error) {
	return "", nil
}

func (noopStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("artifact export is disabled")
}
