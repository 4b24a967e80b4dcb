// Package cache keeps computed distance matrices in Redis so repeated plans
// over the same stops skip the haversine pass.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"fleetplan/config"
	"fleetplan/internal/domain/entity"
	"fleetplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "fleetplan:matrix:"

type redisMatrixCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

type noopMatrixCache struct{}

// Params holds dependencies for the matrix cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis backed cache, or a cache that never hits when
// cache.redisAddr is empty.
func New(params Params) service.MatrixCache {
	cfg := params.Config.Cache
	if cfg == nil || cfg.RedisAddr == "" {
		params.Logger.Info("Matrix cache disabled")

		return noopMatrixCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})
	params.Logger.Info("Matrix cache enabled", slog.String("addr", cfg.RedisAddr))

	return NewRedisMatrixCache(client, cfg.TTL, params.Logger)
}

// NewRedisMatrixCache wraps an existing client.
func NewRedisMatrixCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.MatrixCache {
	return &redisMatrixCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisMatrixCache) Get(ctx context.Context, coords []entity.Coordinate) (entity.DistanceMatrix, bool, error) {
	raw, err := c.client.Get(ctx, Key(coords)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "read matrix cache")
	}

	var matrix entity.DistanceMatrix
	if err := json.Unmarshal(raw, &matrix); err != nil {
		return nil, false, errors.Wrap(err, "decode cached matrix")
	}
	if matrix.Size() != len(coords) {
		c.logger.Warn("Discarding cached matrix with wrong size",
			slog.Int("expected", len(coords)),
			slog.Int("actual", matrix.Size()),
		)

		return nil, false, nil
	}

	return matrix, true, nil
}

func (c *redisMatrixCache) Set(ctx context.Context, coords []entity.Coordinate, matrix entity.DistanceMatrix) error {
	raw, err := json.Marshal(matrix)
	if err != nil {
		return errors.Wrap(err, "encode matrix")
	}
	if err := c.client.Set(ctx, Key(coords), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "write matrix cache")
	}

	return nil
}

// Key derives the cache key from the ordered coordinate list.
func Key(coords []entity.Coordinate) string {
	h := sha256.New()
	buf := make([]byte, 0, 64)
	for _, c := range coords {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, c.Lat, 'g', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, c.Lon, 'g', -1, 64)
		buf = append(buf, ';')
		h.Write(buf)
	}

	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

func (noopMatrixCache) Get(context.Context, []entity.Coordinate) (entity.DistanceMatrix, bool, error) {
	return nil, false, nil
}

func (noopMatrixCache) Set(context.Context, []entity.Coordinate, entity.DistanceMatrix) error {
	return nil
}
