package repo

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hypermap/internal/domain/tile"
	errs "hypermap/internal/errors"
	"hypermap/internal/utils"
)

type RedisMapStore struct {
	client *redis.Client
	key    string
	log    *zap.SugaredLogger
}

func NewRedisMapStore(client *redis.Client, key string, log *zap.SugaredLogger) *RedisMapStore {
	return &RedisMapStore{
		client: client,
		key:    key,
		log:    log,
	}
}

func (r *RedisMapStore) Target() string {
	return "redis key " + r.key
}

// Save stores the same bytes the file sink would write, without expiry.
func (r *RedisMapStore) Save(ctx context.Context, m tile.Map) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := utils.EncodeMap(m)
	if err != nil {
		return err
	}

	if err = r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.log.Debugw("failed to store map in redis", "key", r.key, "error", err)
		return fmt.Errorf("%w: %w", errs.ErrWriteFailed, err)
	}

	r.log.Debugw("map stored in redis", "key", r.key, "bytes", len(data))
	return nil
}

func (r *RedisMapStore) Load(ctx context.Context) (tile.Map, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecode, err)
	}
	return utils.DecodeMap(bytes.NewReader(data))
}
