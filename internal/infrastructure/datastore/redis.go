package datastore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps the document as a single string value under <prefix><name>.
// Values are written without expiry.
type RedisStore struct {
	log *zap.Logger
	rdb redis.Cmdable
	key string
}

func NewRedisStore(log *zap.Logger, rdb redis.Cmdable, keyPrefix, name string) (*RedisStore, error) {
	if rdb == nil {
		return nil, errors.New("nil redis client")
	}
	if name == "" {
		return nil, fmt.Errorf("invalid name: must be non-empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	key := keyPrefix + name
	return &RedisStore{log: log.Named("redis").With(zap.String("key", key)), rdb: rdb, key: key}, nil
}

func (s *RedisStore) Name() string { return s.key }

func (s *RedisStore) Read(ctx context.Context) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("get (key=%s): %w", s.key, err)
	}
	return b, nil
}

func (s *RedisStore) Write(ctx context.Context, data []byte) error {
	if err := s.rdb.Set(ctx, s.key, bcopy(data), 0).Err(); err != nil {
		return fmt.Errorf("set (key=%s): %w", s.key, err)
	}
	s.log.Debug("document written", zap.Int("bytes", len(data)))
	return nil
}
