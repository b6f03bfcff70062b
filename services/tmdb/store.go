package tmdb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Store keeps raw api response bodies shared between instances.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, b []byte, ttl time.Duration) error
}

type RedisStore struct {
	cl     *redis.Client
	prefix string
}

func NewRedisStore(cl *redis.Client) *RedisStore {
	if cl == nil {
		return nil
	}
	return &RedisStore{
		cl:     cl,
		prefix: "tmdb:",
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.cl.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, b []byte, ttl time.Duration) error {
	return errors.Wrap(s.cl.Set(ctx, s.prefix+key, b, ttl).Err(), "redis set")
}

var _ Store = (*RedisStore)(nil)
