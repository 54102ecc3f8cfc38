package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss        = errors.New("cache miss")
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// Store is the key-value contract the gateway needs from the cache engine.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key string, value string, ttl time.Duration) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("%w: get %s: %w", ErrCacheUnavailable, key, err)
	}

	return value, nil
}

func (s *RedisStore) SetEx(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: setex %s: %w", ErrCacheUnavailable, key, err)
	}

	return nil
}

// DisabledStore stands in when caching is turned off or Redis is unreachable.
type DisabledStore struct{}

func (DisabledStore) Get(context.Context, string) (string, error) {
	return "", ErrCacheMiss
}

func (DisabledStore) SetEx(context.Context, string, string, time.Duration) error {
	return nil
}
