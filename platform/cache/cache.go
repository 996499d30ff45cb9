// Package cache provides a small JSON cache on Redis.
// This is part of the platform layer and contains no business logic.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"recruit_portal_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client for TTL-bound JSON values.
type Cache struct {
	rdb *redis.Client
}

// New connects to Redis using the configured URL. Returns nil (disabled cache)
// when no Redis URL is configured.
func New(cfg config.RedisConfig) (*Cache, error) {
	url := cfg.GetRedisURL()
	if url == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &Cache{rdb: redis.NewClient(opt)}, nil
}

// NewWithClient wraps an existing Redis client (used in tests).
func NewWithClient(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// GetJSON loads the value stored at key into dest.
// Returns false when the key is absent or the cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores the value at key with the given TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

// Invalidate removes the given keys. Missing keys are ignored.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
