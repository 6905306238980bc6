// Package cache implements the reference-data cache on Redis or process memory.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"cashmemo/internal/domain/service"
	"cashmemo/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of go-redis client methods used by redisCache.
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type redisCache struct {
	client     RedisClient
	prefix     string
	defaultTTL time.Duration
}

// NewRedisCache wraps a connected client. Values are stored as JSON.
func NewRedisCache(client RedisClient, prefix string, defaultTTL time.Duration) service.ReferenceCache {
	return &redisCache{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
	}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "redis get %s", key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "decode cached %s", key)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode cached %s", key)
	}

	return errors.Wrapf(c.client.Set(ctx, c.prefix+key, raw, ttl).Err(), "redis set %s", key)
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(c.client.Del(ctx, c.prefix+key).Err(), "redis del %s", key)
}
