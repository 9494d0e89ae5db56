package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrCacheMiss = errors.New("cache miss")

// RedisCache stores JSON values in Redis under a common key prefix.
type RedisCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a Redis cache. A zero ttl means 5 minutes.
func NewRedisCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisCache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get retrieves a value from Redis and unmarshals into v
func (r *RedisCache) Get(ctx context.Context, key string, v interface{}) error {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	return json.Unmarshal(data, v)
}

// Set stores a value in Redis with the cache TTL
func (r *RedisCache) Set(ctx context.Context, key string, v interface{}) error {
	return r.SetWithTTL(ctx, key, v, r.ttl)
}

// SetWithTTL stores a value with an explicit TTL, capped at the cache TTL.
func (r *RedisCache) SetWithTTL(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	if ttl <= 0 || ttl > r.ttl {
		ttl = r.ttl
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(key), data, ttl).Err()
}

// Delete removes a key from Redis
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *RedisCache) key(k string) string {
	return r.prefix + k
}
