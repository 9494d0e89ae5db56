package idgen

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/Siddarth2230/hashlink/pkg/hashids"
)

// DefaultCounterKey is the Redis key CounterGenerator increments.
const DefaultCounterKey = "hashlink:id_counter"

// Incrementer is the slice of the Redis client CounterGenerator needs.
type Incrementer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

type CounterGenerator struct {
	redis Incrementer
	key   string
}

func NewCounterGenerator(client Incrementer, key string) *CounterGenerator {
	if key == "" {
		key = DefaultCounterKey
	}
	return &CounterGenerator{redis: client, key: key}
}

// Next returns the next ID using Redis INCR (atomic counter). The URL is ignored.
func (g *CounterGenerator) Next(ctx context.Context, _ string) (int64, error) {
	val, err := g.redis.Incr(ctx, g.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	if val <= 0 || val > hashids.MaxNumber {
		return 0, fmt.Errorf("counter %s out of range: %d", g.key, val)
	}
	return val, nil
}
