package idgen

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Siddarth2230/hashlink/pkg/hashids"
)

type fakeRedis struct {
	counters map[string]int64
	err      error
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counters[key]++
	return redis.NewIntResult(f.counters[key], nil)
}

func TestCounterGenerator_Next(t *testing.T) {
	client := &fakeRedis{counters: map[string]int64{}}
	gen := NewCounterGenerator(client, "")

	for want := int64(1); want <= 5; want++ {
		got, err := gen.Next(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, int64(5), client.counters[DefaultCounterKey])
	assert.False(t, IsDeterministic(gen))
}

func TestCounterGenerator_Errors(t *testing.T) {
	gen := NewCounterGenerator(&fakeRedis{err: errors.New("connection refused")}, "k")
	_, err := gen.Next(context.Background(), "")
	assert.ErrorContains(t, err, "connection refused")

	client := &fakeRedis{counters: map[string]int64{"k": hashids.MaxNumber}}
	gen = NewCounterGenerator(client, "k")
	_, err = gen.Next(context.Background(), "")
	assert.ErrorContains(t, err, "out of range")
}
