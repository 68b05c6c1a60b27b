// Package redis stores like counters in Redis so several site instances can share them.
// Each counter is a plain string key holding an integer.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces counter keys.
const DefaultPrefix = "portfolio:likes:"

// LikeStore is a likes.Store backed by Redis.
type LikeStore struct {
	client *redis.Client
	prefix string
}

// NewLikeStore creates a Redis-backed like store. An empty prefix uses DefaultPrefix.
func NewLikeStore(client *redis.Client, prefix string) *LikeStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &LikeStore{client: client, prefix: prefix}
}

// adjustScript applies a delta floored at zero. A decrement of a missing key
// leaves it missing and returns 0.
//
// KEYS[1] = counter key
// ARGV[1] = delta
var adjustScript = redis.NewScript(`
local delta = tonumber(ARGV[1])
local cur = redis.call("GET", KEYS[1])
if not cur then
    if delta <= 0 then
        return 0
    end
    redis.call("SET", KEYS[1], delta)
    return delta
end
local n = tonumber(cur) + delta
if n < 0 then
    n = 0
end
redis.call("SET", KEYS[1], n)
return n
`)

// LikeCount returns the counter for key, zero when absent.
func (s *LikeStore) LikeCount(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Get(ctx, s.redisKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis: get likes: %w", err)
	}
	return n, nil
}

// AdjustLikes atomically applies delta to the counter for key.
func (s *LikeStore) AdjustLikes(ctx context.Context, key string, delta int64) (int64, error) {
	n, err := adjustScript.Run(ctx, s.client, []string{s.redisKey(key)}, delta).Int64()
	if err != nil {
		return 0, fmt.Errorf("redis: adjust likes: %w", err)
	}
	return n, nil
}

// SeedLikes sets counters for keys that have none yet.
func (s *LikeStore) SeedLikes(ctx context.Context, seed map[string]int64) error {
	if len(seed) == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	for k, v := range seed {
		pipe.SetNX(ctx, s.redisKey(k), max(v, 0), 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis: seed likes: %w", err)
	}
	return nil
}

// Ready pings the server.
func (s *LikeStore) Ready(ctx context.Context) error { return s.client.Ping(ctx).Err() }

func (s *LikeStore) redisKey(key string) string { return s.prefix + key }
