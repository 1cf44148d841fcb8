package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter counts requests in a fixed window shared across all service
// instances. The first hit of a window sets the TTL; the limit holds even
// when several processes increment concurrently.
type RedisLimiter struct {
	Client *redis.Client
	Limit  int64
	Window time.Duration
	Prefix string
}

// Builds a redis-backed limiter
func NewRedisLimiter(client *redis.Client, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{Client: client, Limit: limit, Window: window, Prefix: "ratelimit"}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.Prefix, key)

	count, err := l.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		if err := l.Client.Expire(ctx, redisKey, l.Window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate window: %w", err)
		}
	}
	return count <= l.Limit, nil
}
