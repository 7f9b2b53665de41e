package rate

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces login counters in Redis.
const DefaultRedisPrefix = "bl"

// RedisLimiter enforces the same fixed window as [MemoryLimiter] using Redis
// counters, so every instance sharing the Redis shares one budget per client.
type RedisLimiter struct {
	redis  redis.UniversalClient
	prefix string
	config Config
}

// NewRedis creates a [RedisLimiter]. Window expiry is delegated to Redis TTLs;
// Config.Clock is ignored.
func NewRedis(client redis.UniversalClient, prefix string, cfg Config) *RedisLimiter {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisLimiter{
		redis:  client,
		prefix: prefix,
		config: cfg.withDefaults(),
	}
}

// IsLimited reports whether the live counter for clientID reached the threshold.
func (l *RedisLimiter) IsLimited(ctx context.Context, clientID string) (bool, error) {
	count, err := l.redis.Get(ctx, l.key(clientID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return count >= int64(l.config.MaxAttempts), nil
}

// RecordAttempt increments the counter, starting the window on the first hit.
func (l *RedisLimiter) RecordAttempt(ctx context.Context, clientID string) error {
	key := l.key(clientID)

	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	// Fixed-window semantics: set TTL only for the first hit in the window.
	if count == 1 {
		if err := l.redis.PExpire(ctx, key, l.config.Window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}

	return nil
}

// Attempts returns the live counter for clientID. Missing keys return zero.
func (l *RedisLimiter) Attempts(ctx context.Context, clientID string) (int, error) {
	count, err := l.redis.Get(ctx, l.key(clientID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if count < 0 {
		return 0, nil
	}
	return int(count), nil
}

func (l *RedisLimiter) key(clientID string) string {
	return l.prefix + ":" + clientID
}
