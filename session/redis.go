package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MrEthical07/boardAuth/internal"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces session keys in Redis.
const DefaultRedisPrefix = "bs"

// RedisStore keeps sessions in Redis so that every instance sharing the Redis
// accepts the same tokens. Only SHA-256 hashes of tokens are written.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	config Config
}

// NewRedis creates a [RedisStore]. Expiry is enforced by Redis TTLs; Config.Clock
// is only used to stamp the stored value.
func NewRedis(client redis.UniversalClient, prefix string, cfg Config) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
		config: cfg.withDefaults(),
	}
}

// Create mints a token and stores its hash with a TTL equal to the lifetime.
func (s *RedisStore) Create(ctx context.Context) (string, error) {
	token, err := internal.NewSessionToken()
	if err != nil {
		return "", err
	}

	expires := s.config.Clock().Add(s.config.TTL).UnixMilli()
	if err := s.redis.Set(ctx, s.key(token), strconv.FormatInt(expires, 10), s.config.TTL).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return token, nil
}

// Verify reports whether the token's key still exists.
func (s *RedisStore) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	n, err := s.redis.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return n == 1, nil
}

// Sweep is a no-op: Redis evicts expired keys itself.
func (s *RedisStore) Sweep(context.Context) (int, error) {
	return 0, nil
}

func (s *RedisStore) key(token string) string {
	return s.prefix + ":" + internal.HashToken(token)
}
