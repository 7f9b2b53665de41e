package rate

import "errors"

// ErrRedisUnavailable wraps every Redis failure surfaced by [RedisLimiter].
var ErrRedisUnavailable = errors.New("redis unavailable")
