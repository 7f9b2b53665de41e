package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisLimiterTest(t *testing.T) (*RedisLimiter, *miniredis.Miniredis, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewRedis(rdb, "", Config{})
	return l, mr, func() {
		rdb.Close()
		mr.Close()
	}
}

func TestRedisLimiterBlocksAfterThreshold(t *testing.T) {
	l, mr, done := newRedisLimiterTest(t)
	defer done()
	ctx := context.Background()

	for i := 0; i < DefaultMaxAttempts; i++ {
		if limited, err := l.IsLimited(ctx, "1.2.3.4"); err != nil || limited {
			t.Fatalf("attempt %d: expected not limited, got limited=%v err=%v", i+1, limited, err)
		}
		if err := l.RecordAttempt(ctx, "1.2.3.4"); err != nil {
			t.Fatalf("record attempt %d: %v", i+1, err)
		}
	}

	if limited, err := l.IsLimited(ctx, "1.2.3.4"); err != nil || !limited {
		t.Fatalf("expected limited, got limited=%v err=%v", limited, err)
	}

	mr.FastForward(DefaultWindow + time.Second)

	if limited, err := l.IsLimited(ctx, "1.2.3.4"); err != nil || limited {
		t.Fatalf("expected limit lifted after window, got limited=%v err=%v", limited, err)
	}
}

func TestRedisLimiterTTLSetOnFirstHitOnly(t *testing.T) {
	l, mr, done := newRedisLimiterTest(t)
	defer done()
	ctx := context.Background()

	_ = l.RecordAttempt(ctx, "c")
	mr.FastForward(10 * time.Minute)
	_ = l.RecordAttempt(ctx, "c")

	ttl := mr.TTL(l.key("c"))
	if ttl <= 0 || ttl > 5*time.Minute {
		t.Fatalf("expected remaining ttl from first hit (<=5m), got %s", ttl)
	}
	if got, _ := l.Attempts(ctx, "c"); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestRedisLimiterUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	l := NewRedis(rdb, "", Config{})
	mr.Close()

	if _, err := l.IsLimited(context.Background(), "c"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
	if err := l.RecordAttempt(context.Background(), "c"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
}
