package rate

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryLimiterBlocksAfterThreshold(t *testing.T) {
	clock := newFakeClock()
	l := NewMemory(Config{Clock: clock.Now})
	ctx := context.Background()

	for i := 0; i < DefaultMaxAttempts; i++ {
		limited, err := l.IsLimited(ctx, "1.2.3.4")
		if err != nil || limited {
			t.Fatalf("attempt %d: expected not limited, got limited=%v err=%v", i+1, limited, err)
		}
		if err := l.RecordAttempt(ctx, "1.2.3.4"); err != nil {
			t.Fatalf("record attempt %d: %v", i+1, err)
		}
	}

	limited, _ := l.IsLimited(ctx, "1.2.3.4")
	if !limited {
		t.Fatal("expected 6th attempt in window to be limited")
	}

	clock.Advance(DefaultWindow + time.Millisecond)

	limited, _ = l.IsLimited(ctx, "1.2.3.4")
	if limited {
		t.Fatal("expected limit to lift after window elapsed")
	}
}

func TestMemoryLimiterWindowBoundaryIsInclusive(t *testing.T) {
	clock := newFakeClock()
	l := NewMemory(Config{MaxAttempts: 1, Window: time.Minute, Clock: clock.Now})
	ctx := context.Background()

	_ = l.RecordAttempt(ctx, "c")
	clock.Advance(time.Minute)

	if limited, _ := l.IsLimited(ctx, "c"); !limited {
		t.Fatal("expected record to stay live exactly at resetAt")
	}

	clock.Advance(time.Nanosecond)
	if limited, _ := l.IsLimited(ctx, "c"); limited {
		t.Fatal("expected record to be stale once now exceeds resetAt")
	}
}

func TestMemoryLimiterStaleRecordIsReplaced(t *testing.T) {
	clock := newFakeClock()
	l := NewMemory(Config{Clock: clock.Now})
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = l.RecordAttempt(ctx, "c")
	}
	clock.Advance(DefaultWindow + time.Second)

	if got, _ := l.Attempts(ctx, "c"); got != 0 {
		t.Fatalf("expected stale record to read as zero, got %d", got)
	}

	_ = l.RecordAttempt(ctx, "c")
	if got, _ := l.Attempts(ctx, "c"); got != 1 {
		t.Fatalf("expected fresh window count 1, got %d", got)
	}
}

func TestMemoryLimiterClientsAreIndependent(t *testing.T) {
	l := NewMemory(Config{})
	ctx := context.Background()

	for i := 0; i < DefaultMaxAttempts; i++ {
		_ = l.RecordAttempt(ctx, "a")
	}

	if limited, _ := l.IsLimited(ctx, "a"); !limited {
		t.Fatal("expected client a limited")
	}
	if limited, _ := l.IsLimited(ctx, "b"); limited {
		t.Fatal("expected client b unaffected")
	}
}

func TestMemoryLimiterConcurrentRecordSafe(t *testing.T) {
	l := NewMemory(Config{MaxAttempts: 1000})
	ctx := context.Background()

	const goroutines = 16
	const perG = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				_ = l.RecordAttempt(ctx, "shared")
				_, _ = l.IsLimited(ctx, "shared")
			}
		}()
	}
	wg.Wait()

	if got, _ := l.Attempts(ctx, "shared"); got != goroutines*perG {
		t.Fatalf("expected %d attempts, got %d", goroutines*perG, got)
	}
}
