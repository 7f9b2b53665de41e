package boardAuth

import (
	"sync"
	"testing"
	"time"

	"github.com/MrEthical07/boardAuth/password"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	testPassword = "correct-board-password"
	testAPIKey   = "AbCdEfGhIjKlMnOpQrStUvWxYz012345"
)

var (
	testHashOnce sync.Once
	testHash     string
)

// testPasswordHash is computed once per test binary at the minimum cost.
func testPasswordHash(t testing.TB) string {
	t.Helper()
	testHashOnce.Do(func() {
		h, err := password.HashBcrypt(testPassword, bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		testHash = h
	})
	return testHash
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig(t testing.TB) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Auth.PasswordHash = testPasswordHash(t)
	cfg.Auth.APIKey = testAPIKey
	cfg.Auth.AuthSecret = "00112233445566778899aabbccddeeff"
	return cfg
}

func newTestEngine(t testing.TB, cfg Config, clock *testClock, sink AuditSink) (*Engine, func()) {
	t.Helper()

	b := New().WithConfig(cfg).WithAuditSink(sink)
	if clock != nil {
		b.WithClock(clock.Now)
	}
	engine, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return engine, engine.Close
}

func newTestRedis(t testing.TB) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}
