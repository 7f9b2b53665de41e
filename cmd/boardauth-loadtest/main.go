// Command boardauth-loadtest measures session verification and login
// throttling under concurrency.
//
// It seeds sessions through a boardAuth Engine, then runs two phases:
// verify (random X-Session-Token checks) and login (wrong-password logins
// spread over many client ids, exercising the rate limiter). With
// -backend redis and no address, an embedded miniredis is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	boardAuth "github.com/MrEthical07/boardAuth"
	"github.com/MrEthical07/boardAuth/password"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

type options struct {
	sessions    int
	concurrency int
	ops         int
	clients     int
	rps         float64
	backend     string
	redisAddr   string
}

func main() {
	var opts options
	flag.IntVar(&opts.sessions, "sessions", 10000, "number of sessions to seed")
	flag.IntVar(&opts.concurrency, "concurrency", 64, "number of concurrent workers")
	flag.IntVar(&opts.ops, "ops", 100000, "operations per phase")
	flag.IntVar(&opts.clients, "clients", 500, "distinct client ids in the login phase")
	flag.Float64Var(&opts.rps, "rps", 0, "pace each phase to this many ops/sec (0 = unpaced)")
	flag.StringVar(&opts.backend, "backend", boardAuth.BackendMemory, "limiter and session backend: memory or redis")
	flag.StringVar(&opts.redisAddr, "redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
	flag.Parse()

	if opts.sessions <= 0 || opts.concurrency <= 0 || opts.ops <= 0 || opts.clients <= 0 {
		fmt.Fprintln(os.Stderr, "sessions, concurrency, ops and clients must be > 0")
		os.Exit(2)
	}

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "loadtest: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	engine, cleanup, err := buildEngine(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	tokens := make([]string, opts.sessions)
	fmt.Printf("seeding %d sessions...\n", opts.sessions)
	startSeed := time.Now()
	for i := range tokens {
		tok, err := engine.CreateSessionToken(ctx)
		if err != nil {
			return fmt.Errorf("seed session: %w", err)
		}
		tokens[i] = tok
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	verifyStats := runPhase(ctx, opts.ops, opts.concurrency, newPacer(opts.rps), func(r *rand.Rand, _ int) error {
		if !engine.VerifySessionToken(ctx, tokens[r.Intn(len(tokens))]) {
			return errors.New("seeded session rejected")
		}
		return nil
	})

	loginStats := runPhase(ctx, opts.ops, opts.concurrency, newPacer(opts.rps), func(_ *rand.Rand, i int) error {
		_, err := engine.Login(ctx, fmt.Sprintf("client-%d", i%opts.clients), "not-the-password")
		if errors.Is(err, boardAuth.ErrInvalidPassword) || errors.Is(err, boardAuth.ErrLoginRateLimited) {
			return nil
		}
		return err
	})

	fmt.Println("---- results ----")
	printStats("verify", verifyStats)
	printStats("login", loginStats)

	snap := engine.MetricsSnapshot()
	fmt.Printf("login: rejected=%d rate_limited=%d backend_errors=%d\n",
		snap.Counters[boardAuth.MetricLoginFailure],
		snap.Counters[boardAuth.MetricLoginRateLimited],
		snap.Counters[boardAuth.MetricBackendError],
	)
	return nil
}

func buildEngine(opts options) (*boardAuth.Engine, func(), error) {
	hash, err := password.HashBcrypt("loadtest-password", bcrypt.MinCost)
	if err != nil {
		return nil, nil, err
	}

	cfg := boardAuth.DefaultConfig()
	cfg.Auth.PasswordHash = hash
	cfg.Session.Backend = opts.backend
	cfg.RateLimit.Backend = opts.backend
	cfg.Metrics.EnableLatencyHistograms = false

	builder := boardAuth.New().WithConfig(cfg)
	cleanup := func() {}

	if opts.backend == boardAuth.BackendRedis {
		client, closeRedis, err := dialRedis(opts.redisAddr)
		if err != nil {
			return nil, nil, err
		}
		builder.WithRedis(client)
		cleanup = closeRedis
	}

	engine, err := builder.Build()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return engine, func() {
		engine.Close()
		cleanup()
	}, nil
}

func dialRedis(addr string) (redis.UniversalClient, func(), error) {
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}
	if addr != "" {
		client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{addr}})
		fmt.Printf("using redis at %s\n", addr)
		return client, func() { _ = client.Close() }, nil
	}

	mr, err := miniredis.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("start miniredis: %w", err)
	}
	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{mr.Addr()}})
	fmt.Printf("using miniredis at %s\n", mr.Addr())
	return client, func() {
		_ = client.Close()
		mr.Close()
	}, nil
}

func newPacer(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	burst := int(rps / 10)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
