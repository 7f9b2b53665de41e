// Command kanbanboard serves the Kanban board API.
//
// Usage:
//
//	kanbanboard [-config board.toml] [-addr :3000]
//
// Secrets come from the environment (BOARD_PASSWORD_HASH, BOARD_API_KEY,
// AUTH_SECRET); see boardauth-secrets to generate them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	boardAuth "github.com/MrEthical07/boardAuth"
	"github.com/MrEthical07/boardAuth/board"
	"github.com/MrEthical07/boardAuth/metrics/export/otel"
	"github.com/MrEthical07/boardAuth/metrics/export/prometheus"
	"github.com/MrEthical07/boardAuth/server"
	"github.com/redis/go-redis/v9"
	otelglobal "go.opentelemetry.io/otel"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Getenv); err != nil {
		log.Printf("boardAuth: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string) error {
	fs := flag.NewFlagSet("kanbanboard", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a .toml or .yaml config file")
	addr := fs.String("addr", "", "listen address (overrides config and env)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, getenv)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log.Printf("boardAuth: config %+v", cfg.Redacted())

	var rdb redis.UniversalClient
	if cfg.UsesRedis() {
		rdb = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Redis.Addr},
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
	}

	builder := boardAuth.New().WithConfig(cfg)
	if rdb != nil {
		builder.WithRedis(rdb)
	}
	if cfg.Audit.Enabled {
		builder.WithAuditSink(boardAuth.NewJSONWriterSink(os.Stdout))
	}
	engine, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	defer engine.Close()

	store, closeStore, err := openBoardStore(ctx, cfg.Board, rdb)
	if err != nil {
		return fmt.Errorf("open board store: %w", err)
	}
	defer closeStore()

	opts := server.Options{MaxBodyBytes: cfg.Server.MaxBodyBytes}
	if cfg.Metrics.Enabled {
		opts.Metrics = prometheus.NewExporter(engine).Handler()

		// No-op unless the process installs a global MeterProvider.
		exp, err := otel.NewExporter(otelglobal.GetMeterProvider().Meter("github.com/MrEthical07/boardAuth"), engine)
		if err != nil {
			return fmt.Errorf("otel exporter: %w", err)
		}
		defer exp.Close()
	}

	srv := server.New(engine, board.NewService(store, nil), opts)
	err = srv.ListenAndServe(ctx, cfg.Server)
	log.Print("boardAuth: shut down")
	return err
}

func loadConfig(path string, getenv func(string) string) (boardAuth.Config, error) {
	cfg := boardAuth.DefaultConfig()
	if path != "" {
		loaded, err := boardAuth.LoadConfigFile(path)
		if err != nil {
			return boardAuth.Config{}, err
		}
		cfg = loaded
	}
	boardAuth.ApplyEnv(&cfg, getenv)
	return cfg, nil
}
