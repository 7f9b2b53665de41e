package main

import (
	"context"
	"fmt"

	boardAuth "github.com/MrEthical07/boardAuth"
	"github.com/MrEthical07/boardAuth/board"
	"github.com/MrEthical07/boardAuth/storage/memory"
	"github.com/MrEthical07/boardAuth/storage/redisstore"
	"github.com/MrEthical07/boardAuth/storage/sqlstore"
	"github.com/redis/go-redis/v9"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

func openBoardStore(ctx context.Context, cfg boardAuth.BoardConfig, rdb redis.UniversalClient) (board.Store, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case boardAuth.BackendMemory:
		return memory.New(), noop, nil
	case boardAuth.BackendRedis:
		if rdb == nil {
			return nil, nil, boardAuth.ErrRedisRequired
		}
		return redisstore.New(rdb, cfg.RedisKey), noop, nil
	case boardAuth.BackendSQLite, boardAuth.BackendPostgres, boardAuth.BackendMySQL:
		store, err := sqlstore.Open(ctx, sqlstore.Dialect(cfg.Backend), cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported board backend %q", cfg.Backend)
	}
}
