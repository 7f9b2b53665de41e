// Package storage groups the board.Store implementations:
//
//   - memory: process-local, lost on restart.
//   - redisstore: one JSON document under a single Redis key.
//   - sqlstore: a single-row board table on SQLite, Postgres or MySQL.
//
// Every store keeps the board as encoded JSON so what is read back is a copy
// the caller may mutate freely.
package storage
