// Package sqlstore persists the board document in a SQL table:
//
//	board(id, data, updated_at)
//
// Only the newest row is read or written. Supported dialects are SQLite
// (modernc.org/sqlite), Postgres (pgx stdlib) and MySQL
// (go-sql-driver/mysql); the binaries import the drivers.
package sqlstore
