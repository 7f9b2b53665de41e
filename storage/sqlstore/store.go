package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrEthical07/boardAuth/board"
)

// Dialect selects placeholder style and schema.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

// DriverName maps a dialect to the database/sql driver the binaries register.
func DriverName(d Dialect) (string, error) {
	switch d {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "pgx", nil
	case DialectMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}

var schemas = map[Dialect]string{
	DialectSQLite: `CREATE TABLE IF NOT EXISTS board (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	data TEXT,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	DialectPostgres: `CREATE TABLE IF NOT EXISTS board (
	id SERIAL PRIMARY KEY,
	data JSONB,
	updated_at TIMESTAMP DEFAULT NOW()
)`,
	DialectMySQL: `CREATE TABLE IF NOT EXISTS board (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	data JSON,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
}

// Store keeps the board in the newest row of a "board" table.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New wraps an open database. Call Migrate before first use.
func New(db *sql.DB, dialect Dialect) (*Store, error) {
	if _, ok := schemas[dialect]; !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	return &Store{db: db, dialect: dialect}, nil
}

// Open opens dsn with the dialect's driver, pings it and applies the schema.
// The driver must be registered by the caller's imports.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	driver, err := DriverName(dialect)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("database dsn is required")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if dialect == DialectSQLite {
		// one writer; also keeps ":memory:" databases on a single connection
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	store, _ := New(db, dialect)
	if err := store.Migrate(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Migrate creates the board table when missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemas[s.dialect]); err != nil {
		return fmt.Errorf("create board table: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) ([]board.Column, error) {
	var data sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT data FROM board ORDER BY id DESC LIMIT 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	if !data.Valid || data.String == "" || data.String == "null" {
		return nil, nil
	}

	var columns []board.Column
	if err := json.Unmarshal([]byte(data.String), &columns); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return columns, nil
}

// Save updates the newest row, inserting one when the table is empty.
func (s *Store) Save(ctx context.Context, columns []board.Column) error {
	data, err := json.Marshal(columns)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM board ORDER BY id DESC LIMIT 1").Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		q := fmt.Sprintf("INSERT INTO board (data, updated_at) VALUES (%s, %s)", s.dataParam(1), s.p(2))
		if _, err := tx.ExecContext(ctx, q, string(data), time.Now().UTC()); err != nil {
			return fmt.Errorf("insert board: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read board id: %w", err)
	default:
		q := fmt.Sprintf("UPDATE board SET data = %s, updated_at = %s WHERE id = %s", s.dataParam(1), s.p(2), s.p(3))
		if _, err := tx.ExecContext(ctx, q, string(data), time.Now().UTC(), id); err != nil {
			return fmt.Errorf("update board: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) p(index int) string {
	if s.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", index)
	}
	return "?"
}

func (s *Store) dataParam(index int) string {
	if s.dialect == DialectPostgres {
		return s.p(index) + "::jsonb"
	}
	return s.p(index)
}
