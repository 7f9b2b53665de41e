package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MrEthical07/boardAuth/board"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "board.db")
	store, err := Open(context.Background(), DialectSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteLoadEmpty(t *testing.T) {
	store := openSQLite(t)
	columns, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, columns)
}

func TestSQLiteSaveKeepsSingleRow(t *testing.T) {
	store := openSQLite(t)
	ctx := context.Background()

	first := board.DefaultColumns()
	require.NoError(t, store.Save(ctx, first))

	second := board.DefaultColumns()
	second[4].Tasks = append(second[4].Tasks, board.Task{ID: "task-1", Title: "done"})
	require.NoError(t, store.Save(ctx, second))

	var rows int
	require.NoError(t, store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM board").Scan(&rows))
	require.Equal(t, 1, rows)

	out, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "done", out[4].Tasks[0].Title)
}

func TestSQLiteNullRowReadsAsEmpty(t *testing.T) {
	store := openSQLite(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx, "INSERT INTO board (data) VALUES (NULL)")
	require.NoError(t, err)

	columns, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, columns)

	require.NoError(t, store.Save(ctx, board.DefaultColumns()))
	columns, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, columns, 5)
}

func TestSQLiteMigrateIdempotent(t *testing.T) {
	store := openSQLite(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSQLiteServiceEndToEnd(t *testing.T) {
	svc := board.NewService(openSQLite(t), nil)
	ctx := context.Background()

	_, err := svc.AddTask(ctx, &board.Task{Title: "persist me"}, "")
	require.NoError(t, err)
	_, err = svc.MoveTask(ctx, "task-1", board.ColumnComplete)
	require.NoError(t, err)

	columns, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, columns[0].Tasks)
	require.Equal(t, "persist me", columns[4].Tasks[0].Title)
}

func TestNewRejectsUnknownDialect(t *testing.T) {
	_, err := New(nil, Dialect("oracle"))
	require.Error(t, err)

	_, err = DriverName(Dialect("oracle"))
	require.Error(t, err)
}

func TestOpenRequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), DialectSQLite, " ")
	require.Error(t, err)
}

func TestPlaceholders(t *testing.T) {
	pg := &Store{dialect: DialectPostgres}
	require.Equal(t, "$2", pg.p(2))
	require.Equal(t, "$1::jsonb", pg.dataParam(1))

	my := &Store{dialect: DialectMySQL}
	require.Equal(t, "?", my.p(2))
	require.Equal(t, "?", my.dataParam(1))
}
