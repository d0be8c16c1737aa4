package sqlite

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openTestDB returns a migrated database in a per-test directory.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Dial(context.Background(), filepath.Join(t.TempDir(), "autoserv.db"), newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestDial_RejectsEmptyPath(t *testing.T) {
	_, err := Dial(context.Background(), "  ", newDiscardLogger())
	require.Error(t, err)
}

func TestDial_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autoserv.db")

	first, err := Dial(context.Background(), path, newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Dial(context.Background(), path, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	var count int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM service_offerings`).Scan(&count))
	require.Equal(t, 4, count)
}

func TestDSN(t *testing.T) {
	require.Equal(t, "a.db?"+pragmas, dsn("a.db"))
	require.Equal(t, "file:a.db?mode=rwc&"+pragmas, dsn("file:a.db?mode=rwc"))
}
