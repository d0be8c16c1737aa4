// Package sqlite is the embedded persistence backend built on modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"autoserv/config"
	"autoserv/internal/domain/lifecycle"
	"autoserv/internal/errors"
	"autoserv/internal/infra/persistence/migrations"

	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

const pragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// Dial opens the database file and applies migrations. A single connection
// serializes writers, leaving the UNIQUE constraint as the only arbiter of duplicates.
func Dial(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is empty")
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open sqlite")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to ping SQLite")
	}

	if err := migrations.UpSQLite(ctx, db, logger); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to migrate SQLite")
	}

	db.SetMaxOpenConns(1)

	return db, nil
}

// Open wires Dial into the fx lifecycle.
func Open(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	db, err := Dial(ctx, cfg.Storage.SQLite.Path, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("SQLite ready", slog.String("path", cfg.Storage.SQLite.Path))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + pragmas
}
