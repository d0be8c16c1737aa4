// Package migrations embeds the goose SQL migrations for every SQL backend.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"autoserv/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Up applies pending migrations for dialect. The migration set is chosen by dir.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string, logger *slog.Logger) error {
	fsys, err := fs.Sub(files, dir)
	if err != nil {
		return errors.Wrapf(err, "migrations directory %q", dir)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return errors.Wrap(err, "goose.NewProvider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	if logger != nil {
		for _, res := range results {
			logger.Info("Applied migration",
				slog.String("dialect", string(dialect)),
				slog.Int64("version", res.Source.Version),
				slog.Duration("duration", res.Duration),
			)
		}
	}

	return nil
}

// UpPostgres applies the PostgreSQL migration set.
func UpPostgres(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return Up(ctx, db, goose.DialectPostgres, "postgres", logger)
}

// UpSQLite applies the SQLite migration set.
func UpSQLite(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return Up(ctx, db, goose.DialectSQLite3, "sqlite", logger)
}
