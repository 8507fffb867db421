// Package migrations embeds the goose schema migrations and applies them.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"carecorner/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

const dialect = "postgres"

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Up applies every pending migration to db.
func Up(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(files)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "apply schema migrations")
	}

	if logger != nil {
		logger.InfoContext(ctx, "Schema migrations applied")
	}

	return nil
}
