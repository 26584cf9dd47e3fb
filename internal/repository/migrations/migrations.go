// Package migrations embeds the PostgreSQL schema and runs it with goose.
//
// The SQL files live next to this package and are compiled into the binary,
// so `plantctl migrate up` and the server's auto-migrate need no files on
// disk. SQLite does not go through goose; repository/sqlite applies its own
// schema when it opens.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

// Postgres returns the migration files rooted at their directory, as goose
// expects.
func Postgres() fs.FS {
	sub, err := fs.Sub(postgresFS, "postgres")
	if err != nil {
		// The embed pattern above guarantees the directory exists.
		panic(err)
	}
	return sub
}

// NewProvider returns a goose provider over db. goose needs database/sql,
// so callers open db with the pgx stdlib driver.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, Postgres())
	if err != nil {
		return nil, fmt.Errorf("migrations: goose new provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration and logs each one.
func Up(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	provider, err := NewProvider(db)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrations: goose up: %w", err)
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	provider, err := NewProvider(db)
	if err != nil {
		return err
	}
	result, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrations: goose down: %w", err)
	}
	logger.Info("migration rolled back", slog.Int64("version", result.Source.Version))
	return nil
}

// Status describes one migration for `plantctl migrate status`.
type Status struct {
	Version int64
	Path    string
	Applied bool
}

// Statuses reports which embedded migrations have been applied.
func Statuses(ctx context.Context, db *sql.DB) ([]Status, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}
	raw, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations: goose status: %w", err)
	}
	out := make([]Status, 0, len(raw))
	for _, s := range raw {
		out = append(out, Status{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
