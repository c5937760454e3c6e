package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// Migrate applies every pending migration for the given driver.
func Migrate(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) error {
	dialect, dir, err := migrationSource(driver)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("opening migrations %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	if logger != nil {
		for _, r := range results {
			logger.InfoContext(ctx, "applied migration",
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
	}

	return nil
}

func migrationSource(driver string) (goose.Dialect, string, error) {
	switch driver {
	case config.DriverSQLite:
		return goose.DialectSQLite3, "migrations/sqlite", nil
	case config.DriverPostgres:
		return goose.DialectPostgres, "migrations/postgres", nil
	default:
		return "", "", fmt.Errorf("%w: %q", errUnsupportedDriver, driver)
	}
}
