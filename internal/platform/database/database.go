// Package database opens the relational store and applies its schema.
//
// Two drivers are supported behind database/sql: "sqlite" (modernc.org/sqlite,
// pure Go, the default) and "postgres" (jackc/pgx through its stdlib adapter).
// Migrations are embedded SQL files applied with goose.
//
//	db, err := database.Open(ctx, cfg.Database)
//	err = database.Migrate(ctx, db, cfg.Database.Driver, logger)
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
)

const (
	sqliteDriverName   = "sqlite"
	postgresDriverName = "pgx"

	pingTimeout = 3 * time.Second

	// sqliteBusyTimeoutMS bounds how long a writer waits for the file lock
	// before failing with SQLITE_BUSY.
	sqliteBusyTimeoutMS = 5000
)

var errUnsupportedDriver = errors.New("unsupported database driver")

// Open connects to the configured store, applies pool settings and verifies
// the connection with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	driverName, dsn, err := driverDSN(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

// driverDSN maps a configured driver to its database/sql driver name and
// final DSN.
func driverDSN(driver, dsn string) (string, string, error) {
	switch driver {
	case config.DriverSQLite:
		return sqliteDriverName, SQLiteDSN(dsn), nil
	case config.DriverPostgres:
		return postgresDriverName, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", errUnsupportedDriver, driver)
	}
}

// SQLiteDSN adds the connection parameters the store depends on unless the
// DSN already sets them: transactions begin IMMEDIATE so a read inside a
// transaction already holds the write lock, writers wait on a busy file
// instead of failing at once, and foreign keys are enforced.
func SQLiteDSN(dsn string) string {
	path, rawQuery, _ := strings.Cut(dsn, "?")

	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		q = url.Values{}
	}

	if q.Get("_txlock") == "" {
		q.Set("_txlock", "immediate")
	}

	pragmas := strings.Join(q["_pragma"], ",")
	if !strings.Contains(pragmas, "busy_timeout") {
		q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", sqliteBusyTimeoutMS))
	}
	if !strings.Contains(pragmas, "foreign_keys") {
		q.Add("_pragma", "foreign_keys(1)")
	}

	return path + "?" + q.Encode()
}
