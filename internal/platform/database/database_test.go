package database_test

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/database"
)

func sqliteConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		DSN:             "file:" + filepath.Join(t.TempDir(), "todos.db"),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := sqliteConfig(t)

	db, err := database.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(ctx, db, cfg.Driver, nil); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// A second run finds nothing pending.
	if err := database.Migrate(ctx, db, cfg.Driver, nil); err != nil {
		t.Fatalf("Migrate() second run error = %v", err)
	}

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_todos_%'`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("querying indexes: %v", err)
	}
	if count != 3 {
		t.Errorf("todos index count = %d, want 3", count)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	cfg := sqliteConfig(t)
	cfg.Driver = "oracle"

	if _, err := database.Open(context.Background(), cfg); err == nil {
		t.Fatal("Open() error = nil, want error for unsupported driver")
	}
}

func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		dsn         string
		wantTxLock  string
		wantPragmas []string
	}{
		{
			name:        "bare path",
			dsn:         "file:todos.db",
			wantTxLock:  "immediate",
			wantPragmas: []string{"busy_timeout(5000)", "foreign_keys(1)"},
		},
		{
			name:        "existing txlock kept",
			dsn:         "file:todos.db?_txlock=exclusive",
			wantTxLock:  "exclusive",
			wantPragmas: []string{"busy_timeout(5000)", "foreign_keys(1)"},
		},
		{
			name:        "existing busy timeout kept",
			dsn:         "file:todos.db?_pragma=busy_timeout(100)",
			wantTxLock:  "immediate",
			wantPragmas: []string{"busy_timeout(100)", "foreign_keys(1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := database.SQLiteDSN(tt.dsn)
			path, rawQuery, _ := strings.Cut(got, "?")
			if path != "file:todos.db" {
				t.Errorf("path = %q, want %q", path, "file:todos.db")
			}

			q, err := url.ParseQuery(rawQuery)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", rawQuery, err)
			}
			if q.Get("_txlock") != tt.wantTxLock {
				t.Errorf("_txlock = %q, want %q", q.Get("_txlock"), tt.wantTxLock)
			}
			if got := strings.Join(q["_pragma"], ","); got != strings.Join(tt.wantPragmas, ",") {
				t.Errorf("_pragma = %q, want %q", got, tt.wantPragmas)
			}
		})
	}
}
