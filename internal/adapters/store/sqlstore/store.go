// Package sqlstore is the relational storage adapter for todos. It
// implements [ports.TodoStore] over database/sql for both the SQLite and
// PostgreSQL drivers opened by the database package.
//
// Queries are written with "?" placeholders and rebound to "$n" for
// PostgreSQL. Row locking inside [Store.InTx] uses SELECT ... FOR UPDATE on
// PostgreSQL; on SQLite every transaction already begins IMMEDIATE and holds
// the database write lock.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore      = (*Store)(nil)
	_ ports.TodoRepository = (*repo)(nil)
)

// queryer is the subset of *sql.DB and *sql.Tx the repository needs.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the todo storage adapter. Outside InTx every call runs in its own
// implicit transaction.
type Store struct {
	*repo
	db     *sql.DB
	logger *slog.Logger
}

// New creates a Store on an open database. driver is the configured driver
// name ("sqlite" or "postgres") and selects the SQL dialect. codec renders
// and parses the stored timestamp strings; the clock adapter satisfies it.
func New(db *sql.DB, driver string, codec timeCodec, logger *slog.Logger) *Store {
	d := dialectFor(driver)
	return &Store{
		repo:   &repo{q: db, d: d, codec: codec},
		db:     db,
		logger: logger,
	}
}

// InTx runs fn inside one database transaction. The transaction commits when
// fn returns nil and rolls back otherwise; fn's error is returned unchanged.
func (s *Store) InTx(ctx context.Context, fn func(r ports.TodoRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStorageError("begin", err)
	}

	if err := fn(&repo{q: tx, d: s.d, codec: s.codec, inTx: true}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.ErrorContext(ctx, "rolling back transaction",
				slog.Any("error", rbErr),
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.NewStorageError("commit", err)
	}
	return nil
}

// dialect captures the driver differences the queries care about.
type dialect struct {
	numbered  bool // "$1" placeholders instead of "?"
	forUpdate bool // row locks via SELECT ... FOR UPDATE
}

func dialectFor(driver string) dialect {
	if driver == config.DriverPostgres {
		return dialect{numbered: true, forUpdate: true}
	}
	return dialect{}
}

// bind rewrites "?" placeholders for the dialect.
func (d dialect) bind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// repo implements ports.TodoRepository against a *sql.DB or a *sql.Tx.
type repo struct {
	q     queryer
	d     dialect
	codec timeCodec
	inTx  bool
}

func (r *repo) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	return r.get(ctx, "get", id, false)
}

func (r *repo) LockTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	return r.get(ctx, "lock", id, r.inTx && r.d.forUpdate)
}

func (r *repo) get(ctx context.Context, op string, id int64, forUpdate bool) (*todo.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var rw row
	if err := r.q.QueryRowContext(ctx, r.d.bind(query), id).Scan(rw.dest()...); err != nil {
		return nil, translateError(op, id, err)
	}

	t, err := toDomainTodo(&rw, r.codec)
	if err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	return &t, nil
}

func (r *repo) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+todoColumns+` FROM todos ORDER BY id`)
	if err != nil {
		return nil, domain.NewStorageError("list", err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		var rw row
		if err := rows.Scan(rw.dest()...); err != nil {
			return nil, domain.NewStorageError("list", err)
		}
		t, err := toDomainTodo(&rw, r.codec)
		if err != nil {
			return nil, domain.NewStorageError("list", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list", err)
	}

	return todos, nil
}

func (r *repo) InsertTodo(ctx context.Context, t *todo.Todo) (int64, error) {
	rw := toRow(t, r.codec)

	const query = `INSERT INTO todos (title, completed, due_date, priority, is_recurring,
		recurrence_pattern, reminder_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	var id int64
	err := r.q.QueryRowContext(ctx, r.d.bind(query),
		rw.Title, rw.Completed, rw.DueDate, rw.Priority, rw.IsRecurring,
		rw.RecurrencePattern, rw.ReminderMinutes, rw.CreatedAt, rw.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, domain.NewStorageError("insert", err)
	}
	return id, nil
}

func (r *repo) UpdateTodo(ctx context.Context, t *todo.Todo) error {
	rw := toRow(t, r.codec)

	const query = `UPDATE todos SET title = ?, completed = ?, due_date = ?, priority = ?,
		is_recurring = ?, recurrence_pattern = ?, reminder_minutes = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.q.ExecContext(ctx, r.d.bind(query),
		rw.Title, rw.Completed, rw.DueDate, rw.Priority, rw.IsRecurring,
		rw.RecurrencePattern, rw.ReminderMinutes, rw.UpdatedAt, rw.ID,
	)
	if err != nil {
		return domain.NewStorageError("update", err)
	}
	return requireAffected("update", t.ID, res)
}

func (r *repo) DeleteTodo(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, r.d.bind(`DELETE FROM todos WHERE id = ?`), id)
	if err != nil {
		return domain.NewStorageError("delete", err)
	}
	return requireAffected("delete", id, res)
}

// Name returns the identifier used when the store is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}
