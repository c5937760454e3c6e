package sqlstore_test

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/clock"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/database"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

func newTestStore(t *testing.T) (*sqlstore.Store, *clock.Clock) {
	t.Helper()

	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + filepath.Join(t.TempDir(), "todos.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(ctx, db, cfg.Driver, nil); err != nil {
		t.Fatalf("database.Migrate() error = %v", err)
	}

	clk, err := clock.New(clock.DefaultZone)
	if err != nil {
		t.Fatalf("clock.New() error = %v", err)
	}

	return sqlstore.New(db, cfg.Driver, clk, slog.Default()), clk
}

func ptr[T any](v T) *T { return &v }

func sampleTodo(clk *clock.Clock) todo.Todo {
	now := clk.Now()
	due := now.Add(48 * time.Hour)
	return todo.Todo{
		Title:             "Water plants",
		DueDate:           &due,
		Priority:          todo.PriorityHigh,
		IsRecurring:       true,
		RecurrencePattern: ptr(todo.RecurrenceWeekly),
		ReminderMinutes:   ptr(15),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestStore_InsertAndGet(t *testing.T) {
	t.Parallel()

	store, clk := newTestStore(t)
	ctx := context.Background()
	in := sampleTodo(clk)

	id, err := store.InsertTodo(ctx, &in)
	if err != nil {
		t.Fatalf("InsertTodo() error = %v", err)
	}
	if id <= 0 {
		t.Fatalf("InsertTodo() id = %d, want > 0", id)
	}

	got, err := store.GetTodo(ctx, id)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}

	in.ID = id
	if !got.SameState(&in) {
		t.Errorf("GetTodo() = %+v, want state of %+v", got, in)
	}
	if !got.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, in.CreatedAt)
	}
	if got.DueDate.Location().String() != clock.DefaultZone {
		t.Errorf("DueDate location = %s, want %s", got.DueDate.Location(), clock.DefaultZone)
	}
}

func TestStore_NullableColumns(t *testing.T) {
	t.Parallel()

	store, clk := newTestStore(t)
	ctx := context.Background()
	now := clk.Now()

	in := todo.Todo{Title: "Plain", Priority: todo.PriorityLow, CreatedAt: now, UpdatedAt: now}
	id, err := store.InsertTodo(ctx, &in)
	if err != nil {
		t.Fatalf("InsertTodo() error = %v", err)
	}

	got, err := store.GetTodo(ctx, id)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if got.DueDate != nil || got.RecurrencePattern != nil || got.ReminderMinutes != nil {
		t.Errorf("optional fields = (%v, %v, %v), want all nil",
			got.DueDate, got.RecurrencePattern, got.ReminderMinutes)
	}
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()

	store, clk := newTestStore(t)
	ctx := context.Background()
	missing := sampleTodo(clk)
	missing.ID = 404

	tests := []struct {
		name string
		call func() error
	}{
		{"get", func() error { _, err := store.GetTodo(ctx, 404); return err }},
		{"lock", func() error { _, err := store.LockTodo(ctx, 404); return err }},
		{"update", func() error { return store.UpdateTodo(ctx, &missing) }},
		{"delete", func() error { return store.DeleteTodo(ctx, 404) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	store, clk := newTestStore(t)
	ctx := context.Background()
	in := sampleTodo(clk)

	id, err := store.InsertTodo(ctx, &in)
	if err != nil {
		t.Fatalf("InsertTodo() error = %v", err)
	}

	in.ID = id
	in.Title = "Water all plants"
	in.Completed = true
	in.IsRecurring = false
	in.RecurrencePattern = nil
	in.DueDate = nil
	in.UpdatedAt = in.UpdatedAt.Add(time.Minute)

	if err := store.UpdateTodo(ctx, &in); err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}

	got, err := store.GetTodo(ctx, id)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if !got.SameState(&in) {
		t.Errorf("GetTodo() after update = %+v, want state of %+v", got, in)
	}
	if !got.UpdatedAt.Equal(in.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, in.UpdatedAt)
	}

	if err := store.DeleteTodo(ctx, id); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	if _, err := store.GetTodo(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTodo() after delete error = %v, want ErrNotFound", err)
	}
}

func TestStore_ListTodos(t *testing.T) {
	t.Parallel()

	store, clk := newTestStore(t)
	ctx := context.Background()

	empty, err := store.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("ListTodos() on empty store = %v, want empty non-nil slice", empty)
	}

	for _, title := range []string{"a", "b", "c"} {
		in := sampleTodo(clk)
		in.Title = title
		if _, err := store.InsertTodo(ctx, &in); err != nil {
			t.Fatalf("InsertTodo(%q) error = %v", title, err)
		}
	}

	todos, err := store.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("len(ListTodos()) = %d, want 3", len(todos))
	}
	for i, want := range []string{"a", "b", "c"} {
		if todos[i].Title != want {
			t.Errorf("todos[%d].Title = %q, want %q", i, todos[i].Title, want)
		}
	}
}

func TestStore_InTx(t *testing.T) {
	t.Parallel()

	errAbort := errors.New("abort")

	tests := []struct {
		name      string
		fnErr     error
		wantCount int
	}{
		{name: "commit", fnErr: nil, wantCount: 2},
		{name: "rollback", fnErr: errAbort, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, clk := newTestStore(t)
			ctx := context.Background()

			err := store.InTx(ctx, func(repo ports.TodoRepository) error {
				for range 2 {
					in := sampleTodo(clk)
					if _, err := repo.InsertTodo(ctx, &in); err != nil {
						return err
					}
				}
				return tt.fnErr
			})
			if !errors.Is(err, tt.fnErr) {
				t.Fatalf("InTx() error = %v, want %v", err, tt.fnErr)
			}

			todos, err := store.ListTodos(ctx)
			if err != nil {
				t.Fatalf("ListTodos() error = %v", err)
			}
			if len(todos) != tt.wantCount {
				t.Errorf("len(ListTodos()) = %d, want %d", len(todos), tt.wantCount)
			}
		})
	}
}

func TestStore_LockTodoInTx(t *testing.T) {
	t.Parallel()

	store, clk := newTestStore(t)
	ctx := context.Background()
	in := sampleTodo(clk)

	id, err := store.InsertTodo(ctx, &in)
	if err != nil {
		t.Fatalf("InsertTodo() error = %v", err)
	}

	err = store.InTx(ctx, func(repo ports.TodoRepository) error {
		got, err := repo.LockTodo(ctx, id)
		if err != nil {
			return err
		}
		got.Completed = true
		return repo.UpdateTodo(ctx, got)
	})
	if err != nil {
		t.Fatalf("InTx() error = %v", err)
	}

	got, err := store.GetTodo(ctx, id)
	if err != nil {
		t.Fatalf("GetTodo() error = %v", err)
	}
	if !got.Completed {
		t.Error("Completed = false after locked update, want true")
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	if got := store.Name(); got != "database" {
		t.Errorf("Name() = %q, want %q", got, "database")
	}
	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}
