package ports

import (
	"context"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
)

// TodoRepository is the row-level storage contract for todos. Implemented by
// the SQL store adapter. Unexpected backend failures are returned wrapped as
// domain.ErrStorage.
type TodoRepository interface {
	// GetTodo returns the row with the given ID.
	// Returns domain.ErrNotFound if no such row exists.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// LockTodo reads the row like GetTodo and holds a write lock on it until
	// the surrounding transaction ends. Outside a transaction it behaves
	// like GetTodo.
	LockTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// ListTodos returns every row in storage order.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// InsertTodo stores a new row and returns its assigned ID.
	InsertTodo(ctx context.Context, t *todo.Todo) (int64, error)

	// UpdateTodo overwrites every mutable column of the row t.ID.
	// Returns domain.ErrNotFound if no such row exists.
	UpdateTodo(ctx context.Context, t *todo.Todo) error

	// DeleteTodo removes the row with the given ID.
	// Returns domain.ErrNotFound if no such row exists.
	DeleteTodo(ctx context.Context, id int64) error
}

// TodoStore is a TodoRepository that can group several writes into one
// atomic unit.
type TodoStore interface {
	TodoRepository

	// InTx runs fn against a repository bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(repo TodoRepository) error) error
}

// TodoListCache caches the full, unsorted todo list. Implementations must
// treat every error as a miss; the cache is never the source of truth.
//
// The cache carries a generation that Invalidate advances. A list stored
// under an older generation is never served, so a refill that raced a write
// cannot outlive it.
type TodoListCache interface {
	// GetList returns the cached list and the current generation. ok is false
	// on a miss; gen is still valid then and is what SetList expects.
	GetList(ctx context.Context) (todos []todo.Todo, gen uint64, ok bool, err error)

	// SetList stores todos as read under generation gen.
	SetList(ctx context.Context, gen uint64, todos []todo.Todo) error

	// Invalidate advances the generation and drops the cached list.
	Invalidate(ctx context.Context) error
}
