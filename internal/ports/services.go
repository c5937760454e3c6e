package ports

import (
	"context"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
)

// TodoService defines the service port for the todo lifecycle.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// CreateTodo validates and stores a new todo and returns the stored row
	// with server-assigned fields (ID, timestamps). An empty priority defaults
	// to medium.
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// UpdateTodo merges patch onto the stored todo, validates the effective
	// result and stores it. Completing a recurring todo also stores its next
	// occurrence in the same transaction.
	// Returns domain.ErrNotFound if the todo does not exist.
	// Returns domain.ErrValidation if the effective todo fails validation.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*UpdateResult, error)

	// DeleteTodo removes a todo. No successor is spawned.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error

	// ListTodos returns every todo sorted for display and partitioned into
	// overdue, pending and completed groups.
	ListTodos(ctx context.Context) (*todo.Groups, error)
}

// UpdateResult is the outcome of UpdateTodo. Successor is set only when the
// update completed a recurring todo and spawned its next occurrence.
type UpdateResult struct {
	Todo      todo.Todo
	Successor *todo.Todo
	// Changed is false when the patch matched the stored state and nothing
	// was written.
	Changed bool
}
