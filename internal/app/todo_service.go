// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

const listKey = "todos"

// Write operation names used in logs and metrics.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// TodoService implements ports.TodoService. It owns the todo lifecycle:
// validation, the merge of partial updates, and spawning the next occurrence
// when a recurring todo is completed. The read-modify-write of an update and
// the successor insert share one storage transaction.
type TodoService struct {
	store   ports.TodoStore
	clock   ports.Clock
	cache   ports.TodoListCache // nil when caching is disabled
	metrics *telemetry.Metrics  // nil when telemetry is disabled
	logger  *slog.Logger
	group   singleflight.Group

	// writes counts committed writes. A list load only refills the cache, and
	// only shares its result, with callers that saw the same count.
	writes atomic.Uint64
}

// Option configures optional TodoService collaborators.
type Option func(*TodoService)

// WithCache enables the list cache. Cache failures are logged and the
// service falls back to storage.
func WithCache(c ports.TodoListCache) Option {
	return func(s *TodoService) {
		s.cache = c
	}
}

// WithMetrics enables domain metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *TodoService) {
		s.metrics = m
	}
}

// NewTodoService creates a TodoService. A nil logger is replaced with one
// that discards output.
func NewTodoService(store ports.TodoStore, clock ports.Clock, logger *slog.Logger, opts ...Option) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &TodoService{
		store:  store,
		clock:  clock,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTodo validates and stores a new todo. Server-assigned fields in t
// (ID, timestamps) are ignored.
func (s *TodoService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", t.Title))

	now := s.clock.Now()
	candidate := t.Clone()
	if candidate.Priority == "" {
		candidate.Priority = todo.PriorityMedium
	}

	if err := todo.ValidateNew(&candidate, now); err != nil {
		s.metrics.RecordWrite(ctx, opCreate, err)
		return nil, err
	}

	candidate.Normalize()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	id, err := s.store.InsertTodo(ctx, &candidate)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			logging.Operation("CreateTodo"),
			logging.Err(err),
		)
		s.metrics.RecordWrite(ctx, opCreate, err)
		return nil, err
	}
	candidate.ID = id

	s.committed(ctx)
	s.metrics.RecordWrite(ctx, opCreate, nil)
	return &candidate, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", logging.TodoID(id))

	t, err := s.store.GetTodo(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			logging.Operation("GetTodo"),
			logging.TodoID(id),
			logging.Err(err),
		)
		return nil, err
	}
	return t, nil
}

// UpdateTodo merges patch onto the stored todo and persists the result.
//
// The stored row is locked for the whole read-modify-write. Edits are applied
// before the recurrence check, so a successor inherits the updated title,
// priority and reminder. A patch that changes nothing writes nothing and
// leaves updated_at untouched.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*ports.UpdateResult, error) {
	s.logger.InfoContext(ctx, "updating todo", logging.TodoID(id))

	var result ports.UpdateResult
	err := s.store.InTx(ctx, func(repo ports.TodoRepository) error {
		existing, err := repo.LockTodo(ctx, id)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		candidate := patch.Apply(existing)
		if err := todo.ValidateUpdate(existing, &candidate, &patch, now); err != nil {
			return err
		}
		candidate.Normalize()

		if candidate.SameState(existing) {
			result = ports.UpdateResult{Todo: *existing}
			return nil
		}

		candidate.UpdatedAt = now
		if err := repo.UpdateTodo(ctx, &candidate); err != nil {
			return err
		}
		result = ports.UpdateResult{Todo: candidate, Changed: true}

		if !todo.TriggersRecurrence(existing, &candidate) {
			return nil
		}

		next := todo.Successor(&candidate, now)
		nextID, err := repo.InsertTodo(ctx, &next)
		if err != nil {
			return fmt.Errorf("inserting next occurrence of todo %d: %w", id, err)
		}
		next.ID = nextID
		result.Successor = &next
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			logging.Operation("UpdateTodo"),
			logging.TodoID(id),
			logging.Err(err),
		)
		s.metrics.RecordWrite(ctx, opUpdate, err)
		return nil, err
	}

	if result.Changed {
		s.committed(ctx)
	}
	if result.Successor != nil {
		pattern := result.Successor.RecurrencePattern.String()
		s.logger.InfoContext(ctx, "spawned next occurrence",
			logging.TodoID(id),
			logging.NextTodoID(result.Successor.ID),
			logging.Pattern(pattern),
		)
		s.metrics.RecordSpawn(ctx, pattern)
	}
	s.metrics.RecordWrite(ctx, opUpdate, nil)
	return &result, nil
}

// DeleteTodo removes a todo. Deleting a recurring todo does not spawn a
// successor and leaves earlier occurrences alone.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo", logging.TodoID(id))

	if err := s.store.DeleteTodo(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			logging.Operation("DeleteTodo"),
			logging.TodoID(id),
			logging.Err(err),
		)
		s.metrics.RecordWrite(ctx, opDelete, err)
		return err
	}

	s.committed(ctx)
	s.metrics.RecordWrite(ctx, opDelete, nil)
	return nil
}

// ListTodos returns every todo sorted and grouped relative to the current
// time.
//
// Concurrent callers share one load, but a caller never joins a load that
// started before a write it may already have observed. The shared load does
// not inherit any one caller's cancellation; a caller whose context ends
// stops waiting without failing the others.
func (s *TodoService) ListTodos(ctx context.Context) (*todo.Groups, error) {
	s.logger.InfoContext(ctx, "listing todos")

	writes := s.writes.Load()
	key := listKey + ":" + strconv.FormatUint(writes, 10)
	ch := s.group.DoChan(key, func() (any, error) {
		return s.loadTodos(context.WithoutCancel(ctx), writes)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			logging.Operation("ListTodos"),
			logging.Err(res.Err),
		)
		return nil, res.Err
	}

	groups := todo.Group(res.Val.([]todo.Todo), s.clock.Now())
	return &groups, nil
}

// loadTodos reads the list from the cache when possible and from storage
// otherwise. The refill is skipped when a write committed since writes was
// read or when the cache generation is unknown.
func (s *TodoService) loadTodos(ctx context.Context, writes uint64) ([]todo.Todo, error) {
	var (
		gen       uint64
		cacheable bool
	)
	if s.cache != nil {
		todos, g, ok, err := s.cache.GetList(ctx)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "list cache read failed",
				logging.Operation("ListTodos"),
				logging.Err(err),
			)
		case ok:
			return todos, nil
		default:
			gen, cacheable = g, true
		}
	}

	todos, err := s.store.ListTodos(ctx)
	if err != nil {
		return nil, err
	}

	if !cacheable || s.writes.Load() != writes {
		return todos, nil
	}
	if err := s.cache.SetList(ctx, gen, todos); err != nil {
		s.logger.WarnContext(ctx, "list cache write failed",
			logging.Operation("ListTodos"),
			logging.Err(err),
		)
	}
	return todos, nil
}

// committed records a committed write: later list calls start a fresh load
// and the cached list is dropped.
func (s *TodoService) committed(ctx context.Context) {
	s.writes.Add(1)
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "list cache invalidation failed", logging.Err(err))
	}
}
