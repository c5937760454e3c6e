package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
)

// todoColumns is the select list shared by every read. Its order matches
// row.dest.
const todoColumns = `id, title, completed, due_date, priority, is_recurring,
	recurrence_pattern, reminder_minutes, created_at, updated_at`

// timeCodec renders and reads the persisted timestamp string.
type timeCodec interface {
	Format(t time.Time) string
	Parse(s string) (time.Time, error)
}

// row mirrors the todos table. Nullable columns use the sql.Null* wrappers
// and timestamps stay in their stored string form until translated.
type row struct {
	ID                int64
	Title             string
	Completed         bool
	DueDate           sql.NullString
	Priority          string
	IsRecurring       bool
	RecurrencePattern sql.NullString
	ReminderMinutes   sql.NullInt64
	CreatedAt         string
	UpdatedAt         string
}

// dest returns scan destinations in todoColumns order.
func (r *row) dest() []any {
	return []any{
		&r.ID, &r.Title, &r.Completed, &r.DueDate, &r.Priority, &r.IsRecurring,
		&r.RecurrencePattern, &r.ReminderMinutes, &r.CreatedAt, &r.UpdatedAt,
	}
}

// toDomainTodo converts a scanned row to a domain Todo. Timestamps are
// parsed into the codec's zone.
func toDomainTodo(r *row, codec timeCodec) (todo.Todo, error) {
	createdAt, err := codec.Parse(r.CreatedAt)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("row %d created_at: %w", r.ID, err)
	}
	updatedAt, err := codec.Parse(r.UpdatedAt)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("row %d updated_at: %w", r.ID, err)
	}

	t := todo.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Completed:   r.Completed,
		Priority:    todo.Priority(r.Priority),
		IsRecurring: r.IsRecurring,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	if r.DueDate.Valid {
		due, err := codec.Parse(r.DueDate.String)
		if err != nil {
			return todo.Todo{}, fmt.Errorf("row %d due_date: %w", r.ID, err)
		}
		t.DueDate = &due
	}
	if r.RecurrencePattern.Valid {
		p := todo.Recurrence(r.RecurrencePattern.String)
		t.RecurrencePattern = &p
	}
	if r.ReminderMinutes.Valid {
		m := int(r.ReminderMinutes.Int64)
		t.ReminderMinutes = &m
	}

	return t, nil
}

// toRow converts a domain Todo to its column values. The ID is copied but
// ignored on insert.
func toRow(t *todo.Todo, codec timeCodec) row {
	r := row{
		ID:          t.ID,
		Title:       t.Title,
		Completed:   t.Completed,
		Priority:    t.Priority.String(),
		IsRecurring: t.IsRecurring,
		CreatedAt:   codec.Format(t.CreatedAt),
		UpdatedAt:   codec.Format(t.UpdatedAt),
	}

	if t.DueDate != nil {
		r.DueDate = sql.NullString{String: codec.Format(*t.DueDate), Valid: true}
	}
	if t.RecurrencePattern != nil {
		r.RecurrencePattern = sql.NullString{String: t.RecurrencePattern.String(), Valid: true}
	}
	if t.ReminderMinutes != nil {
		r.ReminderMinutes = sql.NullInt64{Int64: int64(*t.ReminderMinutes), Valid: true}
	}

	return r
}
