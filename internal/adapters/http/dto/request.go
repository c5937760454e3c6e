package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
)

const msgInvalidTimestamp = "must be an ISO 8601 date-time"

// TimeCodec renders and reads timestamps in the service's civil zone. The
// clock adapter implements it.
type TimeCodec interface {
	Format(t time.Time) string
	Parse(s string) (time.Time, error)
}

// Optional is a JSON field that distinguishes an omitted key (Set false)
// from an explicit null (Set true, Value nil).
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked when the key is present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// CreateTodoRequest represents the JSON body for creating a todo. Omitted
// priority defaults to medium and omitted is_recurring to false.
type CreateTodoRequest struct {
	Title             string  `json:"title"`
	DueDate           *string `json:"due_date,omitempty"`
	Priority          string  `json:"priority,omitempty"`
	IsRecurring       bool    `json:"is_recurring,omitempty"`
	RecurrencePattern *string `json:"recurrence_pattern,omitempty"`
	ReminderMinutes   *int    `json:"reminder_minutes,omitempty"`
}

// ToTodo converts the request to a domain Todo. Only the due date is checked
// here; every other rule is enforced by the service. An empty due date
// string is treated as absent.
func (r *CreateTodoRequest) ToTodo(codec TimeCodec) (*todo.Todo, error) {
	t := &todo.Todo{
		Title:           r.Title,
		Priority:        todo.Priority(r.Priority),
		IsRecurring:     r.IsRecurring,
		ReminderMinutes: r.ReminderMinutes,
	}

	if r.DueDate != nil && *r.DueDate != "" {
		due, err := codec.Parse(*r.DueDate)
		if err != nil {
			return nil, domain.NewValidationError(todo.FieldDueDate, msgInvalidTimestamp)
		}
		t.DueDate = &due
	}
	if r.RecurrencePattern != nil && *r.RecurrencePattern != "" {
		p := todo.Recurrence(*r.RecurrencePattern)
		t.RecurrencePattern = &p
	}

	return t, nil
}

// UpdateTodoRequest represents the JSON body for a partial update. Omitted
// keys keep their stored value. due_date, recurrence_pattern and
// reminder_minutes accept null to clear the value.
type UpdateTodoRequest struct {
	Title             *string          `json:"title,omitempty"`
	Completed         *bool            `json:"completed,omitempty"`
	Priority          *string          `json:"priority,omitempty"`
	IsRecurring       *bool            `json:"is_recurring,omitempty"`
	DueDate           Optional[string] `json:"due_date"`
	RecurrencePattern Optional[string] `json:"recurrence_pattern"`
	ReminderMinutes   Optional[int]    `json:"reminder_minutes"`
}

// ToPatch converts the request to a domain Patch. An empty due date or
// pattern string clears the value like null does.
func (r *UpdateTodoRequest) ToPatch(codec TimeCodec) (todo.Patch, error) {
	p := todo.Patch{
		Title:       r.Title,
		Completed:   r.Completed,
		IsRecurring: r.IsRecurring,
	}

	if r.Priority != nil {
		prio := todo.Priority(*r.Priority)
		p.Priority = &prio
	}

	if r.DueDate.Set {
		if r.DueDate.Value == nil || *r.DueDate.Value == "" {
			p.DueDate = todo.Null[time.Time]()
		} else {
			due, err := codec.Parse(*r.DueDate.Value)
			if err != nil {
				return todo.Patch{}, domain.NewValidationError(todo.FieldDueDate, msgInvalidTimestamp)
			}
			p.DueDate = todo.Some(due)
		}
	}

	if r.RecurrencePattern.Set {
		if r.RecurrencePattern.Value == nil || *r.RecurrencePattern.Value == "" {
			p.RecurrencePattern = todo.Null[todo.Recurrence]()
		} else {
			p.RecurrencePattern = todo.Some(todo.Recurrence(*r.RecurrencePattern.Value))
		}
	}

	if r.ReminderMinutes.Set {
		p.ReminderMinutes = todo.Nullable[int]{Set: true, Value: r.ReminderMinutes.Value}
	}

	return p, nil
}
