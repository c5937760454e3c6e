// Package todo holds the todo entity together with its pure rules: the
// recurrence calculator, partial-update merging, field validation and the
// list ordering used to group todos for display.
package todo

import (
	"strings"
	"time"
)

// Todo is a single task item. DueDate, RecurrencePattern and ReminderMinutes
// are optional; a nil pointer means the value is absent.
type Todo struct {
	ID                int64
	Title             string
	Completed         bool
	DueDate           *time.Time
	Priority          Priority
	IsRecurring       bool
	RecurrencePattern *Recurrence
	ReminderMinutes   *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Clone returns a deep copy so callers can mutate the result without aliasing
// the optional fields of t.
func (t *Todo) Clone() Todo {
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	if t.RecurrencePattern != nil {
		p := *t.RecurrencePattern
		c.RecurrencePattern = &p
	}
	if t.ReminderMinutes != nil {
		m := *t.ReminderMinutes
		c.ReminderMinutes = &m
	}
	return c
}

// Normalize applies the defaults and structural rules that need no
// validation. The title is trimmed, an empty priority becomes medium and a
// non-recurring todo drops its pattern.
func (t *Todo) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if !t.IsRecurring {
		t.RecurrencePattern = nil
	}
}

// SameState reports whether t and o hold the same user-visible field values.
// Identity and timestamps are ignored.
func (t *Todo) SameState(o *Todo) bool {
	return t.Title == o.Title &&
		t.Completed == o.Completed &&
		equalTime(t.DueDate, o.DueDate) &&
		t.Priority == o.Priority &&
		t.IsRecurring == o.IsRecurring &&
		equalPtr(t.RecurrencePattern, o.RecurrencePattern) &&
		equalPtr(t.ReminderMinutes, o.ReminderMinutes)
}

// IsOverdue reports whether an incomplete todo's due date lies before now.
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
