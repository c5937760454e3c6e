package rediscache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
)

// entry is the cached JSON form of a todo.
type entry struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Completed         bool       `json:"completed"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Priority          string     `json:"priority"`
	IsRecurring       bool       `json:"is_recurring"`
	RecurrencePattern *string    `json:"recurrence_pattern,omitempty"`
	ReminderMinutes   *int       `json:"reminder_minutes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// snapshot is the cached list together with the generation it was read under.
type snapshot struct {
	Generation uint64  `json:"generation"`
	Todos      []entry `json:"todos"`
}

// decodeSnapshot interprets the MGET reply for the generation and list keys.
// A missing list, or one stored under an older generation, is a miss. stale
// reports the second case.
func decodeSnapshot(rawGen, rawList any) (todos []todo.Todo, gen uint64, ok, stale bool, err error) {
	gen, err = parseGeneration(rawGen)
	if err != nil {
		return nil, 0, false, false, err
	}

	s, isString := rawList.(string)
	if !isString {
		return nil, gen, false, false, nil
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(s), &snap); err != nil {
		return nil, gen, false, false, fmt.Errorf("decoding cached list: %w", err)
	}
	if snap.Generation != gen {
		return nil, gen, false, true, nil
	}
	return fromEntries(snap.Todos), gen, true, false, nil
}

// parseGeneration reads the generation counter. An absent key is generation 0.
func parseGeneration(v any) (uint64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	gen, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing list generation %q: %w", s, err)
	}
	return gen, nil
}

func toEntries(todos []todo.Todo) []entry {
	out := make([]entry, len(todos))
	for i := range todos {
		t := todos[i].Clone()
		out[i] = entry{
			ID:              t.ID,
			Title:           t.Title,
			Completed:       t.Completed,
			DueDate:         t.DueDate,
			Priority:        t.Priority.String(),
			IsRecurring:     t.IsRecurring,
			ReminderMinutes: t.ReminderMinutes,
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
		}
		if t.RecurrencePattern != nil {
			p := t.RecurrencePattern.String()
			out[i].RecurrencePattern = &p
		}
	}
	return out
}

func fromEntries(entries []entry) []todo.Todo {
	out := make([]todo.Todo, len(entries))
	for i, e := range entries {
		out[i] = todo.Todo{
			ID:              e.ID,
			Title:           e.Title,
			Completed:       e.Completed,
			DueDate:         e.DueDate,
			Priority:        todo.Priority(e.Priority),
			IsRecurring:     e.IsRecurring,
			ReminderMinutes: e.ReminderMinutes,
			CreatedAt:       e.CreatedAt,
			UpdatedAt:       e.UpdatedAt,
		}
		if e.RecurrencePattern != nil {
			p := todo.Recurrence(*e.RecurrencePattern)
			out[i].RecurrencePattern = &p
		}
	}
	return out
}
