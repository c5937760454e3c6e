package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func validTodo(t *testing.T) todo.Todo {
	t.Helper()
	loc := newCodec(t).Location()
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, loc)
	due := time.Date(2024, 1, 31, 10, 0, 0, 0, loc)
	pattern := todo.RecurrenceMonthly
	return todo.Todo{
		ID:                1,
		Title:             "Pay rent",
		DueDate:           &due,
		Priority:          todo.PriorityHigh,
		IsRecurring:       true,
		RecurrencePattern: &pattern,
		ReminderMinutes:   intPtr(60),
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	codec := newCodec(t)

	tests := []struct {
		name   string
		todo   func(t *testing.T) todo.Todo
		verify func(t *testing.T, got dto.TodoResponse)
	}{
		{
			name: "maps all fields correctly",
			todo: validTodo,
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if got.ID != 1 {
					t.Errorf("ID = %d, want 1", got.ID)
				}
				if got.Title != "Pay rent" {
					t.Errorf("Title = %q, want %q", got.Title, "Pay rent")
				}
				if got.Priority != "high" {
					t.Errorf("Priority = %q, want %q", got.Priority, "high")
				}
				if got.DueDate == nil || *got.DueDate != "2024-01-31T10:00:00.000+08:00" {
					t.Errorf("DueDate = %v, want 2024-01-31T10:00:00.000+08:00", got.DueDate)
				}
				if got.RecurrencePattern == nil || *got.RecurrencePattern != "monthly" {
					t.Errorf("RecurrencePattern = %v, want monthly", got.RecurrencePattern)
				}
				if got.CreatedAt != "2024-01-10T09:00:00.000+08:00" {
					t.Errorf("CreatedAt = %q, want 2024-01-10T09:00:00.000+08:00", got.CreatedAt)
				}
			},
		},
		{
			name: "absent optionals stay nil",
			todo: func(t *testing.T) todo.Todo {
				t.Helper()
				td := validTodo(t)
				td.DueDate = nil
				td.RecurrencePattern = nil
				td.ReminderMinutes = nil
				td.IsRecurring = false
				return td
			},
			verify: func(t *testing.T, got dto.TodoResponse) {
				t.Helper()
				if got.DueDate != nil || got.RecurrencePattern != nil || got.ReminderMinutes != nil {
					t.Errorf("optionals = %v %v %v, want all nil", got.DueDate, got.RecurrencePattern, got.ReminderMinutes)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := tt.todo(t)
			tt.verify(t, dto.ToTodoResponse(&td, codec))
		})
	}
}

func TestTodoResponse_NullsSerialized(t *testing.T) {
	t.Parallel()

	codec := newCodec(t)
	td := validTodo(t)
	td.DueDate = nil

	data, err := json.Marshal(dto.ToTodoResponse(&td, codec))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	v, ok := raw["due_date"]
	if !ok {
		t.Fatal("due_date key missing, want explicit null")
	}
	if v != nil {
		t.Errorf("due_date = %v, want null", v)
	}
}

func TestToTodoListResponse(t *testing.T) {
	t.Parallel()

	codec := newCodec(t)
	done := validTodo(t)
	done.ID = 2
	done.Completed = true
	open := validTodo(t)

	g := todo.Groups{
		All:       []todo.Todo{open, done},
		Overdue:   []todo.Todo{},
		Pending:   []todo.Todo{open},
		Completed: []todo.Todo{done},
	}

	got := dto.ToTodoListResponse(&g, codec)

	if got.Count != 2 || len(got.Todos) != 2 {
		t.Errorf("Count = %d, len(Todos) = %d, want 2", got.Count, len(got.Todos))
	}
	if got.Overdue == nil || len(got.Overdue) != 0 {
		t.Errorf("Overdue = %v, want empty non-nil slice", got.Overdue)
	}
	if len(got.Pending) != 1 || got.Pending[0].ID != 1 {
		t.Errorf("Pending = %+v, want todo 1", got.Pending)
	}
	if len(got.Completed) != 1 || got.Completed[0].ID != 2 {
		t.Errorf("Completed = %+v, want todo 2", got.Completed)
	}
}

func TestToUpdateTodoResponse(t *testing.T) {
	t.Parallel()

	codec := newCodec(t)
	parent := validTodo(t)
	parent.Completed = true
	next := validTodo(t)
	next.ID = 7

	tests := []struct {
		name     string
		result   ports.UpdateResult
		wantNext bool
	}{
		{name: "no successor", result: ports.UpdateResult{Todo: parent, Changed: true}},
		{name: "with successor", result: ports.UpdateResult{Todo: parent, Successor: &next, Changed: true}, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToUpdateTodoResponse(&tt.result, codec)

			if !got.Completed {
				t.Error("Completed = false, want true")
			}
			if (got.NextOccurrence != nil) != tt.wantNext {
				t.Fatalf("NextOccurrence = %v, want present %v", got.NextOccurrence, tt.wantNext)
			}
			if tt.wantNext && got.NextOccurrence.ID != 7 {
				t.Errorf("NextOccurrence.ID = %d, want 7", got.NextOccurrence.ID)
			}
		})
	}
}

func TestUpdateTodoResponse_OmitsNextOccurrence(t *testing.T) {
	t.Parallel()

	codec := newCodec(t)
	td := validTodo(t)

	data, err := json.Marshal(dto.ToUpdateTodoResponse(&ports.UpdateResult{Todo: td}, codec))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if _, ok := raw["next_occurrence"]; ok {
		t.Error("next_occurrence present, want omitted")
	}
	if raw["title"] != "Pay rent" {
		t.Errorf("title = %v, want embedded todo fields at top level", raw["title"])
	}
}
