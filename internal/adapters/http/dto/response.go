// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

// TodoResponse represents a single todo in HTTP responses. Timestamps use
// the canonical civil-zone form.
type TodoResponse struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	Completed         bool    `json:"completed"`
	DueDate           *string `json:"due_date"`
	Priority          string  `json:"priority"`
	IsRecurring       bool    `json:"is_recurring"`
	RecurrencePattern *string `json:"recurrence_pattern"`
	ReminderMinutes   *int    `json:"reminder_minutes"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo, codec TimeCodec) TodoResponse {
	resp := TodoResponse{
		ID:              t.ID,
		Title:           t.Title,
		Completed:       t.Completed,
		Priority:        t.Priority.String(),
		IsRecurring:     t.IsRecurring,
		ReminderMinutes: t.ReminderMinutes,
		CreatedAt:       codec.Format(t.CreatedAt),
		UpdatedAt:       codec.Format(t.UpdatedAt),
	}
	if t.DueDate != nil {
		due := codec.Format(*t.DueDate)
		resp.DueDate = &due
	}
	if t.RecurrencePattern != nil {
		p := t.RecurrencePattern.String()
		resp.RecurrencePattern = &p
	}
	return resp
}

// TodoListResponse is the sorted list of every todo plus its partition into
// overdue, pending and completed groups.
type TodoListResponse struct {
	Todos     []TodoResponse `json:"todos"`
	Overdue   []TodoResponse `json:"overdue"`
	Pending   []TodoResponse `json:"pending"`
	Completed []TodoResponse `json:"completed"`
	Count     int            `json:"count"`
}

// ToTodoListResponse converts grouped todos to an HTTP list response DTO.
func ToTodoListResponse(g *todo.Groups, codec TimeCodec) TodoListResponse {
	return TodoListResponse{
		Todos:     toTodoResponses(g.All, codec),
		Overdue:   toTodoResponses(g.Overdue, codec),
		Pending:   toTodoResponses(g.Pending, codec),
		Completed: toTodoResponses(g.Completed, codec),
		Count:     len(g.All),
	}
}

func toTodoResponses(todos []todo.Todo, codec TimeCodec) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i], codec)
	}
	return items
}

// UpdateTodoResponse is the updated todo. NextOccurrence is present when
// the update completed a recurring todo and spawned its successor.
type UpdateTodoResponse struct {
	TodoResponse
	NextOccurrence *TodoResponse `json:"next_occurrence,omitempty"`
}

// ToUpdateTodoResponse converts an update result to an HTTP response DTO.
func ToUpdateTodoResponse(res *ports.UpdateResult, codec TimeCodec) UpdateTodoResponse {
	resp := UpdateTodoResponse{TodoResponse: ToTodoResponse(&res.Todo, codec)}
	if res.Successor != nil {
		next := ToTodoResponse(res.Successor, codec)
		resp.NextOccurrence = &next
	}
	return resp
}
