package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

// TodoHandler handles HTTP requests for the todo lifecycle.
type TodoHandler struct {
	svc   ports.TodoService
	codec dto.TimeCodec
}

// NewTodoHandler creates a new TodoHandler. codec reads request timestamps
// and renders response timestamps in the civil zone.
func NewTodoHandler(svc ports.TodoService, codec dto.TimeCodec) *TodoHandler {
	return &TodoHandler{svc: svc, codec: codec}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListTodos(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(groups, h.codec))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	t, err := req.ToTodo(h.codec)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), t)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created, h.codec))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t, h.codec))
}

// UpdateTodo handles PUT and PATCH /api/v1/todos/{id}. Both verbs merge the
// supplied fields onto the stored todo.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	patch, err := req.ToPatch(h.codec)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.UpdateTodo(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUpdateTodoResponse(res, h.codec))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
