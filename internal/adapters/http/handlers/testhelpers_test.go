package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/clock"
)

func newCodec(t *testing.T) *clock.Clock {
	t.Helper()
	c, err := clock.New(clock.DefaultZone)
	if err != nil {
		t.Fatalf("clock.New() error = %v", err)
	}
	return c
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

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
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
