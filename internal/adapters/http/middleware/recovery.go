package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/http/dto"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// The panic value and stack trace are logged but never exposed; the client
// gets an RFC 9457 500 response unless headers were already written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrapResponse(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", panicRequestID(r, rw)),
				)

				if !rw.committed() {
					dto.WriteStatusResponse(rw, r, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// panicRequestID finds the request ID for a recovered panic. Recovery runs
// outside RequestID, so the ID is usually only on the response header.
func panicRequestID(r *http.Request, w http.ResponseWriter) string {
	if id := RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return w.Header().Get(headerRequestID)
}
