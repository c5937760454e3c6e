// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//
// Lifecycle and storage logs use the shared attribute helpers so that every
// line about a todo can be found by the same keys:
//
//	logger.ErrorContext(ctx, "failed to update todo",
//	    logging.Operation("UpdateTodo"),
//	    logging.TodoID(id),
//	    logging.Err(err),
//	)
//
// Request middleware adds request_id and correlation_id to the context logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Attribute keys shared by service, storage and cache logs.
const (
	KeyOperation = "operation"
	KeyTodoID    = "todo_id"
	KeyNextID    = "next_todo_id"
	KeyPattern   = "recurrence_pattern"
	KeyError     = "error"
)

type contextKey struct{}

// New returns a logger writing to w. Unknown levels fall back to info and
// unknown formats to JSON. Debug loggers include source locations. Every
// handler runs attributes through the masq redactor.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Operation names the service method a log line belongs to.
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// TodoID identifies the todo a log line is about.
func TodoID(id int64) slog.Attr {
	return slog.Int64(KeyTodoID, id)
}

// NextTodoID identifies the successor spawned by completing a recurring todo.
func NextTodoID(id int64) slog.Attr {
	return slog.Int64(KeyNextID, id)
}

// Pattern records a recurrence pattern.
func Pattern(p string) slog.Attr {
	return slog.String(KeyPattern, p)
}

// Err records the full error chain.
func Err(err error) slog.Attr {
	return slog.Any(KeyError, err)
}

// parseLevel accepts the names slog understands ("debug", "WARN", "info+2")
// plus "warning".
func parseLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
