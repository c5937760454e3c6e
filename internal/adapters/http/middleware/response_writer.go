// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs them with chi's Use in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Logging runs outside Timeout so that a 504 is still logged, and inside
// CorrelationID so that every line carries both IDs.
package middleware

import "net/http"

// statusRecorder records the status and body size of a response for the
// recovery, otel and logging middleware. Those layers share a single recorder
// per request: wrapResponse hands back an existing recorder instead of
// stacking another one.
type statusRecorder struct {
	http.ResponseWriter
	status int // 0 until the status line is sent
	bytes  int64
}

func wrapResponse(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader sends the status line once; later calls are dropped.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.committed() {
		return
	}
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.committed() {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Status is the status sent to the client. A handler that wrote nothing
// yields the implicit 200.
func (sr *statusRecorder) Status() int {
	if sr.status == 0 {
		return http.StatusOK
	}
	return sr.status
}

func (sr *statusRecorder) committed() bool {
	return sr.status != 0
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
