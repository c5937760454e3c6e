package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    func(w http.ResponseWriter)
		wantStatus int
		wantBytes  int64
		wantSent   bool
	}{
		{
			name:       "nothing written",
			handler:    func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			handler:    func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
			wantSent:   true,
		},
		{
			name: "first status wins",
			handler: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusCreated,
			wantSent:   true,
		},
		{
			name: "body implies 200 and sizes accumulate",
			handler: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"todos":`))
				_, _ = w.Write([]byte(`[]}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  12,
			wantSent:   true,
		},
		{
			name: "status after body is dropped",
			handler: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("ok"))
				w.WriteHeader(http.StatusGatewayTimeout)
			},
			wantStatus: http.StatusOK,
			wantBytes:  2,
			wantSent:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := wrapResponse(rec)
			tt.handler(sr)

			if got := sr.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", got, tt.wantStatus)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if got := sr.committed(); got != tt.wantSent {
				t.Errorf("committed() = %v, want %v", got, tt.wantSent)
			}
			if tt.wantSent && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestWrapResponse_ReusesRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	outer := wrapResponse(rec)
	inner := wrapResponse(outer)

	if inner != outer {
		t.Fatal("wrapResponse() stacked a second recorder, want the existing one")
	}
	if outer.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}

// The recovery, otel and logging layers all see the status a handler sets
// through one recorder.
func TestWrapResponse_SharedAcrossMiddleware(t *testing.T) {
	t.Parallel()

	var seen []*statusRecorder
	layer := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := wrapResponse(w)
			seen = append(seen, sr)
			next.ServeHTTP(sr, r)
		})
	}

	h := layer(layer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/todos/9", http.NoBody))

	if len(seen) != 2 || seen[0] != seen[1] {
		t.Fatalf("layers saw %d distinct recorders, want one shared", len(seen))
	}
	if got := seen[0].Status(); got != http.StatusNotFound {
		t.Errorf("Status() = %d, want %d", got, http.StatusNotFound)
	}
}
