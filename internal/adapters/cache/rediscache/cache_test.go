package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
)

// newUnreachableCache points at a closed local port so every call fails fast
// with a connection error.
func newUnreachableCache(t *testing.T, maxFailures int) *Cache {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.CacheConfig{
		TTL: time.Minute,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
	return newCache(rdb, cfg, nil, slog.Default())
}

func TestNew_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := New(config.CacheConfig{URL: "http://not-redis"}, nil, slog.Default())
	if err == nil {
		t.Fatal("New() error = nil, want error for non-redis scheme")
	}
}

func TestNew_ValidURL(t *testing.T) {
	t.Parallel()

	c, err := New(config.CacheConfig{URL: "redis://localhost:6379/0", Timeout: time.Second}, nil, slog.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Name(); got != "redis" {
		t.Errorf("Name() = %q, want %q", got, "redis")
	}
}

func TestCache_UnreachableIsUnavailable(t *testing.T) {
	t.Parallel()

	c := newUnreachableCache(t, 5)
	ctx := context.Background()

	if _, _, ok, err := c.GetList(ctx); ok || !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetList() = (ok=%v, err=%v), want miss with ErrUnavailable", ok, err)
	}
	if err := c.SetList(ctx, 0, nil); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("SetList() error = %v, want ErrUnavailable", err)
	}
	if err := c.Invalidate(ctx); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Invalidate() error = %v, want ErrUnavailable", err)
	}
}

func TestCache_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	c := newUnreachableCache(t, 2)
	ctx := context.Background()

	for range 2 {
		_ = c.Invalidate(ctx)
	}

	if err := c.HealthCheck(ctx); err == nil {
		t.Fatal("HealthCheck() error = nil, want open breaker")
	}

	// Rejected by the breaker without touching Redis.
	_, _, _, err := c.GetList(ctx)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetList() error = %v, want ErrUnavailable", err)
	}
}

func TestEntries_RoundTrip(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	p := todo.RecurrenceDaily
	m := 10
	in := []todo.Todo{
		{ID: 1, Title: "a", Priority: todo.PriorityHigh, DueDate: &due, IsRecurring: true, RecurrencePattern: &p, ReminderMinutes: &m},
		{ID: 2, Title: "b", Priority: todo.PriorityLow, Completed: true},
	}

	got := fromEntries(toEntries(in))
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if !got[i].SameState(&in[i]) || got[i].ID != in[i].ID {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], in[i])
		}
	}
}

func TestDecodeSnapshot(t *testing.T) {
	t.Parallel()

	list := []todo.Todo{{ID: 7, Title: "Pay rent", Priority: todo.PriorityHigh}}
	encode := func(gen uint64) string {
		t.Helper()
		b, err := json.Marshal(snapshot{Generation: gen, Todos: toEntries(list)})
		if err != nil {
			t.Fatalf("encoding snapshot: %v", err)
		}
		return string(b)
	}

	tests := []struct {
		name      string
		rawGen    any
		rawList   any
		wantGen   uint64
		wantOK    bool
		wantStale bool
		wantErr   bool
	}{
		{name: "nothing cached", rawGen: nil, rawList: nil, wantGen: 0},
		{name: "list without counter", rawGen: nil, rawList: encode(0), wantGen: 0, wantOK: true},
		{name: "matching generation", rawGen: "4", rawList: encode(4), wantGen: 4, wantOK: true},
		{name: "refill that raced a write", rawGen: "5", rawList: encode(4), wantGen: 5, wantStale: true},
		{name: "invalidated list", rawGen: "5", rawList: nil, wantGen: 5},
		{name: "corrupt counter", rawGen: "five", rawList: encode(5), wantErr: true},
		{name: "corrupt list", rawGen: "5", rawList: "{", wantGen: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			todos, gen, ok, stale, err := decodeSnapshot(tt.rawGen, tt.rawList)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeSnapshot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if gen != tt.wantGen || ok != tt.wantOK || stale != tt.wantStale {
				t.Errorf("decodeSnapshot() = (gen=%d, ok=%v, stale=%v), want (gen=%d, ok=%v, stale=%v)",
					gen, ok, stale, tt.wantGen, tt.wantOK, tt.wantStale)
			}
			if ok && (len(todos) != 1 || todos[0].ID != 7) {
				t.Errorf("todos = %+v, want the cached list", todos)
			}
			if !ok && todos != nil {
				t.Errorf("todos = %+v on a miss, want nil", todos)
			}
		})
	}
}
