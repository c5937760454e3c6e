// Package rediscache caches the unsorted todo list in Redis. Every Redis
// call runs through a circuit breaker so an unreachable cache fails fast and
// the service falls back to the database.
//
// Two keys are used. todo:list:gen is a counter that Invalidate increments
// and todo:list holds the list tagged with the generation it was read under.
// A list whose tag no longer matches the counter is treated as a miss, which
// keeps a refill that raced a write from being served after it.
//
//	c, err := rediscache.New(cfg.Cache, metrics, logger)
//	todos, gen, ok, err := c.GetList(ctx)
//	err = c.SetList(ctx, gen, todos)
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
	"github.com/jsamuelsen11/recurring-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

const (
	keyList     = "todo:list"
	keyGen      = "todo:list:gen"
	breakerName = "redis"
)

// Compile-time interface check.
var _ ports.TodoListCache = (*Cache)(nil)

// Cache is a Redis-backed ports.TodoListCache.
type Cache struct {
	rdb     *redis.Client
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[[]any]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New parses cfg.URL and builds a Cache. No connection is made until the
// first call. If metrics is nil, metric recording is skipped.
func New(cfg config.CacheConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing cache url: %w", err)
	}
	if cfg.Timeout > 0 {
		opts.DialTimeout = cfg.Timeout
		opts.ReadTimeout = cfg.Timeout
		opts.WriteTimeout = cfg.Timeout
	}

	return newCache(redis.NewClient(opts), cfg, metrics, logger), nil
}

func newCache(rdb *redis.Client, cfg config.CacheConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Cache {
	cb := gobreaker.NewCircuitBreaker[[]any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Cache{
		rdb:     rdb,
		ttl:     cfg.TTL,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// GetList returns the cached list and the current generation. A missing or
// stale list reports ok=false with a nil error; Redis failures and an open
// breaker wrap domain.ErrUnavailable.
func (c *Cache) GetList(ctx context.Context) ([]todo.Todo, uint64, bool, error) {
	vals, err := c.breaker.Execute(func() ([]any, error) {
		return c.rdb.MGet(ctx, keyGen, keyList).Result()
	})
	if err != nil {
		c.metrics.RecordCacheLookup(ctx, telemetry.ResultError)
		return nil, 0, false, unavailable("get", err)
	}
	if len(vals) != 2 {
		c.metrics.RecordCacheLookup(ctx, telemetry.ResultError)
		return nil, 0, false, fmt.Errorf("cache get: unexpected reply length %d", len(vals))
	}

	todos, gen, ok, stale, err := decodeSnapshot(vals[0], vals[1])
	switch {
	case err != nil:
		c.metrics.RecordCacheLookup(ctx, telemetry.ResultError)
		return nil, 0, false, err
	case stale:
		c.metrics.RecordCacheLookup(ctx, telemetry.CacheStale)
	case ok:
		c.metrics.RecordCacheLookup(ctx, telemetry.CacheHit)
	default:
		c.metrics.RecordCacheLookup(ctx, telemetry.CacheMiss)
	}
	return todos, gen, ok, nil
}

// SetList stores todos tagged with gen under the list key with the configured
// TTL.
func (c *Cache) SetList(ctx context.Context, gen uint64, todos []todo.Todo) error {
	b, err := json.Marshal(snapshot{Generation: gen, Todos: toEntries(todos)})
	if err != nil {
		return fmt.Errorf("encoding list: %w", err)
	}

	_, err = c.breaker.Execute(func() ([]any, error) {
		return nil, c.rdb.Set(ctx, keyList, b, c.ttl).Err()
	})
	return unavailable("set", err)
}

// Invalidate increments the generation and deletes the list in one
// MULTI/EXEC.
func (c *Cache) Invalidate(ctx context.Context) error {
	_, err := c.breaker.Execute(func() ([]any, error) {
		_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Incr(ctx, keyGen)
			pipe.Del(ctx, keyList)
			return nil
		})
		return nil, err
	})
	return unavailable("invalidate", err)
}

// Close releases the Redis connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Name returns the identifier used when the cache is registered with a
// [ports.HealthRegistry].
func (c *Cache) Name() string {
	return breakerName
}

// HealthCheck pings Redis unless the breaker is open, in which case the
// breaker state is reported without a network call.
func (c *Cache) HealthCheck(ctx context.Context) error {
	switch c.breaker.State() {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", breakerName)
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", breakerName)
	}

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %w", breakerName, err)
	}
	return nil
}

// unavailable wraps a Redis or breaker error for the given operation. Returns
// nil for a nil err.
func unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cache %s: %w: %w", op, domain.ErrUnavailable, err)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
