package config

const (
	defaultServerPort = 8080

	defaultDatabaseMaxOpenConns = 10
	defaultDatabaseMaxIdleConns = 5

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"clock.timezone": "Asia/Singapore",

		"database.driver":            DriverSQLite,
		"database.dsn":               "file:todos.db",
		"database.max_open_conns":    defaultDatabaseMaxOpenConns,
		"database.max_idle_conns":    defaultDatabaseMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,

		"cache.enabled":                         false,
		"cache.url":                             "",
		"cache.ttl":                             "30s",
		"cache.timeout":                         "200ms",
		"cache.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"cache.circuit_breaker.timeout":         "30s",
		"cache.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "recurring-todo-service",
	}
}
