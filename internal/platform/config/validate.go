package config

import (
	"errors"
	"fmt"
	"time"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Clock.validate(),
		c.Database.validate(),
		c.Cache.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (c *ClockConfig) validate() error {
	if c.Timezone == "" {
		return errors.New("clock.timezone must not be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("clock.timezone %q is not a known zone: %w", c.Timezone, err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case DriverSQLite, DriverPostgres:
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: %s, %s; got %q",
			DriverSQLite, DriverPostgres, d.Driver))
	}

	if d.DSN == "" {
		errs = append(errs, errors.New("database.dsn must not be empty"))
	}
	if d.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must be >= 1, got %d", d.MaxOpenConns))
	}
	if d.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("database.max_idle_conns must be >= 0, got %d", d.MaxIdleConns))
	}

	return errors.Join(errs...)
}

func (c *CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error

	if c.URL == "" {
		errs = append(errs, errors.New("cache.url must not be empty when cache is enabled"))
	}
	if c.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("cache.timeout must be positive"))
	}
	if c.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("cache.circuit_breaker.max_failures must be >= 1, got %d",
			c.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
