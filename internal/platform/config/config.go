// Package config loads service settings. Values are layered: built-in
// defaults, then base.yaml, then the profile's yaml, then APP_* environment
// variables, with later layers winning.
package config

import "time"

// Config is the root of the settings tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Bulk      BulkConfig      `koanf:"bulk"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig configures the inbound listener. RequestTimeout bounds
// handler work and has to stay under WriteTimeout so the 504 can still be
// written.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn or error
	Format string `koanf:"format"` // json or text
}

// ClientConfig configures calls to the todo API.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig shapes the exponential backoff between attempts.
// MaxAttempts counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips after MaxFailures consecutive failures and
// stays open for Timeout before letting HalfOpenLimit probes through.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound requests. Zero RequestsPerSecond turns
// it off.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// BulkConfig bounds bulk todo updates.
type BulkConfig struct {
	MaxWorkers int `koanf:"max_workers"`
	MaxItems   int `koanf:"max_items"`
}

// TelemetryConfig selects where traces and metrics go. Exporter is
// "stdout" or "otlp"; Endpoint is used by otlp only.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
