package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate reports every invalid setting at once, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Bulk.validate(&p)
	return errors.Join(p...)
}

// problems accumulates validation failures.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func oneOf(v string, allowed ...string) bool {
	return slices.Contains(allowed, v)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.RequestTimeout > 0, "server.request_timeout must be positive")
	p.check(s.RequestTimeout < s.WriteTimeout,
		"server.request_timeout (%s) must be shorter than server.write_timeout (%s)", s.RequestTimeout, s.WriteTimeout)
	p.check(s.ShutdownTimeout > 0, "server.shutdown_timeout must be positive")
}

func (l *LogConfig) validate(p *problems) {
	p.check(oneOf(l.Level, "debug", "info", "warn", "error"),
		"log.level must be one of: debug, info, warn, error; got %q", l.Level)
	p.check(oneOf(l.Format, "json", "text"), "log.format must be one of: json, text; got %q", l.Format)
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %f", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.check(oneOf(t.Exporter, "stdout", "otlp"), "telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
}

func (b *BulkConfig) validate(p *problems) {
	p.check(b.MaxWorkers >= 1, "bulk.max_workers must be >= 1, got %d", b.MaxWorkers)
	p.check(b.MaxItems >= 1, "bulk.max_items must be >= 1, got %d", b.MaxItems)
}
