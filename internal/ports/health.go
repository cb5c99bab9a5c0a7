package ports

import "context"

// HealthChecker reports whether one dependency is usable.
type HealthChecker interface {
	// Name keys the checker in readiness output, e.g. "todo-api".
	Name() string

	// HealthCheck returns nil when healthy. It must honour ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and maps name to result; nil is healthy.
	CheckAll(ctx context.Context) map[string]error
}
