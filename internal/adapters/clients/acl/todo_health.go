package acl

import "context"

// Name identifies the downstream in the health registry. It is the service
// name given to the underlying httpclient.Client.
func (c *TodoClient) Name() string {
	return c.name
}

// HealthCheck reports the downstream TODO API from its circuit breaker
// state without a network call. A failing downstream leaves this service
// ready: callers get domain errors and the breaker needs traffic to recover.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	return c.req.client.HealthCheck(ctx)
}
