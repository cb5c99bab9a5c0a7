package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds pre-registered OpenTelemetry metric instruments. A nil
// *Metrics records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// BulkUpdateItems counts bulk todo updates per item, labeled by result.
	BulkUpdateItems metric.Int64Counter
}

// NewMetrics registers the service's instruments on a meter named after
// serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(serviceName)}
	m := &Metrics{
		ServerRequestDuration: r.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: r.seconds("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Total number of outgoing HTTP requests", "{request}"),
		BulkUpdateItems:       r.counter("task.bulk_update.items", "Todos processed by bulk updates", "{todo}"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordBulkItems adds the outcome of one bulk update.
func (m *Metrics) RecordBulkItems(ctx context.Context, succeeded, failed int) {
	if m == nil || m.BulkUpdateItems == nil {
		return
	}
	if succeeded > 0 {
		m.BulkUpdateItems.Add(ctx, int64(succeeded), metric.WithAttributes(AttrResult.String("success")))
	}
	if failed > 0 {
		m.BulkUpdateItems.Add(ctx, int64(failed), metric.WithAttributes(AttrResult.String("error")))
	}
}

// registrar creates instruments and collects registration errors.
type registrar struct {
	meter metric.Meter
	errs  []error
}

func (r *registrar) seconds(name, desc string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}
