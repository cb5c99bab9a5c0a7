// Package telemetry sets up OpenTelemetry tracing and metrics for the task
// service. Spans and metrics go to stdout locally and to an OTLP/HTTP
// collector in deployed profiles.
//
// Route-level attributes use the chi route pattern, never the raw path:
// task and project identifiers are opaque text and would otherwise make
// every request its own time series.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/go-task-service/internal/platform/config"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	errUnsupportedExporter = errors.New("unsupported exporter")
	errMissingEndpoint     = errors.New("otlp exporter requires an endpoint")
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
)

// Providers owns the tracer and meter providers registered by Setup. All
// fields are nil when telemetry is disabled; every consumer of Metrics
// accepts nil.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup builds both providers from cfg, installs them as the otel globals
// together with a W3C trace-context propagator, and registers the service's
// instruments. The caller must call Shutdown on exit.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}
	ex, err := newExporters(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(ex.spans), sdktrace.WithResource(res)),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(ex.metrics)),
			sdkmetric.WithResource(res),
		),
	}
	if p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers. Nil-safe.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

type exporters struct {
	spans   sdktrace.SpanExporter
	metrics sdkmetric.Exporter
}

func newExporters(ctx context.Context, kind, endpoint string) (exporters, error) {
	var (
		ex       exporters
		spanErr  error
		meterErr error
	)
	switch kind {
	case ExporterStdout:
		ex.spans, spanErr = stdouttrace.New(stdouttrace.WithPrettyPrint())
		ex.metrics, meterErr = stdoutmetric.New()
	case ExporterOTLP:
		if endpoint == "" {
			return ex, errMissingEndpoint
		}
		host, secure := splitEndpoint(endpoint)
		traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if !secure {
			traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
			metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
		}
		ex.spans, spanErr = otlptracehttp.New(ctx, traceOpts...)
		ex.metrics, meterErr = otlpmetrichttp.New(ctx, metricOpts...)
	default:
		return ex, fmt.Errorf("%w: %q", errUnsupportedExporter, kind)
	}

	if spanErr != nil {
		return ex, fmt.Errorf("creating span exporter: %w", spanErr)
	}
	if meterErr != nil {
		return ex, fmt.Errorf("creating metric exporter: %w", meterErr)
	}
	return ex, nil
}

// splitEndpoint returns the host:port of endpoint and whether it names an
// https collector. Bare host:port values are plain HTTP.
func splitEndpoint(endpoint string) (host string, secure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
