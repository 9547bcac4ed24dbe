// Package telemetry wires OpenTelemetry tracing (exported to Honeycomb over
// OTLP/HTTP) and builds the diagnostic zap logger.
package telemetry

import (
	"context"
	"fmt"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "greenchapel"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "api.honeycomb.io"
)

// Options selects where traces go. With an empty APIKey the exporter falls
// back to the standard OTEL_EXPORTER_OTLP_* environment variables.
type Options struct {
	APIKey  string
	Dataset string
}

func (o Options) exporterOptions() []otlptracehttp.Option {
	if o.APIKey == "" {
		return nil
	}
	headers := map[string]string{"x-honeycomb-team": o.APIKey}
	if o.Dataset != "" {
		headers["x-honeycomb-dataset"] = o.Dataset
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(honeycombEndpoint),
		otlptracehttp.WithHeaders(headers),
	}
}

// Setup installs a batching OTLP/HTTP tracer provider as the global one.
// The returned shutdown flushes pending spans and must be called on exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx, opts.exporterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. It is built standalone rather than
// merged with resource.Default() to avoid schema URL conflicts.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Disable installs a no-op provider so spans cost nothing when export is off.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

// Tracer returns the tracer for one component, e.g. "world" or "combat".
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}
