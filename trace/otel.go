// Package trace wires OpenTelemetry tracing for the fan-out.
package trace

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/YspCoder/duet/version"
)

// Options selects whether tracing is enabled and where spans are exported.
// An empty Endpoint exports to Writer, or stdout when Writer is nil.
type Options struct {
	Enabled  bool
	Endpoint string
	Writer   io.Writer
}

// Runtime stores the initialized tracer and its shutdown hook.
type Runtime struct {
	Tracer   oteltrace.Tracer
	Shutdown func(context.Context) error
}

// Setup initializes OpenTelemetry. When disabled it returns the global no-op tracer.
func Setup(ctx context.Context, serviceName string, opts Options) (Runtime, error) {
	if !opts.Enabled {
		return Runtime{
			Tracer:   otel.Tracer(serviceName),
			Shutdown: func(context.Context) error { return nil },
		}, nil
	}

	exp, err := newExporter(ctx, opts)
	if err != nil {
		return Runtime{}, err
	}

	res := resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version.Get().String()),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return Runtime{
		Tracer:   tp.Tracer(serviceName),
		Shutdown: tp.Shutdown,
	}, nil
}

func newExporter(ctx context.Context, opts Options) (sdktrace.SpanExporter, error) {
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		exp, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("otel otlp exporter: %w", err)
		}
		return exp, nil
	}

	stdoutOpts := []stdouttrace.Option{stdouttrace.WithPrettyPrint()}
	if opts.Writer != nil {
		stdoutOpts = append(stdoutOpts, stdouttrace.WithWriter(opts.Writer))
	}
	exp, err := stdouttrace.New(stdoutOpts...)
	if err != nil {
		return nil, fmt.Errorf("otel stdout exporter: %w", err)
	}
	return exp, nil
}
