package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

func newFileExporter(w io.Writer) (trace.SpanExporter, error) {
	return stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
		stdouttrace.WithoutTimestamps(),
	)
}

// newOTELCollectorExporter creates an exporter that sends traces to an OTEL collector
func newOTELCollectorExporter(endpoint string) (trace.SpanExporter, error) {
	// Remove protocol prefix if present
	endpointWithProto := strings.Replace(endpoint, "http://", "", 1)
	endpointWithProto = strings.Replace(endpointWithProto, "https://", "", 1)

	return otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(endpointWithProto),
	)
}

func newResource(serviceName string) *resource.Resource {
	if serviceName == "" {
		serviceName = "linkfinder"
	}

	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion("0.1.0"),
	)
}

type Options struct {
	ServiceName string
	// Endpoint of an OTEL collector (e.g., "localhost:4318").
	Endpoint string
	// TracesFile receives pretty-printed spans when no Endpoint is set.
	TracesFile string
}

// NewProvider creates new telemetry provider, and sets it as a default open telemetry trace provider.
//
// Exporter priority:
// 1. Endpoint - OTLP over HTTP
// 2. TracesFile - file-based tracing
// 3. none: the global no-op provider stays in place
//
// Returns a teardown func
func NewProvider(opts Options) func() {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	var (
		exp trace.SpanExporter
		f   *os.File
		err error
	)

	switch {
	case opts.Endpoint != "":
		exp, err = newOTELCollectorExporter(opts.Endpoint)
	case opts.TracesFile != "":
		f, err = os.Create(opts.TracesFile)
		if err != nil {
			slog.Error("Unable to create traces file", slog.String("path", opts.TracesFile), slog.Any("error", err))
			return func() {}
		}
		slog.Info("Using file-based tracing", slog.String("path", opts.TracesFile))
		exp, err = newFileExporter(f)
	default:
		return func() {}
	}

	if err != nil {
		slog.Error("Unable to create exporter", slog.Any("error", err))
		panic(err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(newResource(opts.ServiceName)),
	)

	otel.SetTracerProvider(tp)

	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			slog.Error("unable to shutdown trace provider", slog.Any("error", err))
		}

		if f != nil {
			if err := f.Close(); err != nil {
				slog.Error("Unable to close traces file", slog.Any("error", err))
			}
		}
	}
}
