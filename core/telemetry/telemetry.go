// Package telemetry configures OpenTelemetry tracing for the service.
//
// Tracing is opt-in. When disabled, or when no endpoint is configured, Setup
// registers nothing and returns a no-op shutdown function; tracers obtained
// through Tracer then produce non-recording spans.
//
//	var cfg telemetry.Config
//	config.MustLoad(&cfg)
//
//	shutdown, err := telemetry.Setup(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer shutdown(context.Background())
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// ShutdownFunc flushes pending spans and releases exporter resources.
type ShutdownFunc func(context.Context) error

// Config holds tracing settings with environment variable support.
type Config struct {
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string  `env:"OTEL_ENDPOINT"`
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"commandhttp"`
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Setup initialises OpenTelemetry tracing and registers the global tracer provider.
// The returned shutdown function should be deferred by the caller.
func Setup(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("create trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
