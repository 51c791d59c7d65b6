package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dmitrymomot/commandhttp/core/telemetry"
)

func TestTraceIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := telemetry.TraceIDExtractor(context.Background())
	assert.False(t, ok)

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	attr, ok := telemetry.TraceIDExtractor(ctx)
	require.True(t, ok)
	assert.Equal(t, "trace_id", attr.Key)
	assert.Equal(t, span.SpanContext().TraceID().String(), attr.Value.String())
}
