package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitWithEndpoint(t *testing.T) {
	ctx := context.Background()

	shutdown, err := Init(ctx, "localhost:4317", "dev", "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	t.Cleanup(func() {
		_, _ = Init(ctx, "", "", "")
	})

	_, span := StartSpan(ctx, "calculate")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(ctx))
}

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), "", "dev", "test")
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "calculate")
	assert.False(t, span.IsRecording())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := tracer
	tracer = tp.Tracer(TracerName)
	t.Cleanup(func() {
		tracer = prev
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func TestAddEventAndEnd(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "distance.resolve", attribute.String("mode", "local"))
	AddEvent(ctx, "distance.fallback", attribute.String("reason", "no_route"))
	err := errors.New("boom")
	End(span, &err)

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "distance.resolve", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("mode", "local"))
	assert.Equal(t, codes.Error, ended[0].Status().Code)

	// RecordError adds an "exception" event after the fallback one.
	events := ended[0].Events()
	require.NotEmpty(t, events)
	assert.Equal(t, "distance.fallback", events[0].Name)
	assert.Contains(t, events[0].Attributes, attribute.String("reason", "no_route"))
}

func TestAddEventWithoutSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		AddEvent(context.Background(), "distance.fallback")
	})
}
