package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/droidplan/internal/adapters/telemetry"
	"go.trai.ch/droidplan/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return telemetry.NewOTelTracer(tp), sr
}

func TestOTelTracer_Start(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	ctx, parent := tracer.Start(t.Context(), "resolve", ports.WithAttribute("variant", "release"))
	_, child := tracer.Start(ctx, "resolve.plugins")
	child.SetAttribute("plugins", 5)
	child.SetAttribute("ids", []string{"a", "b"})
	child.SetAttribute("strict", true)
	child.SetAttribute("other", struct{ N int }{N: 1})
	child.End()
	parent.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)

	childSpan, parentSpan := ended[0], ended[1]
	assert.Equal(t, "resolve.plugins", childSpan.Name())
	assert.Equal(t, parentSpan.SpanContext().SpanID(), childSpan.Parent().SpanID())
	assert.Contains(t, parentSpan.Attributes(), attribute.String("variant", "release"))
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int("plugins", 5),
		attribute.StringSlice("ids", []string{"a", "b"}),
		attribute.Bool("strict", true),
		attribute.String("other", "{1}"),
	}, childSpan.Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(t.Context(), "resolve.bounds")
	span.RecordError(nil)
	span.RecordError(errors.New("sdk version bounds violated"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "sdk version bounds violated", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}
