package tracefmt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/baggage"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func recordedSpans(fn func(ctx context.Context, tracer trace.Tracer)) []tracesdk.ReadOnlySpan {
	rec := tracetest.NewSpanRecorder()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(rec))
	tracer := tp.Tracer("tracefmt-test", trace.WithInstrumentationVersion("v1.2.3"))
	fn(context.Background(), tracer)
	return rec.Ended()
}

func TestOTelViewScalars(t *testing.T) {
	spans := recordedSpans(func(ctx context.Context, tracer trace.Tracer) {
		_, span := tracer.Start(ctx, "handle-request", trace.WithSpanKind(trace.SpanKindServer))
		span.SetAttributes(attribute.Int("attempt", 2), attribute.String("peer", "db"))
		span.AddEvent("retry", trace.WithAttributes(attribute.String("reason", "busy")))
		span.SetStatus(codes.Error, "boom")
		span.End()
	})
	assert.Len(t, spans, 1)

	view := OTelView(spans[0]).Build()
	assert.Equal(t, "handle-request", view.OperationName())
	assert.Equal(t, "handle-request", view.DisplayName())
	assert.Equal(t, trace.SpanKindServer, view.Kind())
	assert.Equal(t, codes.Error, view.StatusCode())
	assert.Equal(t, "boom", view.StatusDescription())
	assert.Equal(t, "tracefmt-test", view.SourceName())
	assert.Equal(t, "v1.2.3", view.SourceVersion())
	assert.True(t, view.IsAllDataRequested())
	assert.False(t, view.StartTime().IsZero())
	assert.True(t, view.Duration() > 0)

	assert.Equal(t, []Pair{
		{Key: "attempt", Value: int64(2)},
		{Key: "peer", Value: "db"},
	}, view.Tags())

	events := view.Events()
	assert.Len(t, events, 1)
	assert.Equal(t, "retry", events[0].Name)
	assert.Equal(t, []Pair{{Key: "reason", Value: "busy"}}, events[0].Tags)

	// The SDK span context must render like any other.
	sc := view.SpanContext()
	want := "00-" + sc.TraceID().String() + "-" + sc.SpanID().String() + "-01"
	assert.Equal(t, want, Renderer().WithField(FieldID).Build().RenderString(view))
}

func TestOTelViewOpenSpanDuration(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(rec))
	tracer := tp.Tracer("tracefmt-test")

	_, span := tracer.Start(context.Background(), "open")
	started := rec.Started()
	assert.Len(t, started, 1)

	// While the span is open the recorded duration stays zero; the
	// renderer falls back to wall-clock elapsed time.
	view := OTelView(started[0]).Build()
	assert.Equal(t, time.Duration(0), view.Duration())
	span.End()
}

func TestOTelViewParentLinkage(t *testing.T) {
	spans := recordedSpans(func(ctx context.Context, tracer trace.Tracer) {
		ctx, parent := tracer.Start(ctx, "parent")
		_, child := tracer.Start(ctx, "child")
		child.End()
		parent.End()
	})
	assert.Len(t, spans, 2)
	childSpan, parentSpan := spans[0], spans[1]

	parentView := OTelView(parentSpan).Build()
	childView := OTelView(childSpan).WithParent(parentView).Build()

	assert.Equal(t, parentSpan.SpanContext(), childView.ParentSpanContext())
	assert.Same(t, parentView, childView.Parent())
	assert.Nil(t, parentView.Parent())
	assert.False(t, parentView.ParentSpanContext().IsValid())

	// FromParent rendering resolves through the linked view.
	r := Renderer().WithField(FieldOperationName).FromParent().Build()
	assert.Equal(t, "parent", r.RenderString(childView))
}

func TestOTelViewBaggageAndProperties(t *testing.T) {
	bag, err := baggage.Parse("user=alice,region=eu")
	assert.Nil(t, err)

	spans := recordedSpans(func(ctx context.Context, tracer trace.Tracer) {
		_, span := tracer.Start(ctx, "op")
		span.End()
	})

	view := OTelView(spans[0]).
		WithBaggage(bag).
		WithProperty("shard", 7).
		Build()

	assert.ElementsMatch(t, []Pair{
		{Key: "user", Value: "alice"},
		{Key: "region", Value: "eu"},
	}, view.Baggage())
	assert.Equal(t, 7, view.CustomProperty("shard"))
	assert.Nil(t, view.CustomProperty("missing"))

	r := Renderer().WithField(FieldBaggage).WithItem("user").Build()
	assert.Equal(t, "alice", r.RenderString(view))
}
