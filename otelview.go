package tracefmt

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/baggage"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// OTelView returns a builder adapting an OpenTelemetry SDK span into
// the SpanView the renderers read from.
//
// The SDK only hands out the parent's span context, not the parent
// span itself, so parent linkage and baggage are supplied explicitly
// when the host has them.
func OTelView(span tracesdk.ReadOnlySpan) *OTelViewBuilder {
	return &OTelViewBuilder{view: otelView{span: span}}
}

// OTelViewBuilder is a builder-pattern constructor for an
// OpenTelemetry-backed SpanView.
type OTelViewBuilder struct {
	view otelView
}

// WithParent links the in-process parent span view.
//
// A call to this function overwrites any previous value.
func (b *OTelViewBuilder) WithParent(parent SpanView) *OTelViewBuilder {
	b.view.parent = parent
	return b
}

// WithBaggage registers the baggage propagated to this span, usually
// baggage.FromContext of the context the span was started in.
//
// A call to this function appends to the list of previous values.
func (b *OTelViewBuilder) WithBaggage(bag baggage.Baggage) *OTelViewBuilder {
	for _, m := range bag.Members() {
		b.view.baggage = append(b.view.baggage, Pair{Key: m.Key(), Value: m.Value()})
	}
	return b
}

// WithProperty registers a custom property with the view.
//
// A call to this function overwrites a previous value of the same name.
func (b *OTelViewBuilder) WithProperty(name string, value interface{}) *OTelViewBuilder {
	if b.view.props == nil {
		b.view.props = map[string]interface{}{}
	}
	b.view.props[name] = value
	return b
}

// Build builds the SpanView.
func (b *OTelViewBuilder) Build() SpanView {
	view := b.view
	return &view
}

type otelView struct {
	span    tracesdk.ReadOnlySpan
	parent  SpanView
	baggage []Pair
	props   map[string]interface{}
}

var _ SpanView = &otelView{}

func (v *otelView) SpanContext() trace.SpanContext       { return v.span.SpanContext() }
func (v *otelView) ParentSpanContext() trace.SpanContext { return v.span.Parent() }
func (v *otelView) Parent() SpanView                     { return v.parent }
func (v *otelView) OperationName() string                { return v.span.Name() }
func (v *otelView) DisplayName() string                  { return v.span.Name() }
func (v *otelView) StartTime() time.Time                 { return v.span.StartTime() }

func (v *otelView) Duration() time.Duration {
	end := v.span.EndTime()
	if end.IsZero() {
		return 0
	}
	return end.Sub(v.span.StartTime())
}

func (v *otelView) Kind() SpanKind             { return v.span.SpanKind() }
func (v *otelView) StatusCode() StatusCode     { return v.span.Status().Code }
func (v *otelView) StatusDescription() string  { return v.span.Status().Description }
func (v *otelView) SourceName() string         { return v.span.InstrumentationLibrary().Name }
func (v *otelView) SourceVersion() string      { return v.span.InstrumentationLibrary().Version }
func (v *otelView) IsAllDataRequested() bool   { return v.span.SpanContext().IsSampled() }
func (v *otelView) Baggage() []Pair            { return v.baggage }
func (v *otelView) Tags() []Pair               { return attrsToPairs(v.span.Attributes()) }

func (v *otelView) Events() []Event {
	sdkEvents := v.span.Events()
	if len(sdkEvents) == 0 {
		return nil
	}
	events := make([]Event, 0, len(sdkEvents))
	for _, e := range sdkEvents {
		events = append(events, Event{
			Name: e.Name,
			Time: e.Time,
			Tags: attrsToPairs(e.Attributes),
		})
	}
	return events
}

func (v *otelView) CustomProperty(name string) interface{} { return v.props[name] }

func attrsToPairs(attrs []attribute.KeyValue) []Pair {
	if len(attrs) == 0 {
		return nil
	}
	pairs := make([]Pair, 0, len(attrs))
	for _, kv := range attrs {
		pairs = append(pairs, Pair{Key: string(kv.Key), Value: kv.Value.AsInterface()})
	}
	return pairs
}
