package tracefmt

import (
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
)

type (
	// Logger is a symbolic link to logr.Logger.
	Logger = logr.Logger
	// SpanKind is a symbolic link to trace.SpanKind.
	SpanKind = trace.SpanKind
	// StatusCode is a symbolic link to codes.Code.
	StatusCode = codes.Code
	// TraceFlags is a symbolic link to trace.TraceFlags.
	TraceFlags = trace.TraceFlags
	// Culture is a symbolic link to language.Tag. The zero value,
	// language.Und, selects invariant formatting.
	Culture = language.Tag
)

//counterfeiter:generate . Sink

// Sink is the append-only text buffer a FieldRenderer writes into.
// Both *bytes.Buffer and *strings.Builder implement Sink. The renderer
// never reads the sink back; ownership stays with the caller.
type Sink interface {
	WriteString(s string) (int, error)
}

// Pair is one key/value item of a span's baggage or tag collection.
// The value may be an arbitrary object; it is converted to text at
// render time using DisplayText.
type Pair struct {
	Key   string
	Value interface{}
}

// Event is a named, timestamped record attached to a span, carrying
// its own tag collection.
type Event struct {
	Name string
	Time time.Time
	Tags []Pair
}

// SpanView is the read-only view of a span that renderers read from.
// Implementations are owned by the trace-context provider; the
// renderer only ever reads.
//
// OTelView adapts an OpenTelemetry SDK span into a SpanView, and
// SpanData is a plain-struct implementation for providers that are not
// on the OpenTelemetry SDK (and for tests).
type SpanView interface {
	// SpanContext carries the trace id, span id, trace flags and
	// trace state of the span itself.
	SpanContext() trace.SpanContext
	// ParentSpanContext is the context of the parent span, local or
	// remote. It is the zero (invalid) trace.SpanContext when the span
	// is a root span.
	ParentSpanContext() trace.SpanContext
	// Parent is the in-process parent span view, or nil. A remote
	// parent has a valid ParentSpanContext but a nil Parent.
	Parent() SpanView

	OperationName() string
	DisplayName() string

	// StartTime is the span's start timestamp; the zero time means
	// "not set".
	StartTime() time.Time
	// Duration is the recorded elapsed time of the span. Zero means
	// the span has not ended yet.
	Duration() time.Duration

	Kind() SpanKind
	StatusCode() StatusCode
	StatusDescription() string

	// SourceName and SourceVersion identify the instrumentation scope
	// that produced the span; both may be empty.
	SourceName() string
	SourceVersion() string

	IsAllDataRequested() bool

	// Baggage and Tags are ordered; duplicate keys are permitted and
	// single-item lookups return the first ordinal-exact match.
	Baggage() []Pair
	Tags() []Pair
	Events() []Event

	// CustomProperty returns the named custom property registered with
	// this span, or nil. The renderer applies the one-level parent
	// fallback itself.
	CustomProperty(name string) interface{}
}
