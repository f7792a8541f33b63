package tracefmt

import (
	"time"

	"go.opentelemetry.io/otel/trace"
)

// SpanData is a plain-struct SpanView implementation. It suits
// trace-context providers that are not on the OpenTelemetry SDK, and
// doubles as the fixture type in tests. The renderer never mutates a
// SpanData; collections are exposed as-is.
type SpanData struct {
	// Context and ParentContext carry the identifiers of the span and
	// of its (possibly remote) parent.
	Context       trace.SpanContext
	ParentContext trace.SpanContext
	// ParentSpan links to the in-process parent view, if any.
	ParentSpan SpanView

	Operation string
	Display   string

	Start   time.Time
	Elapsed time.Duration

	SpanKind    SpanKind
	Code        StatusCode
	Description string

	Source  string
	Version string

	AllDataRequested bool

	BaggageItems []Pair
	TagItems     []Pair
	EventItems   []Event

	// Properties backs CustomProperty lookups; a nil map means the
	// span has no custom properties.
	Properties map[string]interface{}
}

var _ SpanView = &SpanData{}

func (s *SpanData) SpanContext() trace.SpanContext       { return s.Context }
func (s *SpanData) ParentSpanContext() trace.SpanContext { return s.ParentContext }
func (s *SpanData) Parent() SpanView                     { return s.ParentSpan }
func (s *SpanData) OperationName() string                { return s.Operation }
func (s *SpanData) DisplayName() string                  { return s.Display }
func (s *SpanData) StartTime() time.Time                 { return s.Start }
func (s *SpanData) Duration() time.Duration              { return s.Elapsed }
func (s *SpanData) Kind() SpanKind                       { return s.SpanKind }
func (s *SpanData) StatusCode() StatusCode               { return s.Code }
func (s *SpanData) StatusDescription() string            { return s.Description }
func (s *SpanData) SourceName() string                   { return s.Source }
func (s *SpanData) SourceVersion() string                { return s.Version }
func (s *SpanData) IsAllDataRequested() bool             { return s.AllDataRequested }
func (s *SpanData) Baggage() []Pair                      { return s.BaggageItems }
func (s *SpanData) Tags() []Pair                         { return s.TagItems }
func (s *SpanData) Events() []Event                      { return s.EventItems }

func (s *SpanData) CustomProperty(name string) interface{} { return s.Properties[name] }
