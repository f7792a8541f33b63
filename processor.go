package tracefmt

import (
	"context"
	"strings"

	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

// NamedField couples a log attribute key with the FieldRenderer that
// produces its value.
type NamedField struct {
	Key      string
	Renderer *FieldRenderer
}

// RenderingProcessor is a tracesdk.SpanProcessor that renders the
// configured fields of every ended span into a Logger. It is the glue
// between the OpenTelemetry SDK pipeline and the renderers; it never
// blocks and never fails the pipeline.
type RenderingProcessor struct {
	log    Logger
	fields []NamedField
}

var _ tracesdk.SpanProcessor = &RenderingProcessor{}

// Processor returns a new *ProcessorBuilder logging to log. A nil log
// falls back to GetGlobalLogger().
func Processor(log Logger) *ProcessorBuilder {
	return &ProcessorBuilder{log: log}
}

// ProcessorBuilder is a builder-pattern constructor for a
// RenderingProcessor.
type ProcessorBuilder struct {
	log    Logger
	fields []NamedField
}

// WithField registers a rendered field under the given log attribute
// key.
//
// A call to this function appends to the list of previous values.
func (b *ProcessorBuilder) WithField(key string, r *FieldRenderer) *ProcessorBuilder {
	b.fields = append(b.fields, NamedField{Key: key, Renderer: r})
	return b
}

// Build builds the RenderingProcessor. Without any WithField calls the
// processor renders the trace id, span id and elapsed milliseconds.
func (b *ProcessorBuilder) Build() *RenderingProcessor {
	log := b.log
	if log == nil {
		log = GetGlobalLogger()
	}
	fields := b.fields
	if len(fields) == 0 {
		fields = []NamedField{
			{Key: "trace-id", Renderer: Renderer().WithField(FieldTraceID).Build()},
			{Key: "span-id", Renderer: Renderer().WithField(FieldSpanID).Build()},
			{Key: "duration-ms", Renderer: Renderer().WithField(FieldDurationMs).Build()},
		}
	}
	return &RenderingProcessor{log: log, fields: fields}
}

// OnStart implements tracesdk.SpanProcessor.
func (p *RenderingProcessor) OnStart(context.Context, tracesdk.ReadWriteSpan) {}

// OnEnd renders the configured fields of the ended span and emits one
// log entry carrying them.
func (p *RenderingProcessor) OnEnd(s tracesdk.ReadOnlySpan) {
	if !p.log.Enabled() {
		return
	}
	view := OTelView(s).Build()
	kvs := make([]interface{}, 0, len(p.fields)*2)
	var sb strings.Builder
	for _, f := range p.fields {
		sb.Reset()
		f.Renderer.Render(view, &sb)
		kvs = append(kvs, f.Key, sb.String())
	}
	p.log.WithName(s.Name()).Info("span ended", kvs...)
}

// Shutdown implements tracesdk.SpanProcessor.
func (p *RenderingProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush implements tracesdk.SpanProcessor.
func (p *RenderingProcessor) ForceFlush(context.Context) error { return nil }
