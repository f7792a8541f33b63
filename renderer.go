package tracefmt

import (
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// JSONFormat is the Format value that switches collection and event
// rendering from the flat key=value style to the JSON-like style.
const JSONFormat = "@"

// maxParentWalk bounds Parent() chain traversal. Provider-supplied
// back-references are not guaranteed to be acyclic, and an accidental
// cycle must not hang the logging path.
const maxParentWalk = 1000

// FieldRenderer renders a single field of a span as text into a Sink.
// It is pure computation and safe for concurrent use, as long as each
// invocation gets its own Sink.
//
// Use the Renderer() builder to construct one.
type FieldRenderer struct {
	field   Field
	item    string
	format  string
	culture Culture
	parent  bool
	root    bool
}

// RendererBuilder is a builder-pattern constructor for a
// FieldRenderer.
type RendererBuilder struct {
	r FieldRenderer
}

// Renderer returns a new *RendererBuilder. The zero configuration
// renders the trace id of the current span with invariant formatting.
func Renderer() *RendererBuilder {
	return &RendererBuilder{}
}

// WithField selects the span field to render.
//
// A call to this function overwrites any previous value.
func (b *RendererBuilder) WithField(f Field) *RendererBuilder {
	b.r.field = f
	return b
}

// WithItem sets the single-item key used by the Baggage, Tags and
// CustomProperty fields. For Baggage and Tags, setting an item
// switches from whole-collection rendering to a first-match lookup of
// that exact key.
//
// A call to this function overwrites any previous value.
func (b *RendererBuilder) WithItem(item string) *RendererBuilder {
	b.r.item = item
	return b
}

// WithFormat sets the format string. JSONFormat ("@") selects the
// JSON-like collection style; a single "d" or "D" selects integer
// rendering of enumerated fields; for StartTimeUtc the format is a Go
// time layout; for numeric fields it is a fmt verb.
//
// A call to this function overwrites any previous value.
func (b *RendererBuilder) WithFormat(format string) *RendererBuilder {
	b.r.format = format
	return b
}

// WithCulture sets the locale used for locale-sensitive numeric
// formatting. The default, language.Und, keeps the invariant fast
// paths enabled.
//
// A call to this function overwrites any previous value.
func (b *RendererBuilder) WithCulture(c Culture) *RendererBuilder {
	b.r.culture = c
	return b
}

// FromParent makes the renderer read from the span's parent instead of
// the span itself.
func (b *RendererBuilder) FromParent() *RendererBuilder {
	b.r.parent = true
	return b
}

// FromRoot makes the renderer walk the parent chain, after a possible
// FromParent step, and read from the top-most ancestor.
func (b *RendererBuilder) FromRoot() *RendererBuilder {
	b.r.root = true
	return b
}

// Build builds the FieldRenderer.
func (b *RendererBuilder) Build() *FieldRenderer {
	r := b.r
	return &r
}

// Render resolves the effective span and appends the selected field's
// text to sink. An absent span, an unset value or an unfound item all
// append nothing; Render never fails.
func (r *FieldRenderer) Render(span SpanView, sink Sink) {
	span = r.effectiveSpan(span)
	if span == nil {
		return
	}
	switch r.field {
	case FieldBaggage:
		if r.item == "" {
			r.writePairs(sink, span.Baggage())
			return
		}
		writeString(sink, lookupPair(span.Baggage(), r.item))
	case FieldTags:
		if r.item == "" {
			r.writePairs(sink, span.Tags())
			return
		}
		writeString(sink, lookupPair(span.Tags(), r.item))
	case FieldEvents:
		r.writeEvents(sink, span.Events())
	case FieldDurationMs:
		r.writeDurationMs(sink, span)
	default:
		writeString(sink, r.scalar(span))
	}
}

// RenderString is a convenience wrapper around Render that collects
// the output into a string.
func (r *FieldRenderer) RenderString(span SpanView) string {
	var sb strings.Builder
	r.Render(span, &sb)
	return sb.String()
}

func (r *FieldRenderer) effectiveSpan(span SpanView) SpanView {
	if span == nil {
		return nil
	}
	if r.parent {
		span = span.Parent()
		if span == nil {
			return nil
		}
	}
	if r.root {
		span = walkRoot(span)
	}
	return span
}

// walkRoot follows Parent() links until the first nil parent, bounded
// by maxParentWalk.
func walkRoot(span SpanView) SpanView {
	for i := 0; i < maxParentWalk; i++ {
		parent := span.Parent()
		if parent == nil {
			return span
		}
		span = parent
	}
	return span
}

func (r *FieldRenderer) scalar(span SpanView) string {
	switch r.field {
	case FieldID:
		return traceparent(span.SpanContext())
	case FieldTraceID:
		if sc := span.SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	case FieldSpanID:
		if sc := span.SpanContext(); sc.HasSpanID() {
			return sc.SpanID().String()
		}
	case FieldOperationName:
		return span.OperationName()
	case FieldDisplayName:
		return span.DisplayName()
	case FieldStartTimeUTC:
		return r.startTime(span)
	case FieldDuration:
		return r.durationText(span)
	case FieldParentID:
		return traceparent(span.ParentSpanContext())
	case FieldParentSpanID:
		if psc := span.ParentSpanContext(); psc.HasSpanID() {
			return psc.SpanID().String()
		}
	case FieldRootID:
		if sc := walkRoot(span).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	case FieldTraceState:
		return span.SpanContext().TraceState().String()
	case FieldTraceFlags:
		return r.formatFlags(span.SpanContext().TraceFlags())
	case FieldCustomProperty:
		return r.customProperty(span)
	case FieldSourceName:
		return span.SourceName()
	case FieldSourceVersion:
		return span.SourceVersion()
	case FieldSpanKind:
		return r.formatKind(span.Kind())
	case FieldStatus:
		return r.formatStatus(span.StatusCode())
	case FieldStatusDescription:
		return span.StatusDescription()
	case FieldAllDataRequested:
		if span.IsAllDataRequested() {
			return "1"
		}
		return "0"
	}
	return ""
}

// traceparent renders a span context in the W3C traceparent form,
// 00-<trace-id>-<span-id>-<flags>, or nothing for an invalid context.
func traceparent(sc trace.SpanContext) string {
	if !sc.HasTraceID() || !sc.HasSpanID() {
		return ""
	}
	return fmt.Sprintf("00-%s-%s-%02x",
		sc.TraceID().String(), sc.SpanID().String(), byte(sc.TraceFlags()))
}

func (r *FieldRenderer) startTime(span SpanView) string {
	start := span.StartTime()
	if start.IsZero() {
		return ""
	}
	layout := r.format
	if layout == "" {
		layout = time.RFC3339Nano
	}
	return start.UTC().Format(layout)
}

func (r *FieldRenderer) durationText(span SpanView) string {
	d, ok := elapsed(span)
	if !ok {
		return ""
	}
	if r.format == "" {
		return d.String()
	}
	return r.sprintf(r.format, d)
}

// elapsed reports the span's elapsed time. A zero recorded duration
// means the span is still open; elapsed time is then measured against
// the wall clock, clamped to the smallest representable duration so
// that clock skew never yields a negative value. An open span without
// a start time has no elapsed time at all.
func elapsed(span SpanView) (time.Duration, bool) {
	if d := span.Duration(); d != 0 {
		return d, true
	}
	start := span.StartTime()
	if start.IsZero() {
		return 0, false
	}
	d := time.Now().UTC().Sub(start)
	if d < 0 {
		d = time.Duration(1)
	}
	return d, true
}

// lookupPair returns the display text of the first pair whose key is
// exactly item, or the empty string when no pair matches.
func lookupPair(pairs []Pair, item string) string {
	for _, p := range pairs {
		if p.Key == item {
			s, _ := DisplayText(p.Value)
			return s
		}
	}
	return ""
}

func (r *FieldRenderer) customProperty(span SpanView) string {
	if r.item == "" {
		return ""
	}
	v := span.CustomProperty(r.item)
	if v == nil {
		parent := span.Parent()
		if parent == nil {
			return ""
		}
		v = parent.CustomProperty(r.item)
	}
	s, _ := DisplayText(v)
	return s
}

// sprintf formats through the plain fmt package for the invariant
// culture and through an x/text message printer otherwise.
func (r *FieldRenderer) sprintf(format string, args ...interface{}) string {
	if r.culture == language.Und {
		return fmt.Sprintf(format, args...)
	}
	return message.NewPrinter(r.culture).Sprintf(format, args...)
}

// writeString appends s to sink, skipping the call entirely for empty
// output.
func writeString(sink Sink, s string) {
	if len(s) == 0 {
		return
	}
	_, _ = sink.WriteString(s)
}
