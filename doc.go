/*
Package tracefmt renders fields of a distributed-tracing span as text
for inclusion in log output.

The package is a formatting adapter: given a read-only view of the
"current span" (SpanView) and a field selection (Field), a
FieldRenderer writes a deterministic textual representation of that
field into a caller-supplied Sink. It never creates or mutates spans,
never propagates context, and never fails a render; absent spans,
unset values and unfound items all render as empty output, so a bad
value can never abort the log event that carries it.

A FieldRenderer is constructed with the Renderer() builder:

	r := tracefmt.Renderer().
		WithField(tracefmt.FieldDurationMs).
		Build()
	r.Render(span, &buf)

The field selection covers identifiers (trace id, span id, the W3C
traceparent form, parent and root linkage), names, timing, status,
kind, trace flags, instrumentation source, baggage, tags, events and
custom properties. Baggage, tags and events render either as flat
key=value text or, when the format string is "@", in a JSON-like
style with embedded quotes escaped. Baggage and tag lookups of a
single item are ordinal-exact and return the first match.

Timing output is tuned for the hot logging path: DurationMs splits the
elapsed time into whole milliseconds and a microsecond remainder and
serves both from a process-wide, lazily-published lookup table of
pre-rendered integers, avoiding locale-aware floating-point machinery
entirely. The table is published at most once with compare-and-swap
semantics and is immutable afterwards, so concurrent first use is
safe. Supplying an explicit format string or a non-invariant Culture
(an x/text language.Tag) switches to ordinary formatting instead.

For hosts on the OpenTelemetry SDK, OTelView adapts a
tracesdk.ReadOnlySpan into a SpanView, and RenderingProcessor plugs
into the SDK pipeline to render configured fields of every ended span
into a logr.Logger. The Provider() builder wires that processor
together with stdout, Jaeger or OpenTelemetry Collector exporters.
Hosts with their own tracing layer implement SpanView directly or fill
in a SpanData struct.

WithSpanFields composes a logr.Logger that enriches every Info and
Error call with rendered span fields, which is the quickest way to get
trace correlation into existing log statements. Concrete zap-backed
loggers are available through HumanReadableLogger and JSONLogger.
*/
package tracefmt
