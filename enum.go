package tracefmt

import (
	"strconv"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// integerFormat reports whether format selects ordinal rendering of
// enumerated fields.
func integerFormat(format string) bool {
	return format == "d" || format == "D"
}

// kindNames lists the symbolic names of the span kinds. The
// unspecified kind has no name and renders as empty.
var kindNames = map[SpanKind]string{ //nolint:gochecknoglobals
	trace.SpanKindInternal: "Internal",
	trace.SpanKindServer:   "Server",
	trace.SpanKindClient:   "Client",
	trace.SpanKindProducer: "Producer",
	trace.SpanKindConsumer: "Consumer",
}

// statusNames lists the symbolic names of the status codes; the unset
// code has no name for the same reason.
var statusNames = map[StatusCode]string{ //nolint:gochecknoglobals
	codes.Error: "Error",
	codes.Ok:    "Ok",
}

func (r *FieldRenderer) formatKind(kind SpanKind) string {
	return r.formatEnum(int(kind), kindNames[kind])
}

func (r *FieldRenderer) formatStatus(code StatusCode) string {
	return r.formatEnum(int(code), statusNames[code])
}

func (r *FieldRenderer) formatFlags(flags TraceFlags) string {
	name := ""
	if flags == trace.FlagsSampled {
		name = "Recorded"
	}
	return r.formatEnum(int(flags), name)
}

// formatEnum renders an enumerated value. The zero member renders as
// the empty string in name mode and "0" in integer mode; other members
// render as their symbolic name or their declaration-order ordinal.
// Any other format string is passed through to culture-aware
// formatting of the ordinal, the one place where a bad pattern is
// caller-visible.
func (r *FieldRenderer) formatEnum(ordinal int, name string) string {
	switch {
	case integerFormat(r.format):
		return strconv.Itoa(ordinal)
	case r.format != "":
		return r.sprintf(r.format, ordinal)
	case ordinal == 0:
		return ""
	case name != "":
		return name
	default:
		return strconv.Itoa(ordinal)
	}
}
