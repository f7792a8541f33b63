package tracefmt

import (
	"errors"
	"fmt"
	"strings"
)

// Field selects which span field a FieldRenderer writes. The zero
// value is FieldTraceID.
type Field int

const (
	// FieldTraceID renders the hex trace id of the span.
	FieldTraceID Field = iota
	// FieldID renders the full W3C traceparent form of the span,
	// 00-<trace-id>-<span-id>-<flags>.
	FieldID
	// FieldSpanID renders the hex span id.
	FieldSpanID
	// FieldOperationName renders the operation name.
	FieldOperationName
	// FieldDisplayName renders the display name.
	FieldDisplayName
	// FieldStartTimeUTC renders the start timestamp in UTC. The
	// Format option is a Go time layout; RFC3339Nano by default.
	FieldStartTimeUTC
	// FieldDuration renders the elapsed time of the span.
	FieldDuration
	// FieldDurationMs renders the elapsed time in milliseconds with
	// microsecond precision, e.g. "1500.250".
	FieldDurationMs
	// FieldBaggage renders the baggage collection, or a single
	// baggage value when Item is set.
	FieldBaggage
	// FieldTags renders the tag collection, or a single tag value
	// when Item is set.
	FieldTags
	// FieldParentID renders the W3C traceparent form of the parent
	// span context.
	FieldParentID
	// FieldParentSpanID renders the hex span id of the parent span
	// context.
	FieldParentSpanID
	// FieldRootID renders the trace id of the top-most ancestor.
	FieldRootID
	// FieldTraceState renders the W3C tracestate string.
	FieldTraceState
	// FieldTraceFlags renders the trace flags, "Recorded" when the
	// sampled bit is set.
	FieldTraceFlags
	// FieldEvents renders the event list.
	FieldEvents
	// FieldCustomProperty renders the custom property named by Item,
	// falling back to the parent span's property of the same name.
	FieldCustomProperty
	// FieldSourceName renders the instrumentation scope name.
	FieldSourceName
	// FieldSourceVersion renders the instrumentation scope version.
	FieldSourceVersion
	// FieldSpanKind renders the span kind, e.g. "Server".
	FieldSpanKind
	// FieldStatus renders the status code, e.g. "Ok".
	FieldStatus
	// FieldStatusDescription renders the status description.
	FieldStatusDescription
	// FieldAllDataRequested renders "1" when the span records all
	// data, "0" otherwise.
	FieldAllDataRequested
)

// fieldNames maps each Field to its canonical configuration spelling.
var fieldNames = map[Field]string{ //nolint:gochecknoglobals
	FieldTraceID:           "TraceId",
	FieldID:                "Id",
	FieldSpanID:            "SpanId",
	FieldOperationName:     "OperationName",
	FieldDisplayName:       "DisplayName",
	FieldStartTimeUTC:      "StartTimeUtc",
	FieldDuration:          "Duration",
	FieldDurationMs:        "DurationMs",
	FieldBaggage:           "Baggage",
	FieldTags:              "Tags",
	FieldParentID:          "ParentId",
	FieldParentSpanID:      "ParentSpanId",
	FieldRootID:            "RootId",
	FieldTraceState:        "TraceState",
	FieldTraceFlags:        "TraceFlags",
	FieldEvents:            "Events",
	FieldCustomProperty:    "CustomProperty",
	FieldSourceName:        "SourceName",
	FieldSourceVersion:     "SourceVersion",
	FieldSpanKind:          "SpanKind",
	FieldStatus:            "Status",
	FieldStatusDescription: "StatusDescription",
	FieldAllDataRequested:  "AllDataRequested",
}

// fieldAliases are additional accepted spellings, mostly kept for
// compatibility with configuration written against other span APIs.
var fieldAliases = map[string]Field{ //nolint:gochecknoglobals
	"tracestatestring":   FieldTraceState,
	"activitytraceflags": FieldTraceFlags,
	"activitykind":       FieldSpanKind,
	"isalldatarequested": FieldAllDataRequested,
}

//nolint:gochecknoglobals
var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, len(fieldNames)+len(fieldAliases))
	for f, name := range fieldNames {
		m[strings.ToLower(name)] = f
	}
	for name, f := range fieldAliases {
		m[name] = f
	}
	return m
}()

// String returns the canonical configuration spelling of the Field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ErrUnknownField is returned by ParseField for unrecognized names.
var ErrUnknownField = errors.New("unknown span field")

// ParseField resolves a configuration spelling, case-insensitively,
// into a Field. It accepts the canonical names as well as the
// TraceStateString, ActivityTraceFlags, ActivityKind and
// IsAllDataRequested aliases.
func ParseField(name string) (Field, error) {
	if f, ok := fieldsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
