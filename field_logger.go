package tracefmt

import (
	"strings"

	"github.com/go-logr/logr"
)

// WithSpanFields returns a composite Logger that appends the rendered
// fields of span to the keysAndValues of every Info and Error call.
// Rendering happens per call, so fields like DurationMs reflect the
// span's state at log time.
func WithSpanFields(log Logger, span SpanView, fields ...NamedField) Logger {
	return &fieldLogger{log: log, span: span, fields: fields}
}

// fieldLogger is a composite logr.Logger implementation enriching log
// entries with rendered span fields.
type fieldLogger struct {
	log    Logger
	span   SpanView
	fields []NamedField
}

func (l *fieldLogger) Enabled() bool { return l.log.Enabled() }

func (l *fieldLogger) Info(msg string, keysAndValues ...interface{}) {
	if !l.Enabled() {
		return
	}
	l.log.Info(msg, l.enrich(keysAndValues)...)
}

func (l *fieldLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	if !l.Enabled() {
		return
	}
	l.log.Error(err, msg, l.enrich(keysAndValues)...)
}

func (l *fieldLogger) V(level int) logr.Logger {
	return &fieldLogger{log: l.log.V(level), span: l.span, fields: l.fields}
}

func (l *fieldLogger) WithValues(keysAndValues ...interface{}) logr.Logger {
	return &fieldLogger{log: l.log.WithValues(keysAndValues...), span: l.span, fields: l.fields}
}

func (l *fieldLogger) WithName(name string) logr.Logger {
	return &fieldLogger{log: l.log.WithName(name), span: l.span, fields: l.fields}
}

func (l *fieldLogger) WithCallDepth(depth int) logr.Logger {
	if depthLog, ok := l.log.(logr.CallDepthLogger); ok {
		return &fieldLogger{log: depthLog.WithCallDepth(depth), span: l.span, fields: l.fields}
	}
	return l
}

// enrich appends the rendered fields after the caller's own
// keysAndValues; a fresh slice is allocated so the caller's slice is
// never modified.
func (l *fieldLogger) enrich(keysAndValues []interface{}) []interface{} {
	kvs := make([]interface{}, 0, len(keysAndValues)+len(l.fields)*2)
	kvs = append(kvs, keysAndValues...)
	var sb strings.Builder
	for _, f := range l.fields {
		sb.Reset()
		f.Renderer.Render(l.span, &sb)
		kvs = append(kvs, f.Key, sb.String())
	}
	return kvs
}
