// Package spanyaml describes a SpanView as human-readable YAML. It is
// meant for "golden file" unit tests under testdata/, where a span
// fixture and the text rendered from it are reviewed side by side.
package spanyaml

import (
	"io"

	"github.com/snakefoot/tracefmt"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// Doc is the YAML shape of a single span. All values are
// pre-converted strings so the marshalled output stays stable across
// library versions.
type Doc struct {
	Name              string     `yaml:"name,omitempty"`
	TraceID           string     `yaml:"traceId,omitempty"`
	SpanID            string     `yaml:"spanId,omitempty"`
	ParentSpanID      string     `yaml:"parentSpanId,omitempty"`
	Kind              string     `yaml:"kind,omitempty"`
	Status            string     `yaml:"status,omitempty"`
	StatusDescription string     `yaml:"statusDescription,omitempty"`
	StartTime         string     `yaml:"startTime,omitempty"`
	DurationMs        string     `yaml:"durationMs,omitempty"`
	Source            string     `yaml:"source,omitempty"`
	Baggage           []Item     `yaml:"baggage,omitempty"`
	Tags              []Item     `yaml:"tags,omitempty"`
	Events            []EventDoc `yaml:"events,omitempty"`
}

// Item is one baggage or tag entry.
type Item struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value,omitempty"`
}

// EventDoc is one span event.
type EventDoc struct {
	Name string `yaml:"name"`
	Time string `yaml:"time,omitempty"`
	Tags []Item `yaml:"tags,omitempty"`
}

// FromView captures the given span view into a Doc, using the same
// renderers and value conversion the log output uses.
func FromView(v tracefmt.SpanView) Doc {
	doc := Doc{
		Name:              v.DisplayName(),
		TraceID:           render(v, tracefmt.FieldTraceID),
		SpanID:            render(v, tracefmt.FieldSpanID),
		ParentSpanID:      render(v, tracefmt.FieldParentSpanID),
		Kind:              render(v, tracefmt.FieldSpanKind),
		Status:            render(v, tracefmt.FieldStatus),
		StatusDescription: v.StatusDescription(),
		StartTime:         render(v, tracefmt.FieldStartTimeUTC),
		DurationMs:        render(v, tracefmt.FieldDurationMs),
		Source:            v.SourceName(),
		Baggage:           items(v.Baggage()),
		Tags:              items(v.Tags()),
	}
	for _, e := range v.Events() {
		doc.Events = append(doc.Events, EventDoc{
			Name: e.Name,
			Time: e.Time.UTC().Format("2006-01-02 15:04:05 -07:00"),
			Tags: items(e.Tags),
		})
	}
	return doc
}

// Marshal converts the span view into its YAML document form.
func Marshal(v tracefmt.SpanView) ([]byte, error) {
	return yaml.Marshal(FromView(v))
}

// Write writes each span view as a one-element YAML list item to w, so
// multiple spans concatenate into a single valid YAML list. Marshal
// and write errors for individual spans are combined; later spans are
// still attempted.
func Write(w io.Writer, views ...tracefmt.SpanView) error {
	var errs []error
	for _, v := range views {
		out, err := yaml.Marshal([]Doc{FromView(v)})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := w.Write(out); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func render(v tracefmt.SpanView, f tracefmt.Field) string {
	return tracefmt.Renderer().WithField(f).Build().RenderString(v)
}

func items(pairs []tracefmt.Pair) []Item {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]Item, 0, len(pairs))
	for _, p := range pairs {
		value, _ := tracefmt.DisplayText(p.Value)
		out = append(out, Item{Key: p.Key, Value: value})
	}
	return out
}
