package tracefmt

import (
	"strings"
)

// eventTimestampLayout is the invariant timestamp form used for
// JSON-rendered events, equivalent to "yyyy-MM-dd HH:mm:ss zzz".
const eventTimestampLayout = "2006-01-02 15:04:05 -07:00"

// eventTagsPrefix opens the nested tag dictionary of a JSON-rendered
// event. Note that the "=" and the shared " }" closer do not form
// well-formed JSON; the layout is kept exactly as downstream log
// consumers already parse it.
const eventTagsPrefix = `, "tags"={ `

// escapeQuotes escapes embedded double quotes. It is the only escaping
// the JSON-like style applies, and the flat style applies none at all.
func escapeQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s, `"`, `\"`)
}

func (r *FieldRenderer) writePairs(sink Sink, pairs []Pair) {
	if len(pairs) == 0 {
		return
	}
	if r.format == JSONFormat {
		writePairsJSON(sink, pairs, "{ ")
		return
	}
	writePairsFlat(sink, pairs)
}

// writePairsFlat renders pairs as comma-separated key=value text. A
// pair whose value converts to "no value" contributes its bare key
// without the "=" suffix. Keys and values are never quoted.
func writePairsFlat(sink Sink, pairs []Pair) {
	for i, p := range pairs {
		if i > 0 {
			writeString(sink, ",")
		}
		writeString(sink, p.Key)
		if v, ok := DisplayText(p.Value); ok {
			writeString(sink, "=")
			writeString(sink, v)
		}
	}
}

// writePairsJSON renders pairs as a JSON-like dictionary. Pairs with
// blank keys are skipped; the opening prefix and the " }" closer are
// only written when at least one pair was emitted, so an all-blank
// collection renders as nothing rather than "{ }".
func writePairsJSON(sink Sink, pairs []Pair, prefix string) {
	first := true
	for _, p := range pairs {
		if strings.TrimSpace(p.Key) == "" {
			continue
		}
		if first {
			writeString(sink, prefix)
		} else {
			writeString(sink, ", ")
		}
		writeString(sink, `"`)
		writeString(sink, escapeQuotes(p.Key))
		writeString(sink, `": `)
		if v, ok := DisplayText(p.Value); ok {
			writeString(sink, `"`)
			writeString(sink, escapeQuotes(v))
			writeString(sink, `"`)
		} else {
			writeString(sink, "null")
		}
		first = false
	}
	if !first {
		writeString(sink, " }")
	}
}

func (r *FieldRenderer) writeEvents(sink Sink, events []Event) {
	if len(events) == 0 {
		return
	}
	if r.format == JSONFormat {
		writeEventsJSON(sink, events)
		return
	}
	writeEventsFlat(sink, events)
}

func writeEventsFlat(sink Sink, events []Event) {
	for i, e := range events {
		if i > 0 {
			writeString(sink, ", ")
		}
		writeString(sink, e.Name)
	}
}

// writeEventsJSON renders events as a JSON-like list. Events with
// blank names are skipped, and the "[ " opener and " ]" closer only
// appear when at least one event was emitted.
func writeEventsJSON(sink Sink, events []Event) {
	first := true
	for _, e := range events {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		if first {
			writeString(sink, "[ ")
		} else {
			writeString(sink, ", ")
		}
		writeString(sink, `{ "name": "`)
		writeString(sink, escapeQuotes(e.Name))
		writeString(sink, `", "timestamp": "`)
		writeString(sink, e.Time.Format(eventTimestampLayout))
		writeString(sink, `"`)
		writePairsJSON(sink, e.Tags, eventTagsPrefix)
		writeString(sink, " }")
		first = false
	}
	if !first {
		writeString(sink, " ]")
	}
}
