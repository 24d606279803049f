package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

const (
	// UnknownValue marks a missing level or component.
	UnknownValue = "UNKNOWN"

	// fragmentLimit bounds the raw snapshot stored on a parse error.
	fragmentLimit = 500
)

// Extractor normalizes decoded JSON array elements into records. Field names
// are supplied by the FieldMap so exporter drift is a config change, not a
// code change.
type Extractor struct {
	fields model.FieldMap
}

// New creates an Extractor reading the given field names.
func New(fields model.FieldMap) *Extractor {
	return &Extractor{fields: fields}
}

// Extract walks the array in order and produces one record or one parse error
// per element, never both. A bad element never stops the walk: structural
// failures (element is not an object) become parse errors, while missing or
// malformed fields inside an object are resolved with defaults.
func (e *Extractor) Extract(entries []any) ([]model.Record, []model.ParseError) {
	var records []model.Record
	var errs []model.ParseError

	for i, raw := range entries {
		obj, ok := raw.(map[string]any)
		if !ok {
			errs = append(errs, model.ParseError{
				SequenceIndex: i,
				Reason:        "entry is not an object",
				RawFragment:   fragment(raw),
			})
			continue
		}
		records = append(records, e.record(obj, i))
	}

	return records, errs
}

// record builds a normalized record from one entry object. Every field has a
// default; nothing in here fails.
func (e *Extractor) record(obj map[string]any, index int) model.Record {
	rec := model.Record{
		Level:         UnknownValue,
		Component:     UnknownValue,
		Line:          index,
		RawFields:     obj,
		SequenceIndex: index,
	}

	if v, ok := strField(obj, e.fields.Level); ok {
		rec.Level = v
	}
	if v, ok := strField(obj, e.fields.Component); ok {
		rec.Component = v
	}
	if v, ok := strField(obj, e.fields.Text); ok {
		rec.Text = v
	}
	if v, ok := intField(obj, e.fields.Line); ok {
		rec.Line = v
	}

	if v, ok := strField(obj, e.fields.Time); ok {
		rec.TimestampRaw = v
		if t, ok := ParseTimestamp(v); ok {
			rec.Timestamp = t
		}
	}

	rec.IsSnapshot = isSnapshot(obj, rec.Text)
	return rec
}

// isSnapshot flags agent snapshot entries the way the CCP exporter marks
// them: either the message mentions a snapshot or the payload carries an
// agentSnapshot object somewhere.
func isSnapshot(obj map[string]any, text string) bool {
	if strings.Contains(strings.ToLower(text), "snapshot") {
		return true
	}
	if _, ok := obj["agentSnapshot"]; ok {
		return true
	}
	for _, v := range obj {
		if nested, ok := v.(map[string]any); ok {
			if _, ok := nested["agentSnapshot"]; ok {
				return true
			}
		}
	}
	return false
}

// timestampLayouts are tried in order. CCP exports use RFC3339 with
// millisecond precision; older exports omit the zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an ISO-8601-like time string. Returns false rather
// than an error: an unparseable time never invalidates its entry.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fragment renders a bounded textual snapshot of an element for diagnostics.
func fragment(v any) string {
	var s string
	if b, err := json.Marshal(v); err == nil {
		s = string(b)
	} else {
		s = fmt.Sprintf("%v", v)
	}
	if len(s) > fragmentLimit {
		s = s[:fragmentLimit]
	}
	return s
}

// strField returns a non-empty string rendering of obj[key].
func strField(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// intField reads an integer-valued field. JSON numbers decode as float64.
func intField(obj map[string]any, key string) (int, bool) {
	switch v := obj[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
