package model

import "time"

// Record represents a single successfully normalized CCP log entry.
type Record struct {
	Timestamp     time.Time      `json:"timestamp"`     // zero value means the entry had no parseable time
	TimestampRaw  string         `json:"timestampRaw"`  // original time field text, verbatim
	Level         string         `json:"level"`         // LOG, INFO, WARN, ERROR, ... (case-preserved)
	Component     string         `json:"component"`     // originating CCP subsystem
	Text          string         `json:"text"`          // human-readable message
	Line          int            `json:"line"`          // line number reported by the exporter
	RawFields     map[string]any `json:"rawFields"`     // the complete original entry, untouched
	SequenceIndex int            `json:"sequenceIndex"` // zero-based position in the source array
	IsSnapshot    bool           `json:"isSnapshot"`    // entry carries an agent snapshot
}

// HasTimestamp reports whether the entry's time field parsed successfully.
func (r Record) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// ParseError describes one array element that could not be normalized.
// Errors never abort a run; they sit alongside records in the same index space.
type ParseError struct {
	SequenceIndex int    `json:"sequenceIndex"`
	Reason        string `json:"reason"`
	RawFragment   string `json:"rawFragment"` // truncated snapshot of the offending element
}

// SkewSample is one client-vs-server clock comparison, in milliseconds.
// Positive means the server clock is ahead of the client clock.
type SkewSample struct {
	Timestamp   time.Time `json:"timestamp"` // the source record's own timestamp, for plotting
	SkewMillis  int64     `json:"skewMillis"`
	SourceIndex int       `json:"sourceIndex"`
}

// SkewBucket is one bar of the skew histogram. The range is inclusive on the
// low edge and exclusive on the high edge, except the final bucket which is
// closed on both.
type SkewBucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// SkewSummary aggregates all skew samples of a run. A zero SampleCount with an
// empty distribution is the normal result for files without skew data.
type SkewSummary struct {
	SampleCount  int          `json:"sampleCount"`
	MeanMillis   float64      `json:"meanMillis"`
	MinMillis    int64        `json:"minMillis"`
	MaxMillis    int64        `json:"maxMillis"`
	Distribution []SkewBucket `json:"distribution"`
}

// Report is the complete result of analyzing one log file. It is assembled in
// a single pass and read-only afterwards; renderers must not re-parse the file.
type Report struct {
	SourcePath    string         `json:"sourcePath"`
	Records       []Record       `json:"records"`
	Errors        []ParseError   `json:"errors"`
	SkewSamples   []SkewSample   `json:"skewSamples"`
	SkewSummary   SkewSummary    `json:"skewSummary"`
	LevelCounts   map[string]int `json:"levelCounts"`
	TotalEntries  int            `json:"totalEntries"`
	RecordCount   int            `json:"recordCount"`
	ErrorCount    int            `json:"errorCount"`
	SnapshotCount int            `json:"snapshotCount"`
}
