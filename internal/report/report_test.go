package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		SourcePath: "agent-log.txt",
		Records: []model.Record{
			{
				TimestampRaw:  "2024-03-01T10:30:00Z",
				Level:         "LOG",
				Component:     "ccp",
				Text:          "softphone session created",
				RawFields:     map[string]any{"level": "LOG", "text": "softphone session created"},
				SequenceIndex: 0,
			},
			{
				Level:         "ERROR",
				Component:     "UNKNOWN",
				Text:          "ice connection failed",
				RawFields:     map[string]any{"text": "ice connection failed"},
				SequenceIndex: 1,
			},
		},
		Errors: []model.ParseError{
			{SequenceIndex: 2, Reason: "entry is not an object", RawFragment: `"oops"`},
		},
		SkewSummary:  model.SkewSummary{SampleCount: 2, MeanMillis: 75, MinMillis: 50, MaxMillis: 100},
		LevelCounts:  map[string]int{"LOG": 1, "ERROR": 1},
		TotalEntries: 3,
		RecordCount:  2,
		ErrorCount:   1,
	}
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{w: &buf}

	if err := r.Render(sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Parsing Summary",
		"softphone session created",
		"Average: 75.00 ms",
		"Index 2: entry is not an object",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}
}

func TestWriteTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readable.txt")

	if err := WriteTextFile(sampleReport(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"Amazon Connect CCP Log Parser - Readable Output",
		"Total Log Entries: 2",
		"Parse Errors: 1",
		"[1] 2024-03-01T10:30:00Z | LOG | ccp",
		"ice connection failed",
		`"oops"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q", want)
		}
	}

	// Records without a timestamp still render a header line.
	if !strings.Contains(out, "(no timestamp) | ERROR | UNKNOWN") {
		t.Error("expected placeholder for missing timestamp")
	}
}
