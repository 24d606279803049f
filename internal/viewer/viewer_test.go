package viewer

import (
	"strings"
	"testing"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	rep := &model.Report{
		Records: []model.Record{
			{
				TimestampRaw:  "2024-03-01T10:30:00Z",
				Level:         "LOG",
				Component:     "ccp",
				Text:          "session created",
				RawFields:     map[string]any{"text": "session created"},
				SequenceIndex: 0,
				IsSnapshot:    true,
			},
		},
		SkewSummary:   model.SkewSummary{SampleCount: 4},
		ErrorCount:    2,
		SnapshotCount: 1,
	}

	page, err := Render(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, placeholder := range []string{"{LOGS_DATA}", "{TOTAL_SNAPSHOTS}", "{TOTAL_SKEW}", "{TOTAL_ERRORS}"} {
		if strings.Contains(page, placeholder) {
			t.Errorf("placeholder %s not substituted", placeholder)
		}
	}

	for _, want := range []string{
		`"session created"`,
		`"is_snapshot":true`,
		"<b>1</b>", // snapshots
		"<b>4</b>", // skew metrics
		"<b>2</b>", // parse errors
	} {
		if !strings.Contains(page, want) {
			t.Errorf("viewer page missing %q", want)
		}
	}
}

func TestRenderEmptyReport(t *testing.T) {
	page, err := Render(&model.Report{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(page, "const logsData = [];") {
		t.Error("expected an empty logsData array")
	}
}
