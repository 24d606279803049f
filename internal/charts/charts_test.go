package charts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

func TestWriteSkewOverTimeTooFewSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skew.png")
	rep := &model.Report{SkewSamples: []model.SkewSample{{SkewMillis: 10}}}

	ok, err := WriteSkewOverTime(rep, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no chart for a single sample")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file may be written when the chart is skipped")
	}
}

func TestWriteSkewOverTime(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	rep := &model.Report{
		SkewSamples: []model.SkewSample{
			{Timestamp: base, SkewMillis: -20, SourceIndex: 0},
			{Timestamp: base.Add(time.Second), SkewMillis: 40, SourceIndex: 1},
			{Timestamp: base.Add(2 * time.Second), SkewMillis: 10, SourceIndex: 2},
		},
	}

	path := filepath.Join(t.TempDir(), "skew.png")
	ok, err := WriteSkewOverTime(rep, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a chart to be written")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty PNG")
	}
}

func TestWriteSkewOverTimeWithoutTimestamps(t *testing.T) {
	// Records without parseable times fall back to sequence position.
	rep := &model.Report{
		SkewSamples: []model.SkewSample{
			{SkewMillis: 5, SourceIndex: 0},
			{SkewMillis: 15, SourceIndex: 4},
		},
	}

	path := filepath.Join(t.TempDir(), "skew.png")
	ok, err := WriteSkewOverTime(rep, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a chart to be written")
	}
}

func TestWriteSkewDistribution(t *testing.T) {
	summary := model.SkewSummary{
		SampleCount: 6,
		MinMillis:   0,
		MaxMillis:   100,
		Distribution: []model.SkewBucket{
			{Low: 0, High: 50, Count: 4},
			{Low: 50, High: 100, Count: 2},
		},
	}

	path := filepath.Join(t.TempDir(), "dist.png")
	ok, err := WriteSkewDistribution(summary, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a chart to be written")
	}
}

func TestWriteSkewDistributionEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.png")
	ok, err := WriteSkewDistribution(model.SkewSummary{}, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no chart for an empty distribution")
	}
}
