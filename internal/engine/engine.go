// Package engine runs the full analysis pipeline over one log file: decode,
// extract, sample skew, summarize, assemble. Each run is independent; the
// engine holds no state between invocations.
package engine

import (
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/extract"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/loader"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/skew"
)

// Config controls one analysis run.
type Config struct {
	Fields      model.FieldMap
	SkewBuckets int // histogram bucket count; 0 means the default
}

// DefaultConfig returns the configuration matching current CCP exports.
func DefaultConfig() Config {
	return Config{
		Fields:      model.DefaultFieldMap(),
		SkewBuckets: skew.DefaultBucketCount,
	}
}

// Analyze decodes data as a JSON array and produces the run report. Only the
// two file-level failures (invalid JSON, non-array top level) return an error;
// everything below that is captured inside the report.
func Analyze(data []byte, sourcePath string, cfg Config) (*model.Report, error) {
	entries, err := loader.Decode(data)
	if err != nil {
		return nil, err
	}
	return build(entries, sourcePath, cfg), nil
}

// AnalyzeFile reads and analyzes the file at path.
func AnalyzeFile(path string, cfg Config) (*model.Report, error) {
	entries, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return build(entries, path, cfg), nil
}

func build(entries []any, sourcePath string, cfg Config) *model.Report {
	records, errs := extract.New(cfg.Fields).Extract(entries)
	samples := skew.Sample(records, cfg.Fields)

	levelCounts := make(map[string]int)
	snapshots := 0
	for _, rec := range records {
		levelCounts[rec.Level]++
		if rec.IsSnapshot {
			snapshots++
		}
	}

	return &model.Report{
		SourcePath:    sourcePath,
		Records:       records,
		Errors:        errs,
		SkewSamples:   samples,
		SkewSummary:   skew.Summarize(samples, cfg.SkewBuckets),
		LevelCounts:   levelCounts,
		TotalEntries:  len(records) + len(errs),
		RecordCount:   len(records),
		ErrorCount:    len(errs),
		SnapshotCount: snapshots,
	}
}
