package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

var rule = strings.Repeat("=", 80)
var thinRule = strings.Repeat("-", 80)

// WriteTextFile writes the human-readable report: header counts, every record
// with its full pretty-printed payload, then the parse-error section.
func WriteTextFile(rep *model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create text report: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Amazon Connect CCP Log Parser - Readable Output")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Source File: %s\n", rep.SourcePath)
	fmt.Fprintf(w, "Total Log Entries: %d\n", rep.RecordCount)
	fmt.Fprintf(w, "Snapshots Found: %d\n", rep.SnapshotCount)
	fmt.Fprintf(w, "Skew Metrics Found: %d\n", rep.SkewSummary.SampleCount)
	fmt.Fprintf(w, "Parse Errors: %d\n\n", rep.ErrorCount)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	for i, rec := range rep.Records {
		ts := rec.TimestampRaw
		if ts == "" {
			ts = "(no timestamp)"
		}
		fmt.Fprintf(w, "[%d] %s | %s | %s\n", i+1, ts, rec.Level, rec.Component)
		fmt.Fprintf(w, "Text: %s\n", rec.Text)
		fmt.Fprintln(w, thinRule)

		payload, err := json.MarshalIndent(rec.RawFields, "", "  ")
		if err != nil {
			payload = []byte(fmt.Sprintf("%v", rec.RawFields))
		}
		w.Write(payload)
		fmt.Fprintf(w, "\n\n%s\n\n", rule)
	}

	if rep.ErrorCount > 0 {
		fmt.Fprintln(w, "Parse Errors:")
		fmt.Fprintln(w, thinRule)
		for _, e := range rep.Errors {
			fmt.Fprintf(w, "Index %d: %s\n", e.SequenceIndex, e.Reason)
			fmt.Fprintf(w, "Raw: %s\n\n", e.RawFragment)
		}
	}

	return w.Flush()
}
