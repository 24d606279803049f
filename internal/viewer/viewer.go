// Package viewer generates the standalone, self-contained HTML log viewer.
// The output is a single file openable directly in a browser; it never talks
// back to this tool.
package viewer

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

//go:embed template/viewer.html
var template string

// viewerEntry is the per-record payload embedded into the page.
type viewerEntry struct {
	Timestamp  string         `json:"timestamp"`
	Level      string         `json:"level"`
	Component  string         `json:"component"`
	Text       string         `json:"text"`
	Data       map[string]any `json:"data"`
	Index      int            `json:"index"`
	IsSnapshot bool           `json:"is_snapshot"`
}

// Render fills the embedded template with report data.
func Render(rep *model.Report) (string, error) {
	entries := make([]viewerEntry, 0, len(rep.Records))
	for _, rec := range rep.Records {
		entries = append(entries, viewerEntry{
			Timestamp:  rec.TimestampRaw,
			Level:      rec.Level,
			Component:  rec.Component,
			Text:       rec.Text,
			Data:       rec.RawFields,
			Index:      rec.SequenceIndex,
			IsSnapshot: rec.IsSnapshot,
		})
	}

	logsData, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to serialize viewer data: %w", err)
	}

	page := template
	page = strings.Replace(page, "{LOGS_DATA}", string(logsData), 1)
	page = strings.Replace(page, "{TOTAL_SNAPSHOTS}", strconv.Itoa(rep.SnapshotCount), 1)
	page = strings.Replace(page, "{TOTAL_SKEW}", strconv.Itoa(rep.SkewSummary.SampleCount), 1)
	page = strings.Replace(page, "{TOTAL_ERRORS}", strconv.Itoa(rep.ErrorCount), 1)
	return page, nil
}

// WriteFile renders the viewer and writes it to path.
func WriteFile(rep *model.Report, path string) error {
	page, err := Render(rep)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write HTML viewer: %w", err)
	}
	return nil
}
