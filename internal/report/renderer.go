package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

// Renderer writes a run report to an output stream.
type Renderer interface {
	Render(rep *model.Report) error
}

// ---------------------------------------------------------------------------
// Terminal Renderer (colorized summary)
// ---------------------------------------------------------------------------

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleLogTag = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// previewCount is how many records the terminal summary shows.
const previewCount = 3

// TerminalRenderer prints a colorized run summary plus a short record preview.
type TerminalRenderer struct {
	w io.Writer
}

// NewTerminalRenderer returns a Renderer that writes to stdout.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{w: os.Stdout}
}

func (r *TerminalRenderer) Render(rep *model.Report) error {
	fmt.Fprintln(r.w, styleTitle.Render("Parsing Summary"))
	fmt.Fprintf(r.w, "  Total entries:      %d\n", rep.TotalEntries)
	fmt.Fprintf(r.w, "  Successfully parsed: %s\n", styleOK.Render(fmt.Sprintf("%d", rep.RecordCount)))

	errLine := fmt.Sprintf("%d", rep.ErrorCount)
	if rep.ErrorCount > 0 {
		errLine = styleError.Render(errLine)
	}
	fmt.Fprintf(r.w, "  Parse errors:       %s\n", errLine)
	fmt.Fprintf(r.w, "  Agent snapshots:    %d\n", rep.SnapshotCount)
	fmt.Fprintf(r.w, "  Skew samples:       %d\n", rep.SkewSummary.SampleCount)

	if len(rep.LevelCounts) > 0 {
		fmt.Fprintln(r.w, styleTitle.Render("Levels"))
		for _, lv := range sortedLevels(rep.LevelCounts) {
			fmt.Fprintf(r.w, "  %s %d\n", levelTag(lv), rep.LevelCounts[lv])
		}
	}

	if rep.SkewSummary.SampleCount > 0 {
		s := rep.SkewSummary
		fmt.Fprintln(r.w, styleTitle.Render("Clock Skew (server - client)"))
		fmt.Fprintf(r.w, "  Average: %.2f ms\n", s.MeanMillis)
		fmt.Fprintf(r.w, "  Min:     %d ms\n", s.MinMillis)
		fmt.Fprintf(r.w, "  Max:     %d ms\n", s.MaxMillis)
	}

	r.preview(rep)

	if rep.ErrorCount > 0 {
		fmt.Fprintln(r.w, styleWarn.Render("Sample parse errors (first 5):"))
		for i, e := range rep.Errors {
			if i == 5 {
				break
			}
			fmt.Fprintf(r.w, "  Index %d: %s\n", e.SequenceIndex, e.Reason)
		}
	}

	return nil
}

// preview prints the first few records to help debug format issues.
func (r *TerminalRenderer) preview(rep *model.Report) {
	if len(rep.Records) == 0 {
		return
	}
	n := previewCount
	if len(rep.Records) < n {
		n = len(rep.Records)
	}

	fmt.Fprintln(r.w, styleTitle.Render(fmt.Sprintf("First %d log entries", n)))
	for _, rec := range rep.Records[:n] {
		ts := rec.TimestampRaw
		if ts == "" {
			ts = "(no timestamp)"
		}
		text := rec.Text
		if len(text) > 100 {
			text = text[:100] + "..."
		}
		fmt.Fprintf(r.w, "  [%d] %s %s %s\n", rec.SequenceIndex, styleDim.Render(ts), levelTag(rec.Level), styleLogTag.Render(rec.Component))
		fmt.Fprintf(r.w, "      %s\n", text)
	}
}

func levelTag(level string) string {
	padded := fmt.Sprintf("%-7s", level)
	switch level {
	case "WARN", "WARNING":
		return styleWarn.Render(padded)
	case "ERROR", "FATAL":
		return styleError.Render(padded)
	default:
		return styleLogTag.Render(padded)
	}
}

// sortedLevels returns level names in deterministic order for display.
func sortedLevels(counts map[string]int) []string {
	levels := make([]string, 0, len(counts))
	for lv := range counts {
		levels = append(levels, lv)
	}
	sort.Strings(levels)
	return levels
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer writes the whole report as one JSON document.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes indented JSON to stdout.
func NewJSONRenderer() *JSONRenderer {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Render(rep *model.Report) error {
	return r.enc.Encode(rep)
}
