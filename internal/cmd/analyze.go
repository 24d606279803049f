package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/charts"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/discovery"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/engine"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/report"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/viewer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file-or-directory]",
	Short: "Analyze a CCP log file and generate all output artifacts",
	Long: `Analyze a CCP agent log export. Given a file, it is analyzed directly;
given a directory (or no argument, which uses the configured logs_dir), the
.txt/.log files inside are listed for interactive selection.

Generates, next to the working directory:
  ccp_logs_readable.txt   plain-text report
  ccp_logs_viewer.html    standalone interactive viewer
  skew_over_time.png      clock skew time-series chart
  skew_distribution.png   clock skew histogram

Examples:
  ccp-log-parser analyze agent-log.txt
  ccp-log-parser analyze ./agentLogsToParse
  ccp-log-parser analyze -o json agent-log.txt > report.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path, err := resolveLogFile(args)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "⚙ Parsing %s...\n", filepath.Base(path))
	rep, err := engine.AnalyzeFile(path, engineConfig())
	if err != nil {
		return err
	}

	var renderer report.Renderer
	switch outputFmt {
	case "json":
		renderer = report.NewJSONRenderer()
	default:
		renderer = report.NewTerminalRenderer()
	}
	if err := renderer.Render(rep); err != nil {
		return err
	}

	// Generated artifacts.
	textPath := filepath.Join(outputDir, "ccp_logs_readable.txt")
	if err := report.WriteTextFile(rep, textPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Readable logs saved to: %s\n", textPath)

	htmlPath := filepath.Join(outputDir, "ccp_logs_viewer.html")
	if err := viewer.WriteFile(rep, htmlPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Interactive HTML viewer saved to: %s\n", htmlPath)

	timePath := filepath.Join(outputDir, "skew_over_time.png")
	if ok, err := charts.WriteSkewOverTime(rep, timePath); err != nil {
		return err
	} else if ok {
		fmt.Fprintf(os.Stderr, "✓ Skew over time graph saved to: %s\n", timePath)
	}

	distPath := filepath.Join(outputDir, "skew_distribution.png")
	if ok, err := charts.WriteSkewDistribution(rep.SkewSummary, distPath); err != nil {
		return err
	} else if ok {
		fmt.Fprintf(os.Stderr, "✓ Skew distribution graph saved to: %s\n", distPath)
	}

	if rep.SkewSummary.SampleCount == 0 {
		fmt.Fprintln(os.Stderr, "⚠ No skew metrics found in logs; charts skipped")
	}

	return nil
}

// resolveLogFile turns the command argument into a concrete file path,
// running the interactive menu when a directory is given.
func resolveLogFile(args []string) (string, error) {
	target := viper.GetString("logs_dir")
	if len(args) == 1 {
		target = args[0]
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("no such file or directory: %s", target)
	}
	if !info.IsDir() {
		return target, nil
	}

	files, err := discovery.Scan(target)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no log files found in %s (supported: .txt, .log)", target)
	}

	history := discovery.NewHistory(filepath.Join(target, ".ccp-parser-state.json"))
	menu := &discovery.Menu{In: os.Stdin, Out: os.Stderr}
	selected, err := menu.Select(files, history.LastFile())
	if err != nil {
		return "", err
	}

	history.Record(selected.Path)
	if err := history.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save selection history: %v\n", err)
	}

	return selected.Path, nil
}
