package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/engine"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve [file-or-directory]",
	Short: "Serve the analyzed report as a live web dashboard",
	Long: `Analyze a CCP log file and serve the report in the browser. The file
is watched; saving a newer export over it re-runs the full analysis and pushes
the refreshed report to connected dashboards.

Examples:
  ccp-log-parser serve agent-log.txt
  ccp-log-parser serve --port 9000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "dashboard listen port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	path, err := resolveLogFile(args)
	if err != nil {
		return err
	}

	cfg := engineConfig()
	rep, err := engine.AnalyzeFile(path, cfg)
	if err != nil {
		return err
	}

	// --- Set up context with graceful shutdown ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nshutting down...")
		cancel()
		os.Exit(0)
	}()

	fmt.Fprintf(os.Stderr, "✓ Parsed %d entries (%d errors) from %s\n", rep.TotalEntries, rep.ErrorCount, path)
	fmt.Fprintf(os.Stderr, "🌐 Dashboard listening on http://localhost:%s\n", servePort)

	return server.New(rep, cfg, servePort).Start(ctx)
}
