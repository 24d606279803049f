package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/engine"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

var (
	cfgFile   string
	outputFmt string
	outputDir string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "ccp-log-parser",
	Short: "Local Amazon Connect CCP log parser",
	Long: `Parses locally exported Amazon Connect CCP agent log files (a single
JSON array of entries), tolerating malformed entries, and produces a readable
text report, an interactive HTML viewer, clock-skew charts, and a live web
dashboard.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.ccp-log-parser.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out-dir", "d", ".", "directory for generated files")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".ccp-log-parser")
		viper.SetConfigType("yaml")
	}

	// The CCP export format is externally controlled; every recognized field
	// name can be overridden in config when the exporter drifts.
	viper.SetDefault("logs_dir", "agentLogsToParse")
	viper.SetDefault("skew.buckets", 30)
	viper.SetDefault("fields.time", "time")
	viper.SetDefault("fields.level", "level")
	viper.SetDefault("fields.component", "component")
	viper.SetDefault("fields.text", "text")
	viper.SetDefault("fields.line", "line")
	viper.SetDefault("fields.client_timestamp", "clientTimestamp")
	viper.SetDefault("fields.server_timestamp", "serverTimestamp")

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// engineConfig builds the analysis configuration from viper settings.
func engineConfig() engine.Config {
	return engine.Config{
		Fields: model.FieldMap{
			Time:            viper.GetString("fields.time"),
			Level:           viper.GetString("fields.level"),
			Component:       viper.GetString("fields.component"),
			Text:            viper.GetString("fields.text"),
			Line:            viper.GetString("fields.line"),
			ClientTimestamp: viper.GetString("fields.client_timestamp"),
			ServerTimestamp: viper.GetString("fields.server_timestamp"),
		},
		SkewBuckets: viper.GetInt("skew.buckets"),
	}
}
