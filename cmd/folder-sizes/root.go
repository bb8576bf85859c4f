package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/config"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/logging"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "folder-sizes [path]",
		Short: "Report the total size of every directory in a tree",
		Long: `folder-sizes walks a directory tree with a pool of concurrent workers
and reports the cumulative size of every directory, including the
contents of all of its subdirectories.

Results are written as a report (CSV by default) and each completed
scan is recorded in a local history store.

Examples:
  folder-sizes                          # scan the current directory
  folder-sizes /data/projects           # scan a specific tree
  folder-sizes -o - -f plain /var/log   # print a plain-text report to stdout
  folder-sizes --top-level --min-size 100M /home
  folder-sizes history                  # list recorded scans`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initializeLogging,
		RunE:              runScan,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logging.Close() }()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/folder-sizes/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress and summary output")

	rootCmd.Flags().StringP("output", "o", "", `report file path ("-" writes the report to stdout)`)
	rootCmd.Flags().StringP("format", "f", "", "report format (csv, table, plain, json, jsonl, yaml, markdown, tsv)")
	rootCmd.Flags().IntP("workers", "w", 0, "number of concurrent scan workers (0=default)")
	rootCmd.Flags().Bool("include-hidden", false, "include hidden files and directories")
	rootCmd.Flags().Bool("top-level", false, "report only the root and its immediate subdirectories")
	rootCmd.Flags().String("min-size", "", "omit directories smaller than this size (e.g. 500K, 100M, 2G)")
	rootCmd.Flags().Bool("no-history", false, "do not record this scan in history")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("report.output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("report.format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("scan.workers", rootCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("scan.include_hidden", rootCmd.Flags().Lookup("include-hidden"))
	_ = viper.BindPFlag("report.top_level", rootCmd.Flags().Lookup("top-level"))
	_ = viper.BindPFlag("report.min_size", rootCmd.Flags().Lookup("min-size"))
	_ = viper.BindPFlag("no_history", rootCmd.Flags().Lookup("no-history"))
}

// initConfig reads in the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		if dir, err := config.ConfigDir(); err == nil {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("FOLDER_SIZES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("default_path", config.DefaultPath)
	viper.SetDefault("scan.workers", config.DefaultWorkers)
	viper.SetDefault("scan.include_hidden", false)
	viper.SetDefault("scan.flush_threshold", config.DefaultFlushThreshold)
	viper.SetDefault("scan.progress_interval", config.DefaultProgressInterval)
	viper.SetDefault("scan.shutdown_grace", config.DefaultShutdownGrace)
	viper.SetDefault("report.output", config.DefaultOutput)
	viper.SetDefault("report.format", config.DefaultFormat)
	viper.SetDefault("report.top_level", false)
	viper.SetDefault("report.min_size", "0")
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.path", "")
	viper.SetDefault("history.retention_days", config.DefaultRetentionDays)
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.path", "")

	// Missing config files are fine, defaults apply.
	_ = viper.ReadInConfig()
}

func getVerbose() bool {
	return viper.GetBool("verbose")
}

func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints to stderr only when verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints informational output to stdout unless quiet.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
