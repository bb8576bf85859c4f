package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/config"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/scanner"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// buildScanOptions assembles scanner options from the CLI argument,
// flags, and configuration. Zero or missing values fall back to the
// scanner defaults.
func buildScanOptions(args []string) (scanner.Options, error) {
	opts := scanner.DefaultOptions()

	scanPath := viper.GetString("default_path")
	if len(args) > 0 {
		scanPath = args[0]
	}

	root, err := resolveScanPath(scanPath)
	if err != nil {
		return opts, err
	}
	opts.Root = root

	opts.IncludeHidden = viper.GetBool("scan.include_hidden")
	if workers := viper.GetInt("scan.workers"); workers > 0 {
		opts.Workers = workers
	}
	if threshold := viper.GetInt("scan.flush_threshold"); threshold > 0 {
		opts.FlushThreshold = threshold
	}
	if interval := viper.GetDuration("scan.progress_interval"); interval > 0 {
		opts.ProgressInterval = interval
	}
	if grace := viper.GetDuration("scan.shutdown_grace"); grace > 0 {
		opts.ShutdownGrace = grace
	}

	return opts, nil
}

// resolveScanPath expands and absolutizes a path argument and verifies
// that it names an existing directory.
func resolveScanPath(path string) (string, error) {
	if path == "" {
		path = config.DefaultPath
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand path: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("path does not exist: %s", abs)
		}
		return "", fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", abs)
	}

	return abs, nil
}

// reportMinSize parses the configured minimum report size into bytes.
func reportMinSize() (int64, error) {
	s := viper.GetString("report.min_size")
	if s == "" || s == "0" {
		return 0, nil
	}

	minSize, err := types.ParseSize(s)
	if err != nil {
		return 0, fmt.Errorf("invalid min-size %q: %w", s, err)
	}
	return minSize, nil
}

// historyEnabled reports whether completed scans should be recorded.
func historyEnabled() bool {
	return viper.GetBool("history.enabled") && !viper.GetBool("no_history")
}
