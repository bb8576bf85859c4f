package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/disk"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/history"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/report"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/scanner"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// runScan is the handler for the root command. It scans the requested
// tree, writes the report, prints a summary, and records the scan in
// history.
func runScan(_ *cobra.Command, args []string) error {
	opts, err := buildScanOptions(args)
	if err != nil {
		return err
	}

	minSize, err := reportMinSize()
	if err != nil {
		return err
	}

	formatName := viper.GetString("report.format")
	formatter, err := report.Get(formatName)
	if err != nil {
		return fmt.Errorf("unknown report format %q (available: %v)", formatName, report.Available())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First signal cancels the scan; the engine drains workers and
	// returns partial results.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, stopping scan...")
		cancel()
	}()

	var progress *progressPrinter
	if !getQuiet() {
		progress = newProgressPrinter(os.Stderr)
		opts.OnProgress = progress.update
	}

	printVerbose("Scanning %s with %d workers", opts.Root, opts.Workers)

	s := scanner.New(opts)
	result, err := s.Scan(ctx)
	if progress != nil {
		progress.finish()
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	rep := report.Build(result, report.Options{
		TopLevel: viper.GetBool("report.top_level"),
		MinSize:  minSize,
	})

	var buf bytes.Buffer
	if err := formatter.Format(&buf, rep); err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	outPath := viper.GetString("report.output")
	toStdout := outPath == "-"
	if toStdout {
		fmt.Print(buf.String())
	} else {
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		printInfo("Report written to %s", outPath)
	}

	if !getQuiet() {
		printSummary(rep, result, toStdout)
	}

	if historyEnabled() {
		if err := recordScan(result, rep, outPath, formatName); err != nil {
			printVerbose("Failed to record scan history: %v", err)
		}
	}

	return nil
}

// printSummary writes the post-scan summary. When the report itself
// went to stdout the summary moves to stderr so the report stays
// machine-readable.
func printSummary(rep *report.Report, result *types.Result, reportOnStdout bool) {
	w := os.Stdout
	if reportOnStdout {
		w = os.Stderr
	}

	fmt.Fprintln(w, report.Summary(rep))

	if usage, err := disk.Stat(result.Root); err == nil && usage.Total > 0 {
		fmt.Fprintf(w, "Filesystem: %s free of %s (%.1f%% used)\n",
			types.FormatSize(usage.Free), types.FormatSize(usage.Total), usage.UsedPercent())
	}
}

// recordScan appends the completed scan to the history store.
func recordScan(result *types.Result, rep *report.Report, outPath, format string) error {
	s, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	reportPath := outPath
	if reportPath != "-" {
		if abs, err := filepath.Abs(reportPath); err == nil {
			reportPath = abs
		}
	}

	return s.Append(&history.Record{
		Root:        result.Root,
		Stats:       result.Stats,
		FolderCount: len(rep.Rows),
		Interrupted: result.Interrupted,
		ErrorCount:  len(result.Errors),
		ReportPath:  reportPath,
		Format:      format,
	})
}
