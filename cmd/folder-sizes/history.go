package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/config"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/history"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scans",
	Long: `List the history of completed scans, newest first.

Every scan is recorded with its totals and report location unless
--no-history is given or history is disabled in the config.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a recorded scan",
	Long:  `Display the full details of a recorded scan. A unique ID prefix is accepted in place of the full ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove old scan records",
	Long:  `Remove scan records older than the configured retention period.`,
	RunE:  runHistoryClean,
}

var (
	historyLimit int
	historyAll   bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")
	historyCleanCmd.Flags().BoolVar(&historyAll, "all", false, "remove every record regardless of age")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// openHistory opens the history store at the configured path.
func openHistory() (*history.Store, error) {
	path := viper.GetString("history.path")
	if path == "" {
		path = config.DefaultHistoryPath()
	}
	if err := config.EnsureDataDir(); err != nil {
		return nil, err
	}
	return history.Open(path)
}

func runHistory(_ *cobra.Command, _ []string) error {
	s, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = s.Close() }()

	records, err := s.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No scans recorded yet.")
		fmt.Println("Run 'folder-sizes [path]' to scan a directory.")
		return nil
	}

	fmt.Printf("\n%-12s  %-19s  %12s  %10s  %s\n", "ID", "SCANNED", "FILES", "SIZE", "ROOT")
	fmt.Println(strings.Repeat("-", 90))

	for _, rec := range records {
		fmt.Printf("%-12s  %-19s  %12s  %10s  %s\n",
			truncateString(rec.ID, 12),
			rec.Stats.StartTime.Local().Format("2006-01-02 15:04:05"),
			humanize.Comma(rec.Stats.TotalFiles),
			types.FormatSize(rec.Stats.TotalSize),
			truncateString(rec.Root, 40),
		)
	}

	fmt.Println(strings.Repeat("-", 90))
	fmt.Println("Use 'folder-sizes history show <id>' for details on a specific scan.")

	return nil
}

func runHistoryShow(_ *cobra.Command, args []string) error {
	s, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = s.Close() }()

	rec, err := s.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	fmt.Println("\nScan Details")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("ID:           %s\n", rec.ID)
	fmt.Printf("Root:         %s\n", rec.Root)
	fmt.Printf("Scanned:      %s\n", rec.Stats.StartTime.Local().Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Duration:     %.2f seconds\n", rec.Stats.Duration().Seconds())
	fmt.Printf("Files:        %s\n", humanize.Comma(rec.Stats.TotalFiles))
	fmt.Printf("Directories:  %s\n", humanize.Comma(rec.Stats.TotalDirs))
	fmt.Printf("Total Size:   %s\n", types.FormatSize(rec.Stats.TotalSize))
	fmt.Printf("Folders:      %d\n", rec.FolderCount)
	if rec.Format != "" {
		fmt.Printf("Format:       %s\n", rec.Format)
	}
	if rec.ReportPath != "" {
		fmt.Printf("Report:       %s\n", rec.ReportPath)
	}
	if rec.ErrorCount > 0 {
		fmt.Printf("Errors:       %d\n", rec.ErrorCount)
	}
	if rec.Interrupted {
		fmt.Println("Interrupted:  yes (partial results)")
	}

	return nil
}

func runHistoryClean(_ *cobra.Command, _ []string) error {
	s, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = s.Close() }()

	if historyAll {
		removed, err := s.Clear()
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		printInfo("Removed %d scan records.", removed)
		return nil
	}

	retentionDays := viper.GetInt("history.retention_days")
	if retentionDays <= 0 {
		retentionDays = config.DefaultRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	removed, err := s.Prune(cutoff)
	if err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}

	printInfo("Removed %d scan records older than %d days.", removed, retentionDays)
	return nil
}

// truncateString shortens s to max characters, ellipsizing the tail.
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
