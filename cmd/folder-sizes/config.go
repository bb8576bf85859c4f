package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and manage the folder-sizes configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Write a commented default config file. Does nothing if one already exists.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in an editor",
	Long:  `Open the config file in $VISUAL or $EDITOR, creating a default file first if none exists.`,
	RunE:  runConfigEdit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	historyPath := cfg.History.Path
	if historyPath == "" {
		historyPath = config.DefaultHistoryPath()
	}

	fmt.Println("Current configuration:")
	fmt.Println()
	fmt.Printf("  %-24s %s\n", "default_path:", cfg.DefaultPath)
	fmt.Println()
	fmt.Println("  scan:")
	fmt.Printf("    %-22s %d\n", "workers:", cfg.Scan.Workers)
	fmt.Printf("    %-22s %v\n", "include_hidden:", cfg.Scan.IncludeHidden)
	fmt.Printf("    %-22s %d\n", "flush_threshold:", cfg.Scan.FlushThreshold)
	fmt.Printf("    %-22s %s\n", "progress_interval:", cfg.Scan.ProgressInterval)
	fmt.Printf("    %-22s %s\n", "shutdown_grace:", cfg.Scan.ShutdownGrace)
	fmt.Println()
	fmt.Println("  report:")
	fmt.Printf("    %-22s %s\n", "output:", cfg.Report.Output)
	fmt.Printf("    %-22s %s\n", "format:", cfg.Report.Format)
	fmt.Printf("    %-22s %v\n", "top_level:", cfg.Report.TopLevel)
	fmt.Printf("    %-22s %s\n", "min_size:", cfg.Report.MinSize)
	fmt.Println()
	fmt.Println("  history:")
	fmt.Printf("    %-22s %v\n", "enabled:", cfg.History.Enabled)
	fmt.Printf("    %-22s %s\n", "path:", historyPath)
	fmt.Printf("    %-22s %d\n", "retention_days:", cfg.History.RetentionDays)
	fmt.Println()
	fmt.Println("  logging:")
	fmt.Printf("    %-22s %s\n", "level:", cfg.Logging.Level)
	if cfg.Logging.Path != "" {
		fmt.Printf("    %-22s %s\n", "path:", cfg.Logging.Path)
	}
	fmt.Println()
	fmt.Println("Any setting can be overridden with FOLDER_SIZES_* environment")
	fmt.Println("variables, e.g. FOLDER_SIZES_SCAN_WORKERS=16.")

	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	printInfo("Config file: %s", filepath.Join(dir, "config.yaml"))

	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(dir, "config.yaml"))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "config.yaml")

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	editCmd := exec.Command(editor, configPath)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr

	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	return nil
}
