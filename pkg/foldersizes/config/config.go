package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// ScanConfig configures the scan engine.
type ScanConfig struct {
	Workers          int           `mapstructure:"workers"`
	IncludeHidden    bool          `mapstructure:"include_hidden"`
	FlushThreshold   int           `mapstructure:"flush_threshold"`
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
	ShutdownGrace    time.Duration `mapstructure:"shutdown_grace"`
}

// ReportConfig configures report generation.
type ReportConfig struct {
	Output   string `mapstructure:"output"`
	Format   string `mapstructure:"format"`
	TopLevel bool   `mapstructure:"top_level"`
	MinSize  string `mapstructure:"min_size"`
}

// HistoryConfig configures the scan history store.
type HistoryConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Path          string `mapstructure:"path"` // Empty means DefaultHistoryPath
	RetentionDays int    `mapstructure:"retention_days"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Components map[string]string `mapstructure:"components"`
}

// Config represents the application configuration.
type Config struct {
	DefaultPath string        `mapstructure:"default_path"`
	Scan        ScanConfig    `mapstructure:"scan"`
	Report      ReportConfig  `mapstructure:"report"`
	History     HistoryConfig `mapstructure:"history"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/folder-sizes/config.yaml
//   - $HOME/.config/folder-sizes/config.yaml
//
// Environment variables are prefixed with FOLDER_SIZES_
// (e.g., FOLDER_SIZES_SCAN_WORKERS).
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "folder-sizes"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "folder-sizes"))

	// Set environment variable prefix and enable auto env binding
	v.SetEnvPrefix("FOLDER_SIZES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("default_path", DefaultPath)
	v.SetDefault("scan.workers", DefaultWorkers)
	v.SetDefault("scan.include_hidden", false)
	v.SetDefault("scan.flush_threshold", DefaultFlushThreshold)
	v.SetDefault("scan.progress_interval", DefaultProgressInterval)
	v.SetDefault("scan.shutdown_grace", DefaultShutdownGrace)

	// Report defaults
	v.SetDefault("report.output", DefaultOutput)
	v.SetDefault("report.format", DefaultFormat)
	v.SetDefault("report.top_level", false)
	v.SetDefault("report.min_size", "0")

	// History defaults
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "") // Empty means use DefaultHistoryPath
	v.SetDefault("history.retention_days", DefaultRetentionDays)

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.path", "") // Empty disables file logging
	v.SetDefault("logging.components", map[string]string{
		"scanner": "warn",
		"report":  "warn",
		"history": "warn",
	})

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in paths that accept one
	if strings.HasPrefix(cfg.History.Path, "~") {
		cfg.History.Path = filepath.Join(homeDir, cfg.History.Path[1:])
	}
	if strings.HasPrefix(cfg.Logging.Path, "~") {
		cfg.Logging.Path = filepath.Join(homeDir, cfg.Logging.Path[1:])
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "folder-sizes"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "folder-sizes"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		// Config file exists, do nothing
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# folder-sizes configuration

# Default directory to scan when none is specified
default_path: %s

# Scan engine settings
scan:
  # Number of concurrent scan workers
  workers: %d
  # Include dot-prefixed files and directories
  include_hidden: false
  # Files counted locally before a worker flushes into the shared totals
  flush_threshold: %d
  # How often progress is reported
  progress_interval: %s
  # How long an interrupted scan waits for workers to finish
  shutdown_grace: %s

# Report settings
report:
  # Report file name (or path)
  output: %s
  # Report format: csv, table, json
  format: %s
  # Only report the root and its immediate subdirectories
  top_level: false
  # Omit directories smaller than this from the report ("0" keeps all)
  min_size: "0"

# Scan history settings
history:
  enabled: true
  # Database path (empty means use default: $XDG_DATA_HOME/folder-sizes/history.db)
  path: ""
  retention_days: %d

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: warn
  # Log file path (empty disables file logging)
  path: ""
  # Per-component log levels
  components:
    scanner: warn
    report: warn
    history: warn
`, DefaultPath, DefaultWorkers, DefaultFlushThreshold, DefaultProgressInterval,
		DefaultShutdownGrace, DefaultOutput, DefaultFormat, DefaultRetentionDays)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// DataDir returns $XDG_DATA_HOME/folder-sizes/ for the history database.
func DataDir() string {
	return filepath.Join(xdg.DataHome, "folder-sizes")
}

// StateDir returns $XDG_STATE_HOME/folder-sizes/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "folder-sizes")
}

// DefaultHistoryPath returns the default history database path.
func DefaultHistoryPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "folder-sizes.log")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	if err := os.MkdirAll(DataDir(), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	if err := os.MkdirAll(StateDir(), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	return nil
}
