// Package config provides configuration management for the folder-sizes scanner.
package config

import "time"

// Default configuration values for folder-sizes.
const (
	// DefaultPath is the default directory to scan when none is specified.
	DefaultPath = "."

	// DefaultOutput is the default report file name.
	DefaultOutput = "folder_sizes.csv"

	// DefaultFormat is the default report format.
	DefaultFormat = "csv"

	// DefaultWorkers is the default number of scan workers.
	DefaultWorkers = 8

	// DefaultFlushThreshold is the number of locally counted files after
	// which a worker flushes its batch into the shared totals.
	DefaultFlushThreshold = 1000

	// DefaultProgressInterval is how often progress is reported.
	DefaultProgressInterval = 500 * time.Millisecond

	// DefaultShutdownGrace bounds how long an interrupted scan waits for
	// workers to finish their current directory.
	DefaultShutdownGrace = 2 * time.Second

	// DefaultRetentionDays is the default number of days to retain scan history.
	DefaultRetentionDays = 30
)
