// Package scanner provides concurrent directory size scanning for the
// folder-sizes tool. A fixed pool of workers drains a shared work queue
// of directories, accumulating counts and per-directory sizes locally
// and flushing them into the shared totals in batches to bound lock
// contention. A single-threaded rollup pass then turns direct sizes
// into cumulative subtree sizes.
package scanner

import (
	"time"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/config"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// Options configures the scanner behavior.
type Options struct {
	// Root is the directory whose tree is scanned.
	Root string

	// IncludeHidden includes dot-prefixed files and directories.
	// When false, a hidden directory's entire subtree is skipped.
	// The root itself is always scanned, whatever its name.
	IncludeHidden bool

	// Workers is the number of concurrent scan workers.
	Workers int

	// FlushThreshold is the number of files a worker counts locally
	// before flushing its batch into the shared totals.
	FlushThreshold int

	// OnProgress is called at ProgressInterval with a snapshot of the
	// running totals. It is invoked from a single monitor goroutine.
	OnProgress func(types.Progress)

	// ProgressInterval is how often OnProgress is called.
	ProgressInterval time.Duration

	// ShutdownGrace bounds how long a cancelled scan waits for workers
	// to finish the directory they are currently reading.
	ShutdownGrace time.Duration
}

// DefaultOptions returns options with sensible defaults for most systems.
func DefaultOptions() Options {
	return Options{
		Root:             config.DefaultPath,
		Workers:          config.DefaultWorkers,
		FlushThreshold:   config.DefaultFlushThreshold,
		ProgressInterval: config.DefaultProgressInterval,
		ShutdownGrace:    config.DefaultShutdownGrace,
	}
}

// Validate checks if the options are valid and returns an error if not.
func (o *Options) Validate() error {
	if o.Root == "" {
		o.Root = config.DefaultPath
	}
	if o.Workers < 1 {
		o.Workers = config.DefaultWorkers
	}
	if o.FlushThreshold < 1 {
		o.FlushThreshold = config.DefaultFlushThreshold
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = config.DefaultProgressInterval
	}
	if o.ShutdownGrace <= 0 {
		o.ShutdownGrace = config.DefaultShutdownGrace
	}
	return nil
}
