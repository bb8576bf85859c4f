package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/logging"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

// State identifies where a Scanner is in its lifecycle.
type State int32

const (
	// StateIdle means the scan has not started yet.
	StateIdle State = iota

	// StateRunning means workers are draining the queue.
	StateRunning

	// StateStopping means cancellation was requested and workers are
	// finishing the directories they already started.
	StateStopping

	// StateDrained means the scan is over and the result is final.
	StateDrained
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateDrained:
		return "drained"
	default:
		return "unknown"
	}
}

var (
	// ErrScanStarted is returned when Scan is called more than once on
	// the same Scanner.
	ErrScanStarted = errors.New("scan already started")

	// ErrNotDirectory is returned when the scan root exists but is not
	// a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Scanner walks a directory tree concurrently, accumulating global totals
// and a cumulative size per directory. A Scanner performs a single scan;
// create a new one for each run.
type Scanner struct {
	opts  Options
	queue *workQueue
	state atomic.Int32

	// mu guards everything a worker flush touches. Once finalized is
	// set the totals are frozen and late flushes are dropped.
	mu        sync.Mutex
	stats     types.ScanStats
	sizes     map[string]int64
	errs      []types.ScanError
	finalized bool

	root   string
	logger *logging.Logger
}

// New creates a scanner with the given options.
func New(opts Options) *Scanner {
	// Validate sets defaults for invalid values; it currently doesn't return errors
	// but we call it to ensure options are properly initialized.
	_ = opts.Validate()

	return &Scanner{
		opts:   opts,
		queue:  newWorkQueue(),
		sizes:  make(map[string]int64),
		logger: logging.Get("scanner"),
	}
}

// State reports the scanner's lifecycle state. Safe to call from any
// goroutine.
func (s *Scanner) State() State {
	return State(s.state.Load())
}

// Scan walks the tree rooted at the configured root and returns the
// accumulated result. It blocks until the tree is fully scanned or ctx
// is cancelled. On cancellation, unstarted directories are discarded,
// in-flight listings are given a bounded grace period to finish, and
// the result carries everything counted up to that point with
// Interrupted set.
func (s *Scanner) Scan(ctx context.Context) (*types.Result, error) {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return nil, ErrScanStarted
	}

	root, err := s.validateRoot()
	if err != nil {
		s.state.Store(int32(StateIdle))
		return nil, err
	}
	s.root = root

	s.mu.Lock()
	s.stats.StartTime = time.Now()
	s.mu.Unlock()

	s.logger.Info("scan started", "root", root, "workers", s.opts.Workers)

	// The root is enqueued directly, not via a parent's listing, so it
	// never counts toward the directory total.
	s.queue.pushNew(root)

	var wg sync.WaitGroup
	for i := 0; i < s.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runWorker()
		}()
	}

	workersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(workersDone)
	}()

	stopMonitor := s.startMonitor()

	interrupted := false
	select {
	case <-workersDone:
	case <-ctx.Done():
		// A cancel that lands after the tree is already drained changes
		// nothing; the result stays complete.
		select {
		case <-workersDone:
		default:
			interrupted = true
			s.state.Store(int32(StateStopping))
			dropped := s.queue.size()
			s.queue.close()
			s.logger.Info("scan interrupted, waiting for in-flight listings", "dropped", dropped)

			select {
			case <-workersDone:
			case <-time.After(s.opts.ShutdownGrace):
				s.logger.Warn("workers still busy after grace period, abandoning them",
					"grace", s.opts.ShutdownGrace)
			}
		}
	}

	stopMonitor()

	s.mu.Lock()
	s.finalized = true
	s.stats.EndTime = time.Now()
	rollUp(s.sizes)
	result := &types.Result{
		Root:        root,
		Sizes:       s.relativeSizes(),
		Stats:       s.stats,
		Interrupted: interrupted,
		Errors:      append([]types.ScanError(nil), s.errs...),
	}
	s.mu.Unlock()

	s.state.Store(int32(StateDrained))

	s.logger.Info("scan complete",
		"files", result.Stats.TotalFiles,
		"dirs", result.Stats.TotalDirs,
		"size", types.FormatSize(result.Stats.TotalSize),
		"errors", len(result.Errors),
		"interrupted", interrupted)

	return result, nil
}

// flush merges a worker's batch into the shared totals and resets it.
// Batches arriving after finalization belong to workers abandoned past
// the grace period and are dropped.
func (s *Scanner) flush(b *batchCounter) {
	if b.empty() {
		return
	}

	s.mu.Lock()
	if s.finalized {
		s.mu.Unlock()
		return
	}
	s.stats.TotalFiles += b.files
	s.stats.TotalDirs += b.dirs
	s.stats.TotalSize += b.bytes
	for path, size := range b.sizes {
		s.sizes[path] += size
	}
	s.mu.Unlock()

	b.reset()
}

// reportError records a path that could not be read. The scan continues;
// unreadable paths are reported in the result, not fatal.
func (s *Scanner) reportError(path string, err error) {
	s.logger.Warn("scan error", "path", path, "error", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return
	}
	s.errs = append(s.errs, types.ScanError{Path: path, Error: err.Error()})
}

// snapshot returns the current totals under the aggregator lock.
func (s *Scanner) snapshot() types.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.Progress{
		Files: s.stats.TotalFiles,
		Dirs:  s.stats.TotalDirs,
		Bytes: s.stats.TotalSize,
	}
}

// startMonitor begins periodic progress reporting. The returned stop
// function halts reporting and waits for the monitor goroutine to exit,
// so no callback fires after it returns.
func (s *Scanner) startMonitor() func() {
	if s.opts.OnProgress == nil {
		return func() {}
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.opts.ProgressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.opts.OnProgress(s.snapshot())
			case <-stop:
				return
			}
		}
	}()

	return func() {
		close(stop)
		<-done
	}
}

// validateRoot resolves the configured root and verifies it is a
// readable directory before any workers start.
func (s *Scanner) validateRoot() (string, error) {
	root, err := filepath.Abs(s.opts.Root)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	f, err := os.Open(root)
	if err != nil {
		return "", err
	}
	f.Close()

	return root, nil
}
