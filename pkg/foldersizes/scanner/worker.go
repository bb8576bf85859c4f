package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// runWorker drains the work queue until the scan completes or is
// cancelled. Counts accumulate in a worker-local batch and are merged
// into the shared totals once the batch grows past the flush threshold
// and once more on exit.
func (s *Scanner) runWorker() {
	local := newBatchCounter()
	defer s.flush(local)

	for {
		dir, ok := s.queue.pop()
		if !ok {
			return
		}
		s.visit(dir, local)
		if local.files >= int64(s.opts.FlushThreshold) {
			s.flush(local)
		}
	}
}

// visit lists one directory and accumulates its contents. The queue's
// done call is deferred so the pending count stays balanced even if the
// listing panics; a worker that skipped it would leave every other
// worker blocked forever.
func (s *Scanner) visit(dir string, local *batchCounter) {
	defer s.queue.done()
	defer func() {
		if r := recover(); r != nil {
			s.reportError(dir, fmt.Errorf("panic while scanning: %v", r))
		}
	}()

	s.visitDirectory(dir, local)
}

// visitDirectory reads dir's entries, sums its regular files, and
// schedules subdirectories. An unreadable directory is recorded as an
// error and contributes no size entry at all.
func (s *Scanner) visitDirectory(dir string, local *batchCounter) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.reportError(dir, err)
		return
	}

	var dirSize int64
	var subdirs []string

	for _, entry := range entries {
		name := entry.Name()
		if !s.opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			subdirs = append(subdirs, filepath.Join(dir, name))
			continue
		}

		// Symlinks and other non-regular entries count neither as
		// files nor bytes. ReadDir does not follow links, so link
		// cycles cannot recurse.
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			s.reportError(filepath.Join(dir, name), err)
			continue
		}

		dirSize += info.Size()
		local.files++
		local.bytes += info.Size()
	}

	// Children are scheduled only after the parent's listing is
	// complete, and counted when first scheduled.
	for _, sub := range subdirs {
		if s.queue.pushNew(sub) {
			local.dirs++
		}
	}

	local.recordDir(dir, dirSize)
}
