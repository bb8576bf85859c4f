package scanner

// batchCounter accumulates one worker's counts between flushes. All
// fields are owned by a single worker goroutine; no locking needed
// until the batch is merged into the shared totals.
type batchCounter struct {
	files int64
	dirs  int64
	bytes int64
	sizes map[string]int64
}

func newBatchCounter() *batchCounter {
	return &batchCounter{
		sizes: make(map[string]int64),
	}
}

// recordDir stores the direct size of a fully listed directory. Each
// directory is visited at most once, so plain assignment suffices.
func (b *batchCounter) recordDir(path string, size int64) {
	b.sizes[path] = size
}

func (b *batchCounter) empty() bool {
	return b.files == 0 && b.dirs == 0 && b.bytes == 0 && len(b.sizes) == 0
}

// reset clears the batch for reuse after a flush.
func (b *batchCounter) reset() {
	b.files = 0
	b.dirs = 0
	b.bytes = 0
	b.sizes = make(map[string]int64)
}
