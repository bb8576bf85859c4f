package scanner

import "sync"

// workQueue is an unbounded FIFO of directories awaiting a visit, fused
// with the set of every directory ever enqueued. Membership is checked
// and recorded under the same lock as the enqueue, so two workers that
// discover the same directory concurrently can never both schedule it.
//
// pending counts directories that have been enqueued but whose visit has
// not yet completed. While pending > 0, a blocked pop must keep waiting:
// an in-flight visit may still push new work. When the queue is empty
// and pending is zero, no future work can ever arrive and pop unblocks
// all waiters for good.
type workQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	items   []string
	seen    map[string]struct{}
	pending int
	closed  bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{
		seen: make(map[string]struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// pushNew enqueues path unless it has ever been enqueued before.
// Returns true if the path was accepted. After close, paths are still
// marked seen but never enqueued.
func (q *workQueue) pushNew(path string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.seen[path]; ok {
		return false
	}
	q.seen[path] = struct{}{}

	if q.closed {
		return false
	}

	q.items = append(q.items, path)
	q.pending++
	q.cond.Signal()
	return true
}

// pop blocks until a directory is available and returns it. It returns
// ok=false when the scan is over: the queue was closed, or it is empty
// with no visit still in flight that could produce more work.
func (q *workQueue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if len(q.items) > 0 {
			path := q.items[0]
			q.items = q.items[1:]
			return path, true
		}
		if q.closed || q.pending == 0 {
			return "", false
		}
		q.cond.Wait()
	}
}

// done marks one popped directory's visit as complete. Every successful
// pop must be paired with exactly one done, after any child pushes.
func (q *workQueue) done() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending--
	if q.pending == 0 {
		q.cond.Broadcast()
	}
}

// close discards all unstarted work and wakes every blocked pop. Visits
// already in flight are unaffected; their done calls still balance.
func (q *workQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.pending -= len(q.items)
	q.items = nil
	q.cond.Broadcast()
}

// size returns the number of directories waiting to be visited.
func (q *workQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
