package scanner

import (
	"testing"
	"time"
)

// TestWorkQueueFIFO verifies directories come out in push order.
func TestWorkQueueFIFO(t *testing.T) {
	q := newWorkQueue()

	paths := []string{"/a", "/b", "/c"}
	for _, p := range paths {
		if !q.pushNew(p) {
			t.Fatalf("pushNew(%q) rejected a new path", p)
		}
	}

	for _, want := range paths {
		got, ok := q.pop()
		if !ok {
			t.Fatalf("pop returned ok=false with %q still queued", want)
		}
		if got != want {
			t.Errorf("pop order: got %q, want %q", got, want)
		}
	}
}

// TestWorkQueueDedupe verifies a path can only ever be enqueued once.
func TestWorkQueueDedupe(t *testing.T) {
	q := newWorkQueue()

	if !q.pushNew("/a") {
		t.Fatal("first pushNew should be accepted")
	}
	if q.pushNew("/a") {
		t.Error("second pushNew of same path should be rejected")
	}

	path, ok := q.pop()
	if !ok || path != "/a" {
		t.Fatalf("pop: got (%q, %v), want (/a, true)", path, ok)
	}
	q.done()

	// Membership is permanent, not just while queued.
	if q.pushNew("/a") {
		t.Error("pushNew after visit completed should still be rejected")
	}
}

// TestWorkQueueUnblocksWhenNoWorkRemains verifies a blocked pop keeps
// waiting while a visit is in flight, receives work that visit pushes,
// and unblocks for good once the last visit completes.
func TestWorkQueueUnblocksWhenNoWorkRemains(t *testing.T) {
	q := newWorkQueue()
	q.pushNew("/a")

	if path, ok := q.pop(); !ok || path != "/a" {
		t.Fatalf("pop: got (%q, %v), want (/a, true)", path, ok)
	}

	// Queue is empty but /a's visit is still in flight, so this second
	// consumer must block rather than give up.
	popped := make(chan string, 1)
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for {
			path, ok := q.pop()
			if !ok {
				return
			}
			popped <- path
		}
	}()

	// The in-flight visit discovers a child, then completes.
	q.pushNew("/a/sub")
	q.done()

	select {
	case path := <-popped:
		if path != "/a/sub" {
			t.Errorf("blocked pop received %q, want /a/sub", path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("blocked pop never received newly pushed work")
	}

	// Completing the last visit leaves nothing queued and nothing in
	// flight; the consumer must exit.
	q.done()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("pop did not unblock after the last visit completed")
	}
}

// TestWorkQueueClose verifies close discards queued work and wakes
// blocked consumers without disturbing in-flight visits.
func TestWorkQueueClose(t *testing.T) {
	q := newWorkQueue()
	q.pushNew("/a")
	q.pushNew("/b")
	q.pushNew("/c")

	if _, ok := q.pop(); !ok {
		t.Fatal("pop before close should succeed")
	}

	q.close()

	if q.size() != 0 {
		t.Errorf("size after close: got %d, want 0", q.size())
	}
	if _, ok := q.pop(); ok {
		t.Error("pop after close should return ok=false")
	}
	if q.pushNew("/d") {
		t.Error("pushNew after close should be rejected")
	}

	// The in-flight visit of /a still balances its pop.
	q.done()

	// Closing again is a no-op.
	q.close()
}
