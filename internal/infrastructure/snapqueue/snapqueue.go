package snapqueue

import (
	"sync"

	"github.com/eapache/queue"
)

// Queue is an unbounded FIFO of snapshots with a wake-up signal for one consumer.
//
// Concurrency Model:
//   - Push never blocks: values go into a growable ring buffer guarded by mu.
//   - Every Push leaves a token in a 1-slot notify channel (extra tokens are dropped),
//     so a consumer waiting on Ready() wakes at least once after any Push.
//   - DrainLatest atomically empties the buffer and hands back only the newest value.
//
// Coalescing:
//   - A burst of N pushes followed by one DrainLatest yields the Nth value.
//   - A push landing after DrainLatest re-arms Ready(), so the final value of any
//     burst is always observed by a consumer that keeps draining.
//
// Memory:
//   - No backpressure. A producer that outpaces the consumer grows the buffer.
type Queue[T any] struct {
	mu     sync.Mutex
	buf    *queue.Queue
	notify chan struct{}
	pushed uint64 // total pushes, for diagnostics
}

func New[T any]() *Queue[T] {
	return &Queue[T]{
		buf:    queue.New(),
		notify: make(chan struct{}, 1),
	}
}

// Push enqueues v and signals the consumer. Safe to call while holding other locks.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.buf.Add(v)
	q.pushed++
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Ready is signalled after Push. A receive does not guarantee a pending value:
// a previous DrainLatest may already have taken it.
func (q *Queue[T]) Ready() <-chan struct{} { return q.notify }

// DrainLatest removes every pending value and returns the newest one together
// with the number of values discarded in front of it. ok is false when empty.
func (q *Queue[T]) DrainLatest() (latest T, skipped int, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.buf.Length()
	if n == 0 {
		return latest, 0, false
	}
	for i := 0; i < n-1; i++ {
		q.buf.Remove()
	}
	latest = q.buf.Remove().(T)
	return latest, n - 1, true
}

// Len reports the number of pending values.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Length()
}

// Pushed reports the total number of values ever pushed.
func (q *Queue[T]) Pushed() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pushed
}
