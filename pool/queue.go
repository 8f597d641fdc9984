package pool

import "sync"

// queue is an unbounded multi-producer multi-consumer FIFO of tasks.
// Go channels are always bounded, and Submit must never block, so the
// queue is a slice guarded by a mutex with a condition variable for
// idle consumers.
type queue struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	items    []func()
	head     int
	closed   bool
}

func newQueue() *queue {
	q := &queue{}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// push appends a task. It never blocks and reports whether the task was
// accepted; a closed queue rejects new tasks.
func (q *queue) push(fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, fn)
	q.nonEmpty.Signal()
	return true
}

// pop blocks until a task is available or the queue is closed and
// drained. The second return is false only in the latter case.
func (q *queue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.items) {
		if q.closed {
			return nil, false
		}
		q.nonEmpty.Wait()
	}
	fn := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return fn, true
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// close rejects further pushes and wakes all idle consumers. Tasks
// already queued remain poppable until drained.
func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.nonEmpty.Broadcast()
}
