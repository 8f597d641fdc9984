package pool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Pool is a fixed set of worker goroutines consuming tasks from a shared
// unbounded queue. A Pool is created by New, used from any number of
// goroutines, and torn down exactly once by Join.
type Pool struct {
	q       *queue
	workers int
	label   string
	log     logrus.FieldLogger
	obs     Observer

	wg     sync.WaitGroup
	closed atomic.Bool

	mu        sync.Mutex
	workerErr error
}

// New creates a pool. The worker count resolves to the WithWorkers option
// if given, else the number of CPUs, else DefaultWorkers. An explicit
// count of zero or less fails with ErrNoWorkers before any worker starts.
func New(opts ...Option) (*Pool, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	workers := o.workers
	if !o.workersSet {
		workers = runtime.NumCPU()
		if workers <= 0 {
			workers = DefaultWorkers
		}
	}
	if workers <= 0 {
		return nil, ErrNoWorkers
	}

	obs := o.observer
	if obs == nil {
		obs = nopObserver{}
	}

	p := &Pool{
		q:       newQueue(),
		workers: workers,
		label:   o.label,
		log:     o.logger,
		obs:     obs,
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p, nil
}

// Workers returns the number of worker goroutines in the pool.
func (p *Pool) Workers() int { return p.workers }

// QueueLen returns the number of tasks waiting to be executed.
func (p *Pool) QueueLen() int { return p.q.len() }

// Submit enqueues fn for execution by the next free worker. It never
// blocks; the queue grows without bound. After Join has begun, Submit
// returns ErrClosed.
func (p *Pool) Submit(fn func()) error {
	if fn == nil {
		return nil
	}
	if !p.q.push(fn) {
		return ErrClosed
	}
	p.obs.TaskSubmitted()
	return nil
}

// SubmitResult enqueues fn and returns a handle for retrieving its return
// value. A panic in fn is delivered through the handle as a *PanicError
// rather than being discarded at the worker boundary. If the pool is
// already closed the handle completes immediately with ErrClosed.
func SubmitResult[R any](p *Pool, fn func() R) *Handle[R] {
	h := newHandle[R]()
	if err := p.Submit(h.task(fn)); err != nil {
		h.fail(err)
	}
	return h
}

// Join closes the queue, waits for the workers to drain it and exit, and
// returns the first worker-loop failure, if any. Task panics are contained
// per task and never show up here; a worker dies only if something outside
// task execution panics, e.g. an Observer hook. The pool must not be used
// after Join.
func (p *Pool) Join() error {
	if p.closed.CompareAndSwap(false, true) {
		p.q.close()
	}
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workerErr
}
