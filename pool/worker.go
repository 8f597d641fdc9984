package pool

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

// worker drains the queue until it is closed and empty. Each task runs
// inside its own recover boundary, so a panicking task returns the worker
// to its receive loop. A panic escaping that boundary (never from the
// task itself) terminates the worker and is surfaced by Join.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.log.WithFields(logrus.Fields{"pool": p.label, "worker": id}).
				Errorf("worker terminated abnormally: %v", r)
			p.recordWorkerErr(fmt.Errorf("pool: worker %d terminated abnormally: %v", id, r))
		}
		p.obs.WorkerDown()
	}()
	p.obs.WorkerUp()

	for {
		fn, ok := p.q.pop()
		if !ok {
			return
		}
		p.runTask(id, fn)
	}
}

func (p *Pool) runTask(id int, fn func()) {
	p.obs.TaskStarted()
	start := time.Now()
	panicked := p.invoke(id, fn)
	p.obs.TaskFinished(time.Since(start), panicked)
}

// invoke executes one task and reports whether it panicked. The panic
// payload is logged and then dropped: fire-and-forget tasks have no
// channel back to their submitter.
func (p *Pool) invoke(id int, fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			p.log.WithFields(logrus.Fields{"pool": p.label, "worker": id}).
				Errorf("recovered task panic: %v\n%s", r, debug.Stack())
		}
	}()
	fn()
	return false
}

func (p *Pool) recordWorkerErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.workerErr == nil {
		p.workerErr = err
	}
}
