// Package errgroup provides an adapter that mimics golang.org/x/sync/errgroup
// semantics on top of a shared worker pool. It lets errgroup-shaped code run
// its tasks on pool workers instead of spawning a goroutine per call.
package errgroup

import (
	"fmt"
	"sync"

	"github.com/NetPo4ki/go-pool/pool"
)

// Group is an errgroup-like collector of task errors backed by a Pool.
// Unlike x/sync's errgroup there is no context propagation: the pool has
// no cancellation of in-flight tasks.
type Group struct {
	p  *pool.Pool
	wg sync.WaitGroup

	mu  sync.Mutex
	err error
}

// New creates a Group that runs its functions on p.
func New(p *pool.Pool) *Group {
	return &Group{p: p}
}

// Go submits f to the pool. The first non-nil error across all functions
// is kept for Wait; a panic in f is converted to an error rather than
// being discarded at the worker boundary.
func (g *Group) Go(f func() error) {
	if f == nil {
		return
	}
	g.wg.Add(1)
	err := g.p.Submit(func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.report(fmt.Errorf("errgroup: task panicked: %v", r))
			}
		}()
		g.report(f())
	})
	if err != nil {
		g.wg.Done()
		g.report(err)
	}
}

// Wait blocks until every function passed to Go has returned, then
// returns the first error observed, if any.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

func (g *Group) report(err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err == nil {
		g.err = err
	}
}
