package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// Scope tracks tasks spawned on a pool during one enclosing call. Tasks
// spawned through a scope may reference data owned by the caller: the
// scope does not return until every one of them has finished, which also
// establishes the happens-before edge making the tasks' writes visible
// to the caller afterwards.
type Scope struct {
	pool    *Pool
	wg      sync.WaitGroup
	pending atomic.Int64
	sem     *semaphore.Weighted
}

type ScopeOption func(*Scope)

// WithMaxInFlight bounds the number of scope tasks executing or queued
// at once. Run blocks the spawning goroutine while the scope is at its
// limit. Zero or less means unlimited.
func WithMaxInFlight(n int) ScopeOption {
	return func(s *Scope) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// Scoped opens a scope on p, invokes body with it, waits for every task
// spawned within to finish, and returns body's result. The wait happens
// even if body panics, so no scope task ever outlives the call.
func Scoped[R any](p *Pool, body func(*Scope) R, opts ...ScopeOption) R {
	s := &Scope{pool: p}
	for _, fn := range opts {
		fn(s)
	}
	p.obs.ScopeOpened()
	defer func() {
		start := time.Now()
		s.wg.Wait()
		p.obs.ScopeClosed(time.Since(start))
	}()
	return body(s)
}

// Scope is Scoped for bodies that communicate through captured variables
// rather than a return value.
func (p *Pool) Scope(body func(*Scope), opts ...ScopeOption) {
	Scoped(p, func(s *Scope) struct{} {
		body(s)
		return struct{}{}
	}, opts...)
}

// Run enqueues fn as a task of the scope. The pending count is raised
// before the task becomes visible to any worker, and the wrapper lowers
// it on every exit path, panic included, as its last action.
func (s *Scope) Run(fn func()) error {
	if fn == nil {
		return nil
	}
	if s.sem != nil {
		// Background context: scope tasks are not cancellable.
		_ = s.sem.Acquire(context.Background(), 1)
	}
	s.pending.Add(1)
	s.wg.Add(1)
	err := s.pool.Submit(func() {
		defer s.finish()
		fn()
	})
	if err != nil {
		s.finish()
		return err
	}
	return nil
}

// RunResult enqueues fn as a task of the scope and returns a handle for
// its return value, retrievable independently of the scope's own wait.
func RunResult[R any](s *Scope, fn func() R) *Handle[R] {
	h := newHandle[R]()
	if err := s.Run(h.task(fn)); err != nil {
		h.fail(err)
	}
	return h
}

// Pending returns the number of scope tasks not yet finished.
func (s *Scope) Pending() int64 { return s.pending.Load() }

func (s *Scope) finish() {
	s.pending.Add(-1)
	if s.sem != nil {
		s.sem.Release(1)
	}
	s.wg.Done()
}
