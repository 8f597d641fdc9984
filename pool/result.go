package pool

import (
	"runtime/debug"
	"sync"
)

type outcome[T any] struct {
	value T
	err   error
}

// Handle is a one-shot completion handle for a result-bearing task,
// returned by SubmitResult and RunResult. A handle yields its outcome at
// most once; once observed (by Join, TryJoin or Completed) the outcome is
// cached and every later call agrees with the first.
type Handle[T any] struct {
	ch chan outcome[T]

	mu   sync.Mutex
	done bool
	res  outcome[T]
}

func newHandle[T any]() *Handle[T] {
	return &Handle[T]{ch: make(chan outcome[T], 1)}
}

// task wraps fn so its return value, or the panic that replaced it, is
// delivered through the handle before completion becomes observable.
func (h *Handle[T]) task(fn func() T) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				h.ch <- outcome[T]{err: &PanicError{Value: r, Stack: debug.Stack()}}
			}
			close(h.ch)
		}()
		h.ch <- outcome[T]{value: fn()}
	}
}

// fail completes the handle without running its task.
func (h *Handle[T]) fail(err error) {
	h.ch <- outcome[T]{err: err}
	close(h.ch)
}

// Join blocks until the task delivers an outcome and returns it. If the
// channel was closed without a value, Join returns ErrDisconnected.
// Repeat calls return the cached outcome without blocking.
func (h *Handle[T]) Join() (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return h.res.value, h.res.err
	}
	res, ok := <-h.ch
	if !ok {
		res = outcome[T]{err: ErrDisconnected}
	}
	h.done, h.res = true, res
	return res.value, res.err
}

// TryJoin polls for the outcome without blocking. The second return
// reports completion; when it is false the handle is unchanged and the
// caller may retry.
func (h *Handle[T]) TryJoin() (T, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return h.res.value, true, h.res.err
	}
	select {
	case res, ok := <-h.ch:
		if !ok {
			res = outcome[T]{err: ErrDisconnected}
		}
		h.done, h.res = true, res
		return res.value, true, res.err
	default:
		var zero T
		return zero, false, nil
	}
}

// Completed reports whether the task has finished. An outcome observed
// here is cached so a later Join or TryJoin consumes it exactly once.
func (h *Handle[T]) Completed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return true
	}
	select {
	case res, ok := <-h.ch:
		if !ok {
			res = outcome[T]{err: ErrDisconnected}
		}
		h.done, h.res = true, res
		return true
	default:
		return false
	}
}
