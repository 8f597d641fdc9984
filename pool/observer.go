package pool

import "time"

// Observer receives pool lifecycle events. Implementations must be safe
// for concurrent use; hooks run inline on hot paths, so they should be
// cheap. A hook that panics kills its worker goroutine — the failure is
// reported by Join, not swallowed.
type Observer interface {
	TaskSubmitted()
	TaskStarted()
	TaskFinished(dur time.Duration, panicked bool)
	ScopeOpened()
	ScopeClosed(wait time.Duration)
	WorkerUp()
	WorkerDown()
}

type nopObserver struct{}

func (nopObserver) TaskSubmitted()                   {}
func (nopObserver) TaskStarted()                     {}
func (nopObserver) TaskFinished(time.Duration, bool) {}
func (nopObserver) ScopeOpened()                     {}
func (nopObserver) ScopeClosed(time.Duration)        {}
func (nopObserver) WorkerUp()                        {}
func (nopObserver) WorkerDown()                      {}
