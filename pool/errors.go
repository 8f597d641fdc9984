package pool

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWorkers is returned by New when the configured worker count
	// resolves to zero or less.
	ErrNoWorkers = errors.New("pool: no worker goroutines configured")

	// ErrClosed is returned by Submit after Join has begun.
	ErrClosed = errors.New("pool: pool is closed")

	// ErrDisconnected is returned by Handle.Join when the producing task
	// finished without delivering a value.
	ErrDisconnected = errors.New("pool: task finished without delivering a result")
)

// PanicError carries a panic recovered from a result-bearing task, along
// with the stack captured at the recovery point.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("pool: task panicked: %v", e.Value)
}
