package pool

import (
	"fmt"
	"sync"
)

var (
	globalOnce sync.Once
	globalPool *Pool
)

// Global returns the process-wide shared pool, constructing it on first
// use. The first caller's options win: every later call returns the
// already-initialized pool unchanged, options ignored. This keeps
// independent subsystems from racing to configure a shared resource;
// code that needs a particular configuration should own its pool via New
// and accept a *Pool from its caller instead.
//
// Global panics if the first caller's options are invalid, since no
// later caller could ever obtain a working pool.
func Global(opts ...Option) *Pool {
	globalOnce.Do(func() {
		p, err := New(opts...)
		if err != nil {
			panic(fmt.Sprintf("pool: initializing global pool: %v", err))
		}
		globalPool = p
	})
	return globalPool
}
