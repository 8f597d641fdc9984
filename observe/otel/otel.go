package otel

import "time"

// Nop is a no-op implementation of the pool.Observer interface. It serves
// as a placeholder for an OpenTelemetry-backed observer without adding
// dependencies.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) TaskSubmitted()                   {}
func (*Nop) TaskStarted()                     {}
func (*Nop) TaskFinished(time.Duration, bool) {}
func (*Nop) ScopeOpened()                     {}
func (*Nop) ScopeClosed(time.Duration)        {}
func (*Nop) WorkerUp()                        {}
func (*Nop) WorkerDown()                      {}
