// Package pool provides a fixed-size worker pool with scope-bounded task
// lifetimes. Tasks submitted through a Scope never outlive the call that
// spawned them: the scope parks its owning goroutine until every task it
// spawned has finished, so tasks may safely read and write data owned by
// the caller's stack frame even though they execute on long-lived workers.
//
// Fire-and-forget work goes through Pool.Submit; SubmitResult returns a
// one-shot Handle for retrieving a task's return value.
package pool
