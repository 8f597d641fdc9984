package pool

import (
	"errors"
	"testing"
	"time"
)

func TestHandleJoinValue(t *testing.T) {
	t.Parallel()
	p, err := New(WithWorkers(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := SubmitResult(p, func() int { return 42 })
	v, err := h.Join()
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
	// A second Join returns the cached outcome without blocking.
	v, err = h.Join()
	if err != nil || v != 42 {
		t.Fatalf("repeat join disagreed: v=%d err=%v", v, err)
	}
	if err := p.Join(); err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
}

func TestHandleTryJoinConsistent(t *testing.T) {
	t.Parallel()
	p, err := New(WithWorkers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := SubmitResult(p, func() string { return "ok" })

	deadline := time.After(2 * time.Second)
	for {
		v, done, err := h.TryJoin()
		if done {
			if err != nil || v != "ok" {
				t.Fatalf("unexpected outcome: v=%q err=%v", v, err)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("task never completed")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if v, done, err := h.TryJoin(); !done || err != nil || v != "ok" {
		t.Fatalf("second TryJoin disagreed: v=%q done=%v err=%v", v, done, err)
	}
	if err := p.Join(); err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
}

func TestHandleCompletedCachesValue(t *testing.T) {
	t.Parallel()
	p, err := New(WithWorkers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := SubmitResult(p, func() int { return 7 })
	deadline := time.After(2 * time.Second)
	for !h.Completed() {
		select {
		case <-deadline:
			t.Fatal("task never completed")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	// The value observed by the poll must not be lost.
	v, err := h.Join()
	if err != nil || v != 7 {
		t.Fatalf("expected cached 7, got v=%d err=%v", v, err)
	}
	if err := p.Join(); err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
}

func TestHandlePanicPreserved(t *testing.T) {
	t.Parallel()
	p, err := New(WithWorkers(1), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := SubmitResult(p, func() int { panic("kaboom") })
	_, err = h.Join()
	if err == nil {
		t.Fatal("expected an error from a panicking task")
	}
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PanicError, got %T: %v", err, err)
	}
	if pe.Value != "kaboom" {
		t.Fatalf("panic payload lost: %v", pe.Value)
	}
	if len(pe.Stack) == 0 {
		t.Fatal("expected a captured stack")
	}
	if err := p.Join(); err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
}

func TestSubmitResultOnClosedPool(t *testing.T) {
	t.Parallel()
	p, err := New(WithWorkers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Join(); err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
	h := SubmitResult(p, func() int { return 1 })
	if _, err := h.Join(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestHandleDisconnected(t *testing.T) {
	t.Parallel()
	h := newHandle[int]()
	close(h.ch)
	if _, err := h.Join(); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}
	// The disconnect is cached like any other outcome.
	if _, done, err := h.TryJoin(); !done || !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected cached disconnect, got done=%v err=%v", done, err)
	}
}
