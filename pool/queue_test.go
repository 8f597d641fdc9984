package pool

import "testing"

func TestQueueFIFO(t *testing.T) {
	t.Parallel()
	q := newQueue()
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		if !q.push(func() { order = append(order, i) }) {
			t.Fatal("push rejected on open queue")
		}
	}
	if got := q.len(); got != 10 {
		t.Fatalf("expected length 10, got %d", got)
	}
	for {
		fn, ok := q.pop()
		if !ok {
			t.Fatal("pop reported closed on a non-empty open queue")
		}
		fn()
		if len(order) == 10 {
			break
		}
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("expected FIFO delivery, got %v", order)
		}
	}
	q.close()
	if _, ok := q.pop(); ok {
		t.Fatal("pop must report closed once drained")
	}
}

func TestQueueCloseDrains(t *testing.T) {
	t.Parallel()
	q := newQueue()
	ran := 0
	for i := 0; i < 3; i++ {
		q.push(func() { ran++ })
	}
	q.close()
	if q.push(func() {}) {
		t.Fatal("push must be rejected after close")
	}
	for {
		fn, ok := q.pop()
		if !ok {
			break
		}
		fn()
	}
	if ran != 3 {
		t.Fatalf("expected queued tasks to remain poppable after close, ran %d", ran)
	}
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	t.Parallel()
	q := newQueue()
	got := make(chan int, 1)
	go func() {
		fn, ok := q.pop()
		if ok {
			fn()
		}
	}()
	q.push(func() { got <- 42 })
	if v := <-got; v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
	q.close()
}

func TestQueueCompaction(t *testing.T) {
	t.Parallel()
	q := newQueue()
	ran := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 100; i++ {
			q.push(func() { ran++ })
		}
		for i := 0; i < 100; i++ {
			fn, ok := q.pop()
			if !ok {
				t.Fatal("unexpected close")
			}
			fn()
		}
	}
	if ran != 5000 {
		t.Fatalf("expected 5000 executions, got %d", ran)
	}
	if got := q.len(); got != 0 {
		t.Fatalf("expected empty queue, got length %d", got)
	}
}
