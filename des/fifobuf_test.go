package des

import "testing"

// TestFifoBuf_PushPeekPendPop checks that after push/peek/pend/pop, the
// buffer has one fewer item and pending is restored to false.
func TestFifoBuf_PushPeekPendPop(t *testing.T) {
	sim := New()
	buf := NewFifoBuf[string](sim, 4)

	buf.Push("x")
	sim.Run(nil)

	if buf.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", buf.Len())
	}

	got, ok := buf.Peek()
	if !ok || got != "x" {
		t.Fatalf("Peek() = (%v, %v), want (x, true)", got, ok)
	}

	buf.Pend()
	buf.Pop()

	if buf.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after Pop", buf.Len())
	}
	if _, ok := buf.Peek(); ok {
		t.Error("Peek() succeeded on an empty buffer")
	}
}

// TestFifoBuf_NeverExceedsCapacity checks that pushing more than
// capacity blocks rather than overflowing the queue.
func TestFifoBuf_NeverExceedsCapacity(t *testing.T) {
	sim := New()
	buf := NewFifoBuf[int](sim, 2)

	for i := 0; i < 5; i++ {
		buf.Push(i)
	}
	sim.Run(nil)

	if buf.Len() > buf.Capacity() {
		t.Fatalf("Len() = %d exceeds Capacity() = %d", buf.Len(), buf.Capacity())
	}
	if buf.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (only capacity worth should have landed)", buf.Len())
	}
}

func TestFifoBuf_PendWhilePending_Panics(t *testing.T) {
	sim := New()
	buf := NewFifoBuf[int](sim, 1)
	buf.Push(1)
	sim.Run(nil)

	buf.Pend()
	defer func() {
		if recover() == nil {
			t.Error("expected panic double-pending")
		}
	}()
	buf.Pend()
}

func TestFifoBuf_PopWithoutPend_Panics(t *testing.T) {
	sim := New()
	buf := NewFifoBuf[int](sim, 1)
	buf.Push(1)
	sim.Run(nil)

	defer func() {
		if recover() == nil {
			t.Error("expected panic popping without a pend")
		}
	}()
	buf.Pop()
}

func TestFifoBuf_PeekWhilePending_ReturnsFalse(t *testing.T) {
	sim := New()
	buf := NewFifoBuf[int](sim, 1)
	buf.Push(1)
	sim.Run(nil)

	buf.Pend()
	if _, ok := buf.Peek(); ok {
		t.Error("Peek() succeeded while pending")
	}
}

// TestFifoBuf_Backpressure_BlocksUntilSlotFrees checks that a full
// buffer makes further pushes wait until a pop frees a slot.
func TestFifoBuf_Backpressure_BlocksUntilSlotFrees(t *testing.T) {
	sim := New()
	buf := NewFifoBuf[int](sim, 1)

	first := buf.Push(1)
	sim.Run(nil)
	if !first.Resolved() {
		t.Fatal("first push should have resolved immediately")
	}

	second := buf.Push(2)
	if second.Resolved() {
		t.Fatal("second push should be queued behind a full buffer")
	}

	got, _ := buf.Peek()
	buf.Pend()
	buf.Pop()
	_ = got

	sim.Run(nil)
	if !second.Resolved() {
		t.Fatal("second push should resolve once a slot frees")
	}
	if buf.Len() != 1 {
		t.Errorf("Len() = %d, want 1", buf.Len())
	}
}
