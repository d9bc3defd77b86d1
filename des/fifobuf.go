package des

// FifoBuf is a bounded FIFO queue backed by a Resource of the same
// capacity. The consumer side is two-phase: Peek, then Pend, then Pop.
// This lets a consumer reserve the head entry for a downstream hand-off
// without losing it to a concurrent arbiter, and only commit to removing
// it once that hand-off has actually completed.
//
// Overflow cannot occur: Push waits on the backing Resource's grant, so
// the queue never holds more than its capacity.
type FifoBuf[T any] struct {
	res     *Resource
	q       []T
	pending bool
}

// NewFifoBuf creates a FifoBuf with the given capacity. capacity must be
// at least 1.
func NewFifoBuf[T any](sim *Simulation, capacity int) *FifoBuf[T] {
	return &FifoBuf[T]{res: NewResource(sim, capacity)}
}

// Capacity returns the buffer's slot count.
func (b *FifoBuf[T]) Capacity() int { return b.res.Max() }

// Len returns the number of payloads currently queued.
func (b *FifoBuf[T]) Len() int { return len(b.q) }

// Empty reports whether the queue holds no payloads.
func (b *FifoBuf[T]) Empty() bool { return len(b.q) == 0 }

// Push reserves a slot via the backing Resource and returns an Event that
// fires once the slot is actually held, at which point x is appended to
// the tail of the queue.
func (b *FifoBuf[T]) Push(x T) *Event {
	ev := b.res.Acquire()
	ev.Callback(func(sim *Simulation) {
		b.q = append(b.q, x)
	})
	return ev
}

// Peek returns the head payload and true, unless the buffer is empty or
// a prior Pend has not yet been matched by a Pop.
func (b *FifoBuf[T]) Peek() (T, bool) {
	var zero T
	if b.pending || len(b.q) == 0 {
		return zero, false
	}
	return b.q[0], true
}

// Pend reserves the head entry for a downstream hand-off. Panics if
// already pending.
func (b *FifoBuf[T]) Pend() {
	if b.pending {
		panic("des: FifoBuf.Pend called while already pending")
	}
	b.pending = true
}

// Pop releases the held slot and removes the head entry. Panics if Pend
// was not called first.
func (b *FifoBuf[T]) Pop() {
	if !b.pending {
		panic("des: FifoBuf.Pop called without a matching Pend")
	}
	b.res.Release()
	b.q = b.q[1:]
	b.pending = false
}
