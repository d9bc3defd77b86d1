package des

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// Callback is invoked when an Event fires. It receives the owning
// Simulation so it can schedule further events or read the clock.
type Callback func(*Simulation)

// Event is a future point in virtual time carrying an ordered list of
// callbacks. An Event is created either already scheduled (a delay was
// given up front) or unresolved, with its fire time decided later by a
// call to Simulation.Schedule. This defers the ordering decision until
// some runtime condition (a Resource grant, a FifoBuf slot) picks it.
//
// An Event fires exactly once. Callbacks may be appended before or after
// the fire time is resolved, but never after the event has executed.
type Event struct {
	sim       *Simulation
	t         float32
	resolved  bool
	executed  bool
	seq       uint64
	callbacks []Callback
}

// Callback appends fn to the event's callback list. Panics if the event
// has already executed.
func (e *Event) Callback(fn Callback) *Event {
	if e.executed {
		panic("des: Callback appended to an already-executed Event")
	}
	e.callbacks = append(e.callbacks, fn)
	return e
}

// Delay returns a new Event that will be scheduled d units after e fires.
// Realized by registering a callback on e that schedules the new event;
// e itself does not need to know when it will fire for this to work.
func (e *Event) Delay(d float32) *Event {
	next := e.sim.Event(nil)
	e.Callback(func(sim *Simulation) {
		sim.Schedule(next, d)
	})
	return next
}

// Resolved reports whether the event's fire time has been set.
func (e *Event) Resolved() bool { return e.resolved }

func (e *Event) exec() {
	for _, cb := range e.callbacks {
		cb(e.sim)
	}
	e.executed = true
}

// eventHeap implements heap.Interface, ordering by fire time and, for
// ties, by enqueue sequence. container/heap is not a stable sort, so the
// sequence number is load-bearing: without it, zero-delay cascades (a
// Resource grant chaining into another acquire, say) could reorder
// relative to insertion, which the kernel promises never to do.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].t != h[j].t {
		return h[i].t < h[j].t
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Simulation owns the virtual clock and the heap of scheduled events. It
// is the single execution context: there is no concurrency inside a
// Simulation, so its state needs no locking.
type Simulation struct {
	now       float32
	numEvents uint64
	seq       uint64
	heap      eventHeap
}

// New creates an empty Simulation with its clock at zero.
func New() *Simulation {
	s := &Simulation{}
	heap.Init(&s.heap)
	return s
}

// Now returns the current virtual time.
func (s *Simulation) Now() float32 { return s.now }

// NumEvents returns the number of events executed so far.
func (s *Simulation) NumEvents() uint64 { return s.numEvents }

// Event creates a new Event. If delay is non-nil, the event is scheduled
// at now+*delay immediately; otherwise it is created unresolved, to be
// scheduled later via Schedule.
func (s *Simulation) Event(delay *float32) *Event {
	ev := &Event{sim: s}
	if delay != nil {
		s.Schedule(ev, *delay)
	}
	return ev
}

// Schedule sets ev's fire time to now+delay and enqueues it. Panics if ev
// has already been resolved or has already executed: an event fires at
// most once, at a time decided at most once.
func (s *Simulation) Schedule(ev *Event, delay float32) {
	if ev.executed {
		panic("des: Schedule called on an already-executed Event")
	}
	if ev.resolved {
		panic("des: Schedule called on an already-resolved Event")
	}
	ev.t = s.now + delay
	ev.resolved = true
	ev.seq = s.seq
	s.seq++
	heap.Push(&s.heap, ev)
}

// Run pops the minimum-time event, advances the clock to its time,
// executes it, and repeats until the heap drains or until the next
// event's time exceeds limit. If limit is non-nil and exceeded, now is
// pinned to *limit and the loop exits without firing that event.
func (s *Simulation) Run(limit *float32) {
	for s.heap.Len() > 0 {
		ev := heap.Pop(&s.heap).(*Event)
		s.now = ev.t

		if limit != nil && s.now > *limit {
			s.now = *limit
			break
		}

		logrus.Debugf("des: tick %v executing event #%d (%d callbacks)", s.now, ev.seq, len(ev.callbacks))
		ev.exec()
		s.numEvents++
	}
}
