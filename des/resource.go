package des

// Resource is a bounded counted semaphore with FIFO waiters. Acquire
// returns an Event that fires once the caller holds one unit; Release
// gives a unit back, granting it to the longest-waiting acquirer if any
// is queued.
//
// val is committed synchronously at Acquire-call time (either granted
// immediately or queued), not deferred to the grant Event's fire time.
// A version that defers the val++ into the grant callback looks
// equally natural, but it is observably wrong: if a caller issues several
// Acquire calls back to back before the Simulation has run any events
// (exactly how the FIFO scenario in the test suite exercises it), every
// one of those calls would see the same stale val and be granted
// immediately, blowing past max. Committing at call time is what makes
// Full() see the effect of an in-flight grant before its Event fires.
//
// Release handing a unit directly to the next waiter (without touching
// val) follows from the same rule: the unit stays continuously held, so
// no other caller can jump the queue between the handoff and its grant
// event firing.
type Resource struct {
	sim *Simulation
	max int
	val int
	q   []*Event
}

// NewResource creates a Resource with the given capacity. max must be
// at least 1.
func NewResource(sim *Simulation, max int) *Resource {
	if max < 1 {
		panic("des: NewResource: max must be >= 1")
	}
	return &Resource{sim: sim, max: max}
}

// Full reports whether every unit is currently held or reserved.
func (r *Resource) Full() bool { return r.val >= r.max }

// Max returns the resource's capacity.
func (r *Resource) Max() int { return r.max }

// Val returns the number of units currently held or reserved.
func (r *Resource) Val() int { return r.val }

// Acquire returns an Event that fires when the caller has been granted
// one unit. If a unit is free, it is reserved immediately and the event
// fires at zero delay; otherwise the request waits at the back of the
// FIFO queue until a Release hands it the unit.
func (r *Resource) Acquire() *Event {
	if r.Full() {
		ev := r.sim.Event(nil)
		r.q = append(r.q, ev)
		return ev
	}

	r.val++
	return r.sim.Event(zero())
}

// Release gives back one held unit. If a waiter is queued, the unit is
// handed directly to it: val is unchanged, since the unit stays held
// throughout, just by a new owner. Panics if no unit is currently held.
func (r *Resource) Release() {
	if r.val <= 0 {
		panic("des: Release called with no held unit")
	}

	if len(r.q) > 0 {
		ev := r.q[0]
		r.q = r.q[1:]
		r.sim.Schedule(ev, 0)
		return
	}

	r.val--
}

func zero() *float32 {
	var z float32
	return &z
}
