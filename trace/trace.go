// Package trace provides decision-trace recording for routing hops and
// cache evictions. It has no dependency on des, cache or mesh: it stores
// pure data, so any of those packages can import it without risking a
// cycle.
package trace

// HopRecord captures a single successful switch-arbitration dispatch: a
// packet moved from one router's input buffer to an output direction.
type HopRecord struct {
	Seq       uint64
	Tick      float32
	RouterRow uint32
	RouterCol uint32
	From      string
	To        string
	DestRow   uint32
	DestCol   uint32
}

// EvictionRecord captures a single NMRU cache-line eviction.
type EvictionRecord struct {
	Seq        uint64
	Set        int
	EvictedTag uint64
	NewTag     uint64
}

// Recorder accumulates HopRecords and EvictionRecords. A nil *Recorder is
// valid and every method on it is a no-op, so callers can carry a
// possibly-nil *Recorder through their call chain without an explicit
// nil check at every call site: "don't trace" is just "pass nil".
type Recorder struct {
	seq       uint64
	hops      []HopRecord
	evictions []EvictionRecord
}

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// RecordHop appends a HopRecord. No-op on a nil receiver.
func (r *Recorder) RecordHop(tick float32, routerRow, routerCol uint32, from, to string, dest [2]uint32) {
	if r == nil {
		return
	}
	r.seq++
	r.hops = append(r.hops, HopRecord{
		Seq:       r.seq,
		Tick:      tick,
		RouterRow: routerRow,
		RouterCol: routerCol,
		From:      from,
		To:        to,
		DestRow:   dest[0],
		DestCol:   dest[1],
	})
}

// RecordEviction appends an EvictionRecord. No-op on a nil receiver.
func (r *Recorder) RecordEviction(set int, evictedTag, newTag uint64) {
	if r == nil {
		return
	}
	r.seq++
	r.evictions = append(r.evictions, EvictionRecord{
		Seq:        r.seq,
		Set:        set,
		EvictedTag: evictedTag,
		NewTag:     newTag,
	})
}

// Hops returns the recorded hops in recording order. Nil on a nil
// receiver.
func (r *Recorder) Hops() []HopRecord {
	if r == nil {
		return nil
	}
	return r.hops
}

// Evictions returns the recorded evictions in recording order. Nil on a
// nil receiver.
func (r *Recorder) Evictions() []EvictionRecord {
	if r == nil {
		return nil
	}
	return r.evictions
}
