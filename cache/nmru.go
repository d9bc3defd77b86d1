package cache

import "github.com/inference-sim/fabricdes/trace"

// Params groups the parameters of a set-associative cache.
type Params struct {
	LAddrBits int // log2 of line size
	Capacity  int // total number of lines
	Assoc     int // ways per set
}

type way struct {
	valid bool
	tag   uint64
}

// NmruCache is a set-associative tag array with a Not-MRU victim policy:
// on a miss with no invalid way available, the way evicted is the one
// just after the most-recently-used way in that set.
//
// A zero-capacity cache (nset == 0) makes every operation a silent
// no-op, per the degenerate case in the spec this implements.
type NmruCache struct {
	nset      int
	nway      int
	laddrbits int
	sets      [][]way
	mru       []int

	Trace *trace.Recorder
}

// New creates an NmruCache from p. Capacity/Assoc determines the number
// of sets; Assoc == 0 or Capacity == 0 both produce a degenerate,
// always-empty cache.
func New(p Params) *NmruCache {
	nway := p.Assoc
	nset := 0
	if nway > 0 {
		nset = p.Capacity / nway
	}

	sets := make([][]way, nset)
	for i := range sets {
		sets[i] = make([]way, nway)
	}

	return &NmruCache{
		nset:      nset,
		nway:      nway,
		laddrbits: p.LAddrBits,
		sets:      sets,
		mru:       make([]int, nset),
	}
}

func (c *NmruCache) index(addr uint64) (set int, tag uint64) {
	line := addr >> c.laddrbits
	return int(line % uint64(c.nset)), line
}

// Lookup reports whether addr's line is resident in its set.
func (c *NmruCache) Lookup(addr uint64) bool {
	if c.nset == 0 {
		return false
	}
	set, tag := c.index(addr)
	for _, w := range c.sets[set] {
		if w.valid && w.tag == tag {
			return true
		}
	}
	return false
}

// Insert installs addr's line into its set, preferring the first invalid
// way and otherwise evicting the way just after the set's MRU way. It
// does not update the set's MRU: a freshly inserted line is not
// considered "used" until Access is called on it.
func (c *NmruCache) Insert(addr uint64) {
	if c.nset == 0 {
		return
	}
	set, tag := c.index(addr)
	ways := c.sets[set]

	victim := -1
	for i, w := range ways {
		if !w.valid {
			victim = i
			break
		}
	}

	if victim == -1 {
		victim = (c.mru[set] + 1) % c.nway
		if ways[victim].valid && c.Trace != nil {
			c.Trace.RecordEviction(set, ways[victim].tag, tag)
		}
	}

	ways[victim] = way{valid: true, tag: tag}
}

// Access updates the set's MRU way to the one matching addr. Precondition:
// Lookup(addr) must currently be true.
func (c *NmruCache) Access(addr uint64) {
	if c.nset == 0 {
		return
	}
	set, tag := c.index(addr)
	ways := c.sets[set]

	for i, w := range ways {
		if w.valid && w.tag == tag {
			c.mru[set] = i
			return
		}
	}
	panic("cache: Access called on a line that is not resident")
}

// NSet returns the number of sets (0 for a degenerate cache).
func (c *NmruCache) NSet() int { return c.nset }

// NWay returns the set associativity.
func (c *NmruCache) NWay() int { return c.nway }
