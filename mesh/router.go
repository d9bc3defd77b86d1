package mesh

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/fabricdes/des"
	"github.com/inference-sim/fabricdes/metrics"
	"github.com/inference-sim/fabricdes/trace"
)

// Router wires a single mesh node: five input directions each carrying a
// single-slot link (wire latency) feeding a depth-C input buffer, five
// output directions each arbitrated round-robin, and up to four cardinal
// neighbor handles wired in by Mesh at construction time.
type Router struct {
	sim    *des.Simulation
	coords Coords

	neighbors [4]*Router // indexed by North/East/South/West

	links [5]*des.FifoBuf[Packet] // indexed by inDirs position
	bufs  [5]*des.FifoBuf[Packet] // indexed by inDirs position
	arbs  [5]*RoundRobinArbiter   // indexed by outDirs position

	procDelay float32
	scheduled bool

	sent     uint64
	received uint64

	Trace   *trace.Recorder
	Metrics *metrics.Collector
}

// NewRouter constructs a Router at coords with bufSize-deep input buffers
// and a proc tick interval of procDelay. Neighbors are wired in later by
// Mesh.
func NewRouter(sim *des.Simulation, coords Coords, bufSize int, procDelay float32) *Router {
	r := &Router{sim: sim, coords: coords, procDelay: procDelay}
	for i := range inDirs {
		r.links[i] = des.NewFifoBuf[Packet](sim, 1)
		r.bufs[i] = des.NewFifoBuf[Packet](sim, bufSize)
	}
	for i := range outDirs {
		r.arbs[i] = NewRoundRobinArbiter(5)
	}
	return r
}

// Coords returns the router's grid position.
func (r *Router) Coords() Coords { return r.coords }

// Sent returns the number of packets accepted on this router's Inject port.
func (r *Router) Sent() uint64 { return r.sent }

// Received returns the number of packets ejected at this router.
func (r *Router) Received() uint64 { return r.received }

func inIndex(d Direction) int {
	for i, id := range inDirs {
		if id == d {
			return i
		}
	}
	panic("mesh: get_link/get_buf: unreachable direction")
}

func outIndex(d Direction) int {
	for i, od := range outDirs {
		if od == d {
			return i
		}
	}
	panic("mesh: get_arb: unreachable direction")
}

func (r *Router) getLink(d Direction) *des.FifoBuf[Packet] { return r.links[inIndex(d)] }
func (r *Router) getBuf(d Direction) *des.FifoBuf[Packet]  { return r.bufs[inIndex(d)] }
func (r *Router) getArb(d Direction) *RoundRobinArbiter    { return r.arbs[outIndex(d)] }

func (r *Router) neighborSlot(d Direction) int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	default:
		panic("mesh: get_neighbor: unreachable direction")
	}
}

func (r *Router) setNeighbor(d Direction, n *Router) {
	r.neighbors[r.neighborSlot(d)] = n
}

func (r *Router) getNeighbor(d Direction) *Router {
	n := r.neighbors[r.neighborSlot(d)]
	if n == nil {
		panic("mesh: get_neighbor: no neighbor wired in this direction")
	}
	return n
}

// route applies dimension-ordered (XY) routing: column displacement is
// resolved before row displacement.
func (r *Router) route(p Packet) Direction {
	switch {
	case p.Dest.Col > r.coords.Col:
		return East
	case p.Dest.Col < r.coords.Col:
		return West
	case p.Dest.Row > r.coords.Row:
		return North
	case p.Dest.Row < r.coords.Row:
		return South
	default:
		return Eject
	}
}

func (r *Router) empty() bool {
	for i := range inDirs {
		if !r.links[i].Empty() || !r.bufs[i].Empty() {
			return false
		}
	}
	return true
}

func (r *Router) scheduleProc() {
	if r.scheduled {
		return
	}
	r.scheduled = true
	delay := r.procDelay
	r.sim.Event(&delay).Callback(func(sim *des.Simulation) {
		r.proc()
	})
}

// Receive is called by a neighbor (or by external workload injection, via
// Inject) to hand a packet to the corresponding link. It arms the
// router's proc tick if none is pending and returns an Event firing one
// virtual-time unit after the link accepts the packet.
func (r *Router) Receive(fromDir Direction, p Packet) *des.Event {
	r.scheduleProc()
	return r.getLink(fromDir).Push(p).Delay(1.0)
}

// proc runs the router's per-tick algorithm: drain links into input
// buffers, arbitrate each output against the five inputs, then decide
// whether another tick is needed.
func (r *Router) proc() {
	for _, dir := range inDirs {
		link := r.getLink(dir)
		buf := r.getBuf(dir)

		p, ok := link.Peek()
		if !ok {
			continue
		}

		if dir == Inject {
			r.sent++
		}

		link.Pend()
		buf.Push(p).Callback(func(sim *des.Simulation) {
			link.Pop()
		})
	}

	for _, odir := range outDirs {
		arb := r.getArb(odir)

		for off := 0; off < len(inDirs); off++ {
			idir := inDirs[(arb.Get()+off)%5]
			ib := r.getBuf(idir)

			p, ok := ib.Peek()
			if !ok || r.route(p) != odir {
				continue
			}

			ib.Pend()

			if odir == Eject {
				r.received++
				ib.Pop()
				if r.Metrics != nil {
					r.Metrics.IncReceived(r.coords.Row, r.coords.Col)
				}
			} else {
				or := r.getNeighbor(odir)
				if r.Trace != nil {
					r.Trace.RecordHop(r.sim.Now(), r.coords.Row, r.coords.Col, idir.String(), odir.String(), [2]uint32{p.Dest.Row, p.Dest.Col})
				}
				if r.Metrics != nil {
					r.Metrics.IncHop(r.coords.Row, r.coords.Col, odir.String())
				}
				or.Receive(flip(odir), p).Callback(func(sim *des.Simulation) {
					ib.Pop()
				})
			}
			break
		}

		arb.Inc()
	}

	if r.empty() {
		r.scheduled = false
		return
	}

	logrus.Debugf("mesh: router (%d,%d) rescheduling proc at t=%v", r.coords.Row, r.coords.Col, r.sim.Now()+r.procDelay)
	delay := r.procDelay
	r.sim.Event(&delay).Callback(func(sim *des.Simulation) {
		r.proc()
	})
}
