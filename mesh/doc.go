// Package mesh implements a 2-D mesh network-on-chip: routers connected
// to their cardinal neighbors, switching packets toward their
// destination under dimension-ordered (XY) routing.
//
// # Reading Guide
//
// Start with these files:
//   - packet.go: Packet and Direction, the wire-level vocabulary
//   - arbiter.go: RoundRobinArbiter, the per-output fairness primitive
//   - router.go: Router, the per-node link/buffer/switch state machine
//   - mesh.go: Mesh, the H×W grid that owns and wires routers together
//
// # Architecture
//
// Each Router holds, for its five input directions (Inject, N, E, S,
// W), a single-slot link buffer modeling wire latency and a deeper input
// buffer awaiting switch arbitration. Every proc tick drains links into
// input buffers (Stage 1), then arbitrates each output direction against
// all five inputs in round-robin order (Stage 2), then either clears or
// reschedules itself depending on whether any state remains (Stage 3).
// All buffer hand-offs go through des.FifoBuf's peek/pend/pop protocol,
// so a packet is never lost or duplicated across a tick boundary.
package mesh
