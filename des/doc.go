// Package des provides the core discrete-event simulation kernel for FabricDES.
//
// # Reading Guide
//
// Start with these two files to understand the simulation kernel:
//   - event.go: deferred-resolution Event and the virtual-time Simulation run loop
//   - resource.go / fifobuf.go: flow-control primitives built on Event
//
// # Architecture
//
// Event carries an ordered list of callbacks and an optional fire time.
// An Event may be created already scheduled (delay given up front) or
// unresolved (fire time decided later by a call to Simulation.Schedule).
// Callbacks may be appended at any point before the event executes;
// appending after execution panics.
//
// Simulation owns the virtual clock and a min-heap of scheduled events,
// ordered by fire time and, for ties, by enqueue order. This package
// never relies on container/heap's incidental stability, since it has
// none; an explicit sequence number breaks ties.
//
// Resource and FifoBuf compose Event to give higher-level callers
// (cache and mesh) FIFO-fair waiting and two-phase dequeue without
// either package needing to touch the heap directly.
package des
