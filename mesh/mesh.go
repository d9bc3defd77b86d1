package mesh

import (
	"github.com/inference-sim/fabricdes/des"
	"github.com/inference-sim/fabricdes/metrics"
	"github.com/inference-sim/fabricdes/trace"
)

// Mesh owns an H×W grid of routers in row-major order and wires each
// router's cardinal neighbor slots to the adjacent routers, leaving a
// slot absent at grid edges.
type Mesh struct {
	rows, cols int
	routers    []*Router
}

// New allocates a rows×cols Mesh with bufSize-deep per-input buffers and
// a proc tick interval of procDelay, and wires every router's neighbors.
func New(sim *des.Simulation, rows, cols, bufSize int, procDelay float32) *Mesh {
	if rows < 1 || cols < 1 {
		panic("mesh: New: rows and cols must both be >= 1")
	}

	m := &Mesh{rows: rows, cols: cols, routers: make([]*Router, rows*cols)}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.routers[r*cols+c] = NewRouter(sim, Coords{Row: uint32(r), Col: uint32(c)}, bufSize, procDelay)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			router := m.routers[r*cols+c]

			if r < rows-1 {
				router.setNeighbor(North, m.routers[(r+1)*cols+c])
			}
			if c < cols-1 {
				router.setNeighbor(East, m.routers[r*cols+(c+1)])
			}
			if r > 0 {
				router.setNeighbor(South, m.routers[(r-1)*cols+c])
			}
			if c > 0 {
				router.setNeighbor(West, m.routers[r*cols+(c-1)])
			}
		}
	}

	return m
}

// Rows returns the grid's row count.
func (m *Mesh) Rows() int { return m.rows }

// Cols returns the grid's column count.
func (m *Mesh) Cols() int { return m.cols }

// Router returns the shared router handle at (row, col).
func (m *Mesh) Router(row, col int) *Router {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic("mesh: Router: coordinates out of range")
	}
	return m.routers[row*m.cols+col]
}

// Routers returns every router in the mesh, row-major.
func (m *Mesh) Routers() []*Router { return m.routers }

// AttachTrace wires r onto every router in the mesh.
func (m *Mesh) AttachTrace(r *trace.Recorder) {
	for _, router := range m.routers {
		router.Trace = r
	}
}

// AttachMetrics wires c onto every router in the mesh.
func (m *Mesh) AttachMetrics(c *metrics.Collector) {
	for _, router := range m.routers {
		router.Metrics = c
	}
}

// TotalSent sums Sent() across every router, for checking Σsent == Σreceived
// at quiescence.
func (m *Mesh) TotalSent() uint64 {
	var total uint64
	for _, r := range m.routers {
		total += r.Sent()
	}
	return total
}

// TotalReceived sums Received() across every router.
func (m *Mesh) TotalReceived() uint64 {
	var total uint64
	for _, r := range m.routers {
		total += r.Received()
	}
	return total
}
