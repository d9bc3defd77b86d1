package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"gonum.org/v1/gonum/stat"
)

// Collector accumulates per-router counters against a private Prometheus
// registry. Each Mesh owns its own Collector; nothing here touches the
// global default registry.
type Collector struct {
	registry *prometheus.Registry

	received *prometheus.CounterVec
	hops     *prometheus.CounterVec

	hopCounts map[string]float64
}

// New creates a Collector and registers its metric families against a
// fresh, private registry.
func New() *Collector {
	registry := prometheus.NewRegistry()

	received := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mesh_router_received_total",
		Help: "Packets ejected at this router.",
	}, []string{"row", "col"})

	hops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mesh_router_hop_total",
		Help: "Packets forwarded out of this router, by output direction.",
	}, []string{"row", "col", "direction"})

	registry.MustRegister(received, hops)

	return &Collector{
		registry:  registry,
		received:  received,
		hops:      hops,
		hopCounts: make(map[string]float64),
	}
}

// Registry returns the private Prometheus registry this Collector writes
// to, for callers that want to expose it on an HTTP /metrics endpoint.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// IncReceived records one packet ejected at (row, col).
func (c *Collector) IncReceived(row, col uint32) {
	c.received.WithLabelValues(coord(row), coord(col)).Inc()
}

// IncHop records one packet forwarded out of (row, col) toward direction.
func (c *Collector) IncHop(row, col uint32, direction string) {
	c.hops.WithLabelValues(coord(row), coord(col), direction).Inc()
	c.hopCounts[key(row, col, direction)]++
}

// FairnessSummary reports the mean and standard deviation of per-output
// hop counts recorded so far, a rough signal of round-robin fairness
// across the mesh: a low stddev relative to the mean indicates traffic is
// spread evenly rather than concentrated on a few output directions.
type FairnessSummary struct {
	Mean   float64
	StdDev float64
	Count  int
}

// Fairness computes a FairnessSummary over all recorded hop counts.
func (c *Collector) Fairness() FairnessSummary {
	if len(c.hopCounts) == 0 {
		return FairnessSummary{}
	}

	counts := make([]float64, 0, len(c.hopCounts))
	for _, v := range c.hopCounts {
		counts = append(counts, v)
	}

	mean, stddev := stat.MeanStdDev(counts, nil)
	return FairnessSummary{Mean: mean, StdDev: stddev, Count: len(counts)}
}

func coord(n uint32) string {
	return fmt.Sprintf("%d", n)
}

func key(row, col uint32, direction string) string {
	return fmt.Sprintf("%d,%d,%s", row, col, direction)
}
