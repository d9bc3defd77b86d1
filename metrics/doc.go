// Package metrics exposes per-router Prometheus counters and a gonum-based
// fairness summary over recorded switch hops.
//
// Collector is built per Mesh instance rather than registered against the
// global Prometheus registry, so that constructing more than one Mesh in
// the same process (as package tests do) never panics on duplicate metric
// registration.
package metrics
