// Package metrics computes the six scalar CandidateMetrics spec.md §4.5
// names for a completed set of DancerPaths: collision count, symmetry score,
// path smoothness, crossing count, max delay, and simultaneous-arrival
// score. Every transform is deterministic and total: degenerate input (a
// single dancer, a zero-length segment) never produces NaN or panics.
package metrics
