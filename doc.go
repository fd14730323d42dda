// Package choreoplan computes collision-avoiding dancer paths between two
// formations.
//
// Given N dancers' start and end positions, a stage size, and a duration in
// musical counts, choreoplan assigns each dancer an end position, generates
// several candidate sets of timed paths under distinct movement strategies,
// resolves inter-dancer collisions within each candidate, scores every
// candidate on symmetry, smoothness, and synchrony, and selects one — either
// by a local weighted-sum ranker or by deferring to an external advisor.
//
// The pipeline is organized as a sequence of independently testable
// packages:
//
//	stage/      — formations, positions, and stage geometry
//	assignment/ — start-to-end bijections (fixed, optimal, partial)
//	pathgen/    — per-dancer trajectory generation
//	collision/  — pairwise collision detection and resolution
//	candidate/  — strategy-driven candidate assembly, run concurrently
//	metrics/    — scalar scorecards per candidate
//	rank/       — local and externally-advised candidate selection
//	provider/   — pluggable external advisor interfaces and local defaults
//	pipeline/   — the coordinator tying the above into one request/response
//
// choreocfg, choreoerr, choreolog, and geom are small ambient packages shared
// across the above: configuration defaults, a sentinel error taxonomy,
// structured logging, and planar-vector helpers, respectively.
//
// See cmd/choreoplan-demo for a runnable end-to-end example.
package choreoplan
