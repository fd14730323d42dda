// Package stage defines the formation input adapter: Position, Dancer, Stage,
// and Formation, plus the validation that turns raw start/end position
// slices into a checked, immutable formation pair.
//
// Positions and Dancers are constructed once and never mutated; Assignment
// values, defined and produced by the assignment package, are immutable
// snapshots consumed read-only by every downstream stage.
package stage
