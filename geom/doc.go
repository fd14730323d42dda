// Package geom provides the small set of planar-geometry primitives shared by
// pathgen, collision, and metrics: a 2-D vector type, linear and quadratic
// interpolation, perpendicular offsets, and the segment-intersection test used
// by the crossing-count metric.
//
// All functions are pure, deterministic, and total: degenerate input (zero-length
// segments, coincident points) never panics or produces NaN.
package geom
