package stage

import "github.com/wldnjs95/choreoplan/geom"

// Position is a point on the stage, (0,0) at the bottom-left.
type Position = geom.Vector

// Dims gives the stage's rectangular extent in the same units as Position.
type Dims struct {
	Width, Height float64
}

// Stage is the axis-aligned rectangle dancers move within.
type Stage struct {
	Dims Dims
}

// Margin is the tolerance by which a path point is allowed to sit outside
// [0,W]x[0,H], per spec.md §4.2's path-generation contract.
const Margin = 0.5

// Contains reports whether p lies within the stage, inclusive of Margin.
func (s Stage) Contains(p Position) bool {
	return p.X >= -Margin && p.X <= s.Dims.Width+Margin &&
		p.Y >= -Margin && p.Y <= s.Dims.Height+Margin
}

// Dancer is one participant, identified by a 1-based id, with its start
// position and (once assigned) its end position.
type Dancer struct {
	ID    int
	Start Position
	End   Position
}

// Formation is N dancers placed on a Stage for the duration of one plan
// request. It is immutable once constructed.
type Formation struct {
	Stage   Stage
	Dancers []Dancer
}

// Center returns the center point (W/2, H/2) of the stage, used by the
// center-distance strategy orderings and as the reference for a curved
// path's detour side.
func (s Stage) Center() Position {
	return Position{X: s.Dims.Width / 2, Y: s.Dims.Height / 2}
}
