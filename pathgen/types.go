package pathgen

import "github.com/wldnjs95/choreoplan/geom"

// PathPoint is one sample of a dancer's trajectory: position at time T.
type PathPoint struct {
	X, Y, T float64
}

// Vector extracts the planar position of a PathPoint.
func (p PathPoint) Vector() geom.Vector {
	return geom.Vector{X: p.X, Y: p.Y}
}

// DancerPath is one dancer's full sampled trajectory plus the derived
// scalars spec.md §3 names: arc length, start time, and speed multiplier.
type DancerPath struct {
	DancerID  int
	Points    []PathPoint
	StartTime float64
	Speed     float64
	ArcLength float64
}

// ArrivalTime returns the t of the last sample, the instant this dancer
// reaches its end position (used by the simultaneousArrival metric).
func (d DancerPath) ArrivalTime() float64 {
	if len(d.Points) == 0 {
		return 0
	}

	return d.Points[len(d.Points)-1].T
}

// PositionAt linearly interpolates d's position at time t. t outside
// [d.Points[0].T, d.Points[-1].T] clamps to the nearest endpoint. Used by the
// collision resolver and metric evaluator to sample all dancers on a common
// time grid regardless of each dancer's own sample spacing.
func (d DancerPath) PositionAt(t float64) geom.Vector {
	n := len(d.Points)
	if n == 0 {
		return geom.Vector{}
	}
	if t <= d.Points[0].T {
		return d.Points[0].Vector()
	}
	if t >= d.Points[n-1].T {
		return d.Points[n-1].Vector()
	}

	for i := 0; i < n-1; i++ {
		a, b := d.Points[i], d.Points[i+1]
		if t >= a.T && t <= b.T {
			span := b.T - a.T
			if span <= geom.Epsilon {
				return a.Vector()
			}
			frac := (t - a.T) / span

			return geom.Lerp(a.Vector(), b.Vector(), frac)
		}
	}

	return d.Points[n-1].Vector()
}

// ArcLength sums the Euclidean length of consecutive point segments. Exported
// so callers building a DancerPath from externally supplied points (e.g. a
// FullPathProvider response) can populate the field the same way Straight
// and Curve do internally.
func ArcLength(points []PathPoint) float64 {
	return computeArcLength(points)
}

// computeArcLength sums the Euclidean length of consecutive point segments.
func computeArcLength(points []PathPoint) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += geom.Dist(points[i-1].Vector(), points[i].Vector())
	}

	return total
}
