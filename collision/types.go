package collision

import (
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/pathgen"
)

// Entry is one dancer's mutable resolver state: its fixed start/end
// positions plus the current generation parameters (StartTime, whether it is
// curved and at what curvature) and the DancerPath those parameters produce.
// Resolve only ever increases StartTime or Curvature; it never relaxes them,
// which is what makes repeated application idempotent (see Idempotent tests).
type Entry struct {
	DancerID   int
	Start, End geom.Vector
	StartTime  float64
	Curved     bool
	Curvature  float64
	Speed      float64
	Path       pathgen.DancerPath
}

// Params bundles the scenario constants Resolve needs to regenerate a path
// after mutating an Entry's timing or curvature.
type Params struct {
	TotalCounts float64
	CenterX     float64
	Width       float64
	Height      float64
	Samples     int
	Radius      float64
	Budget      int // B, spec.md §4.3 default 8
	// Priority, when non-nil, maps dancer id -> ascending rank; applyDelay
	// uses it to choose which dancer of a fully tied pair is delayed. The
	// candidate factory fills it from the strategy's ordering;
	// DancerHint.Priority is not consulted.
	Priority map[int]int
}

func (e Entry) regenerate(p Params) pathgen.DancerPath {
	if e.Curved {
		return pathgen.Curve(e.DancerID, e.Start, e.End, e.StartTime, p.TotalCounts, e.Speed, p.Samples, e.Curvature, p.CenterX, p.Width, p.Height)
	}

	return pathgen.Straight(e.DancerID, e.Start, e.End, e.StartTime, p.TotalCounts, e.Speed, p.Samples)
}
