package candidate

import (
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/provider"
)

// DancerGeom is the geometric view of one dancer an OrderFunc sorts on.
type DancerGeom struct {
	ID         int
	Start, End geom.Vector
	Center     geom.Vector
}

// OrderFunc returns a sort key for a dancer; ascending key is processed
// first by the resolver.
type OrderFunc func(d DancerGeom) float64

// Strategy is one named parameterization of the pipeline: an ordering, a
// sub-policy (straight vs curved), and a curvature amount, plus optional
// per-dancer overrides a PreConstraint may impose.
type Strategy struct {
	Label     string
	Order     OrderFunc
	Curved    bool
	Curvature float64

	// StartTimeRatio, when non-nil, sets a dancer's initial StartTime to
	// StartTimeRatio(dancerID) * T/2 (spec.md §4.4 constraint-guided delayRatio).
	StartTimeRatio func(dancerID int) float64

	// PerDancerCurve, when non-nil, overrides Curved/Curvature for a single
	// dancer (spec.md §4.4 constraint-guided preferCurve).
	PerDancerCurve func(dancerID int) (curved bool, curvature float64, ok bool)
}

func byDistanceDesc(d DancerGeom) float64  { return -geom.Dist(d.Start, d.End) }
func byDistanceAsc(d DancerGeom) float64   { return geom.Dist(d.Start, d.End) }
func byIdentity(d DancerGeom) float64      { return float64(d.ID) }
func byCenterDistAsc(d DancerGeom) float64 { return geom.Dist(d.Start, d.Center) }

// BaselineStrategies returns the five default strategies, spec.md §4.4 table.
func BaselineStrategies() []Strategy {
	return []Strategy{
		{Label: "distance_longest_first", Order: byDistanceDesc, Curved: false, Curvature: 0},
		{Label: "distance_shortest_first", Order: byDistanceAsc, Curved: false, Curvature: 0},
		{Label: "timing_priority", Order: byIdentity, Curved: false, Curvature: 0},
		{Label: "curve_allowed", Order: byDistanceDesc, Curved: true, Curvature: 0.5},
		{Label: "center_priority", Order: byCenterDistAsc, Curved: false, Curvature: 0},
	}
}

// movementOrderFunc maps a provider.MovementOrder to an OrderFunc.
// "simultaneous" has no natural ordering preference; it sorts by identity so
// output stays deterministic.
func movementOrderFunc(m provider.MovementOrder) OrderFunc {
	switch m {
	case provider.WaveOutward, provider.CenterFirst:
		return byCenterDistAsc
	case provider.WaveInward, provider.OuterFirst:
		return func(d DancerGeom) float64 { return -geom.Dist(d.Start, d.Center) }
	case provider.LongestFirst:
		return byDistanceDesc
	case provider.ShortestFirst:
		return byDistanceAsc
	default: // Simultaneous
		return byIdentity
	}
}

// ConstraintStrategies returns the candidate set spec.md §4.4 describes when
// a PreConstraint is supplied: three constraint-guided variants (the
// suggested curvature and its ±0.3 brackets, clamped to [0,1]) plus the two
// baseline comparison strategies (longest_first, timing_priority).
func ConstraintStrategies(pc provider.PreConstraint) []Strategy {
	order := movementOrderFunc(pc.MovementOrder)
	startTimeRatio := func(dancerID int) float64 {
		return pc.HintFor(dancerID).DelayRatio
	}
	perDancerCurve := func(dancerID int) (bool, float64, bool) {
		h := pc.HintFor(dancerID)
		if h.PreferCurve {
			return true, clamp01(pc.SuggestedCurveAmount), true
		}

		return false, 0, false
	}

	brackets := []float64{pc.SuggestedCurveAmount, pc.SuggestedCurveAmount - 0.3, pc.SuggestedCurveAmount + 0.3}
	labels := []string{"constraint_guided", "constraint_guided_low", "constraint_guided_high"}

	strategies := make([]Strategy, 0, 5)
	for i, c := range brackets {
		strategies = append(strategies, Strategy{
			Label:          labels[i],
			Order:          order,
			Curved:         true,
			Curvature:      clamp01(c),
			StartTimeRatio: startTimeRatio,
			PerDancerCurve: perDancerCurve,
		})
	}

	strategies = append(strategies,
		Strategy{Label: "distance_longest_first", Order: byDistanceDesc, Curved: false, Curvature: 0},
		Strategy{Label: "timing_priority", Order: byIdentity, Curved: false, Curvature: 0},
	)

	return strategies
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
