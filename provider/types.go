package provider

import (
	"context"

	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/pathgen"
)

// MovementOrder selects how the candidate factory sequences dancer
// processing when a PreConstraint is in effect (spec.md §3).
type MovementOrder int

const (
	Simultaneous MovementOrder = iota
	WaveOutward
	WaveInward
	CenterFirst
	OuterFirst
	LongestFirst
	ShortestFirst
)

func (m MovementOrder) String() string {
	switch m {
	case Simultaneous:
		return "simultaneous"
	case WaveOutward:
		return "wave_outward"
	case WaveInward:
		return "wave_inward"
	case CenterFirst:
		return "center_first"
	case OuterFirst:
		return "outer_first"
	case LongestFirst:
		return "longest_first"
	case ShortestFirst:
		return "shortest_first"
	default:
		return "unknown"
	}
}

// DancerHint biases the candidate factory and resolver for one dancer.
type DancerHint struct {
	DancerID     int
	Priority     int
	PreferCurve  bool
	DelayRatio   float64 // [0,1]
	AvoidCenter  bool
}

// PreConstraint is the advisory record an external advisor may supply to
// bias assignment ordering and curvature, spec.md §3.
type PreConstraint struct {
	MovementOrder        MovementOrder
	DancerHints          []DancerHint
	MaintainSymmetry     bool
	AvoidCrossing        bool
	PreferSmoothPaths    bool
	SuggestedCurveAmount float64 // [0,1]
	Confidence           float64 // [0,1]
}

// HintFor returns the DancerHint for dancerID, or the zero value (priority 0,
// no curve preference, no delay, not avoid-center) if none was supplied.
func (p PreConstraint) HintFor(dancerID int) DancerHint {
	for _, h := range p.DancerHints {
		if h.DancerID == dancerID {
			return h
		}
	}

	return DancerHint{DancerID: dancerID}
}

// CandidateSummary is the compact wire-shaped record a RankerProvider
// consumes per candidate, spec.md §6.
type CandidateSummary struct {
	ID       string               `json:"id"`
	Strategy string               `json:"strategy"`
	Metrics  CandidateMetricsWire `json:"metrics"`
}

// CandidateMetricsWire mirrors metrics.CandidateMetrics at the JSON
// boundary, decoupling the wire shape from the internal package.
type CandidateMetricsWire struct {
	CollisionCount      int     `json:"collisionCount"`
	SymmetryScore       float64 `json:"symmetryScore"`
	PathSmoothness      float64 `json:"pathSmoothness"`
	CrossingCount       int     `json:"crossingCount"`
	MaxDelay            float64 `json:"maxDelay"`
	SimultaneousArrival float64 `json:"simultaneousArrival"`
}

// UserPreference is the optional caller hint the ranker consumes, spec.md §6.
type UserPreference struct {
	Style       string
	Priority    string
	Description string
}

// RankedCandidate is one entry of a RankingResult.
type RankedCandidate struct {
	ID     string
	Rank   int
	Score  float64
	Reason string
}

// RankingResult is the ranker's output, spec.md §3.
type RankingResult struct {
	SelectedID  string
	Candidates  []RankedCandidate
	Explanation string
}

// FullPathResult is what a FullPathProvider returns: complete,
// provider-authored paths plus its own account of strategy, reasoning, and
// confidence, spec.md §6.
type FullPathResult struct {
	Paths      map[int][]pathgen.PathPoint // dancerID -> path
	Strategy   string
	Reasoning  string
	Confidence float64
}

// PreConstraintProvider proposes a PreConstraint from a raw formation.
type PreConstraintProvider interface {
	Propose(ctx context.Context, start, end []geom.Vector, width, height float64) (PreConstraint, error)
}

// RankerProvider ranks a set of candidate summaries.
type RankerProvider interface {
	Rank(ctx context.Context, summaries []CandidateSummary, pref UserPreference) (RankingResult, error)
}

// FullPathProvider plans complete paths directly, bypassing the candidate
// factory.
type FullPathProvider interface {
	Plan(ctx context.Context, start, end []geom.Vector, width, height, totalCounts, radius float64, pref UserPreference, priorErrors []string) (FullPathResult, error)
}
