package provider

import (
	"context"

	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/pathgen"
)

// LocalDeterministicPreConstraint implements PreConstraintProvider without
// ever calling out: it is spec.md §4.7's "deterministic default" fallback,
// also usable directly by callers that want a PreConstraint without a real
// advisor. It proposes longest_first ordering with per-dancer delay
// proportional to travel distance.
type LocalDeterministicPreConstraint struct{}

// Propose never fails.
func (LocalDeterministicPreConstraint) Propose(_ context.Context, start, end []geom.Vector, _, _ float64) (PreConstraint, error) {
	n := len(start)
	hints := make([]DancerHint, n)

	maxDist := 0.0
	dists := make([]float64, n)
	for i := 0; i < n; i++ {
		d := geom.Dist(start[i], end[i])
		dists[i] = d
		if d > maxDist {
			maxDist = d
		}
	}

	for i := 0; i < n; i++ {
		ratio := 0.0
		if maxDist > geom.Epsilon {
			ratio = dists[i] / maxDist
		}
		hints[i] = DancerHint{DancerID: i + 1, Priority: i, DelayRatio: ratio}
	}

	return PreConstraint{
		MovementOrder: LongestFirst,
		DancerHints:   hints,
		Confidence:    1.0,
	}, nil
}

// LocalDeterministicFullPath implements FullPathProvider without ever
// calling out: identity assignment, straight-line paths. Used as the
// never-fails capability the design-notes pattern calls for, and in tests
// that exercise external_full's validation/retry plumbing without a real
// network dependency.
type LocalDeterministicFullPath struct {
	Samples int
}

// Plan never fails.
func (p LocalDeterministicFullPath) Plan(_ context.Context, start, end []geom.Vector, _, _, totalCounts, _ float64, _ UserPreference, _ []string) (FullPathResult, error) {
	samples := p.Samples
	if samples < 2 {
		samples = 20
	}

	paths := make(map[int][]pathgen.PathPoint, len(start))
	for i := range start {
		dp := pathgen.Straight(i+1, start[i], end[i], 0, totalCounts, 1.0, samples)
		paths[i+1] = dp.Points
	}

	return FullPathResult{
		Paths:      paths,
		Strategy:   "local_deterministic",
		Reasoning:  "identity assignment, straight-line interpolation",
		Confidence: 1.0,
	}, nil
}
