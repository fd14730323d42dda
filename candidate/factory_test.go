package candidate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/candidate"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/stage"
)

func square(n int, spacing float64) ([]geom.Vector, []geom.Vector) {
	start := make([]geom.Vector, n)
	end := make([]geom.Vector, n)
	for i := 0; i < n; i++ {
		start[i] = geom.Vector{X: float64(i) * spacing, Y: 0}
		end[i] = geom.Vector{X: float64(n-1-i) * spacing, Y: 10}
	}

	return start, end
}

func newTestParams(t *testing.T, n int) candidate.Params {
	t.Helper()

	start, end := square(n, 2)
	f, err := stage.NewFormation(start, end, stage.Dims{Width: 20, Height: 20})
	require.NoError(t, err)

	a, err := assignment.Solve(assignment.Fixed, start, end, nil)
	require.NoError(t, err)

	return candidate.Params{
		Formation:       f,
		Ends:            end,
		Assignment:      a,
		TotalCounts:     16,
		CollisionRadius: 1.0,
		Samples:         20,
		ResolverBudget:  8,
	}
}

func TestGenerateProducesOneCandidatePerStrategyInOrder(t *testing.T) {
	p := newTestParams(t, 4)
	strategies := candidate.BaselineStrategies()

	cands, err := candidate.Generate(context.Background(), p, strategies)
	require.NoError(t, err)
	require.Len(t, cands, len(strategies))

	for i, c := range cands {
		require.Equal(t, strategies[i].Label, c.ID)
		require.Len(t, c.Paths, 4)
		require.Equal(t, p.Assignment, c.Assignment)
	}
}

func TestGeneratePathsSpanFullDuration(t *testing.T) {
	p := newTestParams(t, 3)
	cands, err := candidate.Generate(context.Background(), p, candidate.BaselineStrategies())
	require.NoError(t, err)

	for _, c := range cands {
		for _, path := range c.Paths {
			require.Equal(t, p.TotalCounts, path.ArrivalTime())
		}
	}
}

func TestGenerateRespectsContextCancellation(t *testing.T) {
	p := newTestParams(t, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := candidate.Generate(ctx, p, candidate.BaselineStrategies())
	require.Error(t, err)
}

func TestGenerateCustomStraightStrategyProducesPoints(t *testing.T) {
	p := newTestParams(t, 2)
	strategies := []candidate.Strategy{
		{Label: "straight", Order: nil, Curved: false},
	}
	strategies[0].Order = func(candidate.DancerGeom) float64 { return 0 }

	cands, err := candidate.Generate(context.Background(), p, strategies)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	require.NotEmpty(t, cands[0].Paths[0].Points)
}
