package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/provider"
)

func TestLocalDeterministicPreConstraintNeverFails(t *testing.T) {
	start := []geom.Vector{{X: 0, Y: 0}, {X: 5, Y: 5}}
	end := []geom.Vector{{X: 1, Y: 0}, {X: 9, Y: 9}}

	pc, err := provider.LocalDeterministicPreConstraint{}.Propose(context.Background(), start, end, 10, 10)
	require.NoError(t, err)
	require.Equal(t, provider.LongestFirst, pc.MovementOrder)
	require.Len(t, pc.DancerHints, 2)
	require.InDelta(t, 1.0, pc.Confidence, 1e-9)
}

func TestLocalDeterministicFullPathProducesValidPaths(t *testing.T) {
	start := []geom.Vector{{X: 0, Y: 0}, {X: 5, Y: 5}}
	end := []geom.Vector{{X: 1, Y: 0}, {X: 9, Y: 9}}

	res, err := provider.LocalDeterministicFullPath{}.Plan(context.Background(), start, end, 10, 10, 8, 0.5, provider.UserPreference{}, nil)
	require.NoError(t, err)
	require.Len(t, res.Paths, 2)
	for id, pts := range res.Paths {
		require.GreaterOrEqual(t, len(pts), 2)
		require.Equal(t, 0.0, pts[0].T)
		require.Equal(t, 8.0, pts[len(pts)-1].T)
		_ = id
	}
}
