package collision_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wldnjs95/choreoplan/collision"
	"github.com/wldnjs95/choreoplan/geom"
)

func swapScenario() []collision.Entry {
	return []collision.Entry{
		{DancerID: 1, Start: geom.Vector{X: 1, Y: 2}, End: geom.Vector{X: 3, Y: 2}, Speed: 1},
		{DancerID: 2, Start: geom.Vector{X: 3, Y: 2}, End: geom.Vector{X: 1, Y: 2}, Speed: 1},
	}
}

func baseParams() collision.Params {
	return collision.Params{
		TotalCounts: 4,
		CenterX:     2,
		Width:       4,
		Height:      4,
		Samples:     20,
		Radius:      0.5,
		Budget:      8,
	}
}

func TestResolveReducesSwapCollision(t *testing.T) {
	resolved, count := collision.Resolve(swapScenario(), baseParams())
	require.Equal(t, 0, count)
	require.Len(t, resolved, 2)
}

func TestResolveIdempotent(t *testing.T) {
	p := baseParams()
	once, count1 := collision.Resolve(swapScenario(), p)
	twice, count2 := collision.Resolve(once, p)

	require.Equal(t, count1, count2)
	for i := range once {
		require.Equal(t, once[i].StartTime, twice[i].StartTime)
		require.Equal(t, once[i].Curved, twice[i].Curved)
		require.Equal(t, once[i].Curvature, twice[i].Curvature)
	}
}

func TestResolveNeverPanicsOnNoCollision(t *testing.T) {
	entries := []collision.Entry{
		{DancerID: 1, Start: geom.Vector{X: 0, Y: 0}, End: geom.Vector{X: 1, Y: 0}, Speed: 1},
		{DancerID: 2, Start: geom.Vector{X: 0, Y: 10}, End: geom.Vector{X: 1, Y: 10}, Speed: 1},
	}
	resolved, count := collision.Resolve(entries, baseParams())
	require.Equal(t, 0, count)
	require.Len(t, resolved, 2)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	entries := swapScenario()
	before := entries[0].StartTime
	_, _ = collision.Resolve(entries, baseParams())
	require.Equal(t, before, entries[0].StartTime)
}

func TestResolveStartTimeCappedAtHalfT(t *testing.T) {
	p := baseParams()
	p.Radius = 3 // force persistent near-collision across most of the grid
	resolved, _ := collision.Resolve(swapScenario(), p)
	for _, e := range resolved {
		require.LessOrEqual(t, e.StartTime, p.TotalCounts/2+1e-9)
	}
}
