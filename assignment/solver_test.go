package assignment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/geom"
)

func TestSolveFixedIsIdentity(t *testing.T) {
	start := []geom.Vector{{X: 0, Y: 0}, {X: 1, Y: 1}}
	end := []geom.Vector{{X: 5, Y: 5}, {X: 9, Y: 9}}

	a, err := assignment.Solve(assignment.Fixed, start, end, nil)
	require.NoError(t, err)
	require.Equal(t, 0, a.EndIndexFor(1))
	require.Equal(t, 1, a.EndIndexFor(2))
}

func TestSolveShapeMismatch(t *testing.T) {
	_, err := assignment.Solve(assignment.Optimal, []geom.Vector{{}}, nil, nil)
	require.Error(t, err)
}

func TestSolveOptimalIsBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(11) // up to 12 per spec.md §8
		start := randomPositions(rng, n)
		end := randomPositions(rng, n)

		a, err := assignment.Solve(assignment.Optimal, start, end, nil)
		require.NoError(t, err)
		require.Len(t, a, n)

		seen := make(map[int]bool)
		for _, r := range a {
			require.False(t, seen[r.EndIndex], "end index %d used twice", r.EndIndex)
			seen[r.EndIndex] = true
		}
		require.Len(t, seen, n)
	}
}

func TestSolveOptimalCostNeverExceedsFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(11)
		start := randomPositions(rng, n)
		end := randomPositions(rng, n)

		opt, err := assignment.Solve(assignment.Optimal, start, end, nil)
		require.NoError(t, err)
		fixed, err := assignment.Solve(assignment.Fixed, start, end, nil)
		require.NoError(t, err)

		require.LessOrEqual(t, opt.TotalCost(), fixed.TotalCost()+1e-6)
	}
}

func TestSolvePartialEmptyLockedEqualsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 6
	start := randomPositions(rng, n)
	end := randomPositions(rng, n)

	partial, err := assignment.Solve(assignment.Partial, start, end, map[int]bool{})
	require.NoError(t, err)
	opt, err := assignment.Solve(assignment.Optimal, start, end, nil)
	require.NoError(t, err)

	require.InDelta(t, opt.TotalCost(), partial.TotalCost(), 1e-6)
}

func TestSolvePartialFullLockedEqualsFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 6
	start := randomPositions(rng, n)
	end := randomPositions(rng, n)

	locked := map[int]bool{}
	for i := 1; i <= n; i++ {
		locked[i] = true
	}

	partial, err := assignment.Solve(assignment.Partial, start, end, locked)
	require.NoError(t, err)
	fixed, err := assignment.Solve(assignment.Fixed, start, end, nil)
	require.NoError(t, err)

	require.InDelta(t, fixed.TotalCost(), partial.TotalCost(), 1e-9)
}

func TestSolvePartialKeepsLockedIdentity(t *testing.T) {
	start := []geom.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	end := []geom.Vector{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	a, err := assignment.Solve(assignment.Partial, start, end, map[int]bool{1: true, 4: true})
	require.NoError(t, err)
	require.Equal(t, 0, a.EndIndexFor(1))
	require.Equal(t, 3, a.EndIndexFor(4))

	seen := map[int]bool{}
	for _, r := range a {
		require.False(t, seen[r.EndIndex])
		seen[r.EndIndex] = true
	}
}

func TestSolvePartialOutOfRangeLockedID(t *testing.T) {
	start := []geom.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}}
	end := []geom.Vector{{X: 1, Y: 0}, {X: 0, Y: 0}}

	_, err := assignment.Solve(assignment.Partial, start, end, map[int]bool{5: true})
	require.Error(t, err)
}

func randomPositions(rng *rand.Rand, n int) []geom.Vector {
	out := make([]geom.Vector, n)
	for i := range out {
		out[i] = geom.Vector{X: rng.Float64() * 20, Y: rng.Float64() * 20}
	}

	return out
}
