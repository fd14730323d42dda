package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wldnjs95/choreoplan/geom"
)

func TestDistAndDistSq(t *testing.T) {
	a := geom.Vector{X: 0, Y: 0}
	b := geom.Vector{X: 3, Y: 4}

	require.InDelta(t, 5.0, geom.Dist(a, b), geom.Epsilon)
	require.InDelta(t, 25.0, geom.DistSq(a, b), geom.Epsilon)
}

func TestNormalizeZeroVectorIsTotal(t *testing.T) {
	require.Equal(t, geom.Vector{}, geom.Normalize(geom.Vector{}))
}

func TestLerpEndpoints(t *testing.T) {
	a := geom.Vector{X: 0, Y: 0}
	b := geom.Vector{X: 10, Y: 20}

	require.Equal(t, a, geom.Lerp(a, b, 0))
	require.Equal(t, b, geom.Lerp(a, b, 1))
	require.Equal(t, geom.Vector{X: 5, Y: 10}, geom.Lerp(a, b, 0.5))
}

func TestQuadraticBezierEndpoints(t *testing.T) {
	p0 := geom.Vector{X: 0, Y: 0}
	p1 := geom.Vector{X: 5, Y: 5}
	p2 := geom.Vector{X: 10, Y: 0}

	require.Equal(t, p0, geom.QuadraticBezier(p0, p1, p2, 0))
	require.Equal(t, p2, geom.QuadraticBezier(p0, p1, p2, 1))
}

func TestAngleBetweenDegenerateIsTotal(t *testing.T) {
	require.Equal(t, 0.0, geom.AngleBetween(geom.Vector{}, geom.Vector{X: 1}))
}

func TestAngleBetweenOrthogonal(t *testing.T) {
	a := geom.Vector{X: 1, Y: 0}
	b := geom.Vector{X: 0, Y: 1}
	require.InDelta(t, math.Pi/2, geom.AngleBetween(a, b), 1e-6)
}

func TestSegmentsIntersectBasicX(t *testing.T) {
	a0 := geom.Vector{X: 0, Y: 0}
	a1 := geom.Vector{X: 4, Y: 4}
	b0 := geom.Vector{X: 0, Y: 4}
	b1 := geom.Vector{X: 4, Y: 0}

	require.True(t, geom.SegmentsIntersect(a0, a1, b0, b1))
}

func TestSegmentsIntersectParallelNoCross(t *testing.T) {
	a0 := geom.Vector{X: 0, Y: 0}
	a1 := geom.Vector{X: 4, Y: 0}
	b0 := geom.Vector{X: 0, Y: 1}
	b1 := geom.Vector{X: 4, Y: 1}

	require.False(t, geom.SegmentsIntersect(a0, a1, b0, b1))
}

func TestSegmentsIntersectSharedEndpointExcluded(t *testing.T) {
	a0 := geom.Vector{X: 0, Y: 0}
	a1 := geom.Vector{X: 4, Y: 4}
	b0 := geom.Vector{X: 0, Y: 0}
	b1 := geom.Vector{X: 4, Y: 0}

	require.False(t, geom.SegmentsIntersect(a0, a1, b0, b1))
}
