package pathgen

import "github.com/wldnjs95/choreoplan/geom"

// curveKappa scales the perpendicular control-point offset relative to
// segment length, per spec.md §4.2.2.
const curveKappa = 0.35

// Curve generates a quadratic-Bézier detour DancerPath from start to end.
// curvature in [0,1] scales the perpendicular offset of the single control
// point: offset = curvature * |end-start| * curveKappa.
//
// The offset side is chosen deterministically: a dancer starting left of
// centerX curves left; a dancer starting exactly on centerX breaks the tie by
// id parity (odd curves left). "Left" is taken relative to the segment
// oriented toward +x (toward +y for a vertical segment), not to the travel
// direction, so two dancers on opposite sides of center swapping along one
// line detour to opposite sides of it. This matches every other pure function in the
// candidate pipeline in being a function of (dancerID, start, end, centerX)
// alone, so identical inputs always produce identical paths.
//
// If the naive control point would push any sampled point outside
// [0,width]x[0,height] (±stage.Margin), the offset magnitude is iteratively
// halved until the path fits, guaranteeing the stage-margin contract shared
// with Straight.
func Curve(dancerID int, start, end geom.Vector, startTime, totalCounts, speed float64, samples int, curvature, centerX, width, height float64) DancerPath {
	seg := geom.Sub(end, start)
	segLen := geom.Length(seg)

	sign := curveSide(dancerID, start.X, centerX)
	perpDir := geom.Normalize(geom.Perp(seg))
	if seg.X < 0 || (seg.X == 0 && seg.Y < 0) {
		perpDir = geom.Scale(perpDir, -1)
	}

	offsetMag := curvature * segLen * curveKappa
	mid := geom.Lerp(start, end, 0.5)

	var points []PathPoint
	for attempt := 0; attempt < 8; attempt++ {
		control := geom.Add(mid, geom.Scale(perpDir, offsetMag*sign))
		points = sampleBezier(start, control, end, startTime, totalCounts, samples)
		if allWithinBounds(points, width, height) {
			break
		}
		offsetMag /= 2
	}

	return DancerPath{
		DancerID:  dancerID,
		Points:    points,
		StartTime: startTime,
		Speed:     speed,
		ArcLength: computeArcLength(points),
	}
}

// curveSide returns +1 ("curve left") or -1 ("curve right").
func curveSide(dancerID int, startX, centerX float64) float64 {
	switch {
	case startX < centerX:
		return 1
	case startX > centerX:
		return -1
	default:
		if dancerID%2 == 1 {
			return 1
		}

		return -1
	}
}

func sampleBezier(start, control, end geom.Vector, startTime, totalCounts float64, samples int) []PathPoint {
	points := make([]PathPoint, samples)
	span := totalCounts - startTime

	for i := 0; i < samples; i++ {
		frac := float64(i) / float64(samples-1)
		t := startTime + span*frac
		pos := geom.QuadraticBezier(start, control, end, frac)
		points[i] = PathPoint{X: pos.X, Y: pos.Y, T: t}
	}

	points[0] = PathPoint{X: start.X, Y: start.Y, T: startTime}
	points[samples-1] = PathPoint{X: end.X, Y: end.Y, T: totalCounts}

	return points
}

func allWithinBounds(points []PathPoint, width, height float64) bool {
	const margin = 0.5
	for _, p := range points {
		if p.X < -margin || p.X > width+margin || p.Y < -margin || p.Y > height+margin {
			return false
		}
	}

	return true
}
