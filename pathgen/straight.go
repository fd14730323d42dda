package pathgen

import "github.com/wldnjs95/choreoplan/geom"

// Straight generates a linearly interpolated DancerPath of samples points
// from start to end, sampled uniformly in t over [startTime, totalCounts].
// speed scales the wall-clock pacing only (the returned Points still span
// exactly [startTime, totalCounts] in t, since t is the beat-count axis every
// other stage samples against); it is carried as metadata for callers that
// need it (e.g. a renderer).
//
// samples must be >= 2; the first point is exactly (start, startTime), the
// last is exactly (end, totalCounts).
func Straight(dancerID int, start, end geom.Vector, startTime, totalCounts, speed float64, samples int) DancerPath {
	points := make([]PathPoint, samples)
	span := totalCounts - startTime

	for i := 0; i < samples; i++ {
		frac := float64(i) / float64(samples-1)
		t := startTime + span*frac
		pos := geom.Lerp(start, end, frac)
		points[i] = PathPoint{X: pos.X, Y: pos.Y, T: t}
	}

	// Pin exact endpoints against FP drift from the frac=0/1 arithmetic above.
	points[0] = PathPoint{X: start.X, Y: start.Y, T: startTime}
	points[samples-1] = PathPoint{X: end.X, Y: end.Y, T: totalCounts}

	return DancerPath{
		DancerID:  dancerID,
		Points:    points,
		StartTime: startTime,
		Speed:     speed,
		ArcLength: computeArcLength(points),
	}
}
