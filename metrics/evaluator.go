package metrics

import (
	"math"
	"sort"

	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/pathgen"
)

// Input bundles everything Evaluate needs: the generated paths (borrowed,
// never mutated), the assignment's start/end positions in dancer-index
// order, the stage width, and the scenario's collision radius and total
// counts.
type Input struct {
	Paths       []pathgen.DancerPath
	Starts      []geom.Vector
	Ends        []geom.Vector
	StageWidth  float64
	TotalCounts float64
	Radius      float64
	Samples     int // P, used to size the dense evaluation grid (>= 2P)
}

// Evaluate computes the full CandidateMetrics record for one candidate's
// paths. It only reads its inputs.
func Evaluate(in Input) CandidateMetrics {
	grid := denseGrid(in.Samples)

	return CandidateMetrics{
		CollisionCount:      collisionCount(in.Paths, in.Radius, in.TotalCounts, grid),
		SymmetryScore:       symmetryScore(in.Paths, in.Starts, in.StageWidth, in.TotalCounts, grid),
		PathSmoothness:      pathSmoothness(in.Paths),
		CrossingCount:       crossingCount(in.Starts, in.Ends),
		MaxDelay:            maxDelay(in.Paths),
		SimultaneousArrival: simultaneousArrival(in.Paths, in.TotalCounts),
	}
}

func denseGrid(samples int) int {
	grid := 2 * samples
	if grid < 4 {
		grid = 4
	}

	return grid
}

func collisionCount(paths []pathgen.DancerPath, radius, totalCounts float64, grid int) int {
	type pair struct{ i, j int }
	found := make(map[pair]bool)

	for step := 0; step < grid; step++ {
		t := totalCounts * float64(step) / float64(grid-1)
		for i := 0; i < len(paths); i++ {
			pi := paths[i].PositionAt(t)
			for j := i + 1; j < len(paths); j++ {
				pj := paths[j].PositionAt(t)
				if geom.Dist(pi, pj) < radius {
					found[pair{i, j}] = true
				}
			}
		}
	}

	return len(found)
}

// symmetryScore pairs each dancer with the one whose start position is
// nearest the mirror of its own start position about the stage x-center,
// then averages |( W - xA(t) ) - xB(t)| and |yA(t) - yB(t)| across the
// dense grid for every pair. Mean deviation maps to 0..100 linearly, 0
// deviation -> 100, >= W/3 -> 0.
func symmetryScore(paths []pathgen.DancerPath, starts []geom.Vector, width, totalCounts float64, grid int) float64 {
	n := len(starts)
	if n == 0 {
		return 100
	}

	partner := mirrorPairing(starts, width)

	var totalDeviation float64
	var sampleCount int
	seen := make(map[int]bool)

	for i := 0; i < n; i++ {
		j := partner[i]
		if i == j || seen[j] {
			continue
		}
		seen[i] = true

		for step := 0; step < grid; step++ {
			t := totalCounts * float64(step) / float64(grid-1)
			a := paths[i].PositionAt(t)
			b := paths[j].PositionAt(t)

			totalDeviation += math.Abs((width-a.X)-b.X) + math.Abs(a.Y-b.Y)
			sampleCount++
		}
	}

	if sampleCount == 0 {
		return 100
	}

	meanDeviation := totalDeviation / float64(sampleCount)

	return boundedDecreasing(meanDeviation, width/3)
}

// mirrorPairing greedily pairs each dancer index with the nearest unpaired
// index whose start position is closest to its mirror point, breaking ties
// by lowest index for determinism.
func mirrorPairing(starts []geom.Vector, width float64) []int {
	n := len(starts)
	partner := make([]int, n)
	for i := range partner {
		partner[i] = -1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Ints(order)

	for _, i := range order {
		if partner[i] != -1 {
			continue
		}

		mirror := geom.Vector{X: width - starts[i].X, Y: starts[i].Y}
		best := -1
		bestDist := math.MaxFloat64

		for j := 0; j < n; j++ {
			if j == i || partner[j] != -1 {
				continue
			}
			d := geom.DistSq(mirror, starts[j])
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 {
			partner[i] = i // unpaired remainder (e.g. odd n, on-axis dancer)
			continue
		}

		partner[i] = best
		partner[best] = i
	}

	return partner
}

// pathSmoothness averages, over all dancers, the sum of absolute turning
// angles between consecutive segments, then maps it to 0..100 via a
// saturating transform (0 turning -> 100, increasingly jagged -> toward 0).
func pathSmoothness(paths []pathgen.DancerPath) float64 {
	if len(paths) == 0 {
		return 100
	}

	var totalAngle float64
	for _, p := range paths {
		totalAngle += pathTurningAngle(p)
	}
	avgAngle := totalAngle / float64(len(paths))

	return 100 / (1 + avgAngle)
}

func pathTurningAngle(p pathgen.DancerPath) float64 {
	if len(p.Points) < 3 {
		return 0
	}

	var sum float64
	for i := 1; i < len(p.Points)-1; i++ {
		prev := geom.Sub(p.Points[i].Vector(), p.Points[i-1].Vector())
		next := geom.Sub(p.Points[i+1].Vector(), p.Points[i].Vector())
		sum += geom.AngleBetween(prev, next)
	}

	return sum
}

// crossingCount counts unordered pairs of dancers whose straight start->end
// segments intersect, independent of which sub-policy actually generated
// their paths.
func crossingCount(starts, ends []geom.Vector) int {
	n := len(starts)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if geom.SegmentsIntersect(starts[i], ends[i], starts[j], ends[j]) {
				count++
			}
		}
	}

	return count
}

func maxDelay(paths []pathgen.DancerPath) float64 {
	var m float64
	for _, p := range paths {
		if p.StartTime > m {
			m = p.StartTime
		}
	}

	return m
}

// simultaneousArrival scores 100 minus the normalized spread of each
// dancer's effective arrival time (the t of its last sampled point). Spread
// of 0 -> 100; spread >= T/2 -> 0.
func simultaneousArrival(paths []pathgen.DancerPath, totalCounts float64) float64 {
	if len(paths) == 0 {
		return 100
	}

	minT, maxT := math.MaxFloat64, -math.MaxFloat64
	for _, p := range paths {
		a := p.ArrivalTime()
		if a < minT {
			minT = a
		}
		if a > maxT {
			maxT = a
		}
	}

	spread := maxT - minT

	return boundedDecreasing(spread, totalCounts/2)
}

// boundedDecreasing maps value linearly from [0,scale] to [100,0], clamped
// to [0,100] outside that range. scale <= 0 degenerates to "any positive
// value is worst" without dividing by zero.
func boundedDecreasing(value, scale float64) float64 {
	if scale <= 0 {
		if value <= 0 {
			return 100
		}

		return 0
	}

	score := 100 * (1 - value/scale)
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}

	return score
}
