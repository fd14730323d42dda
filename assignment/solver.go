package assignment

import (
	"github.com/wldnjs95/choreoplan/choreoerr"
	"github.com/wldnjs95/choreoplan/geom"
)

// identityBias is subtracted from the identity-mapping cost entries before
// running Hungarian, so that when two assignments are cost-equivalent the
// solver prefers the one that keeps the identity mapping (spec.md §4.1).
// It must be small enough to never flip a genuinely cheaper non-identity
// assignment: distances on any realistic stage are well above this scale.
const identityBias = 1e-9

// Solve computes an Assignment for n dancers (start[i] is dancer i+1's start
// position) under mode. locked is consulted only for Partial.
//
// Errors: a *choreoerr.ShapeMismatchError if len(start) != len(end), or if
// Partial and a locked id falls outside [1,n].
func Solve(mode Mode, start, end []geom.Vector, locked map[int]bool) (Assignment, error) {
	n := len(start)
	if n != len(end) {
		return nil, &choreoerr.ShapeMismatchError{NStart: n, NEnd: len(end)}
	}

	switch mode {
	case Fixed:
		return solveFixed(start, end), nil
	case Optimal:
		return solveOptimal(start, end, nil), nil
	case Partial:
		for id := range locked {
			if id < 1 || id > n {
				return nil, &choreoerr.ShapeMismatchError{NStart: n, NEnd: len(end)}
			}
		}

		return solvePartial(start, end, locked), nil
	default:
		return solveFixed(start, end), nil
	}
}

func solveFixed(start, end []geom.Vector) Assignment {
	n := len(start)
	out := make(Assignment, n)
	for i := 0; i < n; i++ {
		out[i] = Record{DancerID: i + 1, EndIndex: i, Cost: geom.DistSq(start[i], end[i])}
	}

	return out
}

// solveOptimal assigns over all n indices, or, when restrict is non-nil, only
// over the indices in restrict (used by Partial for the unlocked remainder).
// restrict, when given, must list dancer indices (0-based) and is used both
// as the row set and, since every choreoplan problem is square, the matching
// column set.
func solveOptimal(start, end []geom.Vector, restrict []int) Assignment {
	n := len(start)

	rows := restrict
	if rows == nil {
		rows = make([]int, n)
		for i := range rows {
			rows[i] = i
		}
	}
	k := len(rows)

	cost := make([][]float64, k)
	for i := 0; i < k; i++ {
		cost[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			cost[i][j] = geom.DistSq(start[rows[i]], end[rows[j]])
		}
		// Bias the identity pairing (same global index) to win cost ties.
		for j := 0; j < k; j++ {
			if rows[i] == rows[j] {
				cost[i][j] -= identityBias
			}
		}
	}

	rowToCol := hungarianSolve(cost)

	out := make(Assignment, k)
	for i := 0; i < k; i++ {
		dancerIdx := rows[i]
		endIdx := rows[rowToCol[i]]
		out[i] = Record{
			DancerID: dancerIdx + 1,
			EndIndex: endIdx,
			Cost:     geom.DistSq(start[dancerIdx], end[endIdx]),
		}
	}

	return out
}

func solvePartial(start, end []geom.Vector, locked map[int]bool) Assignment {
	n := len(start)

	var remaining []int
	out := make(Assignment, 0, n)
	for i := 0; i < n; i++ {
		dancerID := i + 1
		if locked[dancerID] {
			out = append(out, Record{DancerID: dancerID, EndIndex: i, Cost: geom.DistSq(start[i], end[i])})
		} else {
			remaining = append(remaining, i)
		}
	}

	if len(remaining) > 0 {
		sub := solveOptimal(start, end, remaining)
		out = append(out, sub...)
	}

	// Re-sort by DancerID so the result is ordered 1..n regardless of which
	// branch produced each record.
	sortByDancerID(out)

	return out
}

func sortByDancerID(a Assignment) {
	// Insertion sort: n is the dancer count, expected small (<=a few dozen),
	// and the input is already nearly sorted (locked entries appended
	// in order, optimal entries appended in rows order).
	for i := 1; i < len(a); i++ {
		j := i
		for j > 0 && a[j-1].DancerID > a[j].DancerID {
			a[j-1], a[j] = a[j], a[j-1]
			j--
		}
	}
}
