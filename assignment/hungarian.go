package assignment

import "math"

// hungarianInf is a finite stand-in for a "forbidden" cost entry, large
// enough that no real squared-distance cost could reach it on any stage the
// adapter admits. No caller pads or forbids entries, so nothing uses it.
const hungarianInf = 1e18

// hungarianSolve solves the balanced (square) minimum-cost bipartite
// assignment problem via Kuhn-Munkres with row/column potentials (the
// Jonker-Volgenant formulation). It returns rowToCol where rowToCol[i] is the
// column assigned to row i.
//
// cost must be n×n; n==0 returns an empty slice. The algorithm runs in
// O(n³) time and O(n²) space, using 1-indexed internal arrays for the
// potential bookkeeping, matching the classical presentation.
func hungarianSolve(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}

	u := make([]float64, n+1) // row potentials
	v := make([]float64, n+1) // column potentials
	p := make([]int, n+1)     // p[j] = row currently assigned to column j
	way := make([]int, n+1)   // way[j] = previous column on the augmenting path

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := 1; j <= n; j++ {
			minv[j] = math.MaxFloat64 / 2
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.MaxFloat64 / 2
			j1 := -1

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}

	return rowToCol
}
