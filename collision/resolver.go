package collision

import (
	"sort"

	"github.com/wldnjs95/choreoplan/geom"
)

// delayStepFraction is Δ/T from spec.md §4.3 step 1.
const delayStepFraction = 0.1

// curvatureEscalation is the sequence of curvature levels applied on
// successive step-2 sweeps, per spec.md §4.3 step 2.
var curvatureEscalation = []float64{0.3, 0.5, 0.8}

type pair struct{ a, b int } // indices into entries, a<b

// cloneEntries returns an independent copy of entries. Every mutator in this
// package (applyDelay, applyCurve, via regenerate) replaces an Entry's Path
// wholesale rather than mutating its Points slice in place, so a shallow
// element-wise copy is a safe, independent snapshot.
func cloneEntries(entries []Entry) []Entry {
	clone := make([]Entry, len(entries))
	copy(clone, entries)

	return clone
}

// Resolve mutates a copy of entries (the input slice is never modified; see
// Idempotence) until no sampled-grid collision remains, p.Budget sweeps
// have run, or a sweep changes nothing. It tracks the best (lowest-collision-count) snapshot seen across
// all sweeps and returns that snapshot rather than whatever the final sweep
// produced, so a sweep that happens to raise the count (e.g. curving a
// dancer into a third dancer's path) can never make the returned candidate
// worse than an earlier sweep or the unresolved input (spec.md §8's
// monotone-non-increase resolver law).
func Resolve(entries []Entry, p Params) ([]Entry, int) {
	work := make([]Entry, len(entries))
	copy(work, entries)
	for i := range work {
		if len(work[i].Path.Points) == 0 {
			work[i].Path = work[i].regenerate(p)
		}
	}

	order := orderedIndices(work, p.Priority)

	collisions := detect(work, p)
	count := len(collisions)

	best := cloneEntries(work)
	bestCount := count

	for sweep := 0; sweep < p.Budget && count > 0; sweep++ {
		before := cloneEntries(work)

		var changed bool
		if sweep < 1 {
			changed = applyDelay(work, collisions, p, order)
		} else {
			level := sweep - 1
			if level >= len(curvatureEscalation) {
				level = len(curvatureEscalation) - 1
			}
			changed = applyCurve(work, collisions, p, curvatureEscalation[level])
		}

		collisions = detect(work, p)
		newCount := len(collisions)

		if !changed || newCount > count {
			// No progress, or this sweep actively regressed: revert to the
			// pre-sweep state so the next sweep (a higher curvature level)
			// starts from a known-no-worse base instead of compounding a
			// regression.
			work = before
			collisions = detect(work, p)
			count = len(collisions)

			if !changed {
				break
			}

			continue
		}

		count = newCount
		if count < bestCount {
			best = cloneEntries(work)
			bestCount = count
		}
	}

	return best, bestCount
}

func orderedIndices(entries []Entry, priority map[int]int) []int {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}

	prio := func(i int) int {
		if priority == nil {
			return entries[i].DancerID
		}
		if pr, ok := priority[entries[i].DancerID]; ok {
			return pr
		}

		return entries[i].DancerID + 1<<20
	}

	sort.SliceStable(idx, func(a, b int) bool { return prio(idx[a]) < prio(idx[b]) })

	return idx
}

// detect samples a time grid of resolution max(p.Samples, 2) and returns the
// set of index pairs (into entries) whose positions are within p.Radius at
// any grid instant.
func detect(entries []Entry, p Params) []pair {
	grid := p.Samples
	if grid < 2 {
		grid = 2
	}

	found := make(map[pair]bool)
	for step := 0; step < grid; step++ {
		t := p.TotalCounts * float64(step) / float64(grid-1)
		for i := 0; i < len(entries); i++ {
			pi := entries[i].Path.PositionAt(t)
			for j := i + 1; j < len(entries); j++ {
				pj := entries[j].Path.PositionAt(t)
				if geom.Dist(pi, pj) < p.Radius {
					found[pair{i, j}] = true
				}
			}
		}
	}

	out := make([]pair, 0, len(found))
	for pr := range found {
		out = append(out, pr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].a != out[j].a {
			return out[i].a < out[j].a
		}

		return out[i].b < out[j].b
	})

	return out
}
