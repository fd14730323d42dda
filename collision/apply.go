package collision

// applyDelay implements spec.md §4.3 step 1: for each offending pair, delay
// the later-moving dancer (larger StartTime); ties go to the dancer with the
// shorter path (smaller ArcLength). Delay increments by delayStepFraction*T,
// capped at T/2. When both StartTime and ArcLength tie, `order` decides: the
// dancer ranked earlier in it is delayed. Each dancer named by any pair is
// delayed once per call. Returns whether any StartTime actually moved.
func applyDelay(entries []Entry, collisions []pair, p Params, order []int) bool {
	rank := make([]int, len(entries))
	for r, idx := range order {
		rank[idx] = r
	}

	capTime := p.TotalCounts / 2
	delta := delayStepFraction * p.TotalCounts

	touched := make(map[int]bool)
	for _, pr := range collisions {
		i, j := pr.a, pr.b
		// Put the earlier-ranked dancer first so a full tie resolves the
		// same way regardless of how the caller built the collisions slice.
		if rank[i] > rank[j] {
			i, j = j, i
		}

		var later int
		switch {
		case entries[i].StartTime > entries[j].StartTime:
			later = i
		case entries[j].StartTime > entries[i].StartTime:
			later = j
		case entries[i].Path.ArcLength <= entries[j].Path.ArcLength:
			later = i
		default:
			later = j
		}

		touched[later] = true
	}

	var changed bool
	for idx := range touched {
		e := &entries[idx]
		next := e.StartTime + delta
		if next > capTime {
			next = capTime
		}
		if next > e.StartTime {
			e.StartTime = next
			e.Path = e.regenerate(p)
			changed = true
		}
	}

	return changed
}

// applyCurve implements spec.md §4.3 step 2: convert the straight segments of
// every dancer currently involved in a collision to a curved detour at the
// given curvature level. Once a dancer is curved it stays curved (curvature
// only escalates), keeping the resolver monotone.
func applyCurve(entries []Entry, collisions []pair, p Params, curvature float64) bool {
	touched := make(map[int]bool)
	for _, pr := range collisions {
		touched[pr.a] = true
		touched[pr.b] = true
	}

	var changed bool
	for idx := range touched {
		e := &entries[idx]
		if !e.Curved || curvature > e.Curvature {
			e.Curved = true
			e.Curvature = curvature
			e.Path = e.regenerate(p)
			changed = true
		}
	}

	return changed
}
