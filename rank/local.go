package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/wldnjs95/choreoplan/candidate"
	"github.com/wldnjs95/choreoplan/choreocfg"
	"github.com/wldnjs95/choreoplan/provider"
)

// weights is the (symmetry, smoothness, simultaneous) triple the score
// formula multiplies against the matching metric, spec.md §4.6.
type weights struct{ sym, smooth, sync float64 }

// Local is the deterministic, never-fails ranker. It satisfies
// provider.RankerProvider structurally, so it can stand in directly wherever
// an external ranker would be consulted.
type Local struct {
	// Default is used when pref.Priority names none of the three special
	// cases below. Populate from choreocfg.Config.DefaultWeights.
	Default choreocfg.RankWeights
}

// ToSummaries renders candidates as the compact wire records a RankerProvider
// consumes, spec.md §6.
func ToSummaries(cands []candidate.Candidate) []provider.CandidateSummary {
	out := make([]provider.CandidateSummary, len(cands))
	for i, c := range cands {
		out[i] = provider.CandidateSummary{
			ID:       c.ID,
			Strategy: c.ID,
			Metrics: provider.CandidateMetricsWire{
				CollisionCount:      c.Metrics.CollisionCount,
				SymmetryScore:       c.Metrics.SymmetryScore,
				PathSmoothness:      c.Metrics.PathSmoothness,
				CrossingCount:       c.Metrics.CrossingCount,
				MaxDelay:            c.Metrics.MaxDelay,
				SimultaneousArrival: c.Metrics.SimultaneousArrival,
			},
		}
	}

	return out
}

// Rank never fails. It scores every summary per spec.md §4.6's formula, sorts
// descending by score (ties: lower collisionCount, then lower crossingCount,
// then lower strategy label), and returns the full ranking.
func (l Local) Rank(_ context.Context, summaries []provider.CandidateSummary, pref provider.UserPreference) (provider.RankingResult, error) {
	w := l.weightsFor(pref.Priority)

	type scored struct {
		summary provider.CandidateSummary
		score   float64
	}

	scoredList := make([]scored, len(summaries))
	for i, s := range summaries {
		scoredList[i] = scored{summary: s, score: l.score(s.Metrics, w, pref.Style)}
	}

	sort.SliceStable(scoredList, func(i, j int) bool {
		a, b := scoredList[i], scoredList[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.summary.Metrics.CollisionCount != b.summary.Metrics.CollisionCount {
			return a.summary.Metrics.CollisionCount < b.summary.Metrics.CollisionCount
		}
		if a.summary.Metrics.CrossingCount != b.summary.Metrics.CrossingCount {
			return a.summary.Metrics.CrossingCount < b.summary.Metrics.CrossingCount
		}

		return a.summary.Strategy < b.summary.Strategy
	})

	ranked := make([]provider.RankedCandidate, len(scoredList))
	for i, s := range scoredList {
		ranked[i] = provider.RankedCandidate{
			ID:     s.summary.ID,
			Rank:   i + 1,
			Score:  s.score,
			Reason: reason(s.summary, s.score),
		}
	}

	selected := ""
	if len(ranked) > 0 {
		selected = ranked[0].ID
	}

	return provider.RankingResult{
		SelectedID:  selected,
		Candidates:  ranked,
		Explanation: "local deterministic weighted-sum ranking",
	}, nil
}

func (l Local) weightsFor(priority string) weights {
	switch priority {
	case "symmetry":
		return weights{sym: 0.3, smooth: 0.1, sync: 0.1}
	case "smoothness":
		return weights{sym: 0.1, smooth: 0.3, sync: 0.1}
	case "simultaneous":
		return weights{sym: 0.1, smooth: 0.1, sync: 0.3}
	default:
		return weights{sym: l.Default.Symmetry, smooth: l.Default.Smoothness, sync: l.Default.Simultaneous}
	}
}

func (l Local) score(m provider.CandidateMetricsWire, w weights, style string) float64 {
	score := 100.0 -
		30.0*float64(m.CollisionCount) -
		5.0*float64(m.CrossingCount) +
		w.sym*m.SymmetryScore +
		w.smooth*m.PathSmoothness +
		w.sync*m.SimultaneousArrival

	switch style {
	case "synchronized":
		score += 0.2 * m.SimultaneousArrival
	case "smooth":
		score += 0.2 * m.PathSmoothness
	}

	return score
}

func reason(s provider.CandidateSummary, score float64) string {
	return fmt.Sprintf(
		"%s: score=%.2f collisions=%d crossings=%d symmetry=%.1f smoothness=%.1f sync=%.1f",
		s.Strategy, score, s.Metrics.CollisionCount, s.Metrics.CrossingCount,
		s.Metrics.SymmetryScore, s.Metrics.PathSmoothness, s.Metrics.SimultaneousArrival,
	)
}
