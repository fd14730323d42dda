package rank_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/candidate"
	"github.com/wldnjs95/choreoplan/choreocfg"
	"github.com/wldnjs95/choreoplan/metrics"
	"github.com/wldnjs95/choreoplan/provider"
	"github.com/wldnjs95/choreoplan/rank"
)

func twoCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{ID: "distance_longest_first", Assignment: assignment.Assignment{}, Metrics: metrics.CandidateMetrics{SymmetryScore: 50, PathSmoothness: 50, SimultaneousArrival: 50}},
		{ID: "curve_allowed", Assignment: assignment.Assignment{}, Metrics: metrics.CandidateMetrics{SymmetryScore: 90, PathSmoothness: 90, SimultaneousArrival: 90}},
	}
}

type stubRanker struct {
	res provider.RankingResult
	err error
}

func (s stubRanker) Rank(context.Context, []provider.CandidateSummary, provider.UserPreference) (provider.RankingResult, error) {
	return s.res, s.err
}

func TestExternalRankerDisagreementIsHonored(t *testing.T) {
	cands := twoCandidates()
	local := rank.Local{Default: choreocfg.DefaultConfig().DefaultWeights}

	ext := stubRanker{res: provider.RankingResult{
		SelectedID: "curve_allowed",
		Candidates: []provider.RankedCandidate{
			{ID: "curve_allowed", Rank: 1, Score: 99},
			{ID: "distance_longest_first", Rank: 2, Score: 10},
		},
		Explanation: "external advisor preference",
	}}

	res, status := rank.External(context.Background(), choreocfg.DefaultConfig(), cands, provider.UserPreference{}, ext, local)
	require.Equal(t, rank.StatusExternal, status)
	require.Equal(t, "curve_allowed", res.SelectedID)
}

func TestExternalRankerFailureFallsBackToLocal(t *testing.T) {
	cands := twoCandidates()
	local := rank.Local{Default: choreocfg.DefaultConfig().DefaultWeights}

	ext := stubRanker{err: errors.New("advisor unreachable")}

	res, status := rank.External(context.Background(), choreocfg.DefaultConfig(), cands, provider.UserPreference{}, ext, local)
	require.Equal(t, rank.StatusProviderUnavailable, status)
	require.Equal(t, "curve_allowed", res.SelectedID) // local pick: higher metrics across the board
}

func TestExternalRankerUnknownIDFallsBackToLocal(t *testing.T) {
	cands := twoCandidates()
	local := rank.Local{Default: choreocfg.DefaultConfig().DefaultWeights}

	ext := stubRanker{res: provider.RankingResult{
		SelectedID: "nonexistent_strategy",
		Candidates: []provider.RankedCandidate{{ID: "nonexistent_strategy", Rank: 1, Score: 99}},
	}}

	res, status := rank.External(context.Background(), choreocfg.DefaultConfig(), cands, provider.UserPreference{}, ext, local)
	require.Equal(t, rank.StatusProviderRejected, status)

	known := map[string]bool{"distance_longest_first": true, "curve_allowed": true}
	require.True(t, known[res.SelectedID])
}
