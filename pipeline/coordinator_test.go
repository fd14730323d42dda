package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/choreocfg"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/pipeline"
	"github.com/wldnjs95/choreoplan/provider"
)

var errUnreachable = errors.New("advisor unreachable")

func lineToVFormation(n int) ([]geom.Vector, []geom.Vector) {
	start := make([]geom.Vector, n)
	end := make([]geom.Vector, n)
	mid := float64(n-1) / 2
	for i := 0; i < n; i++ {
		start[i] = geom.Vector{X: float64(i), Y: 1}
		dx := float64(i) - mid
		if dx < 0 {
			dx = -dx
		}
		end[i] = geom.Vector{X: float64(i), Y: 1 + dx}
	}

	return start, end
}

func baseRequest(start, end []geom.Vector) pipeline.Request {
	return pipeline.Request{
		StartPositions:  start,
		EndPositions:    end,
		StageWidth:      10,
		StageHeight:     8,
		TotalCounts:     8,
		CollisionRadius: 0.5,
		AssignmentMode:  assignment.Fixed,
		Mode:            pipeline.LocalOnly,
		SamplesPerPath:  20,
	}
}

func TestRunLocalOnlyProducesFiveCandidatesAndSelectsOne(t *testing.T) {
	start, end := lineToVFormation(8)
	req := baseRequest(start, end)

	c := pipeline.New()
	resp, updates, err := c.Run(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, updates)

	require.Equal(t, 5, resp.Metadata.TotalCandidates)
	require.NotEmpty(t, resp.Metadata.SelectedStrategy)
	require.False(t, resp.Metadata.UsedExternalRanker)
	require.GreaterOrEqual(t, resp.Metadata.ComputeTimeMs, 0.0)
	require.NotNil(t, resp.Ranking)

	found := false
	for _, cand := range resp.Candidates {
		if cand.ID == resp.Selected.ID {
			found = true
		}
	}
	require.True(t, found)
}

func TestRunLocalOnlyIdentityRequestIsCollisionFree(t *testing.T) {
	n := 6
	positions := make([]geom.Vector, n)
	for i := 0; i < n; i++ {
		positions[i] = geom.Vector{X: float64(i) + 1, Y: 4}
	}

	req := baseRequest(positions, positions)

	c := pipeline.New()
	resp, _, err := c.Run(context.Background(), req)
	require.NoError(t, err)

	for _, cand := range resp.Candidates {
		require.Equal(t, 0, cand.Metrics.CollisionCount)
		require.Equal(t, 0, cand.Metrics.CrossingCount)
	}
}

func TestRunPartialAssignmentLocksGivenDancers(t *testing.T) {
	start, end := lineToVFormation(8)
	req := baseRequest(start, end)
	req.AssignmentMode = assignment.Partial
	req.LockedDancers = map[int]bool{1: true, 4: true}

	c := pipeline.New()
	resp, _, err := c.Run(context.Background(), req)
	require.NoError(t, err)

	asg := resp.Selected.Assignment
	require.Equal(t, 0, asg.EndIndexFor(1))
	require.Equal(t, 3, asg.EndIndexFor(4))
}

type stubRankerProvider struct {
	res provider.RankingResult
	err error
}

func (s stubRankerProvider) Rank(context.Context, []provider.CandidateSummary, provider.UserPreference) (provider.RankingResult, error) {
	return s.res, s.err
}

func waitForUpdate(t *testing.T, updates <-chan pipeline.Update) pipeline.Update {
	t.Helper()

	select {
	case u := <-updates:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for pipeline update")

		return pipeline.Update{}
	}
}

func TestRunExternalRankDisagreementIsReflectedInUpdate(t *testing.T) {
	start, end := lineToVFormation(8)
	req := baseRequest(start, end)
	req.Mode = pipeline.ExternalRank

	// Discover a valid candidate id to disagree onto.
	local, _, err := pipeline.New().Run(context.Background(), baseRequest(start, end))
	require.NoError(t, err)
	targetID := local.Candidates[len(local.Candidates)-1].ID

	c := pipeline.New()
	c.RankerProvider = stubRankerProvider{res: provider.RankingResult{
		SelectedID: targetID,
		Candidates: []provider.RankedCandidate{{ID: targetID, Rank: 1, Score: 99}},
	}}

	_, updates, err := c.Run(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, updates)

	u := waitForUpdate(t, updates)
	require.Equal(t, pipeline.UpdateSuccess, u.Status)
	require.True(t, u.Response.Metadata.UsedExternalRanker)
	require.Equal(t, targetID, u.Response.Selected.ID)
}

func TestRunExternalRankFailureFallsBackLocally(t *testing.T) {
	start, end := lineToVFormation(8)
	req := baseRequest(start, end)
	req.Mode = pipeline.ExternalRank

	c := pipeline.New()
	c.RankerProvider = stubRankerProvider{err: errUnreachable}

	resp, updates, err := c.Run(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Metadata.TotalCandidates > 0)

	u := waitForUpdate(t, updates)
	require.Equal(t, pipeline.UpdateSuccess, u.Status)
	require.False(t, u.Response.Metadata.UsedExternalRanker)
	require.Equal(t, "providerUnavailable", u.Response.Metadata.StatusTag)
}

func TestRunExternalFullWithoutProviderDegradesToLocal(t *testing.T) {
	start, end := lineToVFormation(8)
	req := baseRequest(start, end)
	req.Mode = pipeline.ExternalFull

	c := pipeline.New()
	resp, updates, err := c.Run(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, updates)
	require.Equal(t, "providerUnavailable", resp.Metadata.StatusTag)
	require.NotEmpty(t, resp.Candidates)
}

func TestCoordinatorUsesConfigDefaults(t *testing.T) {
	c := pipeline.New()
	require.Equal(t, choreocfg.DefaultConfig().CandidateCount, c.Config.CandidateCount)
}
