package pipeline

import (
	"context"
	"time"

	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/candidate"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/metrics"
	"github.com/wldnjs95/choreoplan/pathgen"
	"github.com/wldnjs95/choreoplan/provider"
	"github.com/wldnjs95/choreoplan/rank"
	"github.com/wldnjs95/choreoplan/stage"
)

// fullPathTolerance is the provider-supplied-path epsilon, spec.md §8 ("ε =
// 0.5 for provider-supplied candidates").
const fullPathTolerance = 0.5

// runExternalFull implements spec.md §4.7's external_full mode: bypass the
// candidate factory, request complete paths directly, validate, retry up to
// R times passing prior errors back. If no call returns a response it
// degrades to a local_only result; if the last response is still invalid it
// is used best-effort, tagged "providerInvalidResponse", with its
// collisionCount recorded.
func (c *Coordinator) runExternalFull(ctx context.Context, req Request, formation stage.Formation, asg assignment.Assignment, samples int, start time.Time) Response {
	log := c.logger()

	if c.FullPathProvider == nil {
		return c.localFallback(ctx, req, formation, asg, samples, start, "providerUnavailable")
	}

	ends := make([]geom.Vector, len(formation.Dancers))
	for i, d := range formation.Dancers {
		ends[i] = req.EndPositions[asg.EndIndexFor(d.ID)]
	}

	var priorErrors []string
	var result provider.FullPathResult
	gotResult := false
	valid := false

	attempts := c.Config.ProviderRetryBudget + 1
	for attempt := 0; attempt < attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.Config.ProviderTimeout)
		res, err := c.FullPathProvider.Plan(callCtx, req.StartPositions, ends, req.StageWidth, req.StageHeight, req.TotalCounts, req.CollisionRadius, req.UserPreference, priorErrors)
		cancel()

		if err != nil {
			priorErrors = append(priorErrors, err.Error())

			log.Warnw("full-path provider call failed", "attempt", attempt, "error", err)

			continue
		}

		result = res
		gotResult = true

		issues := validateFullPath(res, formation, ends, req)
		if len(issues) == 0 {
			valid = true

			break
		}

		priorErrors = issues

		log.Warnw("full-path provider response failed validation", "attempt", attempt, "issues", issues)
	}

	// Total call failure (never got a single response): spec.md §7 degrades
	// this case to local_only. An invalid-but-present response, by contrast,
	// is used best-effort per spec.md §4.7, with its collisionCount recorded.
	if !gotResult {
		log.Warnw("full-path provider never returned a response, degrading to local")

		return c.localFallback(ctx, req, formation, asg, samples, start, "providerUnavailable")
	}

	paths := make([]pathgen.DancerPath, len(formation.Dancers))
	for i, d := range formation.Dancers {
		pts := result.Paths[d.ID]
		if len(pts) < 2 {
			// Missing or degenerate entry: fill with a straight line so the
			// best-effort candidate remains well-formed enough to evaluate.
			straight := pathgen.Straight(d.ID, req.StartPositions[i], ends[i], 0, req.TotalCounts, 1.0, samples)
			paths[i] = straight

			continue
		}

		paths[i] = pathgen.DancerPath{
			DancerID:  d.ID,
			Points:    pts,
			StartTime: pts[0].T,
			Speed:     1.0,
			ArcLength: pathgen.ArcLength(pts),
		}
	}

	m := metrics.Evaluate(metrics.Input{
		Paths:       paths,
		Starts:      req.StartPositions,
		Ends:        ends,
		StageWidth:  req.StageWidth,
		TotalCounts: req.TotalCounts,
		Radius:      req.CollisionRadius,
		Samples:     samples,
	})

	cand := candidate.Candidate{ID: result.Strategy, Paths: paths, Assignment: asg, Metrics: m}

	statusTag := ""
	if !valid {
		statusTag = "providerInvalidResponse"
	}

	return Response{
		Selected:   cand,
		Candidates: []candidate.Candidate{cand},
		Ranking: &provider.RankingResult{
			SelectedID:  cand.ID,
			Candidates:  []provider.RankedCandidate{{ID: cand.ID, Rank: 1, Score: result.Confidence * 100, Reason: result.Reasoning}},
			Explanation: result.Reasoning,
		},
		Metadata: Metadata{
			TotalCandidates:    1,
			SelectedStrategy:   cand.ID,
			ComputeTimeMs:      millisSince(start),
			UsedExternalRanker: false,
			PipelineMode:       ExternalFull,
			StatusTag:          statusTag,
		},
	}
}

// localFallback runs the local_only pipeline, used both as external_full's
// degraded path and as the no-provider-configured case.
func (c *Coordinator) localFallback(ctx context.Context, req Request, formation stage.Formation, asg assignment.Assignment, samples int, start time.Time, tag string) Response {
	params := candidate.Params{
		Formation:       formation,
		Ends:            req.EndPositions,
		Assignment:      asg,
		TotalCounts:     req.TotalCounts,
		CollisionRadius: req.CollisionRadius,
		Samples:         samples,
		ResolverBudget:  c.Config.ResolverAttemptBudget,
	}

	cands, err := candidate.Generate(ctx, params, candidate.BaselineStrategies())
	if err != nil || len(cands) == 0 {
		return Response{Metadata: Metadata{PipelineMode: ExternalFull, StatusTag: tag, ComputeTimeMs: millisSince(start)}}
	}

	local := rank.Local{Default: c.Config.DefaultWeights}
	result, _ := local.Rank(ctx, rank.ToSummaries(cands), req.UserPreference)

	resp := buildResponse(cands, result, Metadata{
		TotalCandidates: len(cands),
		PipelineMode:    ExternalFull,
		ComputeTimeMs:   millisSince(start),
		StatusTag:       tag,
	})

	return resp
}

// validateFullPath checks a FullPathResult against spec.md §6's per-path
// contract and returns a list of human-readable issues (empty if valid).
func validateFullPath(res provider.FullPathResult, formation stage.Formation, ends []geom.Vector, req Request) []string {
	var issues []string

	for i, d := range formation.Dancers {
		pts, ok := res.Paths[d.ID]
		if !ok {
			issues = append(issues, "missing path for dancer")

			continue
		}
		if len(pts) < 2 {
			issues = append(issues, "path has fewer than 2 points")

			continue
		}
		if geom.Dist(pts[0].Vector(), d.Start) > fullPathTolerance {
			issues = append(issues, "path does not begin near dancer start")
		}
		if geom.Dist(pts[len(pts)-1].Vector(), ends[i]) > fullPathTolerance {
			issues = append(issues, "path does not end near assigned end")
		}
		if pts[0].T != 0 {
			issues = append(issues, "path does not start at t=0")
		}
		if pts[len(pts)-1].T != req.TotalCounts {
			issues = append(issues, "path does not end at t=T")
		}
		for _, p := range pts {
			if !formation.Stage.Contains(p.Vector()) {
				issues = append(issues, "path point outside stage bounds")

				break
			}
		}
	}

	return issues
}
