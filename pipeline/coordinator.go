package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/candidate"
	"github.com/wldnjs95/choreoplan/choreocfg"
	"github.com/wldnjs95/choreoplan/choreolog"
	"github.com/wldnjs95/choreoplan/provider"
	"github.com/wldnjs95/choreoplan/rank"
	"github.com/wldnjs95/choreoplan/stage"
)

// Coordinator orchestrates one Request per Run call. It holds no per-request
// state; a single Coordinator is safe to reuse concurrently across requests
// (spec.md §5: no shared mutable state).
type Coordinator struct {
	Config                choreocfg.Config
	Log                   *choreolog.Logger
	PreConstraintProvider provider.PreConstraintProvider
	RankerProvider        provider.RankerProvider
	FullPathProvider      provider.FullPathProvider
}

// New returns a Coordinator with default config and a discarding logger.
// Providers are nil (fully local) until set on the returned value.
func New() *Coordinator {
	return &Coordinator{Config: choreocfg.DefaultConfig(), Log: choreolog.Noop()}
}

func (c *Coordinator) logger() *choreolog.Logger {
	if c.Log == nil {
		return choreolog.Noop()
	}

	return c.Log
}

// Run validates req, builds the formation and assignment, and produces a
// Response. For external_full it runs entirely synchronously (spec.md §4.7
// describes no progressive step for that mode). For external_rank and
// pre_and_rank it returns the local Response synchronously and a non-nil
// channel that later carries at most one enhancement Update; for local_only
// and external_full the channel is nil.
func (c *Coordinator) Run(ctx context.Context, req Request) (Response, <-chan Update, error) {
	start := time.Now()

	requestID := uuid.NewString()
	log := c.logger().With("requestID", requestID, "mode", req.Mode)

	samples := req.SamplesPerPath
	if samples == 0 {
		samples = c.Config.SamplesPerPath
	}
	if req.CollisionRadius == 0 {
		req.CollisionRadius = c.Config.CollisionRadius
	}

	if err := stage.ValidateConfig(req.CollisionRadius, req.TotalCounts, samples); err != nil {
		log.Warnw("request failed validation", "error", err)

		return Response{}, nil, err
	}

	formation, err := stage.NewFormation(req.StartPositions, req.EndPositions, stage.Dims{Width: req.StageWidth, Height: req.StageHeight})
	if err != nil {
		return Response{}, nil, err
	}

	asg, err := assignment.Solve(req.AssignmentMode, req.StartPositions, req.EndPositions, req.LockedDancers)
	if err != nil {
		return Response{}, nil, err
	}

	if req.Mode == ExternalFull {
		resp := c.runExternalFull(ctx, req, formation, asg, samples, start)
		resp.RequestID = requestID

		return resp, nil, nil
	}

	params := candidate.Params{
		Formation:       formation,
		Ends:            req.EndPositions,
		Assignment:      asg,
		TotalCounts:     req.TotalCounts,
		CollisionRadius: req.CollisionRadius,
		Samples:         samples,
		ResolverBudget:  c.Config.ResolverAttemptBudget,
	}

	strategies := candidate.BaselineStrategies()
	if req.Mode == PreAndRank {
		pc, _ := provider.LocalDeterministicPreConstraint{}.Propose(ctx, req.StartPositions, req.EndPositions, req.StageWidth, req.StageHeight)
		strategies = candidate.ConstraintStrategies(pc)
	}

	cands, err := candidate.Generate(ctx, params, strategies)
	if err != nil {
		return Response{}, nil, err
	}

	local := rank.Local{Default: c.Config.DefaultWeights}
	localResult, _ := local.Rank(ctx, rank.ToSummaries(cands), req.UserPreference)

	resp := buildResponse(cands, localResult, Metadata{
		TotalCandidates: len(cands),
		PipelineMode:    req.Mode,
		ComputeTimeMs:   millisSince(start),
	})
	resp.RequestID = requestID

	if req.Mode == LocalOnly {
		if len(cands) == 1 {
			resp.Ranking = nil
		}

		return resp, nil, nil
	}

	updates := make(chan Update, 1)
	go c.enhance(ctx, req, params, cands, resp, updates, log)

	return resp, updates, nil
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func buildResponse(cands []candidate.Candidate, result provider.RankingResult, meta Metadata) Response {
	selected := cands[0]
	for _, c := range cands {
		if c.ID == result.SelectedID {
			selected = c

			break
		}
	}

	meta.SelectedStrategy = selected.ID

	return Response{
		Selected:   selected,
		Candidates: cands,
		Ranking:    &result,
		Metadata:   meta,
	}
}

// enhance runs the provider-dependent half of external_rank/pre_and_rank
// under the configured per-call timeout and retry budget, sends at most one
// terminal Update, and closes updates. With no RankerProvider configured, or
// when ctx ends before the final send, it closes the channel without sending.
// It never blocks the caller of Run.
func (c *Coordinator) enhance(ctx context.Context, req Request, params candidate.Params, localCands []candidate.Candidate, localResp Response, updates chan<- Update, log *choreolog.Logger) {
	defer close(updates)

	if c.RankerProvider == nil {
		return
	}

	cands := localCands
	usedPreConstraint := false

	if req.Mode == PreAndRank && c.PreConstraintProvider != nil {
		pc, err := choreocfg.CallWithRetry(ctx, c.Config, func(ctx context.Context) (provider.PreConstraint, error) {
			return c.PreConstraintProvider.Propose(ctx, req.StartPositions, req.EndPositions, req.StageWidth, req.StageHeight)
		})
		if err == nil {
			usedPreConstraint = true

			regenerated, genErr := candidate.Generate(ctx, params, candidate.ConstraintStrategies(pc))
			if genErr == nil {
				cands = regenerated
			}
		} else {
			log.Warnw("pre-constraint provider failed, continuing with local candidates", "error", err)

			if ctx.Err() != nil {
				updates <- Update{Status: statusFor(ctx.Err()), Err: err}

				return
			}
		}
	}

	local := rank.Local{Default: c.Config.DefaultWeights}
	result, status := rank.External(ctx, c.Config, cands, req.UserPreference, c.RankerProvider, local)
	if status != rank.StatusExternal {
		log.Infow("ranker provider fell back to local", "status", status)
	}

	meta := localResp.Metadata
	meta.TotalCandidates = len(cands)
	meta.UsedExternalRanker = status == rank.StatusExternal
	meta.UsedExternalPreConstraint = usedPreConstraint
	meta.StatusTag = string(status)

	resp := buildResponse(cands, result, meta)
	resp.RequestID = localResp.RequestID

	select {
	case updates <- Update{Status: UpdateSuccess, Response: resp}:
	case <-ctx.Done():
	}
}

func statusFor(err error) UpdateStatus {
	if err == context.DeadlineExceeded {
		return UpdateTimeout
	}

	return UpdateFailed
}
