package pipeline

import (
	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/candidate"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/provider"
)

// Mode selects which of spec.md §4.7's four orchestration modes a Request
// runs under.
type Mode string

const (
	LocalOnly    Mode = "local_only"
	ExternalRank Mode = "external_rank"
	PreAndRank   Mode = "pre_and_rank"
	ExternalFull Mode = "external_full"
)

// Request is the core request record, spec.md §6.
type Request struct {
	StartPositions  []geom.Vector
	EndPositions    []geom.Vector
	StageWidth      float64
	StageHeight     float64
	TotalCounts     float64
	CollisionRadius float64
	AssignmentMode  assignment.Mode
	LockedDancers   map[int]bool
	Mode            Mode
	UserPreference  provider.UserPreference
	SamplesPerPath  int
}

// UpdateStatus is the terminal progressive-enhancement status a caller
// observes on the channel Run returns, spec.md §4.7. Before any Update
// arrives the enhancement is implicitly pending; there is no separate
// pending message, since a caller can already tell a pending state apart
// from a terminal one by whether the channel has produced anything yet.
type UpdateStatus string

const (
	UpdateSuccess UpdateStatus = "success"
	UpdateTimeout UpdateStatus = "timeout"
	UpdateFailed  UpdateStatus = "failed"
)

// Update is the single terminal message sent on the channel Run returns for
// external_rank and pre_and_rank: an enhanced Response once (if) the
// provider responds, or a timeout/failed status. The local Response returned
// synchronously by Run always remains valid regardless of what Update
// arrives later.
type Update struct {
	Status   UpdateStatus
	Response Response
	Err      error
}

// Metadata is the response metadata record, spec.md §6.
type Metadata struct {
	TotalCandidates           int
	SelectedStrategy          string
	ComputeTimeMs             float64
	UsedExternalRanker        bool
	PipelineMode              Mode
	UsedExternalPreConstraint bool
	// StatusTag records the provider outcome: "" when no provider step ran
	// (or an external_full response was valid), "external" when the
	// external ranker's result was used, "providerUnavailable",
	// "providerRejected", or "providerInvalidResponse".
	StatusTag string
}

// Response is the core response record, spec.md §6. Ranking is nil in
// local_only's degenerate K==1 case and when external_full's local fallback
// produces no candidates. RequestID is an ambient
// log-correlation id (not part of spec.md's wire contract), stamped once per
// Run call.
type Response struct {
	RequestID  string
	Selected   candidate.Candidate
	Candidates []candidate.Candidate
	Ranking    *provider.RankingResult
	Metadata   Metadata
}
