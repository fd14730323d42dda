package rank

import (
	"context"

	"github.com/wldnjs95/choreoplan/candidate"
	"github.com/wldnjs95/choreoplan/choreocfg"
	"github.com/wldnjs95/choreoplan/provider"
)

// Status tags which ranking policy actually produced a Result, spec.md §4.6,
// §7's status-tag requirement for external_rank/pre_and_rank.
type Status string

const (
	StatusLocal               Status = "local"
	StatusExternal            Status = "external"
	StatusProviderRejected    Status = "providerRejected"
	StatusProviderUnavailable Status = "providerUnavailable"
)

// External ranks via ext, falling back to Local whenever ext fails or
// returns ids outside the candidate set (spec.md §4.6). The call to ext is
// bounded by cfg.ProviderTimeout and retried up to cfg.ProviderRetryBudget
// times, the same bounded-call contract the pre-constraint and full-path
// provider calls get (spec.md §5).
func External(ctx context.Context, cfg choreocfg.Config, cands []candidate.Candidate, pref provider.UserPreference, ext provider.RankerProvider, local Local) (provider.RankingResult, Status) {
	summaries := ToSummaries(cands)

	res, err := choreocfg.CallWithRetry(ctx, cfg, func(callCtx context.Context) (provider.RankingResult, error) {
		return ext.Rank(callCtx, summaries, pref)
	})
	if err != nil {
		fallback, _ := local.Rank(ctx, summaries, pref)

		return fallback, StatusProviderUnavailable
	}

	if !validIDs(res, cands) {
		fallback, _ := local.Rank(ctx, summaries, pref)

		return fallback, StatusProviderRejected
	}

	return res, StatusExternal
}

func validIDs(res provider.RankingResult, cands []candidate.Candidate) bool {
	known := make(map[string]bool, len(cands))
	for _, c := range cands {
		known[c.ID] = true
	}

	if res.SelectedID == "" || !known[res.SelectedID] {
		return false
	}

	for _, rc := range res.Candidates {
		if !known[rc.ID] {
			return false
		}
	}

	return true
}
