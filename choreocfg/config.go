package choreocfg

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// RankWeights weights the local ranker's weighted-sum score. See
// rank.Local for the formula these feed into.
type RankWeights struct {
	Symmetry     float64 `toml:"symmetry"`
	Smoothness   float64 `toml:"smoothness"`
	Simultaneous float64 `toml:"simultaneous"`
}

// Config collects every tunable constant the pipeline needs, each named
// inline by spec.md but never externalized there.
type Config struct {
	// CandidateCount (K) records the number of baseline strategies.
	// spec.md §4.4 default: 5. Nothing reads it; the candidate factory
	// always runs the five BaselineStrategies.
	CandidateCount int `toml:"candidate_count"`

	// SamplesPerPath (P) is the default number of samples per generated
	// path. spec.md §4.2: typical 20.
	SamplesPerPath int `toml:"samples_per_path"`

	// CollisionRadius is the default minimum inter-dancer separation,
	// applied when a Request's CollisionRadius is 0. spec.md §6: default 0.5.
	CollisionRadius float64 `toml:"collision_radius"`

	// ResolverAttemptBudget (B) bounds the collision resolver's sweeps.
	// spec.md §4.3: B = 8.
	ResolverAttemptBudget int `toml:"resolver_attempt_budget"`

	// ProviderTimeout (τ) bounds a single provider call. spec.md §5: 30s.
	ProviderTimeout time.Duration `toml:"provider_timeout"`

	// ProviderRetryBudget (R) bounds provider retries. spec.md §5,§4.7: ≤3.
	ProviderRetryBudget int `toml:"provider_retry_budget"`

	// DefaultWeights is the local ranker's weight table used when
	// UserPreference.Priority is unset. spec.md §4.6: (0.1,0.1,0.1).
	DefaultWeights RankWeights `toml:"default_weights"`
}

// DefaultConfig returns a Config populated with spec.md's named defaults.
func DefaultConfig() Config {
	return Config{
		CandidateCount:        5,
		SamplesPerPath:        20,
		CollisionRadius:       0.5,
		ResolverAttemptBudget: 8,
		ProviderTimeout:       30 * time.Second,
		ProviderRetryBudget:   3,
		DefaultWeights: RankWeights{
			Symmetry:     0.1,
			Smoothness:   0.1,
			Simultaneous: 0.1,
		},
	}
}

// LoadTOML reads a Config from a TOML file at path, starting from
// DefaultConfig so a partial file only overrides the fields it sets. A
// missing file is not an error: it returns the defaults unchanged.
func LoadTOML(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("choreocfg: reading %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("choreocfg: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// CallWithRetry invokes fn up to cfg.ProviderRetryBudget+1 times, each under
// its own cfg.ProviderTimeout deadline (spec.md §5: every provider call —
// pre-constraint, ranker, and full-path alike — is bounded by timeout τ and
// retry budget R). It returns the first success or the last error; a
// cancelled/expired parent ctx aborts immediately without spending further
// attempts.
func CallWithRetry[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.ProviderRetryBudget + 1
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, cfg.ProviderTimeout)
		result, err := fn(callCtx)
		cancel()

		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
