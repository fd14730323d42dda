package choreoerr

import (
	"errors"
	"fmt"
)

// Input-validation sentinels. Surfaced directly to the caller; never
// recovered internally.
var (
	// ErrShapeMismatch indicates start/end cardinalities differ, or a locked
	// dancer id referenced a non-existent position.
	ErrShapeMismatch = errors.New("choreoplan: start/end formation shape mismatch")

	// ErrOutOfBounds indicates an input position lies outside the stage
	// (including its margin).
	ErrOutOfBounds = errors.New("choreoplan: position outside stage bounds")

	// ErrInvalidConfig indicates a negative radius, non-positive totalCounts,
	// or samplesPerPath < 2.
	ErrInvalidConfig = errors.New("choreoplan: invalid configuration")
)

// Provider sentinels. Recovered internally by the pipeline in enhancement
// modes; surfaced only as a status tag on the result, never as a returned
// error from Coordinator.Run.
var (
	// ErrProviderUnavailable indicates a provider could not be reached.
	ErrProviderUnavailable = errors.New("choreoplan: provider unavailable")

	// ErrProviderTimeout indicates a provider call exceeded its per-call
	// timeout.
	ErrProviderTimeout = errors.New("choreoplan: provider timeout")

	// ErrProviderInvalidResponse indicates a provider's response failed
	// validation after the retry budget was exhausted.
	ErrProviderInvalidResponse = errors.New("choreoplan: provider returned invalid response")

	// ErrProviderRejected indicates an external ranker selected an id not
	// present in the candidate list.
	ErrProviderRejected = errors.New("choreoplan: provider referenced unknown candidate id")
)

// ErrResolverBudgetExhausted is NOT propagated as a failure: the collision
// resolver records it internally and the candidate's CollisionCount reflects
// the unresolved state. It is exported so tests and logging can recognize the
// condition by name.
var ErrResolverBudgetExhausted = errors.New("choreoplan: collision resolver budget exhausted")

// ShapeMismatchError wraps ErrShapeMismatch with the offending cardinalities.
type ShapeMismatchError struct {
	NStart, NEnd int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %d start positions, %d end positions", ErrShapeMismatch, e.NStart, e.NEnd)
}

// Unwrap allows errors.Is(err, ErrShapeMismatch) to succeed.
func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

// OutOfBoundsError wraps ErrOutOfBounds with the offending position index.
type OutOfBoundsError struct {
	Index   int
	X, Y    float64
	W, H    float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: position %d (%.3f,%.3f) outside [0,%.3f]x[0,%.3f]",
		ErrOutOfBounds, e.Index, e.X, e.Y, e.W, e.H)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// InvalidConfigError wraps ErrInvalidConfig with a human-readable reason.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}
