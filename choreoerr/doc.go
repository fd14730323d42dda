// Package choreoerr defines the sentinel and structured error taxonomy shared
// across choreoplan: input-validation errors surfaced to callers, provider
// errors recovered internally by the pipeline, and the resolver's non-error
// "budget exhausted" signal.
//
// Sentinels are never wrapped with fmt.Errorf where the sentinel itself
// suffices. Errors that carry structured fields (e.g. ShapeMismatchError) wrap
// their matching sentinel via errors.Is/errors.As so callers can match on
// either.
package choreoerr
