// Package pipeline implements spec.md §4.7's coordinator: it orchestrates
// assignment, candidate generation, and ranking across the four request
// modes, with progressive enhancement and provider timeout/retry handling
// per spec.md §5.
package pipeline
