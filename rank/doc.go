// Package rank implements spec.md §4.6's ranker: a deterministic local
// weighted-sum policy (Local) and a wrapper that prefers an external
// provider.RankerProvider but falls back to Local on failure or an invalid
// response (External).
package rank
