// Package assignment solves the dancer-to-target bijection problem under
// three regimes: fixed (identity), optimal (minimum sum-of-squared-cost
// bipartite matching via the Hungarian algorithm), and partial (a locked
// subset keeps identity, the remainder is solved optimally).
//
// The Hungarian solver is the classical O(n³) Kuhn-Munkres algorithm with row
// and column potentials, the same shape used for nearest-neighbor
// cluster-to-track assignment problems; see DESIGN.md. It is deterministic
// and never panics: degenerate (N=0) and non-square inputs are handled without
// resorting to -1 sentinels escaping to the caller, since every choreoplan
// assignment problem is guaranteed square by stage.NewFormation.
package assignment
