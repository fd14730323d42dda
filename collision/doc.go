// Package collision detects and reduces inter-dancer encounters closer than
// a collision radius at any sampled instant, using staggered start times and
// curvature escalation, per spec.md §4.3. Resolve never fails: it accepts
// whatever collision count remains after its attempt budget is exhausted and
// reports it rather than returning choreoerr.ErrResolverBudgetExhausted as an
// error.
package collision
