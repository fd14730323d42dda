// Package pathgen produces one time-parameterized DancerPath per dancer from
// a start and end Position, under one of two sub-policies: straight-line
// (with a timing offset the collision resolver may later set) and quadratic
// Bézier curved detour. Both sub-policies share the same point-count,
// boundary-exactness, and stage-margin contract from spec.md §4.2.
package pathgen
