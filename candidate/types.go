package candidate

import (
	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/metrics"
	"github.com/wldnjs95/choreoplan/pathgen"
)

// Candidate is one complete (assignment, paths, metrics) triple produced by
// a named strategy. It is an immutable snapshot: it exclusively owns its
// Paths and Assignment (see spec.md §3 ownership rules).
type Candidate struct {
	ID         string
	Paths      []pathgen.DancerPath
	Assignment assignment.Assignment
	Metrics    metrics.CandidateMetrics
}
