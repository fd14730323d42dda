package metrics

// CandidateMetrics is the scalar scorecard for one Candidate, spec.md §3.
type CandidateMetrics struct {
	CollisionCount       int
	SymmetryScore        float64 // 0..100
	PathSmoothness       float64 // 0..100
	CrossingCount        int
	MaxDelay             float64
	SimultaneousArrival  float64 // 0..100
}
