// Package provider defines the three pluggable external-service capability
// interfaces spec.md §6 names — PreConstraintProvider, RankerProvider,
// FullPathProvider — plus the PreConstraint and RankingResult data shapes
// they exchange, and never-failing LocalDeterministic implementations of
// PreConstraintProvider and FullPathProvider (the never-failing ranker is
// rank.Local, which lives outside this package). Real adapters (e.g. WSFullPathProvider, an example websocket-backed
// FullPathProvider) live alongside the interfaces; the pipeline package only
// ever depends on the interfaces.
package provider
