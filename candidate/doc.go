// Package candidate runs the assignment+generation+resolution pipeline once
// per named strategy, producing the K candidates spec.md §4.4 describes:
// five baseline strategies by default, or three constraint-guided plus two
// baseline strategies when a provider.PreConstraint is supplied. Each
// produced Candidate is already collision-resolved and metric-evaluated.
package candidate
