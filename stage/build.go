package stage

import "github.com/wldnjs95/choreoplan/choreoerr"

// NewFormation validates start/end position slices against a stage and
// returns the constructed Formation (dancers carry Start only; Dancer.End is
// left zero and nothing in this module fills it).
//
// Validation, per spec.md §7:
//   - len(start) != len(end)               -> *choreoerr.ShapeMismatchError
//   - any position outside [0,W]x[0,H] by more than Margin
//                                          -> *choreoerr.OutOfBoundsError
//   - width/height <= 0                    -> *choreoerr.InvalidConfigError
func NewFormation(start, end []Position, dims Dims) (Formation, error) {
	if dims.Width <= 0 || dims.Height <= 0 {
		return Formation{}, &choreoerr.InvalidConfigError{Reason: "stage width and height must be positive"}
	}

	if len(start) != len(end) {
		return Formation{}, &choreoerr.ShapeMismatchError{NStart: len(start), NEnd: len(end)}
	}

	st := Stage{Dims: dims}

	for i, p := range start {
		if !st.Contains(p) {
			return Formation{}, &choreoerr.OutOfBoundsError{Index: i, X: p.X, Y: p.Y, W: dims.Width, H: dims.Height}
		}
	}
	for i, p := range end {
		if !st.Contains(p) {
			return Formation{}, &choreoerr.OutOfBoundsError{Index: i, X: p.X, Y: p.Y, W: dims.Width, H: dims.Height}
		}
	}

	dancers := make([]Dancer, len(start))
	for i, p := range start {
		dancers[i] = Dancer{ID: i + 1, Start: p}
	}

	return Formation{Stage: st, Dancers: dancers}, nil
}

// EndPositions extracts the raw end-position slice aligned to the order a
// caller originally supplied, independent of the Dancer.End field (which
// NewFormation leaves zero).
func EndPositions(end []Position) []Position {
	out := make([]Position, len(end))
	copy(out, end)

	return out
}

// ValidateConfig checks the scalar pipeline parameters spec.md §7 groups
// under InvalidConfig: collision radius, total counts, samples per path.
func ValidateConfig(collisionRadius, totalCounts float64, samplesPerPath int) error {
	if collisionRadius < 0 {
		return &choreoerr.InvalidConfigError{Reason: "collisionRadius must be >= 0"}
	}
	if totalCounts <= 0 {
		return &choreoerr.InvalidConfigError{Reason: "totalCounts must be > 0"}
	}
	if samplesPerPath < 2 {
		return &choreoerr.InvalidConfigError{Reason: "samplesPerPath must be >= 2"}
	}

	return nil
}
