package geom

import "math"

// Epsilon is the default tolerance for floating-point comparisons across the
// geom package. Comparisons at module boundaries (e.g. provider-supplied
// paths) use their own, looser tolerances; see callers.
const Epsilon = 1e-9

// Vector is a point or displacement in the plane. It is also used to
// represent a Position: the two concepts share the same shape and arithmetic.
type Vector struct {
	X, Y float64
}

// Add returns a+b.
func Add(a, b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b.
func Sub(a, b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v scaled by s.
func Scale(v Vector, s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar (z-component) cross product of a and b.
func Cross(a, b Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vector) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistSq returns the squared Euclidean distance between a and b, avoiding a
// sqrt where only comparison is needed (e.g. the Hungarian cost matrix).
func DistSq(a, b Vector) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// Length returns the magnitude of v.
func Length(v Vector) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself rather than producing NaN, keeping all callers total.
func Normalize(v Vector) Vector {
	l := Length(v)
	if l <= Epsilon {
		return Vector{}
	}

	return Scale(v, 1/l)
}

// Perp returns v rotated 90 degrees counter-clockwise.
func Perp(v Vector) Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Lerp returns the linear interpolation between a and b at parameter t,
// t expected in [0,1] but not clamped (callers are responsible for range).
func Lerp(a, b Vector, t float64) Vector {
	return Vector{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// QuadraticBezier evaluates the quadratic Bézier curve with control points
// p0, p1, p2 at parameter t in [0,1].
func QuadraticBezier(p0, p1, p2 Vector, t float64) Vector {
	u := 1 - t
	a := Scale(p0, u*u)
	b := Scale(p1, 2*u*t)
	c := Scale(p2, t*t)

	return Add(Add(a, b), c)
}

// Angle returns the angle of v relative to the positive x-axis, in radians.
// The zero vector has angle 0.
func Angle(v Vector) float64 {
	if math.Abs(v.X) <= Epsilon && math.Abs(v.Y) <= Epsilon {
		return 0
	}

	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the absolute, wrapped-to-[0,pi] angle between vectors
// a and b. Degenerate (zero-length) inputs return 0.
func AngleBetween(a, b Vector) float64 {
	la, lb := Length(a), Length(b)
	if la <= Epsilon || lb <= Epsilon {
		return 0
	}

	// atan2 of |cross| and dot stays exact for parallel vectors, where acos
	// of a rounded cosine would report a spurious ~1e-8 turn.
	return math.Atan2(math.Abs(Cross(a, b)), Dot(a, b))
}

// SegmentsIntersect reports whether closed segments a0-a1 and b0-b1 intersect
// at a point that is not a shared endpoint. It uses the standard orientation
// test and treats collinear overlap (other than at a shared endpoint) as an
// intersection.
func SegmentsIntersect(a0, a1, b0, b1 Vector) bool {
	// Endpoint coincidences are excluded per the crossing-count definition:
	// two segments that only touch at a shared start or end point are not a
	// "crossing". Collinear segments that also overlap beyond that point are.
	if samePoint(a0, b0) || samePoint(a0, b1) || samePoint(a1, b0) || samePoint(a1, b1) {
		d := Sub(a1, a0)
		dd := Dot(d, d)
		if dd <= Epsilon || orientation(a0, a1, b0) != 0 || orientation(a0, a1, b1) != 0 {
			return false
		}
		s0, s1 := Dot(Sub(b0, a0), d)/dd, Dot(Sub(b1, a0), d)/dd

		return math.Min(1, math.Max(s0, s1))-math.Max(0, math.Min(s0, s1)) > Epsilon
	}

	o1 := orientation(a0, a1, b0)
	o2 := orientation(a0, a1, b1)
	o3 := orientation(b0, b1, a0)
	o4 := orientation(b0, b1, a1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(a0, b0, a1) {
		return true
	}
	if o2 == 0 && onSegment(a0, b1, a1) {
		return true
	}
	if o3 == 0 && onSegment(b0, a0, b1) {
		return true
	}
	if o4 == 0 && onSegment(b0, a1, b1) {
		return true
	}

	return false
}

func samePoint(a, b Vector) bool {
	return math.Abs(a.X-b.X) <= Epsilon && math.Abs(a.Y-b.Y) <= Epsilon
}

// orientation returns 0 for collinear, 1 for clockwise, 2 for counter-clockwise.
func orientation(p, q, r Vector) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(val) <= Epsilon {
		return 0
	}
	if val > 0 {
		return 1
	}

	return 2
}

// onSegment reports whether q lies on segment p-r, given p, q, r are collinear.
func onSegment(p, q, r Vector) bool {
	return q.X <= math.Max(p.X, r.X)+Epsilon && q.X >= math.Min(p.X, r.X)-Epsilon &&
		q.Y <= math.Max(p.Y, r.Y)+Epsilon && q.Y >= math.Min(p.Y, r.Y)-Epsilon
}
