// Package geometry provides the 2D measurements derived from landmark
// coordinates: the angle subtended at a joint and the distance between
// two points.
package geometry

import "math"

// Point is a 2D position in whatever coordinate space the caller works
// in. Measurements are invariant under translation, so normalized and
// pixel coordinates both work.
type Point struct {
	X float64
	Y float64
}

// Angle returns the angle in degrees subtended at vertex b by the rays
// b->a and b->c, normalized to [0, 180].
//
// The second return value reports whether the angle is defined: it is
// false when a or c coincides with the vertex, leaving a zero-length
// ray. Callers must not read the angle as a measurement in that case.
// Coincident a and c with a proper vertex is not degenerate; the rays
// overlap and the angle is a genuine 0.
func Angle(a, b, c Point) (float64, bool) {
	if a == b || c == b {
		return 0, false
	}

	rad := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	deg := math.Abs(rad * 180 / math.Pi)
	if deg > 180 {
		deg = 360 - deg
	}

	return deg, true
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}
