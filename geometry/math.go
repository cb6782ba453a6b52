// Package geometry provides the angle snapper and the low-level
// geometric primitives the router is built on.
package geometry

import (
	"math"

	"octoline/core"
)

// Epsilon is the tolerance below which a 2D intersection determinant
// is treated as parallel.
const Epsilon = 1e-9

// Snap reduces the vector from one point to another to the nearest of
// the eight canonical directions, measured by angular distance with
// wraparound. An exact tie (the raw angle lies exactly halfway between
// two canonical directions) resolves to the lower-valued direction.
// Snap returns a DegenerateInputError when the points coincide.
func Snap(from, to core.Point) (core.Direction, error) {
	if from == to {
		return 0, core.DegenerateInputError{At: from}
	}

	raw := math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
	return SnapAngle(raw), nil
}

// SnapAngle maps a raw angle in degrees to the nearest canonical
// direction by angular distance with wraparound. An exact tie resolves
// to the lower-valued direction: directions are visited in value order
// and only a strictly smaller distance displaces the current best.
func SnapAngle(deg float64) core.Direction {
	best := core.East
	bestDist := math.MaxFloat64
	for d := core.Direction(0); d < core.NumDirections; d++ {
		dist := math.Abs(NormalizeDeg(deg - d.Angle()))
		if dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// NormalizeDeg wraps an angle in degrees into the range (-180, 180].
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// Aligned reports whether two points lie exactly on one of the eight
// canonical directions from each other: same column, same row, or on
// a perfect diagonal.
func Aligned(from, to core.Point) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return dx == 0 || dy == 0 || math.Abs(dx) == math.Abs(dy)
}

// ExactDirection returns the canonical direction from one point to
// another. It is only meaningful when Aligned(from, to) holds.
func ExactDirection(from, to core.Point) core.Direction {
	dir, _ := Snap(from, to)
	return dir
}

// RayIntersection solves for the intersection of a forward ray
// (origin o1, direction d1) with a backward ray (origin o2, direction
// d2, extending along -d2). It returns the parameter t along the
// forward ray and ok=false when the rays are parallel within Epsilon.
//
// The system solved is o1 + t*d1 == o2 - s*d2.
func RayIntersection(o1, d1, o2, d2 core.Point) (t float64, ok bool) {
	// Determinant of [d1 | d2].
	det := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(det) < Epsilon {
		return 0, false
	}
	w := o2.Sub(o1)
	t = (w.X*d2.Y - w.Y*d2.X) / det
	return t, true
}

// Midpoint returns the point halfway between two points.
func Midpoint(a, b core.Point) core.Point {
	return core.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Sign returns -1, 0, or 1 for a float value.
func Sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
