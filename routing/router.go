// Package routing computes octilinear paths between station pairs.
// Paths are restricted to the eight canonical directions and contain
// the minimum number of knees needed to reconcile the entry direction
// with the direction of travel toward the target.
package routing

import (
	"math"

	"octoline/core"
	"octoline/geometry"
)

const (
	// minKneeDistance is the smallest distance (in grid units) a knee
	// may fall from the segment start before the midpoint fallback is
	// used instead; closer knees would sit visually on the station.
	minKneeDistance = 0.5

	// maxDetourFactor bounds the routed length relative to the direct
	// distance. An intersection knee whose path exceeds it doubles
	// back and is discarded for the midpoint fallback.
	maxDetourFactor = 2.0
)

// Router routes single station pairs. It holds no state across calls;
// the zero value is ready to use.
type Router struct{}

// NewRouter creates a new segment router.
func NewRouter() *Router {
	return &Router{}
}

// RouteSegment routes a single station pair using a default Router.
func RouteSegment(from, to core.Point, entry *core.Direction) (core.Segment, error) {
	return (&Router{}).RouteSegment(from, to, entry)
}

// RouteSegment computes the octilinear path from one station to
// another. The optional entry direction constrains the direction the
// path leaves the start with, which keeps chained lines visually
// continuous through a shared station; pass nil for the first segment
// of a line.
//
// The only error condition is identical endpoints. Every geometric
// degeneracy (parallel projection rays, a knee landing on the start
// station, a doubled-back intersection) is resolved by a midpoint
// fallback so that routing always yields a usable path.
func (r *Router) RouteSegment(from, to core.Point, entry *core.Direction) (core.Segment, error) {
	if from == to {
		return core.Segment{}, core.DegenerateInputError{At: from}
	}

	dx := to.X - from.X
	dy := to.Y - from.Y

	if geometry.Aligned(from, to) {
		dir := geometry.ExactDirection(from, to)
		if entry == nil || *entry == dir {
			return straight(from, to, dir), nil
		}
		return r.bent(from, to, *entry, dir), nil
	}

	// Unaligned pairs decompose into one diagonal leg and one leg
	// along the dominant axis; the knee falls after the shorter of
	// the two coordinate deltas.
	diag := quadrantDiagonal(dx, dy)
	axis := dominantAxis(dx, dy)

	switch {
	case entry == nil || *entry == diag:
		return r.bent(from, to, diag, axis), nil
	case *entry == axis:
		return r.bent(from, to, axis, diag), nil
	default:
		// A foreign entry direction is reconciled against the
		// snapped direct angle.
		direct, err := geometry.Snap(from, to)
		if err != nil {
			return core.Segment{}, err
		}
		return r.bent(from, to, *entry, direct), nil
	}
}

// straight builds a two-waypoint segment with no bend.
func straight(from, to core.Point, dir core.Direction) core.Segment {
	return core.Segment{
		From:  from,
		To:    to,
		Entry: dir,
		Exit:  dir,
		Waypoints: []core.Waypoint{
			{Point: from, Role: core.RoleStation, Out: dir, HasOut: true},
			{Point: to, Role: core.RoleStation, In: dir, HasIn: true},
		},
	}
}

// bent builds a segment that leaves along entry and arrives along
// exit. Turns of up to 90 degrees get a single knee; larger turns are
// decomposed across several knees.
func (r *Router) bent(from, to core.Point, entry, exit core.Direction) core.Segment {
	turn := core.DeltaDeg(entry, exit)
	if math.Abs(turn) > 90 {
		return r.multiKnee(from, to, entry, exit, turn)
	}

	knee := r.kneePoint(from, to, entry, exit)
	return core.Segment{
		From:  from,
		To:    to,
		Entry: entry,
		Exit:  exit,
		Waypoints: []core.Waypoint{
			{Point: from, Role: core.RoleStation, Out: entry, HasOut: true},
			{Point: knee, Role: core.RoleBend, In: entry, Out: exit, HasIn: true, HasOut: true},
			{Point: to, Role: core.RoleStation, In: exit, HasIn: true},
		},
	}
}

// kneePoint intersects the ray cast from the start along the entry
// direction with the ray cast backward from the target along the exit
// direction. Degenerate intersections fall back to the midpoint.
func (r *Router) kneePoint(from, to core.Point, entry, exit core.Direction) core.Point {
	t, ok := geometry.RayIntersection(from, entry.Unit(), to, exit.Unit())
	if !ok || t < minKneeDistance {
		return geometry.Midpoint(from, to)
	}

	knee := from.Add(entry.Unit().Scale(t))
	if from.Dist(knee)+knee.Dist(to) > maxDetourFactor*from.Dist(to) {
		// Routing through this knee doubles back.
		return geometry.Midpoint(from, to)
	}
	return knee
}

// quadrantDiagonal returns the diagonal direction pointing into the
// quadrant of the (dx, dy) delta. Both components must be nonzero.
func quadrantDiagonal(dx, dy float64) core.Direction {
	switch {
	case dx > 0 && dy > 0:
		return core.SouthEast
	case dx > 0 && dy < 0:
		return core.NorthEast
	case dx < 0 && dy > 0:
		return core.SouthWest
	default:
		return core.NorthWest
	}
}

// dominantAxis returns the axis direction of the larger coordinate
// delta. The deltas must differ in magnitude.
func dominantAxis(dx, dy float64) core.Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return core.East
		}
		return core.West
	}
	if dy > 0 {
		return core.South
	}
	return core.North
}
