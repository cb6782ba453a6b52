package routing

import (
	"math"

	"octoline/core"
)

// multiKnee decomposes a turn of more than 90 degrees across several
// knees, since turning through more than 90 degrees at a single knee
// looks wrong in the octilinear style. The turn is split as evenly as
// the 45-degree direction set allows, and each intermediate knee is
// placed an even fraction of the direct distance along the current
// direction.
//
// This is an approximation, not a geometric router: the intermediate
// knees are not guaranteed to land on the direct line to the target.
// The final leg simply runs from the last knee to the target.
func (r *Router) multiKnee(from, to core.Point, entry, exit core.Direction, turn float64) core.Segment {
	knees := int(math.Ceil(math.Abs(turn) / 90))
	leg := from.Dist(to) / float64(knees+1)

	waypoints := make([]core.Waypoint, 0, knees+2)
	waypoints = append(waypoints, core.Waypoint{
		Point: from, Role: core.RoleStation, Out: entry, HasOut: true,
	})

	pos := from
	cur := entry
	remaining := turn
	for i := 0; i < knees; i++ {
		// Nearest 45-degree multiple of the even share of the
		// remaining turn; the last step absorbs the rounding so the
		// total always comes out to the full turn.
		share := remaining / float64(knees-i)
		step := int(math.Round(share/45)) * 45
		next := cur.Rotate(step / 45)
		remaining -= float64(step)

		pos = pos.Add(cur.Unit().Scale(leg))
		waypoints = append(waypoints, core.Waypoint{
			Point: pos, Role: core.RoleBend,
			In: cur, Out: next, HasIn: true, HasOut: true,
		})
		cur = next
	}

	waypoints = append(waypoints, core.Waypoint{
		Point: to, Role: core.RoleStation, In: cur, HasIn: true,
	})

	return core.Segment{
		From:      from,
		To:        to,
		Entry:     entry,
		Exit:      cur,
		Waypoints: waypoints,
	}
}
