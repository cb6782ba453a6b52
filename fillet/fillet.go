// Package fillet turns the sharp knees of a routed path into rounded
// corners. For every bend waypoint it computes a pair of trim points
// on the adjoining legs and the curve geometry connecting them, either
// as a cubic curve or as a circular arc, so any vector-drawing backend
// can render the result.
package fillet

import (
	"math"

	"octoline/core"
)

// Mode selects the curve representation a Fillet carries.
type Mode int

const (
	// ModeCubic emits two cubic control points tangent to the
	// adjoining legs at the trim points.
	ModeCubic Mode = iota
	// ModeArc emits a circular arc center, radius and angle span.
	ModeArc
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeCubic:
		return "cubic"
	case ModeArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Options configures corner generation.
type Options struct {
	// Radius is the base trim distance in grid units.
	Radius float64
	// Tightness places the cubic control points at this fraction of
	// the effective radius inside the trim points, in [0, 1]. Higher
	// values hug the original corner more closely.
	Tightness float64
	// Mode selects cubic or arc output.
	Mode Mode
}

// DefaultOptions returns the corner options used when the caller has
// no preference.
func DefaultOptions() Options {
	return Options{Radius: 0.5, Tightness: 0.55, Mode: ModeCubic}
}

// Fillet describes one rounded corner. Start lies on the incoming leg
// before the knee, End on the outgoing leg after it; the original knee
// remains the geometric pivot. Control1/Control2 are set in cubic
// mode; Center, Radius, StartAngle, EndAngle and Clockwise in arc
// mode. Angles are in radians, measured clockwise from East in screen
// coordinates.
type Fillet struct {
	Knee core.Point `json:"knee"`
	Turn float64    `json:"turn"` // signed degrees, positive clockwise

	TrimDist float64    `json:"trimDist"`
	Start    core.Point `json:"start"`
	End      core.Point `json:"end"`

	Mode     Mode       `json:"mode"`
	Control1 core.Point `json:"control1,omitempty"`
	Control2 core.Point `json:"control2,omitempty"`

	Center     core.Point `json:"center,omitempty"`
	Radius     float64    `json:"radius,omitempty"`
	StartAngle float64    `json:"startAngle,omitempty"`
	EndAngle   float64    `json:"endAngle,omitempty"`
	Clockwise  bool       `json:"clockwise,omitempty"`
}

// BuildCorners computes one Fillet per bend waypoint in the sequence.
// The effective trim distance scales with the magnitude of the turn,
// so a 90-degree corner is rounded wider than a 45-degree one, and is
// clamped to half the length of each adjoining leg so a corner can
// never overrun a short leg or invert its direction. Clamping is a
// silent correction, never an error.
func BuildCorners(waypoints []core.Waypoint, opts Options) []Fillet {
	var fillets []Fillet
	for i, wp := range waypoints {
		if wp.Role != core.RoleBend {
			continue
		}
		// Bends are interior by construction, so both neighbors exist.
		if i == 0 || i == len(waypoints)-1 {
			continue
		}
		fillets = append(fillets, buildCorner(waypoints[i-1].Point, wp, waypoints[i+1].Point, opts))
	}
	return fillets
}

func buildCorner(prev core.Point, wp core.Waypoint, next core.Point, opts Options) Fillet {
	turn := core.DeltaDeg(wp.In, wp.Out)

	eff := opts.Radius * (1 + math.Abs(turn)/90*0.5)
	if in := wp.Point.Dist(prev) / 2; eff > in {
		eff = in
	}
	if out := wp.Point.Dist(next) / 2; eff > out {
		eff = out
	}

	inUnit := wp.In.Unit()
	outUnit := wp.Out.Unit()
	start := wp.Point.Sub(inUnit.Scale(eff))
	end := wp.Point.Add(outUnit.Scale(eff))

	f := Fillet{
		Knee:     wp.Point,
		Turn:     turn,
		TrimDist: eff,
		Start:    start,
		End:      end,
		Mode:     opts.Mode,
	}

	switch opts.Mode {
	case ModeArc:
		// The center sits perpendicular to the incoming direction at
		// the start trim point, on the inside of the turn.
		side := 1.0
		if turn < 0 {
			side = -1
		}
		perp := core.Point{X: -inUnit.Y * side, Y: inUnit.X * side}
		f.Center = start.Add(perp.Scale(eff))
		f.Radius = eff
		f.StartAngle = math.Atan2(start.Y-f.Center.Y, start.X-f.Center.X)
		f.EndAngle = math.Atan2(end.Y-f.Center.Y, end.X-f.Center.X)
		f.Clockwise = turn > 0
	default:
		f.Control1 = start.Add(inUnit.Scale(opts.Tightness * eff))
		f.Control2 = end.Sub(outUnit.Scale(opts.Tightness * eff))
	}
	return f
}
