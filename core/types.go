// Package core contains the fundamental types used throughout the octoline routing engine.
package core

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate in grid-vertex units.
// Stations sit on integer vertices; computed waypoints (knees, fillet
// trim points) are real-valued.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dist returns the Euclidean distance from p to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Direction represents one of the eight octilinear compass directions.
// The Y axis grows downward, so South points toward increasing Y.
// Values are ordered by angle; the zero value is East.
type Direction int

const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
)

// NumDirections is the size of the closed direction set.
const NumDirections = 8

// directionVectors maps each direction to its grid step. Components
// are always in {-1, 0, 1}; diagonal steps are not normalized.
var directionVectors = [NumDirections]Point{
	East:      {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -1, Y: -1},
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
}

var directionNames = [NumDirections]string{
	East:      "East",
	SouthEast: "SouthEast",
	South:     "South",
	SouthWest: "SouthWest",
	West:      "West",
	NorthWest: "NorthWest",
	North:     "North",
	NorthEast: "NorthEast",
}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "Unknown"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the eight canonical directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

// Vector returns the grid step for the direction, with components in {-1, 0, 1}.
func (d Direction) Vector() Point {
	return directionVectors[d]
}

// Unit returns the direction's vector normalized to length 1, so that
// distances measured along diagonals mean the same thing as distances
// along the axes.
func (d Direction) Unit() Point {
	v := directionVectors[d]
	if v.X != 0 && v.Y != 0 {
		return Point{X: v.X * math.Sqrt2 / 2, Y: v.Y * math.Sqrt2 / 2}
	}
	return v
}

// Angle returns the direction's angle in degrees, measured clockwise
// from East in screen coordinates (East=0, South=90, West=180, North=270).
func (d Direction) Angle() float64 {
	return float64(d) * 45
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return d.Rotate(4)
}

// Rotate returns the direction rotated clockwise by n 45-degree steps.
// Negative n rotates counterclockwise.
func (d Direction) Rotate(n int) Direction {
	r := (int(d) + n) % NumDirections
	if r < 0 {
		r += NumDirections
	}
	return Direction(r)
}

// DeltaDeg returns the signed turn in degrees from direction a to
// direction b, normalized to the range (-180, 180]. Positive turns are
// clockwise in screen coordinates.
func DeltaDeg(a, b Direction) float64 {
	delta := math.Mod(b.Angle()-a.Angle(), 360)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}

// WaypointRole distinguishes the endpoints of a routed segment from
// its interior direction changes.
type WaypointRole int

const (
	// RoleStation marks a segment endpoint.
	RoleStation WaypointRole = iota
	// RoleBend marks an interior knee where the path changes direction.
	RoleBend
)

// String returns the string representation of a WaypointRole.
func (r WaypointRole) String() string {
	switch r {
	case RoleStation:
		return "Station"
	case RoleBend:
		return "Bend"
	default:
		return "Unknown"
	}
}

// Waypoint is a point on a routed path tagged with its role and the
// directions of travel on either side. A bend always has both
// directions set and they always differ; a station has only the side
// defined by its neighboring waypoint.
type Waypoint struct {
	Point Point
	Role  WaypointRole

	In     Direction // direction of travel arriving at this point
	Out    Direction // direction of travel leaving this point
	HasIn  bool
	HasOut bool
}

// Segment is the result of routing one station pair: the endpoints,
// the resolved entry and exit directions, and the ordered waypoints.
// The sequence starts at From, ends at To, and consecutive waypoints
// are colinear along one canonical direction.
type Segment struct {
	From, To    Point
	Entry, Exit Direction
	Waypoints   []Waypoint
}

// Bends returns the interior bend waypoints of the segment.
func (s Segment) Bends() []Waypoint {
	var bends []Waypoint
	for _, wp := range s.Waypoints {
		if wp.Role == RoleBend {
			bends = append(bends, wp)
		}
	}
	return bends
}

// Station is a named grid vertex, the routing engine's external input.
type Station struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Point returns the station's grid vertex as a Point.
func (s Station) Point() Point {
	return Point{X: float64(s.X), Y: float64(s.Y)}
}

// DegenerateInputError reports a routing request whose endpoints
// coincide. Callers are expected to deduplicate station placement
// before routing; this error is not recoverable.
type DegenerateInputError struct {
	At Point
}

func (e DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: identical endpoints at (%g, %g)", e.At.X, e.At.Y)
}
