package geometry

import (
	"errors"
	"math"
	"testing"

	"octoline/core"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		from core.Point
		to   core.Point
		want core.Direction
	}{
		{"due east", core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}, core.East},
		{"due south", core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 10}, core.South},
		{"due west", core.Point{X: 0, Y: 0}, core.Point{X: -10, Y: 0}, core.West},
		{"due north", core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: -10}, core.North},
		{"perfect southeast", core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, core.SouthEast},
		{"perfect northwest", core.Point{X: 3, Y: 3}, core.Point{X: 0, Y: 0}, core.NorthWest},
		{"slightly off east", core.Point{X: 0, Y: 10}, core.Point{X: 14, Y: 14}, core.East},
		{"closer to southeast", core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 2}, core.SouthEast},
		{"shallow northeast", core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: -9}, core.NorthEast},
		{"west of southwest", core.Point{X: 0, Y: 0}, core.Point{X: -10, Y: 3}, core.West},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Snap(tt.from, tt.to)
			if err != nil {
				t.Fatalf("Snap() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Snap(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// An angle exactly halfway between two canonical directions must snap
// to the lower-valued one, deterministically.
func TestSnapAngleTieBreak(t *testing.T) {
	tests := []struct {
		deg  float64
		want core.Direction
	}{
		{22.5, core.East},       // between East (0) and SouthEast (1)
		{67.5, core.SouthEast},  // between SouthEast (1) and South (2)
		{157.5, core.SouthWest}, // between SouthWest (3) and West (4)
		{-22.5, core.East},      // between NorthEast (7) and East (0)
		{-157.5, core.West},     // between NorthWest (5) and West (4)
	}
	for _, tt := range tests {
		if got := SnapAngle(tt.deg); got != tt.want {
			t.Errorf("SnapAngle(%g) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestSnapAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		want core.Direction
	}{
		{0, core.East},
		{15.9, core.East},
		{33.7, core.SouthEast},
		{90, core.South},
		{179, core.West},
		{-179, core.West},
		{-90, core.North},
		{-44, core.NorthEast},
		{382, core.East},
	}
	for _, tt := range tests {
		if got := SnapAngle(tt.deg); got != tt.want {
			t.Errorf("SnapAngle(%g) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestSnapWraparound(t *testing.T) {
	// Just below the negative x axis: raw angle near +180, NorthWest
	// territory starts at 202.5, so this is still West.
	got, err := Snap(core.Point{X: 0, Y: 0}, core.Point{X: -100, Y: 1})
	if err != nil {
		t.Fatalf("Snap() error: %v", err)
	}
	if got != core.West {
		t.Errorf("Snap just south of west = %v, want West", got)
	}

	// Just above: raw angle near -180, also West.
	got, err = Snap(core.Point{X: 0, Y: 0}, core.Point{X: -100, Y: -1})
	if err != nil {
		t.Fatalf("Snap() error: %v", err)
	}
	if got != core.West {
		t.Errorf("Snap just north of west = %v, want West", got)
	}
}

func TestSnapDegenerate(t *testing.T) {
	_, err := Snap(core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 2})
	var degenerate core.DegenerateInputError
	if !errors.As(err, &degenerate) {
		t.Fatalf("Snap of identical points returned %v, want DegenerateInputError", err)
	}
	if degenerate.At != (core.Point{X: 2, Y: 2}) {
		t.Errorf("error location = %v, want (2, 2)", degenerate.At)
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{450, 90},
		{-90, -90},
		{540, 180},
	}
	for _, tt := range tests {
		if got := NormalizeDeg(tt.in); got != tt.want {
			t.Errorf("NormalizeDeg(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		name string
		from core.Point
		to   core.Point
		want bool
	}{
		{"same column", core.Point{X: 3, Y: 0}, core.Point{X: 3, Y: 9}, true},
		{"same row", core.Point{X: 0, Y: 4}, core.Point{X: -7, Y: 4}, true},
		{"diagonal", core.Point{X: 1, Y: 1}, core.Point{X: 5, Y: 5}, true},
		{"anti-diagonal", core.Point{X: 0, Y: 0}, core.Point{X: -4, Y: 4}, true},
		{"off axis", core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 3}, false},
		{"near diagonal", core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aligned(tt.from, tt.to); got != tt.want {
				t.Errorf("Aligned(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRayIntersection(t *testing.T) {
	// Forward ray southeast from the origin, backward ray east into
	// (14, 4).
	t1, ok := RayIntersection(
		core.Point{X: 0, Y: 0}, core.SouthEast.Unit(),
		core.Point{X: 14, Y: 4}, core.East.Unit(),
	)
	if !ok {
		t.Fatal("expected an intersection")
	}
	knee := core.Point{X: 0, Y: 0}.Add(core.SouthEast.Unit().Scale(t1))
	if math.Abs(knee.X-4) > 1e-9 || math.Abs(knee.Y-4) > 1e-9 {
		t.Errorf("intersection at %v, want (4, 4)", knee)
	}
}

func TestRayIntersectionParallel(t *testing.T) {
	_, ok := RayIntersection(
		core.Point{X: 0, Y: 0}, core.East.Unit(),
		core.Point{X: 10, Y: 5}, core.West.Unit(),
	)
	if ok {
		t.Error("parallel rays must not intersect")
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(core.Point{X: 0, Y: 10}, core.Point{X: 14, Y: 14})
	if got != (core.Point{X: 7, Y: 12}) {
		t.Errorf("Midpoint = %v, want (7, 12)", got)
	}
}
