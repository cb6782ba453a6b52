package render

import (
	"strings"
	"testing"

	"octoline/core"
	"octoline/line"
)

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(3, 2, '─', "red")

	cell := c.Get(3, 2)
	if cell.Rune != '─' || cell.Color != "red" {
		t.Errorf("Get(3,2) = %+v, want ─/red", cell)
	}

	// Out-of-bounds writes are dropped, reads come back blank.
	c.Set(-1, 0, 'x', "")
	c.Set(10, 4, 'x', "")
	if got := c.Get(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got.Rune)
	}
}

func TestCanvasInvalidSize(t *testing.T) {
	if NewCanvas(0, 5) != nil || NewCanvas(5, -1) != nil {
		t.Error("invalid sizes must return nil")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, 'a', "")
	c.Set(1, 1, 'b', "")

	want := "a\n b"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStepRune(t *testing.T) {
	tests := []struct {
		sx, sy int
		want   rune
	}{
		{1, 0, '─'},
		{-1, 0, '─'},
		{0, 1, '│'},
		{0, -1, '│'},
		{1, 1, '╲'},
		{-1, -1, '╲'},
		{1, -1, '╱'},
		{-1, 1, '╱'},
	}
	for _, tt := range tests {
		if got := stepRune(tt.sx, tt.sy); got != tt.want {
			t.Errorf("stepRune(%d, %d) = %q, want %q", tt.sx, tt.sy, got, tt.want)
		}
	}
}

func TestRenderMap(t *testing.T) {
	m := &line.Map{
		Stations: []core.Station{
			{ID: 1, Name: "A", X: 0, Y: 10},
			{ID: 2, Name: "B", X: 14, Y: 14},
		},
		Lines: []line.Line{
			{Name: "Red", Color: "red", Stations: []int{1, 2}},
		},
	}
	line.EnsureLineIDs(m)
	routed, err := line.RouteAll(m)
	if err != nil {
		t.Fatalf("RouteAll() error: %v", err)
	}

	canvas := NewPathRenderer().RenderMap(m, routed)
	text := canvas.String()

	if strings.Count(text, "●") != 2 {
		t.Errorf("want 2 station markers, got %d", strings.Count(text, "●"))
	}
	if !strings.Contains(text, "╲") || !strings.Contains(text, "─") {
		t.Error("route legs missing from output")
	}
	if !strings.Contains(text, "A") || !strings.Contains(text, "B") {
		t.Error("station labels missing from output")
	}

	// Cells carry the line color for the terminal backend.
	found := false
	w, h := canvas.Size()
	for y := 0; y < h && !found; y++ {
		for x := 0; x < w; x++ {
			if canvas.Get(x, y).Color == "red" {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no cell carries the line color")
	}
}

// Horizontal grid distance must come out twice as wide as vertical,
// otherwise diagonals look steep in terminal cells.
func TestRenderMapAspect(t *testing.T) {
	m := &line.Map{
		Stations: []core.Station{
			{ID: 1, Name: "", X: 0, Y: 0},
			{ID: 2, Name: "", X: 3, Y: 0},
			{ID: 3, Name: "", X: 0, Y: 3},
		},
	}
	canvas := NewPathRenderer().RenderMap(m, nil)

	type pos struct{ x, y int }
	var markers []pos
	w, h := canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if canvas.Get(x, y).Rune == '●' {
				markers = append(markers, pos{x, y})
			}
		}
	}
	if len(markers) != 3 {
		t.Fatalf("got %d markers, want 3", len(markers))
	}

	// Markers come out in row-major order: (0,0), (3,0), (0,3).
	dx := markers[1].x - markers[0].x
	dy := markers[2].y - markers[0].y
	if dx != 6 || dy != 3 {
		t.Errorf("marker spacing dx=%d dy=%d, want 6 and 3", dx, dy)
	}
}

func TestRenderMapCornerRunes(t *testing.T) {
	// Chained route: exit East into a southbound segment forces an
	// east-to-south knee.
	m := &line.Map{
		Stations: []core.Station{
			{ID: 1, Name: "", X: 0, Y: 0},
			{ID: 2, Name: "", X: 5, Y: 0},
			{ID: 3, Name: "", X: 5, Y: 5},
		},
		Lines: []line.Line{
			{Name: "Loop", Color: "blue", Stations: []int{1, 2, 3}},
		},
	}
	line.EnsureLineIDs(m)
	routed, err := line.RouteAll(m)
	if err != nil {
		t.Fatalf("RouteAll() error: %v", err)
	}

	rounded := NewPathRenderer().RenderMap(m, routed).String()
	if !strings.Contains(rounded, "╮") {
		t.Error("rounded corner rune missing")
	}

	r := NewPathRenderer()
	r.Rounded = false
	sharp := r.RenderMap(m, routed).String()
	if !strings.Contains(sharp, "┐") {
		t.Error("sharp corner rune missing")
	}
	if strings.Contains(sharp, "╮") {
		t.Error("rounded rune present in sharp mode")
	}
}

func TestRenderMapEmpty(t *testing.T) {
	m := &line.Map{}
	canvas := NewPathRenderer().RenderMap(m, nil)
	if canvas == nil {
		t.Fatal("empty map must still produce a canvas")
	}
}
