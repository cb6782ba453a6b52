package render

import (
	"math"

	"github.com/google/uuid"

	"octoline/core"
	"octoline/line"
)

// legRunes maps a cell step direction to the rune that draws it.
var legRunes = map[core.Direction]rune{
	core.East:      '─',
	core.West:      '─',
	core.North:     '│',
	core.South:     '│',
	core.SouthEast: '╲',
	core.NorthWest: '╲',
	core.SouthWest: '╱',
	core.NorthEast: '╱',
}

// cornerRunes maps an axis-to-axis bend (incoming, outgoing) to a
// rounded corner rune; bends involving a diagonal leg keep their leg
// runes instead.
var cornerRunes = map[[2]core.Direction]rune{
	{core.East, core.South}: '╮',
	{core.East, core.North}: '╯',
	{core.West, core.South}: '╭',
	{core.West, core.North}: '╰',
	{core.South, core.East}: '╰',
	{core.South, core.West}: '╯',
	{core.North, core.East}: '╭',
	{core.North, core.West}: '╮',
}

// sharpCornerRunes is the unsmoothed variant of cornerRunes.
var sharpCornerRunes = map[[2]core.Direction]rune{
	{core.East, core.South}: '┐',
	{core.East, core.North}: '┘',
	{core.West, core.South}: '┌',
	{core.West, core.North}: '└',
	{core.South, core.East}: '└',
	{core.South, core.West}: '┘',
	{core.North, core.East}: '┌',
	{core.North, core.West}: '┐',
}

// PathRenderer draws routed lines onto a rune-matrix canvas. One grid
// unit maps to ScaleX horizontal cells and ScaleY vertical cells; the
// horizontal scale is doubled because terminal cells are roughly twice
// as tall as they are wide.
type PathRenderer struct {
	ScaleX  int
	ScaleY  int
	Margin  int
	Rounded bool
}

// NewPathRenderer creates a renderer with the default terminal-aspect
// scale and rounded corner runes.
func NewPathRenderer() *PathRenderer {
	return &PathRenderer{ScaleX: 2, ScaleY: 1, Margin: 2, Rounded: true}
}

// RenderMap draws every routed line of a map plus its station markers
// and labels, and returns the finished canvas.
func (r *PathRenderer) RenderMap(m *line.Map, routed map[uuid.UUID][]core.Segment) *Canvas {
	minX, minY, maxX, maxY := mapBounds(m, routed)
	width := (maxX-minX)*r.ScaleX + 2*r.Margin + 1
	height := (maxY-minY)*r.ScaleY + 2*r.Margin + 1
	canvas := NewCanvas(width+labelRoom(m), height)

	cell := func(p core.Point) (int, int) {
		return int(math.Round((p.X-float64(minX))*float64(r.ScaleX))) + r.Margin,
			int(math.Round((p.Y-float64(minY))*float64(r.ScaleY))) + r.Margin
	}

	for _, l := range m.Lines {
		for _, seg := range routed[l.ID] {
			r.drawSegment(canvas, seg, l.Color, cell)
		}
	}

	for _, s := range m.Stations {
		x, y := cell(s.Point())
		canvas.Set(x, y, '●', "")
		for i, ch := range s.Name {
			canvas.Set(x+2+i, y, ch, "")
		}
	}

	return canvas
}

// drawSegment draws the legs between consecutive waypoints, then the
// corner runes for axis-to-axis bends.
func (r *PathRenderer) drawSegment(canvas *Canvas, seg core.Segment, color string, cell func(core.Point) (int, int)) {
	for i := 0; i < len(seg.Waypoints)-1; i++ {
		x0, y0 := cell(seg.Waypoints[i].Point)
		x1, y1 := cell(seg.Waypoints[i+1].Point)
		drawLeg(canvas, x0, y0, x1, y1, color)
	}

	corners := sharpCornerRunes
	if r.Rounded {
		corners = cornerRunes
	}
	for _, wp := range seg.Bends() {
		if corner, ok := corners[[2]core.Direction{wp.In, wp.Out}]; ok {
			x, y := cell(wp.Point)
			canvas.Set(x, y, corner, color)
		}
	}
}

// drawLeg walks cell by cell from one endpoint to the other. Legs are
// canonical by construction, but fallback knees can produce fractional
// positions, so the walk steps both axes independently until both are
// spent.
func drawLeg(canvas *Canvas, x0, y0, x1, y1 int, color string) {
	x, y := x0, y0
	for x != x1 || y != y1 {
		sx, sy := step(x1-x), step(y1-y)
		canvas.Set(x, y, stepRune(sx, sy), color)
		x += sx
		y += sy
	}
	canvas.Set(x1, y1, stepRune(step(x1-x0), step(y1-y0)), color)
}

func step(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

func stepRune(sx, sy int) rune {
	switch {
	case sy == 0:
		return '─'
	case sx == 0:
		return '│'
	case sx == sy:
		return '╲'
	default:
		return '╱'
	}
}

// mapBounds returns the integer bounding box over all stations and
// routed waypoints.
func mapBounds(m *line.Map, routed map[uuid.UUID][]core.Segment) (minX, minY, maxX, maxY int) {
	first := true
	grow := func(x, y float64) {
		if first {
			minX, minY = int(math.Floor(x)), int(math.Floor(y))
			maxX, maxY = int(math.Ceil(x)), int(math.Ceil(y))
			first = false
			return
		}
		minX = min(minX, int(math.Floor(x)))
		minY = min(minY, int(math.Floor(y)))
		maxX = max(maxX, int(math.Ceil(x)))
		maxY = max(maxY, int(math.Ceil(y)))
	}

	for _, s := range m.Stations {
		grow(float64(s.X), float64(s.Y))
	}
	for _, segs := range routed {
		for _, seg := range segs {
			for _, wp := range seg.Waypoints {
				grow(wp.Point.X, wp.Point.Y)
			}
		}
	}
	if first {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}

// labelRoom reserves horizontal space for the longest station label.
func labelRoom(m *line.Map) int {
	longest := 0
	for _, s := range m.Stations {
		longest = max(longest, len([]rune(s.Name)))
	}
	if longest == 0 {
		return 0
	}
	return longest + 2
}
