// Package render draws routed metro lines. It offers a rune-matrix
// canvas for terminal output and a raster backend for PNG export; both
// consume the engine's Segment and Fillet values and never feed back
// into routing.
package render

import (
	"strings"
)

// Cell is one canvas position: a rune plus the color name of the line
// that drew it. Color names are free-form (whatever the map file
// declares) and are interpreted by the output backend.
type Cell struct {
	Rune  rune
	Color string
}

// Canvas is a fixed-size rune matrix. It is not safe for concurrent
// writes.
type Canvas struct {
	cells  [][]Cell
	width  int
	height int
}

// NewCanvas creates a canvas with the given dimensions. Returns nil
// for non-positive sizes.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Rune: ' '}
		}
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Get returns the cell at the given position, or a blank cell when
// out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// Set places a rune at the given position. Writes outside the canvas
// are silently dropped so callers can draw without clipping first.
func (c *Canvas) Set(x, y int, r rune, color string) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// String returns the canvas as plain text, one row per line, with
// trailing spaces trimmed.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y := 0; y < c.height; y++ {
		line := make([]rune, c.width)
		for x := 0; x < c.width; x++ {
			line[x] = c.cells[y][x].Rune
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
