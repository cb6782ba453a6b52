package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"octoline/core"
	"octoline/fillet"
	"octoline/line"
)

// lineColors maps the color names accepted in map files to RGB. An
// unknown name falls back to dark gray.
var lineColors = map[string]color.Color{
	"red":    color.RGBA{R: 0xE0, G: 0x3A, B: 0x3E, A: 0xFF},
	"green":  color.RGBA{R: 0x00, G: 0x9B, B: 0x48, A: 0xFF},
	"blue":   color.RGBA{R: 0x00, G: 0x62, B: 0xA0, A: 0xFF},
	"yellow": color.RGBA{R: 0xF5, G: 0xA6, B: 0x23, A: 0xFF},
	"purple": color.RGBA{R: 0x8E, G: 0x25, B: 0x8E, A: 0xFF},
	"orange": color.RGBA{R: 0xEF, G: 0x7B, B: 0x10, A: 0xFF},
}

// PNGRenderer rasterizes routed lines with smoothed corners.
type PNGRenderer struct {
	// Scale is the number of pixels per grid unit.
	Scale float64
	// LineWidth is the stroke width in pixels.
	LineWidth float64
	// Corners configures the fillet generator; the curve is always
	// rasterized from its cubic form.
	Corners fillet.Options
	// Margin is the padding around the drawing in grid units.
	Margin float64
}

// NewPNGRenderer creates a renderer with sensible defaults for small
// maps.
func NewPNGRenderer() *PNGRenderer {
	opts := fillet.DefaultOptions()
	opts.Mode = fillet.ModeCubic
	return &PNGRenderer{Scale: 32, LineWidth: 6, Corners: opts, Margin: 2}
}

// RenderMap rasterizes every routed line of a map and writes the
// result to a PNG file.
func (r *PNGRenderer) RenderMap(m *line.Map, routed map[uuid.UUID][]core.Segment, filename string) error {
	minX, minY, maxX, maxY := mapBounds(m, routed)
	width := int((float64(maxX-minX) + 2*r.Margin) * r.Scale)
	height := int((float64(maxY-minY) + 2*r.Margin) * r.Scale)

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	px := func(p core.Point) (float64, float64) {
		return (p.X - float64(minX) + r.Margin) * r.Scale,
			(p.Y - float64(minY) + r.Margin) * r.Scale
	}

	for _, l := range m.Lines {
		r.strokeLine(dc, routed[l.ID], l.Color, px)
	}
	r.drawStations(dc, m, px)

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

// strokeLine builds one continuous stroked path for a routed line,
// replacing each knee with its fillet curve.
func (r *PNGRenderer) strokeLine(dc *gg.Context, segments []core.Segment, colorName string, px func(core.Point) (float64, float64)) {
	if len(segments) == 0 {
		return
	}

	dc.SetColor(namedColor(colorName))
	dc.SetLineWidth(r.LineWidth)
	dc.SetLineCapRound()

	opts := r.Corners
	opts.Mode = fillet.ModeCubic

	sx, sy := px(segments[0].From)
	dc.MoveTo(sx, sy)
	for _, seg := range segments {
		corners := fillet.BuildCorners(seg.Waypoints, opts)
		next := 0
		for _, wp := range seg.Waypoints[1:] {
			if wp.Role == core.RoleBend && next < len(corners) {
				f := corners[next]
				next++
				x, y := px(f.Start)
				dc.LineTo(x, y)
				c1x, c1y := px(f.Control1)
				c2x, c2y := px(f.Control2)
				ex, ey := px(f.End)
				dc.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
				continue
			}
			x, y := px(wp.Point)
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
}

// drawStations draws a ringed marker and a label for every station.
func (r *PNGRenderer) drawStations(dc *gg.Context, m *line.Map, px func(core.Point) (float64, float64)) {
	face := labelFace(r.Scale * 0.45)
	if face != nil {
		dc.SetFontFace(face)
	}

	radius := r.LineWidth * 1.2
	for _, s := range m.Stations {
		x, y := px(s.Point())
		dc.SetColor(color.White)
		dc.DrawCircle(x, y, radius)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.SetLineWidth(r.LineWidth / 2)
		dc.DrawCircle(x, y, radius)
		dc.Stroke()

		if s.Name != "" {
			dc.DrawString(s.Name, x+radius*1.8, y+radius/2)
		}
	}
}

func namedColor(name string) color.Color {
	if c, ok := lineColors[name]; ok {
		return c
	}
	return color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}
}

// labelFace parses the bundled go font at the given size. Returns nil
// if parsing fails; callers then keep gg's default face.
func labelFace(size float64) font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}
