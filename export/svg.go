package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"octoline/core"
	"octoline/fillet"
	"octoline/line"
)

// svgColors maps map-file color names to SVG color keywords. Unknown
// names pass through unchanged, since SVG accepts arbitrary CSS colors.
var svgColors = map[string]string{
	"red":    "#e03a3e",
	"green":  "#009b48",
	"blue":   "#0062a0",
	"yellow": "#f5a623",
	"purple": "#8e258e",
	"orange": "#ef7b10",
}

// SVGExporter renders routed lines as an SVG document, one path per
// line. Corners come out as cubic (C) or arc (A) path commands
// depending on the configured fillet mode.
type SVGExporter struct {
	Scale   float64
	Margin  float64
	Stroke  float64
	Corners fillet.Options
}

// NewSVGExporter creates an SVG exporter with the given corner options.
func NewSVGExporter(corners fillet.Options) *SVGExporter {
	return &SVGExporter{Scale: 32, Margin: 2, Stroke: 6, Corners: corners}
}

// GetFileExtension returns the recommended file extension.
func (e *SVGExporter) GetFileExtension() string { return ".svg" }

// GetFormatName returns the format name.
func (e *SVGExporter) GetFormatName() string { return "SVG" }

// Export routes the map and serializes it as an SVG document.
func (e *SVGExporter) Export(m *line.Map) ([]byte, error) {
	routed, err := line.RouteAll(m)
	if err != nil {
		return nil, err
	}

	minX, minY, maxX, maxY := bounds(m, routed)
	width := (maxX - minX + 2*e.Margin) * e.Scale
	height := (maxY - minY + 2*e.Margin) * e.Scale
	px := func(p core.Point) (float64, float64) {
		return (p.X - minX + e.Margin) * e.Scale, (p.Y - minY + e.Margin) * e.Scale
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)

	for _, l := range m.Lines {
		d := e.pathData(routed[l.ID], px)
		if d == "" {
			continue
		}
		fmt.Fprintf(&sb, `  <path d="%s" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round"/>`+"\n",
			d, svgColor(l.Color), e.Stroke)
	}

	for _, s := range m.Stations {
		x, y := px(s.Point())
		fmt.Fprintf(&sb, `  <circle cx="%g" cy="%g" r="%g" fill="white" stroke="black" stroke-width="%g"/>`+"\n",
			x, y, e.Stroke*1.2, e.Stroke/2)
		if s.Name != "" {
			fmt.Fprintf(&sb, `  <text x="%g" y="%g" font-size="%g">%s</text>`+"\n",
				x+e.Stroke*2.2, y+e.Stroke/2, e.Scale*0.45, escapeText(s.Name))
		}
	}

	sb.WriteString("</svg>\n")
	return []byte(sb.String()), nil
}

// pathData builds the d attribute for one routed line: straight L
// commands between trim points with a C or A command per corner.
func (e *SVGExporter) pathData(segments []core.Segment, px func(core.Point) (float64, float64)) string {
	if len(segments) == 0 {
		return ""
	}

	var sb strings.Builder
	x, y := px(segments[0].From)
	fmt.Fprintf(&sb, "M %s %s", fnum(x), fnum(y))

	for _, seg := range segments {
		corners := fillet.BuildCorners(seg.Waypoints, e.Corners)
		next := 0
		for _, wp := range seg.Waypoints[1:] {
			if wp.Role == core.RoleBend && next < len(corners) {
				e.writeCorner(&sb, corners[next], px)
				next++
				continue
			}
			x, y := px(wp.Point)
			fmt.Fprintf(&sb, " L %s %s", fnum(x), fnum(y))
		}
	}
	return sb.String()
}

func (e *SVGExporter) writeCorner(sb *strings.Builder, f fillet.Fillet, px func(core.Point) (float64, float64)) {
	sx, sy := px(f.Start)
	ex, ey := px(f.End)
	fmt.Fprintf(sb, " L %s %s", fnum(sx), fnum(sy))

	switch f.Mode {
	case fillet.ModeArc:
		sweep := 0
		if f.Clockwise {
			sweep = 1
		}
		fmt.Fprintf(sb, " A %s %s 0 0 %d %s %s",
			fnum(f.Radius*e.Scale), fnum(f.Radius*e.Scale), sweep, fnum(ex), fnum(ey))
	default:
		c1x, c1y := px(f.Control1)
		c2x, c2y := px(f.Control2)
		fmt.Fprintf(sb, " C %s %s, %s %s, %s %s",
			fnum(c1x), fnum(c1y), fnum(c2x), fnum(c2y), fnum(ex), fnum(ey))
	}
}

// bounds returns the bounding box over stations and routed waypoints
// in grid units.
func bounds(m *line.Map, routed map[uuid.UUID][]core.Segment) (minX, minY, maxX, maxY float64) {
	first := true
	grow := func(x, y float64) {
		if first {
			minX, minY, maxX, maxY = x, y, x, y
			first = false
			return
		}
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
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
	return minX, minY, maxX, maxY
}

func svgColor(name string) string {
	if c, ok := svgColors[name]; ok {
		return c
	}
	if name != "" {
		return name
	}
	return "#444444"
}

// fnum formats a coordinate compactly, trimming trailing zeros.
func fnum(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
