package export

import (
	"encoding/json"

	"octoline/core"
	"octoline/fillet"
	"octoline/line"
)

// JSONExporter serializes routed segments and fillets verbatim, for
// callers that persist computed lines as part of a larger document.
type JSONExporter struct {
	Corners fillet.Options
}

// NewJSONExporter creates a JSON exporter with the given corner options.
func NewJSONExporter(corners fillet.Options) *JSONExporter {
	return &JSONExporter{Corners: corners}
}

// GetFileExtension returns the recommended file extension.
func (e *JSONExporter) GetFileExtension() string { return ".json" }

// GetFormatName returns the format name.
func (e *JSONExporter) GetFormatName() string { return "JSON" }

type jsonWaypoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Role string  `json:"role"`
	In   string  `json:"in,omitempty"`
	Out  string  `json:"out,omitempty"`
}

type jsonSegment struct {
	Entry     string          `json:"entry"`
	Exit      string          `json:"exit"`
	Waypoints []jsonWaypoint  `json:"waypoints"`
	Fillets   []fillet.Fillet `json:"fillets,omitempty"`
}

type jsonLine struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	Color    string        `json:"color,omitempty"`
	Segments []jsonSegment `json:"segments"`
}

type jsonDocument struct {
	Stations []core.Station `json:"stations"`
	Lines    []jsonLine     `json:"lines"`
}

// Export routes the map and marshals the routed geometry.
func (e *JSONExporter) Export(m *line.Map) ([]byte, error) {
	routed, err := line.RouteAll(m)
	if err != nil {
		return nil, err
	}

	doc := jsonDocument{Stations: m.Stations}
	for _, l := range m.Lines {
		jl := jsonLine{ID: l.ID.String(), Name: l.Name, Color: l.Color}
		for _, seg := range routed[l.ID] {
			js := jsonSegment{
				Entry:   seg.Entry.String(),
				Exit:    seg.Exit.String(),
				Fillets: fillet.BuildCorners(seg.Waypoints, e.Corners),
			}
			for _, wp := range seg.Waypoints {
				jw := jsonWaypoint{X: wp.Point.X, Y: wp.Point.Y, Role: wp.Role.String()}
				if wp.HasIn {
					jw.In = wp.In.String()
				}
				if wp.HasOut {
					jw.Out = wp.Out.String()
				}
				js.Waypoints = append(js.Waypoints, jw)
			}
			jl.Segments = append(jl.Segments, js)
		}
		doc.Lines = append(doc.Lines, jl)
	}

	return json.MarshalIndent(doc, "", "  ")
}
