package export

import (
	"octoline/fillet"
	"octoline/line"
	"octoline/render"
)

// ASCIIExporter exports routed maps as Unicode art via the rune-matrix
// renderer. The fillet geometry only decides rounded versus sharp
// corner runes; the exact curves only matter to the vector formats.
type ASCIIExporter struct {
	renderer *render.PathRenderer
}

// NewASCIIExporter creates a new ASCII exporter.
func NewASCIIExporter(corners fillet.Options) *ASCIIExporter {
	renderer := render.NewPathRenderer()
	renderer.Rounded = corners.Radius > 0
	return &ASCIIExporter{renderer: renderer}
}

// GetFileExtension returns the recommended file extension.
func (e *ASCIIExporter) GetFileExtension() string { return ".txt" }

// GetFormatName returns the format name.
func (e *ASCIIExporter) GetFormatName() string { return "ASCII/Unicode Art" }

// Export routes the map and renders it as text.
func (e *ASCIIExporter) Export(m *line.Map) ([]byte, error) {
	routed, err := line.RouteAll(m)
	if err != nil {
		return nil, err
	}
	canvas := e.renderer.RenderMap(m, routed)
	return []byte(canvas.String() + "\n"), nil
}
