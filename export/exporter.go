// Package export serializes routed maps into the supported output
// formats. Exporters route the map themselves so a caller only ever
// hands over the map file's contents.
package export

import (
	"fmt"

	"octoline/fillet"
	"octoline/line"
)

// Exporter converts a map into one output format.
type Exporter interface {
	// Export routes the map and serializes the result.
	Export(m *line.Map) ([]byte, error)
	// GetFileExtension returns the recommended file extension.
	GetFileExtension() string
	// GetFormatName returns the human-readable format name.
	GetFormatName() string
}

// New returns the exporter for a format name.
func New(format string, corners fillet.Options) (Exporter, error) {
	switch format {
	case "svg":
		return NewSVGExporter(corners), nil
	case "json":
		return NewJSONExporter(corners), nil
	case "ascii":
		return NewASCIIExporter(corners), nil
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}
