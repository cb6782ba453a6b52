// Package line models metro lines over a shared set of stations and
// drives the routing engine across each line's station sequence.
package line

import (
	"fmt"

	"github.com/google/uuid"

	"octoline/core"
	"octoline/routing"
)

// Line is an ordered run of stations sharing a color. Lines are
// immutable once built; editing a line means rebuilding it, so routed
// segments may be cached by identity.
type Line struct {
	ID       uuid.UUID `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Color    string    `json:"color,omitempty"`
	Stations []int     `json:"stations"`
}

// Map is a complete set of stations and the lines connecting them.
type Map struct {
	Stations []core.Station `json:"stations"`
	Lines    []Line         `json:"lines"`
}

// Station looks up a station by ID.
func (m *Map) Station(id int) (core.Station, bool) {
	for _, s := range m.Stations {
		if s.ID == id {
			return s, true
		}
	}
	return core.Station{}, false
}

// EnsureLineIDs assigns a fresh UUID to every line that has none, so
// lines loaded from hand-written files still get a stable identity.
func EnsureLineIDs(m *Map) {
	for i := range m.Lines {
		if m.Lines[i].ID == uuid.Nil {
			m.Lines[i].ID = uuid.New()
		}
	}
}

// Validate checks that station IDs are unique and that every line
// references existing stations and has at least two of them.
func Validate(m *Map) error {
	seen := make(map[int]bool)
	for _, s := range m.Stations {
		if seen[s.ID] {
			return fmt.Errorf("duplicate station ID: %d", s.ID)
		}
		seen[s.ID] = true
	}

	for _, l := range m.Lines {
		if len(l.Stations) < 2 {
			return fmt.Errorf("line %q needs at least two stations", l.Name)
		}
		for _, id := range l.Stations {
			if !seen[id] {
				return fmt.Errorf("line %q references non-existent station: %d", l.Name, id)
			}
		}
	}
	return nil
}

// Route routes every consecutive station pair of a line in order. The
// first pair is routed unconstrained; each following pair takes the
// previous segment's exit direction as its entry, which keeps the line
// visually continuous through shared stations.
func Route(m *Map, l Line) ([]core.Segment, error) {
	if len(l.Stations) < 2 {
		return nil, fmt.Errorf("line %q needs at least two stations", l.Name)
	}

	router := routing.NewRouter()
	segments := make([]core.Segment, 0, len(l.Stations)-1)
	var entry *core.Direction

	for i := 0; i < len(l.Stations)-1; i++ {
		from, ok := m.Station(l.Stations[i])
		if !ok {
			return nil, fmt.Errorf("line %q references non-existent station: %d", l.Name, l.Stations[i])
		}
		to, ok := m.Station(l.Stations[i+1])
		if !ok {
			return nil, fmt.Errorf("line %q references non-existent station: %d", l.Name, l.Stations[i+1])
		}

		seg, err := router.RouteSegment(from.Point(), to.Point(), entry)
		if err != nil {
			return nil, fmt.Errorf("routing %q leg %d: %w", l.Name, i, err)
		}
		segments = append(segments, seg)

		exit := seg.Exit
		entry = &exit
	}
	return segments, nil
}

// RouteAll routes every line of a map, keyed by line ID.
func RouteAll(m *Map) (map[uuid.UUID][]core.Segment, error) {
	routed := make(map[uuid.UUID][]core.Segment, len(m.Lines))
	for _, l := range m.Lines {
		segs, err := Route(m, l)
		if err != nil {
			return nil, err
		}
		routed[l.ID] = segs
	}
	return routed, nil
}
