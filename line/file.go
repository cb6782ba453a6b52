package line

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadMap reads a map file, validates it and assigns missing line IDs.
func LoadMap(filename string) (*Map, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing map file: %w", err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}
	EnsureLineIDs(&m)
	return &m, nil
}

// SaveMap writes a map back out as indented JSON.
func SaveMap(filename string, m *Map) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
