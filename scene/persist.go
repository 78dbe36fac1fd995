package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// fileVersion is written into saved scene metadata.
const fileVersion = "1"

// Save serializes the scene snapshot: ids, kinds, layouts and anchors,
// appearance, arrowhead kinds and bindings. Derived path data and UI state
// are never persisted.
func (s *Scene) Save(path string) error {
	if s.Metadata.Created == "" {
		s.Metadata.Created = time.Now().UTC().Format(time.RFC3339)
	}
	s.Metadata.Version = fileVersion

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads a scene file. Entities missing an id are assigned a fresh one
// so older files stay loadable, and everything starts dirty so the first
// render pass rebuilds all derived geometry.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, shape := range s.Shapes {
		if shape.ID == "" {
			shape.ID = uuid.NewString()
		}
	}
	for _, c := range s.Connectors {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Kind == "" {
			c.Kind = KindStraight
		}
	}
	s.MarkAllDirty()
	return &s, nil
}
