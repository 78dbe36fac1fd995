package terminal

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"

	"vex/scene"
)

// pasteOffset is how far pasted entities shift from their originals so a
// paste over the source stays visible.
const pasteOffset = scene.GridSpacing

// clip is the clipboard payload: a JSON snapshot of the selected
// entities. Connector bindings are kept only when the bound shape is
// part of the same snapshot.
type clip struct {
	Shapes     []*scene.Shape     `json:"shapes,omitempty"`
	Connectors []*scene.Connector `json:"connectors,omitempty"`
}

// CopySelection writes the selected entities to the system clipboard and
// returns how many were copied.
func CopySelection(s *scene.Scene) (int, error) {
	payload := clip{
		Shapes:     s.SelectedShapes(),
		Connectors: s.SelectedConnectors(),
	}
	n := len(payload.Shapes) + len(payload.Connectors)
	if n == 0 {
		return 0, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode selection: %w", err)
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return 0, fmt.Errorf("failed to write clipboard: %w", err)
	}
	return n, nil
}

// Paste inserts the clipboard snapshot into the scene with fresh ids,
// offset from the originals, and selects the pasted entities.
func Paste(s *scene.Scene) (int, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read clipboard: %w", err)
	}
	var payload clip
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return 0, fmt.Errorf("clipboard does not hold a selection: %w", err)
	}
	return insertClip(s, payload), nil
}

// insertClip clones a snapshot into the scene and selects the copies.
func insertClip(s *scene.Scene, payload clip) int {
	s.ClearSelection()

	// Clone shapes first and remember old→new ids so copied connectors
	// rebind to the copies rather than the originals.
	idMap := make(map[string]string, len(payload.Shapes))
	for _, src := range payload.Shapes {
		copied := src.Clone()
		copied.Layout.X += pasteOffset
		copied.Layout.Y += pasteOffset
		copied.SetSelected(true)
		s.AddShape(copied)
		idMap[src.ID] = copied.ID
	}
	for _, src := range payload.Connectors {
		copied := src.Clone()
		copied.Start.X += pasteOffset
		copied.Start.Y += pasteOffset
		copied.End.X += pasteOffset
		copied.End.Y += pasteOffset
		copied.BindStart(idMap[src.StartShapeID])
		copied.BindEnd(idMap[src.EndShapeID])
		copied.SetSelected(true)
		s.AddConnector(copied)
	}
	return len(payload.Shapes) + len(payload.Connectors)
}
