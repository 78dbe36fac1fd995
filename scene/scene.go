// Package scene contains the entity model of the diagram editor: shapes,
// connectors, and the Scene that owns them. All geometry is in diagram
// space. Nothing here is safe for concurrent mutation; the editor is
// single-threaded and callers snapshot ids before bulk operations.
package scene

import (
	"github.com/google/uuid"

	"vex/geometry"
)

// Metadata contains optional scene metadata.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Created string `json:"created,omitempty"`
	Version string `json:"version,omitempty"`
}

// Scene owns the ordered collections of shapes and connectors and is the
// id-lookup authority connectors resolve their attachments through.
type Scene struct {
	Shapes     []*Shape     `json:"shapes"`
	Connectors []*Connector `json:"connectors"`
	Metadata   Metadata     `json:"metadata,omitempty"`
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddShape appends a shape to the scene.
func (s *Scene) AddShape(shape *Shape) {
	if shape.ID == "" {
		shape.ID = uuid.NewString()
	}
	s.Shapes = append(s.Shapes, shape)
}

// AddConnector appends a connector to the scene.
func (s *Scene) AddConnector(c *Connector) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.Connectors = append(s.Connectors, c)
}

// ShapeByID returns the shape with the given id, or nil.
func (s *Scene) ShapeByID(id string) *Shape {
	for _, shape := range s.Shapes {
		if shape.ID == id {
			return shape
		}
	}
	return nil
}

// ConnectorByID returns the connector with the given id, or nil.
func (s *Scene) ConnectorByID(id string) *Connector {
	for _, c := range s.Connectors {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ShapeAt returns the topmost shape containing the point, or nil. Later
// shapes draw on top, so the search runs back to front.
func (s *Scene) ShapeAt(p geometry.Point) *Shape {
	for i := len(s.Shapes) - 1; i >= 0; i-- {
		if s.Shapes[i].Contains(p) {
			return s.Shapes[i]
		}
	}
	return nil
}

// ConnectorAt returns the topmost connector within tolerance of the point,
// or nil.
func (s *Scene) ConnectorAt(p geometry.Point, tolerance float64) *Connector {
	probe := geometry.Rect{
		X:      p.X - tolerance,
		Y:      p.Y - tolerance,
		Width:  tolerance * 2,
		Height: tolerance * 2,
	}
	for i := len(s.Connectors) - 1; i >= 0; i-- {
		if s.Connectors[i].IntersectsRect(probe) {
			return s.Connectors[i]
		}
	}
	return nil
}

// DeleteShape removes a shape and detaches any connectors bound to it; the
// connectors keep their current raw anchors and render unclipped.
func (s *Scene) DeleteShape(id string) {
	s.removeShape(id)
	for _, c := range s.Connectors {
		if c.StartShapeID == id {
			c.BindStart("")
		}
		if c.EndShapeID == id {
			c.BindEnd("")
		}
	}
}

// DeleteShapeCascade removes a shape and every connector bound to it.
func (s *Scene) DeleteShapeCascade(id string) {
	s.removeShape(id)

	// Snapshot ids first: deleting while iterating the live slice would
	// skip entries.
	var doomed []string
	for _, c := range s.Connectors {
		if c.StartShapeID == id || c.EndShapeID == id {
			doomed = append(doomed, c.ID)
		}
	}
	for _, cid := range doomed {
		s.DeleteConnector(cid)
	}
}

func (s *Scene) removeShape(id string) {
	for i, shape := range s.Shapes {
		if shape.ID == id {
			s.Shapes = append(s.Shapes[:i], s.Shapes[i+1:]...)
			return
		}
	}
}

// DeleteConnector removes a connector from the scene.
func (s *Scene) DeleteConnector(id string) {
	for i, c := range s.Connectors {
		if c.ID == id {
			s.Connectors = append(s.Connectors[:i], s.Connectors[i+1:]...)
			return
		}
	}
}

// SetConnectorKind replaces a connector with an equivalent instance of a
// different kind, preserving its id and bindings. The path-building
// algorithm is fixed per instance, so changing it means replacement rather
// than mutation.
func (s *Scene) SetConnectorKind(id string, kind ConnectorKind) *Connector {
	for i, c := range s.Connectors {
		if c.ID != id {
			continue
		}
		if c.Kind == kind {
			return c
		}
		replacement := *c
		replacement.Kind = kind
		replacement.Points = nil
		replacement.InsideStart = nil
		replacement.InsideEnd = nil
		replacement.State.NeedsRender = true
		s.Connectors[i] = &replacement
		return &replacement
	}
	return nil
}

// UpdatePaths recomputes the derived geometry of every dirty connector.
func (s *Scene) UpdatePaths() {
	for _, c := range s.Connectors {
		if c.State.NeedsRender {
			c.UpdatePath(s)
		}
	}
}

// TouchConnectorsBoundTo dirties every connector attached to a shape, so
// moving or resizing the shape refreshes their clip geometry on the next
// render pass.
func (s *Scene) TouchConnectorsBoundTo(shapeID string) {
	for _, c := range s.Connectors {
		if c.StartShapeID == shapeID || c.EndShapeID == shapeID {
			c.MarkDirty()
		}
	}
}

// ClearSelection deselects every entity.
func (s *Scene) ClearSelection() {
	for _, shape := range s.Shapes {
		shape.SetSelected(false)
	}
	for _, c := range s.Connectors {
		c.SetSelected(false)
	}
}

// SelectedShapes returns the currently selected shapes.
func (s *Scene) SelectedShapes() []*Shape {
	var out []*Shape
	for _, shape := range s.Shapes {
		if shape.State.Selected {
			out = append(out, shape)
		}
	}
	return out
}

// SelectedConnectors returns the currently selected connectors.
func (s *Scene) SelectedConnectors() []*Connector {
	var out []*Connector
	for _, c := range s.Connectors {
		if c.State.Selected {
			out = append(out, c)
		}
	}
	return out
}

// MarkAllDirty flags every entity for re-render, e.g. after loading a file
// or restoring a history state.
func (s *Scene) MarkAllDirty() {
	for _, shape := range s.Shapes {
		shape.MarkDirty()
	}
	for _, c := range s.Connectors {
		c.MarkDirty()
	}
}

// Bounds returns the smallest rectangle covering every entity, or ok=false
// for an empty scene.
func (s *Scene) Bounds() (geometry.Rect, bool) {
	var bounds geometry.Rect
	found := false
	extend := func(r geometry.Rect) {
		if !found {
			bounds = r
			found = true
			return
		}
		bounds = bounds.Union(r)
	}
	for _, shape := range s.Shapes {
		extend(shape.Layout)
	}
	for _, c := range s.Connectors {
		extend(geometry.RectFromCorners(c.Start, c.End))
	}
	return bounds, found
}

// Clone creates a deep copy of the scene.
func (s *Scene) Clone() *Scene {
	if s == nil {
		return nil
	}
	clone := &Scene{
		Shapes:     make([]*Shape, len(s.Shapes)),
		Connectors: make([]*Connector, len(s.Connectors)),
		Metadata:   s.Metadata,
	}
	for i, shape := range s.Shapes {
		copied := *shape
		clone.Shapes[i] = &copied
	}
	for i, c := range s.Connectors {
		copied := *c
		copied.Points = append([]geometry.Point(nil), c.Points...)
		copied.InsideStart = append([]geometry.Point(nil), c.InsideStart...)
		copied.InsideEnd = append([]geometry.Point(nil), c.InsideEnd...)
		clone.Connectors[i] = &copied
	}
	return clone
}
