package tool

import (
	"vex/geometry"
	"vex/scene"
)

// DrawConnector draws a new connector: pointer-down anchors the start,
// dragging previews the line, pointer-up anchors the end. Endpoints that
// land on a shape bind to it.
type DrawConnector struct {
	Base
	scene *scene.Scene

	// Kind is the connector variant the tool draws.
	Kind scene.ConnectorKind

	drawing   bool
	connector *scene.Connector
	target    CaptureTarget
}

// NewDrawConnector creates a connector-drawing tool for the given variant.
func NewDrawConnector(s *scene.Scene, kind scene.ConnectorKind) *DrawConnector {
	return &DrawConnector{scene: s, Kind: kind}
}

// Name returns the tool name.
func (t *DrawConnector) Name() string { return "draw-connector-" + string(t.Kind) }

func (t *DrawConnector) HandlePointerDown(ev PointerEvent) bool {
	if !t.IsActive() || ev.Button != ButtonLeft {
		return false
	}
	t.drawing = true
	t.connector = scene.NewConnector(t.Kind, ev.Point, ev.Point)
	if sh := t.scene.ShapeAt(ev.Point); sh != nil {
		t.connector.BindStart(sh.ID)
	}
	t.scene.AddConnector(t.connector)
	t.target = ev.Target
	capturePointer(t.target)
	return true
}

func (t *DrawConnector) HandlePointerMove(ev PointerEvent) bool {
	if !t.drawing {
		return false
	}
	t.connector.SetEndpoints(t.connector.Start, ev.Point)
	t.updateHover(ev.Point)
	return true
}

func (t *DrawConnector) HandlePointerUp(ev PointerEvent) bool {
	if !t.drawing {
		return false
	}
	t.connector.SetEndpoints(t.connector.Start, ev.Point)
	if sh := t.scene.ShapeAt(ev.Point); sh != nil {
		t.connector.BindEnd(sh.ID)
	}
	t.clearHover()
	t.scene.ClearSelection()
	t.connector.SetSelected(true)
	t.endGesture()
	return true
}

// CancelInteraction removes the in-progress connector from the scene.
func (t *DrawConnector) CancelInteraction() {
	if !t.drawing {
		return
	}
	t.scene.DeleteConnector(t.connector.ID)
	t.clearHover()
	t.endGesture()
}

// Deactivate cancels any in-progress draw.
func (t *DrawConnector) Deactivate() {
	t.CancelInteraction()
	t.Base.Deactivate()
}

func (t *DrawConnector) endGesture() {
	t.drawing = false
	t.connector = nil
	releasePointer(t.target)
	t.target = nil
}

// updateHover highlights the shape a dragged endpoint would bind to.
func (t *DrawConnector) updateHover(p geometry.Point) {
	hovered := t.scene.ShapeAt(p)
	for _, sh := range t.scene.Shapes {
		sh.SetHovered(sh == hovered)
	}
}

func (t *DrawConnector) clearHover() {
	for _, sh := range t.scene.Shapes {
		sh.SetHovered(false)
	}
}
