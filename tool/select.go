package tool

import (
	"vex/geometry"
	"vex/scene"
)

// connectorHitTolerance is how close a click must land to a connector
// path to select it, in diagram units.
const connectorHitTolerance = 4.0

type selectMode int

const (
	selectIdle selectMode = iota
	selectMoving
	selectBanding
)

// Select picks entities by click, moves selected shapes by drag, and
// selects by rubber-band rectangle on empty canvas.
type Select struct {
	Base
	scene *scene.Scene

	mode       selectMode
	pressPoint geometry.Point
	target     CaptureTarget

	// moving holds each dragged shape with its layout at gesture start;
	// every move applies the total delta from the press point, never an
	// incremental one.
	moving []movingShape
	// band is the current rubber-band rectangle while selectBanding.
	band geometry.Rect
}

type movingShape struct {
	shape       *scene.Shape
	startLayout geometry.Rect
}

// NewSelect creates a select tool over a scene.
func NewSelect(s *scene.Scene) *Select {
	return &Select{scene: s}
}

// Name returns the tool name.
func (t *Select) Name() string { return "select" }

// Band returns the rubber-band rectangle and whether one is in progress.
func (t *Select) Band() (geometry.Rect, bool) {
	return t.band, t.mode == selectBanding
}

func (t *Select) HandlePointerDown(ev PointerEvent) bool {
	if !t.IsActive() || ev.Button != ButtonLeft {
		return false
	}
	t.pressPoint = ev.Point
	t.target = ev.Target

	if sh := t.scene.ShapeAt(ev.Point); sh != nil {
		if !sh.State.Selected {
			if !ev.Mods.Shift {
				t.scene.ClearSelection()
			}
			sh.SetSelected(true)
		}
		t.beginMove()
		capturePointer(t.target)
		return true
	}

	if c := t.scene.ConnectorAt(ev.Point, connectorHitTolerance); c != nil {
		if !ev.Mods.Shift {
			t.scene.ClearSelection()
		}
		c.SetSelected(true)
		return true
	}

	if !ev.Mods.Shift {
		t.scene.ClearSelection()
	}
	t.mode = selectBanding
	t.band = geometry.RectFromCorners(ev.Point, ev.Point)
	capturePointer(t.target)
	return true
}

func (t *Select) HandlePointerMove(ev PointerEvent) bool {
	switch t.mode {
	case selectMoving:
		delta := ev.Point.Sub(t.pressPoint)
		for _, m := range t.moving {
			r := m.startLayout
			r.X += delta.X
			r.Y += delta.Y
			m.shape.SetLayout(r)
			t.scene.TouchConnectorsBoundTo(m.shape.ID)
		}
		return true
	case selectBanding:
		t.band = geometry.RectFromCorners(t.pressPoint, ev.Point)
		return true
	default:
		t.updateHover(ev.Point)
		return false
	}
}

func (t *Select) HandlePointerUp(ev PointerEvent) bool {
	switch t.mode {
	case selectMoving:
		t.finishGesture()
		return true
	case selectBanding:
		t.applyBandSelection()
		t.finishGesture()
		return true
	default:
		return false
	}
}

// HandleKeyDown deletes the selection on Delete/Backspace.
func (t *Select) HandleKeyDown(ev KeyEvent) bool {
	if !t.IsActive() {
		return false
	}
	if ev.Key != "Delete" && ev.Key != "Backspace" {
		return false
	}
	// Snapshot ids first; deletion mutates the collections.
	var shapeIDs, connectorIDs []string
	for _, sh := range t.scene.SelectedShapes() {
		shapeIDs = append(shapeIDs, sh.ID)
	}
	for _, c := range t.scene.SelectedConnectors() {
		connectorIDs = append(connectorIDs, c.ID)
	}
	if len(shapeIDs) == 0 && len(connectorIDs) == 0 {
		return false
	}
	for _, id := range connectorIDs {
		t.scene.DeleteConnector(id)
	}
	for _, id := range shapeIDs {
		t.scene.DeleteShape(id)
	}
	return true
}

// CancelInteraction terminates a move or band gesture. Moved shapes snap
// back to their gesture-start layouts.
func (t *Select) CancelInteraction() {
	if t.mode == selectMoving {
		for _, m := range t.moving {
			m.shape.SetLayout(m.startLayout)
			t.scene.TouchConnectorsBoundTo(m.shape.ID)
		}
	}
	t.finishGesture()
}

// Deactivate terminates any gesture before clearing activation.
func (t *Select) Deactivate() {
	t.CancelInteraction()
	t.Base.Deactivate()
}

func (t *Select) beginMove() {
	t.mode = selectMoving
	t.moving = t.moving[:0]
	for _, sh := range t.scene.SelectedShapes() {
		t.moving = append(t.moving, movingShape{shape: sh, startLayout: sh.Layout})
	}
}

func (t *Select) applyBandSelection() {
	for _, sh := range t.scene.Shapes {
		if geometry.RectsIntersect(sh.Layout, t.band) {
			sh.SetSelected(true)
		}
	}
	for _, c := range t.scene.Connectors {
		if c.IntersectsRect(t.band) {
			c.SetSelected(true)
		}
	}
}

func (t *Select) finishGesture() {
	t.mode = selectIdle
	t.moving = t.moving[:0]
	t.band = geometry.Rect{}
	releasePointer(t.target)
	t.target = nil
}

func (t *Select) updateHover(p geometry.Point) {
	hovered := t.scene.ShapeAt(p)
	for _, sh := range t.scene.Shapes {
		sh.SetHovered(sh == hovered)
	}
}
