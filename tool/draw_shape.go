package tool

import (
	"vex/geometry"
	"vex/scene"
)

// Default size for shapes placed with a click instead of a drag.
const (
	defaultShapeWidth  = 6 * scene.GridSpacing
	defaultShapeHeight = 3 * scene.GridSpacing
)

// DrawShape places a new shape on pointer-down and sizes it while the
// pointer drags.
type DrawShape struct {
	Base
	scene *scene.Scene

	// Kind is the shape variant the tool places.
	Kind scene.ShapeKind

	drawing bool
	anchor  geometry.Point
	shape   *scene.Shape
	target  CaptureTarget
}

// NewDrawShape creates a shape-drawing tool for the given variant.
func NewDrawShape(s *scene.Scene, kind scene.ShapeKind) *DrawShape {
	return &DrawShape{scene: s, Kind: kind}
}

// Name returns the tool name.
func (t *DrawShape) Name() string { return "draw-" + string(t.Kind) }

func (t *DrawShape) HandlePointerDown(ev PointerEvent) bool {
	if !t.IsActive() || ev.Button != ButtonLeft {
		return false
	}
	t.drawing = true
	t.anchor = ev.Point
	t.shape = scene.NewShape(t.Kind, geometry.RectFromCorners(ev.Point, ev.Point))
	t.scene.AddShape(t.shape)
	t.target = ev.Target
	capturePointer(t.target)
	return true
}

func (t *DrawShape) HandlePointerMove(ev PointerEvent) bool {
	if !t.drawing {
		return false
	}
	t.shape.SetLayout(geometry.RectFromCorners(t.anchor, ev.Point))
	return true
}

func (t *DrawShape) HandlePointerUp(ev PointerEvent) bool {
	if !t.drawing {
		return false
	}
	// A plain click grows to the default size instead of leaving a
	// near-invisible sliver.
	if t.shape.Layout.Width < 2 && t.shape.Layout.Height < 2 {
		t.shape.SetLayout(geometry.Rect{
			X:      t.anchor.X - defaultShapeWidth/2,
			Y:      t.anchor.Y - defaultShapeHeight/2,
			Width:  defaultShapeWidth,
			Height: defaultShapeHeight,
		})
	}
	t.scene.ClearSelection()
	t.shape.SetSelected(true)
	t.endGesture()
	return true
}

// CancelInteraction removes the in-progress shape from the scene.
func (t *DrawShape) CancelInteraction() {
	if !t.drawing {
		return
	}
	t.scene.DeleteShape(t.shape.ID)
	t.endGesture()
}

// Deactivate cancels any in-progress placement.
func (t *DrawShape) Deactivate() {
	t.CancelInteraction()
	t.Base.Deactivate()
}

func (t *DrawShape) endGesture() {
	t.drawing = false
	t.shape = nil
	releasePointer(t.target)
	t.target = nil
}
