package scene

import (
	"github.com/google/uuid"

	"vex/geometry"
)

// ShapeKind identifies a shape variant.
type ShapeKind string

const (
	KindRectangle     ShapeKind = "rectangle"
	KindEllipse       ShapeKind = "ellipse"
	KindPolygon       ShapeKind = "polygon"
	KindTriangle      ShapeKind = "triangle"
	KindTriangleDown  ShapeKind = "triangle-down"
	KindTriangleLeft  ShapeKind = "triangle-left"
	KindTriangleRight ShapeKind = "triangle-right"
)

// Shape is a geometric node in the scene. The id is assigned at creation
// and never changes; cloning assigns a fresh one.
type Shape struct {
	ID         string        `json:"id"`
	Kind       ShapeKind     `json:"kind"`
	Layout     geometry.Rect `json:"layout"`
	Appearance Appearance    `json:"appearance"`
	Label      string        `json:"label,omitempty"`
	// Sides is the vertex count for polygon shapes; other kinds ignore it.
	Sides int `json:"sides,omitempty"`

	State State `json:"-"`
}

// NewShape creates a shape of the given kind with default appearance. New
// shapes start dirty so the first render pass picks them up.
func NewShape(kind ShapeKind, layout geometry.Rect) *Shape {
	s := &Shape{
		ID:         uuid.NewString(),
		Kind:       kind,
		Layout:     layout,
		Appearance: DefaultAppearance(),
	}
	if kind == KindPolygon {
		s.Sides = 6
	}
	s.State.Resizable = true
	s.State.NeedsRender = true
	return s
}

// Clone returns a deep, independently mutable copy with a fresh id.
func (s *Shape) Clone() *Shape {
	clone := *s
	clone.ID = uuid.NewString()
	clone.State.NeedsRender = true
	clone.State.Selected = false
	return &clone
}

// Center returns the center of the shape's layout rectangle.
func (s *Shape) Center() geometry.Point {
	return s.Layout.Center()
}

// Contains checks if a point is inside the shape's layout rectangle.
func (s *Shape) Contains(p geometry.Point) bool {
	return s.Layout.Contains(p)
}

// MarkDirty flags the shape for recomputation on the next render pass.
func (s *Shape) MarkDirty() {
	s.State.NeedsRender = true
}

// MoveBy translates the shape. Locked shapes do not move.
func (s *Shape) MoveBy(delta geometry.Point) {
	if s.State.Locked {
		return
	}
	s.Layout.X += delta.X
	s.Layout.Y += delta.Y
	s.MarkDirty()
}

// SetLayout replaces the layout rectangle.
func (s *Shape) SetLayout(r geometry.Rect) {
	s.Layout = r
	s.MarkDirty()
}

// SetSelected toggles selection and flags a re-render, since selection
// affects which indicator layers are visible.
func (s *Shape) SetSelected(selected bool) {
	if s.State.Selected == selected {
		return
	}
	s.State.Selected = selected
	s.MarkDirty()
}

// SetHovered toggles the hover flag.
func (s *Shape) SetHovered(hovered bool) {
	if s.State.Hovered == hovered {
		return
	}
	s.State.Hovered = hovered
	s.MarkDirty()
}

// clampedLayout returns the layout with both dimensions forced to at least
// one unit, so a shape mid-drag still renders a visible sliver rather than
// a zero-length path.
func (s *Shape) clampedLayout() geometry.Rect {
	r := s.Layout
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	return r
}
