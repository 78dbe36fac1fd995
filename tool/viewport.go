package tool

import (
	"math"

	"vex/geometry"
	"vex/scene"
)

// Zoom limits for the viewport.
const (
	minScale = 0.1
	maxScale = 8.0
)

// Viewport is the scale/translation transform between screen space and
// diagram space. The engine itself always works in diagram space; the
// front end converts pointer coordinates through the viewport before
// events reach the tools.
type Viewport struct {
	scale       float64
	translation geometry.Point
	gridSpacing float64
}

// NewViewport creates an identity viewport with the default grid.
func NewViewport() *Viewport {
	return &Viewport{scale: 1, gridSpacing: scene.GridSpacing}
}

// Scale returns the current zoom factor.
func (v *Viewport) Scale() float64 { return v.scale }

// Translation returns the current pan offset in screen units.
func (v *Viewport) Translation() geometry.Point { return v.translation }

// SetTranslation replaces the pan offset.
func (v *Viewport) SetTranslation(t geometry.Point) { v.translation = t }

// ScreenToDiagram converts a screen position into diagram space.
func (v *Viewport) ScreenToDiagram(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: (p.X - v.translation.X) / v.scale,
		Y: (p.Y - v.translation.Y) / v.scale,
	}
}

// DiagramToScreen converts a diagram position into screen space.
func (v *Viewport) DiagramToScreen(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: p.X*v.scale + v.translation.X,
		Y: p.Y*v.scale + v.translation.Y,
	}
}

// ZoomAt multiplies the scale by factor while keeping the diagram point
// under the given screen position stationary.
func (v *Viewport) ZoomAt(screen geometry.Point, factor float64) {
	newScale := v.scale * factor
	if newScale < minScale {
		newScale = minScale
	} else if newScale > maxScale {
		newScale = maxScale
	}
	anchor := v.ScreenToDiagram(screen)
	v.scale = newScale
	v.translation = geometry.Point{
		X: screen.X - anchor.X*v.scale,
		Y: screen.Y - anchor.Y*v.scale,
	}
}

// Snap rounds a diagram point to the nearest grid crossing.
func (v *Viewport) Snap(p geometry.Point) geometry.Point {
	if v.gridSpacing <= 0 {
		return p
	}
	return geometry.Point{
		X: math.Round(p.X/v.gridSpacing) * v.gridSpacing,
		Y: math.Round(p.Y/v.gridSpacing) * v.gridSpacing,
	}
}
