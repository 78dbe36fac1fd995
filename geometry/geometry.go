// Package geometry contains the fundamental spatial types and the stateless
// helpers used by shapes, connectors and tools. All coordinates are in
// diagram space; the viewport transform between screen and diagram space
// lives with the tools, not here.
package geometry

import "math"

// Point represents a 2D coordinate in diagram space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Rect represents an axis-aligned rectangle. Width and Height are never
// negative.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains checks if a point is inside the rectangle, boundary included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.Right(), other.Right())
	maxY := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// RectsIntersect reports whether two rectangles overlap, boundary touches
// included.
func RectsIntersect(a, b Rect) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

// RectFromCorners builds a rectangle from two opposite corner points in any
// order. Used by drag gestures, where the user may drag in any direction.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// PointOnSegment returns the point at parametric position t along the
// segment from a to b. t is not clamped.
func PointOnSegment(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// ClosestPositionOnSegment projects p onto the segment from a to b and
// returns the parametric position of the projection, clamped to [0,1].
// Near-zero-length segments return 0.5; they arise routinely while a
// connector endpoint is being dragged over its own start.
func ClosestPositionOnSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-9 {
		return 0.5
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	return math.Max(0, math.Min(1, t))
}
