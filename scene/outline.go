package scene

import (
	"math"

	"vex/geometry"
)

// ellipseSegments is the sampling resolution for curved outlines. High
// enough that the polyline is indistinguishable at typical zoom levels.
const ellipseSegments = 32

// Outline builds the closed outline path for the shape from its layout.
// Dimensions are clamped to at least one unit first, so the result is never
// a degenerate path.
func (s *Shape) Outline() []geometry.Point {
	r := s.clampedLayout()
	switch s.Kind {
	case KindEllipse:
		return ellipseOutline(r, ellipseSegments)
	case KindPolygon:
		sides := s.Sides
		if sides < 3 {
			sides = 6
		}
		return ellipseOutline(r, sides)
	case KindTriangle, KindTriangleDown, KindTriangleLeft, KindTriangleRight:
		apex, baseA, baseB := s.trianglePoints(r)
		return []geometry.Point{apex, baseA, baseB}
	default:
		return []geometry.Point{
			{X: r.X, Y: r.Y},
			{X: r.Right(), Y: r.Y},
			{X: r.Right(), Y: r.Bottom()},
			{X: r.X, Y: r.Bottom()},
		}
	}
}

// TextAnchor returns the point the shape's label is centered on. Most kinds
// use the layout center; the triangle family pulls the anchor toward the
// base so the label stays inside the visible area, landing on the triangle
// centroid (two thirds along the median from the apex).
func (s *Shape) TextAnchor() geometry.Point {
	switch s.Kind {
	case KindTriangle, KindTriangleDown, KindTriangleLeft, KindTriangleRight:
		r := s.clampedLayout()
		apex, baseA, baseB := s.trianglePoints(r)
		baseMid := geometry.PointOnSegment(baseA, baseB, 0.5)
		return geometry.PointOnSegment(apex, baseMid, 2.0/3.0)
	default:
		return s.Center()
	}
}

// trianglePoints returns the apex and the two base corners for the
// triangle family, per pointing direction.
func (s *Shape) trianglePoints(r geometry.Rect) (apex, baseA, baseB geometry.Point) {
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	switch s.Kind {
	case KindTriangleDown:
		return geometry.Point{X: cx, Y: r.Bottom()},
			geometry.Point{X: r.X, Y: r.Y},
			geometry.Point{X: r.Right(), Y: r.Y}
	case KindTriangleLeft:
		return geometry.Point{X: r.X, Y: cy},
			geometry.Point{X: r.Right(), Y: r.Y},
			geometry.Point{X: r.Right(), Y: r.Bottom()}
	case KindTriangleRight:
		return geometry.Point{X: r.Right(), Y: cy},
			geometry.Point{X: r.X, Y: r.Y},
			geometry.Point{X: r.X, Y: r.Bottom()}
	default: // KindTriangle points up
		return geometry.Point{X: cx, Y: r.Y},
			geometry.Point{X: r.X, Y: r.Bottom()},
			geometry.Point{X: r.Right(), Y: r.Bottom()}
	}
}

// ellipseOutline samples the ellipse inscribed in r. It doubles as the
// regular-polygon builder: a polygon is the same sampling at its vertex
// count, starting from the top.
func ellipseOutline(r geometry.Rect, segments int) []geometry.Point {
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	rx := r.Width / 2
	ry := r.Height / 2
	pts := make([]geometry.Point, segments)
	for i := 0; i < segments; i++ {
		a := 2*math.Pi*float64(i)/float64(segments) - math.Pi/2
		pts[i] = geometry.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
