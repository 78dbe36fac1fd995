package geometry

import "math"

// intersectTolerance deduplicates boundary crossings that land on (nearly)
// the same point, e.g. a segment passing exactly through a rectangle corner
// crosses two edges at one location.
const intersectTolerance = 1e-3

// segmentIntersection computes the intersection of segments a1→a2 and b1→b2
// using the parametric determinant method. It returns the intersection
// point, the parametric position along a1→a2, and whether the segments
// actually cross (both parameters in [0,1]). Parallel segments never cross.
func segmentIntersection(a1, a2, b1, b2 Point) (Point, float64, bool) {
	d1x := a2.X - a1.X
	d1y := a2.Y - a1.Y
	d2x := b2.X - b1.X
	d2y := b2.Y - b1.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Point{}, 0, false
	}

	t := ((b1.X-a1.X)*d2y - (b1.Y-a1.Y)*d2x) / denom
	u := ((b1.X-a1.X)*d1y - (b1.Y-a1.Y)*d1x) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, 0, false
	}
	return Point{X: a1.X + t*d1x, Y: a1.Y + t*d1y}, t, true
}

// rectEdges returns the four boundary segments of a rectangle.
func rectEdges(r Rect) [4][2]Point {
	tl := Point{X: r.X, Y: r.Y}
	tr := Point{X: r.Right(), Y: r.Y}
	br := Point{X: r.Right(), Y: r.Bottom()}
	bl := Point{X: r.X, Y: r.Bottom()}
	return [4][2]Point{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

// LineRectIntersection returns the point where the segment p1→p2 crosses the
// boundary of rect. When p1 lies inside the rectangle the exit crossing is
// returned (the one furthest along the segment); otherwise the entry
// crossing (the one nearest to p1). Returns nil when the segment never
// touches the boundary.
func LineRectIntersection(p1, p2 Point, rect Rect) *Point {
	type crossing struct {
		point Point
		t     float64
	}
	var crossings []crossing

	for _, edge := range rectEdges(rect) {
		pt, t, ok := segmentIntersection(p1, p2, edge[0], edge[1])
		if !ok {
			continue
		}
		dup := false
		for _, c := range crossings {
			if Distance(c.point, pt) < intersectTolerance {
				dup = true
				break
			}
		}
		if !dup {
			crossings = append(crossings, crossing{point: pt, t: t})
		}
	}

	if len(crossings) == 0 {
		return nil
	}

	inside := rect.Contains(p1)
	best := crossings[0]
	for _, c := range crossings[1:] {
		if inside && c.t > best.t {
			best = c
		} else if !inside && c.t < best.t {
			best = c
		}
	}
	return &best.point
}

// LineIntersectsRect reports whether the segment p1→p2 touches the
// rectangle. Used for drag-rectangle selection hit testing.
func LineIntersectsRect(p1, p2 Point, rect Rect) bool {
	if rect.Contains(p1) || rect.Contains(p2) {
		return true
	}

	// Bounding-box separation rules out most segments cheaply.
	if math.Max(p1.X, p2.X) < rect.X || math.Min(p1.X, p2.X) > rect.Right() ||
		math.Max(p1.Y, p2.Y) < rect.Y || math.Min(p1.Y, p2.Y) > rect.Bottom() {
		return false
	}

	for _, edge := range rectEdges(rect) {
		if _, _, ok := segmentIntersection(p1, p2, edge[0], edge[1]); ok {
			return true
		}
	}
	return false
}
