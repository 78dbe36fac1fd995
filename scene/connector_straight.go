package scene

import (
	"vex/geometry"
)

// buildStraightPath finishes the straight connector: gap offset along the
// raw start→end direction for bound ends, then marker shortening along the
// same vector. The straight kind keeps NoDirection facings so marker
// orientation uses the exact segment angle.
func (c *Connector) buildStraightPath(visStart, visEnd geometry.Point, startBound, endBound bool) {
	c.StartDir = geometry.NoDirection
	c.EndDir = geometry.NoDirection

	ux, uy, ok := unitVector(c.Start, c.End)
	if !ok {
		// Coincident anchors: nothing to offset along.
		c.PathStart, c.PathEnd = visStart, visEnd
		c.Points = []geometry.Point{visStart, visEnd}
		return
	}

	if startBound {
		visStart = geometry.Point{X: visStart.X + ux*attachGap, Y: visStart.Y + uy*attachGap}
	}
	if endBound {
		visEnd = geometry.Point{X: visEnd.X - ux*attachGap, Y: visEnd.Y - uy*attachGap}
	}
	c.PathStart, c.PathEnd = visStart, visEnd

	drawStart, drawEnd := visStart, visEnd
	if l := c.startMarkerLength(); l > 0 {
		drawStart = geometry.Point{X: drawStart.X + ux*l, Y: drawStart.Y + uy*l}
	}
	if l := c.endMarkerLength(); l > 0 {
		drawEnd = geometry.Point{X: drawEnd.X - ux*l, Y: drawEnd.Y - uy*l}
	}
	c.Points = []geometry.Point{drawStart, drawEnd}
}

// unitVector returns the normalized direction from a to b, or ok=false for
// a near-zero-length segment.
func unitVector(a, b geometry.Point) (ux, uy float64, ok bool) {
	d := geometry.Distance(a, b)
	if d < 1e-9 {
		return 0, 0, false
	}
	return (b.X - a.X) / d, (b.Y - a.Y) / d, true
}
