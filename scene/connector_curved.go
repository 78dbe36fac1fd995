package scene

import (
	"math"

	"vex/geometry"
)

// curveSegments is the polyline sampling resolution for curved connectors.
const curveSegments = 24

// buildCurvedPath finishes the curved connector: a cubic Bézier whose
// control points extend from each endpoint along its dynamic cardinal
// facing, sampled into a polyline. Gap offset and marker shortening move
// along the facings like the bent kind.
func (c *Connector) buildCurvedPath(visStart, visEnd geometry.Point, startBound, endBound bool) {
	c.StartDir, c.EndDir = geometry.DefaultDynamicDirections(c.Start, c.End)

	if startBound {
		visStart = c.StartDir.Offset(visStart, attachGap)
	}
	if endBound {
		visEnd = c.EndDir.Offset(visEnd, attachGap)
	}
	c.PathStart, c.PathEnd = visStart, visEnd

	drawStart := visStart
	drawEnd := visEnd
	if l := c.startMarkerLength(); l > 0 {
		drawStart = c.StartDir.Offset(drawStart, l)
	}
	if l := c.endMarkerLength(); l > 0 {
		drawEnd = c.EndDir.Offset(drawEnd, l)
	}

	// Control handles reach half the endpoint distance into the curve,
	// with a floor so short connectors still bow visibly.
	reach := math.Max(geometry.Distance(drawStart, drawEnd)/2, GridSpacing)
	ctrl1 := c.StartDir.Offset(drawStart, reach)
	ctrl2 := c.EndDir.Offset(drawEnd, reach)

	c.Points = sampleCubic(drawStart, ctrl1, ctrl2, drawEnd, curveSegments)
}

// sampleCubic evaluates the cubic Bézier with the given control points at
// segments+1 evenly spaced parameter values.
func sampleCubic(p0, p1, p2, p3 geometry.Point, segments int) []geometry.Point {
	pts := make([]geometry.Point, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		cc := 3 * mt * t * t
		d := t * t * t
		pts[i] = geometry.Point{
			X: a*p0.X + b*p1.X + cc*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + cc*p2.Y + d*p3.Y,
		}
	}
	return pts
}
