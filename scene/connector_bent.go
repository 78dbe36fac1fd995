package scene

import (
	"vex/geometry"
)

// buildBentPath finishes the bent connector: an orthogonal elbow whose
// terminal segments leave each endpoint along its dynamic cardinal facing.
// Gap offset and marker shortening both move along those facings, keeping
// the terminal segments axis-aligned.
func (c *Connector) buildBentPath(visStart, visEnd geometry.Point, startBound, endBound bool) {
	c.StartDir, c.EndDir = geometry.DefaultDynamicDirections(c.Start, c.End)

	if startBound {
		visStart = c.StartDir.Offset(visStart, attachGap)
	}
	if endBound {
		// The end faces back toward the path; moving along its facing
		// pulls the endpoint away from the shape boundary.
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

	c.Points = elbowPoints(drawStart, drawEnd, c.StartDir)
}

// elbowPoints builds the two-corner orthogonal route between two points.
// Horizontal facings route through a vertical midline, vertical facings
// through a horizontal one.
func elbowPoints(start, end geometry.Point, startDir geometry.Direction) []geometry.Point {
	switch startDir {
	case geometry.North, geometry.South:
		midY := (start.Y + end.Y) / 2
		return []geometry.Point{
			start,
			{X: start.X, Y: midY},
			{X: end.X, Y: midY},
			end,
		}
	default:
		midX := (start.X + end.X) / 2
		return []geometry.Point{
			start,
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
			end,
		}
	}
}
