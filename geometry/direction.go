package geometry

import "math"

// Direction represents a cardinal direction a connector endpoint faces.
type Direction int

const (
	// NoDirection means the endpoint has no known facing; marker angles
	// fall back to the raw segment angle.
	NoDirection Direction = iota
	North
	East
	South
	West
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "None"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Offset returns p moved dist units along the direction. Y grows downward,
// so North moves toward smaller y. NoDirection leaves the point unchanged.
func (d Direction) Offset(p Point, dist float64) Point {
	switch d {
	case North:
		return Point{X: p.X, Y: p.Y - dist}
	case South:
		return Point{X: p.X, Y: p.Y + dist}
	case West:
		return Point{X: p.X - dist, Y: p.Y}
	case East:
		return Point{X: p.X + dist, Y: p.Y}
	default:
		return p
	}
}

// DefaultDynamicDirections decides which cardinal direction each endpoint of
// a connector faces, from the dominant axis of travel: the start faces the
// direction of travel and the end faces back toward the start. Vertical wins
// only when |dy| strictly exceeds |dx|, so diagonal ties resolve to
// horizontal.
func DefaultDynamicDirections(start, end Point) (Direction, Direction) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if math.Abs(dy) > math.Abs(dx) {
		if dy > 0 {
			return South, North
		}
		return North, South
	}
	if dx > 0 {
		return East, West
	}
	return West, East
}

// MarkerOrientAngle returns the rotation angle in degrees for an arrowhead
// marker at one endpoint of a connector. When the endpoint's facing is
// known the angle is fixed per direction so that the marker points back
// into the path. With no known facing it falls back to the raw start→end
// angle, rotated a half turn for the start marker, which must point toward
// the start rather than the end.
func MarkerOrientAngle(dir Direction, start, end Point, isStart bool) float64 {
	switch dir {
	case North:
		return 90
	case South:
		return 270
	case West:
		return 0
	case East:
		return 180
	}
	angle := math.Atan2(end.Y-start.Y, end.X-start.X) * 180 / math.Pi
	if isStart {
		angle += 180
	}
	return angle
}
