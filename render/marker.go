package render

import (
	"math"

	"vex/arrowhead"
	"vex/geometry"
)

// placeMarker transforms a marker definition's outline from marker-local
// coordinates into diagram space: the outline is shifted so the reference
// point sits at the origin, rotated by the orient angle, and translated to
// the anchor.
func placeMarker(def arrowhead.Definition, anchor geometry.Point, angleDeg float64) []geometry.Point {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	out := make([]geometry.Point, len(def.Outline))
	for i, p := range def.Outline {
		x := p.X - def.RefX
		y := p.Y - def.RefY
		out[i] = geometry.Point{
			X: anchor.X + x*cos - y*sin,
			Y: anchor.Y + x*sin + y*cos,
		}
	}
	return out
}
