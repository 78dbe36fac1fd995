// Package arrowhead defines the static marker registry used by connectors.
// Each definition is expressed in marker-local coordinates with the marker
// pointing along +X: the tip sits at (Width, Height/2) and the base at x=0.
// A connector places a marker by rotating it to the endpoint's orient angle
// and aligning (RefX, RefY) with the endpoint anchor, then shortens its
// stroke by the marker length so the line terminates at the base, not the
// tip.
package arrowhead

import (
	"math"

	"vex/geometry"
)

// Kind identifies an arrowhead style.
type Kind string

const (
	None             Kind = "none"
	Arrow            Kind = "arrow"
	Triangle         Kind = "triangle"
	UnfilledTriangle Kind = "unfilled-triangle"
	Diamond          Kind = "diamond"
	FilledDiamond    Kind = "filled-diamond"
	Circle           Kind = "circle"
	FilledCircle     Kind = "filled-circle"
	Line             Kind = "line"
)

// FillStroke is the sentinel fill value meaning "fill with the connector's
// current stroke color", keeping filled markers color-matched to the line.
const FillStroke = "stroke"

// backgroundFill is used by hollow markers that must occlude the line
// passing underneath them.
const backgroundFill = "#ffffff"

// Definition is an immutable marker record.
type Definition struct {
	Kind   Kind
	Width  float64
	Height float64
	// RefX/RefY is the marker-local point aligned with the connector's
	// endpoint anchor. RefX equals Width for every tip-forward marker so
	// the shortened stroke visually touches the marker base.
	RefX float64
	RefY float64
	// Outline is the marker-local outline path.
	Outline []geometry.Point
	Closed  bool
	// Fill is "" for outline-only markers, FillStroke to match the
	// connector stroke, or an explicit color.
	Fill string
}

// Length returns how far the connector stroke must be shortened so it ends
// at the marker base.
func (d Definition) Length() float64 {
	return d.Width
}

var registry = map[Kind]Definition{
	Arrow: {
		Kind: Arrow, Width: 10, Height: 8, RefX: 10, RefY: 4,
		Outline: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 8}},
		Closed:  false,
	},
	Triangle: {
		Kind: Triangle, Width: 10, Height: 8, RefX: 10, RefY: 4,
		Outline: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 8}},
		Closed:  true,
		Fill:    FillStroke,
	},
	UnfilledTriangle: {
		Kind: UnfilledTriangle, Width: 10, Height: 8, RefX: 10, RefY: 4,
		Outline: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 8}},
		Closed:  true,
		Fill:    backgroundFill,
	},
	Diamond: {
		Kind: Diamond, Width: 12, Height: 8, RefX: 12, RefY: 4,
		Outline: []geometry.Point{{X: 0, Y: 4}, {X: 6, Y: 0}, {X: 12, Y: 4}, {X: 6, Y: 8}},
		Closed:  true,
		Fill:    backgroundFill,
	},
	FilledDiamond: {
		Kind: FilledDiamond, Width: 12, Height: 8, RefX: 12, RefY: 4,
		Outline: []geometry.Point{{X: 0, Y: 4}, {X: 6, Y: 0}, {X: 12, Y: 4}, {X: 6, Y: 8}},
		Closed:  true,
		Fill:    FillStroke,
	},
	Circle: {
		Kind: Circle, Width: 8, Height: 8, RefX: 8, RefY: 4,
		Outline: circleOutline(4, 4, 4),
		Closed:  true,
		Fill:    backgroundFill,
	},
	FilledCircle: {
		Kind: FilledCircle, Width: 8, Height: 8, RefX: 8, RefY: 4,
		Outline: circleOutline(4, 4, 4),
		Closed:  true,
		Fill:    FillStroke,
	},
	Line: {
		Kind: Line, Width: 2, Height: 10, RefX: 2, RefY: 5,
		Outline: []geometry.Point{{X: 1, Y: 0}, {X: 1, Y: 10}},
		Closed:  false,
	},
}

// Lookup returns the definition for a marker kind. None and unknown kinds
// return ok=false: the connector draws no marker and applies no shortening.
func Lookup(kind Kind) (Definition, bool) {
	def, ok := registry[kind]
	return def, ok
}

// Kinds lists every registered marker kind in no particular order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry)+1)
	out = append(out, None)
	for k := range registry {
		out = append(out, k)
	}
	return out
}

func circleOutline(cx, cy, r float64) []geometry.Point {
	const segments = 16
	pts := make([]geometry.Point, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = geometry.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}
