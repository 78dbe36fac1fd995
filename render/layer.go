// Package render implements the dirty-flag render pipeline. Each entity
// owns a LayerSet of paint-ready layers; the Pipeline rebuilds the layers
// of dirty entities, and the Rasterizer paints layer sets through
// fogleman/gg without knowing anything about shapes or connectors.
package render

import (
	"vex/geometry"
)

// Path is one paintable polyline in diagram space.
type Path struct {
	Points []geometry.Point
	Closed bool
}

// Layer is a set of paths sharing paint attributes.
type Layer struct {
	Visible       bool
	Paths         []Path
	StrokeColor   string
	StrokeWidth   float64
	StrokeOpacity float64
	// Dash is the on/off pattern in diagram units; empty means solid.
	Dash []float64
	// FillColor is empty for unfilled layers.
	FillColor   string
	FillOpacity float64
}

// LayerSet is the full paint output of one entity, in paint order: the
// solid fill and fill overlay go under the outline stroke, the stroke
// overlay on top, and the inside-segment indicators over everything.
type LayerSet struct {
	// Primary carries the standard-style path, stroke and fill.
	Primary Layer
	// FillOverlay carries hachure or cross-hatch strokes when the fill
	// style asks for a hand-drawn interior.
	FillOverlay Layer
	// StrokeOverlay carries the jittered outline when the stroke style is
	// handdrawn.
	StrokeOverlay Layer
	// InsideStart/InsideEnd are the dashed clipped-away connector
	// segments, visible only while the connector is selected.
	InsideStart Layer
	InsideEnd   Layer
	// Markers are the arrowhead outlines of a connector.
	Markers []Layer
}

// Dash patterns per stroke style, in diagram units.
var (
	dashPattern = []float64{8, 6}
	dotPattern  = []float64{2, 4}
	// insideDash marks the hidden segment of a selected connector.
	insideDash = []float64{4, 4}
)
