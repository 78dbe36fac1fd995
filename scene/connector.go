package scene

import (
	"github.com/google/uuid"

	"vex/arrowhead"
	"vex/geometry"
)

// Design constants for spacing between connectors and shapes.
const (
	// GridSpacing is the canvas grid pitch in diagram units.
	GridSpacing = 20.0
	// attachGap separates a connector's visible endpoint from the boundary
	// of the shape it is attached to.
	attachGap = GridSpacing * 0.5
)

// ConnectorKind identifies the path-building algorithm of a connector. It
// is fixed per instance; Scene.SetConnectorKind swaps in a replacement
// instance to change it.
type ConnectorKind string

const (
	KindStraight ConnectorKind = "straight"
	KindBent     ConnectorKind = "bent"
	KindCurved   ConnectorKind = "curved"
)

// ShapeLookup resolves shape ids to shapes. Connectors hold ids rather
// than pointers, so deleting a shape can never leave a dangling reference;
// an unresolvable id simply renders the connector unclipped.
type ShapeLookup interface {
	ShapeByID(id string) *Shape
}

// Connector is a line between two anchor points, optionally bound to a
// shape at either end.
type Connector struct {
	ID             string         `json:"id"`
	Kind           ConnectorKind  `json:"kind"`
	Start          geometry.Point `json:"start"`
	End            geometry.Point `json:"end"`
	StartShapeID   string         `json:"startShapeId,omitempty"`
	EndShapeID     string         `json:"endShapeId,omitempty"`
	StartArrowhead arrowhead.Kind `json:"startArrowhead,omitempty"`
	EndArrowhead   arrowhead.Kind `json:"endArrowhead,omitempty"`
	Appearance     Appearance     `json:"appearance"`

	State State `json:"-"`

	// Derived render outputs, rebuilt by UpdatePath on every real render.
	// PathStart and PathEnd are the arrowhead tip anchors; Points is the
	// drawn polyline, already gap-offset and marker-shortened. InsideStart
	// and InsideEnd are the clipped-away segments inside bound shapes,
	// shown dashed only while selected.
	PathStart   geometry.Point     `json:"-"`
	PathEnd     geometry.Point     `json:"-"`
	Points      []geometry.Point   `json:"-"`
	InsideStart []geometry.Point   `json:"-"`
	InsideEnd   []geometry.Point   `json:"-"`
	StartDir    geometry.Direction `json:"-"`
	EndDir      geometry.Direction `json:"-"`
}

// NewConnector creates a connector of the given kind between two points.
func NewConnector(kind ConnectorKind, start, end geometry.Point) *Connector {
	c := &Connector{
		ID:             uuid.NewString(),
		Kind:           kind,
		Start:          start,
		End:            end,
		StartArrowhead: arrowhead.None,
		EndArrowhead:   arrowhead.Triangle,
		Appearance:     DefaultAppearance(),
	}
	c.Appearance.FillStyle = FillNone
	c.State.NeedsRender = true
	return c
}

// Clone returns a deep, independently mutable copy with a fresh id.
func (c *Connector) Clone() *Connector {
	clone := *c
	clone.ID = uuid.NewString()
	clone.Points = append([]geometry.Point(nil), c.Points...)
	clone.InsideStart = append([]geometry.Point(nil), c.InsideStart...)
	clone.InsideEnd = append([]geometry.Point(nil), c.InsideEnd...)
	clone.State.NeedsRender = true
	clone.State.Selected = false
	return &clone
}

// MarkDirty flags the connector for recomputation on the next render pass.
func (c *Connector) MarkDirty() {
	c.State.NeedsRender = true
}

// SetEndpoints moves the raw anchor points.
func (c *Connector) SetEndpoints(start, end geometry.Point) {
	c.Start = start
	c.End = end
	c.MarkDirty()
}

// BindStart attaches the start to a shape; an empty id detaches it.
func (c *Connector) BindStart(shapeID string) {
	c.StartShapeID = shapeID
	c.MarkDirty()
}

// BindEnd attaches the end to a shape; an empty id detaches it.
func (c *Connector) BindEnd(shapeID string) {
	c.EndShapeID = shapeID
	c.MarkDirty()
}

// SetSelected toggles selection. The inside-shape indicator segments only
// show while selected and depend on clip geometry, so toggling forces a
// geometry refresh.
func (c *Connector) SetSelected(selected bool) {
	if c.State.Selected == selected {
		return
	}
	c.State.Selected = selected
	c.MarkDirty()
}

// UpdatePath rebuilds every derived path field from the current anchors and
// bound shape geometry. Steps, shared by all kinds:
//
//  1. recompute anchors from bound shape centers,
//  2. clip the visible segment against bound shape rectangles, keeping the
//     inside remainders for selection display,
//  3. offset the visible endpoints by the attach gap (bound ends only),
//     producing the marker tip anchors PathStart/PathEnd,
//  4. build the kind-specific drawn path, shortened by the active marker
//     lengths so strokes terminate at marker bases.
func (c *Connector) UpdatePath(lookup ShapeLookup) {
	startShape := c.resolveShape(lookup, c.StartShapeID)
	endShape := c.resolveShape(lookup, c.EndShapeID)

	if startShape != nil {
		c.Start = startShape.Center()
	}
	if endShape != nil {
		c.End = endShape.Center()
	}

	visStart, visEnd := c.Start, c.End
	c.InsideStart = nil
	c.InsideEnd = nil

	if startShape != nil && startShape.Layout.Contains(c.Start) {
		// Exit crossing on the original start→end line.
		if hit := geometry.LineRectIntersection(c.Start, c.End, startShape.Layout); hit != nil {
			c.InsideStart = []geometry.Point{c.Start, *hit}
			visStart = *hit
		}
	}
	if endShape != nil && endShape.Layout.Contains(c.End) {
		// Entry crossing from the already-adjusted visible start.
		if hit := geometry.LineRectIntersection(visStart, c.End, endShape.Layout); hit != nil {
			c.InsideEnd = []geometry.Point{*hit, c.End}
			visEnd = *hit
		}
	}

	switch c.Kind {
	case KindBent:
		c.buildBentPath(visStart, visEnd, startShape != nil, endShape != nil)
	case KindCurved:
		c.buildCurvedPath(visStart, visEnd, startShape != nil, endShape != nil)
	default:
		c.buildStraightPath(visStart, visEnd, startShape != nil, endShape != nil)
	}
}

func (c *Connector) resolveShape(lookup ShapeLookup, id string) *Shape {
	if lookup == nil || id == "" {
		return nil
	}
	return lookup.ShapeByID(id)
}

// startMarkerLength returns the stroke shortening for the start marker, or
// zero when no marker is active.
func (c *Connector) startMarkerLength() float64 {
	if def, ok := arrowhead.Lookup(c.StartArrowhead); ok {
		return def.Length()
	}
	return 0
}

func (c *Connector) endMarkerLength() float64 {
	if def, ok := arrowhead.Lookup(c.EndArrowhead); ok {
		return def.Length()
	}
	return 0
}

// MarkerAngles returns the rotation angles in degrees for the start and end
// markers. Kinds with cardinal endpoint facings use the fixed per-direction
// angles; the straight kind keeps NoDirection and falls back to the exact
// start→end vector angle.
func (c *Connector) MarkerAngles() (start, end float64) {
	start = geometry.MarkerOrientAngle(c.StartDir, c.Start, c.End, true)
	end = geometry.MarkerOrientAngle(c.EndDir, c.Start, c.End, false)
	return start, end
}

// GetPointAtPosition returns the point at arc-length ratio t along the
// drawn path. t is clamped to [0,1]; an empty or degenerate path returns
// the start anchor.
func (c *Connector) GetPointAtPosition(t float64) geometry.Point {
	if len(c.Points) == 0 {
		return c.Start
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	total := c.pathLength()
	if total < 1e-9 {
		return c.Points[0]
	}
	target := t * total
	for i := 0; i < len(c.Points)-1; i++ {
		seg := geometry.Distance(c.Points[i], c.Points[i+1])
		if target <= seg || i == len(c.Points)-2 {
			if seg < 1e-9 {
				return c.Points[i]
			}
			return geometry.PointOnSegment(c.Points[i], c.Points[i+1], target/seg)
		}
		target -= seg
	}
	return c.Points[len(c.Points)-1]
}

// GetClosestPositionOnPath projects p onto the drawn path and returns its
// arc-length ratio. Degenerate paths return 0.5.
func (c *Connector) GetClosestPositionOnPath(p geometry.Point) float64 {
	if len(c.Points) < 2 {
		return 0.5
	}
	total := c.pathLength()
	if total < 1e-9 {
		return 0.5
	}

	bestDist := -1.0
	bestRatio := 0.5
	lenBefore := 0.0
	for i := 0; i < len(c.Points)-1; i++ {
		a, b := c.Points[i], c.Points[i+1]
		seg := geometry.Distance(a, b)
		t := geometry.ClosestPositionOnSegment(p, a, b)
		closest := geometry.PointOnSegment(a, b, t)
		d := geometry.Distance(p, closest)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestRatio = (lenBefore + t*seg) / total
		}
		lenBefore += seg
	}
	return bestRatio
}

// IntersectsRect reports whether the connector is hit by a selection
// rectangle. The straight kind tests the raw, unclipped anchor segment;
// multi-segment kinds test each drawn segment.
func (c *Connector) IntersectsRect(r geometry.Rect) bool {
	if c.Kind == KindStraight || len(c.Points) < 2 {
		return geometry.LineIntersectsRect(c.Start, c.End, r)
	}
	for i := 0; i < len(c.Points)-1; i++ {
		if geometry.LineIntersectsRect(c.Points[i], c.Points[i+1], r) {
			return true
		}
	}
	return false
}

func (c *Connector) pathLength() float64 {
	total := 0.0
	for i := 0; i < len(c.Points)-1; i++ {
		total += geometry.Distance(c.Points[i], c.Points[i+1])
	}
	return total
}
