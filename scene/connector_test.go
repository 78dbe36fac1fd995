package scene

import (
	"math"
	"testing"

	"vex/arrowhead"
	"vex/geometry"
)

// twoShapeScene builds the reference layout used throughout the connector
// tests: shape A at the origin and shape B 100 units to its right.
func twoShapeScene(t *testing.T) (*Scene, *Shape, *Shape) {
	t.Helper()
	s := NewScene()
	a := NewShape(KindRectangle, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	b := NewShape(KindRectangle, geometry.Rect{X: 200, Y: 0, Width: 100, Height: 100})
	s.AddShape(a)
	s.AddShape(b)
	return s, a, b
}

func boundConnector(s *Scene, a, b *Shape, kind ConnectorKind) *Connector {
	c := NewConnector(kind, a.Center(), b.Center())
	c.BindStart(a.ID)
	c.BindEnd(b.ID)
	s.AddConnector(c)
	return c
}

func TestStraightConnectorClipping(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.UpdatePath(s)

	// Anchors recompute from the bound shape centers.
	if c.Start != (geometry.Point{X: 50, Y: 50}) || c.End != (geometry.Point{X: 250, Y: 50}) {
		t.Fatalf("anchors = %v → %v", c.Start, c.End)
	}

	// The clipped-away inside segments end at the shape boundaries: the
	// visible span before gap and marker adjustment is (100,50)→(200,50).
	if len(c.InsideStart) != 2 || len(c.InsideEnd) != 2 {
		t.Fatalf("inside segments missing: %v %v", c.InsideStart, c.InsideEnd)
	}
	if d := geometry.Distance(c.InsideStart[1], geometry.Point{X: 100, Y: 50}); d > 1e-6 {
		t.Errorf("visible start = %v, want (100,50)", c.InsideStart[1])
	}
	if d := geometry.Distance(c.InsideEnd[0], geometry.Point{X: 200, Y: 50}); d > 1e-6 {
		t.Errorf("visible end = %v, want (200,50)", c.InsideEnd[0])
	}
}

func TestStraightConnectorGapAndShortening(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.StartArrowhead = arrowhead.Triangle
	c.EndArrowhead = arrowhead.Triangle
	c.UpdatePath(s)

	def, _ := arrowhead.Lookup(arrowhead.Triangle)
	markerLen := def.Length()

	// Tip anchors sit one gap inside the clipped span.
	wantStart := geometry.Point{X: 100 + attachGap, Y: 50}
	wantEnd := geometry.Point{X: 200 - attachGap, Y: 50}
	if geometry.Distance(c.PathStart, wantStart) > 1e-6 {
		t.Errorf("PathStart = %v, want %v", c.PathStart, wantStart)
	}
	if geometry.Distance(c.PathEnd, wantEnd) > 1e-6 {
		t.Errorf("PathEnd = %v, want %v", c.PathEnd, wantEnd)
	}

	// The drawn segment is 2*(gap+markerLen) shorter than the clipped
	// span, along the same direction vector.
	if len(c.Points) != 2 {
		t.Fatalf("straight path has %d points", len(c.Points))
	}
	clipped := 100.0
	drawn := geometry.Distance(c.Points[0], c.Points[1])
	want := clipped - 2*(attachGap+markerLen)
	if math.Abs(drawn-want) > 1e-6 {
		t.Errorf("drawn length = %v, want %v", drawn, want)
	}
	if c.Points[0].Y != 50 || c.Points[1].Y != 50 {
		t.Error("shortening must stay on the original direction vector")
	}
}

func TestUnboundConnectorSkipsGap(t *testing.T) {
	c := NewConnector(KindStraight, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0})
	c.EndArrowhead = arrowhead.None
	c.UpdatePath(nil)

	if c.PathStart != (geometry.Point{X: 0, Y: 0}) || c.PathEnd != (geometry.Point{X: 100, Y: 0}) {
		t.Errorf("unbound endpoints moved: %v → %v", c.PathStart, c.PathEnd)
	}
	if len(c.InsideStart) != 0 || len(c.InsideEnd) != 0 {
		t.Error("unbound connector must not have inside segments")
	}
}

func TestUnresolvableShapeRendersUnclipped(t *testing.T) {
	s := NewScene()
	c := NewConnector(KindStraight, geometry.Point{X: 10, Y: 10}, geometry.Point{X: 90, Y: 10})
	c.BindStart("ghost")
	c.EndArrowhead = arrowhead.None
	s.AddConnector(c)
	c.UpdatePath(s)

	// The dangling id degrades to raw, unclipped, un-gapped points.
	if c.PathStart != (geometry.Point{X: 10, Y: 10}) {
		t.Errorf("PathStart = %v, want raw start", c.PathStart)
	}
	if len(c.InsideStart) != 0 {
		t.Error("dangling binding must not produce an inside segment")
	}
}

func TestMarkerAnglesFallback(t *testing.T) {
	c := NewConnector(KindStraight, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0})
	c.UpdatePath(nil)

	start, end := c.MarkerAngles()
	if math.Abs(end-0) > 1e-9 {
		t.Errorf("end marker angle = %v, want 0", end)
	}
	if math.Abs(start-180) > 1e-9 {
		t.Errorf("start marker angle = %v, want 180", start)
	}
}

func TestDegenerateConnector(t *testing.T) {
	p := geometry.Point{X: 10, Y: 10}
	c := NewConnector(KindStraight, p, p)
	c.UpdatePath(nil)

	if got := c.GetClosestPositionOnPath(geometry.Point{X: 500, Y: -3}); got != 0.5 {
		t.Errorf("degenerate closest position = %v, want 0.5", got)
	}
	if got := c.GetPointAtPosition(0.7); got != p {
		t.Errorf("degenerate point at position = %v, want %v", got, p)
	}
}

func TestClosestPositionRoundTripOnPath(t *testing.T) {
	c := NewConnector(KindStraight, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 40})
	c.EndArrowhead = arrowhead.None
	c.UpdatePath(nil)

	for _, r := range []float64{0, 0.2, 0.5, 0.83, 1} {
		p := c.GetPointAtPosition(r)
		if got := c.GetClosestPositionOnPath(p); math.Abs(got-r) > 1e-6 {
			t.Errorf("round trip at %v returned %v", r, got)
		}
	}
}

func TestStraightHitTestUsesRawAnchors(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.UpdatePath(s)

	// This rectangle only covers the clipped-away span inside shape A;
	// hit testing runs against the raw anchors, so it still hits.
	probe := geometry.Rect{X: 55, Y: 45, Width: 10, Height: 10}
	if !c.IntersectsRect(probe) {
		t.Error("raw-anchor hit test missed")
	}
	// A rectangle nowhere near the connector misses.
	if c.IntersectsRect(geometry.Rect{X: 0, Y: 500, Width: 10, Height: 10}) {
		t.Error("distant rectangle reported a hit")
	}
}

func TestBentConnectorPath(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindBent)
	c.EndArrowhead = arrowhead.None
	c.UpdatePath(s)

	if c.StartDir != geometry.East || c.EndDir != geometry.West {
		t.Errorf("directions = %v,%v, want East,West", c.StartDir, c.EndDir)
	}
	if len(c.Points) != 4 {
		t.Fatalf("elbow has %d points, want 4", len(c.Points))
	}
	// Every elbow segment must be axis-aligned.
	for i := 0; i < len(c.Points)-1; i++ {
		dx := c.Points[i+1].X - c.Points[i].X
		dy := c.Points[i+1].Y - c.Points[i].Y
		if dx != 0 && dy != 0 {
			t.Errorf("segment %d is diagonal: %v → %v", i, c.Points[i], c.Points[i+1])
		}
	}
}

func TestBentConnectorVertical(t *testing.T) {
	s := NewScene()
	top := NewShape(KindRectangle, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	bottom := NewShape(KindRectangle, geometry.Rect{X: 0, Y: 200, Width: 100, Height: 100})
	s.AddShape(top)
	s.AddShape(bottom)
	c := boundConnector(s, top, bottom, KindBent)
	c.UpdatePath(s)

	if c.StartDir != geometry.South || c.EndDir != geometry.North {
		t.Errorf("directions = %v,%v, want South,North", c.StartDir, c.EndDir)
	}
	startAngle, endAngle := c.MarkerAngles()
	if startAngle != 270 || endAngle != 90 {
		t.Errorf("marker angles = %v,%v, want 270,90", startAngle, endAngle)
	}
}

func TestCurvedConnectorPath(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindCurved)
	c.EndArrowhead = arrowhead.None
	c.UpdatePath(s)

	if len(c.Points) != curveSegments+1 {
		t.Fatalf("curve sampled %d points, want %d", len(c.Points), curveSegments+1)
	}
	// The sampled curve starts and ends exactly at the tip anchors when no
	// markers shorten it.
	if geometry.Distance(c.Points[0], c.PathStart) > 1e-6 {
		t.Errorf("curve start = %v, want %v", c.Points[0], c.PathStart)
	}
	if geometry.Distance(c.Points[len(c.Points)-1], c.PathEnd) > 1e-6 {
		t.Errorf("curve end = %v, want %v", c.Points[len(c.Points)-1], c.PathEnd)
	}
}

func TestConnectorClone(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.UpdatePath(s)

	clone := c.Clone()
	if clone.ID == c.ID {
		t.Error("clone must get a fresh id")
	}
	if clone.StartShapeID != a.ID || clone.EndShapeID != b.ID {
		t.Error("clone must keep shape bindings")
	}
	clone.Points[0].X = -999
	if c.Points[0].X == -999 {
		t.Error("clone shares path storage with the original")
	}
}

func TestSelectionTogglesDirty(t *testing.T) {
	c := NewConnector(KindStraight, geometry.Point{}, geometry.Point{X: 10, Y: 0})
	c.UpdatePath(nil)
	c.State.NeedsRender = false

	c.SetSelected(true)
	if !c.State.NeedsRender {
		t.Error("selecting must force a geometry refresh")
	}

	c.State.NeedsRender = false
	c.SetSelected(true)
	if c.State.NeedsRender {
		t.Error("re-selecting an already selected connector is a no-op")
	}
}
