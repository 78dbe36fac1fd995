package scene

import (
	"path/filepath"
	"testing"

	"vex/geometry"
)

func TestShapeLookup(t *testing.T) {
	s, a, _ := twoShapeScene(t)
	if got := s.ShapeByID(a.ID); got != a {
		t.Error("ShapeByID returned the wrong shape")
	}
	if got := s.ShapeByID("missing"); got != nil {
		t.Errorf("missing id returned %v", got)
	}
}

func TestShapeAtPrefersTopmost(t *testing.T) {
	s := NewScene()
	under := NewShape(KindRectangle, geometry.Rect{X: 0, Y: 0, Width: 50, Height: 50})
	over := NewShape(KindRectangle, geometry.Rect{X: 25, Y: 25, Width: 50, Height: 50})
	s.AddShape(under)
	s.AddShape(over)

	if got := s.ShapeAt(geometry.Point{X: 30, Y: 30}); got != over {
		t.Error("overlap must resolve to the shape drawn last")
	}
	if got := s.ShapeAt(geometry.Point{X: 10, Y: 10}); got != under {
		t.Error("point only inside the lower shape missed it")
	}
	if got := s.ShapeAt(geometry.Point{X: 500, Y: 500}); got != nil {
		t.Error("empty space returned a shape")
	}
}

func TestConnectorAt(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.UpdatePath(s)

	if got := s.ConnectorAt(geometry.Point{X: 150, Y: 50}, 4); got != c {
		t.Error("point on the connector missed it")
	}
	if got := s.ConnectorAt(geometry.Point{X: 150, Y: 400}, 4); got != nil {
		t.Error("distant point returned a connector")
	}
}

func TestDeleteShapeDetaches(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.UpdatePath(s)

	s.DeleteShape(a.ID)
	if s.ShapeByID(a.ID) != nil {
		t.Fatal("shape not removed")
	}
	if c.StartShapeID != "" {
		t.Error("connector still references the deleted shape")
	}
	if c.EndShapeID != b.ID {
		t.Error("unrelated binding was cleared")
	}
	if !c.State.NeedsRender {
		t.Error("detaching must dirty the connector")
	}

	// The detached connector renders from its raw points.
	c.UpdatePath(s)
	if len(c.InsideStart) != 0 {
		t.Error("detached end still clips")
	}
}

func TestDeleteShapeCascade(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c1 := boundConnector(s, a, b, KindStraight)
	c2 := NewConnector(KindStraight, geometry.Point{X: 400, Y: 0}, geometry.Point{X: 500, Y: 0})
	s.AddConnector(c2)

	s.DeleteShapeCascade(a.ID)
	if s.ConnectorByID(c1.ID) != nil {
		t.Error("bound connector survived the cascade")
	}
	if s.ConnectorByID(c2.ID) == nil {
		t.Error("unrelated connector was deleted")
	}
}

func TestSetConnectorKindReplacesInstance(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.UpdatePath(s)

	replacement := s.SetConnectorKind(c.ID, KindBent)
	if replacement == nil {
		t.Fatal("replacement not returned")
	}
	if replacement == c {
		t.Error("changing kind must replace the instance")
	}
	if replacement.ID != c.ID {
		t.Error("replacement must keep the id")
	}
	if replacement.StartShapeID != a.ID || replacement.EndShapeID != b.ID {
		t.Error("replacement must keep bindings")
	}
	if !replacement.State.NeedsRender {
		t.Error("replacement must start dirty")
	}
	if got := s.ConnectorByID(c.ID); got != replacement {
		t.Error("scene still holds the old instance")
	}

	// Same-kind requests are a no-op returning the existing instance.
	if again := s.SetConnectorKind(c.ID, KindBent); again != replacement {
		t.Error("same-kind change must not replace")
	}
}

func TestSelectionHelpers(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)

	a.SetSelected(true)
	c.SetSelected(true)
	if len(s.SelectedShapes()) != 1 || len(s.SelectedConnectors()) != 1 {
		t.Error("selection helpers missed entities")
	}

	s.ClearSelection()
	if len(s.SelectedShapes()) != 0 || len(s.SelectedConnectors()) != 0 {
		t.Error("ClearSelection left entities selected")
	}
	_ = b
}

func TestSceneBounds(t *testing.T) {
	s := NewScene()
	if _, ok := s.Bounds(); ok {
		t.Error("empty scene must report no bounds")
	}

	s.AddShape(NewShape(KindRectangle, geometry.Rect{X: 10, Y: 10, Width: 20, Height: 20}))
	s.AddShape(NewShape(KindRectangle, geometry.Rect{X: 100, Y: 50, Width: 30, Height: 30}))
	bounds, ok := s.Bounds()
	if !ok {
		t.Fatal("bounds missing")
	}
	want := geometry.Rect{X: 10, Y: 10, Width: 120, Height: 70}
	if bounds != want {
		t.Errorf("bounds = %v, want %v", bounds, want)
	}
}

func TestSceneCloneIsDeep(t *testing.T) {
	s, a, b := twoShapeScene(t)
	c := boundConnector(s, a, b, KindStraight)
	c.UpdatePath(s)

	clone := s.Clone()
	if len(clone.Shapes) != 2 || len(clone.Connectors) != 1 {
		t.Fatal("clone lost entities")
	}
	// History restoration depends on stable ids.
	if clone.Shapes[0].ID != a.ID || clone.Connectors[0].ID != c.ID {
		t.Error("scene clone must keep entity ids")
	}

	clone.Shapes[0].MoveBy(geometry.Point{X: 999})
	if a.Layout.X == 999 {
		t.Error("clone mutation leaked into the original scene")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, a, b := twoShapeScene(t)
	a.Label = "start"
	c := boundConnector(s, a, b, KindCurved)
	c.UpdatePath(s)
	s.Metadata.Name = "flow"

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Shapes) != 2 || len(loaded.Connectors) != 1 {
		t.Fatal("round trip lost entities")
	}
	lc := loaded.Connectors[0]
	if lc.Kind != KindCurved || lc.StartShapeID != a.ID || lc.EndShapeID != b.ID {
		t.Error("connector snapshot fields lost")
	}
	if loaded.Shapes[0].Label != "start" {
		t.Error("label lost")
	}
	if loaded.Metadata.Name != "flow" {
		t.Error("metadata lost")
	}
	// Derived path data is never persisted; everything reloads dirty.
	if len(lc.Points) != 0 {
		t.Error("derived points were persisted")
	}
	if !lc.State.NeedsRender || !loaded.Shapes[0].State.NeedsRender {
		t.Error("loaded entities must start dirty")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
