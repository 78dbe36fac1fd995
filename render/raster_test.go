package render

import (
	"os"
	"path/filepath"
	"testing"

	"vex/arrowhead"
	"vex/geometry"
	"vex/scene"
)

func TestExportPNG(t *testing.T) {
	s := scene.NewScene()
	a := scene.NewShape(scene.KindRectangle, geometry.Rect{X: 0, Y: 0, Width: 120, Height: 60})
	a.Label = "start"
	a.Appearance.FillStyle = scene.FillHachure
	b := scene.NewShape(scene.KindTriangle, geometry.Rect{X: 240, Y: 0, Width: 80, Height: 80})
	b.Appearance.StrokeStyle = scene.StrokeHanddrawn
	s.AddShape(a)
	s.AddShape(b)
	c := scene.NewConnector(scene.KindBent, a.Center(), b.Center())
	c.BindStart(a.ID)
	c.BindEnd(b.ID)
	c.EndArrowhead = arrowhead.Triangle
	s.AddConnector(c)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := NewRasterizer().ExportPNG(s, path); err != nil {
		t.Fatalf("ExportPNG failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}

func TestExportPNGEmptyScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := NewRasterizer().ExportPNG(scene.NewScene(), path); err == nil {
		t.Error("expected an error for an empty scene")
	}
}
