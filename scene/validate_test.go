package scene

import (
	"strings"
	"testing"

	"vex/geometry"
)

func TestValidateCleanScene(t *testing.T) {
	s := NewScene()
	a := NewShape(KindRectangle, geometry.Rect{Width: 100, Height: 60})
	b := NewShape(KindEllipse, geometry.Rect{X: 200, Width: 100, Height: 60})
	s.AddShape(a)
	s.AddShape(b)
	c := NewConnector(KindStraight, a.Center(), b.Center())
	c.BindStart(a.ID)
	c.BindEnd(b.ID)
	s.AddConnector(c)

	if errs := s.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateFindsProblems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scene)
		message string
	}{
		{
			"duplicate id",
			func(s *Scene) {
				a := NewShape(KindRectangle, geometry.Rect{Width: 10, Height: 10})
				b := NewShape(KindRectangle, geometry.Rect{Width: 10, Height: 10})
				b.ID = a.ID
				s.AddShape(a)
				s.AddShape(b)
			},
			"duplicate id",
		},
		{
			"degenerate layout",
			func(s *Scene) {
				sh := NewShape(KindRectangle, geometry.Rect{Width: 10, Height: 10})
				sh.Layout.Height = 0
				s.AddShape(sh)
			},
			"degenerate layout",
		},
		{
			"unknown shape kind",
			func(s *Scene) {
				sh := NewShape(ShapeKind("blob"), geometry.Rect{Width: 10, Height: 10})
				s.AddShape(sh)
			},
			"unknown shape kind",
		},
		{
			"dangling binding",
			func(s *Scene) {
				c := NewConnector(KindStraight, geometry.Point{}, geometry.Point{X: 50})
				c.BindEnd("no-such-shape")
				s.AddConnector(c)
			},
			"missing shape",
		},
		{
			"bad polygon sides",
			func(s *Scene) {
				sh := NewShape(KindPolygon, geometry.Rect{Width: 10, Height: 10})
				sh.Sides = 2
				s.AddShape(sh)
			},
			"polygon with 2 sides",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			tt.mutate(s)
			errs := s.Validate()
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tt.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", errs, tt.message)
			}
		})
	}
}
