// Package demo builds a showcase scene that exercises every shape and
// connector variant, for trying the editor without drawing first.
package demo

import (
	"vex/arrowhead"
	"vex/geometry"
	"vex/scene"
)

// Scene returns the showcase scene.
func Scene() *scene.Scene {
	s := scene.NewScene()
	s.Metadata.Name = "showcase"

	start := shape(s, scene.KindEllipse, 40, 40, "start")
	task := shape(s, scene.KindRectangle, 280, 40, "task")
	task.Appearance.FillStyle = scene.FillHachure
	check := shape(s, scene.KindPolygon, 520, 40, "check")
	check.Sides = 6
	done := shape(s, scene.KindTriangle, 280, 220, "done")
	done.Appearance.StrokeStyle = scene.StrokeHanddrawn

	connect(s, scene.KindStraight, start, task)
	connect(s, scene.KindBent, task, check)
	back := connect(s, scene.KindCurved, check, done)
	back.StartArrowhead = arrowhead.Circle
	back.EndArrowhead = arrowhead.FilledDiamond
	back.Appearance.StrokeStyle = scene.StrokeDashed

	loose := scene.NewConnector(scene.KindBent,
		geometry.Point{X: 40, Y: 220}, geometry.Point{X: 180, Y: 300})
	s.AddConnector(loose)

	s.UpdatePaths()
	return s
}

func shape(s *scene.Scene, kind scene.ShapeKind, x, y float64, label string) *scene.Shape {
	sh := scene.NewShape(kind, geometry.Rect{
		X: x, Y: y,
		Width:  6 * scene.GridSpacing,
		Height: 3 * scene.GridSpacing,
	})
	sh.Label = label
	s.AddShape(sh)
	return sh
}

func connect(s *scene.Scene, kind scene.ConnectorKind, from, to *scene.Shape) *scene.Connector {
	c := scene.NewConnector(kind, from.Center(), to.Center())
	c.BindStart(from.ID)
	c.BindEnd(to.ID)
	s.AddConnector(c)
	return c
}
