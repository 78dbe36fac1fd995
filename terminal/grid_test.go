package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"vex/geometry"
	"vex/tool"
)

func TestSegmentRune(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{10, 0, '─'},
		{0, 10, '│'},
		{10, 3, '─'},
		{3, 10, '│'},
		{5, 5, '╲'},
		{-5, -5, '╲'},
		{5, -5, '╱'},
		{-5, 5, '╱'},
	}
	for _, tt := range tests {
		if got := segmentRune(tt.dx, tt.dy); got != tt.want {
			t.Errorf("segmentRune(%d, %d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestProjectAppliesAspectAndViewport(t *testing.T) {
	view := tool.NewViewport()
	view.SetTranslation(geometry.Point{X: 10, Y: 5})

	x, y := project(view, geometry.Point{X: 20, Y: 20})
	if x != 60 || y != 25 {
		t.Errorf("project = (%d, %d), want (60, 25)", x, y)
	}
}

func TestGridSetIgnoresOutOfBounds(t *testing.T) {
	g := newGrid(4, 3)
	g.set(-1, 0, 'x', tcell.StyleDefault)
	g.set(0, -1, 'x', tcell.StyleDefault)
	g.set(4, 0, 'x', tcell.StyleDefault)
	g.set(0, 3, 'x', tcell.StyleDefault)
	for i, c := range g.cells {
		if c.r != ' ' {
			t.Fatalf("cell %d written out of bounds", i)
		}
	}
}
