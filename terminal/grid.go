package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"vex/geometry"
	"vex/render"
	"vex/tool"
)

// grid is an offscreen cell buffer one frame is composed into before it
// is flushed to the tcell screen in a single pass.
type grid struct {
	width  int
	height int
	cells  []cell
}

type cell struct {
	r     rune
	style tcell.Style
}

func newGrid(width, height int) *grid {
	g := &grid{width: width, height: height}
	g.cells = make([]cell, width*height)
	g.clear()
	return g
}

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
}

func (g *grid) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = cell{r: r, style: style}
}

func (g *grid) flush(screen tcell.Screen) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
}

// cellAspect compensates for terminal cells being roughly twice as tall
// as wide: one diagram unit spans twice as many columns as rows.
const cellAspect = 2.0

// project converts a diagram point to a cell coordinate through the
// viewport.
func project(view *tool.Viewport, p geometry.Point) (int, int) {
	s := view.DiagramToScreen(p)
	return int(math.Round(s.X * cellAspect)), int(math.Round(s.Y))
}

// drawLayerSet rasterizes one entity's layers into the grid. Fill
// overlays draw before strokes so hatching never covers the outline.
func (g *grid) drawLayerSet(view *tool.Viewport, ls *render.LayerSet) {
	g.drawLayer(view, ls.FillOverlay, '░')
	g.drawLayer(view, ls.Primary, 0)
	g.drawLayer(view, ls.StrokeOverlay, 0)
	for _, m := range ls.Markers {
		g.drawLayer(view, m, 0)
	}
	g.drawLayer(view, ls.InsideStart, '·')
	g.drawLayer(view, ls.InsideEnd, '·')
}

// drawLayer strokes every path of a layer. A zero glyph picks a line
// rune per segment slope; a non-zero glyph draws with that rune.
func (g *grid) drawLayer(view *tool.Viewport, l render.Layer, glyph rune) {
	if !l.Visible {
		return
	}
	style := styleForLayer(l)
	for _, path := range l.Paths {
		pts := path.Points
		if len(pts) == 0 {
			continue
		}
		for i := 0; i+1 < len(pts); i++ {
			g.line(view, pts[i], pts[i+1], glyph, style)
		}
		if path.Closed && len(pts) > 2 {
			g.line(view, pts[len(pts)-1], pts[0], glyph, style)
		}
	}
}

// line draws a cell-space segment with Bresenham stepping.
func (g *grid) line(view *tool.Viewport, a, b geometry.Point, glyph rune, style tcell.Style) {
	x0, y0 := project(view, a)
	x1, y1 := project(view, b)

	r := glyph
	if r == 0 {
		r = segmentRune(x1-x0, y1-y0)
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.set(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// segmentRune picks a box-drawing rune from the dominant slope.
func segmentRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady == 0:
		return '─'
	case adx == 0:
		return '│'
	case adx >= 2*ady:
		return '─'
	case ady >= 2*adx:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func styleForLayer(l render.Layer) tcell.Style {
	return tcell.StyleDefault.Foreground(approximateColor(l.StrokeColor))
}

// approximateColor maps the handful of palette colors the renderer emits
// to terminal colors; anything unknown stays default.
func approximateColor(hex string) tcell.Color {
	switch hex {
	case "", "none":
		return tcell.ColorDefault
	case "#1a1a1a", "#000000":
		return tcell.ColorWhite
	default:
		c := tcell.GetColor(hex)
		if c == tcell.ColorDefault {
			return tcell.ColorWhite
		}
		return c
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
