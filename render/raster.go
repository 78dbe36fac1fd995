package render

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"vex/geometry"
	"vex/scene"
)

// Rasterizer paints a scene's layer sets into a raster image.
type Rasterizer struct {
	// Padding is the margin around the scene bounds in diagram units.
	Padding float64
	// Scale maps diagram units to pixels.
	Scale float64
	// Background is the canvas color.
	Background string
	// FontSize is the label text size in pixels.
	FontSize float64
}

// NewRasterizer returns a rasterizer with the default export settings.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Padding:    2 * scene.GridSpacing,
		Scale:      1,
		Background: "#ffffff",
		FontSize:   13,
	}
}

// ExportPNG renders the whole scene and writes it as a PNG file.
// Connectors paint under shapes, labels on top, matching the editor's
// stacking order.
func (r *Rasterizer) ExportPNG(s *scene.Scene, path string) error {
	bounds, ok := s.Bounds()
	if !ok {
		return fmt.Errorf("nothing to export")
	}

	pipeline := NewPipeline(s)
	s.MarkAllDirty()
	pipeline.RenderAll()

	width := int((bounds.Width + 2*r.Padding) * r.Scale)
	height := int((bounds.Height + 2*r.Padding) * r.Scale)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	origin := geometry.Point{X: bounds.X - r.Padding, Y: bounds.Y - r.Padding}

	dc := gg.NewContext(width, height)
	setColor(dc, r.Background, 1)
	dc.Clear()

	face, err := labelFace(r.FontSize * r.Scale)
	if err != nil {
		return fmt.Errorf("failed to load label font: %w", err)
	}
	dc.SetFontFace(face)

	for _, c := range s.Connectors {
		if ls := pipeline.Layers(c.ID); ls != nil {
			r.paintLayerSet(dc, ls, origin)
		}
	}
	for _, sh := range s.Shapes {
		if ls := pipeline.Layers(sh.ID); ls != nil {
			r.paintLayerSet(dc, ls, origin)
		}
	}
	for _, sh := range s.Shapes {
		if sh.Label == "" {
			continue
		}
		anchor := sh.TextAnchor()
		setColor(dc, sh.Appearance.StrokeColor, sh.Appearance.StrokeOpacity)
		x := (anchor.X - origin.X) * r.Scale
		y := (anchor.Y - origin.Y) * r.Scale
		dc.DrawStringAnchored(sh.Label, x, y, 0.5, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// paintLayerSet paints one entity's layers in stacking order: interior
// first, outline, hand-drawn overlay, then markers and selection
// indicators.
func (r *Rasterizer) paintLayerSet(dc *gg.Context, ls *LayerSet, origin geometry.Point) {
	r.paintLayer(dc, ls.Primary, origin)
	r.paintLayer(dc, ls.FillOverlay, origin)
	r.paintLayer(dc, ls.StrokeOverlay, origin)
	for _, m := range ls.Markers {
		r.paintLayer(dc, m, origin)
	}
	r.paintLayer(dc, ls.InsideStart, origin)
	r.paintLayer(dc, ls.InsideEnd, origin)
}

func (r *Rasterizer) paintLayer(dc *gg.Context, l Layer, origin geometry.Point) {
	if !l.Visible || len(l.Paths) == 0 {
		return
	}
	for _, path := range l.Paths {
		if len(path.Points) < 2 {
			continue
		}
		dc.NewSubPath()
		for i, p := range path.Points {
			x := (p.X - origin.X) * r.Scale
			y := (p.Y - origin.Y) * r.Scale
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		if path.Closed {
			dc.ClosePath()
		}

		if l.FillColor != "" {
			setColor(dc, l.FillColor, l.FillOpacity)
			dc.FillPreserve()
		}
		if l.StrokeColor != "" {
			if len(l.Dash) > 0 {
				scaled := make([]float64, len(l.Dash))
				for i, d := range l.Dash {
					scaled[i] = d * r.Scale
				}
				dc.SetDash(scaled...)
			}
			setColor(dc, l.StrokeColor, l.StrokeOpacity)
			dc.SetLineWidth(l.StrokeWidth * r.Scale)
			dc.Stroke()
			dc.SetDash()
		} else {
			dc.ClearPath()
		}
	}
}

// setColor parses a hex color and applies it with the given opacity.
// Unparseable colors fall back to black rather than failing the render.
func setColor(dc *gg.Context, hex string, opacity float64) {
	col, err := colorful.Hex(hex)
	if err != nil {
		col = colorful.Color{}
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	dc.SetRGBA(col.R, col.G, col.B, opacity)
}

func labelFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
