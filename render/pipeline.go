package render

import (
	"vex/arrowhead"
	"vex/geometry"
	"vex/scene"
)

// Pipeline owns the layer sets of every entity in a scene and rebuilds the
// ones whose entities are dirty. Within one pass each entity's geometry is
// recomputed first, then style attributes, then overlays; overlays read the
// freshly built path data.
type Pipeline struct {
	scene  *scene.Scene
	layers map[string]*LayerSet
}

// NewPipeline creates a pipeline for a scene.
func NewPipeline(s *scene.Scene) *Pipeline {
	return &Pipeline{
		scene:  s,
		layers: make(map[string]*LayerSet),
	}
}

// Layers returns the layer set of an entity, or nil if it has never been
// rendered.
func (p *Pipeline) Layers(id string) *LayerSet {
	return p.layers[id]
}

// RenderAll renders every dirty entity and returns how many were rebuilt.
// Clean entities are untouched, so repeated mutations between passes
// coalesce into a single recomputation.
func (p *Pipeline) RenderAll() int {
	count := 0
	for _, sh := range p.scene.Shapes {
		if p.RenderShape(sh) {
			count++
		}
	}
	for _, c := range p.scene.Connectors {
		if p.RenderConnector(c) {
			count++
		}
	}
	p.dropOrphans()
	return count
}

// RenderShape rebuilds a shape's layers if it is dirty. Returns whether
// any work was done.
func (p *Pipeline) RenderShape(sh *scene.Shape) bool {
	if !sh.State.NeedsRender {
		return false
	}
	ls := p.ensure(sh.ID)

	// Geometry first.
	outline := Path{Points: sh.Outline(), Closed: true}
	ls.Primary.Paths = []Path{outline}

	// Then style attributes.
	applyStroke(&ls.Primary, sh.Appearance)
	applyFill(&ls.Primary, sh.Appearance)
	ls.Primary.Visible = true

	// Overlays last; they read the path data built above.
	p.updateFillOverlay(ls, sh.ID, sh.Appearance, outline)
	p.updateStrokeOverlay(ls, sh.ID, sh.Appearance)

	sh.State.NeedsRender = false
	return true
}

// RenderConnector rebuilds a connector's layers if it is dirty.
func (p *Pipeline) RenderConnector(c *scene.Connector) bool {
	if !c.State.NeedsRender {
		return false
	}
	ls := p.ensure(c.ID)

	// Geometry first: the clip computation may have changed since the
	// last pass, and both the drawn path and the inside indicators hang
	// off it.
	c.UpdatePath(p.scene)
	line := Path{Points: c.Points}
	ls.Primary.Paths = []Path{line}

	applyStroke(&ls.Primary, c.Appearance)
	ls.Primary.FillColor = ""
	ls.Primary.Visible = true

	p.updateMarkers(ls, c)
	p.updateInsideLayers(ls, c)
	p.updateStrokeOverlay(ls, c.ID, c.Appearance)
	ls.FillOverlay.Visible = false

	c.State.NeedsRender = false
	return true
}

func (p *Pipeline) ensure(id string) *LayerSet {
	ls, ok := p.layers[id]
	if !ok {
		ls = &LayerSet{}
		p.layers[id] = ls
	}
	return ls
}

// dropOrphans forgets layer sets of entities no longer in the scene.
func (p *Pipeline) dropOrphans() {
	live := make(map[string]bool, len(p.scene.Shapes)+len(p.scene.Connectors))
	for _, sh := range p.scene.Shapes {
		live[sh.ID] = true
	}
	for _, c := range p.scene.Connectors {
		live[c.ID] = true
	}
	for id := range p.layers {
		if !live[id] {
			delete(p.layers, id)
		}
	}
}

// applyStroke maps appearance stroke attributes onto a layer. A handdrawn
// stroke style hides the primary stroke; the jittered overlay replaces it.
func applyStroke(l *Layer, a scene.Appearance) {
	l.StrokeColor = a.StrokeColor
	l.StrokeWidth = a.StrokeWidth
	l.StrokeOpacity = a.StrokeOpacity
	switch a.StrokeStyle {
	case scene.StrokeNone, scene.StrokeHanddrawn:
		l.StrokeColor = ""
		l.Dash = nil
	case scene.StrokeDashed:
		l.Dash = dashPattern
	case scene.StrokeDotted:
		l.Dash = dotPattern
	default:
		l.Dash = nil
	}
}

// applyFill maps appearance fill attributes onto a layer. Hachure and
// cross-hatch interiors are painted by the fill overlay instead.
func applyFill(l *Layer, a scene.Appearance) {
	switch a.FillStyle {
	case scene.FillSolid:
		l.FillColor = a.FillColor
		l.FillOpacity = a.FillOpacity
	default:
		l.FillColor = ""
	}
}

func (p *Pipeline) updateFillOverlay(ls *LayerSet, id string, a scene.Appearance, outline Path) {
	hatched := a.FillStyle == scene.FillHachure || a.FillStyle == scene.FillCrossHatch
	ls.FillOverlay.Visible = hatched
	if !hatched {
		ls.FillOverlay.Paths = nil
		return
	}
	rng := seededRand(id)
	lines := hachureLines(outline.Points, hachureAngle, hachureSpacing, rng)
	if a.FillStyle == scene.FillCrossHatch {
		lines = append(lines, hachureLines(outline.Points, -hachureAngle, hachureSpacing, rng)...)
	}
	ls.FillOverlay.Paths = lines
	ls.FillOverlay.StrokeColor = a.FillColor
	ls.FillOverlay.StrokeWidth = 1
	ls.FillOverlay.StrokeOpacity = a.FillOpacity
	ls.FillOverlay.Dash = nil
}

func (p *Pipeline) updateStrokeOverlay(ls *LayerSet, id string, a scene.Appearance) {
	handdrawn := a.StrokeStyle == scene.StrokeHanddrawn
	ls.StrokeOverlay.Visible = handdrawn
	if !handdrawn {
		ls.StrokeOverlay.Paths = nil
		return
	}
	rng := seededRand(id)
	var rough []Path
	for _, path := range ls.Primary.Paths {
		rough = append(rough, jitterPath(path, rng)...)
	}
	ls.StrokeOverlay.Paths = rough
	ls.StrokeOverlay.StrokeColor = a.StrokeColor
	ls.StrokeOverlay.StrokeWidth = a.StrokeWidth
	ls.StrokeOverlay.StrokeOpacity = a.StrokeOpacity
	ls.StrokeOverlay.Dash = nil
}

// updateMarkers rebuilds the arrowhead layers at the connector tip anchors.
func (p *Pipeline) updateMarkers(ls *LayerSet, c *scene.Connector) {
	ls.Markers = ls.Markers[:0]
	startAngle, endAngle := c.MarkerAngles()
	if def, ok := arrowhead.Lookup(c.StartArrowhead); ok {
		ls.Markers = append(ls.Markers, markerLayer(def, c.PathStart, startAngle, c.Appearance))
	}
	if def, ok := arrowhead.Lookup(c.EndArrowhead); ok {
		ls.Markers = append(ls.Markers, markerLayer(def, c.PathEnd, endAngle, c.Appearance))
	}
}

// markerLayer places a marker definition at an anchor: the outline is
// rotated to the orient angle and translated so the reference point lands
// on the anchor. Fill resolution: the stroke sentinel matches the
// connector's stroke color, an explicit color is used verbatim, empty
// stays outline-only.
func markerLayer(def arrowhead.Definition, anchor geometry.Point, angleDeg float64, a scene.Appearance) Layer {
	pts := placeMarker(def, anchor, angleDeg)
	fill := def.Fill
	if fill == arrowhead.FillStroke {
		fill = a.StrokeColor
	}
	return Layer{
		Visible:       true,
		Paths:         []Path{{Points: pts, Closed: def.Closed}},
		StrokeColor:   a.StrokeColor,
		StrokeWidth:   a.StrokeWidth,
		StrokeOpacity: a.StrokeOpacity,
		FillColor:     fill,
		FillOpacity:   a.StrokeOpacity,
	}
}

func (p *Pipeline) updateInsideLayers(ls *LayerSet, c *scene.Connector) {
	show := c.State.Selected
	ls.InsideStart = insideLayer(c.InsideStart, c.Appearance, show)
	ls.InsideEnd = insideLayer(c.InsideEnd, c.Appearance, show)
}

func insideLayer(points []geometry.Point, a scene.Appearance, show bool) Layer {
	l := Layer{
		Visible:       show && len(points) == 2,
		StrokeColor:   a.StrokeColor,
		StrokeWidth:   1,
		StrokeOpacity: a.StrokeOpacity * 0.6,
		Dash:          insideDash,
	}
	if l.Visible {
		l.Paths = []Path{{Points: points}}
	}
	return l
}
