// Package terminal is the interactive terminal front end. It owns the
// tcell screen, translates mouse and key input into tool events, and
// paints the rendered scene as a cell grid.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"vex/config"
	"vex/geometry"
	"vex/render"
	"vex/scene"
	"vex/tool"
)

// Editor runs the interactive session over one scene.
type Editor struct {
	screen     tcell.Screen
	scene      *scene.Scene
	view       *tool.Viewport
	pipeline   *render.Pipeline
	dispatcher *tool.Dispatcher
	history    *scene.History
	cfg        *config.Config

	path        string
	status      string
	lastButtons tcell.ButtonMask
	tempPanning bool
	quit        bool

	// editing is the shape whose label is being typed, with the label it
	// had when editing began so Escape can restore it.
	editing     *scene.Shape
	editingOrig string
}

// NewEditor wires the tools, history and render pipeline around a scene.
// path is where Ctrl+S writes; empty disables saving.
func NewEditor(s *scene.Scene, path string, cfg *config.Config) *Editor {
	view := tool.NewViewport()
	d := tool.NewDispatcher(view)
	d.Register(
		tool.NewPan(view),
		tool.NewSelect(s),
		tool.NewDrawShape(s, scene.KindRectangle),
		tool.NewDrawShape(s, scene.KindEllipse),
		tool.NewDrawShape(s, scene.KindPolygon),
		tool.NewDrawShape(s, scene.KindTriangle),
		tool.NewDrawConnector(s, scene.KindStraight),
		tool.NewDrawConnector(s, scene.KindBent),
		tool.NewDrawConnector(s, scene.KindCurved),
	)
	d.SetActive("select")

	e := &Editor{
		scene:      s,
		view:       view,
		pipeline:   render.NewPipeline(s),
		dispatcher: d,
		history:    scene.NewHistory(cfg.HistoryDepth),
		cfg:        cfg,
		path:       path,
		status:     "select",
	}
	e.history.Push(s)
	return e
}

// Run enters the event loop and blocks until the user quits.
func (e *Editor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	e.screen = screen

	for !e.quit {
		e.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventMouse:
			e.handleMouse(ev)
		case *tcell.EventKey:
			e.handleKey(ev)
		case nil:
			return nil
		}
	}
	return nil
}

// toolKeys maps single-key shortcuts to tool names.
var toolKeys = map[rune]string{
	'v': "select",
	'r': "draw-rectangle",
	'o': "draw-ellipse",
	'g': "draw-polygon",
	't': "draw-triangle",
	'c': "draw-connector-straight",
	'b': "draw-connector-bent",
	'w': "draw-connector-curved",
	'h': "pan",
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	if e.editing != nil {
		e.handleLabelKey(ev)
		return
	}
	switch ev.Key() {
	case tcell.KeyCtrlC:
		e.quit = true
		return
	case tcell.KeyCtrlS:
		e.save()
		return
	case tcell.KeyEscape:
		e.dispatcher.KeyDown(tool.KeyEvent{Key: "Escape"})
		return
	case tcell.KeyDelete:
		if e.dispatcher.KeyDown(tool.KeyEvent{Key: "Delete"}) {
			e.checkpoint("deleted")
		}
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.dispatcher.KeyDown(tool.KeyEvent{Key: "Backspace"}) {
			e.checkpoint("deleted")
		}
		return
	}

	if ev.Key() == tcell.KeyEnter {
		e.beginLabelEdit()
		return
	}

	switch r := ev.Rune(); r {
	case 'q':
		e.quit = true
	case ' ':
		// Terminals deliver no key-release, so space toggles the
		// temporary pan instead of holding it.
		if e.tempPanning {
			e.dispatcher.TempRelease()
			e.tempPanning = false
			e.status = e.activeName()
		} else {
			e.dispatcher.TempActivate("pan")
			e.tempPanning = true
			e.status = "pan (temporary)"
		}
	case 'u':
		e.restore(e.history.Undo(), "undo")
	case 'U':
		e.restore(e.history.Redo(), "redo")
	case 'x':
		e.export()
	case 'y':
		e.copySelection()
	case 'p':
		e.paste()
	case '+', '=':
		e.view.ZoomAt(e.centerScreen(), 1.25)
	case '-':
		e.view.ZoomAt(e.centerScreen(), 0.8)
	default:
		if name, ok := toolKeys[r]; ok {
			if e.dispatcher.SetActive(name) {
				e.status = name
			}
		}
	}
}

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	screenPt := geometry.Point{X: float64(x) / cellAspect, Y: float64(y)}
	diagPt := e.view.ScreenToDiagram(screenPt)
	if e.cfg.SnapToGrid {
		diagPt = e.view.Snap(diagPt)
	}

	buttons := ev.Buttons()
	if buttons&tcell.WheelUp != 0 {
		e.dispatcher.Wheel(tool.WheelEvent{Point: diagPt, Screen: screenPt, DeltaY: -1})
		return
	}
	if buttons&tcell.WheelDown != 0 {
		e.dispatcher.Wheel(tool.WheelEvent{Point: diagPt, Screen: screenPt, DeltaY: 1})
		return
	}

	pressed := buttons &^ e.lastButtons
	released := e.lastButtons &^ buttons
	e.lastButtons = buttons

	mods := tool.Modifiers{
		Shift: ev.Modifiers()&tcell.ModShift != 0,
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		Alt:   ev.Modifiers()&tcell.ModAlt != 0,
	}
	base := tool.PointerEvent{Point: diagPt, Screen: screenPt, Mods: mods}

	switch {
	case pressed&tcell.Button1 != 0:
		base.Button = tool.ButtonLeft
		e.dispatcher.PointerDown(base)
	case pressed&tcell.Button3 != 0:
		base.Button = tool.ButtonMiddle
		e.dispatcher.PointerDown(base)
	case released != 0:
		if e.dispatcher.PointerUp(base) {
			e.checkpoint("")
		}
	default:
		e.dispatcher.PointerMove(base)
	}
}

// beginLabelEdit starts typing the label of the single selected shape.
func (e *Editor) beginLabelEdit() {
	selected := e.scene.SelectedShapes()
	if len(selected) != 1 {
		e.status = "select one shape to label"
		return
	}
	e.editing = selected[0]
	e.editingOrig = e.editing.Label
	e.editing.State.EditingText = true
	e.status = "label: " + e.editing.Label
}

func (e *Editor) handleLabelKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		e.endLabelEdit(true)
	case tcell.KeyEscape:
		e.editing.Label = e.editingOrig
		e.endLabelEdit(false)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if r := []rune(e.editing.Label); len(r) > 0 {
			e.editing.Label = string(r[:len(r)-1])
		}
		e.status = "label: " + e.editing.Label
	default:
		if r := ev.Rune(); r != 0 {
			e.editing.Label += string(r)
			e.status = "label: " + e.editing.Label
		}
	}
}

func (e *Editor) endLabelEdit(commit bool) {
	e.editing.State.EditingText = false
	e.editing.MarkDirty()
	e.editing = nil
	if commit {
		e.checkpoint("label set")
	} else {
		e.status = e.activeName()
	}
}

// checkpoint pushes an undo snapshot after a completed mutation.
func (e *Editor) checkpoint(status string) {
	e.history.Push(e.scene)
	if status != "" {
		e.status = status
	}
}

// restore replaces the scene contents in place so every tool holding the
// scene pointer keeps working.
func (e *Editor) restore(snapshot *scene.Scene, status string) {
	if snapshot == nil {
		e.status = "nothing to " + status
		return
	}
	e.dispatcher.CancelAll()
	*e.scene = *snapshot
	e.status = status
}

func (e *Editor) save() {
	if e.path == "" {
		e.status = "no file to save to"
		return
	}
	if err := e.scene.Save(e.path); err != nil {
		e.status = "save failed: " + err.Error()
		return
	}
	e.status = "saved " + e.path
}

func (e *Editor) export() {
	out := "export.png"
	if e.path != "" {
		out = e.path + ".png"
	}
	r := render.NewRasterizer()
	r.Scale = e.cfg.ExportScale
	r.FontSize = e.cfg.FontSize
	if err := r.ExportPNG(e.scene, out); err != nil {
		e.status = "export failed: " + err.Error()
		return
	}
	e.status = "exported " + out
}

func (e *Editor) copySelection() {
	n, err := CopySelection(e.scene)
	if err != nil {
		e.status = "copy failed: " + err.Error()
		return
	}
	if n == 0 {
		e.status = "nothing selected"
		return
	}
	e.status = fmt.Sprintf("copied %d", n)
}

func (e *Editor) paste() {
	n, err := Paste(e.scene)
	if err != nil {
		e.status = "paste failed: " + err.Error()
		return
	}
	e.checkpoint(fmt.Sprintf("pasted %d", n))
}

func (e *Editor) activeName() string {
	if t := e.dispatcher.Active(); t != nil {
		return t.Name()
	}
	return ""
}

func (e *Editor) centerScreen() geometry.Point {
	w, h := e.screen.Size()
	return geometry.Point{X: float64(w) / cellAspect / 2, Y: float64(h) / 2}
}

func (e *Editor) draw() {
	w, h := e.screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	g := newGrid(w, h-1)

	e.scene.UpdatePaths()
	e.pipeline.RenderAll()

	// Connectors under shapes, shapes under labels.
	for _, c := range e.scene.Connectors {
		if ls := e.pipeline.Layers(c.ID); ls != nil {
			g.drawLayerSet(e.view, ls)
		}
	}
	for _, sh := range e.scene.Shapes {
		if ls := e.pipeline.Layers(sh.ID); ls != nil {
			g.drawLayerSet(e.view, ls)
		}
		e.drawLabel(g, sh)
	}
	if band, ok := e.bandRect(); ok {
		e.drawBand(g, band)
	}

	e.screen.Clear()
	g.flush(e.screen)
	e.drawStatus(w, h-1)
	e.screen.Show()
}

func (e *Editor) drawLabel(g *grid, sh *scene.Shape) {
	if sh.Label == "" {
		return
	}
	cx, cy := project(e.view, sh.TextAnchor())
	x := cx - len(sh.Label)/2
	style := tcell.StyleDefault
	for i, r := range sh.Label {
		g.set(x+i, cy, r, style)
	}
}

func (e *Editor) bandRect() (geometry.Rect, bool) {
	sel, ok := e.dispatcher.Tool("select").(*tool.Select)
	if !ok {
		return geometry.Rect{}, false
	}
	return sel.Band()
}

func (e *Editor) drawBand(g *grid, band geometry.Rect) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	corners := []geometry.Point{
		{X: band.X, Y: band.Y},
		{X: band.Right(), Y: band.Y},
		{X: band.Right(), Y: band.Bottom()},
		{X: band.X, Y: band.Bottom()},
	}
	for i := range corners {
		g.line(e.view, corners[i], corners[(i+1)%4], '·', style)
	}
}

func (e *Editor) drawStatus(w, row int) {
	style := tcell.StyleDefault.Reverse(true)
	text := []rune(fmt.Sprintf(" %s │ zoom %.0f%% │ %s ", e.status, e.view.Scale()*100, e.helpHint()))
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		e.screen.SetContent(x, row, r, nil, style)
	}
}

func (e *Editor) helpHint() string {
	return "v select  r/o/g/t shapes  c/b/w connectors  enter label  space pan  u undo  ^S save  q quit"
}
