package tool

// Dispatcher routes input events through the registered tools in order and
// stops at the first consumer. Exactly one tool is user-active at a time;
// a second tool may be temporarily active on top (e.g. pan while a
// modifier is held) and gets first refusal on events.
type Dispatcher struct {
	tools    []Tool
	active   Tool
	tempTool Tool
	viewport *Viewport
}

// wheelZoomStep is the zoom factor per wheel notch.
const wheelZoomStep = 1.1

// NewDispatcher creates a dispatcher over a viewport.
func NewDispatcher(viewport *Viewport) *Dispatcher {
	return &Dispatcher{viewport: viewport}
}

// Register adds tools in dispatch order.
func (d *Dispatcher) Register(tools ...Tool) {
	d.tools = append(d.tools, tools...)
}

// Tool returns the registered tool with the given name, or nil.
func (d *Dispatcher) Tool(name string) Tool {
	for _, t := range d.tools {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// Active returns the currently user-active tool, or nil.
func (d *Dispatcher) Active() Tool { return d.active }

// SetActive switches the user-active tool by name. The previous tool is
// deactivated first, which terminates any gesture it had in progress.
func (d *Dispatcher) SetActive(name string) bool {
	next := d.Tool(name)
	if next == nil {
		return false
	}
	if d.active == next {
		return true
	}
	if d.active != nil {
		d.active.Deactivate()
	}
	d.active = next
	next.Activate()
	return true
}

// TempActivate temporarily activates a tool on top of the active one.
func (d *Dispatcher) TempActivate(name string) bool {
	next := d.Tool(name)
	if next == nil {
		return false
	}
	if d.tempTool != nil && d.tempTool != next {
		d.tempTool.TempDeactivate()
	}
	d.tempTool = next
	next.TempActivate()
	return true
}

// TempRelease ends the temporary activation, if any.
func (d *Dispatcher) TempRelease() {
	if d.tempTool == nil {
		return
	}
	d.tempTool.TempDeactivate()
	d.tempTool = nil
}

// CancelAll force-terminates every in-progress gesture.
func (d *Dispatcher) CancelAll() {
	for _, t := range d.tools {
		t.CancelInteraction()
	}
}

// ordered yields the temp tool first, then every registered tool. The
// registration order decides priority between non-temp tools; inactive
// tools decline events themselves.
func (d *Dispatcher) ordered() []Tool {
	if d.tempTool == nil {
		return d.tools
	}
	out := make([]Tool, 0, len(d.tools)+1)
	out = append(out, d.tempTool)
	for _, t := range d.tools {
		if t != d.tempTool {
			out = append(out, t)
		}
	}
	return out
}

// PointerDown routes a pointer-down event.
func (d *Dispatcher) PointerDown(ev PointerEvent) bool {
	for _, t := range d.ordered() {
		if t.HandlePointerDown(ev) {
			return true
		}
	}
	return false
}

// PointerMove routes a pointer-move event.
func (d *Dispatcher) PointerMove(ev PointerEvent) bool {
	for _, t := range d.ordered() {
		if t.HandlePointerMove(ev) {
			return true
		}
	}
	return false
}

// PointerUp routes a pointer-up event.
func (d *Dispatcher) PointerUp(ev PointerEvent) bool {
	for _, t := range d.ordered() {
		if t.HandlePointerUp(ev) {
			return true
		}
	}
	return false
}

// Wheel routes a wheel event; unconsumed wheel input zooms the viewport
// around the pointer.
func (d *Dispatcher) Wheel(ev WheelEvent) bool {
	for _, t := range d.ordered() {
		if t.HandleWheel(ev) {
			return true
		}
	}
	if ev.DeltaY > 0 {
		d.viewport.ZoomAt(ev.Screen, 1/wheelZoomStep)
	} else if ev.DeltaY < 0 {
		d.viewport.ZoomAt(ev.Screen, wheelZoomStep)
	}
	return true
}

// KeyDown routes a key-down event; an unconsumed Escape cancels every
// in-progress gesture.
func (d *Dispatcher) KeyDown(ev KeyEvent) bool {
	for _, t := range d.ordered() {
		if t.HandleKeyDown(ev) {
			return true
		}
	}
	if ev.Key == "Escape" {
		d.CancelAll()
		return true
	}
	return false
}

// KeyUp routes a key-up event.
func (d *Dispatcher) KeyUp(ev KeyEvent) bool {
	for _, t := range d.ordered() {
		if t.HandleKeyUp(ev) {
			return true
		}
	}
	return false
}
