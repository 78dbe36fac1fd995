package tool

import (
	"vex/geometry"
)

// TranslationAccessor is the injected view-state access a Pan tool drives.
type TranslationAccessor interface {
	Translation() geometry.Point
	SetTranslation(geometry.Point)
}

// Pan drags the viewport. Middle-button press always starts panning;
// left-button press only when the tool is active or temporarily active.
type Pan struct {
	Base
	view TranslationAccessor

	panning          bool
	startScreen      geometry.Point
	startTranslation geometry.Point
	target           CaptureTarget
}

// NewPan creates a pan tool over the given view state.
func NewPan(view TranslationAccessor) *Pan {
	return &Pan{view: view}
}

// Name returns the tool name.
func (t *Pan) Name() string { return "pan" }

// IsPanningActive reports whether a pan gesture is in progress.
func (t *Pan) IsPanningActive() bool { return t.panning }

// HandlePointerDown starts a pan gesture. The start translation is read
// once; every move reports its delta relative to the start point, not the
// previous move, so dropped move events cannot accumulate drift.
func (t *Pan) HandlePointerDown(ev PointerEvent) bool {
	if ev.Button != ButtonMiddle && !(t.IsActive() && ev.Button == ButtonLeft) {
		return false
	}
	t.panning = true
	t.startScreen = ev.Screen
	t.startTranslation = t.view.Translation()
	t.target = ev.Target
	capturePointer(t.target)
	return true
}

func (t *Pan) HandlePointerMove(ev PointerEvent) bool {
	if !t.panning {
		return false
	}
	delta := ev.Screen.Sub(t.startScreen)
	t.view.SetTranslation(t.startTranslation.Add(delta))
	return true
}

func (t *Pan) HandlePointerUp(ev PointerEvent) bool {
	if !t.panning {
		return false
	}
	t.endPan()
	return true
}

// TempDeactivate terminates an in-progress pan before clearing the
// transient flag, so releasing the temporary trigger mid-drag leaves no
// orphaned gesture.
func (t *Pan) TempDeactivate() {
	t.CancelInteraction()
	t.Base.TempDeactivate()
}

// Deactivate terminates an in-progress pan before clearing activation.
func (t *Pan) Deactivate() {
	t.CancelInteraction()
	t.Base.Deactivate()
}

// CancelInteraction force-terminates a pan without a pointer-up.
func (t *Pan) CancelInteraction() {
	if !t.panning {
		return
	}
	t.endPan()
}

func (t *Pan) endPan() {
	t.panning = false
	releasePointer(t.target)
	t.target = nil
}
