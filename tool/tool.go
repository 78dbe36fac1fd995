// Package tool implements the pointer-driven tools that mutate the scene.
// Tools share one activation state machine: a tool is active when the user
// selected it, or temporarily active while a transient trigger (such as a
// held modifier) lasts. Every handler returns whether it consumed the
// event; the dispatcher stops propagation on the first consumer.
package tool

import (
	"vex/geometry"
)

// PointerButton identifies which button produced a pointer event.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifiers carries the keyboard modifier state of an input event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// CaptureTarget is the element a continuous gesture captures the pointer
// on. Release errors are expected during fast UI teardown and are always
// swallowed.
type CaptureTarget interface {
	SetPointerCapture() error
	ReleasePointerCapture() error
}

// PointerEvent is a pointer event already transformed into diagram space.
// Screen keeps the untransformed position for gestures that move the
// transform itself, such as panning.
type PointerEvent struct {
	Point  geometry.Point
	Screen geometry.Point
	Button PointerButton
	Mods   Modifiers
	Target CaptureTarget
}

// WheelEvent is a scroll event in diagram space.
type WheelEvent struct {
	Point  geometry.Point
	Screen geometry.Point
	DeltaX float64
	DeltaY float64
	Mods   Modifiers
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Key  string
	Mods Modifiers
}

// Tool is a polymorphic pointer/keyboard event handler with an activation
// state machine.
type Tool interface {
	Name() string

	Activate()
	Deactivate()
	TempActivate()
	TempDeactivate()
	IsActive() bool

	HandlePointerDown(PointerEvent) bool
	HandlePointerMove(PointerEvent) bool
	HandlePointerUp(PointerEvent) bool
	HandleWheel(WheelEvent) bool
	HandleKeyDown(KeyEvent) bool
	HandleKeyUp(KeyEvent) bool

	// CancelInteraction force-terminates any in-progress gesture. It is
	// idempotent and safe to call when nothing is in progress.
	CancelInteraction()
}

// Base provides the shared activation state and no-op handlers. Concrete
// tools embed it and override what they need; overrides of TempDeactivate
// must terminate in-progress gestures before clearing the flag.
type Base struct {
	active     bool
	tempActive bool
}

// Activate marks the tool as user-selected.
func (b *Base) Activate() { b.active = true }

// Deactivate clears the user selection.
func (b *Base) Deactivate() { b.active = false }

// TempActivate sets the transient activation flag. It is orthogonal to
// Activate: either alone makes the tool active.
func (b *Base) TempActivate() { b.tempActive = true }

// TempDeactivate clears the transient activation flag.
func (b *Base) TempDeactivate() { b.tempActive = false }

// IsActive is true if the tool is user-selected or temporarily active.
func (b *Base) IsActive() bool { return b.active || b.tempActive }

func (b *Base) HandlePointerDown(PointerEvent) bool { return false }
func (b *Base) HandlePointerMove(PointerEvent) bool { return false }
func (b *Base) HandlePointerUp(PointerEvent) bool   { return false }
func (b *Base) HandleWheel(WheelEvent) bool         { return false }
func (b *Base) HandleKeyDown(KeyEvent) bool         { return false }
func (b *Base) HandleKeyUp(KeyEvent) bool           { return false }
func (b *Base) CancelInteraction()                  {}

// capturePointer acquires pointer capture on a gesture's originating
// element. A nil target is fine; capture is an optimization, not a
// requirement.
func capturePointer(target CaptureTarget) {
	if target != nil {
		_ = target.SetPointerCapture()
	}
}

// releasePointer releases pointer capture best-effort. The target may
// already be detached; that must never propagate.
func releasePointer(target CaptureTarget) {
	if target != nil {
		_ = target.ReleasePointerCapture()
	}
}
