package scene

import (
	"testing"

	"vex/geometry"
)

func sceneWithShapes(n int) *Scene {
	s := NewScene()
	for i := 0; i < n; i++ {
		s.AddShape(NewShape(KindRectangle, geometry.Rect{X: float64(i * 50), Width: 40, Height: 40}))
	}
	return s
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	h.Push(sceneWithShapes(0))
	h.Push(sceneWithShapes(1))
	h.Push(sceneWithShapes(2))

	if !h.CanUndo() {
		t.Fatal("expected undo to be available")
	}
	restored := h.Undo()
	if restored == nil || len(restored.Shapes) != 1 {
		t.Fatalf("undo restored %v", restored)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	restored = h.Redo()
	if restored == nil || len(restored.Shapes) != 2 {
		t.Fatalf("redo restored %v", restored)
	}
	if h.Redo() != nil {
		t.Error("redo past the end must return nil")
	}
}

func TestHistoryUndoAtStart(t *testing.T) {
	h := NewHistory(10)
	if h.Undo() != nil {
		t.Error("undo on empty history must return nil")
	}
	h.Push(sceneWithShapes(1))
	if h.CanUndo() {
		t.Error("a single state has nothing to undo to")
	}
}

func TestHistoryTruncatesRedoOnPush(t *testing.T) {
	h := NewHistory(10)
	h.Push(sceneWithShapes(0))
	h.Push(sceneWithShapes(1))
	h.Push(sceneWithShapes(2))
	h.Undo()
	h.Push(sceneWithShapes(5))

	if h.CanRedo() {
		t.Error("pushing after undo must discard redo states")
	}
	restored := h.Undo()
	if restored == nil || len(restored.Shapes) != 1 {
		t.Errorf("undo after branch restored %v", restored)
	}
}

func TestHistoryBoundedDepth(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 10; i++ {
		h.Push(sceneWithShapes(i))
	}
	if h.Len() != 3 {
		t.Errorf("history kept %d states, want 3", h.Len())
	}
	// The newest state is still the current one.
	h.Undo()
	restored := h.Redo()
	if restored == nil || len(restored.Shapes) != 9 {
		t.Errorf("latest state lost: %v", restored)
	}
}

func TestHistoryStatesAreIsolated(t *testing.T) {
	h := NewHistory(10)
	live := sceneWithShapes(1)
	h.Push(live)
	h.Push(sceneWithShapes(2))

	// Mutating the live scene after pushing must not corrupt history.
	live.Shapes[0].MoveBy(geometry.Point{X: 999})
	restored := h.Undo()
	if restored.Shapes[0].Layout.X == 999 {
		t.Error("history state shares storage with the live scene")
	}
	// Restored scenes come back fully dirty for the next render pass.
	if !restored.Shapes[0].State.NeedsRender {
		t.Error("restored entities must be dirty")
	}
}
