package scene

// History manages undo/redo using direct scene snapshots.
type History struct {
	states  []*Scene
	current int
	max     int
}

// NewHistory creates a history manager keeping at most max states.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([]*Scene, 0, max),
		current: -1,
		max:     max,
	}
}

// Push saves a new state as a deep copy. Any redo states beyond the
// current position are discarded.
func (h *History) Push(s *Scene) {
	clone := s.Clone()

	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}
	h.states = append(h.states, clone)

	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if an earlier state exists.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if a later state exists.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo steps back one state and returns a clone of it, or nil if there is
// nothing to undo. The clone keeps entity ids stable so connector bindings
// survive restoration.
func (h *History) Undo() *Scene {
	if !h.CanUndo() {
		return nil
	}
	h.current--
	restored := h.states[h.current].Clone()
	restored.MarkAllDirty()
	return restored
}

// Redo steps forward one state and returns a clone of it, or nil.
func (h *History) Redo() *Scene {
	if !h.CanRedo() {
		return nil
	}
	h.current++
	restored := h.states[h.current].Clone()
	restored.MarkAllDirty()
	return restored
}

// Len returns the number of stored states.
func (h *History) Len() int {
	return len(h.states)
}
