package history

import (
	"sync"

	"github.com/dshills/edlite/internal/engine/buffer"
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// History holds the undo and redo stacks for one buffer.
type History struct {
	mu         sync.Mutex
	undoStack  []Operation
	redoStack  []Operation
	maxEntries int
}

// New creates a history bounded to maxEntries operations. Values <= 0
// select DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Record pushes op onto the undo stack and clears the redo stack: a new
// edit invalidates any forward-redo branch.
func (h *History) Record(op Operation) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append(h.undoStack, op)
	h.redoStack = nil

	if excess := len(h.undoStack) - h.maxEntries; excess > 0 {
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent operation against buf and moves it to the
// redo stack. Returns the cursor position to restore and true, or false
// when there is nothing to undo or the revert failed.
func (h *History) Undo(buf *buffer.Buffer) (buffer.Point, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return buffer.Point{}, false
	}
	op := h.undoStack[len(h.undoStack)-1]
	if err := op.Revert(buf); err != nil {
		return buffer.Point{}, false
	}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, op)
	return op.CursorBefore, true
}

// Redo reapplies the most recently undone operation. Returns the cursor
// position to restore and true, or false when the redo stack is empty.
func (h *History) Redo(buf *buffer.Buffer) (buffer.Point, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return buffer.Point{}, false
	}
	op := h.redoStack[len(h.redoStack)-1]
	if err := op.Apply(buf); err != nil {
		return buffer.Point{}, false
	}
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, op)
	return op.CursorAfter, true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// Len returns the undo stack depth.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// Clear drops both stacks. Used when a new document is loaded.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
}
