// Package history records invertible edit operations for linear
// undo/redo. Recording a new edit clears the redo stack; undo moves an
// operation to the redo stack after applying its inverse to the buffer.
// Depth is bounded: when the undo stack is full the oldest entries are
// discarded.
package history
