// Package backend paints cells to a concrete output device. The
// Terminal backend drives a real tcell screen; the Memory backend
// records cells for tests.
package backend

import (
	"github.com/dshills/edlite/internal/renderer/core"
)

// Backend is the surface the renderer paints onto.
type Backend interface {
	// Size returns the current width and height in cells.
	Size() (int, int)

	// SetCell places a cell at column x, row y.
	SetCell(x, y int, cell core.Cell)

	// ShowCursor places the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// Clear blanks the surface.
	Clear()

	// Show flushes pending cells to the device.
	Show()
}
