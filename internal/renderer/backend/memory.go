package backend

import (
	"strings"

	"github.com/dshills/edlite/internal/renderer/core"
)

// Memory is an in-memory Backend for tests. It records every cell and
// the cursor position without touching a terminal.
type Memory struct {
	width  int
	height int
	cells  [][]core.Cell

	CursorX      int
	CursorY      int
	CursorHidden bool
	ShowCalls    int
}

// NewMemory creates a memory backend of the given size.
func NewMemory(width, height int) *Memory {
	m := &Memory{width: width, height: height}
	m.Clear()
	return m
}

// Size implements Backend.
func (m *Memory) Size() (int, int) { return m.width, m.height }

// SetCell implements Backend.
func (m *Memory) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y][x] = cell
}

// ShowCursor implements Backend.
func (m *Memory) ShowCursor(x, y int) {
	m.CursorX, m.CursorY = x, y
	m.CursorHidden = false
}

// HideCursor implements Backend.
func (m *Memory) HideCursor() { m.CursorHidden = true }

// Clear implements Backend.
func (m *Memory) Clear() {
	m.cells = make([][]core.Cell, m.height)
	for y := range m.cells {
		m.cells[y] = make([]core.Cell, m.width)
		for x := range m.cells[y] {
			m.cells[y][x] = core.Cell{Rune: ' '}
		}
	}
}

// Show implements Backend.
func (m *Memory) Show() { m.ShowCalls++ }

// CellAt returns the recorded cell at (x, y).
func (m *Memory) CellAt(x, y int) core.Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return core.Cell{}
	}
	return m.cells[y][x]
}

// Row returns the text of row y with trailing blanks trimmed.
// Zero-rune continuation cells after wide characters are skipped.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < m.width; x++ {
		if r := m.cells[y][x].Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
