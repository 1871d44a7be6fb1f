package cursor

import (
	"github.com/dshills/edlite/internal/engine/buffer"
)

// DefaultTabWidth is the tab stop used for visual column arithmetic.
const DefaultTabWidth = 4

// Tracker maintains the cursor position and optional selection anchor
// over a buffer. Positions are always valid buffer points on grapheme
// boundaries; every public method leaves the tracker clamped to the
// current document bounds.
type Tracker struct {
	buf      *buffer.Buffer
	pos      buffer.Point
	anchor   *buffer.Point
	sticky   int // preferred visual column for vertical motion
	tabWidth int
}

// NewTracker creates a tracker at the start of buf.
func NewTracker(buf *buffer.Buffer) *Tracker {
	return &Tracker{buf: buf, sticky: -1, tabWidth: DefaultTabWidth}
}

// Position returns the current cursor position.
func (t *Tracker) Position() buffer.Point { return t.pos }

// SetPosition moves the cursor to p, clamped to bounds and snapped to a
// grapheme boundary. Resets the sticky column.
func (t *Tracker) SetPosition(p buffer.Point) {
	p = t.buf.Clamp(p)
	p.Col = snapBoundary(t.buf.LineText(p.Line), p.Col)
	t.pos = p
	t.resetSticky()
}

// MoveLeft moves one grapheme cluster left, wrapping to the end of the
// previous line at column 0.
func (t *Tracker) MoveLeft() {
	if t.pos.Col > 0 {
		t.pos.Col = prevBoundary(t.buf.LineText(t.pos.Line), t.pos.Col)
	} else if t.pos.Line > 0 {
		t.pos.Line--
		t.pos.Col = t.buf.LineLen(t.pos.Line)
	}
	t.resetSticky()
}

// MoveRight moves one grapheme cluster right, wrapping to the start of
// the next line at end-of-line.
func (t *Tracker) MoveRight() {
	line := t.buf.LineText(t.pos.Line)
	if t.pos.Col < len(line) {
		t.pos.Col = nextBoundary(line, t.pos.Col)
	} else if t.pos.Line < t.buf.LineCount()-1 {
		t.pos.Line++
		t.pos.Col = 0
	}
	t.resetSticky()
}

// MoveUp moves one line up, keeping the sticky visual column.
func (t *Tracker) MoveUp() { t.moveVertical(-1) }

// MoveDown moves one line down, keeping the sticky visual column.
func (t *Tracker) MoveDown() { t.moveVertical(1) }

// MoveBy moves by whole lines and then by grapheme clusters. Vertical
// motion keeps the sticky column; horizontal motion resets it.
func (t *Tracker) MoveBy(deltaLine, deltaCol int) {
	if deltaLine != 0 {
		t.moveVertical(deltaLine)
	}
	for ; deltaCol > 0; deltaCol-- {
		t.MoveRight()
	}
	for ; deltaCol < 0; deltaCol++ {
		t.MoveLeft()
	}
}

func (t *Tracker) moveVertical(delta int) {
	target := t.pos.Line + delta
	if target < 0 {
		target = 0
	}
	if max := t.buf.LineCount() - 1; target > max {
		target = max
	}
	if target == t.pos.Line {
		return
	}

	if t.sticky < 0 {
		t.sticky = visualColumn(t.buf.LineText(t.pos.Line), t.pos.Col, t.tabWidth)
	}
	t.pos.Line = target
	t.pos.Col = columnForVisual(t.buf.LineText(target), t.sticky, t.tabWidth)
}

// MoveLineStart moves to column 0 of the current line.
func (t *Tracker) MoveLineStart() {
	t.pos.Col = 0
	t.resetSticky()
}

// MoveLineEnd moves past the last character of the current line.
func (t *Tracker) MoveLineEnd() {
	t.pos.Col = t.buf.LineLen(t.pos.Line)
	t.resetSticky()
}

// MoveDocStart moves to the first position of the document.
func (t *Tracker) MoveDocStart() {
	t.pos = buffer.Point{}
	t.resetSticky()
}

// MoveDocEnd moves past the last character of the document.
func (t *Tracker) MoveDocEnd() {
	t.pos = t.buf.End()
	t.resetSticky()
}

// VisualColumn returns the cursor's display column on its line.
func (t *Tracker) VisualColumn() int {
	return visualColumn(t.buf.LineText(t.pos.Line), t.pos.Col, t.tabWidth)
}

func (t *Tracker) resetSticky() { t.sticky = -1 }

// Selection management.

// SetAnchor starts a selection at the current position.
func (t *Tracker) SetAnchor() {
	p := t.pos
	t.anchor = &p
}

// ClearAnchor drops the selection.
func (t *Tracker) ClearAnchor() { t.anchor = nil }

// Anchored reports whether an anchor is set, even when the selection is
// still empty.
func (t *Tracker) Anchored() bool { return t.anchor != nil }

// HasSelection reports whether a non-empty selection exists.
func (t *Tracker) HasSelection() bool {
	return t.anchor != nil && *t.anchor != t.pos
}

// Selection returns the selected range in document order. The second
// return value is false when there is no selection.
func (t *Tracker) Selection() (buffer.Range, bool) {
	if !t.HasSelection() {
		return buffer.Range{}, false
	}
	return buffer.NewRange(*t.anchor, t.pos), true
}
