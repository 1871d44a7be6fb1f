// Package viewport maps a window of rows and columns onto the buffer.
// Scrolling always moves the minimum amount needed to keep the cursor
// inside the window.
package viewport

// Viewport tracks which part of the document is visible.
type Viewport struct {
	topLine    int
	leftColumn int
	width      int
	height     int
	maxLine    int // line count of the buffer, for clamping
}

// New creates a viewport of the given size. Dimensions are clamped to a
// minimum of 1.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the window size and re-clamps the scroll position.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
	v.clamp()
}

// SetMaxLine records the buffer's line count so scrolling can clamp.
func (v *Viewport) SetMaxLine(count int) {
	v.maxLine = count
	v.clamp()
}

// Width returns the window width in columns.
func (v *Viewport) Width() int { return v.width }

// Height returns the window height in rows.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line index.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible visual column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// VisibleLineRange returns the half-open range of visible line indexes,
// clamped to the buffer.
func (v *Viewport) VisibleLineRange() (start, end int) {
	end = v.topLine + v.height
	if v.maxLine > 0 && end > v.maxLine {
		end = v.maxLine
	}
	return v.topLine, end
}

// IsLineVisible reports whether line is inside the window.
func (v *Viewport) IsLineVisible(line int) bool {
	start, end := v.VisibleLineRange()
	return line >= start && line < end
}

// LineToRow converts a buffer line to a screen row. Callers must check
// visibility first.
func (v *Viewport) LineToRow(line int) int { return line - v.topLine }

// ColumnToScreen converts a visual column to a screen column, which may
// be negative or past the right edge when scrolled.
func (v *Viewport) ColumnToScreen(col int) int { return col - v.leftColumn }

// ScrollTo sets the top line directly, clamped to the buffer.
func (v *Viewport) ScrollTo(line int) {
	v.topLine = line
	v.clamp()
}

// ScrollBy moves the window by a number of lines.
func (v *Viewport) ScrollBy(delta int) {
	v.ScrollTo(v.topLine + delta)
}

// ScrollToReveal adjusts the window the minimum amount needed so the
// given line and visual column are visible. Returns true if the window
// moved.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	oldTop, oldLeft := v.topLine, v.leftColumn

	if line < v.topLine {
		v.topLine = line
	} else if line >= v.topLine+v.height {
		v.topLine = line - v.height + 1
	}

	if col < v.leftColumn {
		v.leftColumn = col
	} else if col >= v.leftColumn+v.width {
		v.leftColumn = col - v.width + 1
	}

	v.clamp()
	return v.topLine != oldTop || v.leftColumn != oldLeft
}

func (v *Viewport) clamp() {
	if v.maxLine > 0 {
		if max := v.maxLine - 1; v.topLine > max {
			v.topLine = max
		}
	}
	if v.topLine < 0 {
		v.topLine = 0
	}
	if v.leftColumn < 0 {
		v.leftColumn = 0
	}
}
