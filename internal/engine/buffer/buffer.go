package buffer

import (
	"strings"
	"sync"
)

// line is a single document line plus its highlight staleness flag.
type line struct {
	text  string
	dirty bool
}

// Buffer holds document text as an ordered table of lines.
// A buffer always contains at least one line; the empty document is a
// single empty line. All methods are safe for concurrent use.
type Buffer struct {
	mu    sync.RWMutex
	lines []line
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{lines: []line{{dirty: true}}}
}

// FromString creates a buffer from text. The text must already be in
// canonical form: "\n" line breaks only (see the eol package).
func FromString(s string) *Buffer {
	parts := strings.Split(s, "\n")
	lines := make([]line, len(parts))
	for i, p := range parts {
		lines[i] = line{text: p, dirty: true}
	}
	return &Buffer{lines: lines}
}

// Text returns the full buffer content with "\n" line breaks.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var sb strings.Builder
	for i := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.lines[i].text)
	}
	return sb.String()
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of line i without its line break.
// Returns "" for an out-of-range index.
func (b *Buffer) LineText(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i].text
}

// LineLen returns the byte length of line i without its line break.
func (b *Buffer) LineLen(i int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i].text)
}

// End returns the position just past the last character of the document.
func (b *Buffer) End() Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	last := len(b.lines) - 1
	return Point{Line: last, Col: len(b.lines[last].text)}
}

// Clamp returns p constrained to valid buffer bounds.
func (b *Buffer) Clamp(p Point) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p.Line < 0 {
		return Point{}
	}
	if p.Line >= len(b.lines) {
		last := len(b.lines) - 1
		return Point{Line: last, Col: len(b.lines[last].text)}
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if max := len(b.lines[p.Line].text); p.Col > max {
		p.Col = max
	}
	return p
}

// validate reports whether p is a valid position (locked).
func (b *Buffer) validate(p Point) bool {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return false
	}
	return p.Col >= 0 && p.Col <= len(b.lines[p.Line].text)
}

// Read returns the text within r, with "\n" between lines.
// Returns ErrOutOfBounds for positions outside the document and
// ErrRangeInvalid when End precedes Start.
func (b *Buffer) Read(r Range) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.validate(r.Start) || !b.validate(r.End) {
		return "", ErrOutOfBounds
	}
	if r.End.Before(r.Start) {
		return "", ErrRangeInvalid
	}
	return b.slice(r), nil
}

// slice extracts the text within a validated range (locked).
func (b *Buffer) slice(r Range) string {
	if r.Start.Line == r.End.Line {
		return b.lines[r.Start.Line].text[r.Start.Col:r.End.Col]
	}

	var sb strings.Builder
	sb.WriteString(b.lines[r.Start.Line].text[r.Start.Col:])
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i].text)
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[r.End.Line].text[:r.End.Col])
	return sb.String()
}

// Insert places text at pos. Embedded "\n" characters split the line.
// Returns the position just past the inserted text, so callers can place
// the cursor after the edit. The buffer is unchanged on error.
func (b *Buffer) Insert(pos Point, text string) (Point, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.validate(pos) {
		return Point{}, ErrOutOfBounds
	}
	if text == "" {
		return pos, nil
	}

	cur := &b.lines[pos.Line]
	head := cur.text[:pos.Col]
	tail := cur.text[pos.Col:]

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		cur.text = head + text + tail
		cur.dirty = true
		return Point{Line: pos.Line, Col: pos.Col + len(text)}, nil
	}

	cur.text = head + parts[0]
	cur.dirty = true

	inserted := make([]line, len(parts)-1)
	for i, p := range parts[1:] {
		inserted[i] = line{text: p, dirty: true}
	}
	endLine := pos.Line + len(parts) - 1
	endCol := len(inserted[len(inserted)-1].text)
	inserted[len(inserted)-1].text += tail

	b.lines = append(b.lines[:pos.Line+1], append(inserted, b.lines[pos.Line+1:]...)...)
	return Point{Line: endLine, Col: endCol}, nil
}

// Delete removes the text within r and returns it, so the edit can be
// recorded for undo. Deleting across lines merges the boundary lines.
// The buffer is unchanged on error.
func (b *Buffer) Delete(r Range) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.validate(r.Start) || !b.validate(r.End) {
		return "", ErrOutOfBounds
	}
	if r.End.Before(r.Start) {
		return "", ErrRangeInvalid
	}
	if r.IsEmpty() {
		return "", nil
	}

	removed := b.slice(r)

	start := &b.lines[r.Start.Line]
	if r.Start.Line == r.End.Line {
		start.text = start.text[:r.Start.Col] + start.text[r.End.Col:]
		start.dirty = true
		return removed, nil
	}

	start.text = start.text[:r.Start.Col] + b.lines[r.End.Line].text[r.End.Col:]
	start.dirty = true
	b.lines = append(b.lines[:r.Start.Line+1], b.lines[r.End.Line+1:]...)
	return removed, nil
}

// LineRange returns the range covering whole line i including its line
// break when one exists (the last line has none).
func (b *Buffer) LineRange(i int) (Range, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.lines) {
		return Range{}, ErrOutOfBounds
	}
	if i < len(b.lines)-1 {
		return Range{Start: Point{Line: i}, End: Point{Line: i + 1}}, nil
	}
	return Range{Start: Point{Line: i}, End: Point{Line: i, Col: len(b.lines[i].text)}}, nil
}

// Dirty flag management. The highlight pipeline reads these; only
// mutations and explicit invalidation set them.

// IsLineDirty reports whether line i needs retokenizing.
func (b *Buffer) IsLineDirty(i int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return false
	}
	return b.lines[i].dirty
}

// MarkLineClean records that line i has been retokenized.
func (b *Buffer) MarkLineClean(i int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i >= 0 && i < len(b.lines) {
		b.lines[i].dirty = false
	}
}

// MarkAllDirty invalidates every line's tokens. Used when the active
// language changes.
func (b *Buffer) MarkAllDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.lines {
		b.lines[i].dirty = true
	}
}
