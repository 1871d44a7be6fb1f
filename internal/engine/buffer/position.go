package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrRangeInvalid = errors.New("invalid range")
)

// Point is a position in the buffer: a line index and a byte column
// within that line. Column len(line) addresses the end of the line,
// which is also where the line break sits for all but the last line.
type Point struct {
	Line int
	Col  int
}

// Compare returns -1 if p is before other, 0 if equal, 1 if after.
func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Col != other.Col {
		if p.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p is before other in document order.
func (p Point) Before(other Point) bool { return p.Compare(other) < 0 }

// String returns a human-readable form, e.g. "3:14".
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Range is a half-open span of buffer text from Start up to End.
type Range struct {
	Start Point
	End   Point
}

// NewRange creates a range, swapping the endpoints if given backwards.
func NewRange(a, b Point) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// IsEmpty returns true if the range spans no text.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains returns true if p lies within the range.
func (r Range) Contains(p Point) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// String returns a human-readable form, e.g. "[1:0 2:3)".
func (r Range) String() string {
	return fmt.Sprintf("[%s %s)", r.Start, r.End)
}
