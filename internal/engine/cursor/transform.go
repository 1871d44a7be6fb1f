package cursor

import (
	"github.com/dshills/edlite/internal/engine/buffer"
)

// ApplyInsert remaps the cursor and anchor after text was inserted at
// pos, ending at end. Positions at or after the insertion shift so they
// keep referring to the same logical character.
func (t *Tracker) ApplyInsert(pos, end buffer.Point) {
	t.pos = remapInsert(t.pos, pos, end)
	if t.anchor != nil {
		a := remapInsert(*t.anchor, pos, end)
		t.anchor = &a
	}
	t.resetSticky()
}

// ApplyDelete remaps the cursor and anchor after the text in r was
// removed. Positions inside the range collapse to its start.
func (t *Tracker) ApplyDelete(r buffer.Range) {
	t.pos = remapDelete(t.pos, r)
	if t.anchor != nil {
		a := remapDelete(*t.anchor, r)
		t.anchor = &a
	}
	t.resetSticky()
}

func remapInsert(q, pos, end buffer.Point) buffer.Point {
	if q.Before(pos) {
		return q
	}
	lineShift := end.Line - pos.Line
	if q.Line == pos.Line {
		return buffer.Point{Line: end.Line, Col: end.Col + (q.Col - pos.Col)}
	}
	return buffer.Point{Line: q.Line + lineShift, Col: q.Col}
}

func remapDelete(q buffer.Point, r buffer.Range) buffer.Point {
	if q.Before(r.Start) || q == r.Start {
		return q
	}
	if q.Before(r.End) || q == r.End {
		return r.Start
	}
	if q.Line == r.End.Line {
		return buffer.Point{Line: r.Start.Line, Col: r.Start.Col + (q.Col - r.End.Col)}
	}
	return buffer.Point{Line: q.Line - (r.End.Line - r.Start.Line), Col: q.Col}
}
