package history

import (
	"strings"
	"time"

	"github.com/dshills/edlite/internal/engine/buffer"
)

// Kind discriminates the edit operation variants.
type Kind uint8

const (
	// KindInsert is text inserted at a position.
	KindInsert Kind = iota
	// KindDelete is text removed from a range.
	KindDelete
)

// Operation is one recorded edit. It is immutable once recorded and
// carries everything needed to apply its inverse.
type Operation struct {
	Kind Kind

	// Pos is the insertion point for inserts and the start of the
	// removed range for deletes.
	Pos buffer.Point

	// Text is the inserted text for inserts, the removed text for
	// deletes.
	Text string

	// CursorBefore and CursorAfter restore the cursor on undo and redo.
	CursorBefore buffer.Point
	CursorAfter  buffer.Point

	// Timestamp records when the edit happened.
	Timestamp time.Time
}

// NewInsert records text inserted at pos.
func NewInsert(pos buffer.Point, text string, before, after buffer.Point) Operation {
	return Operation{
		Kind:         KindInsert,
		Pos:          pos,
		Text:         text,
		CursorBefore: before,
		CursorAfter:  after,
		Timestamp:    time.Now(),
	}
}

// NewDelete records text removed starting at rng.Start.
func NewDelete(rng buffer.Range, removed string, before, after buffer.Point) Operation {
	return Operation{
		Kind:         KindDelete,
		Pos:          rng.Start,
		Text:         removed,
		CursorBefore: before,
		CursorAfter:  after,
		Timestamp:    time.Now(),
	}
}

// Span returns the range the operation's text occupies when present in
// the buffer: from Pos to the end of Text.
func (op Operation) Span() buffer.Range {
	return buffer.Range{Start: op.Pos, End: endOf(op.Pos, op.Text)}
}

// Apply performs the operation against buf (used by redo).
func (op Operation) Apply(buf *buffer.Buffer) error {
	switch op.Kind {
	case KindInsert:
		_, err := buf.Insert(op.Pos, op.Text)
		return err
	default:
		_, err := buf.Delete(op.Span())
		return err
	}
}

// Revert performs the inverse operation against buf (used by undo).
func (op Operation) Revert(buf *buffer.Buffer) error {
	switch op.Kind {
	case KindInsert:
		_, err := buf.Delete(op.Span())
		return err
	default:
		_, err := buf.Insert(op.Pos, op.Text)
		return err
	}
}

// endOf returns the position just past text placed at pos.
func endOf(pos buffer.Point, text string) buffer.Point {
	breaks := strings.Count(text, "\n")
	if breaks == 0 {
		return buffer.Point{Line: pos.Line, Col: pos.Col + len(text)}
	}
	last := text[strings.LastIndexByte(text, '\n')+1:]
	return buffer.Point{Line: pos.Line + breaks, Col: len(last)}
}
