package cursor

import (
	"testing"

	"github.com/dshills/edlite/internal/engine/buffer"
)

func TestMoveLeftRightWrap(t *testing.T) {
	buf := buffer.FromString("ab\ncd")
	tr := NewTracker(buf)

	tr.SetPosition(buffer.Point{Line: 1, Col: 0})
	tr.MoveLeft()
	if tr.Position() != (buffer.Point{Line: 0, Col: 2}) {
		t.Errorf("left at col 0 should wrap to previous line end, got %v", tr.Position())
	}

	tr.MoveRight()
	if tr.Position() != (buffer.Point{Line: 1, Col: 0}) {
		t.Errorf("right at line end should wrap to next line start, got %v", tr.Position())
	}
}

func TestMoveLeftAtDocStart(t *testing.T) {
	buf := buffer.FromString("ab")
	tr := NewTracker(buf)

	tr.MoveLeft()
	if tr.Position() != (buffer.Point{}) {
		t.Errorf("left at document start should stay put, got %v", tr.Position())
	}
}

func TestMoveRightAtDocEnd(t *testing.T) {
	buf := buffer.FromString("ab")
	tr := NewTracker(buf)

	tr.MoveDocEnd()
	tr.MoveRight()
	if tr.Position() != (buffer.Point{Line: 0, Col: 2}) {
		t.Errorf("right at document end should stay put, got %v", tr.Position())
	}
}

func TestGraphemeMovement(t *testing.T) {
	// é as e + combining acute (3 bytes), then a 4-byte emoji.
	buf := buffer.FromString("é\U0001F600x")
	tr := NewTracker(buf)

	tr.MoveRight()
	if tr.Position().Col != 3 {
		t.Errorf("expected col 3 after crossing combining cluster, got %d", tr.Position().Col)
	}
	tr.MoveRight()
	if tr.Position().Col != 7 {
		t.Errorf("expected col 7 after crossing emoji, got %d", tr.Position().Col)
	}
	tr.MoveLeft()
	if tr.Position().Col != 3 {
		t.Errorf("expected col 3 after moving back over emoji, got %d", tr.Position().Col)
	}
}

func TestStickyColumn(t *testing.T) {
	buf := buffer.FromString("abcdef\nxy\nlmnopq")
	tr := NewTracker(buf)

	tr.SetPosition(buffer.Point{Line: 0, Col: 5})
	tr.MoveDown()
	if tr.Position() != (buffer.Point{Line: 1, Col: 2}) {
		t.Errorf("down onto short line should clamp, got %v", tr.Position())
	}
	tr.MoveDown()
	if tr.Position() != (buffer.Point{Line: 2, Col: 5}) {
		t.Errorf("down onto long line should restore sticky column, got %v", tr.Position())
	}
}

func TestVerticalClamping(t *testing.T) {
	buf := buffer.FromString("a\nb")
	tr := NewTracker(buf)

	tr.MoveUp()
	if tr.Position().Line != 0 {
		t.Errorf("up at first line should stay, got %v", tr.Position())
	}
	tr.MoveDown()
	tr.MoveDown()
	if tr.Position().Line != 1 {
		t.Errorf("down past last line should clamp, got %v", tr.Position())
	}
}

func TestLineAndDocMotion(t *testing.T) {
	buf := buffer.FromString("hello\nworld")
	tr := NewTracker(buf)

	tr.SetPosition(buffer.Point{Line: 1, Col: 3})
	tr.MoveLineStart()
	if tr.Position() != (buffer.Point{Line: 1, Col: 0}) {
		t.Errorf("line start: got %v", tr.Position())
	}
	tr.MoveLineEnd()
	if tr.Position() != (buffer.Point{Line: 1, Col: 5}) {
		t.Errorf("line end: got %v", tr.Position())
	}
	tr.MoveDocStart()
	if tr.Position() != (buffer.Point{}) {
		t.Errorf("doc start: got %v", tr.Position())
	}
	tr.MoveDocEnd()
	if tr.Position() != (buffer.Point{Line: 1, Col: 5}) {
		t.Errorf("doc end: got %v", tr.Position())
	}
}

func TestSelection(t *testing.T) {
	buf := buffer.FromString("hello")
	tr := NewTracker(buf)

	if _, ok := tr.Selection(); ok {
		t.Error("no selection expected initially")
	}

	tr.SetAnchor()
	tr.MoveRight()
	tr.MoveRight()
	sel, ok := tr.Selection()
	if !ok {
		t.Fatal("expected a selection")
	}
	want := buffer.Range{Start: buffer.Point{}, End: buffer.Point{Col: 2}}
	if sel != want {
		t.Errorf("selection = %v, want %v", sel, want)
	}

	// Moving the head before the anchor normalizes the range.
	tr.SetPosition(buffer.Point{})
	tr.MoveRight()
	tr.SetAnchor()
	tr.MoveLeft()
	sel, ok = tr.Selection()
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel != (buffer.Range{Start: buffer.Point{}, End: buffer.Point{Col: 1}}) {
		t.Errorf("backward selection not normalized: %v", sel)
	}

	tr.ClearAnchor()
	if _, ok := tr.Selection(); ok {
		t.Error("selection should be cleared")
	}
}

func TestRemapAfterInsert(t *testing.T) {
	buf := buffer.FromString("ab\ncd")
	tr := NewTracker(buf)
	tr.SetPosition(buffer.Point{Line: 1, Col: 1})

	// Insert a line break before the cursor's line.
	end, err := buf.Insert(buffer.Point{Line: 0, Col: 1}, "X\nY")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	tr.ApplyInsert(buffer.Point{Line: 0, Col: 1}, end)
	if tr.Position() != (buffer.Point{Line: 2, Col: 1}) {
		t.Errorf("cursor should follow its character, got %v", tr.Position())
	}
	if buf.LineText(tr.Position().Line) != "cd" {
		t.Errorf("cursor is on the wrong line: %q", buf.LineText(tr.Position().Line))
	}
}

func TestRemapAfterInsertSameLine(t *testing.T) {
	buf := buffer.FromString("abcd")
	tr := NewTracker(buf)
	tr.SetPosition(buffer.Point{Line: 0, Col: 3})

	end, err := buf.Insert(buffer.Point{Line: 0, Col: 1}, "XX")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	tr.ApplyInsert(buffer.Point{Line: 0, Col: 1}, end)
	if tr.Position() != (buffer.Point{Line: 0, Col: 5}) {
		t.Errorf("cursor should shift by inserted length, got %v", tr.Position())
	}
}

func TestRemapAfterDelete(t *testing.T) {
	buf := buffer.FromString("ab\ncd\nef")
	tr := NewTracker(buf)
	tr.SetPosition(buffer.Point{Line: 2, Col: 1})

	r := buffer.NewRange(buffer.Point{Line: 0, Col: 1}, buffer.Point{Line: 1, Col: 1})
	if _, err := buf.Delete(r); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	tr.ApplyDelete(r)
	if tr.Position() != (buffer.Point{Line: 1, Col: 1}) {
		t.Errorf("cursor after deleted range should shift up, got %v", tr.Position())
	}

	// A cursor inside the deleted range collapses to its start.
	tr.SetPosition(buffer.Point{Line: 0, Col: 2}) // inside "ad" after previous edit
	r2 := buffer.NewRange(buffer.Point{Line: 0, Col: 1}, buffer.Point{Line: 1, Col: 0})
	if _, err := buf.Delete(r2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	tr.ApplyDelete(r2)
	if tr.Position() != (buffer.Point{Line: 0, Col: 1}) {
		t.Errorf("cursor inside deleted range should collapse, got %v", tr.Position())
	}
}

func TestCursorNeverOutOfBounds(t *testing.T) {
	buf := buffer.FromString("one\ntwo\nthree")
	tr := NewTracker(buf)

	moves := []func(){
		tr.MoveLeft, tr.MoveDown, tr.MoveRight, tr.MoveRight, tr.MoveUp,
		tr.MoveDocEnd, tr.MoveRight, tr.MoveDown, tr.MoveLineEnd,
		tr.MoveDocStart, tr.MoveLeft, tr.MoveUp, tr.MoveLineStart,
	}
	for i, mv := range moves {
		mv()
		p := tr.Position()
		if p.Line < 0 || p.Line >= buf.LineCount() {
			t.Fatalf("move %d: line %d out of bounds", i, p.Line)
		}
		if p.Col < 0 || p.Col > buf.LineLen(p.Line) {
			t.Fatalf("move %d: col %d out of bounds on line %d", i, p.Col, p.Line)
		}
	}
}

func TestVisualColumnTabs(t *testing.T) {
	buf := buffer.FromString("\tab")
	tr := NewTracker(buf)

	tr.MoveRight() // over the tab
	if got := tr.VisualColumn(); got != DefaultTabWidth {
		t.Errorf("visual column after tab = %d, want %d", got, DefaultTabWidth)
	}
}
