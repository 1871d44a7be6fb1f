package buffer

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.Text() != "" {
		t.Errorf("expected empty text, got %q", b.Text())
	}
}

func TestFromString(t *testing.T) {
	b := FromString("a\nbb\nccc")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
	if b.LineText(0) != "a" {
		t.Errorf("expected a, got %q", b.LineText(0))
	}
	if b.LineText(1) != "bb" {
		t.Errorf("expected bb, got %q", b.LineText(1))
	}
	if b.LineText(2) != "ccc" {
		t.Errorf("expected ccc, got %q", b.LineText(2))
	}
}

func TestFromStringTrailingNewline(t *testing.T) {
	b := FromString("a\n")

	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}
	if b.LineText(1) != "" {
		t.Errorf("expected empty last line, got %q", b.LineText(1))
	}
}

func TestInsertWithinLine(t *testing.T) {
	b := FromString("a\nbb\nccc")

	end, err := b.Insert(Point{Line: 1, Col: 2}, "X")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Text() != "a\nbbX\nccc" {
		t.Errorf("expected a\\nbbX\\nccc, got %q", b.Text())
	}
	if end != (Point{Line: 1, Col: 3}) {
		t.Errorf("expected end 1:3, got %v", end)
	}
}

func TestInsertWithNewlines(t *testing.T) {
	b := FromString("hello world")

	end, err := b.Insert(Point{Line: 0, Col: 5}, "\nmid\n")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Text() != "hello\nmid\n world" {
		t.Errorf("got %q", b.Text())
	}
	if end != (Point{Line: 2, Col: 0}) {
		t.Errorf("expected end 2:0, got %v", end)
	}
	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
}

func TestInsertOutOfBounds(t *testing.T) {
	b := FromString("ab")

	cases := []Point{
		{Line: -1, Col: 0},
		{Line: 1, Col: 0},
		{Line: 0, Col: 3},
		{Line: 0, Col: -1},
	}
	for _, pos := range cases {
		if _, err := b.Insert(pos, "x"); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("insert at %v: expected ErrOutOfBounds, got %v", pos, err)
		}
	}
	if b.Text() != "ab" {
		t.Errorf("failed insert mutated buffer: %q", b.Text())
	}
}

func TestDeleteWithinLine(t *testing.T) {
	b := FromString("hello")

	removed, err := b.Delete(NewRange(Point{Col: 1}, Point{Col: 4}))
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed != "ell" {
		t.Errorf("expected removed ell, got %q", removed)
	}
	if b.Text() != "ho" {
		t.Errorf("expected ho, got %q", b.Text())
	}
}

func TestDeleteAcrossLines(t *testing.T) {
	b := FromString("one\ntwo\nthree")

	removed, err := b.Delete(NewRange(Point{Line: 0, Col: 2}, Point{Line: 2, Col: 3}))
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed != "e\ntwo\nthr" {
		t.Errorf("expected removed e\\ntwo\\nthr, got %q", removed)
	}
	if b.Text() != "onee" {
		t.Errorf("expected onee, got %q", b.Text())
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestDeleteLineBreakMergesLines(t *testing.T) {
	b := FromString("a\nb")

	removed, err := b.Delete(NewRange(Point{Line: 0, Col: 1}, Point{Line: 1, Col: 0}))
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed != "\n" {
		t.Errorf("expected removed newline, got %q", removed)
	}
	if b.Text() != "ab" {
		t.Errorf("expected ab, got %q", b.Text())
	}
}

func TestDeleteOutOfBounds(t *testing.T) {
	b := FromString("ab\ncd")

	_, err := b.Delete(Range{Start: Point{Line: 0, Col: 0}, End: Point{Line: 5, Col: 0}})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if b.Text() != "ab\ncd" {
		t.Errorf("failed delete mutated buffer: %q", b.Text())
	}
}

func TestDeleteInvalidRange(t *testing.T) {
	b := FromString("ab\ncd")

	_, err := b.Delete(Range{Start: Point{Line: 1, Col: 1}, End: Point{Line: 0, Col: 0}})
	if !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestRead(t *testing.T) {
	b := FromString("one\ntwo\nthree")

	got, err := b.Read(NewRange(Point{Line: 0, Col: 1}, Point{Line: 2, Col: 2}))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "ne\ntwo\nth" {
		t.Errorf("expected ne\\ntwo\\nth, got %q", got)
	}
	if b.Text() != "one\ntwo\nthree" {
		t.Errorf("read mutated buffer: %q", b.Text())
	}
}

func TestClamp(t *testing.T) {
	b := FromString("ab\ncde")

	tests := []struct {
		in, want Point
	}{
		{Point{Line: -3, Col: 5}, Point{}},
		{Point{Line: 9, Col: 0}, Point{Line: 1, Col: 3}},
		{Point{Line: 0, Col: 99}, Point{Line: 0, Col: 2}},
		{Point{Line: 1, Col: -1}, Point{Line: 1, Col: 0}},
		{Point{Line: 1, Col: 2}, Point{Line: 1, Col: 2}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirtyFlags(t *testing.T) {
	b := FromString("a\nb\nc")

	for i := 0; i < 3; i++ {
		b.MarkLineClean(i)
	}
	if b.IsLineDirty(1) {
		t.Error("line 1 should be clean")
	}

	if _, err := b.Insert(Point{Line: 1, Col: 0}, "x"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !b.IsLineDirty(1) {
		t.Error("edited line should be dirty")
	}
	if b.IsLineDirty(0) || b.IsLineDirty(2) {
		t.Error("untouched lines should stay clean")
	}

	b.MarkAllDirty()
	if !b.IsLineDirty(0) || !b.IsLineDirty(2) {
		t.Error("MarkAllDirty should dirty every line")
	}
}

func TestLineRange(t *testing.T) {
	b := FromString("ab\ncd")

	r, err := b.LineRange(0)
	if err != nil {
		t.Fatalf("LineRange failed: %v", err)
	}
	if r != (Range{Start: Point{Line: 0}, End: Point{Line: 1}}) {
		t.Errorf("unexpected range %v", r)
	}

	r, err = b.LineRange(1)
	if err != nil {
		t.Fatalf("LineRange failed: %v", err)
	}
	if r != (Range{Start: Point{Line: 1}, End: Point{Line: 1, Col: 2}}) {
		t.Errorf("unexpected last-line range %v", r)
	}

	if _, err := b.LineRange(2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	b := FromString("a\nbb\nccc")
	original := b.Text()

	end, err := b.Insert(Point{Line: 1, Col: 1}, "X\nY")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	removed, err := b.Delete(Range{Start: Point{Line: 1, Col: 1}, End: end})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed != "X\nY" {
		t.Errorf("expected removed X\\nY, got %q", removed)
	}
	if b.Text() != original {
		t.Errorf("round trip failed: %q", b.Text())
	}
}
