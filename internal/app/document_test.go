package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/edlite/internal/engine/buffer"
	"github.com/dshills/edlite/internal/engine/eol"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.py")
	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if s.Path() != "" {
		t.Errorf("path = %q, missing file must stay unbound", s.Path())
	}
	if got := s.DefaultSaveName(); got != path {
		t.Errorf("default save name = %q, want %q", got, path)
	}
	if got := s.Language(); got != "python" {
		t.Errorf("language = %q, want python from extension", got)
	}
	if got := s.Buffer().Text(); got != "" {
		t.Errorf("buffer = %q, want empty", got)
	}
}

func TestLoadDetectsEolAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\nthree"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.EolMode() != eol.CRLF {
		t.Errorf("eol = %v, want CRLF", s.EolMode())
	}
	if got := s.Buffer().Text(); got != "one\ntwo\nthree" {
		t.Errorf("text = %q, want normalized LF", got)
	}
	if s.Path() != path {
		t.Errorf("path = %q, want bound to %q", s.Path(), path)
	}
	if s.Dirty() {
		t.Error("freshly loaded document is dirty")
	}
}

func TestLoadReplacesInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte{'o', 'k', 0xff, '!'}, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.Buffer().Text(); got != "ok�!" {
		t.Errorf("text = %q, want replacement rune for invalid byte", got)
	}
}

func TestSaveRoundTripKeepsEol(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s.Cursor().MoveDocEnd()
	if err := s.InsertText("c"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(raw); got != "a\r\nb\r\nc" {
		t.Errorf("file = %q, want CRLF endings preserved", got)
	}
	if s.Dirty() {
		t.Error("dirty flag survived save")
	}
}

func TestSaveAsWithChosenEol(t *testing.T) {
	s := NewSession(nil)
	if err := s.InsertText("x\ny"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetEolMode("dos"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.go")
	if err := s.SaveAs(path); err != nil {
		t.Fatalf("save as: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(raw); got != "x\r\ny" {
		t.Errorf("file = %q, want DOS endings", got)
	}
	if s.Path() != path {
		t.Errorf("path = %q, want bound after save as", s.Path())
	}
	if got := s.Language(); got != "go" {
		t.Errorf("language = %q, want detected from new extension", got)
	}
}

func TestSaveStickyEolAcrossSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sticky.txt")
	s := NewSession(nil)
	if err := s.InsertText("line"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetEolMode("mac"); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	s.Cursor().MoveDocEnd()
	if err := s.InsertText("\nmore"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(raw); got != "line\rmore" {
		t.Errorf("file = %q, mode chosen at first save must persist", got)
	}
}

func TestSaveUnbound(t *testing.T) {
	s := NewSession(nil)
	if err := s.Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("save unbound = %v, want ErrNoPath", err)
	}
}

func TestSaveAtomicLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.txt")
	s := NewSession(nil)
	if err := s.InsertText("data"); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "clean.txt" {
		t.Errorf("dir entries = %v, want only the saved file", entries)
	}
}

func TestCursorUnchangedBySave(t *testing.T) {
	s := NewSession(nil)
	if err := s.InsertText("abc\ndef"); err != nil {
		t.Fatal(err)
	}
	s.Cursor().SetPosition(buffer.Point{Line: 1, Col: 2})

	if err := s.SaveAs(filepath.Join(t.TempDir(), "c.txt")); err != nil {
		t.Fatal(err)
	}
	if got := s.Cursor().Position(); got != (buffer.Point{Line: 1, Col: 2}) {
		t.Errorf("cursor = %v, save must not move it", got)
	}
}
